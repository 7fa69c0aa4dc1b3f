package backend_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-front/internal/domain/entity"
	"github.com/jhoicas/pos-front/internal/domain/gateway"
	"github.com/jhoicas/pos-front/internal/infrastructure/backend"
)

var auth = gateway.Auth{Token: "tok-abc", TenantID: "tenant-9"}

// newServer levanta un backend falso y devuelve el cliente apuntándole.
func newServer(t *testing.T, handler http.HandlerFunc) (*backend.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := backend.NewClient(srv.URL+"/api", srv.Client())
	require.NoError(t, err)
	return client, srv
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de cabeceras y resolución de rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouseGateway_EnviaCredenciales(t *testing.T) {
	var gotAuth, gotTenant, gotPath string
	client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotTenant = r.Header.Get("X-Tenant-ID")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	_, err := backend.NewWarehouseGateway(client).List(context.Background(), auth)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.Equal(t, "tenant-9", gotTenant)
	assert.Equal(t, "/api/warehouses", gotPath)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de decodificación por gateway
// ──────────────────────────────────────────────────────────────────────────────

func TestWarehouseGateway_List(t *testing.T) {
	client, _ := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"data":[
			{"id":"w1","name":"Dépôt","type":"gros","location":"Cotonou","is_active":true},
			{"id":"w2","name":"Boutique","type":"detail","is_active":false}
		]}}`))
	})

	list, err := backend.NewWarehouseGateway(client).List(context.Background(), auth)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entity.Warehouse{ID: "w1", Name: "Dépôt", Type: "gros", Location: "Cotonou", IsActive: true}, list[0])
	assert.False(t, list[1].IsActive)
}

func TestDashboardGateway_ServerStats(t *testing.T) {
	client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dashboard/server/stats", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"my_orders_count":3,"preparing_count":1,"served_count":2,"my_sales":"12500"}}`))
	})

	stats, err := backend.NewDashboardGateway(client).ServerStats(context.Background(), auth)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.MyOrdersCount)
	assert.Equal(t, 1, stats.PreparingCount)
	assert.Equal(t, 2, stats.ServedCount)
	assert.Equal(t, "12500", stats.MySales.String())
}

func TestDashboardGateway_Orders_SobreVacioDegradaALista(t *testing.T) {
	client, _ := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":null}`))
	})

	orders, err := backend.NewDashboardGateway(client).Orders(context.Background(), auth)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestTenantGateway_UpdatePosMode(t *testing.T) {
	var gotMethod, gotBody string
	client, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		assert.Equal(t, "/api/tenant-config", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"id":"t1","name":"Chez Awa","business_type":"bar","pos_mode":"option_a"}}`))
	})

	tenant, err := backend.NewTenantConfigGateway(client).UpdatePosMode(context.Background(), auth, "option_a")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.JSONEq(t, `{"pos_mode":"option_a"}`, gotBody)
	assert.Equal(t, "t1", tenant.ID)
	assert.Equal(t, "option_a", tenant.PosMode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de errores del backend
// ──────────────────────────────────────────────────────────────────────────────

// El mensaje del servidor sobrevive hasta el llamador.
func TestClient_ErrorConMensajeDelServidor(t *testing.T) {
	client, _ := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":"INVALID_MODE","message":"mode non reconnu"}`))
	})

	_, err := backend.NewTenantConfigGateway(client).UpdatePosMode(context.Background(), auth, "option_z")
	require.Error(t, err)
	assert.Equal(t, "mode non reconnu", backend.ServerMessage(err))
	assert.Contains(t, err.Error(), "mode non reconnu")
}

func TestClient_ErrorSinCuerpo(t *testing.T) {
	client, _ := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := backend.NewWarehouseGateway(client).List(context.Background(), auth)
	require.Error(t, err)
	assert.Empty(t, backend.ServerMessage(err))
	assert.Contains(t, err.Error(), "502")
}

func TestNewClient_BaseURLRequerida(t *testing.T) {
	_, err := backend.NewClient("  ", nil)
	assert.Error(t, err)
}
