package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-front/internal/application/usecase"
	"github.com/jhoicas/pos-front/internal/domain/entity"
	"github.com/jhoicas/pos-front/internal/domain/gateway"
	"github.com/jhoicas/pos-front/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeWarehouseGateway struct {
	list  []entity.Warehouse
	err   error
	calls int
}

func (f *fakeWarehouseGateway) List(_ context.Context, _ gateway.Auth) ([]entity.Warehouse, error) {
	f.calls++
	return f.list, f.err
}

type fakeSnapshotCache struct {
	saved map[string][]entity.Warehouse
}

func newFakeSnapshotCache() *fakeSnapshotCache {
	return &fakeSnapshotCache{saved: make(map[string][]entity.Warehouse)}
}

func (f *fakeSnapshotCache) SaveWarehouses(_ context.Context, sessionID string, list []entity.Warehouse) error {
	f.saved[sessionID] = list
	return nil
}

func (f *fakeSnapshotCache) GetWarehouses(_ context.Context, sessionID string) ([]entity.Warehouse, bool, error) {
	list, ok := f.saved[sessionID]
	return list, ok, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func testSession(role string) entity.Session {
	return entity.Session{
		ID:     "sess-1",
		User:   entity.User{ID: "u1", Role: role},
		Tenant: entity.Tenant{ID: "t1"},
	}
}

var testAuth = gateway.Auth{Token: "tok", TenantID: "t1"}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Load — montaje del contenedor
// ──────────────────────────────────────────────────────────────────────────────

func TestProcurement_Load_ParticionaYGuardaInstantanea(t *testing.T) {
	gw := &fakeWarehouseGateway{list: []entity.Warehouse{
		{ID: "w1", Name: "Dépôt Central", Type: entity.WarehouseGros},
		{ID: "w2", Name: "Boutique", Type: entity.WarehouseDetail},
	}}
	cache := newFakeSnapshotCache()
	uc := usecase.NewProcurementUseCase(gw, cache, testLogger())

	view := uc.Load(context.Background(), testSession(entity.RoleMagasinierGros), testAuth, usecase.DefaultTab(entity.RoleMagasinierGros))

	require.NotNil(t, view.Gros)
	require.NotNil(t, view.Detail)
	assert.Equal(t, "Dépôt Central", view.Gros.Name)
	assert.Equal(t, "Boutique", view.Detail.Name)
	assert.Equal(t, entity.TabGros, view.ActiveTab)
	assert.True(t, view.Loaded)
	assert.Len(t, cache.saved["sess-1"], 2, "la instantánea debe quedar guardada por sesión")
}

// Un fallo del backend degrada a vacío: nunca rompe la página.
func TestProcurement_Load_FalloDegradaAVacio(t *testing.T) {
	gw := &fakeWarehouseGateway{err: errors.New("backend caído")}
	cache := newFakeSnapshotCache()
	uc := usecase.NewProcurementUseCase(gw, cache, testLogger())

	view := uc.Load(context.Background(), testSession(entity.RoleManager), testAuth, entity.TabGros)

	assert.Nil(t, view.Gros)
	assert.Nil(t, view.Detail)
	assert.False(t, view.Loaded)
	assert.Empty(t, cache.saved, "un fallo no debe dejar instantánea")
}

// Con magasins duplicados del mismo tipo gana el primero.
func TestProcurement_Load_DuplicadosGanaElPrimero(t *testing.T) {
	gw := &fakeWarehouseGateway{list: []entity.Warehouse{
		{ID: "w1", Name: "Primero", Type: entity.WarehouseGros},
		{ID: "w2", Name: "Segundo", Type: entity.WarehouseGros},
	}}
	uc := usecase.NewProcurementUseCase(gw, newFakeSnapshotCache(), testLogger())

	view := uc.Load(context.Background(), testSession(entity.RoleManager), testAuth, entity.TabGros)

	require.NotNil(t, view.Gros)
	assert.Equal(t, "Primero", view.Gros.Name)
	assert.Nil(t, view.Detail)
}

// Tenant sin magasin de un tipo: el sub-view correspondiente queda nil.
func TestProcurement_Load_MagasinFaltante(t *testing.T) {
	gw := &fakeWarehouseGateway{list: []entity.Warehouse{
		{ID: "w1", Name: "Solo Gros", Type: entity.WarehouseGros},
	}}
	uc := usecase.NewProcurementUseCase(gw, newFakeSnapshotCache(), testLogger())

	view := uc.Load(context.Background(), testSession(entity.RoleMagasinierDetail), testAuth, entity.TabDetail)

	assert.Equal(t, entity.TabDetail, view.ActiveTab)
	assert.Nil(t, view.Detail, "sin magasin detail el panel muestra no configurado")
	require.NotNil(t, view.Gros)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SwitchTab — sin refetch dentro del montaje
// ──────────────────────────────────────────────────────────────────────────────

func TestProcurement_SwitchTab_UsaInstantaneaSinRefetch(t *testing.T) {
	gw := &fakeWarehouseGateway{list: []entity.Warehouse{
		{ID: "w1", Name: "Dépôt", Type: entity.WarehouseGros},
		{ID: "w2", Name: "Boutique", Type: entity.WarehouseDetail},
	}}
	cache := newFakeSnapshotCache()
	uc := usecase.NewProcurementUseCase(gw, cache, testLogger())
	sess := testSession(entity.RoleMagasinierGros)

	uc.Load(context.Background(), sess, testAuth, entity.TabGros)
	require.Equal(t, 1, gw.calls)

	view := uc.SwitchTab(context.Background(), sess, testAuth, entity.TabDetail)

	assert.Equal(t, 1, gw.calls, "cambiar de pestaña no debe volver al backend")
	assert.Equal(t, entity.TabDetail, view.ActiveTab)
	require.NotNil(t, view.Detail)
	assert.Equal(t, "Boutique", view.Detail.Name)
}

// Instantánea expirada: SwitchTab recarga una sola vez.
func TestProcurement_SwitchTab_SinInstantaneaRecarga(t *testing.T) {
	gw := &fakeWarehouseGateway{list: []entity.Warehouse{
		{ID: "w1", Name: "Dépôt", Type: entity.WarehouseGros},
	}}
	uc := usecase.NewProcurementUseCase(gw, newFakeSnapshotCache(), testLogger())

	view := uc.SwitchTab(context.Background(), testSession(entity.RoleManager), testAuth, entity.TabGros)

	assert.Equal(t, 1, gw.calls)
	require.NotNil(t, view.Gros)
}

// Pestaña inválida cae en la pestaña por defecto del rol.
func TestProcurement_TabInvalida_CaeEnDefault(t *testing.T) {
	gw := &fakeWarehouseGateway{}
	uc := usecase.NewProcurementUseCase(gw, newFakeSnapshotCache(), testLogger())

	view := uc.Load(context.Background(), testSession(entity.RoleMagasinierDetail), testAuth, entity.TabID("inventada"))

	assert.Equal(t, entity.TabDetail, view.ActiveTab)
}
