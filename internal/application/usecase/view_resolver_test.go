package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-front/internal/application/usecase"
	"github.com/jhoicas/pos-front/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests ResolveView — mapeo cerrado rol → vista
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveView_RolesConocidos(t *testing.T) {
	cases := map[string]entity.ViewID{
		entity.RoleSuperAdmin:       entity.ViewSuperAdmin,
		entity.RoleManager:          entity.ViewManager,
		entity.RoleAccountant:       entity.ViewAccountant,
		entity.RoleMagasinierGros:   entity.ViewMagasinier,
		entity.RoleMagasinierDetail: entity.ViewMagasinier,
		entity.RoleCaissier:         entity.ViewCaissier,
		entity.RolePosServer:        entity.ViewServer,
	}
	for role, want := range cases {
		assert.Equal(t, want, usecase.ResolveView(role), "rol %s", role)
	}
}

// Rol desconocido o vacío cae en la vista por defecto, nunca en blanco.
func TestResolveView_RolDesconocido_CaeEnDefault(t *testing.T) {
	assert.Equal(t, entity.ViewDefault, usecase.ResolveView("intern"))
	assert.Equal(t, entity.ViewDefault, usecase.ResolveView(""))
	assert.Equal(t, entity.ViewDefault, usecase.ResolveView("MANAGER"), "el mapeo es sensible a mayúsculas")
}

// Determinismo: mismo rol, misma vista en llamadas repetidas.
func TestResolveView_Determinista(t *testing.T) {
	first := usecase.ResolveView(entity.RoleCaissier)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, usecase.ResolveView(entity.RoleCaissier))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DefaultTab — pestaña inicial por substring del rol
// ──────────────────────────────────────────────────────────────────────────────

func TestDefaultTab_PorRol(t *testing.T) {
	assert.Equal(t, entity.TabDetail, usecase.DefaultTab(entity.RoleMagasinierDetail))
	assert.Equal(t, entity.TabGros, usecase.DefaultTab(entity.RoleMagasinierGros))
	assert.Equal(t, entity.TabGros, usecase.DefaultTab(entity.RoleManager))
	assert.Equal(t, entity.TabGros, usecase.DefaultTab(""))
}

// La memoización no altera el resultado en llamadas repetidas.
func TestDefaultTab_Memoizado(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, entity.TabDetail, usecase.DefaultTab("magasinier_detail"))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AccessibleRoutes — catálogo por rol y opción POS
// ──────────────────────────────────────────────────────────────────────────────

// labels aplana el menú (un nivel de grupos) a sus etiquetas.
func labels(role, posOption string) []string {
	var out []string
	for _, r := range usecase.AccessibleRoutes(role, posOption) {
		out = append(out, r.Label)
		for _, c := range r.Children {
			out = append(out, c.Label)
		}
	}
	return out
}

func TestAccessibleRoutes_RolDesconocido_SoloDashboard(t *testing.T) {
	routes := usecase.AccessibleRoutes("visitante", "")
	assert.Len(t, routes, 1)
	assert.Equal(t, "Dashboard", routes[0].Label)
}

// admin es alias histórico de owner: mismo menú.
func TestAccessibleRoutes_AdminAliasDeOwner(t *testing.T) {
	admin := usecase.AccessibleRoutes(entity.RoleAdmin, entity.PosOptionB)
	owner := usecase.AccessibleRoutes(entity.RoleOwner, entity.PosOptionB)
	assert.Equal(t, owner, admin)
}

// En opción A el stock delegado desaparece para manager y pos_server.
func TestAccessibleRoutes_OpcionA_FiltraStockDelegado(t *testing.T) {
	assert.NotContains(t, labels(entity.RoleManager, entity.PosOptionA), "Stock Serveurs")
	assert.NotContains(t, labels(entity.RolePosServer, entity.PosOptionA), "Mon Stock")

	assert.Contains(t, labels(entity.RoleManager, entity.PosOptionB), "Stock Serveurs")
	assert.Contains(t, labels(entity.RolePosServer, entity.PosOptionB), "Mon Stock")
}

// La opción POS no afecta a roles sin rutas de stock delegado.
func TestAccessibleRoutes_OpcionNoAfectaOtrosRoles(t *testing.T) {
	a := usecase.AccessibleRoutes(entity.RoleAccountant, entity.PosOptionA)
	b := usecase.AccessibleRoutes(entity.RoleAccountant, entity.PosOptionB)
	assert.Equal(t, a, b)
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Gérant", usecase.RoleLabel(entity.RoleManager))
	assert.Equal(t, "Serveur POS", usecase.RoleLabel(entity.RolePosServer))
	assert.Equal(t, "rol_raro", usecase.RoleLabel("rol_raro"), "rol desconocido se muestra tal cual")
}
