package usecase

import (
	"strings"
	"sync"

	"github.com/jhoicas/pos-front/internal/domain/entity"
)

// viewByRole es el mapeo cerrado rol → vista. Reemplaza la cadena if/else de
// la SPA original por una tabla explícita: el orden de evaluación deja de
// importar y el fallback queda a la vista.
var viewByRole = map[string]entity.ViewID{
	entity.RoleSuperAdmin:       entity.ViewSuperAdmin,
	entity.RoleManager:          entity.ViewManager,
	entity.RoleAccountant:       entity.ViewAccountant,
	entity.RoleMagasinierGros:   entity.ViewMagasinier,
	entity.RoleMagasinierDetail: entity.ViewMagasinier,
	entity.RoleCaissier:         entity.ViewCaissier,
	entity.RolePosServer:        entity.ViewServer,
}

// ResolveView resuelve la vista de dashboard para un rol. Cualquier rol
// desconocido (incluido el vacío) cae en la vista por defecto: política
// fail-open hacia un tablero genérico, nunca una pantalla en blanco.
// Puro y determinista: mismo rol, misma vista.
func ResolveView(role string) entity.ViewID {
	if v, ok := viewByRole[role]; ok {
		return v
	}
	return entity.ViewDefault
}

// defaultTabCache memoriza la pestaña inicial por rol: el chequeo de substring
// se hace una sola vez por rol, no en cada render.
var defaultTabCache sync.Map // string -> entity.TabID

// DefaultTab devuelve la pestaña inicial del contenedor de aprovisionamiento:
// "detail" si el rol contiene ese substring (magasinier_detail), "gros" en
// cualquier otro caso.
func DefaultTab(role string) entity.TabID {
	if v, ok := defaultTabCache.Load(role); ok {
		return v.(entity.TabID)
	}
	tab := entity.TabGros
	if strings.Contains(role, "detail") {
		tab = entity.TabDetail
	}
	defaultTabCache.Store(role, tab)
	return tab
}
