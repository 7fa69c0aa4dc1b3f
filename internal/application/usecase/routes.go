package usecase

import (
	"github.com/jhoicas/pos-front/internal/application/dto"
	"github.com/jhoicas/pos-front/internal/domain/entity"
)

// Catálogo de rutas navegables. Los paths pertenecen al router del cliente;
// aquí solo se decide cuáles ve cada rol.
var (
	routeDashboard      = dto.RouteItem{Label: "Dashboard", Icon: "📊", Path: "/dashboard"}
	routePlatform       = dto.RouteItem{Label: "Plateforme", Icon: "🌐", Path: "/platform"}
	routeTenants        = dto.RouteItem{Label: "Tenants", Icon: "🏢", Path: "/tenant-management"}
	routeMonitoring     = dto.RouteItem{Label: "Monitoring", Icon: "📊", Path: "/monitoring"}
	routeUsers          = dto.RouteItem{Label: "Utilisateurs", Icon: "👤", Path: "/users-management"}
	routeSuppliers      = dto.RouteItem{Label: "Fournisseurs", Icon: "🏭", Path: "/suppliers"}
	routeProducts       = dto.RouteItem{Label: "Produits", Icon: "🏷️", Path: "/products"}
	routeApprovisionnement = dto.RouteItem{Label: "Approvisionnement", Icon: "🏪", Path: "/approvisionnement"}
	routeInventory      = dto.RouteItem{Label: "Inventaire", Icon: "📋", Path: "/inventory-enriched"}
	routeTransfers      = dto.RouteItem{Label: "Transferts", Icon: "🔄", Path: "/transfers"}
	routeSalesManager   = dto.RouteItem{Label: "Ventes", Icon: "🍽️", Path: "/pos/manager-orders"}
	routeServerStock    = dto.RouteItem{Label: "Stock Serveurs", Icon: "📤", Path: "/server-stock"}
	routeJournaux       = dto.RouteItem{Label: "Journaux", Icon: "📚", Path: "/journaux"}
	routeGrandLivre     = dto.RouteItem{Label: "Grand Livre", Icon: "📖", Path: "/grand-livre"}
	routeBalance        = dto.RouteItem{Label: "Balance", Icon: "⚖️", Path: "/balance"}
	routeReports        = dto.RouteItem{Label: "Rapports", Icon: "📄", Path: "/reports"}
	routePos            = dto.RouteItem{Label: "Point de Vente", Icon: "🛍️", Path: "/pos"}
	routeMyOrders       = dto.RouteItem{Label: "Mes Commandes", Icon: "📋", Path: "/pos/my-orders"}
	routeMyStock        = dto.RouteItem{Label: "Mon Stock", Icon: "📦", Path: "/server-stock"}
	routeMyCash         = dto.RouteItem{Label: "Ma Caisse", Icon: "🏧", Path: "/cash-register"}
	routeExpenses       = dto.RouteItem{Label: "Charges", Icon: "💸", Path: "/expense-tracking"}
)

func menuGroup(label, icon string, children ...dto.RouteItem) dto.RouteItem {
	return dto.RouteItem{Label: label, Icon: icon, Children: children}
}

// roleRoutes rutas base por rol. Los roles no listados reciben defaultRoutes.
var roleRoutes = map[string][]dto.RouteItem{
	entity.RoleSuperAdmin: {
		routeDashboard, routePlatform, routeTenants, routeMonitoring,
	},
	entity.RoleManager: {
		routeDashboard,
		menuGroup("Approvisionnement", "📦", routeProducts, routeApprovisionnement, routeInventory, routeTransfers),
		routeSalesManager, routeServerStock,
		menuGroup("Gestion Financière", "🏦", routeMyCash, routeExpenses, routeReports),
	},
	entity.RoleAccountant: {
		routeDashboard, routeJournaux, routeGrandLivre, routeBalance, routeExpenses, routeReports,
	},
	entity.RoleMagasinierGros: {
		routeDashboard, routeApprovisionnement, routeInventory, routeSuppliers,
	},
	entity.RoleMagasinierDetail: {
		routeDashboard, routeApprovisionnement, routeInventory,
	},
	entity.RoleCaissier: {
		routeDashboard, routePos, routeMyCash,
	},
	entity.RolePosServer: {
		routeDashboard, routePos, routeMyOrders, routeMyStock,
	},
	entity.RoleOwner: {
		routeDashboard,
		menuGroup("Collaborateurs", "👥", routeUsers, routeSuppliers),
		menuGroup("Approvisionnement", "📦", routeProducts, routeApprovisionnement, routeInventory),
		routeSalesManager,
		menuGroup("Gestion Financière", "🏦", routeMyCash, routeExpenses, routeReports),
	},
}

var defaultRoutes = []dto.RouteItem{routeDashboard}

// AccessibleRoutes devuelve las rutas navegables según el rol y la opción POS
// del usuario. En opción A (flujo estándar) las rutas de stock delegado
// desaparecen para manager y pos_server; en opción B se conservan.
func AccessibleRoutes(role, posOption string) []dto.RouteItem {
	base, ok := roleRoutes[role]
	if role == entity.RoleAdmin {
		// admin es alias histórico de owner
		base, ok = roleRoutes[entity.RoleOwner], true
	}
	if !ok {
		return defaultRoutes
	}

	if posOption != entity.PosOptionB && (role == entity.RoleManager || role == entity.RolePosServer) {
		filtered := make([]dto.RouteItem, 0, len(base))
		for _, r := range base {
			if r.Path == routeServerStock.Path && r.Label == routeServerStock.Label {
				continue
			}
			if r.Path == routeMyStock.Path && r.Label == routeMyStock.Label {
				continue
			}
			filtered = append(filtered, r)
		}
		return filtered
	}

	return base
}

// RoleLabel texto mostrable del rol; los desconocidos se muestran tal cual.
func RoleLabel(role string) string {
	labels := map[string]string{
		entity.RoleSuperAdmin:       "Super Admin",
		entity.RoleOwner:            "Propriétaire",
		entity.RoleAdmin:            "Administrateur",
		entity.RoleManager:          "Gérant",
		entity.RoleAccountant:       "Comptable",
		entity.RoleMagasinierGros:   "Magasinier Gros",
		entity.RoleMagasinierDetail: "Magasinier Détail",
		entity.RoleCaissier:         "Caissier",
		entity.RolePosServer:        "Serveur POS",
		entity.RoleAuditor:          "Auditeur",
		entity.RoleSupplier:         "Fournisseur",
	}
	if l, ok := labels[role]; ok {
		return l
	}
	return role
}
