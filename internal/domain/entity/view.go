package entity

// ViewID identifica una vista de dashboard. Enumeración cerrada: el resolver
// de vistas nunca produce un valor fuera de esta lista.
type ViewID string

const (
	ViewSuperAdmin ViewID = "super_admin"
	ViewManager    ViewID = "manager"
	ViewAccountant ViewID = "accountant"
	ViewMagasinier ViewID = "magasinier"
	ViewCaissier   ViewID = "caissier"
	ViewServer     ViewID = "server"
	ViewDefault    ViewID = "default"
)

// TabID identifica una pestaña del contenedor de aprovisionamiento.
type TabID string

const (
	TabGros   TabID = "gros"
	TabDetail TabID = "detail"
)
