package entity

// Roles reconocidos por la plataforma. Vienen del backend en el JWT de sesión;
// cualquier valor fuera de esta lista cae en la vista por defecto.
const (
	RoleSuperAdmin      = "super_admin"
	RoleOwner           = "owner"
	RoleAdmin           = "admin"
	RoleManager         = "manager"
	RoleAccountant      = "accountant"
	RoleMagasinierGros  = "magasinier_gros"
	RoleMagasinierDetail = "magasinier_detail"
	RoleCaissier        = "caissier"
	RolePosServer       = "pos_server"
	RoleAuditor         = "auditor"
	RoleSupplier        = "supplier"
)

// Opciones POS por usuario: "A" flujo estándar, "B" stock delegado a serveurs.
const (
	PosOptionA = "A"
	PosOptionB = "B"
)

// User representa al usuario autenticado tal como lo entrega el backend.
// Es de solo lectura para esta capa; el rol decide la vista a renderizar.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      string
	PosOption string // "A" | "B"; vacío se trata como "A"
}
