package payment

import "os"

// KeySource abstrae de dónde sale la clave pública del widget. El despliegue
// clásico la fija en la configuración al arrancar; el despliegue contenedores
// la lee del entorno del proceso en cada uso.
type KeySource interface {
	PublicKey() string
}

// StaticKeySource clave resuelta al construir la aplicación (vía config).
type StaticKeySource struct {
	Key string
}

// PublicKey devuelve la clave fija.
func (s StaticKeySource) PublicKey() string { return s.Key }

// EnvKeySource clave leída del entorno del proceso en tiempo de ejecución.
type EnvKeySource struct {
	Var string
}

// PublicKey consulta la variable de entorno en cada llamada.
func (s EnvKeySource) PublicKey() string { return os.Getenv(s.Var) }
