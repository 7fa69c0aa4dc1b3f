package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Redis   RedisConfig
	Session SessionConfig
	JWT     JWTConfig
	Payment PaymentConfig
	Refresh RefreshConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig apunta al API REST del backend (colaborador externo).
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RedisConfig conexión al Redis de sesiones/instantáneas.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SessionConfig cookie y vigencia de la sesión local.
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	LoginURL   string // destino cuando no hay sesión (página de login externa)
}

// JWTConfig validación del token de sesión emitido por el backend.
type JWTConfig struct {
	Secret string
	Issuer string
}

// PaymentConfig configuración del widget de pago embebido.
// KeySource decide de dónde sale la clave pública: "config" usa PublicKey tal
// cual (resuelta al construir la app); "env" la lee del proceso en tiempo de
// ejecución desde la variable PublicKeyEnv.
type PaymentConfig struct {
	PublicKey    string
	KeySource    string // config | env
	PublicKeyEnv string
	CallbackPath string
}

// RefreshConfig ciclo de refresco de los tableros.
type RefreshConfig struct {
	Interval time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, REDIS_ADDR, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "pos-front"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL: getString(v, "BACKEND_BASE_URL", "http://localhost:8080/api"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Session: SessionConfig{
			CookieName: getString(v, "SESSION_COOKIE_NAME", "pos_session"),
			TTL:        time.Duration(getInt(v, "SESSION_TTL_MINUTES", 480)) * time.Minute,
			LoginURL:   getString(v, "SESSION_LOGIN_URL", "/login"),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "pos-backend"),
		},
		Payment: PaymentConfig{
			PublicKey:    getString(v, "FEDAPAY_PUBLIC_KEY", ""),
			KeySource:    getString(v, "FEDAPAY_KEY_SOURCE", "config"),
			PublicKeyEnv: getString(v, "FEDAPAY_PUBLIC_KEY_ENV", "FEDAPAY_PUBLIC_KEY"),
			CallbackPath: getString(v, "PAYMENT_CALLBACK_PATH", "/payment/callback"),
		},
		Refresh: RefreshConfig{
			Interval: time.Duration(getInt(v, "DASHBOARD_REFRESH_SECONDS", 30)) * time.Second,
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("config: BACKEND_BASE_URL es requerido")
	}
	// El scheduler de refresco exige un intervalo positivo; un valor ilegible
	// en el entorno no debe degenerar en cero.
	if cfg.Refresh.Interval <= 0 {
		return nil, fmt.Errorf("config: DASHBOARD_REFRESH_SECONDS debe ser un entero mayor que cero")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
