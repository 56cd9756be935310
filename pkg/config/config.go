package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Backends de catálogo soportados.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	HTTP     HTTPConfig
	Catalog  CatalogConfig
	Transfer TransferConfig
	Scanner  ScannerConfig
	Operator OperatorConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string
	SwaggerFile string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de los tokens de operador.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
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

// CatalogConfig elige de dónde sale el catálogo: datos mock en memoria o PostgreSQL.
type CatalogConfig struct {
	Backend string
}

// TransferConfig comportamiento del envío de traslados.
type TransferConfig struct {
	// RecordOrders publica cada envío como orden "pending" en el tablero. Por defecto el envío
	// solo confirma y vacía el carrito.
	RecordOrders bool
}

// ScannerConfig dispositivos relay registrados al arrancar.
type ScannerConfig struct {
	Devices []DeviceConfig
}

// DeviceConfig un dispositivo de escaneo (id:etiqueta).
type DeviceConfig struct {
	ID    string
	Label string
}

// OperatorConfig PIN con el que se siembran los operadores mock.
type OperatorConfig struct {
	DefaultPIN string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, CATALOG_BACKEND, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "stockbridge"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "stockbridge"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "stockbridge"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Catalog: CatalogConfig{
			Backend: strings.ToLower(getString(v, "CATALOG_BACKEND", BackendMemory)),
		},
		Transfer: TransferConfig{
			RecordOrders: getBool(v, "TRANSFER_RECORD_ORDERS", false),
		},
		Operator: OperatorConfig{
			DefaultPIN: getString(v, "OPERATOR_DEFAULT_PIN", "1234"),
		},
	}

	devices, err := parseDevices(getString(v, "SCANNER_DEVICES", "cam-front:Front Camera"))
	if err != nil {
		return nil, err
	}
	cfg.Scanner.Devices = devices

	switch cfg.Catalog.Backend {
	case BackendMemory, BackendPostgres:
	default:
		return nil, fmt.Errorf("config: CATALOG_BACKEND desconocido %q", cfg.Catalog.Backend)
	}
	return cfg, nil
}

// parseDevices interpreta "id:etiqueta,id2:etiqueta2". Sin etiqueta se usa "Camera <id>".
func parseDevices(raw string) ([]DeviceConfig, error) {
	var out []DeviceConfig
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, label, _ := strings.Cut(part, ":")
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("config: SCANNER_DEVICES con id vacío en %q", part)
		}
		label = strings.TrimSpace(label)
		if label == "" {
			label = "Camera " + id
		}
		out = append(out, DeviceConfig{ID: id, Label: label})
	}
	return out, nil
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
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
