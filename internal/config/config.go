package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/profit-calculator-api/pkg/validation"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Cors           Cors           `mapstructure:",squash"`
	Waitlist       Waitlist       `mapstructure:",squash"`
	WaitlistDigest WaitlistDigest `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port" validate:"required"`
}

type Database struct {
	DSN         string `mapstructure:"-"`
	Driver      string `mapstructure:"database_driver" validate:"oneof=postgres postgresql"`
	Password    string `mapstructure:"database_password"`
	URL         string `mapstructure:"database_url" validate:"required"`
	User        string `mapstructure:"database_user"`
	SSLMode     string `mapstructure:"database_sslmode"`
	AutoMigrate bool   `mapstructure:"database_auto_migrate"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns" validate:"gte=0"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	AdminEmail        string        `mapstructure:"admin_email"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl" validate:"gt=0"`
}

// Enabled indica se há credencial de operador configurada
func (a Auth) Enabled() bool {
	return a.Secret != "" && a.AdminEmail != "" && a.AdminPasswordHash != ""
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Waitlist struct {
	DefaultPageSize int `mapstructure:"waitlist_default_page_size" validate:"gt=0"`
	MaxPageSize     int `mapstructure:"waitlist_max_page_size" validate:"gtefield=DefaultPageSize"`
}

type WaitlistDigest struct {
	CronSchedule string `mapstructure:"waitlist_digest_cron"`
	Enabled      bool   `mapstructure:"waitlist_digest_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/calculator")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_AUTO_MIGRATE", true)
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("ADMIN_EMAIL", "")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "") // bcrypt
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("WAITLIST_DEFAULT_PAGE_SIZE", 50)
	viper.SetDefault("WAITLIST_MAX_PAGE_SIZE", 500)

	viper.SetDefault("WAITLIST_DIGEST_CRON", "0 8 * * *") // Todos os dias às 8h
	viper.SetDefault("WAITLIST_DIGEST_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Cors.AllowedOrigins = trimAll(config.Cors.AllowedOrigins)
	config.Database.DSN = buildDSN(config.Database)

	if err := validation.Default().Struct(config); err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}

	if !config.Auth.Enabled() {
		logrus.Warn("AUTH_SECRET, ADMIN_EMAIL ou ADMIN_PASSWORD_HASH ausentes: endpoints de administração ficarão indisponíveis")
	}

	return config, nil
}

// IsDevelopment indica ambiente local
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.App.Env)
	return env == "" || env == "development" || env == "dev"
}

func buildDSN(db Database) string {
	dsn := fmt.Sprintf(
		"%s://%s:%s@%s",
		db.Driver,
		db.User,
		db.Password,
		db.URL,
	)

	if db.SSLMode != "" && !strings.Contains(db.URL, "sslmode=") {
		separator := "?"
		if strings.Contains(db.URL, "?") {
			separator = "&"
		}
		dsn += separator + "sslmode=" + db.SSLMode
	}

	return dsn
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
