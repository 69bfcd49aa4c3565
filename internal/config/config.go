package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Redis        Redis        `mapstructure:",squash"`
	Meta         Meta         `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Dashboard    Dashboard    `mapstructure:",squash"`
	CampaignSync CampaignSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

type Meta struct {
	BaseURL     string        `mapstructure:"meta_base_url"`
	URL         string        `mapstructure:"meta_url"`
	Version     string        `mapstructure:"meta_version"`
	AccessToken string        `mapstructure:"meta_access_token"`
	Timeout     time.Duration `mapstructure:"meta_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret   string        `mapstructure:"jwt_secret"`
	TokenTTL time.Duration `mapstructure:"jwt_token_ttl"`
}

type Dashboard struct {
	WindowDays int `mapstructure:"dashboard_window_days"`
}

type CampaignSync struct {
	CronSchedule        string `mapstructure:"campaign_sync_cron"`
	LookbackDays        int    `mapstructure:"campaign_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"campaign_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"campaign_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"campaign_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 5001)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,https://inpulse-frontend.onrender.com")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/inpulse?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "5m")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_TIMEOUT", "30s")

	viper.SetDefault("JWT_SECRET", "your_secret_key")
	viper.SetDefault("JWT_TOKEN_TTL", "8h")

	viper.SetDefault("DASHBOARD_WINDOW_DAYS", 30)

	// Defaults para sincronização de campanhas
	viper.SetDefault("CAMPAIGN_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("CAMPAIGN_SYNC_LOOKBACK_DAYS", 30)        // 30 dias para buscar dados
	viper.SetDefault("CAMPAIGN_SYNC_REQUEST_DELAY_SECONDS", 1) // 1 segundo entre requisições
	viper.SetDefault("CAMPAIGN_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("CAMPAIGN_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate garante que os valores obrigatórios estejam presentes
func (c *Config) Validate() error {
	if c.Auth.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET é obrigatório")
	}

	if c.Database.URL == "" {
		return fmt.Errorf("config: DATABASE_URL é obrigatório")
	}

	if c.Dashboard.WindowDays <= 0 {
		return fmt.Errorf("config: DASHBOARD_WINDOW_DAYS deve ser positivo, recebido %d", c.Dashboard.WindowDays)
	}

	if c.CampaignSync.MaxConcurrentJobs <= 0 {
		c.CampaignSync.MaxConcurrentJobs = 1
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
