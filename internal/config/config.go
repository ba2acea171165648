package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Meta       Meta       `mapstructure:",squash"`
	TextGen    TextGen    `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Report     Report     `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"meta_url"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
}

// TextGen configura a integração opcional de geração de texto do resumo
// mensal. Sem APIKey a integração fica indisponível, mas o serviço sobe.
type TextGen struct {
	BaseURL string `mapstructure:"textgen_base_url"`
	APIKey  string `mapstructure:"textgen_api_key"`
	Model   string `mapstructure:"textgen_model"`
}

// Auth configura a credencial única do dashboard. Com Secret vazio a
// autenticação fica desabilitada e todas as rotas são públicas.
type Auth struct {
	Secret       string `mapstructure:"auth_secret"`
	PasswordHash string `mapstructure:"auth_password_hash"`
}

type Report struct {
	BudgetWorkers    int `mapstructure:"report_budget_workers"`
	ThrottleDays     int `mapstructure:"report_throttle_days"`
	InsightsRowLimit int `mapstructure:"-"`
}

type ReportSync struct {
	CronSchedule        string   `mapstructure:"report_sync_cron"`
	RequestDelaySeconds int      `mapstructure:"report_sync_request_delay_seconds"`
	Enabled             bool     `mapstructure:"report_sync_enabled"`
	AccountIDs          []string `mapstructure:"report_sync_account_ids"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adsreport")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")

	viper.SetDefault("TEXTGEN_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("TEXTGEN_API_KEY", "")
	viper.SetDefault("TEXTGEN_MODEL", "gpt-4o-mini")

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_PASSWORD_HASH", "")

	viper.SetDefault("REPORT_BUDGET_WORKERS", 8)
	viper.SetDefault("REPORT_THROTTLE_DAYS", 30)

	// Defaults para a pré-geração mensal de relatórios
	viper.SetDefault("REPORT_SYNC_CRON", "0 5 1 * *") // Primeiro dia de cada mês às 5h
	viper.SetDefault("REPORT_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("REPORT_SYNC_ENABLED", false)
	viper.SetDefault("REPORT_SYNC_ACCOUNT_IDS", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env):", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	// Limite fixo de linhas por consulta de insights; não é configurável.
	config.Report.InsightsRowLimit = 500

	if config.Meta.AccessToken == "" {
		logrus.Warn("META_ACCESS_TOKEN não configurado; chamadas à API de anúncios vão falhar")
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
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
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
