package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"github.com/vfg2006/dashboard-demo-api/pkg/utils"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Dataset  Dataset  `mapstructure:",squash"`
	Session  Session  `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
	Admin    Admin    `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Chart    Chart    `mapstructure:",squash"`
	Cors     Cors     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Dataset define o intervalo e a semente dos dados sintéticos de cada sessão
type Dataset struct {
	StartDate string `mapstructure:"dataset_start_date"`
	EndDate   string `mapstructure:"dataset_end_date"`
	Seed      uint32 `mapstructure:"dataset_seed"`
}

type Session struct {
	TTL            time.Duration `mapstructure:"session_ttl"`
	CleanupCron    string        `mapstructure:"session_cleanup_cron"`
	CleanupEnabled bool          `mapstructure:"session_cleanup_enabled"`
	HistoryLimit   int           `mapstructure:"session_history_limit"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type Admin struct {
	Email        string `mapstructure:"admin_email"`
	PasswordHash string `mapstructure:"admin_password_hash"`
}

type Database struct {
	Enabled  bool   `mapstructure:"database_enabled"`
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Chart struct {
	Width  int    `mapstructure:"chart_width"`
	Height int    `mapstructure:"chart_height"`
	Theme  string `mapstructure:"chart_theme"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	// Ano de 2024 completo com semente 42
	viper.SetDefault("DATASET_START_DATE", "2024-01-01")
	viper.SetDefault("DATASET_END_DATE", "2024-12-31")
	viper.SetDefault("DATASET_SEED", 42)

	viper.SetDefault("SESSION_TTL", "30m")
	viper.SetDefault("SESSION_CLEANUP_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("SESSION_CLEANUP_ENABLED", true)
	viper.SetDefault("SESSION_HISTORY_LIMIT", 100)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("ADMIN_EMAIL", "admin@localhost")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("CHART_WIDTH", 1024)
	viper.SetDefault("CHART_HEIGHT", 512)
	viper.SetDefault("CHART_THEME", string(domain.ThemeDefault))

	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})
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

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if _, err := config.DatasetConfig(); err != nil {
		return nil, err
	}

	return config, nil
}

// DatasetConfig converte as datas configuradas para o formato do gerador
func (c *Config) DatasetConfig() (domain.DatasetConfig, error) {
	start, err := utils.ParseRequiredDate(c.Dataset.StartDate)
	if err != nil {
		return domain.DatasetConfig{}, errors.Wrap(err, "config: DATASET_START_DATE inválida")
	}

	end, err := utils.ParseRequiredDate(c.Dataset.EndDate)
	if err != nil {
		return domain.DatasetConfig{}, errors.Wrap(err, "config: DATASET_END_DATE inválida")
	}

	cfg := domain.DatasetConfig{StartDate: start, EndDate: end, Seed: c.Dataset.Seed}
	if err := cfg.Validate(); err != nil {
		return domain.DatasetConfig{}, errors.Wrap(err, "config: intervalo do dataset")
	}

	return cfg, nil
}

// Address retorna host:porta para o servidor HTTP
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
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
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
