package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		// DSN в формате go-sql-driver:
		// user:pass@tcp(host:3306)/photobook?charset=utf8mb4&parseTime=True&loc=Local
		DSN string `yaml:"dsn"`
	} `yaml:"database"`

	FirstAdminName     string `yaml:"-"`
	FirstAdminEmail    string `yaml:"-"`
	FirstAdminPassword string `yaml:"-"`
}

var AppConfig *Config

func LoadConfig() {
	var cfg Config

	// .env необязателен: в контейнере все приходит через окружение
	_ = godotenv.Load()

	dbDSN := os.Getenv("DATABASE_DSN")
	serverEnv := os.Getenv("SERVER_ENV")
	portStr := os.Getenv("SERVER_PORT")

	if dbDSN == "" {
		log.Println("Загрузка из config.yaml")

		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	} else {
		log.Println("✅ Загрузка конфигурации из переменных окружения")

		cfg.Database.DSN = dbDSN
		cfg.Server.Env = serverEnv
		cfg.Server.Port, _ = strconv.Atoi(portStr)
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}

	cfg.FirstAdminName = os.Getenv("FIRST_ADMIN_NAME")
	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	AppConfig = &cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
