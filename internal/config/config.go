package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

type DB struct {
	DbHOST         string
	DbPORT         string
	DbUSER         string
	DbPASSWORD     string
	DbNAME         string
	DbSSLMODE      string
	MigrationsPath string
}

type Mongo struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

type Log struct {
	Level  string
	Format string
}

type Config struct {
	ServerPort         int
	StoreDriver        string
	DB                 DB
	Mongo              Mongo
	Log                Log
	TokenKey           string
	TokenDuration      time.Duration
	BcryptCost         int
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}

func LoadDB() DB {
	return DB{
		DbHOST:         getEnv("DB_HOST", "localhost"),
		DbPORT:         getEnv("DB_PORT", "5432"),
		DbUSER:         getEnv("DB_USER", "postgres"),
		DbPASSWORD:     getEnv("DB_PASSWORD", "password"),
		DbNAME:         getEnv("DB_NAME", "hackatweet"),
		DbSSLMODE:      getEnv("DB_SSLMODE", "disable"),
		MigrationsPath: getEnv("DB_MIGRATIONS_PATH", "migrations/001_create_tables.sql"),
	}
}

func LoadMongo() Mongo {
	return Mongo{
		URI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Database:       getEnv("MONGO_DATABASE", "hackatweet"),
		ConnectTimeout: parseDuration(getEnv("MONGO_CONNECT_TIMEOUT", "10s"), 10*time.Second),
	}
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:  getEnvAsInt("SERVER_PORT", 3000),
		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", StoreMongo)),
		DB:          LoadDB(),
		Mongo:       LoadMongo(),
		Log: Log{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		TokenKey:           getEnv("TOKEN_KEY", ""),
		TokenDuration:      parseDuration(getEnv("TOKEN_DURATION", "2h"), 2*time.Hour),
		BcryptCost:         getEnvAsInt("BCRYPT_COST", 10),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		ShutdownTimeout:    parseDuration(getEnv("SHUTDOWN_TIMEOUT", "5s"), 5*time.Second),
	}
}
