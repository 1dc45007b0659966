package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI   string
	MongoDB    string
	JWTSecret  string
	PORT       string
	UploadDir  string
	RedisAddr  string
	CORSOrigin string
	AppEnv     string
}

type CollectionName string

var DB_Collection = struct {
	Users    CollectionName
	Jobs     CollectionName
	Messages CollectionName
}{
	Users:    "users",
	Jobs:     "jobs",
	Messages: "messages",
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	AppConfig = &Config{
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:    getEnv("MONGO_DB", "artisanHubDB"),
		JWTSecret:  getEnv("JWT_SECRET", ""),
		PORT:       getEnv("APP_PORT", "5000"),
		UploadDir:  getEnv("UPLOAD_DIR", "./uploads"),
		RedisAddr:  getEnv("REDIS_ADDR", ""),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		AppEnv:     getEnv("APP_ENV", "production"),
	}

	log.Println("Environment variables loaded successfully")
}

// IsDevelopment reports whether verbose error detail may be returned to clients.
func IsDevelopment() bool {
	return AppConfig != nil && AppConfig.AppEnv == "development"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
