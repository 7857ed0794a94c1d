package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBDriver      string // "mongo" or "sqlite"
	MongoURI      string
	MongoDatabase string
	DBSource      string
	DBTimeout     time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	AdminEmail    string
	AdminPassword string

	ImageDir string

	AMQPURL         string
	StripeSecretKey string
	StripeCurrency  string

	CORSAllowOrigins []string
}

// LoadConfig reads .env (if any) and the process environment. It is called
// once from main and the result is handed to everything that needs it.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	return &Config{
		Port:             getEnv("PORT", "8000"),
		DBDriver:         getEnv("DB_DRIVER", "mongo"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnv("MONGO_DATABASE", "food_delivery"),
		DBSource:         getEnv("DB_SOURCE", "food_delivery.db"),
		DBTimeout:        parseDuration(getEnv("DB_TIMEOUT", "10s"), 10*time.Second),
		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		JWTTTL:           parseDuration(getEnv("JWT_TTL", "24h"), 24*time.Hour),
		AdminEmail:       strings.ToLower(getEnv("ADMIN_EMAIL", "")),
		AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
		ImageDir:         getEnv("IMAGE_DIR", "images"),
		AMQPURL:          getEnv("AMQP_URL", ""),
		StripeSecretKey:  getEnv("STRIPE_SECRET_KEY", ""),
		StripeCurrency:   getEnv("STRIPE_CURRENCY", "inr"),
		CORSAllowOrigins: splitCSV(getEnv("CORS_ALLOW_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
