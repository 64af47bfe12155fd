package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Settings is everything the server and campctl read from the environment.
type Settings struct {
	AppHost string
	AppPort string

	StoreBackend string // memory, redis, mysql, postgres, sqlite
	StorePrefix  string
	FAQKey       string
	NoticeKey    string
	DBDSN        string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret         string
	JWTTTL            time.Duration
	AdminUsername     string
	AdminPasswordHash string

	BasicAuthUser string
	BasicAuthPass string

	RecaptchaSecret   string
	RecaptchaMinScore float64

	SeedFile string
	LogLevel string
}

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env not found, using system environment")
	}
}

func GetEnv(key string, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func GetEnvInt(key string, defaultVal int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return n
}

func GetEnvFloat(key string, defaultVal float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func GetEnvDuration(key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return d
}

// Load reads Settings from the process environment. Call LoadEnv first to
// pick up a .env file.
func Load() Settings {
	return Settings{
		AppHost: GetEnv("APP_HOST", ""),
		AppPort: GetEnv("APP_PORT", "8080"),

		StoreBackend: GetEnv("STORE_BACKEND", "memory"),
		StorePrefix:  GetEnv("STORE_PREFIX", ""),
		FAQKey:       GetEnv("FAQ_KEY", "kodevidecamp_faqs"),
		NoticeKey:    GetEnv("NOTICE_KEY", "kodevidecamp_notices"),
		DBDSN:        GetEnv("DB_DSN", ""),

		RedisAddr:     GetEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       GetEnvInt("REDIS_DB", 0),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTTTL:            GetEnvDuration("JWT_TTL", 24*time.Hour),
		AdminUsername:     GetEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		BasicAuthUser: os.Getenv("BASIC_AUTH_USER"),
		BasicAuthPass: os.Getenv("BASIC_AUTH_PASS"),

		RecaptchaSecret:   os.Getenv("RECAPTCHA_SECRET_KEY"),
		RecaptchaMinScore: GetEnvFloat("RECAPTCHA_MIN_SCORE", 0.5),

		SeedFile: os.Getenv("SEED_FILE"),
		LogLevel: GetEnv("LOG_LEVEL", "info"),
	}
}

// Addr is the listen address for the HTTP server.
func (s Settings) Addr() string {
	return s.AppHost + ":" + s.AppPort
}

// Key prefixes a storage key with StorePrefix.
func (s Settings) Key(name string) string {
	return s.StorePrefix + name
}
