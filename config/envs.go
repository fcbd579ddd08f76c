package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	OutputDir       string // Directory where rendered mazes are written
	CellSize        int    // Pixels per maze cell in rendered images
	MaxImagePixels  int    // Largest image area the renderer will allocate
	HostIP          string // Host IP for the server
	RESTPort        int    // Port for the REST API
	GinMode         string // Mode for the Gin framework (e.g., release, debug, test)
	MongoURI        string // MongoDB connection string; empty disables the archive
	DBName          string // Name of the database holding the archive
	RedisAddr       string // Redis address; empty disables the cache
	RedisPassword   string // Password for Redis
	CacheTTLSeconds int    // Lifetime of cached mazes
	JWTSecret       string // Secret key for JWT signing
	JWTIssuer       string // Issuer claim for JWTs
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		OutputDir:       getEnvWithDefault("OUTPUT_DIR", "./maze_img"),
		CellSize:        getEnvAsIntWithDefault("CELL_SIZE", 10),
		MaxImagePixels:  getEnvAsIntWithDefault("MAX_IMAGE_PIXELS", 4096*4096),
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		MongoURI:        getEnvWithDefault("MONGO_URI", ""),
		DBName:          getEnvWithDefault("DB_NAME", "vinom_maze"),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:   getEnvWithDefault("REDIS_PASSWORD", ""),
		CacheTTLSeconds: getEnvAsIntWithDefault("CACHE_TTL_SECONDS", 3600),
		JWTSecret:       getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:       getEnvWithDefault("JWT_ISSUER", "vinom-maze"),
	}
}

// MustJWTSecret returns the configured JWT secret or logs a fatal error if it is not set.
func (c Config) MustJWTSecret() string {
	if c.JWTSecret == "" {
		log.Fatalf("[APP] [FATAL] Environment variable JWT_SECRET is not set")
	}
	return c.JWTSecret
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// returning defaultValue when it is not set and logging a fatal error when it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
