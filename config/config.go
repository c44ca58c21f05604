// Package config provides configuration management for the number classifier.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Persistence backends for fetched fun facts.
const (
	PersistenceNone  = "none"
	PersistenceFile  = "file"
	PersistenceMongo = "mongo"
)

// Number parse modes for the classify endpoint.
const (
	ParseModeLenient = "lenient"
	ParseModeStrict  = "strict"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Facts    FactsConfig
	Classify ClassifyConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	CORSOrigins    []string
	RequestTimeout time.Duration
	SwaggerUser    string
	SwaggerPass    string
}

// CacheConfig holds result cache configuration.
// A Size of zero keeps every classification for the life of the process.
type CacheConfig struct {
	Size         int
	TTL          time.Duration
	Shards       int
	Persistence  string
	SnapshotPath string
}

// FactsConfig holds configuration for the remote fun-fact provider.
type FactsConfig struct {
	BaseURL        string
	Timeout        time.Duration
	BreakerEnabled bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// ClassifyConfig controls how the number query parameter is parsed.
type ClassifyConfig struct {
	ParseMode string
}

// DatabaseConfig holds MongoDB configuration used by the mongo fact store.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Cache: CacheConfig{
			Size:         getEnvInt("CACHE_SIZE", 0),
			TTL:          getEnvDuration("CACHE_TTL", 0),
			Shards:       getEnvInt("CACHE_SHARDS", 16),
			Persistence:  parseChoice(os.Getenv("FACT_PERSISTENCE"), PersistenceNone, PersistenceNone, PersistenceFile, PersistenceMongo),
			SnapshotPath: getEnv("FACT_SNAPSHOT_PATH", "facts_cache.json"),
		},
		Facts: FactsConfig{
			BaseURL:                        strings.TrimRight(getEnv("FACTS_BASE_URL", "http://numbersapi.com"), "/"),
			Timeout:                        getEnvDuration("FACTS_TIMEOUT", 2*time.Second),
			BreakerEnabled:                 getEnvBool("FACTS_BREAKER_ENABLED", true),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Classify: ClassifyConfig{
			ParseMode: parseChoice(os.Getenv("NUMBER_PARSE_MODE"), ParseModeLenient, ParseModeLenient, ParseModeStrict),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "number_classifier"),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseChoice returns s lowercased when it is one of allowed, otherwise defaultValue.
func parseChoice(s, defaultValue string, allowed ...string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// The public API is open to every origin unless narrowed explicitly
	if strings.TrimSpace(s) == "" {
		return []string{"*"}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	if len(result) == 0 {
		return []string{"*"}
	}
	return result
}
