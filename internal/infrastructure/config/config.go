package config

import (
	"os"
	"strconv"
	"strings"

	usecasecontract "github.com/mikiasgoitom/likeboard/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port                  string
	Env                   string
	MongoURI              string
	MongoDBName           string
	AllowedOrigins        []string
	TrustedOriginSuffixes []string
	RateLimitPerSecond    float64
	RedisURL              string
	KafkaBrokers          []string
	KafkaTopic            string
	OTelEndpoint          string
	ServiceName           string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		Port:                  getEnv("PORT", "5000"),
		Env:                   getEnv("ENV", "development"),
		MongoURI:              getEnv("MONGODB_URI", ""),
		MongoDBName:           getEnv("MONGODB_DB_NAME", "likeboard"),
		AllowedOrigins:        getEnvAsList("ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		TrustedOriginSuffixes: getEnvAsList("TRUSTED_ORIGIN_SUFFIXES", []string{".vercel.app"}),
		RateLimitPerSecond:    getEnvAsFloat("RATE_LIMIT_RPS", 10),
		RedisURL:              getEnv("REDIS_URL", ""),
		KafkaBrokers:          getEnvAsList("KAFKA_BOOTSTRAP_SERVERS", nil),
		KafkaTopic:            getEnv("KAFKA_TOPIC", "posts.events"),
		OTelEndpoint:          getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:           getEnv("OTEL_SERVICE_NAME", "likeboard-api"),
	}
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

func (c *Config) GetPort() string                    { return c.Port }
func (c *Config) GetEnv() string                     { return c.Env }
func (c *Config) GetMongoURI() string                { return c.MongoURI }
func (c *Config) GetMongoDBName() string             { return c.MongoDBName }
func (c *Config) GetAllowedOrigins() []string        { return c.AllowedOrigins }
func (c *Config) GetTrustedOriginSuffixes() []string { return c.TrustedOriginSuffixes }
func (c *Config) GetRateLimitPerSecond() float64     { return c.RateLimitPerSecond }
func (c *Config) GetRedisURL() string                { return c.RedisURL }
func (c *Config) GetKafkaBrokers() []string          { return c.KafkaBrokers }
func (c *Config) GetKafkaTopic() string              { return c.KafkaTopic }
func (c *Config) GetOTelEndpoint() string            { return c.OTelEndpoint }
func (c *Config) GetServiceName() string             { return c.ServiceName }

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a float or return a default value.
func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// getEnvAsList splits a comma separated variable, dropping empty entries.
// An unset or blank variable yields the fallback.
func getEnvAsList(name string, fallback []string) []string {
	raw := strings.TrimSpace(getEnv(name, ""))
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
