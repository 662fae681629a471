package usecasecontract

// IConfigProvider exposes application configuration.
type IConfigProvider interface {
	GetPort() string
	GetEnv() string
	GetMongoURI() string
	GetMongoDBName() string
	GetAllowedOrigins() []string
	GetTrustedOriginSuffixes() []string
	GetRateLimitPerSecond() float64
	GetRedisURL() string
	GetKafkaBrokers() []string
	GetKafkaTopic() string
	GetOTelEndpoint() string
	GetServiceName() string
}
