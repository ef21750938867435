package config

import "github.com/nicholasjackson/env"

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":9090", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [debug, info, trace]")
	mongoURI = env.String("MONGO_URI", false,
		"mongodb://localhost:27017", "MongoDB connection string")
	mongoDatabase = env.String("MONGO_DATABASE", false,
		"catalog", "MongoDB database name")
	environment = env.String("ENVIRONMENT", false,
		"development", "Deployment environment [development, production]")
)

// Config is built once at startup and passed by injection; no component
// reads ambient global state.
type Config struct {
	BindAddress   string
	LogLevel      string
	MongoURI      string
	MongoDatabase string
	Environment   string
}

// Load parses the environment variables into a Config.
func Load() (*Config, error) {
	if err := env.Parse(); err != nil {
		return nil, err
	}

	return &Config{
		BindAddress:   *bindAddress,
		LogLevel:      *logLevel,
		MongoURI:      *mongoURI,
		MongoDatabase: *mongoDatabase,
		Environment:   *environment,
	}, nil
}

// IsProduction reports whether stack traces must be withheld from error
// responses.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
