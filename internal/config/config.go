package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The gateway owns no database; the only
// required values are its own listen port and the base URL of the remote
// booking service it fronts.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	APIBaseURL   string // base URL of the remote booking service, e.g. http://localhost:8080/api/v1
	TokenFile    string // path of the persisted session token file
	SessionStore string // "file" (default) or "redis"
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing
// values cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:          must("APP_ENV"),                                // environment (dev/test/prod)
		Port:         must("APP_PORT"),                               // port to bind the HTTP server
		APIBaseURL:   must("API_BASE_URL"),                           // remote booking service base URL
		TokenFile:    getenv("SESSION_TOKEN_FILE", ".session-token"), // persisted token location
		SessionStore: getenv("SESSION_STORE", "file"),                // token store backend
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
