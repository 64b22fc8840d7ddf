package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey protects mutating and operational routes. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// RatePerMinute is the burst limit for word lookups per client.
	RatePerMinute int `mapstructure:"rate_per_minute" default:"10"`
	// RatePerHour is the sustained limit for word lookups per client.
	RatePerHour int `mapstructure:"rate_per_hour" default:"100"`
	// CorsOrigins is a comma separated list of allowed origins.
	CorsOrigins string `mapstructure:"cors_origins" default:"http://localhost:3000,http://localhost:8080"`
}

// Origins returns the configured CORS origins with blanks removed.
func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.CorsOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// RateLimited reports whether lookup rate limiting is active.
func (c Config) RateLimited() bool {
	return c.RatePerMinute > 0 || c.RatePerHour > 0
}
