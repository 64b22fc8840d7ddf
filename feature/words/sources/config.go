package sources

// GenerativeConfig holds configuration for the generative source.
type GenerativeConfig struct {
	// APIKey is the Anthropic API key. Required to start the server.
	APIKey string `mapstructure:"api_key" default:""`
	// Model is the Anthropic model name.
	Model string `mapstructure:"model" default:"claude-sonnet-4-5"`
	// MaxTokens caps the completion length.
	MaxTokens int `mapstructure:"max_tokens" default:"4096"`
	// Temperature keeps answers factual when low.
	Temperature float64 `mapstructure:"temperature" default:"0.3"`
	// TimeoutSeconds bounds each API attempt. The whole fetch is bounded by
	// enrichment.generative_timeout_seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxRetries is the number of retries on transient API errors.
	MaxRetries int `mapstructure:"max_retries" default:"1"`
	// BaseURL overrides the API endpoint (proxies, tests).
	BaseURL string `mapstructure:"base_url" default:""`
}
