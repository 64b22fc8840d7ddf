package enrichment

// Config holds configuration for the enrichment engine.
type Config struct {
	// SourceTimeoutSeconds bounds each best-effort source fetch.
	SourceTimeoutSeconds int `mapstructure:"source_timeout_seconds" default:"5"`
	// GenerativeTimeoutSeconds bounds the authoritative source fetch.
	GenerativeTimeoutSeconds int `mapstructure:"generative_timeout_seconds" default:"60"`
	// MaxRelatedWords caps the merged relation list.
	MaxRelatedWords int `mapstructure:"max_related_words" default:"15"`
}
