package cache

// Config holds configuration for the cache layer.
type Config struct {
	// Driver selects the backend (redis, memory).
	Driver string `mapstructure:"driver" default:"redis"`
	// Addr is the redis host:port.
	Addr string `mapstructure:"addr" default:"localhost:6379"`
	// Password is the redis password.
	Password string `mapstructure:"password" default:""`
	// DB is the redis logical database.
	DB int `mapstructure:"db" default:"0"`
	// PoolSize caps redis connections.
	PoolSize int `mapstructure:"pool_size" default:"50"`
	// TimeoutSeconds bounds dial, read and write operations.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"5"`
	// Namespace prefixes every key.
	Namespace string `mapstructure:"namespace" default:"grimoire"`
	// WordTTLSeconds is the expiry of uncommon words.
	WordTTLSeconds int `mapstructure:"word_ttl_seconds" default:"2592000"`
	// FailedTTLSeconds is the expiry of memoized failed lookups.
	FailedTTLSeconds int `mapstructure:"failed_ttl_seconds" default:"3600"`
	// CommonRankThreshold is the highest frequency rank cached without expiry.
	CommonRankThreshold int `mapstructure:"common_rank_threshold" default:"5000"`
}

const (
	DriverRedis  = "redis"
	DriverMemory = "memory"
)
