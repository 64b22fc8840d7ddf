package config

import (
	"reflect"
	"strings"

	"grimoire/core/cache"
	"grimoire/core/database"
	"grimoire/core/logger"
	"grimoire/core/server"
	"grimoire/core/storage"
	"grimoire/feature/words/enrichment"
	"grimoire/feature/words/sources"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Each section belongs to the package that consumes it.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the word store.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the dataset bucket.
	Storage storage.Config `mapstructure:"storage"`
	// Cache holds configuration for the word cache and its TTL policy.
	Cache cache.Config `mapstructure:"cache"`
	// Generative holds configuration for the Anthropic source.
	Generative sources.GenerativeConfig `mapstructure:"generative"`
	// Enrichment holds the merge engine timeouts and caps.
	Enrichment enrichment.Config `mapstructure:"enrichment"`
}

// LoadConfig loads configuration from environment variables and the .env file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is normal outside development.
	_ = godotenv.Overload(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	// SECTION_KEY -> section.key
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues registers every mapstructure key with its default tag value,
// recursing into nested sections. Keys must be registered for AutomaticEnv to see them.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
