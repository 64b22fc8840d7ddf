// Package config loads the application configuration.
//
// Values come from a .env file and the environment, on top of the defaults
// declared in each section's struct tags. Environment variables are named
// SECTION_KEY, for example CACHE_WORD_TTL_SECONDS or GENERATIVE_API_KEY.
//
// Sections:
//   - server: port, API key, lookup rate limits, CORS origins
//   - log: level and format
//   - database: driver (mysql, postgres, sqlite) and connection details
//   - storage: MinIO/S3 credentials and the dataset bucket
//   - cache: driver (redis, memory), namespace and TTL policy
//   - generative: Anthropic model settings
//   - enrichment: per-source timeouts and the related word cap
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
