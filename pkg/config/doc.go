// Package config loads object pool settings from files and serves them to
// pools as pool.ConfigProvider values.
//
// # File Format
//
// YAML, JSON, or any other format viper understands:
//
//	defaults:
//	  precache_count: 0
//	  max_alive_count: 0     # zero or negative means unbounded
//	pools:
//	  frame:
//	    precache_count: 16
//	    max_alive_count: ${FRAME_POOL_SIZE}
//
// Pools without an entry use the defaults. Pool names are case-insensitive.
//
// # Loading
//
//	reg, err := config.LoadFile("pools.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	frames, err := pool.New[*Frame](config.Provider[*Frame](reg, "frame"), newFrame)
//
// ## Environment Variable Substitution
//
// LoadFile replaces ${VAR_NAME} in YAML and JSON files with the value of the
// environment variable before parsing. Missing variables become empty strings.
//
// ## Environment Overrides
//
// LoadViper layers environment variables over the file contents, e.g.
// OBJECTPOOL_POOLS_FRAME_MAX_ALIVE_COUNT=64 overrides pools.frame.max_alive_count.
//
// # Validation
//
// Every entry is validated when the Registry is built; a negative precache
// count or a precache count above a positive max alive count is rejected.
package config
