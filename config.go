package zep

import "github.com/kelseyhightower/envconfig"

// Config holds environment-driven codec settings, processed from the ZEP
// prefix. Debug logging can be enabled without code changes:
//
//	export ZEP_DEBUG=true
//	go run main.go  # every construct/serialize is now logged
type Config struct {
	Debug bool `envconfig:"DEBUG"`
}

// debugLoggingRequested checks if wire debug logging should be enabled via
// the environment. A malformed value is treated as unset.
func debugLoggingRequested() bool {
	var cfg Config
	if err := envconfig.Process("zep", &cfg); err != nil {
		return false
	}
	return cfg.Debug
}
