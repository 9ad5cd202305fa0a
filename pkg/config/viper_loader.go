package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/ajitpratap0/objectpool/pkg/poolerrors"
)

// DefaultEnvPrefix is the environment variable prefix used by LoadViper when
// none is given.
const DefaultEnvPrefix = "OBJECTPOOL"

// LoadViper reads a pool configuration file in any format viper supports and
// applies environment overrides. Keys map to variables by upper-casing and
// replacing dots with underscores, so with the default prefix
// pools.frame.max_alive_count is overridden by
// OBJECTPOOL_POOLS_FRAME_MAX_ALIVE_COUNT. Only keys present in the file can be
// overridden.
func LoadViper(filePath, envPrefix string) (*Registry, error) {
	if envPrefix == "" {
		envPrefix = DefaultEnvPrefix
	}

	v := viper.New()
	v.SetConfigFile(filePath)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, poolerrors.Wrap(err, poolerrors.ErrorTypeFile, "failed to read pool config").
			WithDetail("path", filePath)
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, poolerrors.Wrap(err, poolerrors.ErrorTypeConfig, "failed to decode pool config").
			WithDetail("path", filePath)
	}

	return NewRegistry(f)
}
