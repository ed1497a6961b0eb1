package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config with env tags. Durations are given in minutes to
// keep the variables readable next to the -t flag.
type envConfig struct {
	EndpointAddrHTTP          string `env:"ADDRESS"`
	DatabaseDSN               string `env:"DATABASE_DSN"`
	SecretKey                 string `env:"SECRET_KEY"`
	AccessTokenValidityMinute int    `env:"ACCESS_TOKEN_VALIDITY"`
	BcryptCost                int    `env:"BCRYPT_COST"`
}

// parseEnv overlays values from environment variables onto config. Variables
// that are unset leave the corresponding field untouched.
func parseEnv(config *Config) {
	c := &envConfig{}
	if err := env.Parse(c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityMinute != 0 {
		config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityMinute) * time.Minute
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
}
