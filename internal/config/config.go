package config

import "time"

type Config interface {
	EnvConfig
	AzureConfig
	CorsConfig
	PricingConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetUpstreamTimeout() time.Duration
}

type mainConfig struct {
	EnvVars
	Azure
	Cors
	Pricing
}

func New() Config {
	return mainConfig{}
}
