package config

import (
	"fmt"
	"os"
	"time"
)

const (
	portEnvVar    = "PORT"
	appNameVar    = "APP_NAME"
	timeoutEnvVar = "UPSTREAM_TIMEOUT"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "3200")
	if port != "" && port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "M365 FinOps Gateway")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

// GetUpstreamTimeout bounds every outbound Graph/ARM call. The upstream
// APIs set no deadline of their own, so a stuck call would otherwise hold
// the inbound request open indefinitely.
func (EnvVars) GetUpstreamTimeout() time.Duration {
	d, err := time.ParseDuration(GetEnv(timeoutEnvVar, "10s"))
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
