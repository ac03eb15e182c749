package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// GlobalConfig holds the process configuration loaded from the environment.
type GlobalConfig struct {
	Host            string
	Port            string
	LogLevel        string
	KeystoneURL     string
	NovaURL         string
	NeutronURL      string
	GlanceURL       string
	AllowedOrigins  []string
	UpstreamTimeout time.Duration
}

// Origins the local dev frontends run on. Overridable via ALLOWED_ORIGINS.
var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:3001",
}

const defaultUpstreamTimeoutSeconds = 15

func NewConfig() (GlobalConfig, error) {
	// Get OpenStack upstream base URLs from environment
	keystoneURL := os.Getenv("OPENSTACK_AUTH_URL")
	if keystoneURL == "" {
		return GlobalConfig{}, fmt.Errorf("OPENSTACK_AUTH_URL environment variable is required")
	}

	novaURL := os.Getenv("OPENSTACK_NOVA_URL")
	if novaURL == "" {
		return GlobalConfig{}, fmt.Errorf("OPENSTACK_NOVA_URL environment variable is required")
	}

	neutronURL := os.Getenv("OPENSTACK_NEUTRON_URL")
	if neutronURL == "" {
		return GlobalConfig{}, fmt.Errorf("OPENSTACK_NEUTRON_URL environment variable is required")
	}

	glanceURL := os.Getenv("OPENSTACK_GLANCE_URL")
	if glanceURL == "" {
		return GlobalConfig{}, fmt.Errorf("OPENSTACK_GLANCE_URL environment variable is required")
	}

	host := os.Getenv("HOST")
	if host == "" {
		return GlobalConfig{}, fmt.Errorf("HOST environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		return GlobalConfig{}, fmt.Errorf("PORT environment variable is required")
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	allowedOrigins := defaultAllowedOrigins
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = splitOrigins(origins)
	}

	upstreamTimeout := time.Duration(defaultUpstreamTimeoutSeconds) * time.Second
	if timeoutStr := os.Getenv("UPSTREAM_TIMEOUT"); timeoutStr != "" {
		seconds, err := strconv.ParseInt(timeoutStr, 10, 32)
		if err != nil || seconds <= 0 {
			return GlobalConfig{}, fmt.Errorf("UPSTREAM_TIMEOUT must be a positive integer (seconds)")
		}
		upstreamTimeout = time.Duration(seconds) * time.Second
	}

	return GlobalConfig{
		Host:            host,
		Port:            port,
		LogLevel:        logLevel,
		KeystoneURL:     strings.TrimRight(keystoneURL, "/"),
		NovaURL:         strings.TrimRight(novaURL, "/"),
		NeutronURL:      strings.TrimRight(neutronURL, "/"),
		GlanceURL:       strings.TrimRight(glanceURL, "/"),
		AllowedOrigins:  allowedOrigins,
		UpstreamTimeout: upstreamTimeout,
	}, nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
