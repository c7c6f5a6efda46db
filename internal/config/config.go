package config

import (
	"errors"
	"os"
	"strings"
)

// DefaultBaseURL is the NS API gateway all upstream paths hang off.
const DefaultBaseURL = "https://gateway.apiportal.ns.nl"

// Config holds process-wide settings. It is built once at startup and
// passed into the upstream client and server wiring; nothing mutates it
// afterwards.
type Config struct {
	// APIKey is the NS API subscription key sent on every upstream request.
	APIKey string
	// BaseURL is the gateway root, without trailing slash.
	BaseURL string
}

// FromEnv builds a Config from the environment. A missing NS_API_KEY is a
// startup failure; the caller aborts before serving any request.
func FromEnv() (*Config, error) {
	key := strings.TrimSpace(os.Getenv("NS_API_KEY"))
	if key == "" {
		return nil, errors.New("NS_API_KEY is required: set it in the environment or a .env file")
	}

	base := strings.TrimSpace(os.Getenv("NS_API_BASE_URL"))
	if base == "" {
		base = DefaultBaseURL
	}

	return &Config{
		APIKey:  key,
		BaseURL: strings.TrimSuffix(base, "/"),
	}, nil
}
