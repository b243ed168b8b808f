package config

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvAPIKey holds the API key; it takes precedence over the key file.
	EnvAPIKey = "HCHK_API_KEY"
	// EnvAPIURL overrides the service base URL when set.
	EnvAPIURL = "HCHK_API_URL"

	keyFileName = "hchk.yaml"
	apiKeyField = "api_key"
)

// Provider yields a credential and whether it was present. Resolution is an
// explicit ordered list of providers rather than implicit global state.
type Provider func() (string, bool)

// FromEnv resolves the key from the HCHK_API_KEY environment variable.
func FromEnv() Provider {
	return func() (string, bool) {
		key := os.Getenv(EnvAPIKey)
		return key, key != ""
	}
}

// FromFile resolves the key from the given key file.
func FromFile(path string) Provider {
	return func() (string, bool) {
		v := viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return "", false
		}
		key := v.GetString(apiKeyField)
		return key, key != ""
	}
}

// ResolveAPIKey returns the first credential any provider yields.
func ResolveAPIKey(providers ...Provider) (string, error) {
	for _, provide := range providers {
		if key, ok := provide(); ok {
			return key, nil
		}
	}
	return "", fmt.Errorf("no API key found: set %s or run 'hchk setkey'", EnvAPIKey)
}

// DefaultKeyPath returns the location of the key file written by setkey.
func DefaultKeyPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "resolving home directory")
	}
	return filepath.Join(home, ".config", "hchk", keyFileName), nil
}

// SaveAPIKey writes the key file, creating its directory if needed. The
// file is chmodded to be readable only by the owner.
func SaveAPIKey(path, key string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	v := viper.New()
	v.Set(apiKeyField, key)
	if err := v.WriteConfigAs(path); err != nil {
		return errors.Wrap(err, "writing key file")
	}
	return os.Chmod(path, 0o600)
}
