package common

import (
	"os"

	"github.com/hchk/hchk/pkg/checks"
	"github.com/hchk/hchk/pkg/config"
	"github.com/hchk/hchk/pkg/logger"
)

// NewClientFromEnv builds an API client from the resolved credential. The
// key comes from the HCHK_API_KEY environment variable or the local key
// file, in that order; HCHK_API_URL overrides the service endpoint.
func NewClientFromEnv(log *logger.Logger) (*checks.Client, error) {
	keyPath, err := config.DefaultKeyPath()
	if err != nil {
		return nil, err
	}

	apiKey, err := config.ResolveAPIKey(config.FromEnv(), config.FromFile(keyPath))
	if err != nil {
		return nil, err
	}

	return checks.New(apiKey, os.Getenv(config.EnvAPIURL), log), nil
}
