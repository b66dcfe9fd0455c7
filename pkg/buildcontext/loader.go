package buildcontext

import (
	"github.com/LambdaTest/ghnotify/config"
	"github.com/LambdaTest/ghnotify/pkg/core"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
)

// NewLoader returns the file loader when a document is configured, the
// environment loader otherwise.
func NewLoader(cfg *config.BuildContextConfig, logger lumber.Logger) core.BuildContextLoader {
	if cfg.File != "" {
		return NewFileLoader(cfg.File, logger)
	}
	return NewEnvLoader(cfg.CredentialsID, logger)
}
