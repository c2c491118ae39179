package secrets

import (
	"os"

	"go.uber.org/zap"
)

// EnvAPIKey is the primary credential source.
const EnvAPIKey = "OPENAI_API_KEY"

// Resolver finds the OpenAI API key: process environment first, then the
// fallback store under the same name. Any store failure (missing file,
// parse error, absent entry) counts as "not found" — absence is reported
// to the caller, never an error.
type Resolver struct {
	store  Store
	logger *zap.Logger
}

func NewResolver(store Store, logger *zap.Logger) *Resolver {
	return &Resolver{store: store, logger: logger}
}

func (r *Resolver) Resolve() (string, bool) {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, true
	}

	if r.store == nil {
		return "", false
	}

	key, err := r.store.Lookup(EnvAPIKey)
	if err != nil {
		if r.logger != nil {
			r.logger.Debug("secret store lookup failed", zap.Error(err))
		}
		return "", false
	}

	return key, true
}
