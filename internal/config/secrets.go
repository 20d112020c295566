// internal/config/secrets.go
//
// Vault reference resolution.
//
// Context
// -------
// Secret-bearing fields may hold a reference of the form
//
//	vault:<mount>/<path>#<key>
//
// instead of the literal value, e.g. `vault:secret/portfolio#admin_password`.
// After unmarshalling, resolveSecrets swaps each reference for the value
// fetched through internal/vault.  The client is only constructed when at
// least one reference is present, so deployments without Vault never touch
// the SDK.

package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/skjuv/portfolio/internal/vault"
)

const vaultPrefix = "vault:"

// secretTTL caches resolved values inside the Vault client; config is
// loaded once per process, so the TTL mostly guards repeated references to
// the same key.
const secretTTL = 5 * time.Minute

// resolveSecrets replaces vault: references in cfg in place.
func resolveSecrets(ctx context.Context, cfg *Config) error {
	fields := []*string{
		&cfg.Auth.Secret,
		&cfg.Auth.AdminPassword,
		&cfg.Storage.RemoteDSN,
	}

	var cli *vault.Client
	for _, f := range fields {
		if !strings.HasPrefix(*f, vaultPrefix) {
			continue
		}

		if cli == nil {
			var err error
			cli, err = vault.New(ctx, zap.S().Infof)
			if err != nil {
				return fmt.Errorf("config: vault reference present but client init failed: %w", err)
			}
		}

		path, key, err := splitRef(strings.TrimPrefix(*f, vaultPrefix))
		if err != nil {
			return err
		}
		val, err := cli.GetKV(ctx, path, key, secretTTL)
		if err != nil {
			return err
		}
		*f = val
	}
	return nil
}

// splitRef parses "<mount>/<path>#<key>".
func splitRef(ref string) (path, key string, err error) {
	path, key, found := strings.Cut(ref, "#")
	if !found || path == "" || key == "" {
		return "", "", fmt.Errorf("config: malformed vault reference %q, want <mount>/<path>#<key>", ref)
	}
	return path, key, nil
}
