// internal/vault/vault.go
//
// Minimal HashiCorp Vault client for secret references in config.
//
// Context
// -------
// The config loader resolves `vault:` references (signing secret, admin
// password, remote DSN) through this wrapper at boot.  It is a thin layer
// over the official SDK: KV-v2 reads with per-key caching, plus a
// background renewal loop so a long-lived process does not outlive its
// token.
//
// Environment expectations
// ------------------------
//   - VAULT_ADDR  – scheme and host of the Vault server.
//   - VAULT_TOKEN – initial token (falls back to ~/.vault-token).

package vault

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	vault "github.com/hashicorp/vault/api"
)

// Client is safe for concurrent use.  Construct once during boot.
type Client struct {
	api   *vault.Client
	logFn func(string, ...any)

	mu    sync.RWMutex
	cache map[string]cached // "<path>#<key>" → value + expiry
}

type cached struct {
	val string
	exp time.Time
}

// New constructs a Client from the environment and starts the token
// renewal loop, which stops when ctx is cancelled.
func New(ctx context.Context, logFn func(string, ...any)) (*Client, error) {
	if logFn == nil {
		logFn = func(string, ...any) {}
	}

	cfg := vault.DefaultConfig()
	if err := cfg.ReadEnvironment(); err != nil {
		return nil, fmt.Errorf("vault env cfg: %w", err)
	}

	apiCli, err := vault.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("vault api: %w", err)
	}
	if tok := os.Getenv("VAULT_TOKEN"); tok != "" {
		apiCli.SetToken(tok)
	}

	c := &Client{
		api:   apiCli,
		logFn: logFn,
		cache: make(map[string]cached),
	}
	go c.renewLoop(ctx)
	return c, nil
}

// GetKV fetches one key from a KV-v2 secret at "<mount>/<path>".  When
// ttl > 0 the value is cached for that duration.
func (c *Client) GetKV(ctx context.Context, secretPath, key string, ttl time.Duration) (string, error) {
	if secretPath == "" || key == "" {
		return "", errors.New("vault: secret path and key must be non-empty")
	}

	canonical := secretPath + "#" + key
	if ttl > 0 {
		c.mu.RLock()
		cv, ok := c.cache[canonical]
		c.mu.RUnlock()
		if ok && time.Now().Before(cv.exp) {
			return cv.val, nil
		}
	}

	mount, rel, _ := strings.Cut(secretPath, "/")
	sec, err := c.api.KVv2(mount).Get(ctx, rel)
	if err != nil {
		return "", fmt.Errorf("vault get %s: %w", secretPath, err)
	}

	raw, ok := sec.Data[key]
	if !ok {
		return "", fmt.Errorf("vault: key %q not found in secret %q", key, secretPath)
	}
	val, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("vault: value at %s is not a string", canonical)
	}

	if ttl > 0 {
		c.mu.Lock()
		c.cache[canonical] = cached{val: val, exp: time.Now().Add(ttl)}
		c.mu.Unlock()
	}
	return val, nil
}

// renewLoop keeps the token alive.  Non-renewable tokens are probed once
// an hour in case the operator swaps them out-of-band.
func (c *Client) renewLoop(ctx context.Context) {
	for ctx.Err() == nil {
		sec, err := c.api.Auth().Token().RenewSelf(0)
		if err != nil {
			c.logFn("vault: token renew-self failed: %v", err)
			sleep(ctx, 30*time.Second)
			continue
		}
		if sec == nil || sec.Auth == nil || !sec.Auth.Renewable {
			sleep(ctx, time.Hour)
			continue
		}

		renewer, err := c.api.NewLifetimeWatcher(&vault.LifetimeWatcherInput{
			Secret: sec,
			Grace:  15 * time.Second,
		})
		if err != nil {
			c.logFn("vault: lifetime watcher init: %v", err)
			sleep(ctx, 30*time.Second)
			continue
		}
		go renewer.Start()

		c.watch(ctx, renewer)
	}
}

// watch drains one watcher until it stops or ctx is cancelled.
func (c *Client) watch(ctx context.Context, w *vault.LifetimeWatcher) {
	defer w.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-w.DoneCh():
			if err != nil {
				c.logFn("vault: token renewal stopped: %v", err)
			}
			sleep(ctx, 15*time.Second)
			return
		case ev := <-w.RenewCh():
			if ev != nil && ev.Secret != nil && ev.Secret.Auth != nil {
				c.logFn("vault: token renewed, ttl=%ds", ev.Secret.Auth.LeaseDuration)
			}
		}
	}
}

// sleep waits for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
