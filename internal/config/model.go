// internal/config/model.go
//
// Typed configuration model.
//
// Context
// -------
// These structs define the tree that `internal/config/loader.go` builds
// from three overlay layers:
//
//   - optional `conf/.env`                         – dotenv values,
//   - `conf/global.yaml`                           – primary static file,
//   - `PORTFOLIO_`-prefixed environment overrides  – highest precedence.
//
// Any string value beginning with the prefix `vault:` is resolved through
// the Vault client after unmarshalling, so the rest of the app only ever
// sees plain strings.  Validation happens immediately after; the binary
// fails fast on missing or malformed required fields.
//
// Notes
// -----
//   - Struct tags use `koanf:"…"`, not `yaml:"…"` – Koanf ignores yaml tags
//     unless configured otherwise.
//   - The `Paths` block is filled at runtime; YAML must not try to set it.

package config

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS bool   `koanf:"force_https"`
}

// Auth holds the admin credentials.
//
// Secret signs session tokens; AdminPassword gates the login endpoint.
// Both accept `vault:<mount>/<path>#<key>` references so neither secret
// has to live in a flat file.  SecureCookies should be true wherever TLS
// terminates in front of the process.
type Auth struct {
	Secret        string `koanf:"secret"         validate:"required,min=16"`
	AdminPassword string `koanf:"admin_password" validate:"required"`
	SecureCookies bool   `koanf:"secure_cookies"`
}

// Storage selects the portfolio record backends.
//
// DataFile is always required – it is the seed source and the fallback
// target.  RemoteDSN is optional; when empty the process runs file-only,
// which is a fully supported configuration.
type Storage struct {
	DataFile  string `koanf:"data_file" validate:"required"`
	RemoteDSN string `koanf:"remote_dsn"`
}

// GeoIP points at an optional GeoLite2 database used to annotate inbound
// contact messages.  An empty path disables the lookup.
type GeoIP struct {
	Database string `koanf:"database"`
}

// Paths is resolved at runtime – never set in YAML or env.
type Paths struct {
	Root string // PORTFOLIO_ROOT or discovered parent
}

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP    HTTP    `koanf:"http"`
	Auth    Auth    `koanf:"auth"`
	Storage Storage `koanf:"storage"`
	GeoIP   GeoIP   `koanf:"geoip"`
	Paths   Paths   `koanf:"-"`
}
