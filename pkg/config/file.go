package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/commitgraph/pkg/errors"
)

// DefaultCacheTTL is how long rendered artifacts stay in the cache.
const DefaultCacheTTL = 7 * 24 * time.Hour

// DefaultAddr is the listen address of the HTTP server.
const DefaultAddr = ":8080"

// File is the on-disk configuration.
type File struct {
	Layout Layout `toml:"layout"`
	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`
}

// Cache configures artifact caching.
type Cache struct {
	// Dir overrides the file cache directory.
	Dir string `toml:"dir"`
	// RedisURL switches the cache to Redis, e.g. "redis://localhost:6379/0".
	RedisURL string `toml:"redis_url"`
	// TTL is parsed with time.ParseDuration.
	TTL duration `toml:"ttl"`
	// Disabled turns caching off.
	Disabled bool `toml:"disabled"`
}

// Server configures the HTTP server.
type Server struct {
	Addr string `toml:"addr"`
	// MaxBodyBytes caps the size of a POSTed commit list.
	MaxBodyBytes int64 `toml:"max_body_bytes"`
}

// duration lets TOML strings such as "24h" decode into a time.Duration.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// CacheTTL returns the configured TTL or DefaultCacheTTL.
func (c Cache) CacheTTL() time.Duration {
	if c.TTL.Duration > 0 {
		return c.TTL.Duration
	}
	return DefaultCacheTTL
}

// DefaultFile returns a File holding only defaults.
func DefaultFile() File {
	return File{
		Layout: Default(),
		Server: Server{Addr: DefaultAddr, MaxBodyBytes: 8 << 20},
	}
}

// Parse decodes TOML data layered over DefaultFile.
func Parse(data string) (File, error) {
	f := DefaultFile()
	md, err := toml.Decode(data, &f)
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return File{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	f.Layout.SetDefaults()
	if f.Server.Addr == "" {
		f.Server.Addr = DefaultAddr
	}
	if err := f.Layout.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Load reads and parses the TOML file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return File{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(string(data))
}
