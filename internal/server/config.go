package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/solar-quote/internal/config"
	"github.com/iwvelando/solar-quote/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config holds the proposal API's listener and request limits.
type Config struct {
	Address           string               `yaml:"address"`
	MaxUploadSize     string               `yaml:"maxUploadSize"`
	ShutdownTimeout   string               `yaml:"shutdownTimeout"`
	ReadHeaderTimeout string               `yaml:"readHeaderTimeout"`
	Logging           config.LoggingConfig `yaml:"logging"`

	uploadSizeBytes   int64
	shutdownTimeout   time.Duration
	readHeaderTimeout time.Duration
}

// sizeUnits is checked in order, so two-letter suffixes precede their
// one-letter forms.
var sizeUnits = []struct {
	suffix     string
	multiplier int64
}{
	{"KB", 1 << 10},
	{"MB", 1 << 20},
	{"K", 1 << 10},
	{"M", 1 << 20},
	{"B", 1},
}

// maxUploadLimit caps the configurable upload size. Proposal configs are a few
// kilobytes; anything near this is a misconfiguration.
const maxUploadLimit int64 = 64 << 20

// LoadConfig reads the server configuration. A missing file yields defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read server config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse server config: %w", err)
			}
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UploadSizeBytes is the largest proposal upload accepted.
func (c *Config) UploadSizeBytes() int64 {
	return c.uploadSizeBytes
}

// ShutdownTimeoutDuration is how long in-flight proposals get to finish on
// shutdown.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	return c.shutdownTimeout
}

// ReadHeaderTimeoutDuration bounds how long a client may take to send headers.
func (c *Config) ReadHeaderTimeoutDuration() time.Duration {
	return c.readHeaderTimeout
}

// SetUploadSizeBytes overrides the upload limit, e.g. from a flag.
func (c *Config) SetUploadSizeBytes(size int64) {
	if size <= 0 {
		return
	}
	c.uploadSizeBytes = size
	c.MaxUploadSize = strconv.FormatInt(size, 10)
}

func (c *Config) normalize() error {
	c.Address = strings.TrimSpace(c.Address)
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}

	var err error
	if c.shutdownTimeout, err = parseTimeout("shutdownTimeout", c.ShutdownTimeout, constants.DefaultShutdownTimeout); err != nil {
		return err
	}
	if c.readHeaderTimeout, err = parseTimeout("readHeaderTimeout", c.ReadHeaderTimeout, constants.DefaultReadHeaderTimeout); err != nil {
		return err
	}

	size, err := ParseSize(c.MaxUploadSize)
	if err != nil {
		return err
	}
	if size <= 0 {
		size = constants.DefaultMaxUploadSizeBytes
	}
	c.uploadSizeBytes = size
	c.MaxUploadSize = strconv.FormatInt(size, 10)
	return nil
}

// parseTimeout reads a Go duration string. Blank or non-positive values fall
// back to def.
func parseTimeout(field, value string, def time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, value, err)
	}
	if d <= 0 {
		return def, nil
	}
	return d, nil
}

// ParseSize converts an upload limit such as "256K", "2MB" or "4096" into
// bytes. Blank means the default limit.
func ParseSize(value string) (int64, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	if trimmed == "" {
		return constants.DefaultMaxUploadSizeBytes, nil
	}

	number, multiplier := trimmed, int64(1)
	for _, unit := range sizeUnits {
		if strings.HasSuffix(trimmed, unit.suffix) {
			number = strings.TrimSpace(strings.TrimSuffix(trimmed, unit.suffix))
			multiplier = unit.multiplier
			break
		}
	}

	n, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid upload size %q: expected a whole number with an optional B, K or M suffix", value)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid upload size %q: must not be negative", value)
	}
	if n > maxUploadLimit/multiplier {
		return 0, fmt.Errorf("upload size %q exceeds the %dM limit", value, maxUploadLimit>>20)
	}
	return n * multiplier, nil
}
