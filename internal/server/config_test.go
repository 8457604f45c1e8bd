package server

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/solar-quote/pkg/constants"
)

func writeServerConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), constants.DefaultServerConfigFile)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write server config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		missing        bool
		address        string
		uploadBytes    int64
		shutdown       time.Duration
		readHeader     time.Duration
		logLevel       string
		expectErrorHas string
	}{
		{
			name:        "Missing file serves on defaults",
			missing:     true,
			address:     constants.DefaultServerAddress,
			uploadBytes: constants.DefaultMaxUploadSizeBytes,
			shutdown:    constants.DefaultShutdownTimeout,
			readHeader:  constants.DefaultReadHeaderTimeout,
		},
		{
			name: "Installer office deployment",
			body: `address: 127.0.0.1:9000
maxUploadSize: 512K
shutdownTimeout: 30s
readHeaderTimeout: 2s
logging:
  level: debug
  format: console
`,
			address:     "127.0.0.1:9000",
			uploadBytes: 512 * 1024,
			shutdown:    30 * time.Second,
			readHeader:  2 * time.Second,
			logLevel:    "debug",
		},
		{
			name:        "Zero timeouts keep the defaults",
			body:        "shutdownTimeout: 0s\nreadHeaderTimeout: 0s\n",
			address:     constants.DefaultServerAddress,
			uploadBytes: constants.DefaultMaxUploadSizeBytes,
			shutdown:    constants.DefaultShutdownTimeout,
			readHeader:  constants.DefaultReadHeaderTimeout,
		},
		{
			name:           "Unparseable shutdown timeout",
			body:           "shutdownTimeout: soon\n",
			expectErrorHas: "shutdownTimeout",
		},
		{
			name:           "Unparseable header timeout",
			body:           "readHeaderTimeout: 5 seconds\n",
			expectErrorHas: "readHeaderTimeout",
		},
		{
			name:           "Upload limit without a number",
			body:           "maxUploadSize: plenty\n",
			expectErrorHas: "invalid upload size",
		},
		{
			name:           "Malformed YAML",
			body:           "address: [\n",
			expectErrorHas: "failed to parse server config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.yaml")
			if !tt.missing {
				path = writeServerConfig(t, tt.body)
			}

			cfg, err := LoadConfig(path)
			if tt.expectErrorHas != "" {
				if err == nil || !strings.Contains(err.Error(), tt.expectErrorHas) {
					t.Fatalf("LoadConfig() error = %v, expected it to mention %q", err, tt.expectErrorHas)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg.Address != tt.address {
				t.Errorf("Address = %q, expected %q", cfg.Address, tt.address)
			}
			if cfg.UploadSizeBytes() != tt.uploadBytes {
				t.Errorf("UploadSizeBytes() = %d, expected %d", cfg.UploadSizeBytes(), tt.uploadBytes)
			}
			if cfg.ShutdownTimeoutDuration() != tt.shutdown {
				t.Errorf("ShutdownTimeoutDuration() = %v, expected %v", cfg.ShutdownTimeoutDuration(), tt.shutdown)
			}
			if cfg.ReadHeaderTimeoutDuration() != tt.readHeader {
				t.Errorf("ReadHeaderTimeoutDuration() = %v, expected %v", cfg.ReadHeaderTimeoutDuration(), tt.readHeader)
			}
			if cfg.Logging.Level != tt.logLevel {
				t.Errorf("Logging.Level = %q, expected %q", cfg.Logging.Level, tt.logLevel)
			}
		})
	}
}

func TestSetUploadSizeBytes(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	cfg.SetUploadSizeBytes(2 << 20)
	if cfg.UploadSizeBytes() != 2<<20 || cfg.MaxUploadSize != "2097152" {
		t.Errorf("override not applied: %d / %q", cfg.UploadSizeBytes(), cfg.MaxUploadSize)
	}

	cfg.SetUploadSizeBytes(0)
	if cfg.UploadSizeBytes() != 2<<20 {
		t.Errorf("non-positive override changed the limit to %d", cfg.UploadSizeBytes())
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input       string
		expected    int64
		expectError bool
	}{
		{"", constants.DefaultMaxUploadSizeBytes, false},
		{"4096", 4096, false},
		{"300b", 300, false},
		{"256K", 256 << 10, false},
		{"256 kb", 256 << 10, false},
		{"1m", 1 << 20, false},
		{"64MB", 64 << 20, false},
		{"65MB", 0, true},
		{"1G", 0, true},
		{"-5K", 0, true},
		{"1.5M", 0, true},
		{"K", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("ParseSize(%q) = %d, expected error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSize(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseSize(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}
