package dashboard

import (
	"os"
	"time"

	"github.com/mitchellh/copystructure"
	"gopkg.in/yaml.v3"

	"go.ytsaurus.tech/library/go/core/xerrors"
)

// Config tunes the aggregation.
type Config struct {
	// Age of the latest check above which a service is shown as pending.
	// Zero disables the staleness demotion.
	StaleAfter time.Duration `yaml:"stale_after"`

	// Number of services per complication page.
	PageSize int `yaml:"page_size"`

	// Check latency above which an up service is flagged as degraded.
	// Zero disables the flag.
	DegradedLatency time.Duration `yaml:"degraded_latency"`

	// Group receiving services whose own group name is empty.
	DefaultGroup string `yaml:"default_group"`
}

// DefaultConfig returns the tuning used when the caller supplies nothing.
func DefaultConfig() Config {
	return Config{
		StaleAfter:      10 * time.Minute,
		PageSize:        4,
		DegradedLatency: 2 * time.Second,
		DefaultGroup:    "Ungrouped",
	}
}

// ParseConfig decodes YAML on top of DefaultConfig, so omitted keys keep
// their default values.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, xerrors.Errorf("cannot parse dashboard config: %w", err)
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ReadConfig loads and parses a YAML config file.
func ReadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, xerrors.Errorf("cannot read dashboard config: %w", err)
	}
	return ParseConfig(data)
}

func (c Config) validate() error {
	if c.PageSize <= 0 {
		return xerrors.Errorf("page_size must be positive, got %d", c.PageSize)
	}
	if c.StaleAfter < 0 {
		return xerrors.Errorf("stale_after must not be negative, got %v", c.StaleAfter)
	}
	if c.DegradedLatency < 0 {
		return xerrors.Errorf("degraded_latency must not be negative, got %v", c.DegradedLatency)
	}
	return nil
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	return copystructure.Must(copystructure.Copy(c)).(Config)
}
