package stations

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"go.arnce.org/hamaddr/src/hamaddr"
)

// StationSpec is a single station in the config.
// Callsign accepts anything hamaddr.Parse does.
type StationSpec struct {
	Callsign hamaddr.HamAddr `yaml:"callsign"`
	Name     string          `yaml:"name,omitempty"`
}

type Config struct {
	Workers  int           `yaml:"workers,omitempty"`
	Stations []StationSpec `yaml:"stations"`
}

// GetWorkers returns the bound on concurrent conversions.
func (c Config) GetWorkers() int {
	if c.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.Workers
}

func (c Config) Validate() error {
	seen := make(map[hamaddr.HamAddr]int, len(c.Stations))
	for i, s := range c.Stations {
		if s.Callsign.IsZero() {
			return errors.Errorf("station %d: missing callsign", i)
		}
		if j, exists := seen[s.Callsign]; exists {
			return errors.Errorf("station %d: %v is a duplicate of station %d", i, s.Callsign, j)
		}
		seen[s.Callsign] = i
	}
	return nil
}

func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "parsing station config")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func LoadConfig(p string) (*Config, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	config, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", p)
	}
	return config, nil
}
