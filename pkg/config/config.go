package config

import (
	"fmt"
	"os"
	"regexp"

	log "github.com/cloud-bulldozer/timecost/pkg/logging"
	"github.com/cloud-bulldozer/timecost/pkg/measurement"
	"gopkg.in/yaml.v3"
)

// Config describes one benchmark profile to run
type Config struct {
	Profile    string `yaml:"profile,omitempty"`
	Driver     string `yaml:"driver,omitempty"`
	Samples    int    `yaml:"samples,omitempty"`
	Iterations uint64 `yaml:"iterations,omitempty"`
	Size       uint64 `yaml:"size,omitempty"`
	Unit       string `default:"elements" yaml:"unit,omitempty"`
	Warmup     int    `yaml:"warmup,omitempty"`
}

// Workloads we will support in timecost
const validDrivers = "hash|sort|copy"

// Unit conventions we will support in timecost
const validUnits = "elements|bytes|bytesdecimal"

func validConfig(cfg Config) (bool, error) {
	preEval := regexp.MustCompile("(?i)^(" + validDrivers + ")$")
	if !preEval.MatchString(cfg.Driver) {
		return false, fmt.Errorf("unknown workload driver")
	}
	unitEval := regexp.MustCompile("(?i)^(" + validUnits + ")?$")
	if !unitEval.MatchString(cfg.Unit) {
		return false, fmt.Errorf("unknown unit convention")
	}
	if cfg.Samples < 1 {
		return false, fmt.Errorf("samples must be > 0")
	}
	if cfg.Iterations < 1 {
		return false, fmt.Errorf("iterations must be > 0")
	}
	if cfg.Size < 1 {
		return false, fmt.Errorf("size must be > 0")
	}
	return true, nil
}

// Throughput maps the profile's size and unit convention to the throughput
// declaration handed to the measurement formatter.
func (c Config) Throughput() measurement.Throughput {
	switch c.Unit {
	case "bytes":
		return measurement.Bytes(c.Size)
	case "bytesdecimal":
		return measurement.BytesDecimal(c.Size)
	default:
		return measurement.Elements(c.Size)
	}
}

// ParseConf will read in the timecost configuration file which
// describes which benchmark profiles to run
// Returns Config struct
func ParseConf(fn string) ([]Config, error) {
	log.Infof("📒 Reading %s file. ", fn)
	buf, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	c := make(map[string]Config)
	err = yaml.Unmarshal(buf, &c)
	if err != nil {
		return nil, fmt.Errorf("in file %q: %v", fn, err)
	}
	// The key names the profile
	var tests []Config
	for name, value := range c {
		if value.Profile == "" {
			value.Profile = name
		}
		ok, err := validConfig(value)
		if !ok {
			return nil, err
		}
		tests = append(tests, value)
	}
	return tests, nil
}

// Show Display the timecost config
func Show(c Config, driver string) {
	log.Infof("🗒️  Running %s %s (%d %s, %d iterations, %d samples) ", driver, c.Profile, c.Size, c.Unit, c.Iterations, c.Samples)
}
