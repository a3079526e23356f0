package config

import (
	"testing"

	"github.com/cloud-bulldozer/timecost/pkg/measurement"
)

// TestParseConf Test for success. Ensure we successfully parse a good config file
func TestParseConf(t *testing.T) {
	file := "testdata/test-config.yml"
	tests, err := ParseConf(file)
	if err != nil {
		t.Fatal("Parsing config file failed")
	}
	if len(tests) != 3 {
		t.Fatalf("Expected 3 profiles, got %d", len(tests))
	}
	for _, cfg := range tests {
		if cfg.Profile == "" {
			t.Fatal("Profile name should default to the map key")
		}
	}
}

// TestShippingConf Test for success. Ensure we successfully parse the default config
func TestShippingConf(t *testing.T) {
	file := "../../timecost.yml"
	_, err := ParseConf(file)
	if err != nil {
		t.Fatal("Parsing config file failed")
	}
}

// TestBadDriverParseConf Testing for failure. Test driver regex
func TestBadDriverParseConf(t *testing.T) {
	file := "testdata/test-bad-driver-config.yml"
	_, err := ParseConf(file)
	if err == nil {
		t.Fatal("Parsing config file should have failed but succeeded")
	}
}

// TestMissingParseConf Testing for failure. User leaves out a config field
func TestMissingParseConf(t *testing.T) {
	file := "testdata/test-bad-missing-config.yml"
	_, err := ParseConf(file)
	if err == nil {
		t.Fatal("Parsing config file should have failed but succeeded")
	}
}

// TestBadUnitParseConf Testing for failure. Test unit convention regex
func TestBadUnitParseConf(t *testing.T) {
	file := "testdata/test-bad-unit-config.yml"
	_, err := ParseConf(file)
	if err == nil {
		t.Fatal("Parsing config file should have failed but succeeded")
	}
}

// TestThroughput ensures the unit convention maps to the right spec kind
func TestThroughput(t *testing.T) {
	cases := []struct {
		unit string
		kind measurement.ThroughputKind
	}{
		{"bytes", measurement.KindBytes},
		{"bytesdecimal", measurement.KindBytesDecimal},
		{"elements", measurement.KindElements},
		{"", measurement.KindElements},
	}
	for _, tc := range cases {
		cfg := Config{Size: 128, Unit: tc.unit}
		tp := cfg.Throughput()
		if tp.Kind() != tc.kind {
			t.Errorf("unit %q: got kind %v, want %v", tc.unit, tp.Kind(), tc.kind)
		}
		if tp.Count() != 128 {
			t.Errorf("unit %q: got count %d, want 128", tc.unit, tp.Count())
		}
	}
}
