package drivers

import (
	"testing"

	"github.com/cloud-bulldozer/timecost/pkg/config"
	"github.com/cloud-bulldozer/timecost/pkg/inverted"
	"github.com/cloud-bulldozer/timecost/pkg/measurement"
)

func smallConfig(driver string) config.Config {
	return config.Config{
		Profile:    driver + "-test",
		Driver:     driver,
		Samples:    1,
		Iterations: 4,
		Size:       64,
		Warmup:     1,
	}
}

// TestNewDriver ensures all shipped drivers construct and unknown names fail
func TestNewDriver(t *testing.T) {
	for _, name := range []string{"hash", "sort", "copy"} {
		if _, err := NewDriver(name, smallConfig(name)); err != nil {
			t.Fatalf("NewDriver(%s) failed: %v", name, err)
		}
	}
	if _, err := NewDriver("quantum", smallConfig("quantum")); err == nil {
		t.Fatal("NewDriver should have failed for an unknown driver")
	}
}

// TestRunSample runs each driver under both backends and checks the sample
func TestRunSample(t *testing.T) {
	backends := map[string]measurement.Measurement{
		"walltime": measurement.WallTime{},
		"inverted": inverted.New(),
	}
	for bname, m := range backends {
		for _, name := range []string{"hash", "sort", "copy"} {
			cfg := smallConfig(name)
			d, err := NewDriver(name, cfg)
			if err != nil {
				t.Fatal(err)
			}
			d.Warmup(m)
			smp, err := d.RunSample(m)
			if err != nil {
				t.Fatalf("%s/%s RunSample failed: %v", bname, name, err)
			}
			if smp.Iterations != cfg.Iterations {
				t.Fatalf("%s/%s reported %d iterations, want %d", bname, name, smp.Iterations, cfg.Iterations)
			}
			if smp.Elapsed <= 0 || smp.PerIter <= 0 {
				t.Fatalf("%s/%s reported non-positive timing: %+v", bname, name, smp)
			}
			if smp.Driver != name || smp.Metric != "ns" {
				t.Fatalf("%s/%s reported wrong identity: %+v", bname, name, smp)
			}
		}
	}
}

// TestRunSampleZeroIterations Testing for failure
func TestRunSampleZeroIterations(t *testing.T) {
	_, err := runSample(measurement.WallTime{}, "hash", 0, func() {})
	if err == nil {
		t.Fatal("runSample should have failed with zero iterations")
	}
}
