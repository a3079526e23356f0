package drivers

import (
	"fmt"

	"github.com/cloud-bulldozer/timecost/pkg/config"
	"github.com/cloud-bulldozer/timecost/pkg/measurement"
	"github.com/cloud-bulldozer/timecost/pkg/sample"
)

// Driver runs one workload under a measurement backend. RunSample executes
// the configured number of iterations and reports the aggregate timing as a
// single sample; Warmup runs iterations whose timings are discarded.
type Driver interface {
	Warmup(m measurement.Measurement)
	RunSample(m measurement.Measurement) (sample.Sample, error)
}

type hash struct {
	driverName string
	testConfig config.Config
}

type sorter struct {
	driverName string
	testConfig config.Config
}

type copier struct {
	driverName string
	testConfig config.Config
}

// NewDriver returns a Driver based on the given driverName and configuration.
// It currently supports the "hash", "sort", and "copy" drivers.
// If the driverName is not recognized, it returns an error.
func NewDriver(driverName string, cfg config.Config) (Driver, error) {
	switch driverName {
	case "hash":
		return &hash{
			driverName: driverName,
			testConfig: cfg,
		}, nil
	case "sort":
		return &sorter{
			driverName: driverName,
			testConfig: cfg,
		}, nil
	case "copy":
		return &copier{
			driverName: driverName,
			testConfig: cfg,
		}, nil
	default:
		return nil, fmt.Errorf("unknown driver: %s", driverName)
	}
}

// runSample drives the measurement contract for one sample: iterations are
// timed individually and folded together with Zero/Add so a sample spanning
// many iterations still yields one aggregate value.
func runSample(m measurement.Measurement, name string, iterations uint64, work func()) (sample.Sample, error) {
	if iterations == 0 {
		return sample.Sample{}, fmt.Errorf("driver %s: iterations must be > 0", name)
	}
	total := m.Zero()
	for i := uint64(0); i < iterations; i++ {
		start := m.Start()
		work()
		total = m.Add(total, m.End(start))
	}
	elapsed := m.ToFloat(total)
	return sample.Sample{
		Iterations: iterations,
		Elapsed:    elapsed,
		PerIter:    elapsed / float64(iterations),
		Driver:     name,
		Metric:     "ns",
	}, nil
}

func warmup(m measurement.Measurement, iterations int, work func()) {
	for i := 0; i < iterations; i++ {
		start := m.Start()
		work()
		m.End(start)
	}
}
