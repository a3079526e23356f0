package drivers

import (
	"github.com/cloud-bulldozer/timecost/pkg/logging"
	"github.com/cloud-bulldozer/timecost/pkg/measurement"
	"github.com/cloud-bulldozer/timecost/pkg/sample"
)

func (c *copier) work(src, dst []byte) func() {
	return func() {
		copy(dst, src)
		sink = dst[0]
	}
}

// Warmup runs the configured warmup iterations, discarding the timings.
func (c *copier) Warmup(m measurement.Measurement) {
	src := randomBuffer(c.testConfig.Size)
	warmup(m, c.testConfig.Warmup, c.work(src, make([]byte, len(src))))
}

// RunSample copies the configured buffer once per iteration.
func (c *copier) RunSample(m measurement.Measurement) (sample.Sample, error) {
	logging.Debugf("copy driver sampling %d bytes over %d iterations", c.testConfig.Size, c.testConfig.Iterations)
	src := randomBuffer(c.testConfig.Size)
	return runSample(m, c.driverName, c.testConfig.Iterations, c.work(src, make([]byte, len(src))))
}
