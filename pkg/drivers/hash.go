package drivers

import (
	"crypto/sha256"
	"math/rand"

	"github.com/cloud-bulldozer/timecost/pkg/logging"
	"github.com/cloud-bulldozer/timecost/pkg/measurement"
	"github.com/cloud-bulldozer/timecost/pkg/sample"
)

// sink defeats dead code elimination of the workload bodies.
var sink byte

func randomBuffer(size uint64) []byte {
	buf := make([]byte, size)
	rng := rand.New(rand.NewSource(int64(size)))
	rng.Read(buf)
	return buf
}

func (h *hash) work(buf []byte) func() {
	return func() {
		sum := sha256.Sum256(buf)
		sink = sum[0]
	}
}

// Warmup runs the configured warmup iterations, discarding the timings.
func (h *hash) Warmup(m measurement.Measurement) {
	buf := randomBuffer(h.testConfig.Size)
	warmup(m, h.testConfig.Warmup, h.work(buf))
}

// RunSample hashes the configured buffer once per iteration.
func (h *hash) RunSample(m measurement.Measurement) (sample.Sample, error) {
	logging.Debugf("hash driver sampling %d bytes over %d iterations", h.testConfig.Size, h.testConfig.Iterations)
	buf := randomBuffer(h.testConfig.Size)
	return runSample(m, h.driverName, h.testConfig.Iterations, h.work(buf))
}
