package inverted

import (
	"time"

	"github.com/cloud-bulldozer/timecost/pkg/measurement"
)

// Throughput is a measurement backend that reports throughput as the time
// spent per element or byte instead of elements or bytes per second. With
// the stock wall-clock backend a report reads like
//
//	thrpt: 14.620 Melem/s
//
// while the same run through this backend reads
//
//	thrpt: 68.381 ns/elem
//
// It wraps another measurement, WallTime by default, and only overrides how
// throughput batches are scaled. Timing capture, aggregation, and plain
// value scaling all pass through to the wrapped backend, so it can stand in
// anywhere the harness expects a measurement.
type Throughput struct {
	base measurement.Measurement
}

// New returns a Throughput wrapping the wall-clock measurement.
func New() *Throughput {
	return Wrap(measurement.WallTime{})
}

// Wrap returns a Throughput wrapping the given measurement backend.
func Wrap(base measurement.Measurement) *Throughput {
	return &Throughput{base: base}
}

// Start delegates to the wrapped measurement.
func (m *Throughput) Start() time.Time {
	return m.base.Start()
}

// End delegates to the wrapped measurement.
func (m *Throughput) End(start time.Time) time.Duration {
	return m.base.End(start)
}

// Add delegates to the wrapped measurement.
func (m *Throughput) Add(a, b time.Duration) time.Duration {
	return m.base.Add(a, b)
}

// Zero delegates to the wrapped measurement.
func (m *Throughput) Zero() time.Duration {
	return m.base.Zero()
}

// ToFloat delegates to the wrapped measurement.
func (m *Throughput) ToFloat(v time.Duration) float64 {
	return m.base.ToFloat(v)
}

// Formatter returns the Throughput itself; overriding the formatter is the
// whole point of the wrapper.
func (m *Throughput) Formatter() measurement.ValueFormatter {
	return m
}

// ScaleValues delegates plain time scaling to the wrapped formatter.
func (m *Throughput) ScaleValues(typical float64, values []float64) string {
	return m.base.Formatter().ScaleValues(typical, values)
}

// ScaleForMachines delegates machine-readable scaling to the wrapped formatter.
func (m *Throughput) ScaleForMachines(values []float64) string {
	return m.base.Formatter().ScaleForMachines(values)
}

// ScaleThroughputs rewrites every sample in place from "nanoseconds per
// iteration" to "time per single unit", lets the wrapped formatter pick the
// display magnitude for the divided batch, and returns the compound unit
// label such as "ns/elem" or "µs/byte". Batch order and length are
// preserved; a zero unit count yields Inf/NaN values, not an error.
func (m *Throughput) ScaleThroughputs(typical float64, tp measurement.Throughput, values []float64) string {
	var category string
	switch tp.Kind() {
	case measurement.KindBytes, measurement.KindBytesDecimal:
		category = "byte"
	case measurement.KindElements:
		category = "elem"
	}
	return compoundUnit(m.timePerUnit(float64(tp.Count()), typical, values), category)
}

// timePerUnit divides the typical value and every sample by the unit count,
// then delegates magnitude selection to the wrapped formatter.
func (m *Throughput) timePerUnit(units, typical float64, values []float64) string {
	typicalTime := typical / units
	for i := range values {
		values[i] /= units
	}
	return m.base.Formatter().ScaleValues(typicalTime, values)
}

// Unexpected is returned for a (time unit, category) pair outside the closed
// label table. Both input sets are closed by construction, so seeing it in a
// report means the wrapped formatter broke its contract.
const Unexpected = "UNEXPECTED"

var compoundUnits = map[[2]string]string{
	{"ps", "byte"}: "ps/byte",
	{"ns", "byte"}: "ns/byte",
	{"µs", "byte"}: "µs/byte",
	{"ms", "byte"}: "ms/byte",
	{"s", "byte"}:  "s/byte",
	{"ps", "elem"}: "ps/elem",
	{"ns", "elem"}: "ns/elem",
	{"µs", "elem"}: "µs/elem",
	{"ms", "elem"}: "ms/elem",
	{"s", "elem"}:  "s/elem",
}

func compoundUnit(timeUnit, category string) string {
	if unit, ok := compoundUnits[[2]string{timeUnit, category}]; ok {
		return unit
	}
	return Unexpected
}
