package measurement

import "time"

// Measurement is the capability set a benchmark backend exposes to the
// harness: timestamp capture, duration aggregation across repeated
// iterations, and a formatter for turning raw samples into report values.
type Measurement interface {
	// Start captures the timestamp marking the beginning of one sample.
	Start() time.Time
	// End consumes the intermediate from Start and returns the elapsed time.
	End(start time.Time) time.Duration
	// Add combines two measured values, used when a sample spans batches.
	Add(a, b time.Duration) time.Duration
	// Zero is the additive identity for Add.
	Zero() time.Duration
	// ToFloat converts a measured value to raw nanoseconds.
	ToFloat(v time.Duration) float64
	// Formatter reports the ValueFormatter used to render this measurement.
	Formatter() ValueFormatter
}

// ValueFormatter scales raw sample batches into human readable magnitudes.
// Every value passed in is raw nanoseconds; scaling happens in place and the
// returned string is the unit label matching the chosen magnitude. The
// typical value (median or mean of the batch) picks one magnitude for the
// whole batch so all reported numbers share a denominator.
type ValueFormatter interface {
	ScaleValues(typical float64, values []float64) string
	ScaleThroughputs(typical float64, tp Throughput, values []float64) string
	ScaleForMachines(values []float64) string
}
