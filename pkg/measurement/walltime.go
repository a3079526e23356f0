package measurement

import "time"

// WallTime measures wall-clock elapsed time. It is the default measurement
// backend and the reference the inverted reporting mode delegates to for
// magnitude selection.
type WallTime struct{}

// Start captures the current time.
func (WallTime) Start() time.Time {
	return time.Now()
}

// End returns the wall time elapsed since start.
func (WallTime) End(start time.Time) time.Duration {
	return time.Since(start)
}

// Add combines two elapsed durations.
func (WallTime) Add(a, b time.Duration) time.Duration {
	return a + b
}

// Zero returns the zero duration.
func (WallTime) Zero() time.Duration {
	return 0
}

// ToFloat converts an elapsed duration to nanoseconds.
func (WallTime) ToFloat(v time.Duration) float64 {
	return float64(v)
}

// Formatter returns the wall-clock duration formatter.
func (WallTime) Formatter() ValueFormatter {
	return DurationFormatter{}
}

// DurationFormatter scales raw nanosecond samples into display magnitudes
// between picoseconds and seconds, and throughput declarations into rates
// between units-per-second and giga-units-per-second.
type DurationFormatter struct{}

// ScaleValues picks one time magnitude from the typical value, rescales the
// whole batch to it in place, and returns the matching unit label.
func (DurationFormatter) ScaleValues(typical float64, values []float64) string {
	var factor float64
	var unit string
	switch {
	case typical < 1:
		factor, unit = 1e3, "ps"
	case typical < 1e3:
		factor, unit = 1, "ns"
	case typical < 1e6:
		factor, unit = 1e-3, "µs"
	case typical < 1e9:
		factor, unit = 1e-6, "ms"
	default:
		factor, unit = 1e-9, "s"
	}
	for i := range values {
		values[i] *= factor
	}
	return unit
}

var (
	bytesBinaryUnits  = [4]string{"B/s", "KiB/s", "MiB/s", "GiB/s"}
	bytesDecimalUnits = [4]string{"B/s", "KB/s", "MB/s", "GB/s"}
	elementUnits      = [4]string{"elem/s", "Kelem/s", "Melem/s", "Gelem/s"}
)

// ScaleThroughputs converts every raw nanosecond sample into a rate of units
// per second, scaled to the magnitude picked from the typical value.
func (DurationFormatter) ScaleThroughputs(typical float64, tp Throughput, values []float64) string {
	count := float64(tp.Count())
	switch tp.Kind() {
	case KindBytes:
		return scaleRate(count, typical, values, 1024, bytesBinaryUnits)
	case KindBytesDecimal:
		return scaleRate(count, typical, values, 1000, bytesDecimalUnits)
	default:
		return scaleRate(count, typical, values, 1000, elementUnits)
	}
}

// ScaleForMachines leaves values in raw nanoseconds.
func (DurationFormatter) ScaleForMachines(values []float64) string {
	return "ns"
}

func scaleRate(count, typical float64, values []float64, step float64, units [4]string) string {
	perSecond := count * (1e9 / typical)
	var denom float64
	var unit string
	switch {
	case perSecond < step:
		denom, unit = 1, units[0]
	case perSecond < step*step:
		denom, unit = step, units[1]
	case perSecond < step*step*step:
		denom, unit = step*step, units[2]
	default:
		denom, unit = step*step*step, units[3]
	}
	for i := range values {
		values[i] = count * (1e9 / values[i]) / denom
	}
	return unit
}
