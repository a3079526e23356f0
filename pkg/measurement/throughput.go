package measurement

// ThroughputKind tags how the count inside a Throughput is interpreted.
type ThroughputKind int

const (
	// KindBytes scales by powers of 1024 (KiB, MiB, GiB).
	KindBytes ThroughputKind = iota
	// KindBytesDecimal scales by powers of 1000 (KB, MB, GB).
	KindBytesDecimal
	// KindElements counts opaque elements, scaled by powers of 1000.
	KindElements
)

// Throughput declares how many elements or bytes one benchmark iteration
// processes. It is immutable once constructed; the two byte conventions only
// differ in how the plain throughput report scales, the counts are numerically
// identical.
type Throughput struct {
	kind  ThroughputKind
	count uint64
}

// Bytes returns a Throughput of n bytes per iteration, binary scaling.
func Bytes(n uint64) Throughput {
	return Throughput{kind: KindBytes, count: n}
}

// BytesDecimal returns a Throughput of n bytes per iteration, decimal scaling.
func BytesDecimal(n uint64) Throughput {
	return Throughput{kind: KindBytesDecimal, count: n}
}

// Elements returns a Throughput of n elements per iteration.
func Elements(n uint64) Throughput {
	return Throughput{kind: KindElements, count: n}
}

// Kind reports the byte or element convention of the declaration.
func (t Throughput) Kind() ThroughputKind {
	return t.kind
}

// Count reports the per-iteration unit count.
func (t Throughput) Count() uint64 {
	return t.count
}
