package arena

import (
	"encoding/binary"
	"fmt"
	"runtime"
)

// debugMagic guards the front and back of every debug-tracked allocation.
const debugMagic uint64 = 0xDEADBEEFDEADBEEF

// sentinelSize is the width of one front or back guard.
const sentinelSize = 8

// debugOverhead is the extra space Alloc reserves inline for the two
// guard sentinels. The AllocationLog record itself lives in a separate
// shadow table (allocLog, linked through Arena.log) rather than in the
// allocation's preamble; the two inline guards still make each debug
// allocation debugOverhead bytes larger, with the payload placed
// sentinelSize bytes past the start of its block.
const debugOverhead = 2 * sentinelSize

// allocLog is one entry in the arena's debug shadow table: an intrusive
// singly linked chain recording where an outstanding allocation came
// from, plus pointers to its inline guard sentinels for corruption
// detection.
type allocLog struct {
	prev *allocLog
	file string
	line int
	size int
	tag  string
	front, back []byte
}

func (a *Arena) wrapDebug(raw []byte, size int) []byte {
	front := raw[:sentinelSize]
	payload := raw[sentinelSize : sentinelSize+size]
	back := raw[sentinelSize+size : sentinelSize+size+sentinelSize]

	binary.LittleEndian.PutUint64(front, debugMagic)
	binary.LittleEndian.PutUint64(back, debugMagic)

	_, file, line, _ := runtime.Caller(2) // Alloc's caller

	a.log = &allocLog{
		prev:  a.log,
		file:  file,
		line:  line,
		size:  size,
		front: front,
		back:  back,
	}
	return payload
}

// boundaryError reports which sentinel a corrupted allocation failed.
type boundaryError int

const (
	boundaryNone boundaryError = iota
	boundaryFront
	boundaryBack
)

func checkBoundary(e *allocLog) boundaryError {
	if binary.LittleEndian.Uint64(e.front) != debugMagic {
		return boundaryFront
	}
	if binary.LittleEndian.Uint64(e.back) != debugMagic {
		return boundaryBack
	}
	return boundaryNone
}

// validate walks the log chain, reporting a leak for every outstanding
// record and a boundary-corruption report for any sentinel mismatch, then
// panics if anything was found (OutOfMemory/BoundaryCorruption are fatal
// per the engine's error taxonomy).
func (a *Arena) validate() {
	var reports []string
	for e := a.log; e != nil; e = e.prev {
		switch checkBoundary(e) {
		case boundaryFront:
			reports = append(reports, fmt.Sprintf("%s:%d: memory boundary overwritten at front of %d-byte allocation (tag=%q)", e.file, e.line, e.size, e.tag))
		case boundaryBack:
			reports = append(reports, fmt.Sprintf("%s:%d: memory boundary overwritten at back of %d-byte allocation (tag=%q)", e.file, e.line, e.size, e.tag))
		default:
			reports = append(reports, fmt.Sprintf("%s:%d: leaked %d-byte allocation (tag=%q) in arena %q", e.file, e.line, e.size, e.tag, a.Name))
		}
	}
	if len(reports) > 0 {
		panic(fmt.Sprintf("arena %q: %d outstanding allocation(s):\n%s", a.Name, len(reports), joinLines(reports)))
	}
}

func joinLines(s []string) string {
	out := ""
	for i, l := range s {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}
