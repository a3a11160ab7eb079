package libutil

import (
	"math"

	"github.com/chewxy/math32"
)

const (
	Rad2Deg = float32(180 / math.Pi)
	Deg2Rad = float32(math.Pi / 180)
)

// Invalid function pointer handed to the GL loader for entry points the
// driver does not export, so that loading does not fail on optional functions.
const InvalidAddress uintptr = 0xffff_ffff_ffff_ffff

func Clamp(v, lo, hi float32) float32 {
	return math32.Min(math32.Max(v, lo), hi)
}
