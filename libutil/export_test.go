package libutil

var (
	NewClockWith      = newClockWith
	NewFpsCounterWith = newFpsCounterWith
)
