package service

import (
	"math"
	"strconv"
)

// FailCount is a saturating count of wrong answers.
type FailCount uint8

// ZeroFails is the count of an item that was never answered wrong.
const ZeroFails FailCount = 0

// displayCap is the largest count shown as a plain number.
const displayCap = 100

// Inc increments the count, saturating at the maximum.
func (f *FailCount) Inc() {
	if *f < math.MaxUint8 {
		*f++
	}
}

// Add returns the saturating sum of two counts.
func (f FailCount) Add(other FailCount) FailCount {
	sum := int(f) + int(other)
	if sum > math.MaxUint8 {
		return math.MaxUint8
	}
	return FailCount(sum)
}

// HasFailed reports whether the count is nonzero.
func (f FailCount) HasFailed() bool {
	return f > 0
}

// Value returns the count as an int.
func (f FailCount) Value() int {
	return int(f)
}

func (f FailCount) String() string {
	if f > displayCap {
		return "100+"
	}
	return strconv.Itoa(int(f))
}
