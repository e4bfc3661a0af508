package vim

import "math"

// CountState accumulates a numeric count prefix. A single accumulator is
// shared across the operator boundary: digits typed before an operator and
// digits typed while a motion is pending land in the same value, so "3dw"
// and "d3w" both fire with count 3.
type CountState struct {
	// Value is the accumulated count.
	Value int

	// Active is true once at least one digit has been accepted.
	Active bool
}

// Reset clears the accumulator.
func (c *CountState) Reset() {
	c.Value = 0
	c.Active = false
}

// AccumulateDigit adds an ASCII digit to the count. A leading '0' is
// rejected (it is the line-start motion); '0' is accepted once a nonzero
// digit has been typed.
func (c *CountState) AccumulateDigit(r rune) bool {
	if r < '0' || r > '9' {
		return false
	}

	digit := int(r - '0')
	if !c.Active && digit == 0 {
		return false
	}

	c.Active = true

	// Cap rather than overflow.
	if c.Value > (math.MaxInt-digit)/10 {
		c.Value = math.MaxInt / 10
		return true
	}

	c.Value = c.Value*10 + digit
	return true
}

// Take returns the effective count (1 when none was typed) and resets the
// accumulator. Commands that use a count always consume it this way.
func (c *CountState) Take() int {
	v := c.Value
	c.Reset()
	if v <= 0 {
		return 1
	}
	return v
}

// IsCountStart returns true for digits that can begin a count.
func IsCountStart(r rune) bool {
	return r >= '1' && r <= '9'
}

// IsCountDigit returns true for digits valid inside a count.
func IsCountDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
