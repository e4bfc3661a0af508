package vim

import "testing"

func TestCountAccumulate(t *testing.T) {
	var c CountState

	if c.AccumulateDigit('0') {
		t.Error("leading zero must not start a count")
	}
	if c.Active {
		t.Error("count should not be active after rejected digit")
	}

	for _, r := range "120" {
		if !c.AccumulateDigit(r) {
			t.Fatalf("AccumulateDigit(%q) rejected", r)
		}
	}
	if c.Value != 120 {
		t.Errorf("Value = %d, want 120", c.Value)
	}

	if got := c.Take(); got != 120 {
		t.Errorf("Take = %d, want 120", got)
	}
	if c.Active || c.Value != 0 {
		t.Error("Take must reset the accumulator")
	}
}

func TestCountTakeDefaultsToOne(t *testing.T) {
	var c CountState
	if got := c.Take(); got != 1 {
		t.Errorf("Take with no digits = %d, want 1", got)
	}
}

func TestCountRejectsNonDigits(t *testing.T) {
	var c CountState
	if c.AccumulateDigit('w') {
		t.Error("letters are not digits")
	}
}
