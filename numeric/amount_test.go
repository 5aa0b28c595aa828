package numeric

import "testing"

func TestAmountArithmetic(t *testing.T) {
	a := NewAmountFromFloat(10.5)
	b := NewAmountFromFloat(3.25)

	if got := a.Add(b).String(); got != "13.75" {
		t.Errorf("Add: got %s", got)
	}
	if got := a.Sub(b).String(); got != "7.25" {
		t.Errorf("Sub: got %s", got)
	}
	if a.Compare(b) <= 0 {
		t.Errorf("expected a > b")
	}
	if b.Compare(a) >= 0 {
		t.Errorf("expected b < a")
	}
	if a.Compare(a) != 0 {
		t.Errorf("expected a == a")
	}
}

func TestAmountIsZero(t *testing.T) {
	var zero Amount
	if !zero.IsZero() {
		t.Error("expected the zero value to be zero")
	}
	if NewAmountFromFloat(0.1).IsZero() {
		t.Error("expected a nonzero amount to report nonzero")
	}
}

func TestAmountFromString(t *testing.T) {
	a, err := NewAmountFromString("123.456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.String() != "123.456" {
		t.Errorf("got %s", a.String())
	}

	if _, err := NewAmountFromString("not-a-number"); err == nil {
		t.Error("expected an error for an unparsable string")
	}
}

func TestAmountSubCanGoNegative(t *testing.T) {
	a := NewAmountFromFloat(1)
	b := NewAmountFromFloat(2)
	got := a.Sub(b)
	if got.String() != "-1" {
		t.Errorf("got %s", got.String())
	}
	if got.Compare(NewAmountFromFloat(0)) >= 0 {
		t.Error("expected a negative result to compare below zero")
	}
}
