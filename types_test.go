package folio

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-05", want: NewDate(2024, time.January, 5)},
		{in: "2024-1-5", want: NewDate(2024, time.January, 5)},
		{in: "not a date", wantErr: true},
		{in: "2024-13-40", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) expected an error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_Add(t *testing.T) {
	// day arithmetic normalizes across month boundaries
	if got := d("2024-01-31").Add(1); got != d("2024-02-01") {
		t.Errorf("Add(1) = %s, want 2024-02-01", got)
	}
	if got := d("2024-03-01").Add(-1); got != d("2024-02-29") {
		t.Errorf("Add(-1) = %s, want 2024-02-29 (leap year)", got)
	}
}

func TestDate_Ordering(t *testing.T) {
	a, b := d("2024-01-05"), d("2024-01-06")
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before: %s < %s expected", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After: %s > %s expected", b, a)
	}
	if !(Date{}).IsZero() || a.IsZero() {
		t.Error("IsZero on zero and non-zero dates")
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	if got := USD(100).Mul(3); !got.Equal(USD(300)) {
		t.Errorf("Mul(3) = %v, want $300.00", got)
	}
	if got := USD(300).Div(3); !got.Equal(USD(100)) {
		t.Errorf("Div(3) = %v, want $100.00", got)
	}
	if got := USD(100).Add(USD(0.10)); !got.Equal(USD(100.10)) {
		t.Errorf("Add = %v, want $100.10", got)
	}
	// the empty currency is weak and takes the other side's
	if got := NO(0).Add(USD(5)); !got.Equal(USD(5)) {
		t.Errorf("zero Add = %v, want $5.00", got)
	}
	if got := USD(120).Sub(USD(100)).Ratio(USD(100)); !almostEqual(got, 0.2) {
		t.Errorf("Ratio = %v, want 0.2", got)
	}
}

func TestMoney_DecimalExactness(t *testing.T) {
	// classic float trap: 0.1+0.2 must come out exactly 0.3
	if got := USD(0.1).Add(USD(0.2)); !got.Equal(USD(0.3)) {
		t.Errorf("0.1 + 0.2 = %v, want exactly $0.30", got)
	}
}

func TestQuantity(t *testing.T) {
	var q Quantity = 5
	if !q.IsPositive() || q.IsZero() {
		t.Error("5 must be positive and non-zero")
	}
	if got := q.Add(3).Sub(2); got != 6 {
		t.Errorf("5+3-2 = %d, want 6", got)
	}
	if !Quantity(2).LessThan(3) || Quantity(3).LessThan(3) {
		t.Error("LessThan is strict")
	}
}

func TestPercent_Strings(t *testing.T) {
	if got := Percent(12.5).String(); got != "12.50%" {
		t.Errorf("String() = %q, want 12.50%%", got)
	}
	if got := Percent(-3).SignedString(); got != "-3.00%" {
		t.Errorf("SignedString() = %q, want -3.00%%", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
}
