package finance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		name string
		m    Money
		want string
	}{
		{"dollars and cents", M(1234.56, "USD"), "$1,234.56"},
		{"negative", M(-42.5, "USD"), "-$42.50"},
		{"euros", M(10, "EUR"), "€10.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := M(0, "USD").SignedString(); got != "-" {
		t.Errorf("zero SignedString() = %q, want -", got)
	}
	if got := M(5, "USD").SignedString(); got != "+$5.00" {
		t.Errorf("positive SignedString() = %q, want +$5.00", got)
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := M(decimal.RequireFromString("0.1"), "USD")
	b := M(decimal.RequireFromString("0.2"), "USD")
	if got := a.Add(b); !got.Amount().Equal(decimal.RequireFromString("0.3")) {
		t.Errorf("0.1 + 0.2 = %s, want exactly 0.3", got.Amount())
	}

	// The empty currency is weak: it takes on the other operand's.
	mixed := Money{}.Add(M(7, "USD"))
	if mixed.Currency() != "USD" {
		t.Errorf("weak currency add = %q, want USD", mixed.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Error("adding USD to EUR did not panic")
		}
	}()
	M(1, "USD").Add(M(1, "EUR"))
}
