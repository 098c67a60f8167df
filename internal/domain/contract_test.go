package domain

import (
	"errors"
	"testing"
)

func TestParseContract_Offsets(t *testing.T) {
	spec, err := ParseContract("GCQ4 Comdty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.ProductCode != "GC" {
		t.Errorf("ProductCode = %q, want GC", spec.ProductCode)
	}
	if spec.MonthCode != "Q" {
		t.Errorf("MonthCode = %q, want Q", spec.MonthCode)
	}
	if spec.Market != "Comdty" {
		t.Errorf("Market = %q, want Comdty", spec.Market)
	}
}

// The parser cuts at fixed offsets and does not judge field contents;
// semantic validation belongs to NewOrder.
func TestParseContract_NoSemanticChecks(t *testing.T) {
	spec, err := ParseContract("ZZA9 Equity")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if spec.ProductCode != "ZZ" || spec.MonthCode != "A" || spec.Market != "Equity" {
		t.Errorf("unexpected fields: %+v", spec)
	}
}

func TestParseContract_TooShort(t *testing.T) {
	for _, contract := range []string{"", "G", "GC", "GCQ", "GCQ4", "GCQ4 "} {
		_, err := ParseContract(contract)
		if err == nil {
			t.Errorf("ParseContract(%q): expected error", contract)
			continue
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("ParseContract(%q): expected *ValidationError, got %T", contract, err)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{100, "100.0"},
		{102.5, "102.5"},
		{1500, "1500.0"},
		{0.25, "0.25"},
		{101.0, "101.0"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.price); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}
