package domain

import "fmt"

// Contract strings have the fixed shape "<2-char product><1-char month
// code><1-digit year> <market>", e.g. "GCQ4 Comdty". The derived fields
// are cut at fixed offsets: product [0,2), month code [2,3), market
// [5,∞). Offset 3 is the year digit and offset 4 the separating space;
// neither participates in validation.
const (
	productCodeEnd = 2
	monthCodeEnd   = 3
	marketStart    = 5

	// minContractLen requires at least one market character after the
	// contract root and separator.
	minContractLen = marketStart + 1
)

// ProductGold is the only supported product family.
const ProductGold = "GC"

// MarketComdty is the only supported market qualifier.
const MarketComdty = "Comdty"

// monthCodeOrder lists the twelve futures delivery month codes in
// calendar order. Kept as a slice so error messages enumerate the
// codes deterministically.
var monthCodeOrder = []string{"F", "G", "H", "J", "K", "M", "N", "Q", "U", "V", "X", "Z"}

// MonthNames maps each delivery month code to its calendar month.
// Descriptive lookup only; matching never consults it.
var MonthNames = map[string]string{
	"F": "January",
	"G": "February",
	"H": "March",
	"J": "April",
	"K": "May",
	"M": "June",
	"N": "July",
	"Q": "August",
	"U": "September",
	"V": "October",
	"X": "November",
	"Z": "December",
}

// ContractSpec holds the fields derived from a contract string.
type ContractSpec struct {
	ProductCode string
	MonthCode   string
	Market      string
}

// ParseContract cuts a contract string at the fixed grammar offsets.
// A contract shorter than the expected offsets is a validation error
// rather than a silent set of empty fields.
func ParseContract(contract string) (ContractSpec, error) {
	if len(contract) < minContractLen {
		return ContractSpec{}, &ValidationError{
			Message: fmt.Sprintf("Contract %q is too short: expected form \"<product><month><year> <market>\".", contract),
		}
	}
	return ContractSpec{
		ProductCode: contract[:productCodeEnd],
		MonthCode:   contract[productCodeEnd:monthCodeEnd],
		Market:      contract[marketStart:],
	}, nil
}
