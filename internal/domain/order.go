package domain

import (
	"fmt"
	"strings"
)

// Side indicates whether an order is buying or selling.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Order represents one validated trading intention for a gold futures
// contract. All fields except Quantity are fixed at construction;
// Quantity is decremented by the engine as fills occur and an order
// whose quantity reaches zero is evicted from its resting collection.
type Order struct {
	Side     Side
	Price    float64
	Quantity int64
	Contract string

	// Derived from Contract at construction.
	ProductCode string
	MonthCode   string
	Market      string
}

// NewOrder validates the instruction and constructs an Order.
// Validation runs in a fixed order — side, price/quantity positivity,
// month code, product code, market — and stops at the first violation,
// returned as a *ValidationError. An invalid Order never exists.
func NewOrder(side Side, price float64, quantity int64, contract string) (*Order, error) {
	if side != SideBuy && side != SideSell {
		return nil, &ValidationError{
			Message: fmt.Sprintf("%s does not conform to acceptable values 'BUY' or 'SELL'.", side),
		}
	}
	if price <= 0 || quantity <= 0 {
		return nil, &ValidationError{
			Message: "Price and quantity must be positive.",
		}
	}

	spec, err := ParseContract(contract)
	if err != nil {
		return nil, err
	}

	if _, ok := MonthNames[spec.MonthCode]; !ok {
		return nil, &ValidationError{
			Message: fmt.Sprintf("Contract code %s does not conform to valid set of month codes: %s",
				spec.MonthCode, strings.Join(monthCodeOrder, ", ")),
		}
	}
	if spec.ProductCode != ProductGold {
		return nil, &ValidationError{
			Message: fmt.Sprintf("Unsupported product code [%s]. Product must be Gold [GC].", spec.ProductCode),
		}
	}
	if spec.Market != MarketComdty {
		return nil, &ValidationError{
			Message: fmt.Sprintf("Unsupported market [%s]. Order must be for commodity [Comdty] market.", spec.Market),
		}
	}

	return &Order{
		Side:        side,
		Price:       price,
		Quantity:    quantity,
		Contract:    contract,
		ProductCode: spec.ProductCode,
		MonthCode:   spec.MonthCode,
		Market:      spec.Market,
	}, nil
}

// IsBuy reports whether the order is a buy order.
func (o *Order) IsBuy() bool {
	return o.Side == SideBuy
}

// IsSell reports whether the order is a sell order.
func (o *Order) IsSell() bool {
	return o.Side == SideSell
}

// DeliveryMonth returns the calendar month named by the order's month
// code. The second return is false for an unknown code, which cannot
// happen for a constructed Order.
func (o *Order) DeliveryMonth() (string, bool) {
	name, ok := MonthNames[o.MonthCode]
	return name, ok
}

// String renders the order in its report form.
func (o *Order) String() string {
	return fmt.Sprintf("Price: %s, Quantity: %d, Contract: %s", FormatPrice(o.Price), o.Quantity, o.Contract)
}
