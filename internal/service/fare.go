package service

import "github.com/shopspring/decimal"

// Static fare constants shown on the seat page. Display only; no
// pricing logic is applied anywhere in the booking flow.
var (
	adultFare           = decimal.NewFromInt(25000)
	disabledDiscountPct = decimal.NewFromInt(50)
	childDiscountPct    = decimal.NewFromInt(30)
	infantSeatFarePct   = decimal.NewFromInt(25)
	oneHundred          = decimal.NewFromInt(100)
)

// FareTable holds the per-passenger-type fares for one train.
type FareTable struct {
	Adult      decimal.Decimal
	Disabled   decimal.Decimal
	Child      decimal.Decimal
	InfantSeat decimal.Decimal
}

// StandardFares returns the fare table derived from the static constants.
func StandardFares() FareTable {
	return FareTable{
		Adult:      adultFare,
		Disabled:   applyDiscount(adultFare, disabledDiscountPct),
		Child:      applyDiscount(adultFare, childDiscountPct),
		InfantSeat: adultFare.Mul(infantSeatFarePct).Div(oneHundred),
	}
}

func applyDiscount(fare, pct decimal.Decimal) decimal.Decimal {
	return fare.Sub(fare.Mul(pct).Div(oneHundred))
}
