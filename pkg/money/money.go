// Package money formats kobo amounts for people.
package money

import (
	gomoney "github.com/Rhymond/go-money"
)

const Currency = gomoney.NGN

// Format renders kobo as naira, e.g. 4500000 -> ₦45,000.00.
func Format(kobo int64) string {
	return gomoney.New(kobo, Currency).Display()
}
