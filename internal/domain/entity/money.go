// Package entity contains the core business objects of the project.
package entity

import "fmt"

// Money represents an amount in integer minor units (paise).
// Catalog prices and order totals are never held as floating point,
// so line totals and order totals stay exact.
type Money int64

// Rupees returns the whole-rupee part of the amount.
func (m Money) Rupees() int64 {
	return int64(m) / 100
}

// String formats the amount as rupees with two decimal places.
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}

	return fmt.Sprintf("%s₹%d.%02d", sign, v/100, v%100)
}
