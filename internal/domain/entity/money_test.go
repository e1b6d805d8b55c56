package entity

import "testing"

func TestMoneyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   Money
		expected string
	}{
		{name: "zero", amount: 0, expected: "₹0.00"},
		{name: "paise only", amount: 99, expected: "₹0.99"},
		{name: "whole rupees", amount: 50000, expected: "₹500.00"},
		{name: "rupees and paise", amount: 123456, expected: "₹1234.56"},
		{name: "single paisa fraction", amount: 100001, expected: "₹1000.01"},
		{name: "negative amount", amount: -2550, expected: "-₹25.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.amount.String(); got != tt.expected {
				t.Fatalf("Money(%d).String() = %s, want %s", int64(tt.amount), got, tt.expected)
			}
		})
	}
}

func TestMoneyRupees(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   Money
		expected int64
	}{
		{name: "zero", amount: 0, expected: 0},
		{name: "truncates paise", amount: 199, expected: 1},
		{name: "whole rupees", amount: 50000, expected: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.amount.Rupees(); got != tt.expected {
				t.Fatalf("Money(%d).Rupees() = %d, want %d", int64(tt.amount), got, tt.expected)
			}
		})
	}
}
