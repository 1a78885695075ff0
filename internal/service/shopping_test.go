package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergioortiz17/devtools-backend/internal/model"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 1.234, want: 1.23},
		{in: 1.235, want: 1.24},
		{in: 1.236, want: 1.24},
		{in: 0.005, want: 0.01},
		{in: 0.001, want: 0.00},
		{in: 2.675, want: 2.68},
		{in: -1.235, want: -1.24},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundHalfUp(tt.in), "RoundHalfUp(%v)", tt.in)
	}
}

func TestCalculateTotal(t *testing.T) {
	tests := []struct {
		name  string
		costs map[string]float64
		items []string
		tax   float64
		want  ShoppingTotal
	}{
		{
			name:  "all items found",
			costs: map[string]float64{"apple": 1.50, "banana": 0.75},
			items: []string{"apple", "banana"},
			tax:   0.1,
			want: ShoppingTotal{
				Subtotal: 2.25, TaxAmount: 0.23, Total: 2.48,
				ItemsFound: []string{"apple", "banana"}, ItemsNotFound: []string{},
			},
		},
		{
			name:  "unknown items are reported in order",
			costs: map[string]float64{"apple": 1.00},
			items: []string{"kiwi", "apple", "grape"},
			tax:   0,
			want: ShoppingTotal{
				Subtotal: 1, TaxAmount: 0, Total: 1,
				ItemsFound: []string{"apple"}, ItemsNotFound: []string{"kiwi", "grape"},
			},
		},
		{
			name:  "duplicates are charged each time",
			costs: map[string]float64{"apple": 1.50},
			items: []string{"apple", "apple", "pear", "pear"},
			tax:   0.2,
			want: ShoppingTotal{
				Subtotal: 3, TaxAmount: 0.6, Total: 3.6,
				ItemsFound: []string{"apple", "apple"}, ItemsNotFound: []string{"pear", "pear"},
			},
		},
		{
			name:  "rounds each amount independently",
			costs: map[string]float64{"a": 1.111, "b": 2.222},
			items: []string{"a", "b"},
			tax:   0.1,
			want: ShoppingTotal{
				Subtotal: 3.33, TaxAmount: 0.33, Total: 3.67,
				ItemsFound: []string{"a", "b"}, ItemsNotFound: []string{},
			},
		},
		{
			name:  "tax just below a half cent rounds down",
			costs: map[string]float64{"x": 1.15},
			items: []string{"x"},
			tax:   0.1,
			want: ShoppingTotal{
				Subtotal: 1.15, TaxAmount: 0.11, Total: 1.27,
				ItemsFound: []string{"x"}, ItemsNotFound: []string{},
			},
		},
		{
			name:  "subtotal is summed in float before rounding",
			costs: map[string]float64{"a": 0.7, "b": 0.1, "c": 0.005},
			items: []string{"a", "b", "c"},
			tax:   0,
			want: ShoppingTotal{
				Subtotal: 0.8, TaxAmount: 0, Total: 0.8,
				ItemsFound: []string{"a", "b", "c"}, ItemsNotFound: []string{},
			},
		},
		{
			name:  "empty cart",
			costs: map[string]float64{},
			items: []string{},
			tax:   0.1,
			want: ShoppingTotal{
				ItemsFound: []string{}, ItemsNotFound: []string{},
			},
		},
		{
			name:  "negative tax is accepted as given",
			costs: map[string]float64{"apple": 10},
			items: []string{"apple"},
			tax:   -0.1,
			want: ShoppingTotal{
				Subtotal: 10, TaxAmount: -1, Total: 9,
				ItemsFound: []string{"apple"}, ItemsNotFound: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTotal(tt.costs, tt.items, tt.tax))
		})
	}
}

func TestShoppingService_CalculateTotal(t *testing.T) {
	tax := 0.1
	req := &model.ShoppingTotalRequest{
		Costs: map[string]float64{"apple": 1.50, "banana": 0.75},
		Items: []string{"apple", "banana", "cherry"},
		Tax:   &tax,
	}

	got := NewShoppingService().CalculateTotal(context.Background(), req)

	assert.Equal(t, &model.ShoppingTotalResponse{
		Subtotal:      2.25,
		TaxAmount:     0.23,
		Total:         2.48,
		ItemsFound:    []string{"apple", "banana"},
		ItemsNotFound: []string{"cherry"},
	}, got)
}
