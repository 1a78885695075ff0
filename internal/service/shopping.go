package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sergioortiz17/devtools-backend/internal/model"
)

// ShoppingTotal is the result of CalculateTotal.
type ShoppingTotal struct {
	Subtotal      float64
	TaxAmount     float64
	Total         float64
	ItemsFound    []string
	ItemsNotFound []string
}

// RoundHalfUp rounds v to two decimal places with ties going away from zero.
// The rounding is done on the shortest decimal representation of v, so
// 1.235 becomes 1.24 even though the float is slightly below 1.235.
func RoundHalfUp(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// CalculateTotal prices items against costs. Every occurrence of a known item
// is charged; unknown items are reported in ItemsNotFound.
//
// The sums are float64 arithmetic; only the final subtotal, tax and total are
// rounded, each independently. A float sum such as 0.7+0.1+0.005 lands just
// below 0.805 and rounds to 0.80.
func CalculateTotal(costs map[string]float64, items []string, taxRate float64) ShoppingTotal {
	var subtotal float64
	found := make([]string, 0, len(items))
	notFound := make([]string, 0)

	for _, item := range items {
		cost, ok := costs[item]
		if !ok {
			notFound = append(notFound, item)
			continue
		}
		subtotal += cost
		found = append(found, item)
	}

	// Explicit conversions keep the compiler from fusing into an FMA.
	tax := float64(subtotal * taxRate)
	total := float64(subtotal + tax)

	return ShoppingTotal{
		Subtotal:      RoundHalfUp(subtotal),
		TaxAmount:     RoundHalfUp(tax),
		Total:         RoundHalfUp(total),
		ItemsFound:    found,
		ItemsNotFound: notFound,
	}
}

type ShoppingService struct{}

func NewShoppingService() *ShoppingService {
	return &ShoppingService{}
}

// CalculateTotal prices the request and logs the items that had no cost.
func (s *ShoppingService) CalculateTotal(ctx context.Context, req *model.ShoppingTotalRequest) *model.ShoppingTotalResponse {
	var taxRate float64
	if req.Tax != nil {
		taxRate = *req.Tax
	}

	result := CalculateTotal(req.Costs, req.Items, taxRate)

	logger := zerolog.Ctx(ctx)
	for _, item := range result.ItemsNotFound {
		logger.Warn().Str("item", item).Msg("item not found in costs")
	}
	logger.Info().
		Float64("subtotal", result.Subtotal).
		Float64("tax", result.TaxAmount).
		Float64("total", result.Total).
		Msg("calculated shopping total")

	return &model.ShoppingTotalResponse{
		Subtotal:      result.Subtotal,
		TaxAmount:     result.TaxAmount,
		Total:         result.Total,
		ItemsFound:    result.ItemsFound,
		ItemsNotFound: result.ItemsNotFound,
	}
}
