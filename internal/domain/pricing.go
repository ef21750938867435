package domain

import "math"

// Pricing holds the display fields derived from price and discount.
type Pricing struct {
	OriginalPrice  float64 `json:"originalPrice"`
	Discount       float64 `json:"discount"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalPrice     float64 `json:"finalPrice"`
	Savings        float64 `json:"savings"`
	HasDiscount    bool    `json:"hasDiscount"`
}

// ComputePricing derives the pricing block from a stored price and a
// discount percentage in [0,100]. Monetary values are rounded to 2 decimals.
func ComputePricing(price, discount float64) Pricing {
	discountAmount := round2(price * discount / 100)
	return Pricing{
		OriginalPrice:  round2(price),
		Discount:       discount,
		DiscountAmount: discountAmount,
		FinalPrice:     round2(price - price*discount/100),
		Savings:        discountAmount,
		HasDiscount:    discount > 0,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
