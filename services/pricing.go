// Package services provides the pricing engine, export generation and
// outbound delivery clients for the quotation site.
package services

import "math"

// Product types offered by the instant quote calculator.
const (
	ProductNotebook = "notebook"
	ProductPen      = "pen"
	ProductShirt    = "shirt"
	ProductJacket   = "jacket"
)

// Production timelines.
const (
	TimelineStandard  = "standard"
	TimelineExpedited = "expedited"
)

// UnitPrices is the fixed per-unit price table in PHP.
var UnitPrices = map[string]int{
	ProductNotebook: 120,
	ProductPen:      25,
	ProductShirt:    280,
	ProductJacket:   450,
}

// Surcharges and fees, in PHP.
const (
	PrintFrontCharge = 50  // per unit
	PrintBackCharge  = 40  // per unit
	CustomLogoFee    = 500 // one-time
)

// RushMultiplier is applied to the full running total for expedited orders.
const RushMultiplier = 1.30

// QuoteConfig is the in-progress set of calculator choices. It is ephemeral:
// the estimate is recomputed from scratch on every change.
type QuoteConfig struct {
	ProductType string
	Quantity    int
	PrintFront  bool
	PrintBack   bool
	CustomLogo  bool
	Timeline    string
}

// NormalizeQuantity clamps a quantity to the 1+ range the calculator accepts.
func NormalizeQuantity(qty int) int {
	if qty < 1 {
		return 1
	}
	return qty
}

// VolumeDiscount returns the discount factor for a quantity. Tiers do not
// stack; the highest applicable tier wins and lower bounds are inclusive.
func VolumeDiscount(qty int) float64 {
	switch {
	case qty >= 100:
		return 0.85
	case qty >= 50:
		return 0.90
	default:
		return 1.0
	}
}

// EstimateCost computes the estimated price in PHP for a quote configuration.
// The order of operations is a business rule: the volume discount applies to
// the base cost only, print surcharges are added after (and are never
// discounted), the logo fee is added before the rush multiplier so expedited
// orders pay rush on it too. Returns 0 when no product is selected.
func EstimateCost(cfg QuoteConfig) int {
	unitPrice, ok := UnitPrices[cfg.ProductType]
	if !ok {
		return 0
	}

	qty := NormalizeQuantity(cfg.Quantity)
	total := float64(unitPrice*qty) * VolumeDiscount(qty)

	printCharge := 0
	if cfg.PrintFront {
		printCharge += PrintFrontCharge
	}
	if cfg.PrintBack {
		printCharge += PrintBackCharge
	}
	total += float64(printCharge * qty)

	if cfg.CustomLogo {
		total += CustomLogoFee
	}

	if cfg.Timeline == TimelineExpedited {
		total *= RushMultiplier
	}

	return int(math.Round(total))
}
