package service

import (
	"github.com/niksmo/checkout/internal/core/domain"
	"github.com/niksmo/checkout/internal/core/port"
)

var _ port.FeeCalculator = ShippingCalculator{}

// ShippingCalculator prices a shipment as total weight times a flat
// per-kilogram rate. The rate comes from configuration at construction.
type ShippingCalculator struct {
	ratePerKg domain.Money
	notifier  port.ShipmentNotifier
}

func NewShippingCalculator(
	ratePerKg domain.Money, notifier port.ShipmentNotifier,
) ShippingCalculator {
	return ShippingCalculator{ratePerKg: ratePerKg, notifier: notifier}
}

// Fee returns the shipping fee for the given units and emits a
// shipment notice through the notifier. An empty shipment costs
// nothing and produces no notice.
func (s ShippingCalculator) Fee(items []domain.ShippingItem) domain.Money {
	if len(items) == 0 {
		return domain.ZeroMoney(s.ratePerKg.Currency)
	}

	var totalWeightKg float64
	for _, item := range items {
		totalWeightKg += item.WeightKg
	}

	s.notifier.ShipmentNotice(items, totalWeightKg)

	return s.ratePerKg.MulFloat64(totalWeightKg)
}
