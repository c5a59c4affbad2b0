package domain

// ShippingItem is one physical unit handed to the shipping service.
// A cart line of quantity N expands into N entries.
type ShippingItem struct {
	Name     string
	WeightKg float64
}

type ReceiptLine struct {
	Quantity  int
	Name      string
	LineTotal Money
}

// Receipt carries the structured result of a successful checkout.
// Rendering is the report adapter's concern.
type Receipt struct {
	Lines        []ReceiptLine
	Subtotal     Money
	ShippingFee  Money
	Total        Money
	BalanceAfter Money
}
