package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ProductKind int

const (
	KindPerishable ProductKind = iota
	KindShippable
	KindDigital
)

func (k ProductKind) String() string {
	switch k {
	case KindPerishable:
		return "perishable"
	case KindShippable:
		return "shippable"
	case KindDigital:
		return "digital"
	}
	return "unknown"
}

// Product is a catalog entry. The three kinds share one flat struct:
// ExpiresAt is meaningful only for perishable products, WeightKg is
// zero for digital ones.
type Product struct {
	ProductID      uuid.UUID
	Name           string
	Kind           ProductKind
	Price          Money
	AvailableStock int
	ExpiresAt      time.Time
	WeightKg       float64
}

func NewPerishable(
	name string, price Money, stock int, expiresAt time.Time, weightKg float64,
) (Product, error) {
	p, err := newProduct(name, KindPerishable, price, stock, weightKg)
	if err != nil {
		return Product{}, err
	}
	if expiresAt.IsZero() {
		return Product{}, fmt.Errorf("product %q: expiration date is required", name)
	}
	p.ExpiresAt = expiresAt
	return p, nil
}

func NewShippable(
	name string, price Money, stock int, weightKg float64,
) (Product, error) {
	return newProduct(name, KindShippable, price, stock, weightKg)
}

func NewDigital(name string, price Money, stock int) (Product, error) {
	return newProduct(name, KindDigital, price, stock, 0)
}

func newProduct(
	name string, kind ProductKind, price Money, stock int, weightKg float64,
) (Product, error) {
	switch {
	case name == "":
		return Product{}, fmt.Errorf("product name is empty")
	case price.IsNegative():
		return Product{}, fmt.Errorf("product %q: price is negative", name)
	case stock < 0:
		return Product{}, fmt.Errorf("product %q: stock is negative", name)
	case weightKg < 0:
		return Product{}, fmt.Errorf("product %q: weight is negative", name)
	}
	return Product{
		ProductID:      uuid.New(),
		Name:           name,
		Kind:           kind,
		Price:          price,
		AvailableStock: stock,
		WeightKg:       weightKg,
	}, nil
}

// IsExpired reports whether the product is past its expiration date at
// the given moment. Only perishable products expire.
func (p Product) IsExpired(at time.Time) bool {
	return p.Kind == KindPerishable && at.After(p.ExpiresAt)
}

func (p Product) RequiresShipping() bool {
	return p.Kind != KindDigital
}

// ShippingWeight is the per-unit package weight in kilograms.
func (p Product) ShippingWeight() float64 {
	if p.Kind == KindDigital {
		return 0
	}
	return p.WeightKg
}

// ReduceStock decrements available stock by amount. Stock never goes
// negative: reducing by more than available fails and leaves the
// product unchanged.
func (p *Product) ReduceStock(amount int) error {
	if amount > p.AvailableStock {
		return InvalidOperationf("Cannot reduce quantity by more than available stock")
	}
	p.AvailableStock -= amount
	return nil
}
