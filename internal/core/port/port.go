package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/niksmo/checkout/internal/core/domain"
)

type ProductStore interface {
	SaveProduct(context.Context, domain.Product) error
	ProductByID(context.Context, uuid.UUID) (domain.Product, error)
	ReduceStock(context.Context, uuid.UUID, int) error
	Products(context.Context) ([]domain.Product, error)
}

type FeeCalculator interface {
	Fee(items []domain.ShippingItem) domain.Money
}

type ShipmentNotifier interface {
	ShipmentNotice(items []domain.ShippingItem, totalWeightKg float64)
}

type ReceiptPrinter interface {
	PrintReceipt(domain.Receipt)
}

type CheckoutProcessor interface {
	AddToCart(ctx context.Context, cart *domain.Cart, productID uuid.UUID, quantity int) error
	Checkout(ctx context.Context, customer *domain.Customer, cart *domain.Cart) (domain.Receipt, error)
}
