package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/checkout/internal/core/domain"
	"github.com/niksmo/checkout/internal/core/port"
	"golang.org/x/text/currency"
)

var _ port.CheckoutProcessor = CheckoutService{}

// CheckoutService orchestrates cart validation, pricing, settlement
// and receipt emission over the product store. The whole procedure is
// validate-then-commit: nothing is mutated until every check passed.
type CheckoutService struct {
	store    port.ProductStore
	shipping port.FeeCalculator
	receipts port.ReceiptPrinter
	now      func() time.Time
}

func NewCheckoutService(
	store port.ProductStore,
	shipping port.FeeCalculator,
	receipts port.ReceiptPrinter,
	now func() time.Time,
) CheckoutService {
	if now == nil {
		now = time.Now
	}
	return CheckoutService{
		store:    store,
		shipping: shipping,
		receipts: receipts,
		now:      now,
	}
}

// AddToCart resolves the product from the store and adds quantity
// units to the cart, validating against current stock.
func (s CheckoutService) AddToCart(
	ctx context.Context, cart *domain.Cart, productID uuid.UUID, quantity int,
) error {
	const op = "CheckoutService.AddToCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.store.ProductByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := cart.Add(p, quantity); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Checkout runs the ordered checkout phases: empty check, per-item
// stock and expiration validation, pricing, shipping, balance check,
// settlement, receipt emission, cart clearing. Any failure before
// settlement leaves customer balance, stock and cart untouched.
func (s CheckoutService) Checkout(
	ctx context.Context, customer *domain.Customer, cart *domain.Cart,
) (domain.Receipt, error) {
	const op = "CheckoutService.Checkout"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.Receipt{}, fmt.Errorf("%s: %w", op, err)
	}

	if cart.IsEmpty() {
		return domain.Receipt{}, fmt.Errorf(
			"%s: %w", op, domain.InvalidOperationf("Cart is empty"),
		)
	}

	items := cart.Items()

	products, err := s.validateItems(ctx, items)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%s: %w", op, err)
	}

	subtotal, lines, err := s.priceItems(items, products, customer.Balance.Currency)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%s: %w", op, err)
	}

	shippingFee := s.shipping.Fee(expandShippable(items, products))

	total, err := subtotal.Add(shippingFee)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%s: %w", op, err)
	}

	res, err := customer.Balance.Cmp(total)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("%s: %w", op, err)
	}
	if res < 0 {
		return domain.Receipt{}, fmt.Errorf(
			"%s: %w", op, domain.InvalidOperationf("Customer's balance is insufficient"),
		)
	}

	if err := s.settle(ctx, customer, items, total); err != nil {
		return domain.Receipt{}, fmt.Errorf("%s: %w", op, err)
	}

	receipt := domain.Receipt{
		Lines:        lines,
		Subtotal:     subtotal,
		ShippingFee:  shippingFee,
		Total:        total,
		BalanceAfter: customer.Balance,
	}
	s.receipts.PrintReceipt(receipt)

	cart.Clear()

	log.Info("checkout settled",
		"customer", customer.Name,
		"nLines", len(lines),
		"total", total.String(),
	)

	return receipt, nil
}

// validateItems resolves every cart line against the store and checks
// stock and expiration in cart order, failing on the first violation.
func (s CheckoutService) validateItems(
	ctx context.Context, items []domain.CartItem,
) ([]domain.Product, error) {
	now := s.now()

	products := make([]domain.Product, len(items))
	for i, item := range items {
		p, err := s.store.ProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if item.Quantity > p.AvailableStock {
			return nil, domain.InvalidOperationf("Product %s is out of stock", p.Name)
		}
		if p.IsExpired(now) {
			return nil, domain.InvalidOperationf("Product %s has expired", p.Name)
		}
		products[i] = p
	}
	return products, nil
}

func (s CheckoutService) priceItems(
	items []domain.CartItem, products []domain.Product, cur currency.Unit,
) (domain.Money, []domain.ReceiptLine, error) {
	subtotal := domain.ZeroMoney(cur)
	lines := make([]domain.ReceiptLine, len(items))

	for i, item := range items {
		lineTotal := products[i].Price.MulInt(item.Quantity)

		var err error
		subtotal, err = subtotal.Add(lineTotal)
		if err != nil {
			return domain.Money{}, nil, err
		}

		lines[i] = domain.ReceiptLine{
			Quantity:  item.Quantity,
			Name:      products[i].Name,
			LineTotal: lineTotal,
		}
	}
	return subtotal, lines, nil
}

// expandShippable materializes one ShippingItem per physical unit:
// a line of quantity N yields N entries.
func expandShippable(
	items []domain.CartItem, products []domain.Product,
) []domain.ShippingItem {
	var shippable []domain.ShippingItem
	for i, item := range items {
		if !products[i].RequiresShipping() {
			continue
		}
		for range item.Quantity {
			shippable = append(shippable, domain.ShippingItem{
				Name:     products[i].Name,
				WeightKg: products[i].ShippingWeight(),
			})
		}
	}
	return shippable
}

// settle debits the customer and decrements stock. Only reached after
// all validation passed, so failures here indicate a broken invariant.
func (s CheckoutService) settle(
	ctx context.Context,
	customer *domain.Customer,
	items []domain.CartItem,
	total domain.Money,
) error {
	if err := customer.Debit(total); err != nil {
		return err
	}
	for _, item := range items {
		if err := s.store.ReduceStock(ctx, item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	return nil
}
