package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/niksmo/checkout/internal/core/domain"
)

// seededCatalog keeps the IDs of the scripted demo products.
type seededCatalog struct {
	cheese      uuid.UUID
	biscuits    uuid.UUID
	tv          uuid.UUID
	mobile      uuid.UUID
	scratchCard uuid.UUID
	expiredMilk uuid.UUID
}

type cartAdd struct {
	productID uuid.UUID
	quantity  int
}

type scenario struct {
	name string
	run  func(context.Context) error
}

// Run seeds the catalog and customers, then executes the scripted
// scenario sequence. Scenario failures are reported on the output
// stream and do not stop the run.
func (a App) Run(ctx context.Context) error {
	const op = "App.Run"
	log := slog.With("op", op)

	cat, err := a.seedCatalog(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	log.Info("catalog seeded", "nProducts", 6)

	john, err := domain.NewCustomer("John Doe", a.money(2000))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	jane, err := domain.NewCustomer("Jane Smith", a.money(100))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	scenarios := []scenario{
		{"Test Case 1: Successful Checkout", func(ctx context.Context) error {
			return a.runCheckout(ctx, &john,
				cartAdd{cat.cheese, 2},
				cartAdd{cat.biscuits, 1},
				cartAdd{cat.scratchCard, 1},
			)
		}},
		{"Test Case 2: Mixed Products with Shipping", func(ctx context.Context) error {
			return a.runCheckout(ctx, &john,
				cartAdd{cat.tv, 1},
				cartAdd{cat.mobile, 2},
				cartAdd{cat.scratchCard, 3},
			)
		}},
		{"Test Case 3: Empty Cart", func(ctx context.Context) error {
			return a.runCheckout(ctx, &john)
		}},
		{"Test Case 4: Insufficient Balance", func(ctx context.Context) error {
			return a.runCheckout(ctx, &jane, cartAdd{cat.tv, 2})
		}},
		{"Test Case 5: Out of Stock", func(ctx context.Context) error {
			return a.runCheckout(ctx, &john, cartAdd{cat.cheese, 20})
		}},
		{"Test Case 6: Expired Product", func(ctx context.Context) error {
			return a.runCheckout(ctx, &john, cartAdd{cat.expiredMilk, 1})
		}},
		{"Test Case 7: Digital Products Only (No Shipping)", func(ctx context.Context) error {
			return a.runCheckout(ctx, &john, cartAdd{cat.scratchCard, 5})
		}},
	}

	for i, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		fmt.Fprintf(a.out, "=== %s ===\n", sc.name)
		if err := sc.run(ctx); err != nil {
			a.reportError(err)
		}
	}

	if err := a.printStockSummary(ctx, cat); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a App) seedCatalog(ctx context.Context) (seededCatalog, error) {
	const op = "App.seedCatalog"
	now := time.Now()

	cheese, err := domain.NewPerishable(
		"Cheese", a.money(100), 10, now.AddDate(0, 0, 7), 0.2)
	if err != nil {
		return seededCatalog{}, fmt.Errorf("%s: %w", op, err)
	}
	biscuits, err := domain.NewPerishable(
		"Biscuits", a.money(150), 5, now.AddDate(0, 0, 30), 0.7)
	if err != nil {
		return seededCatalog{}, fmt.Errorf("%s: %w", op, err)
	}
	tv, err := domain.NewShippable("TV", a.money(500), 3, 15.0)
	if err != nil {
		return seededCatalog{}, fmt.Errorf("%s: %w", op, err)
	}
	mobile, err := domain.NewShippable("Mobile", a.money(800), 5, 0.3)
	if err != nil {
		return seededCatalog{}, fmt.Errorf("%s: %w", op, err)
	}
	scratchCard, err := domain.NewDigital("Mobile Scratch Card", a.money(25), 100)
	if err != nil {
		return seededCatalog{}, fmt.Errorf("%s: %w", op, err)
	}
	expiredMilk, err := domain.NewPerishable(
		"Expired Milk", a.money(50), 2, now.AddDate(0, 0, -1), 1.0)
	if err != nil {
		return seededCatalog{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, p := range []domain.Product{
		cheese, biscuits, tv, mobile, scratchCard, expiredMilk,
	} {
		if err := a.store.SaveProduct(ctx, p); err != nil {
			return seededCatalog{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	return seededCatalog{
		cheese:      cheese.ProductID,
		biscuits:    biscuits.ProductID,
		tv:          tv.ProductID,
		mobile:      mobile.ProductID,
		scratchCard: scratchCard.ProductID,
		expiredMilk: expiredMilk.ProductID,
	}, nil
}

func (a App) runCheckout(
	ctx context.Context, customer *domain.Customer, adds ...cartAdd,
) error {
	cart := domain.NewCart()
	for _, add := range adds {
		err := a.checkout.AddToCart(ctx, cart, add.productID, add.quantity)
		if err != nil {
			return err
		}
	}
	_, err := a.checkout.Checkout(ctx, customer, cart)
	return err
}

// reportError prints the business-rule reason the way the scripted
// output documents it; unexpected errors are printed verbatim.
func (a App) reportError(err error) {
	var invalidOp domain.InvalidOperationError
	if errors.As(err, &invalidOp) {
		fmt.Fprintf(a.out, "Error: %s\n", invalidOp.Reason)
		return
	}
	fmt.Fprintf(a.out, "Error: %v\n", err)
}

func (a App) printStockSummary(ctx context.Context, cat seededCatalog) error {
	const op = "App.printStockSummary"

	fmt.Fprintln(a.out, "\n=== Final Stock Check ===")

	rows := []struct {
		label string
		id    uuid.UUID
	}{
		{"Cheese", cat.cheese},
		{"Biscuits", cat.biscuits},
		{"TV", cat.tv},
		{"Mobile", cat.mobile},
		{"Scratch Card", cat.scratchCard},
	}
	for _, row := range rows {
		p, err := a.store.ProductByID(ctx, row.id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		fmt.Fprintf(a.out, "%s remaining: %d\n", row.label, p.AvailableStock)
	}
	return nil
}
