package app

import (
	"fmt"
	"io"
	"time"

	"github.com/niksmo/checkout/config"
	"github.com/niksmo/checkout/internal/adapter/inmem"
	"github.com/niksmo/checkout/internal/adapter/report"
	"github.com/niksmo/checkout/internal/core/domain"
	"github.com/niksmo/checkout/internal/core/port"
	"github.com/niksmo/checkout/internal/core/service"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// App wires the in-memory catalog, the shipping calculator and the
// checkout service, and drives the scripted scenario run. All report
// output goes to out; logs go to the default slog handler.
type App struct {
	cfg      config.Config
	out      io.Writer
	unit     currency.Unit
	store    port.ProductStore
	checkout port.CheckoutProcessor
}

func New(cfg config.Config, out io.Writer) (App, error) {
	const op = "App.New"

	unit, err := currency.ParseISO(cfg.Currency)
	if err != nil {
		return App{}, fmt.Errorf("%s: %w", op, err)
	}

	store := inmem.NewProductStore()
	printer := report.NewPrinter(out)

	ratePerKg := domain.NewMoney(
		decimal.NewFromFloat(cfg.Shipping.RatePerKg), unit,
	)
	shipping := service.NewShippingCalculator(ratePerKg, printer)
	checkout := service.NewCheckoutService(store, shipping, printer, time.Now)

	return App{
		cfg:      cfg,
		out:      out,
		unit:     unit,
		store:    store,
		checkout: checkout,
	}, nil
}

func (a App) money(v int64) domain.Money {
	return domain.NewMoney(decimal.NewFromInt(v), a.unit)
}
