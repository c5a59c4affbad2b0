package report

import (
	"fmt"
	"io"

	"github.com/niksmo/checkout/internal/core/domain"
	"github.com/niksmo/checkout/internal/core/port"
)

var _ port.ShipmentNotifier = Printer{}
var _ port.ReceiptPrinter = Printer{}

// Printer renders shipment notices and checkout receipts onto the
// observation stream. The exact spacing and rounding is part of the
// documented output contract; do not reformat.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) Printer {
	return Printer{w}
}

func (p Printer) ShipmentNotice(
	items []domain.ShippingItem, totalWeightKg float64,
) {
	fmt.Fprintln(p.w, "** Shipment notice **")
	for _, item := range items {
		fmt.Fprintf(p.w, "1x %s        %.0fg\n", item.Name, item.WeightKg*1000)
	}
	fmt.Fprintf(p.w, "Total package weight %.1fkg\n", totalWeightKg)
}

func (p Printer) PrintReceipt(r domain.Receipt) {
	fmt.Fprintln(p.w, "** Checkout receipt **")
	for _, line := range r.Lines {
		fmt.Fprintf(p.w, "%dx %s        %s\n",
			line.Quantity, line.Name, line.LineTotal.StringFixed(0))
	}
	fmt.Fprintln(p.w, "- ---------------------")
	fmt.Fprintf(p.w, "Subtotal         %s\n", r.Subtotal.StringFixed(0))
	fmt.Fprintf(p.w, "Shipping         %s\n", r.ShippingFee.StringFixed(0))
	fmt.Fprintf(p.w, "Amount           %s\n", r.Total.StringFixed(0))
	fmt.Fprintf(p.w, "Customer balance after payment: %s\n",
		r.BalanceAfter.StringFixed(0))
}
