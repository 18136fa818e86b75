package console

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"counter/internal/core/application/usecases/queries"
)

const reportWidth = 50

// groupDigits formats an integer with thousands separators ("1234567" as
// "1,234,567"). Standard English grouping, no other special casing.
func groupDigits(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// RenderReport renders one or many orders as a titled, human-readable report.
//
// In single mode the supplied order is treated as the whole list and the
// per-order "Order #n" line is omitted; otherwise orders are numbered in
// collection order. Each order prints its id, customer, a tab-aligned item
// table with per-line subtotals, and the derived total with thousands
// separators. Pure: produces text, never mutates its input.
func RenderReport(orders []queries.OrderResponse, title string, single bool) string {
	var b strings.Builder

	banner := strings.Repeat("=", 20)
	fmt.Fprintf(&b, "%s %s %s\n", banner, title, banner)

	for i, o := range orders {
		if !single {
			fmt.Fprintf(&b, "Order #%d\n", i+1)
		}
		fmt.Fprintf(&b, "Order ID: %s\n", o.ID)
		fmt.Fprintf(&b, "Customer: %s\n", o.Customer)
		b.WriteString(strings.Repeat("-", reportWidth) + "\n")
		b.WriteString("Item\tPrice\tQty\tSubtotal\n")
		b.WriteString(strings.Repeat("-", reportWidth) + "\n")
		for _, item := range o.Items {
			fmt.Fprintf(&b, "%s\t%d\t%d\t%d\n", item.Name, item.Price, item.Quantity, item.Subtotal)
		}
		b.WriteString(strings.Repeat("-", reportWidth) + "\n")
		fmt.Fprintf(&b, "Total: %s\n", groupDigits(o.Total))
		b.WriteString(strings.Repeat("=", reportWidth) + "\n")
	}

	return b.String()
}

// RenderPendingList renders the numbered selection list shown before
// fulfillment: one line per pending order with its id and customer.
func RenderPendingList(orders []queries.OrderResponse) string {
	var b strings.Builder

	banner := strings.Repeat("=", 8)
	fmt.Fprintf(&b, "%s Pending Orders %s\n", banner, banner)
	for i, o := range orders {
		fmt.Fprintf(&b, "%d. Order ID: %s - Customer: %s\n", i+1, o.ID, o.Customer)
	}
	b.WriteString(strings.Repeat("=", 32) + "\n")

	return b.String()
}
