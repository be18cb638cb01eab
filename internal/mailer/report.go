package mailer

import (
	"fmt"
	"strings"
	"time"

	"github.com/goelshashank/Kitchen-Inventory2/internal/inventory"
)

// RenderReport turns the report views into a plain-text email.
func RenderReport(r inventory.Report, now time.Time) (subject, body string) {
	subject = "Kitchen inventory report " + now.Format(time.DateOnly)

	var b strings.Builder
	fmt.Fprintf(&b, "Kitchen inventory report for %s\n", now.Format(time.DateOnly))

	fmt.Fprintf(&b, "\nLow stock (%d)\n", len(r.LowStock))
	for _, ing := range r.LowStock {
		minimum := 0.0
		if ing.MinimumStock != nil {
			minimum = *ing.MinimumStock
		}
		fmt.Fprintf(&b, "  - %s: %s left, minimum %s\n", ing.Name,
			inventory.FormatQuantity(ing.Quantity, ing.Unit),
			inventory.FormatQuantity(minimum, ing.Unit))
	}
	if len(r.LowStock) == 0 {
		b.WriteString("  none\n")
	}

	fmt.Fprintf(&b, "\nExpiring within %d days (%d)\n", inventory.ExpiringReportDays, len(r.Expiring))
	for _, e := range r.Expiring {
		fmt.Fprintf(&b, "  - %s: %s\n", e.Name, describeDaysLeft(e.DaysLeft))
	}
	if len(r.Expiring) == 0 {
		b.WriteString("  none\n")
	}

	b.WriteString("\nMost used ingredients\n")
	for i, u := range r.MostUsed {
		fmt.Fprintf(&b, "  %d. %s - %s\n", i+1, u.Name, plural(u.RecipeCount, "recipe"))
	}
	if len(r.MostUsed) == 0 {
		b.WriteString("  none\n")
	}

	return subject, b.String()
}

func describeDaysLeft(days int) string {
	switch {
	case days < 0:
		return "expired " + plural(-days, "day") + " ago"
	case days == 0:
		return "expires today"
	case days == 1:
		return "expires tomorrow"
	default:
		return "expires in " + plural(days, "day")
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
