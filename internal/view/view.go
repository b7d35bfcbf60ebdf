// Package view renders storefront state for the terminal.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocpay1889/baba-shoping/internal/domain"
)

var (
	Brand   = lipgloss.Color("#d6336c")
	Muted   = lipgloss.Color("#868e96")
	Success = lipgloss.Color("#2f9e44")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(Brand)
	mutedStyle = lipgloss.NewStyle().Foreground(Muted)
	doneStyle  = lipgloss.NewStyle().Foreground(Success)
	cardStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Brand).
			Padding(0, 1)
)

const barWidth = 20

// ProgressBar fixed-width bar for 0..100
func ProgressBar(progress int) string {
	progress = min(max(progress, 0), 100)
	filled := progress * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled) + fmt.Sprintf(" %d%%", progress)
}

// FormatPrice rupees with Indian digit grouping: 125000 -> ₹1,25,000
func FormatPrice(p int64) string {
	s := fmt.Sprint(p)
	if p < 0 {
		return "-" + FormatPrice(-p)
	}
	if len(s) <= 3 {
		return "₹" + s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return "₹" + strings.Join(parts, ",") + "," + tail
}

// OrderStatus renders the order-status page; tracking details only when ShowTracking.
func OrderStatus(v *domain.OrderStatusView) string {
	o := v.Order
	lines := []string{
		titleStyle.Render("Order Placed Successfully!"),
		fmt.Sprintf("Order ID: %s", o.OrderID),
	}
	if v.Payment != nil {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("Payment ID: %s", v.Payment.OrderID)))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("%s  %s", o.Combo.Bundle.Name, FormatPrice(o.Combo.Bundle.Price)),
		mutedStyle.Render(fmt.Sprintf("Dress %s · Shoes %s", o.Combo.Size.Dress, o.Combo.Size.Shoes)),
		mutedStyle.Render(fmt.Sprintf("Ship to %s, %s, %s, %s - %s", o.Name, o.Address, o.City, o.State, o.Pincode)),
	)

	if v.ShowTracking {
		t := v.Tracking
		lines = append(lines,
			"",
			titleStyle.Render(t.Title),
			t.Description,
			ProgressBar(t.Progress),
			mutedStyle.Render("Estimated delivery: "+t.EstimatedDelivery),
			"",
		)
		for _, s := range v.Steps {
			mark := mutedStyle.Render("○")
			name := s.Name
			if s.Completed {
				mark = doneStyle.Render("●")
				name = doneStyle.Render(name)
			}
			lines = append(lines, fmt.Sprintf("%s %d. %s", mark, s.Number, name))
		}
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// Empty the no-order state with its call to action
func Empty() string {
	return cardStyle.Render(strings.Join([]string{
		titleStyle.Render("No Order Found"),
		"You haven't placed any orders yet.",
		mutedStyle.Render("Start Shopping: /"),
	}, "\n"))
}

func Catalog(list []domain.ProductBundle) string {
	var b strings.Builder
	for i, p := range list {
		if i > 0 {
			b.WriteString("\n")
		}
		header := fmt.Sprintf("%d. %s  %s", p.ID, titleStyle.Render(p.Name), FormatPrice(p.Price))
		if p.Tag != "" {
			header += "  " + mutedStyle.Render("["+p.Tag+"]")
		}
		b.WriteString(header + "\n")
		for _, item := range p.Items {
			b.WriteString("   - " + item + "\n")
		}
	}
	return b.String()
}
