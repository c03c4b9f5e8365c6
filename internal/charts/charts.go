// Package charts renders spending summaries as PNG images.
package charts

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/srivalli27/dhanai/internal/model"
)

// ErrNoSpendingData is returned when there are no categorized debits to plot.
var ErrNoSpendingData = fmt.Errorf("no categorized spending data")

// SpendingByCategory sums debit amounts per category. Uncategorized debits
// and credits are excluded.
func SpendingByCategory(transactions []model.Transaction) map[string]float64 {
	totals := make(map[string]float64)
	for i := range transactions {
		tx := &transactions[i]
		if tx.Direction != model.DirectionDebit || tx.Category == "" {
			continue
		}
		totals[tx.Category] += tx.Amount
	}
	return totals
}

// RenderSpendingChart renders debit totals per category as a PNG. Small
// category counts render as a pie, larger ones as a bar chart where the
// slices would become unreadable.
func RenderSpendingChart(transactions []model.Transaction) ([]byte, error) {
	totals := SpendingByCategory(transactions)
	if len(totals) == 0 {
		return nil, ErrNoSpendingData
	}

	values := make([]chart.Value, 0, len(totals))
	for category, amount := range totals {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (₹%.0f)", category, amount),
			Value: amount,
		})
	}
	sort.Slice(values, func(i, j int) bool { return values[i].Value > values[j].Value })

	var buf bytes.Buffer
	if len(values) <= 6 {
		pie := chart.PieChart{
			Title:  "Spending by Category",
			Width:  800,
			Height: 800,
			Values: values,
		}
		if err := pie.Render(chart.PNG, &buf); err != nil {
			return nil, fmt.Errorf("failed to render pie chart: %w", err)
		}
		return buf.Bytes(), nil
	}

	bar := chart.BarChart{
		Title:    "Spending by Category",
		Width:    1200,
		Height:   600,
		BarWidth: 60,
		Bars:     values,
		YAxis: chart.YAxis{
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("₹%.0f", f)
				}
				return ""
			},
		},
	}
	if err := bar.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render bar chart: %w", err)
	}
	return buf.Bytes(), nil
}
