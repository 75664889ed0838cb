package tui

import (
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/ambrogio/internal/store"
)

// RenderStats draws focus sessions per day as a bar chart, completed and
// cancelled sessions stacked per bar.
func RenderStats(stats []store.DayStats) string {
	if len(stats) == 0 {
		return mutedStyle.Render("No focus sessions recorded yet.")
	}

	chart := barchart.New(60, 12)

	var bars []barchart.BarData
	for _, day := range stats {
		label := day.Date
		if d, err := time.Parse("2006-01-02", day.Date); err == nil {
			label = d.Format("Jan 02")
		}

		values := []barchart.BarValue{{
			Name:  "completed",
			Value: float64(day.Completed),
			Style: completedBarStyle,
		}}
		if day.Cancelled > 0 {
			values = append(values, barchart.BarValue{
				Name:  "cancelled",
				Value: float64(day.Cancelled),
				Style: cancelledBarStyle,
			})
		}

		bars = append(bars, barchart.BarData{
			Label:  label,
			Values: values,
		})
	}

	chart.PushAll(bars)
	chart.Draw()

	legend := lipgloss.JoinHorizontal(lipgloss.Top,
		completedBarStyle.Render("■ completed"), "  ",
		cancelledBarStyle.Render("■ cancelled"),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Focus sessions per day"),
		"",
		chart.View(),
		"",
		legend,
	)
}
