package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"mm-server/models"
)

// RenderStatsChart renders the dashboard counters as a bar chart HTML page.
func RenderStatsChart(w io.Writer, stats models.DashboardStats) error {
	// Create a new bar chart for the counters.
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Dashboard Stats",
			Width:     "800px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Account Activity",
		}),
	)

	bar.SetXAxis([]string{
		"Points",
		"Profiles Viewed",
		"Views Limit",
		"Selected",
		"Connect Requests",
	})
	bar.AddSeries("Counters", []opts.BarData{
		{Value: stats.UserPoints},
		{Value: stats.ViewedProfiles},
		{Value: stats.ViewsLimit},
		{Value: stats.SelectedCount},
		{Value: stats.ConnectRequests},
	})

	return bar.Render(w)
}
