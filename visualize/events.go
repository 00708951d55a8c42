package visualize

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ghiac/eventdesk/model"
)

// echartsHost replaces the go-echarts asset host, which is not reliably reachable
const echartsHost = "https://cdn.jsdelivr.net/npm/echarts@5/dist/"

const noLocation = "(no location)"

// EventCharts builds charts summarizing a set of events
type EventCharts struct {
	events []*model.Event
}

// NewEventCharts creates a chart builder for events
func NewEventCharts(events []*model.Event) *EventCharts {
	return &EventCharts{events: events}
}

// CountsByDate returns the distinct dates in ascending order and the number of
// events on each.
func (ec *EventCharts) CountsByDate() ([]string, []int) {
	counts := make(map[string]int)
	for _, e := range ec.events {
		counts[e.Date]++
	}
	dates := make([]string, 0, len(counts))
	for d := range counts {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	values := make([]int, len(dates))
	for i, d := range dates {
		values[i] = counts[d]
	}
	return dates, values
}

// CountsByLocation returns event counts keyed by location
func (ec *EventCharts) CountsByLocation() map[string]int {
	counts := make(map[string]int)
	for _, e := range ec.events {
		loc := e.Location
		if loc == "" {
			loc = noLocation
		}
		counts[loc]++
	}
	return counts
}

// PerDateBar creates a bar chart of events per date
func (ec *EventCharts) PerDateBar(title string) *charts.Bar {
	dates, values := ec.CountsByDate()

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d events on %d days", len(ec.events), len(dates)),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:      "900px",
			Height:     "400px",
			AssetsHost: echartsHost,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)

	data := make([]opts.BarData, 0, len(values))
	for _, v := range values {
		data = append(data, opts.BarData{Value: v})
	}
	bar.SetXAxis(dates).AddSeries("Events", data)
	return bar
}

// LocationPie creates a pie chart of events per location
func (ec *EventCharts) LocationPie(title string) *charts.Pie {
	counts := ec.CountsByLocation()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:      "900px",
			Height:     "400px",
			AssetsHost: echartsHost,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	)

	data := make([]opts.PieData, 0, len(names))
	for _, name := range names {
		data = append(data, opts.PieData{Name: name, Value: counts[name]})
	}
	pie.AddSeries("Locations", data,
		charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(true),
		}),
	)
	return pie
}

// Render writes a standalone HTML page with both charts
func (ec *EventCharts) Render(w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = "Event Stats"
	page.AssetsHost = echartsHost
	page.AddCharts(
		ec.PerDateBar("Events per day"),
		ec.LocationPie("Events by location"),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}
