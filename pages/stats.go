package pages

import (
	"fmt"

	"github.com/ghiac/eventdesk/ui"
	"github.com/ghiac/eventdesk/ui/components"
)

// StatsChartPath serves the standalone chart page embedded by RenderStats
const StatsChartPath = "/stats/chart"

// RenderStats generates the statistics page
func RenderStats(p ui.Page, total, days int) string {
	if p.Title == "" {
		p.Title = "Stats"
	}

	html := ui.CardStart("Statistics", "bar-chart")
	html += fmt.Sprintf(`<p>%s events across %s days</p>`,
		components.CountBadge(total, "primary"), components.CountBadge(days, "secondary"))

	if total == 0 {
		html += components.InfoAlert("No events to chart yet.")
	} else {
		html += fmt.Sprintf(`<iframe src="%s" title="Event charts" class="w-100 border-0" style="height: 860px;"></iframe>`, StatsChartPath)
	}

	html += ui.CardEnd()
	return ui.RenderPage(p, html)
}

// RenderNotFound generates a 404 page
func RenderNotFound(p ui.Page, message string) string {
	if p.Title == "" {
		p.Title = "Not Found"
	}
	html := components.DangerAlert(message)
	html += components.Button("Back to events", "/", "secondary")
	return ui.RenderPage(p, html)
}
