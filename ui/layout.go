package ui

import (
	"fmt"
	"html/template"

	"github.com/ghiac/eventdesk/session"
)

// Page holds the chrome shared by every rendered page
type Page struct {
	Title       string
	CurrentPath string
	Username    string // empty when anonymous
	Flashes     []session.Flash
}

// RenderPage renders a complete HTML page with the navbar, flashes and content
func RenderPage(p Page, content string) string {
	return Header(p.Title) +
		Navbar(p.CurrentPath, p.Username) +
		ContainerStart() +
		FlashAlerts(p.Flashes) +
		content +
		ContainerEnd() +
		Footer()
}

// Header generates the HTML header with Bootstrap CDN
func Header(title string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/css/bootstrap.min.css" rel="stylesheet" integrity="sha384-T3c6CoIi6uLrA9TneNEoa7RxnatzjcDSCmG1MXxSR1GAsXEV/Dwwykc2MPK8M2HN" crossorigin="anonymous">
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.1/font/bootstrap-icons.css">
    <style>%s</style>
</head>
<body>`, template.HTMLEscapeString(title), GetStyles())
}

// Footer generates the HTML footer with scripts
func Footer() string {
	return fmt.Sprintf(`
    <script src="%s" integrity="%s" crossorigin="anonymous"></script>
    %s
</body>
</html>`, GetBootstrapJS(), GetBootstrapJSIntegrity(), GetScriptTags())
}

// FlashAlerts renders pending flash messages as dismissible alerts
func FlashAlerts(flashes []session.Flash) string {
	html := ""
	for _, f := range flashes {
		variant := f.Category
		if variant == "" {
			variant = session.Info
		}
		html += fmt.Sprintf(`<div class="alert alert-%s alert-dismissible fade show" role="alert">
    %s
    <button type="button" class="btn-close" data-bs-dismiss="alert" aria-label="Close"></button>
</div>`, template.HTMLEscapeString(variant), template.HTMLEscapeString(f.Message))
	}
	return html
}

// ContainerStart returns the opening tags for the main container
func ContainerStart() string {
	return `<div class="container">
    <div class="main-container">`
}

// ContainerEnd returns the closing tags for the main container
func ContainerEnd() string {
	return `    </div>
</div>`
}

// CardStart returns the opening tags for a card with header
func CardStart(title, icon string) string {
	return fmt.Sprintf(`<div class="card mb-4">
    <div class="card-header">
        <h4 class="mb-0"><i class="bi bi-%s me-2"></i>%s</h4>
    </div>
    <div class="card-body">`, icon, template.HTMLEscapeString(title))
}

// CardStartWithAction returns opening tags for a card with action button
func CardStartWithAction(title, icon string, count int, actionURL, actionText string) string {
	return fmt.Sprintf(`<div class="card mb-4">
    <div class="card-header d-flex justify-content-between align-items-center">
        <h5 class="mb-0"><i class="bi bi-%s me-2"></i>%s (%d)</h5>
        <a href="%s" class="btn btn-sm btn-light">%s</a>
    </div>
    <div class="card-body">`, icon, template.HTMLEscapeString(title), count, actionURL, template.HTMLEscapeString(actionText))
}

// CardEnd returns the closing tags for a card
func CardEnd() string {
	return `    </div>
</div>`
}
