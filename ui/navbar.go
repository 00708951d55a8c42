package ui

import (
	"fmt"
	"html/template"
)

// NavItem represents a navigation item
type NavItem struct {
	URL  string
	Icon string
	Text string
}

// NavItems returns the navigation for a logged-in user or a visitor
func NavItems(loggedIn bool) []NavItem {
	if !loggedIn {
		return []NavItem{
			{"/login", "box-arrow-in-right", "Login"},
			{"/signup", "person-plus", "Sign Up"},
		}
	}
	return []NavItem{
		{"/", "calendar-event", "Events"},
		{"/add", "plus-circle", "Add Event"},
		{"/stats", "bar-chart", "Stats"},
		{"/logout", "box-arrow-right", "Logout"},
	}
}

// Navbar generates the Bootstrap navigation bar
func Navbar(currentPage, username string) string {
	return NavbarWithItems(currentPage, username, NavItems(username != ""))
}

// NavbarWithItems generates the navigation bar with custom items
func NavbarWithItems(currentPage, username string, items []NavItem) string {
	html := `<nav class="navbar navbar-expand-lg navbar-dark">
    <div class="container-fluid">
        <a class="navbar-brand fw-bold" href="/">
            <i class="bi bi-calendar3 me-2"></i>Event Desk
        </a>
        <button class="navbar-toggler" type="button" data-bs-toggle="collapse" data-bs-target="#navbarNav" aria-controls="navbarNav" aria-expanded="false" aria-label="Toggle navigation">
            <span class="navbar-toggler-icon"></span>
        </button>
        <div class="collapse navbar-collapse" id="navbarNav">
            <ul class="navbar-nav ms-auto">`

	if username != "" {
		html += fmt.Sprintf(`
                <li class="nav-item"><span class="navbar-text me-3"><i class="bi bi-person-circle me-1"></i>%s</span></li>`,
			template.HTMLEscapeString(username))
	}

	for _, item := range items {
		active := ""
		if item.URL == currentPage {
			active = "active fw-bold"
		}
		html += fmt.Sprintf(`
                <li class="nav-item">
                    <a class="nav-link %s" href="%s"><i class="bi bi-%s me-1"></i>%s</a>
                </li>`, active, item.URL, item.Icon, item.Text)
	}

	html += `
            </ul>
        </div>
    </div>
</nav>`

	return html
}
