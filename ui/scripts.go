package ui

import (
	"fmt"

	"github.com/ghiac/eventdesk/guard"
)

// GetScriptTags returns the page scripts loaded after Bootstrap.
// The delete confirmation runs on every page.
func GetScriptTags() string {
	return fmt.Sprintf(`<script src="%s"></script>`, guard.ScriptPath)
}

// GetBootstrapJS returns the Bootstrap JavaScript CDN URL
func GetBootstrapJS() string {
	return `https://cdn.jsdelivr.net/npm/bootstrap@5.3.2/dist/js/bootstrap.bundle.min.js`
}

// GetBootstrapJSIntegrity returns the integrity hash for Bootstrap JS
func GetBootstrapJSIntegrity() string {
	return `sha384-C6RzsynM9kWDrMNeT87bh95OGNyZPhcTNXj1NW7RuBCsyN/o0jlpcV8Qyq46cDfL`
}
