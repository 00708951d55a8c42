package components

import (
	"fmt"
	"html/template"
)

// Badge generates a Bootstrap badge
func Badge(text, variant string) string {
	return fmt.Sprintf(`<span class="badge bg-%s">%s</span>`, variant, template.HTMLEscapeString(text))
}

// CountBadge generates a badge showing a number
func CountBadge(count int, variant string) string {
	return Badge(fmt.Sprintf("%d", count), variant)
}
