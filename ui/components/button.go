package components

import (
	"fmt"
	"html/template"
)

// Button generates a Bootstrap link button
func Button(text, url, variant string) string {
	return fmt.Sprintf(`<a href="%s" class="btn btn-%s">%s</a>`,
		url, variant, template.HTMLEscapeString(text))
}

// ButtonOutlineSmall generates a small outline link button
func ButtonOutlineSmall(text, url, variant string) string {
	return fmt.Sprintf(`<a href="%s" class="btn btn-sm btn-outline-%s">%s</a>`,
		url, variant, template.HTMLEscapeString(text))
}

// EditButton generates an "Edit" button
func EditButton(url string) string {
	return ButtonOutlineSmall("Edit", url, "primary")
}

// SubmitButton generates a form submit button
func SubmitButton(text, variant string) string {
	return fmt.Sprintf(`<button type="submit" class="btn btn-%s">%s</button>`,
		variant, template.HTMLEscapeString(text))
}

// Link generates a simple link
func Link(text, url string) string {
	return fmt.Sprintf(`<a href="%s" class="text-decoration-none">%s</a>`,
		url, template.HTMLEscapeString(text))
}
