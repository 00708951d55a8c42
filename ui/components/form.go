package components

import (
	"fmt"
	"html/template"

	"github.com/ghiac/eventdesk/guard"
)

// FormStart opens a form. class may be empty.
func FormStart(action, method, class string) string {
	classAttr := ""
	if class != "" {
		classAttr = fmt.Sprintf(` class="%s"`, template.HTMLEscapeString(class))
	}
	return fmt.Sprintf(`<form%s method="%s" action="%s">`,
		classAttr, template.HTMLEscapeString(method), template.HTMLEscapeString(action))
}

// FormEnd closes a form
func FormEnd() string {
	return `</form>`
}

// InputField is a labelled input. inputType is "text", "password", "date", "time"...
func InputField(label, name, inputType, value string, required bool) string {
	req := ""
	if required {
		req = " required"
	}
	return fmt.Sprintf(`<div class="mb-3">
    <label for="%[1]s" class="form-label">%[2]s</label>
    <input type="%[3]s" class="form-control" id="%[1]s" name="%[1]s" value="%[4]s"%[5]s>
</div>`, template.HTMLEscapeString(name), template.HTMLEscapeString(label),
		template.HTMLEscapeString(inputType), template.HTMLEscapeString(value), req)
}

// TextAreaField is a labelled textarea
func TextAreaField(label, name, value string, rows int) string {
	return fmt.Sprintf(`<div class="mb-3">
    <label for="%[1]s" class="form-label">%[2]s</label>
    <textarea class="form-control" id="%[1]s" name="%[1]s" rows="%[3]d">%[4]s</textarea>
</div>`, template.HTMLEscapeString(name), template.HTMLEscapeString(label), rows, template.HTMLEscapeString(value))
}

// DeleteForm renders a single-button POST form carrying the delete marker, so
// its submission is confirmed before it is sent.
func DeleteForm(action string) string {
	return FormStart(action, "post", "d-inline "+guard.DefaultMarker) +
		`<button type="submit" class="btn btn-sm btn-outline-danger">Delete</button>` +
		FormEnd()
}
