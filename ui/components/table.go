package components

import (
	"fmt"
	"html/template"
)

// TableConfig holds configuration for table rendering
type TableConfig struct {
	Striped     bool
	Hover       bool
	Small       bool
	Responsive  bool
	AlignMiddle bool
}

// DefaultTableConfig returns the default table configuration
func DefaultTableConfig() TableConfig {
	return TableConfig{
		Striped:     true,
		Hover:       true,
		Responsive:  true,
		AlignMiddle: true,
	}
}

// ColumnConfig holds configuration for a table column
type ColumnConfig struct {
	Header string
	Center bool
	NoWrap bool
}

// TableStartWithConfig generates table with custom column configurations
func TableStartWithConfig(columns []ColumnConfig, config TableConfig) string {
	classes := "table"
	if config.Striped {
		classes += " table-striped"
	}
	if config.Hover {
		classes += " table-hover"
	}
	if config.Small {
		classes += " table-sm"
	}
	if config.AlignMiddle {
		classes += " align-middle"
	}

	html := ""
	if config.Responsive {
		html += `<div class="table-responsive">`
	}

	html += fmt.Sprintf(`<table class="%s">
    <thead>
        <tr>`, classes)

	for _, col := range columns {
		thClass := ""
		if col.Center {
			thClass = ` class="text-center text-nowrap"`
		} else if col.NoWrap {
			thClass = ` class="text-nowrap"`
		}
		html += fmt.Sprintf(`<th%s>%s</th>`, thClass, template.HTMLEscapeString(col.Header))
	}

	html += `
        </tr>
    </thead>
    <tbody>`

	return html
}

// TableEnd generates the closing tags for a table
func TableEnd(responsive bool) string {
	html := `    </tbody>
</table>`
	if responsive {
		html += `</div>`
	}
	return html
}

// EmptyTableMessage generates a message for empty tables
func EmptyTableMessage(message string) string {
	return fmt.Sprintf(`<div class="alert alert-info text-center">
    <i class="bi bi-info-circle me-2"></i>%s
</div>`, template.HTMLEscapeString(message))
}
