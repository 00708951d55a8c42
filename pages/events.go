package pages

import (
	"fmt"
	"html/template"

	"github.com/ghiac/eventdesk/model"
	"github.com/ghiac/eventdesk/ui"
	"github.com/ghiac/eventdesk/ui/components"
)

// RenderIndex generates the event list page. Events are shown in the order given.
func RenderIndex(p ui.Page, events []*model.Event) string {
	if p.Title == "" {
		p.Title = "Events"
	}

	html := ui.CardStartWithAction("Upcoming Events", "calendar-event", len(events), "/add", "Add Event")

	if len(events) == 0 {
		html += components.EmptyTableMessage("No events yet. Add one to get started.")
	} else {
		columns := []components.ColumnConfig{
			{Header: "Date", NoWrap: true},
			{Header: "Time", NoWrap: true},
			{Header: "Title"},
			{Header: "Description"},
			{Header: "Location"},
			{Header: "Actions", Center: true, NoWrap: true},
		}
		html += components.TableStartWithConfig(columns, components.DefaultTableConfig())

		for _, e := range events {
			location := "-"
			if e.Location != "" {
				location = template.HTMLEscapeString(e.Location)
			}
			// delete forms stay inside the cell so the HTML parser keeps them attached to the row
			html += fmt.Sprintf(`<tr>
                <td class="text-nowrap">%s</td>
                <td class="text-nowrap">%s</td>
                <td><strong>%s</strong></td>
                <td class="event-description">%s</td>
                <td>%s</td>
                <td class="text-center text-nowrap">%s %s</td>
            </tr>`,
				template.HTMLEscapeString(e.Date),
				template.HTMLEscapeString(e.Time),
				template.HTMLEscapeString(e.Title),
				template.HTMLEscapeString(e.Description),
				location,
				components.EditButton(EditPath(e.ID)),
				components.DeleteForm(DeletePath(e.ID)),
			)
		}

		html += components.TableEnd(true)
	}

	html += ui.CardEnd()
	return ui.RenderPage(p, html)
}

// EventFormValues holds what the add and edit forms display
type EventFormValues struct {
	Title       string
	Description string
	Date        string
	Time        string
	Location    string
}

// FormValuesFromEvent fills form values from a stored event
func FormValuesFromEvent(e *model.Event) EventFormValues {
	return EventFormValues{
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
	}
}

// RenderEventForm generates the add or edit page. action is the POST target.
func RenderEventForm(p ui.Page, heading, action, submitText string, v EventFormValues) string {
	if p.Title == "" {
		p.Title = heading
	}

	html := ui.CardStart(heading, "pencil-square")
	html += components.FormStart(action, "post", "")
	html += components.InputField("Title", "title", "text", v.Title, true)
	html += components.TextAreaField("Description", "description", v.Description, 3)
	html += components.InputField("Date", "date", "date", v.Date, true)
	html += components.InputField("Time", "time", "time", v.Time, true)
	html += components.InputField("Location", "location", "text", v.Location, false)
	html += components.SubmitButton(submitText, "primary")
	html += " " + components.Button("Cancel", "/", "secondary")
	html += components.FormEnd()
	html += ui.CardEnd()

	return ui.RenderPage(p, html)
}

// EditPath returns the edit URL for an event
func EditPath(id int64) string {
	return fmt.Sprintf("/edit/%d", id)
}

// DeletePath returns the delete URL for an event
func DeletePath(id int64) string {
	return fmt.Sprintf("/delete/%d", id)
}
