package pages

import (
	"github.com/ghiac/eventdesk/ui"
	"github.com/ghiac/eventdesk/ui/components"
)

// RenderLogin generates the login page
func RenderLogin(p ui.Page, username string) string {
	if p.Title == "" {
		p.Title = "Login"
	}
	html := ui.CardStart("Login", "box-arrow-in-right")
	html += components.FormStart("/login", "post", "")
	html += components.InputField("Username", "username", "text", username, true)
	html += components.InputField("Password", "password", "password", "", true)
	html += components.SubmitButton("Login", "primary")
	html += components.FormEnd()
	html += `<p class="mt-3 mb-0">Don't have an account? ` + components.Link("Sign up", "/signup") + `</p>`
	html += ui.CardEnd()
	return ui.RenderPage(p, html)
}

// RenderSignup generates the signup page
func RenderSignup(p ui.Page, username string) string {
	if p.Title == "" {
		p.Title = "Sign Up"
	}
	html := ui.CardStart("Sign Up", "person-plus")
	html += components.FormStart("/signup", "post", "")
	html += components.InputField("Username", "username", "text", username, true)
	html += components.InputField("Password", "password", "password", "", true)
	html += components.SubmitButton("Sign Up", "primary")
	html += components.FormEnd()
	html += `<p class="mt-3 mb-0">Already have an account? ` + components.Link("Login", "/login") + `</p>`
	html += ui.CardEnd()
	return ui.RenderPage(p, html)
}
