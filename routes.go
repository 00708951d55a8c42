package eventdesk

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ghiac/eventdesk/guard"
	"github.com/ghiac/eventdesk/log"
	"github.com/ghiac/eventdesk/model"
	"github.com/ghiac/eventdesk/pages"
	"github.com/ghiac/eventdesk/session"
	"github.com/ghiac/eventdesk/ui"
	"github.com/ghiac/eventdesk/visualize"
)

const loginPath = "/login"

// credentialsForm is posted by the login and signup pages
type credentialsForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// eventForm is posted by the add and edit pages
type eventForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Date        string `form:"date"`
	Time        string `form:"time"`
	Location    string `form:"location"`
}

func (f eventForm) apply(e *model.Event) {
	e.Title = f.Title
	e.Description = f.Description
	e.Date = f.Date
	e.Time = f.Time
	e.Location = f.Location
}

// RegisterRoutes registers HTTP routes on the given gin.Engine
// Routes: /signup, /login, /logout, /, /add, /edit/:id, /delete/:id, /stats, /health
func (ed *EventDesk) RegisterRoutes(router *gin.Engine) {
	router.GET(guard.ScriptPath, ed.handleScript)
	router.GET("/health", ed.handleHealth)

	web := router.Group("/")
	web.Use(ed.sessions.Middleware())

	web.GET("/signup", ed.handleSignupPage)
	web.POST("/signup", ed.handleSignup)
	web.GET(loginPath, ed.handleLoginPage)
	web.POST(loginPath, ed.handleLogin)
	web.GET("/logout", ed.handleLogout)

	private := web.Group("/")
	private.Use(ed.sessions.RequireLogin(loginPath))

	private.GET("/", ed.handleIndex)
	private.GET("/add", ed.handleAddPage)
	private.POST("/add", ed.handleAdd)
	private.GET("/edit/:id", ed.handleEditPage)
	private.POST("/edit/:id", ed.handleEdit)
	private.POST("/delete/:id", ed.handleDelete)

	if ed.cfg.Features.StatsEnabled {
		private.GET("/stats", ed.handleStats)
		private.GET(pages.StatsChartPath, ed.handleStatsChart)
	}
}

// page builds the shared page chrome and consumes pending flashes
func (ed *EventDesk) page(c *gin.Context, title string) ui.Page {
	s := session.From(c)
	p := ui.Page{
		Title:       title,
		CurrentPath: c.Request.URL.Path,
		Flashes:     s.PopFlashes(),
	}
	if s.LoggedIn() {
		user, err := ed.store.GetUser(c.Request.Context(), s.UserID)
		if err == nil {
			p.Username = user.Username
		} else if errors.Is(err, model.ErrNotFound) {
			s.Logout()
		} else {
			log.Log.Warnf("failed to load user %d: %v", s.UserID, err)
		}
	}
	return p
}

// saveSession writes the session cookie; it must run before the response body
func (ed *EventDesk) saveSession(c *gin.Context) {
	if err := ed.sessions.Save(c.Writer, session.From(c)); err != nil {
		log.Log.Errorf("failed to save session: %v", err)
	}
}

func (ed *EventDesk) renderHTML(c *gin.Context, status int, html string) {
	ed.saveSession(c)
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(status, html)
}

func (ed *EventDesk) redirect(c *gin.Context, location string) {
	ed.saveSession(c)
	c.Redirect(http.StatusFound, location)
}

func (ed *EventDesk) flashRedirect(c *gin.Context, category, message, location string) {
	session.From(c).Flash(category, message)
	ed.redirect(c, location)
}

func (ed *EventDesk) internalError(c *gin.Context, what string, err error) {
	log.Log.Errorf("%s: %v", what, err)
	ed.saveSession(c)
	c.JSON(500, gin.H{"error": fmt.Sprintf("%s: %v", what, err)})
}

func (ed *EventDesk) notFound(c *gin.Context) {
	ed.renderHTML(c, http.StatusNotFound, pages.RenderNotFound(ed.page(c, "Not Found"), "Event not found."))
}

// eventID parses the :id parameter; a malformed id is answered with 404
func (ed *EventDesk) eventID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ed.notFound(c)
		return 0, false
	}
	return id, true
}

// handleScript serves the browser rendition of the delete confirmation
func (ed *EventDesk) handleScript(c *gin.Context) {
	c.Data(http.StatusOK, "application/javascript; charset=utf-8", guard.Script())
}

// handleHealth handles health check requests
func (ed *EventDesk) handleHealth(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if _, err := ed.store.ListEvents(c.Request.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
		log.Log.Warnf("health check: %v", err)
	}
	c.JSON(code, gin.H{
		"status":  status,
		"version": Version(),
		"uptime":  ed.sinceStart().String(),
	})
}

func (ed *EventDesk) handleSignupPage(c *gin.Context) {
	ed.renderHTML(c, http.StatusOK, pages.RenderSignup(ed.page(c, "Sign Up"), ""))
}

func (ed *EventDesk) handleSignup(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		ed.flashRedirect(c, session.Danger, "Username and password are required", "/signup")
		return
	}

	ctx := c.Request.Context()
	if _, err := ed.store.GetUserByUsername(ctx, form.Username); err == nil {
		ed.flashRedirect(c, session.Danger, "Username already exists. Please choose another.", "/signup")
		return
	} else if !errors.Is(err, model.ErrNotFound) {
		ed.internalError(c, "Failed to look up user", err)
		return
	}

	user, err := model.NewUser(form.Username, form.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidUser) {
			ed.flashRedirect(c, session.Danger, "Username must be between 1 and 80 characters", "/signup")
			return
		}
		ed.internalError(c, "Failed to create user", err)
		return
	}

	if err := ed.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			ed.flashRedirect(c, session.Danger, "Username already exists. Please choose another.", "/signup")
			return
		}
		ed.internalError(c, "Failed to create user", err)
		return
	}

	log.Log.Infof("user %q signed up", user.Username)
	ed.flashRedirect(c, session.Success, "Account created successfully! Please login.", loginPath)
}

func (ed *EventDesk) handleLoginPage(c *gin.Context) {
	ed.renderHTML(c, http.StatusOK, pages.RenderLogin(ed.page(c, "Login"), ""))
}

func (ed *EventDesk) handleLogin(c *gin.Context) {
	s := session.From(c)
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		s.Flash(session.Danger, "Invalid username or password")
		ed.renderHTML(c, http.StatusOK, pages.RenderLogin(ed.page(c, "Login"), form.Username))
		return
	}

	user, err := ed.store.GetUserByUsername(c.Request.Context(), form.Username)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		ed.internalError(c, "Failed to look up user", err)
		return
	}
	if err == nil && user.CheckPassword(form.Password) {
		s.Login(user.ID)
		ed.flashRedirect(c, session.Success, "Logged in successfully", "/")
		return
	}

	// the login page is rendered in place, as a failed POST does not redirect
	s.Flash(session.Danger, "Invalid username or password")
	ed.renderHTML(c, http.StatusOK, pages.RenderLogin(ed.page(c, "Login"), form.Username))
}

func (ed *EventDesk) handleLogout(c *gin.Context) {
	session.From(c).Logout()
	ed.flashRedirect(c, session.Success, "Logged out successfully", loginPath)
}

func (ed *EventDesk) handleIndex(c *gin.Context) {
	events, err := ed.store.ListEvents(c.Request.Context())
	if err != nil {
		ed.internalError(c, "Failed to list events", err)
		return
	}
	ed.renderHTML(c, http.StatusOK, pages.RenderIndex(ed.page(c, "Events"), events))
}

func (ed *EventDesk) handleAddPage(c *gin.Context) {
	p := ed.page(c, "Add Event")
	ed.renderHTML(c, http.StatusOK, pages.RenderEventForm(p, "Add Event", "/add", "Add Event", pages.EventFormValues{}))
}

func (ed *EventDesk) handleAdd(c *gin.Context) {
	var form eventForm
	if err := c.ShouldBind(&form); err != nil {
		ed.flashRedirect(c, session.Danger, "Invalid event", "/add")
		return
	}

	event := &model.Event{}
	form.apply(event)
	if err := model.ValidateEvent(event); err != nil {
		ed.flashRedirect(c, session.Danger, validationMessage(err), "/add")
		return
	}

	if err := ed.store.CreateEvent(c.Request.Context(), event); err != nil {
		ed.internalError(c, "Failed to create event", err)
		return
	}

	log.Log.Infof("event %d created by user %d", event.ID, session.From(c).UserID)
	ed.flashRedirect(c, session.Success, "Event added successfully", "/")
}

func (ed *EventDesk) handleEditPage(c *gin.Context) {
	id, ok := ed.eventID(c)
	if !ok {
		return
	}
	event, err := ed.store.GetEvent(c.Request.Context(), id)
	if errors.Is(err, model.ErrNotFound) {
		ed.notFound(c)
		return
	} else if err != nil {
		ed.internalError(c, "Failed to load event", err)
		return
	}

	p := ed.page(c, "Edit Event")
	html := pages.RenderEventForm(p, "Edit Event", pages.EditPath(id), "Update Event", pages.FormValuesFromEvent(event))
	ed.renderHTML(c, http.StatusOK, html)
}

func (ed *EventDesk) handleEdit(c *gin.Context) {
	id, ok := ed.eventID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	event, err := ed.store.GetEvent(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		ed.notFound(c)
		return
	} else if err != nil {
		ed.internalError(c, "Failed to load event", err)
		return
	}

	var form eventForm
	if err := c.ShouldBind(&form); err != nil {
		ed.flashRedirect(c, session.Danger, "Invalid event", pages.EditPath(id))
		return
	}
	form.apply(event)
	if err := model.ValidateEvent(event); err != nil {
		ed.flashRedirect(c, session.Danger, validationMessage(err), pages.EditPath(id))
		return
	}

	if err := ed.store.UpdateEvent(ctx, event); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			ed.notFound(c)
			return
		}
		ed.internalError(c, "Failed to update event", err)
		return
	}

	log.Log.Infof("event %d updated by user %d", id, session.From(c).UserID)
	ed.flashRedirect(c, session.Success, "Event updated successfully", "/")
}

// handleDelete removes an event. The browser only gets here after the user
// confirmed the guarded delete form.
func (ed *EventDesk) handleDelete(c *gin.Context) {
	id, ok := ed.eventID(c)
	if !ok {
		return
	}
	if err := ed.store.DeleteEvent(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			ed.notFound(c)
			return
		}
		ed.internalError(c, "Failed to delete event", err)
		return
	}

	log.Log.Infof("event %d deleted by user %d", id, session.From(c).UserID)
	ed.flashRedirect(c, session.Success, "Event deleted successfully", "/")
}

func (ed *EventDesk) handleStats(c *gin.Context) {
	events, err := ed.store.ListEvents(c.Request.Context())
	if err != nil {
		ed.internalError(c, "Failed to list events", err)
		return
	}
	dates, _ := visualize.NewEventCharts(events).CountsByDate()
	ed.renderHTML(c, http.StatusOK, pages.RenderStats(ed.page(c, "Stats"), len(events), len(dates)))
}

// handleStatsChart serves the standalone chart page embedded by /stats
func (ed *EventDesk) handleStatsChart(c *gin.Context) {
	events, err := ed.store.ListEvents(c.Request.Context())
	if err != nil {
		ed.internalError(c, "Failed to list events", err)
		return
	}
	ed.saveSession(c)
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := visualize.NewEventCharts(events).Render(c.Writer); err != nil {
		log.Log.Errorf("failed to render charts: %v", err)
	}
}

// validationMessage maps a ValidateEvent error to the flash shown to the user
func validationMessage(err error) string {
	if errors.Is(err, model.ErrInvalidDateTime) {
		return "Invalid date or time format"
	}
	return "Title is required and title and location must be at most 100 characters"
}
