// Package eventdesk is a small web application for managing events. Delete
// buttons are protected by the confirmation guard in package guard.
package eventdesk

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghiac/eventdesk/config"
	"github.com/ghiac/eventdesk/model"
	"github.com/ghiac/eventdesk/session"
)

// EventDesk wires the storage backend, session cookies and HTTP handlers
type EventDesk struct {
	cfg      *config.Config
	store    model.Store
	sessions *session.Manager

	startedAt time.Time
}

// Options allows configuring EventDesk behavior
type Options struct {
	// Sessions allows providing a custom session manager
	Sessions *session.Manager
}

// New creates an EventDesk on top of st
func New(cfg *config.Config, st model.Store) *EventDesk {
	return NewWithOptions(cfg, st, nil)
}

// NewWithOptions creates an EventDesk with custom options
func NewWithOptions(cfg *config.Config, st model.Store, opts *Options) *EventDesk {
	if cfg == nil {
		cfg = config.Default()
	}

	sessions := session.NewManager(cfg.Session)
	if opts != nil && opts.Sessions != nil {
		sessions = opts.Sessions
	}

	return &EventDesk{
		cfg:       cfg,
		store:     st,
		sessions:  sessions,
		startedAt: time.Now(),
	}
}

// Store returns the storage backend
func (ed *EventDesk) Store() model.Store {
	return ed.store
}

// Sessions returns the session manager
func (ed *EventDesk) Sessions() *session.Manager {
	return ed.sessions
}

// Handler builds a gin engine with every route registered
func (ed *EventDesk) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery())
	if ed.cfg.Features.Debug {
		router.Use(gin.Logger())
	}
	ed.RegisterRoutes(router)
	return router
}

// Version returns the current version of the application
func Version() string {
	return "0.1.0"
}

func (ed *EventDesk) sinceStart() time.Duration {
	return time.Since(ed.startedAt).Round(time.Second)
}
