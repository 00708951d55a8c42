// Package session keeps the logged-in user and pending flash messages in a
// signed cookie, so the server holds no session state.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ghiac/eventdesk/config"
	"github.com/ghiac/eventdesk/log"
)

const contextKey = "eventdesk.session"

const issuer = "eventdesk"

// Flash categories, matching Bootstrap alert variants
const (
	Success = "success"
	Danger  = "danger"
	Warning = "warning"
	Info    = "info"
)

// Flash is a one-shot message shown on the next rendered page
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Claims is the signed cookie payload
type Claims struct {
	jwt.RegisteredClaims
	UserID  int64   `json:"uid,omitempty"`
	Flashes []Flash `json:"flashes,omitempty"`
}

// Session is the per-request view of the cookie
type Session struct {
	ID      string
	UserID  int64
	flashes []Flash
	dirty   bool
}

// LoggedIn reports whether a user is attached
func (s *Session) LoggedIn() bool { return s.UserID != 0 }

// Login attaches userID and rotates the session ID
func (s *Session) Login(userID int64) {
	s.ID = uuid.NewString()
	s.UserID = userID
	s.dirty = true
}

// Logout detaches the user; pending flashes survive
func (s *Session) Logout() {
	s.UserID = 0
	s.dirty = true
}

// Flash queues a message for the next rendered page
func (s *Session) Flash(category, message string) {
	s.flashes = append(s.flashes, Flash{Category: category, Message: message})
	s.dirty = true
}

// PopFlashes returns and clears the pending messages
func (s *Session) PopFlashes() []Flash {
	out := s.flashes
	if len(out) > 0 {
		s.flashes = nil
		s.dirty = true
	}
	return out
}

// Manager encodes sessions into cookies and back
type Manager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
	now        func() time.Time
}

// NewManager creates a Manager from the session configuration
func NewManager(cfg config.SessionConfig) *Manager {
	return &Manager{
		secret:     []byte(cfg.SecretKey),
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     cfg.Secure,
		now:        time.Now,
	}
}

// CookieName returns the cookie the manager reads and writes
func (m *Manager) CookieName() string { return m.cookieName }

// Encode signs the session
func (m *Manager) Encode(s *Session) (string, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID:  s.UserID,
		Flashes: s.flashes,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return token, nil
}

// Decode verifies a token and rebuilds the session
func (m *Manager) Decode(token string) (*Session, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return &Session{ID: claims.ID, UserID: claims.UserID, flashes: claims.Flashes}, nil
}

// Load reads the session cookie. A missing, tampered or expired cookie
// yields an empty session.
func (m *Manager) Load(r *http.Request) *Session {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return &Session{}
	}
	s, err := m.Decode(cookie.Value)
	if err != nil {
		if !errors.Is(err, jwt.ErrTokenExpired) {
			log.Log.Warnf("session: discarding invalid cookie: %v", err)
		}
		return &Session{dirty: true}
	}
	return s
}

// Save writes the cookie if the session changed. It must run before the
// response header is written.
func (m *Manager) Save(w http.ResponseWriter, s *Session) error {
	if !s.dirty {
		return nil
	}

	if !s.LoggedIn() && len(s.flashes) == 0 {
		http.SetCookie(w, m.cookie("", -1))
		s.dirty = false
		return nil
	}

	token, err := m.Encode(s)
	if err != nil {
		return err
	}
	http.SetCookie(w, m.cookie(token, int(m.ttl.Seconds())))
	s.dirty = false
	return nil
}

func (m *Manager) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Middleware loads the session into the gin context
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, m.Load(c.Request))
		c.Next()
	}
}

// RequireLogin redirects anonymous requests to loginPath with a warning flash
func (m *Manager) RequireLogin(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := From(c)
		if s.LoggedIn() {
			c.Next()
			return
		}
		s.Flash(Warning, "Please login to access this page")
		if err := m.Save(c.Writer, s); err != nil {
			log.Log.Errorf("session: %v", err)
		}
		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
	}
}

// From returns the session loaded by Middleware, or an empty one
func From(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	s := &Session{}
	c.Set(contextKey, s)
	return s
}
