package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"oceanbistro/internal/contact"
	"oceanbistro/internal/db"
	applog "oceanbistro/internal/log"
	"oceanbistro/internal/menu"
	"oceanbistro/internal/views/theme"
)

const (
	sessionVisitorIDKey = "visitor:id"
	sessionThemeModeKey = "theme:mode"
)

var errSessionUnavailable = errors.New("session not available")

// Dependencies are the collaborators shared by the HTTP handlers.
type Dependencies struct {
	Sessions    *scs.SessionManager
	Database    *gorm.DB
	Menu        menu.Menu
	Sender      contact.Sender
	Environment string
	Now         func() time.Time
}

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
	siteMenu       = menu.Default()
	contactSender  contact.Sender
	environment    = "development"
	now            = time.Now
)

// Configure installs the shared dependencies used by the HTTP handlers.
// Zero values fall back to the embedded menu, the simulated sender and the
// development environment label.
func Configure(deps Dependencies) {
	sessionManager = deps.Sessions
	database = deps.Database

	siteMenu = deps.Menu
	if len(siteMenu.Categories) == 0 {
		siteMenu = menu.Default()
	}
	contactSender = deps.Sender
	environment = deps.Environment
	if environment == "" {
		environment = "development"
	}
	now = deps.Now
	if now == nil {
		now = time.Now
	}
}

// sessionCall runs fn and converts the panic scs raises when the request
// context carries no session into an error.
func sessionCall(fn func()) (err error) {
	if sessionManager == nil {
		return errSessionUnavailable
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errSessionUnavailable, r)
		}
	}()
	fn()
	return nil
}

// visitorID returns the anonymous visitor id stored in the session, creating one on first use.
func visitorID(ctx context.Context) (string, error) {
	var id string
	err := sessionCall(func() {
		id = sessionManager.GetString(ctx, sessionVisitorIDKey)
		if id == "" {
			id = uuid.NewString()
			sessionManager.Put(ctx, sessionVisitorIDKey, id)
			applog.Debug(ctx, "assigned visitor id", "visitor", id)
		}
	})
	return id, err
}

// sessionThemeStore keeps the theme mode in the visitor's session.
type sessionThemeStore struct{}

func (sessionThemeStore) LoadMode(ctx context.Context) (string, error) {
	var mode string
	err := sessionCall(func() {
		mode = sessionManager.GetString(ctx, sessionThemeModeKey)
	})
	return mode, err
}

func (sessionThemeStore) SaveMode(ctx context.Context, mode string) error {
	return sessionCall(func() {
		sessionManager.Put(ctx, sessionThemeModeKey, mode)
	})
}

// themeStoreFor picks the database-backed store when a database is configured
// and the visitor can be identified, and the session store otherwise.
func themeStoreFor(r *http.Request) theme.Store {
	if database != nil {
		id, err := visitorID(r.Context())
		if err == nil {
			return db.NewPreferenceStore(database, id)
		}
		applog.Debug(r.Context(), "visitor id unavailable, using session theme store", "error", err)
	}
	return sessionThemeStore{}
}

func newThemeManager(r *http.Request) *theme.Manager {
	prefersDark := theme.PrefersDark(r.Header.Get(colorSchemeHintHeader))
	return theme.NewManager(r.Context(), themeStoreFor(r), prefersDark)
}
