package main

import (
	"context"
	"errors"
	"marquee/internal/dashboard"
	"marquee/internal/domain/profiles"
	"net/http"
	"strings"
	"time"
)

const dashboardTimeout = 15 * time.Second

type dashboardQuery struct {
	Query  string `validate:"max=200"`
	Filter string `validate:"omitempty,oneof=all upcoming past"`
}

func parseDashboardQuery(r *http.Request) (dashboardQuery, error) {
	q := r.URL.Query()
	dq := dashboardQuery{
		Query:  q.Get("q"),
		Filter: strings.ToLower(strings.TrimSpace(q.Get("filter"))),
	}
	if err := Validate.Struct(dq); err != nil {
		return dashboardQuery{}, err
	}
	return dq, nil
}

// currentProfile loads the caller's profile. A verified token whose profile
// row does not exist yet yields a nil profile, which leaves the dashboard
// loading.
func (app *application) currentProfile(r *http.Request) (*profiles.Profile, error) {
	id, ok := getIdentityFromContext(r)
	if !ok {
		return nil, errors.New("request carries no identity")
	}

	ctx, cancel := context.WithTimeout(r.Context(), profiles.QueryTimeoutDuration)
	defer cancel()

	p, err := app.store.Profiles.GetByID(ctx, id.UserID)
	if errors.Is(err, profiles.ErrNotFound) {
		return nil, nil
	}
	return p, err
}

// loadDashboard runs one fetch cycle for the caller and derives the view.
// A failed cycle still produces a view: its error text is shown above
// whatever loaded before the failure.
func (app *application) loadDashboard(r *http.Request, q dashboardQuery) (dashboard.View, error) {
	profile, err := app.currentProfile(r)
	if err != nil {
		return dashboard.View{}, err
	}

	page := dashboard.NewPage(dashboard.Sources{
		Events:     app.store.Events,
		Chats:      app.store.Chats,
		Financials: app.store.Financials,
	}, app.avatars, app.logger)

	ctx, cancel := context.WithTimeout(r.Context(), dashboardTimeout)
	defer cancel()
	_ = page.SetProfile(ctx, profile)

	mode, err := dashboard.ParseFilterMode(q.Filter)
	if err != nil {
		return dashboard.View{}, err
	}
	return dashboard.Build(page.Snapshot(), dashboard.Options{
		Query:  q.Query,
		Filter: mode,
		Now:    app.clock(),
		Format: app.format,
	}), nil
}

// Dashboard godoc
//
//	@Summary		Dashboard view
//	@Description	Stats, weekly chart and the events and chats panels for the caller. A failed fetch is reported in the error field next to whatever loaded.
//	@Tags			dashboard
//	@Produce		json
//	@Param			q		query		string	false	"Search text (title, description, chat emails)"
//	@Param			filter	query		string	false	"Events filter (all|upcoming|past)"	default(all)
//	@Success		200		{object}	dashboard.View
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/dashboard [get]
func (app *application) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	q, err := parseDashboardQuery(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	view, err := app.loadDashboard(r, q)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, view); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) dashboardPageHandler(w http.ResponseWriter, r *http.Request) {
	q, err := parseDashboardQuery(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	view, err := app.loadDashboard(r, q)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := app.renderer.Render(w, "dashboard", view); err != nil {
		app.internalServerError(w, r, err)
	}
}
