package main

import (
	"context"
	"errors"
	"marquee/internal/domain/chats"
	"marquee/internal/domain/events"
	"marquee/internal/domain/profiles"
	"marquee/internal/params"
	"net/http"
	"time"
)

const listTimeout = 10 * time.Second

type EventListResponse struct {
	Events     []events.Event    `json:"events"`
	Pagination params.Pagination `json:"pagination"`
}

type ChatListResponse struct {
	Chats      []chats.Chat      `json:"chats"`
	Pagination params.Pagination `json:"pagination"`
}

// requireProfile is currentProfile for routes that cannot work without one.
func (app *application) requireProfile(w http.ResponseWriter, r *http.Request) (*profiles.Profile, bool) {
	p, err := app.currentProfile(r)
	if err != nil {
		app.internalServerError(w, r, err)
		return nil, false
	}
	if p == nil {
		app.notFoundResponse(w, r, errors.New("profile not found"))
		return nil, false
	}
	return p, true
}

// @Summary		List own events
// @Description	All events created by the caller, soonest first. Backs the "View all" link of the events panel.
// @Tags			dashboard
// @Produce		json
// @Param			page	query		int	false	"Page number"		default(1)
// @Param			limit	query		int	false	"Items per page"	default(15)
// @Success		200		{object}	EventListResponse
// @Failure		401		{object}	error
// @Failure		404		{object}	error
// @Failure		500		{object}	error
// @Security		ApiKeyAuth
// @Router			/events [get]
func (app *application) listEventsHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := app.requireProfile(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()

	p := params.ParsePagination(r.URL.Query())
	rows, total, err := app.store.Events.PageByCreator(ctx, profile.ID, p)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	p.ComputeMeta(total)

	_ = app.jsonResponse(w, http.StatusOK, EventListResponse{Events: nonNil(rows), Pagination: p})
}

// @Summary		List opportunities
// @Description	Published events of other hosts that are seeking creators, soonest first. Empty for hosts.
// @Tags			dashboard
// @Produce		json
// @Param			page	query		int	false	"Page number"		default(1)
// @Param			limit	query		int	false	"Items per page"	default(15)
// @Success		200		{object}	EventListResponse
// @Failure		401		{object}	error
// @Failure		404		{object}	error
// @Failure		500		{object}	error
// @Security		ApiKeyAuth
// @Router			/opportunities [get]
func (app *application) listOpportunitiesHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := app.requireProfile(w, r)
	if !ok {
		return
	}

	p := params.ParsePagination(r.URL.Query())
	if !profile.IsCreator() {
		p.ComputeMeta(0)
		_ = app.jsonResponse(w, http.StatusOK, EventListResponse{Events: []events.Event{}, Pagination: p})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()

	rows, total, err := app.store.Events.PageOpportunities(ctx, profile.ID, p)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	p.ComputeMeta(total)

	_ = app.jsonResponse(w, http.StatusOK, EventListResponse{Events: nonNil(rows), Pagination: p})
}

// @Summary		List chats
// @Description	Chats the caller takes part in as host or creator, most recent message first.
// @Tags			dashboard
// @Produce		json
// @Param			page	query		int	false	"Page number"		default(1)
// @Param			limit	query		int	false	"Items per page"	default(15)
// @Success		200		{object}	ChatListResponse
// @Failure		401		{object}	error
// @Failure		404		{object}	error
// @Failure		500		{object}	error
// @Security		ApiKeyAuth
// @Router			/chats [get]
func (app *application) listChatsHandler(w http.ResponseWriter, r *http.Request) {
	profile, ok := app.requireProfile(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), listTimeout)
	defer cancel()

	p := params.ParsePagination(r.URL.Query())
	rows, total, err := app.store.Chats.PageForParticipant(ctx, profile.ID, p)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	p.ComputeMeta(total)

	_ = app.jsonResponse(w, http.StatusOK, ChatListResponse{Chats: nonNil(rows), Pagination: p})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
