// Package server exposes the gamemaster over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"surakarta/communication"
	"surakarta/game"
	"surakarta/gamemaster"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

// NewServer wires routes and returns an http.Handler.
func NewServer(svc *gamemaster.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	h := &handlers{svc: svc}
	r.Post("/games", h.create)
	r.Get("/games", h.list)
	r.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Get("/moves", h.legalMoves)
		r.Post("/moves", h.play)
		r.Post("/preview", h.preview)
		r.Get("/events", h.events)
	})
	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

type handlers struct {
	svc *gamemaster.Service
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	var req communication.CreateGameRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
			return
		}
	}
	view, err := h.svc.CreateGame(req.Cells)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Location", "/games/"+view.ID)
	writeJSON(w, http.StatusCreated, view)
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List())
}

func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *handlers) legalMoves(w http.ResponseWriter, r *http.Request) {
	moves, err := h.svc.LegalMoves(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	if moves == nil {
		moves = []game.Move{}
	}
	writeJSON(w, http.StatusOK, moves)
}

func (h *handlers) play(w http.ResponseWriter, r *http.Request) {
	var move game.Move
	if err := json.NewDecoder(r.Body).Decode(&move); err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	view, path, err := h.svc.Play(chi.URLParam(r, "id"), move)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, communication.PlayResponse{Game: view, Path: path})
}

func (h *handlers) preview(w http.ResponseWriter, r *http.Request) {
	var req communication.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	path, ok, err := h.svc.Preview(chi.URLParam(r, "id"), req.Row, req.Column, req.Direction, req.Cut)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, communication.PreviewResponse{Feasible: ok, Path: path})
}

// events streams the game's updates as server-sent events until the game
// ends or the client goes away.
func (h *handlers) events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	updates, unsub, err := h.svc.Subscribe(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	defer unsub()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for u := range updates {
		data, err := json.Marshal(u)
		if err != nil {
			log.Error().Err(err).Msg("failed to encode update")
			return
		}
		if _, err := fmt.Fprintf(w, "event: update\ndata: %s\n\n", data); err != nil {
			return
		}
		flusher.Flush()
	}
}

var errBadRequest = errors.New("malformed request")

func statusOf(err error) int {
	switch {
	case errors.Is(err, gamemaster.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, gamemaster.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, errBadRequest), errors.Is(err, game.ErrInvalidLayout):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrIllegalMove),
		errors.Is(err, game.ErrNotTurnPlayerPebble),
		errors.Is(err, game.ErrDestinationOccupied),
		errors.Is(err, game.ErrCornerLoop),
		errors.Is(err, game.ErrOutOfBounds),
		errors.Is(err, game.ErrUnknownDirection):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, communication.ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}
