package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fenwick/jot/internal/apperr"
	"github.com/fenwick/jot/internal/noteservice"
	"github.com/fenwick/jot/internal/sse"
)

const maxBodyBytes = 1 << 20

// Handler holds API route handlers.
type Handler struct {
	svc    *noteservice.Service
	broker *sse.Broker
}

// NewHandler creates a new Handler. The broker may be nil, in which case
// no change events are published.
func NewHandler(svc *noteservice.Service, broker *sse.Broker) *Handler {
	return &Handler{svc: svc, broker: broker}
}

func (h *Handler) publishNoteEvent(kind, noteID string) {
	if h.broker != nil {
		h.broker.PublishNoteEvent(kind, noteID)
	}
}

// Health handles GET /health. Static liveness payload, no store interaction.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// ListNotes handles GET /notes with page/page_size/q/tag query parameters.
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	items, total, page, pageSize, err := h.svc.List(r.Context(), page, pageSize, q.Get("q"), q.Get("tag"))
	if err != nil {
		slog.Error("list notes failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, NoteListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetNote handles GET /notes/{id}.
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "id")
	note, err := h.svc.Get(r.Context(), noteID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("note not found"))
		} else {
			slog.Error("get note failed", slog.String("id", noteID), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// CreateNote handles POST /notes.
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}
	note, err := h.svc.Create(r.Context(), req.Title, *req.Content, req.Tags)
	if err != nil {
		slog.Error("create note failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	h.publishNoteEvent("created", note.ID)
	writeJSON(w, http.StatusCreated, note)
}

// UpdateNote handles PUT /notes/{id} with a partial body.
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	noteID := chi.URLParam(r, "id")

	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("invalid JSON body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	patch := req.Patch()
	note, err := h.svc.Update(r.Context(), noteID, patch)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("note not found"))
		} else {
			slog.Error("update note failed", slog.String("id", noteID), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	// An empty patch changes nothing, so subscribers hear nothing.
	if !patch.Empty() {
		h.publishNoteEvent("updated", note.ID)
	}
	writeJSON(w, http.StatusOK, note)
}

// DeleteNote handles DELETE /notes/{id}.
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "id")
	if err := h.svc.Delete(r.Context(), noteID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("note not found"))
		} else {
			slog.Error("delete note failed", slog.String("id", noteID), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	h.publishNoteEvent("deleted", noteID)
	w.WriteHeader(http.StatusNoContent)
}

// Seed handles POST /utils/seed?count=N.
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))
	created, err := h.svc.Seed(r.Context(), count)
	if err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if h.broker != nil {
		h.broker.Publish(sse.Event{Type: "store.seeded", Data: map[string]int{"created": created}})
	}
	writeJSON(w, http.StatusOK, SeedResponse{Created: created})
}

// Reset handles POST /utils/reset.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context()); err != nil {
		slog.Error("reset failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if h.broker != nil {
		h.broker.Publish(sse.Event{Type: "store.reset", Data: map[string]string{}})
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "reset"})
}
