package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/simaogato/ethicalfolio-backend/internal/adapter/presenter"
	"github.com/simaogato/ethicalfolio-backend/internal/domain"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/chart"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/ringlayout"
)

// selectionEventRequest is the body of the sector and risk event endpoints
type selectionEventRequest struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type selectSegmentRequest struct {
	ID string `json:"id"`
}

type selectProfileRequest struct {
	Profile string `json:"profile"`
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "ethicalfolio",
	})
}

// handlePortfolio returns the sectors, geographic split and fees of a profile
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.profileParam(w, r)
	if !ok {
		return
	}

	result, err := s.services.Chart.Portfolio(r.Context(), profile)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, presenter.Portfolio(result))
}

// handleRing returns the laid out sector ring.
// Query: active (sector id), outer and inner (radii).
func (s *Server) handleRing(w http.ResponseWriter, r *http.Request) {
	ring, ok := s.ring(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, presenter.Ring(ring))
}

// handleRingSVG returns the sector ring as an SVG image
func (s *Server) handleRingSVG(w http.ResponseWriter, r *http.Request) {
	ring, ok := s.ring(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(RenderRingSVG(ring))); err != nil {
		s.log.Error().Err(err).Msg("Failed to write SVG response")
	}
}

func (s *Server) ring(w http.ResponseWriter, r *http.Request) (*chart.RingResult, bool) {
	profile, ok := s.profileParam(w, r)
	if !ok {
		return nil, false
	}

	g, err := s.geometryQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	sel := domain.ActiveSelection(r.URL.Query().Get("active"))
	ring, err := s.services.Chart.SectorRing(r.Context(), profile, g, sel)
	if err != nil {
		s.writeDomainError(w, err)
		return nil, false
	}
	return ring, true
}

// handleRiskDial returns the risk dial of a profile. Query: hovered (risk factor id).
func (s *Server) handleRiskDial(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.profileParam(w, r)
	if !ok {
		return
	}

	result, err := s.services.Dial.Dial(r.Context(), profile, domain.ActiveSelection(r.URL.Query().Get("hovered")))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, presenter.Dial(result))
}

// handleAudience returns the audience matrix. Query: selected (segment id).
func (s *Server) handleAudience(w http.ResponseWriter, r *http.Request) {
	result, err := s.services.Matrix.Matrix(r.Context(), domain.ActiveSelection(r.URL.Query().Get("selected")))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, presenter.Matrix(result))
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.services.Sessions.Start(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, presenter.Session(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, presenter.Session(sess))
}

func (s *Server) handleSectorEvent(w http.ResponseWriter, r *http.Request) {
	s.applyEvent(w, r, func(ctx context.Context, id uuid.UUID, e domain.SelectionEvent) (*domain.Session, error) {
		return s.services.Sessions.ApplySectorEvent(ctx, id, e)
	})
}

func (s *Server) handleRiskEvent(w http.ResponseWriter, r *http.Request) {
	s.applyEvent(w, r, func(ctx context.Context, id uuid.UUID, e domain.SelectionEvent) (*domain.Session, error) {
		return s.services.Sessions.ApplyRiskEvent(ctx, id, e)
	})
}

func (s *Server) applyEvent(w http.ResponseWriter, r *http.Request, apply func(context.Context, uuid.UUID, domain.SelectionEvent) (*domain.Session, error)) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	var req selectionEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event := domain.SelectionEvent{
		Type: domain.SelectionEventType(strings.ToUpper(req.Type)),
		ID:   req.ID,
	}
	sess, err := apply(r.Context(), id, event)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, presenter.Session(sess))
}

func (s *Server) handleSelectSegment(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	var req selectSegmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := s.services.Sessions.SelectSegment(r.Context(), id, req.ID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, presenter.Session(sess))
}

func (s *Server) handleSelectProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return
	}

	var req selectProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := domain.ParseProfileKey(req.Profile)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := s.services.Sessions.SelectProfile(r.Context(), id, profile)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, presenter.Session(sess))
}

// handleSessionRing draws the ring of the session profile with its sector selection.
// Profiles without a breakdown of their own are drawn with the default one.
func (s *Server) handleSessionRing(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	ring, err := s.services.Chart.SectorRing(r.Context(), sess.Profile, s.geometry, sess.Sectors)
	if errors.Is(err, domain.ErrNotFound) && sess.Profile != domain.DefaultProfile {
		ring, err = s.services.Chart.SectorRing(r.Context(), domain.DefaultProfile, s.geometry, sess.Sectors)
	}
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, presenter.Ring(ring))
}

func (s *Server) handleSessionDial(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	result, err := s.services.Dial.Dial(r.Context(), sess.Profile, sess.Risks)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, presenter.Dial(result))
}

func (s *Server) handleSessionAudience(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	result, err := s.services.Matrix.Matrix(r.Context(), sess.Segments)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, presenter.Matrix(result))
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*domain.Session, bool) {
	id, ok := s.sessionID(w, r)
	if !ok {
		return nil, false
	}

	sess, err := s.services.Sessions.Get(r.Context(), id)
	if err != nil {
		s.writeDomainError(w, err)
		return nil, false
	}
	return sess, true
}

func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) profileParam(w http.ResponseWriter, r *http.Request) (domain.ProfileKey, bool) {
	profile, err := domain.ParseProfileKey(chi.URLParam(r, "profile"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return profile, true
}

// geometryQuery reads optional outer and inner radii over the server geometry
func (s *Server) geometryQuery(r *http.Request) (ringlayout.Geometry, error) {
	g := s.geometry
	q := r.URL.Query()
	if raw := q.Get("outer"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return g, errors.New("invalid outer radius")
		}
		g.OuterRadius = v
	}
	if raw := q.Get("inner"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return g, errors.New("invalid inner radius")
		}
		g.InnerRadius = v
	}
	return g, nil
}

// writeDomainError maps domain errors to HTTP status codes
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidSelectionEvent):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrLayoutPrecondition):
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.log.Error().Err(err).Msg("Request failed")
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// writeJSON writes a JSON response. The body is encoded before the status
// goes out, so an encoding failure still reaches the client as a 500.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
		status = http.StatusInternalServerError
		body = []byte(`{"error":"internal error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
