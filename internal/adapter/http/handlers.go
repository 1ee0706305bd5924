package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	stocktrackerv1 "github.com/simaogato/stocktracker-backend/internal/adapter/grpc/stocktracker/v1"
	"github.com/simaogato/stocktracker-backend/internal/adapter/presenter"
	"github.com/simaogato/stocktracker-backend/internal/domain"
	"github.com/simaogato/stocktracker-backend/internal/usecase/auth"
	"github.com/simaogato/stocktracker-backend/internal/usecase/portfolio"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "stocktracker",
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req stocktrackerv1.RegisterRequest
	if !s.decode(w, r, &req) {
		return
	}

	user, session, err := s.auth.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, presenter.Session(user, session))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req stocktrackerv1.LoginRequest
	if !s.decode(w, r, &req) {
		return
	}

	user, session, err := s.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, presenter.Session(user, session))
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.Logout(sessionToken(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListPositions(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	positions, err := s.portfolio.ListPositions(r.Context(), user.ID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, stocktrackerv1.ListPositionsResponse{Positions: presenter.Positions(positions)})
}

func (s *Server) handleAddPosition(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	var req stocktrackerv1.AddPositionRequest
	if !s.decode(w, r, &req) {
		return
	}

	position, err := s.portfolio.AddPosition(r.Context(), user.ID, portfolio.AddPositionInput{
		Name:       req.Name,
		CostPrice:  req.CostPrice,
		ClosePrice: req.ClosePrice,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, stocktrackerv1.PositionResponse{Position: presenter.Position(position)})
}

func (s *Server) handleUpdatePosition(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	positionID, ok := s.positionID(w, r)
	if !ok {
		return
	}

	var req stocktrackerv1.UpdatePositionRequest
	if !s.decode(w, r, &req) {
		return
	}

	position, err := s.portfolio.EditPosition(r.Context(), user.ID, positionID, domain.PositionPatch{
		Name:       req.Name,
		CostPrice:  req.CostPrice,
		ClosePrice: req.ClosePrice,
	})
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, stocktrackerv1.PositionResponse{Position: presenter.Position(position)})
}

func (s *Server) handleDeletePosition(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	positionID, ok := s.positionID(w, r)
	if !ok {
		return
	}

	if err := s.portfolio.DeletePosition(r.Context(), user.ID, positionID); err != nil {
		s.writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetReturns(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.UserFromContext(r.Context())

	report, err := s.portfolio.GetReturns(r.Context(), user.ID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, presenter.Returns(report))
}

// Helper methods

func (s *Server) positionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid position id")
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}

// writeDomainError maps domain errors to HTTP status codes
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidRecord):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrUsernameTaken):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthenticated):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		s.log.Error().Err(err).Msg("Request failed")
	}
	s.writeError(w, status, err.Error())
}
