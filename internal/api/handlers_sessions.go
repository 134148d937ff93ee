package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/pageturn/bookstream/internal/error_values"
	"github.com/pageturn/bookstream/internal/repository"
	"github.com/pageturn/bookstream/internal/service"
	"github.com/pageturn/bookstream/pkg/httputil"
)

type StartSessionRequest struct {
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

func (s *Server) StartSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("start session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	bookID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("start session error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	var req StartSessionRequest
	defer r.Body.Close()
	// An empty body means "start now"
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Error("start session error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	start := service.StartSessionRequest{EndTime: req.EndTime}
	if req.StartTime != nil {
		start.StartTime = *req.StartTime
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	session, err := s.sessionService.StartSession(ctx, uid, bookID, &start)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrBookNotFound):
			logger.Error("start session error: unexist book")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "book doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrEndBeforeStart):
			logger.Error("start session error: end precedes start")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "end_time precedes start_time", nil)
		default:
			logger.Error("start session error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while starting session", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, session)
	logger.Info("reading session started", slog.String("session_id", session.ID.String()))
}

func (s *Server) CloseSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("close session error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	sessionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("close session error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid session id in path value", nil)
		return
	}
	endTime := time.Now()
	if raw := r.URL.Query().Get("end_time"); raw != "" {
		endTime, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			logger.Error("close session error: invalid end time")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "end_time must be RFC3339", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	session, err := s.sessionService.CloseSession(ctx, uid, sessionID, endTime)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSessionNotFound):
			logger.Error("close session error: unexist session")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "reading session doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrSessionClosed):
			logger.Error("close session error: already closed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "reading session already closed", nil)
		default:
			logger.Error("close session error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while closing session", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, session)
	logger.Info("reading session closed")
}

func (s *Server) MySessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("sessions list error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	s.writeUserSessions(w, r, logger, uid)
}

func (s *Server) UserSessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("sessions list error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	s.writeUserSessions(w, r, logger, id)
}

func (s *Server) BookSessions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("sessions list error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	bookID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("sessions list error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	page := httputil.ParsePageOpts(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	sessions, err := s.sessionService.UserSessions(ctx, uid, repository.SessionFilter{
		BookID: &bookID,
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		logger.Error("sessions list error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while listing sessions", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, sessions)
}

func (s *Server) ReadingStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reading stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	period := r.URL.Query().Get("period")
	var bookID *uuid.UUID
	if raw := r.URL.Query().Get("book_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Error("reading stats error: invalid book id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id", nil)
			return
		}
		bookID = &id
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	stats, err := s.sessionService.Stats(ctx, uid, period, bookID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidPeriod) {
			logger.Error("reading stats error: unknown period")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "period must be day, week, month or year", nil)
			return
		}
		logger.Error("reading stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while computing reading stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) writeUserSessions(w http.ResponseWriter, r *http.Request, logger *slog.Logger, userID uuid.UUID) {
	page := httputil.ParsePageOpts(r)
	filter := repository.SessionFilter{Limit: page.Limit, Offset: page.Offset}
	if raw := r.URL.Query().Get("book_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Error("sessions list error: invalid book id")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id", nil)
			return
		}
		filter.BookID = &id
	}
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			logger.Error("sessions list error: invalid from time")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "from must be RFC3339", nil)
			return
		}
		filter.From = &from
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			logger.Error("sessions list error: invalid to time")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "to must be RFC3339", nil)
			return
		}
		filter.To = &to
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	sessions, err := s.sessionService.UserSessions(ctx, userID, filter)
	if err != nil {
		logger.Error("sessions list error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while listing sessions", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, sessions)
}
