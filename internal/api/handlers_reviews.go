package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/pageturn/bookstream/internal/error_values"
	"github.com/pageturn/bookstream/internal/service"
	"github.com/pageturn/bookstream/pkg/httputil"
)

type ReviewRequest struct {
	Rating        *float64 `json:"rating"`
	ReviewComment *string  `json:"review_comment"`
}

func (s *Server) CreateReview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create review error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	bookID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("create review error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	var req ReviewRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("create review error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	review, err := s.reviewService.CreateReview(ctx, uid, bookID, &service.ReviewRequest{
		Rating:        req.Rating,
		ReviewComment: req.ReviewComment,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create review error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrBookNotFound):
			logger.Error("create review error: unexist book")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "book doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrReviewExists):
			logger.Error("create review error: already reviewed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "you already reviewed this book", nil)
		default:
			logger.Error("create review error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating review", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, review)
	logger.Info("review created")
}

func (s *Server) BookReviews(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	bookID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("reviews list error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	page := httputil.ParsePageOpts(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	reviews, err := s.reviewService.BookReviews(ctx, bookID, service.PaginationOpts{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		logger.Error("reviews list error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while listing reviews", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reviews)
}

func (s *Server) MyReviews(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("my reviews error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	page := httputil.ParsePageOpts(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	reviews, err := s.reviewService.MyReviews(ctx, uid, service.PaginationOpts{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		logger.Error("my reviews error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while listing reviews", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reviews)
}

func (s *Server) ReviewSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	bookID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("review summary error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	summary, err := s.reviewService.Summary(ctx, bookID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBookNotFound) {
			logger.Error("review summary error: unexist book")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "book doesn't exist", nil)
			return
		}
		logger.Error("review summary error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting review summary", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
}

func (s *Server) UpdateReview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update review error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	reviewID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update review error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid review id in path value", nil)
		return
	}
	var req ReviewRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("update review error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	review, err := s.reviewService.UpdateReview(ctx, uid, reviewID, &service.ReviewRequest{
		Rating:        req.Rating,
		ReviewComment: req.ReviewComment,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update review error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrReviewNotFound):
			logger.Error("update review error: unexist review")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "review doesn't exist", nil)
		default:
			logger.Error("update review error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating review", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, review)
	logger.Info("review updated")
}

func (s *Server) DeleteReview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("review deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	reviewID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("review deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid review id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.reviewService.DeleteReview(ctx, uid, reviewID); err != nil {
		if errors.Is(err, errorvalues.ErrReviewNotFound) {
			logger.Error("review deletion error: unexist review")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "review doesn't exist", nil)
			return
		}
		logger.Error("review deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting review", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"message": "review deleted"})
	logger.Info("review deleted")
}
