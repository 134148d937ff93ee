package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/pageturn/bookstream/internal/error_values"
	"github.com/pageturn/bookstream/internal/service"
	"github.com/pageturn/bookstream/pkg/entity"
	"github.com/pageturn/bookstream/pkg/httputil"
)

type FollowingResponse struct {
	Following []*entity.User `json:"following"`
	Total     int            `json:"total"`
	Page      int            `json:"page"`
	Size      int            `json:"size"`
	Pages     int            `json:"pages"`
}

type FollowersResponse struct {
	Followers []*entity.User `json:"followers"`
	Total     int            `json:"total"`
	Page      int            `json:"page"`
	Size      int            `json:"size"`
	Pages     int            `json:"pages"`
}

func (s *Server) FollowUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("follow error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	followedID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("follow error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.socialService.Follow(ctx, uid, followedID); err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrSelfFollow):
			logger.Error("follow error: self follow attempt")
			httputil.WriteErrorResponse(w, http.StatusConflict, "you can't follow yourself", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("follow error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrAlreadyFollowing):
			logger.Error("follow error: already following")
			httputil.WriteErrorResponse(w, http.StatusConflict, "already following this user", nil)
		default:
			logger.Error("follow error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while following user", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"message": "now following"})
	logger.Info("follow created")
}

func (s *Server) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("unfollow error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	followedID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("unfollow error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.socialService.Unfollow(ctx, uid, followedID); err != nil {
		if errors.Is(err, errorvalues.ErrFollowNotFound) {
			logger.Error("unfollow error: follow doesn't exist")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "you aren't following this user", nil)
			return
		}
		logger.Error("unfollow error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while unfollowing user", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"message": "unfollowed"})
	logger.Info("follow removed")
}

func (s *Server) FollowStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("follow status error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	otherID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("follow status error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	status, err := s.socialService.Status(ctx, uid, otherID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("follow status error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("follow status error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while checking follow status", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, status)
}

func (s *Server) Following(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("following list error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	page := httputil.ParsePageOpts(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	users, total, err := s.socialService.FollowingList(ctx, uid, service.PaginationOpts{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		logger.Error("following list error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while listing followed users", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, FollowingResponse{
		Following: users,
		Total:     total,
		Page:      page.Page(),
		Size:      page.Limit,
		Pages:     page.Pages(total),
	})
}

func (s *Server) Followers(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("followers list error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	page := httputil.ParsePageOpts(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	users, total, err := s.socialService.FollowersList(ctx, uid, service.PaginationOpts{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		logger.Error("followers list error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while listing followers", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, FollowersResponse{
		Followers: users,
		Total:     total,
		Page:      page.Page(),
		Size:      page.Limit,
		Pages:     page.Pages(total),
	})
}

func (s *Server) ActivityFeed(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("activity feed error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	page := httputil.ParsePageOpts(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	feed, err := s.socialService.Feed(ctx, uid, service.PaginationOpts{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		logger.Error("activity feed error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building activity feed", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, feed)
}
