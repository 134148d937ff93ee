package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/pageturn/bookstream/internal/error_values"
	"github.com/pageturn/bookstream/internal/repository"
	"github.com/pageturn/bookstream/internal/service"
	"github.com/pageturn/bookstream/pkg/entity"
	"github.com/pageturn/bookstream/pkg/httputil"
)

const publishDateLayout = "2006-01-02"

type UpdateBookRequest struct {
	Title       *string `json:"title"`
	AuthorName  *string `json:"author_name"`
	PublishDate *string `json:"publish_date"`
}

// coverPath turns the stored cover filename into the public images route.
func coverPath(book *entity.Book) *entity.Book {
	if book.CoverURL != nil {
		path := "/images/" + *book.CoverURL
		book.CoverURL = &path
	}
	return book
}

func (s *Server) CreateBook(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create book error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	req := service.CreateBookRequest{
		Title:      r.FormValue("title"),
		AuthorName: r.FormValue("author_name"),
	}
	if raw := r.FormValue("publish_date"); raw != "" {
		date, err := time.Parse(publishDateLayout, raw)
		if err != nil {
			logger.Error("create book error: invalid publish date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "publish_date must be YYYY-MM-DD", nil)
			return
		}
		req.PublishDate = &date
	}
	file, header, err := r.FormFile("cover_image")
	if err == nil {
		defer file.Close()
		req.Cover = &service.CoverUpload{
			Ext:     filepath.Ext(header.Filename),
			Content: file,
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	book, err := s.bookService.CreateBook(ctx, uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("create book error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrDuplicateTitle):
			logger.Error("create book error: duplicate title")
			httputil.WriteErrorResponse(w, http.StatusConflict, "you already have a book with this title", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create book error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("create book error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating book", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, coverPath(book))
	logger.Info("book created", slog.String("book_id", book.ID.String()))
}

func (s *Server) GetBook(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get book error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	book, err := s.bookService.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBookNotFound) {
			logger.Error("get book error: unexist book")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "book doesn't exist", nil)
			return
		}
		logger.Error("get book error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting book", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, coverPath(book))
}

func (s *Server) ListBooks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	page := httputil.ParsePageOpts(r)
	filter := repository.BookFilter{
		Title:  r.URL.Query().Get("title"),
		Author: r.URL.Query().Get("author"),
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	if raw := r.URL.Query().Get("verified"); raw != "" {
		verified, err := strconv.ParseBool(raw)
		if err != nil {
			logger.Error("list books error: invalid verified filter")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "verified must be a boolean", nil)
			return
		}
		filter.Verified = &verified
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	books, err := s.bookService.ListBooks(ctx, filter)
	if err != nil {
		logger.Error("list books error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while listing books", nil)
		return
	}
	for _, book := range books {
		coverPath(book)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, books)
}

func (s *Server) UpdateBook(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update book error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update book error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	var req UpdateBookRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("update book error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	update := service.UpdateBookRequest{
		Title:      req.Title,
		AuthorName: req.AuthorName,
	}
	if req.PublishDate != nil {
		date, err := time.Parse(publishDateLayout, *req.PublishDate)
		if err != nil {
			logger.Error("update book error: invalid publish date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "publish_date must be YYYY-MM-DD", nil)
			return
		}
		update.PublishDate = &date
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	book, err := s.bookService.UpdateBook(ctx, uid, id, &update)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("update book error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrDuplicateTitle):
			logger.Error("update book error: duplicate title")
			httputil.WriteErrorResponse(w, http.StatusConflict, "you already have a book with this title", nil)
		case errors.Is(err, errorvalues.ErrBookNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update book error: unexist book")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "book doesn't exist", nil)
		default:
			logger.Error("update book error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating book", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, coverPath(book))
	logger.Info("book updated")
}

func (s *Server) DeleteBook(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("book deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("book deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.bookService.DeleteBook(ctx, uid, id); err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrBookNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("book deletion error: unexist book")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "book doesn't exist", nil)
		default:
			logger.Error("book deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting book", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"message": "book deleted"})
	logger.Info("book deleted")
}

func (s *Server) VerifyBook(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("verify book error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	verified, err := strconv.ParseBool(r.URL.Query().Get("verify"))
	if err != nil {
		logger.Error("verify book error: invalid verify parameter")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "verify must be a boolean", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.bookService.SetVerified(ctx, id, verified); err != nil {
		if errors.Is(err, errorvalues.ErrBookNotFound) {
			logger.Error("verify book error: unexist book")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "book doesn't exist", nil)
			return
		}
		logger.Error("verify book error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while verifying book", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"book_id": id.String(), "is_verified": verified})
	logger.Info("book verification changed")
}

func (s *Server) BookStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.bookService.Stats(ctx)
	if err != nil {
		logger.Error("book stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting catalog stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) MarkBook(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("mark book error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("mark book error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.bookService.MarkBook(ctx, uid, id); err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrBookNotFound):
			logger.Error("mark book error: unexist book")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "book doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrAlreadyMarked):
			logger.Error("mark book error: already marked")
			httputil.WriteErrorResponse(w, http.StatusConflict, "book already marked", nil)
		default:
			logger.Error("mark book error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while marking book", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"message": "book marked"})
	logger.Info("book marked")
}

func (s *Server) UnmarkBook(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("unmark book error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("unmark book error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.bookService.UnmarkBook(ctx, uid, id); err != nil {
		if errors.Is(err, errorvalues.ErrMarkNotFound) {
			logger.Error("unmark book error: mark doesn't exist")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "book isn't marked", nil)
			return
		}
		logger.Error("unmark book error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while unmarking book", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"message": "mark removed"})
	logger.Info("book unmarked")
}

func (s *Server) IsMarked(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("is-marked error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("is-marked error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid book id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	marked, err := s.bookService.IsMarked(ctx, uid, id)
	if err != nil {
		logger.Error("is-marked error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while checking mark", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"is_marked": marked})
}

func (s *Server) MyMarks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("marks list error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	page := httputil.ParsePageOpts(r)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	marked, err := s.bookService.MarkedBooks(ctx, uid, service.PaginationOpts{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		logger.Error("marks list error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while listing marked books", nil)
		return
	}
	for _, mb := range marked {
		coverPath(&mb.Book)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, marked)
}
