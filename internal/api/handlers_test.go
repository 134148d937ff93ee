package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pageturn/bookstream/internal/api"
	errorvalues "github.com/pageturn/bookstream/internal/error_values"
	"github.com/pageturn/bookstream/internal/repository"
	"github.com/pageturn/bookstream/internal/service"
	"github.com/pageturn/bookstream/internal/service/mocks"
	"github.com/pageturn/bookstream/pkg/entity"
	jwtservice "github.com/pageturn/bookstream/pkg/jwt_service"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	email    = "reader@example.com"
	password = "Str0ng!pass"
	userID   = uuid.New()
)

func testUser() *entity.User {
	return &entity.User{
		ID:            userID,
		Email:         email,
		Name:          "test_reader",
		CurrentStreak: 1,
	}
}

func authedRequest(method, target string, body *bytes.Reader) *http.Request {
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, body)
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	return r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{UserService: uService})
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Email:    email,
		Name:     "test_reader",
		Password: password,
	})
	require.NoError(t, err)
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         []byte
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(testUser(), nil)
			},
			Body: body,
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrEmailTaken)
			},
			Body: body,
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrValidation)
			},
			Body: body,
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("service error"))
			},
			Body: body,
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         []byte("corrupted"),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(tc.Body))
		serv.Register(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwtservice.New("secret"),
	})
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	t.Run("logged in with token", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), email, password).Return(testUser(), nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		serv.Login(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
		require.NoError(t, err)
		token, ok := result["access_token"].(string)
		assert.True(t, ok)
		assert.NotEmpty(t, token)
		assert.Equal(t, "bearer", result["token_type"])
	})
	t.Run("wrong credentials", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), email, password).Return(nil, errorvalues.ErrWrongCredentials)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		serv.Login(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("corrupted"))
		serv.Login(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), email, password).Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		serv.Login(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func testHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := api.GetUIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"uid": "` + uid.String() + `"}`))
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	jwtService := jwtservice.New("secret")
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwtService,
	})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	token, err := jwtService.GenerateToken(testUser())
	require.NoError(t, err)
	t.Run("successful auth", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), userID).Return(testUser(), nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("missing header", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("garbage token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		r.Header.Set("Authorization", "Bearer not.a.token")
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("user deleted after token issued", func(t *testing.T) {
		uService.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestCreateBookHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	bService := mocks.NewMockBookServiceI(ctrl)
	serv := api.New(&api.ServicesList{BookService: bService})
	form := url.Values{}
	form.Set("title", "Dune")
	form.Set("author_name", "Frank Herbert")
	form.Set("publish_date", "1965-08-01")
	bookID := uuid.New()
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				bService.EXPECT().CreateBook(gomock.Any(), userID, gomock.Any()).Return(&entity.Book{
					ID:         bookID,
					UserID:     &userID,
					Title:      "Dune",
					AuthorName: "Frank Herbert",
					CreatedAt:  time.Now(),
				}, nil)
			},
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				bService.EXPECT().CreateBook(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrDuplicateTitle)
			},
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				bService.EXPECT().CreateBook(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrValidation)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				bService.EXPECT().CreateBook(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				bService.EXPECT().CreateBook(gomock.Any(), userID, gomock.Any()).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodPost, "/books", bytes.NewReader([]byte(form.Encode())))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		serv.CreateBook(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestListBooksHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	bService := mocks.NewMockBookServiceI(ctrl)
	serv := api.New(&api.ServicesList{BookService: bService})
	t.Run("listed with filters", func(t *testing.T) {
		bService.EXPECT().ListBooks(gomock.Any(), gomock.Any()).Return([]*entity.Book{
			{ID: uuid.New(), Title: "Dune", AuthorName: "Frank Herbert"},
			{ID: uuid.New(), Title: "Dune Messiah", AuthorName: "Frank Herbert"},
		}, nil)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books?author=Herbert&verified=true", nil)
		serv.ListBooks(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var books []*entity.Book
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&books)
		require.NoError(t, err)
		assert.Len(t, books, 2)
	})
	t.Run("invalid verified filter", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books?verified=maybe", nil)
		serv.ListBooks(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestDeleteBookHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	bService := mocks.NewMockBookServiceI(ctrl)
	serv := api.New(&api.ServicesList{BookService: bService})
	bookID := uuid.New()
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				bService.EXPECT().DeleteBook(gomock.Any(), userID, bookID).Return(nil)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				bService.EXPECT().DeleteBook(gomock.Any(), userID, bookID).Return(errorvalues.ErrBookNotFound)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				bService.EXPECT().DeleteBook(gomock.Any(), userID, bookID).Return(errorvalues.ErrWrongOwner)
			},
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				bService.EXPECT().DeleteBook(gomock.Any(), userID, bookID).Return(errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodDelete, "/books/"+bookID.String(), nil)
		r.SetPathValue("id", bookID.String())
		serv.DeleteBook(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestMarkHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	bService := mocks.NewMockBookServiceI(ctrl)
	serv := api.New(&api.ServicesList{BookService: bService})
	bookID := uuid.New()
	t.Run("marked", func(t *testing.T) {
		bService.EXPECT().MarkBook(gomock.Any(), userID, bookID).Return(nil)
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodPost, "/books/"+bookID.String()+"/mark", nil)
		r.SetPathValue("id", bookID.String())
		serv.MarkBook(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("already marked", func(t *testing.T) {
		bService.EXPECT().MarkBook(gomock.Any(), userID, bookID).Return(errorvalues.ErrAlreadyMarked)
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodPost, "/books/"+bookID.String()+"/mark", nil)
		r.SetPathValue("id", bookID.String())
		serv.MarkBook(rr, r)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("unmark without a mark", func(t *testing.T) {
		bService.EXPECT().UnmarkBook(gomock.Any(), userID, bookID).Return(errorvalues.ErrMarkNotFound)
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodDelete, "/books/"+bookID.String()+"/mark", nil)
		r.SetPathValue("id", bookID.String())
		serv.UnmarkBook(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("is-marked", func(t *testing.T) {
		bService.EXPECT().IsMarked(gomock.Any(), userID, bookID).Return(true, nil)
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodGet, "/books/"+bookID.String()+"/is-marked", nil)
		r.SetPathValue("id", bookID.String())
		serv.IsMarked(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
		require.NoError(t, err)
		assert.Equal(t, true, result["is_marked"])
	})
}

func TestCreateReviewHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	rService := mocks.NewMockReviewServiceI(ctrl)
	serv := api.New(&api.ServicesList{ReviewService: rService})
	bookID := uuid.New()
	rating := 4.5
	body, err := sonic.ConfigDefault.Marshal(api.ReviewRequest{Rating: &rating})
	require.NoError(t, err)
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				rService.EXPECT().CreateReview(gomock.Any(), userID, bookID, gomock.Any()).Return(&entity.Review{
					ID:     uuid.New(),
					UserID: userID,
					BookID: bookID,
					Rating: &rating,
				}, nil)
			},
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				rService.EXPECT().CreateReview(gomock.Any(), userID, bookID, gomock.Any()).Return(nil, errorvalues.ErrValidation)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				rService.EXPECT().CreateReview(gomock.Any(), userID, bookID, gomock.Any()).Return(nil, errorvalues.ErrBookNotFound)
			},
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				rService.EXPECT().CreateReview(gomock.Any(), userID, bookID, gomock.Any()).Return(nil, errorvalues.ErrReviewExists)
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodPost, "/books/"+bookID.String()+"/reviews", bytes.NewReader(body))
		r.SetPathValue("id", bookID.String())
		serv.CreateReview(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestMyReviewsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	rService := mocks.NewMockReviewServiceI(ctrl)
	serv := api.New(&api.ServicesList{ReviewService: rService})
	rating := 4.5
	t.Run("lists caller reviews with book titles", func(t *testing.T) {
		rService.EXPECT().MyReviews(gomock.Any(), userID, service.PaginationOpts{Limit: 20}).Return([]*entity.Review{
			{
				ID:        uuid.New(),
				UserID:    userID,
				BookID:    uuid.New(),
				Rating:    &rating,
				BookTitle: "Dune",
			},
		}, nil)
		rr := httptest.NewRecorder()
		serv.MyReviews(rr, authedRequest(http.MethodGet, "/users/me/reviews", bytes.NewReader(nil)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var reviews []*entity.Review
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&reviews))
		require.Len(t, reviews, 1)
		assert.Equal(t, userID, reviews[0].UserID)
		assert.Equal(t, "Dune", reviews[0].BookTitle)
	})
	t.Run("service error", func(t *testing.T) {
		rService.EXPECT().MyReviews(gomock.Any(), userID, gomock.Any()).Return(nil, errors.New("db error"))
		rr := httptest.NewRecorder()
		serv.MyReviews(rr, authedRequest(http.MethodGet, "/users/me/reviews", bytes.NewReader(nil)))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestSessionHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockSessionServiceI(ctrl)
	serv := api.New(&api.ServicesList{SessionService: sService})
	bookID := uuid.New()
	sessionID := uuid.New()
	t.Run("started with empty body", func(t *testing.T) {
		sService.EXPECT().StartSession(gomock.Any(), userID, bookID, gomock.Any()).Return(&entity.ReadingSession{
			ID:        sessionID,
			UserID:    userID,
			BookID:    bookID,
			StartTime: time.Now(),
		}, nil)
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodPost, "/books/"+bookID.String()+"/reading-sessions", nil)
		r.SetPathValue("id", bookID.String())
		serv.StartSession(rr, r)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	t.Run("end before start", func(t *testing.T) {
		sService.EXPECT().StartSession(gomock.Any(), userID, bookID, gomock.Any()).Return(nil, errorvalues.ErrEndBeforeStart)
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodPost, "/books/"+bookID.String()+"/reading-sessions", nil)
		r.SetPathValue("id", bookID.String())
		serv.StartSession(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("closed", func(t *testing.T) {
		duration := 40
		sService.EXPECT().CloseSession(gomock.Any(), userID, sessionID, gomock.Any()).Return(&entity.ReadingSession{
			ID:          sessionID,
			UserID:      userID,
			BookID:      bookID,
			DurationMin: &duration,
		}, nil)
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodPut, "/reading-sessions/"+sessionID.String(), nil)
		r.SetPathValue("id", sessionID.String())
		serv.CloseSession(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("second close rejected", func(t *testing.T) {
		sService.EXPECT().CloseSession(gomock.Any(), userID, sessionID, gomock.Any()).Return(nil, errorvalues.ErrSessionClosed)
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodPut, "/reading-sessions/"+sessionID.String(), nil)
		r.SetPathValue("id", sessionID.String())
		serv.CloseSession(rr, r)
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("close unexist session", func(t *testing.T) {
		sService.EXPECT().CloseSession(gomock.Any(), userID, sessionID, gomock.Any()).Return(nil, errorvalues.ErrSessionNotFound)
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodPut, "/reading-sessions/"+sessionID.String(), nil)
		r.SetPathValue("id", sessionID.String())
		serv.CloseSession(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("stats", func(t *testing.T) {
		sService.EXPECT().Stats(gomock.Any(), userID, "week", gomock.Nil()).Return(&entity.ReadingStats{
			SessionCount: 2,
			TotalMinutes: 50,
			AvgMinutes:   25,
		}, nil)
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodGet, "/users/me/reading-stats?period=week", nil)
		serv.ReadingStats(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("unknown stats period", func(t *testing.T) {
		sService.EXPECT().Stats(gomock.Any(), userID, "decade", gomock.Nil()).Return(nil, errorvalues.ErrInvalidPeriod)
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodGet, "/users/me/reading-stats?period=decade", nil)
		serv.ReadingStats(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestFollowHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	socService := mocks.NewMockSocialServiceI(ctrl)
	serv := api.New(&api.ServicesList{SocialService: socService})
	otherID := uuid.New()
	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				socService.EXPECT().Follow(gomock.Any(), userID, otherID).Return(nil)
			},
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				socService.EXPECT().Follow(gomock.Any(), userID, otherID).Return(errorvalues.ErrSelfFollow)
			},
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				socService.EXPECT().Follow(gomock.Any(), userID, otherID).Return(errorvalues.ErrUserNotFound)
			},
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				socService.EXPECT().Follow(gomock.Any(), userID, otherID).Return(errorvalues.ErrAlreadyFollowing)
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodPost, "/users/"+otherID.String()+"/follow", nil)
		r.SetPathValue("id", otherID.String())
		serv.FollowUser(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
	t.Run("unfollow without a follow", func(t *testing.T) {
		socService.EXPECT().Unfollow(gomock.Any(), userID, otherID).Return(errorvalues.ErrFollowNotFound)
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodDelete, "/users/"+otherID.String()+"/follow", nil)
		r.SetPathValue("id", otherID.String())
		serv.UnfollowUser(rr, r)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("following envelope", func(t *testing.T) {
		socService.EXPECT().FollowingList(gomock.Any(), userID, service.PaginationOpts{Limit: 20}).Return([]*entity.User{
			{ID: otherID, Name: "other_reader"},
		}, 1, nil)
		rr := httptest.NewRecorder()
		r := authedRequest(http.MethodGet, "/users/me/following", nil)
		serv.Following(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.FollowingResponse
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&resp)
		require.NoError(t, err)
		assert.Len(t, resp.Following, 1)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, 1, resp.Pages)
	})
}

func TestAuthFlowIntegrational(t *testing.T) {
	ctx := context.Background()
	dbCfg := setupUsersTestDB(t)
	pool, err := repository.NewPool(ctx, dbCfg)
	require.NoError(t, err)
	userService := service.NewUserService(repository.NewUsersRepo(pool))
	serv := api.New(&api.ServicesList{
		UserService: userService,
		JwtService:  jwtservice.New("secret"),
		Health:      pool,
	})
	handler := serv.Handler()
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Email:    email,
		Name:     "test_reader",
		Password: password,
	})
	require.NoError(t, err)
	t.Run("healthy", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/health", nil)
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("registered", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})
	var token string
	t.Run("logged in", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result)
		require.NoError(t, err)
		var ok bool
		token, ok = result["access_token"].(string)
		require.True(t, ok)
		require.NotEmpty(t, token)
	})
	t.Run("own profile with token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var user entity.User
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&user)
		require.NoError(t, err)
		assert.Equal(t, email, user.Email)
		assert.Equal(t, 1, user.CurrentStreak)
	})
	t.Run("own profile without token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupUsersTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("bookstream"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	connStr, err := container.ConnectionString(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	connStr += "sslmode=disable"
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	err = goose.Up(conn, "../../migrations")
	if err != nil {
		t.Fatal(err)
	}

	conn.Close()
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	return &testPGConfig{
		connStr: connStr,
	}
}
