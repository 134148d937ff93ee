package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pageturn/bookstream/internal/service"
)

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	bookService    service.BookServiceI
	reviewService  service.ReviewServiceI
	sessionService service.SessionServiceI
	socialService  service.SocialServiceI
	jwtService     JWTServiceI
	health         HealthChecker
	imagesDir      string
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type ServicesList struct {
	UserService    service.UserServiceI
	BookService    service.BookServiceI
	ReviewService  service.ReviewServiceI
	SessionService service.SessionServiceI
	SocialService  service.SocialServiceI
	JwtService     JWTServiceI
	Health         HealthChecker
	ImagesDir      string
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		bookService:    servicesOptions.BookService,
		reviewService:  servicesOptions.ReviewService,
		sessionService: servicesOptions.SessionService,
		socialService:  servicesOptions.SocialService,
		jwtService:     servicesOptions.JwtService,
		health:         servicesOptions.Health,
		imagesDir:      servicesOptions.ImagesDir,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)

	s.mx.Get("/health", s.Health)
	s.mx.Post("/auth/register", s.Register)
	s.mx.Post("/auth/login", s.Login)

	s.mx.Get("/books", s.ListBooks)
	s.mx.Get("/books/stats", s.BookStats)
	s.mx.Get("/books/{id}", s.GetBook)
	s.mx.Get("/books/{id}/reviews", s.BookReviews)
	s.mx.Get("/books/{id}/reviews/summary", s.ReviewSummary)
	s.mx.Patch("/admin/books/{id}/verify", s.VerifyBook)

	if s.imagesDir != "" {
		s.mx.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(s.imagesDir))))
	}

	s.mx.Group(func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

		r.Get("/users", s.SearchUsers)
		r.Get("/users/me", s.Me)
		r.Put("/users/me", s.UpdateMe)
		r.Delete("/users/me", s.DeleteMe)
		r.Get("/users/{id}/profile", s.UserProfile)
		r.Get("/users/{id}/reading-sessions", s.UserSessions)

		r.Post("/books", s.CreateBook)
		r.Put("/books/{id}", s.UpdateBook)
		r.Delete("/books/{id}", s.DeleteBook)

		r.Post("/books/{id}/mark", s.MarkBook)
		r.Delete("/books/{id}/mark", s.UnmarkBook)
		r.Get("/books/{id}/is-marked", s.IsMarked)
		r.Get("/users/me/marks", s.MyMarks)

		r.Get("/users/me/reviews", s.MyReviews)
		r.Post("/books/{id}/reviews", s.CreateReview)
		r.Put("/reviews/{id}", s.UpdateReview)
		r.Delete("/reviews/{id}", s.DeleteReview)

		r.Post("/books/{id}/reading-sessions", s.StartSession)
		r.Put("/reading-sessions/{id}", s.CloseSession)
		r.Get("/users/me/reading-sessions", s.MySessions)
		r.Get("/books/{id}/reading-sessions", s.BookSessions)
		r.Get("/users/me/reading-stats", s.ReadingStats)

		r.Post("/users/{id}/follow", s.FollowUser)
		r.Delete("/users/{id}/follow", s.UnfollowUser)
		r.Get("/users/{id}/follow-status", s.FollowStatus)
		r.Get("/users/me/following", s.Following)
		r.Get("/users/me/followers", s.Followers)
		r.Get("/users/me/following/activity", s.ActivityFeed)
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.mx)
}
