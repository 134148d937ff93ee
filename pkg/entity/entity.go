package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID  `json:"user_id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	PasswordHash  string     `json:"-"`
	CurrentStreak int        `json:"current_streak"`
	LastStreak    int        `json:"last_streak"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Book's owner is nullable: deleting a user disowns their books instead of
// removing them.
type Book struct {
	ID          uuid.UUID  `json:"book_id"`
	UserID      *uuid.UUID `json:"user_id"`
	Title       string     `json:"title"`
	AuthorName  string     `json:"author_name"`
	PublishDate *time.Time `json:"publish_date,omitempty"`
	IsVerified  bool       `json:"is_verified"`
	CoverURL    *string    `json:"cover_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type Mark struct {
	UserID   uuid.UUID `json:"user_id"`
	BookID   uuid.UUID `json:"book_id"`
	MarkedAt time.Time `json:"marked_at"`
}

// MarkedBook is a book joined with the caller's mark timestamp.
type MarkedBook struct {
	Book
	MarkedAt time.Time `json:"marked_at"`
}

type Review struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	BookID        uuid.UUID `json:"book_id"`
	Rating        *float64  `json:"rating"`
	ReviewComment *string   `json:"review_comment"`
	UserName      string    `json:"user_name,omitempty"`
	BookTitle     string    `json:"book_title,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReviewSummary struct {
	BookID        uuid.UUID `json:"book_id"`
	ReviewCount   int       `json:"review_count"`
	AverageRating *float64  `json:"average_rating"`
}

// ReadingSession is open while EndTime is nil and closed once it is set.
// DurationMin is derived on close and never negative.
type ReadingSession struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	BookID      uuid.UUID  `json:"book_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	DurationMin *int       `json:"duration_min"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (s *ReadingSession) Closed() bool {
	return s.EndTime != nil
}

type ReadingStats struct {
	Period       string     `json:"period,omitempty"`
	From         time.Time  `json:"from"`
	To           time.Time  `json:"to"`
	SessionCount int        `json:"session_count"`
	TotalMinutes int        `json:"total_minutes"`
	AvgMinutes   float64    `json:"avg_minutes"`
	FirstSession *time.Time `json:"first_session,omitempty"`
	LastSession  *time.Time `json:"last_session,omitempty"`
}

type Follow struct {
	FollowerID uuid.UUID `json:"follower_id"`
	FollowedID uuid.UUID `json:"followed_id"`
	FollowedAt time.Time `json:"followed_at"`
}

type FollowStatus struct {
	IsFollowing  bool `json:"is_following"`
	IsFollowedBy bool `json:"is_followed_by"`
}

type ActivityKind string

const (
	ActivityBookAdded      ActivityKind = "book_added"
	ActivityReviewAdded    ActivityKind = "review_added"
	ActivityReadingSession ActivityKind = "reading_session"
)

// ActivityEvent is one entry of the followed-users feed. ActivityTime is the
// sole sort key, events of different kinds are never deduplicated.
type ActivityEvent struct {
	Kind         ActivityKind `json:"kind"`
	UserID       uuid.UUID    `json:"user_id"`
	UserName     string       `json:"user_name"`
	BookID       uuid.UUID    `json:"book_id"`
	BookTitle    string       `json:"book_title"`
	Rating       *float64     `json:"rating,omitempty"`
	DurationMin  *int         `json:"duration_min,omitempty"`
	ActivityTime time.Time    `json:"activity_time"`
}

type BookStats struct {
	TotalBooks    int `json:"total_books"`
	VerifiedBooks int `json:"verified_books"`
	TotalReviews  int `json:"total_reviews"`
	TotalSessions int `json:"total_sessions"`
}
