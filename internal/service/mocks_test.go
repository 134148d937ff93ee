package service_test

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/pageturn/bookstream/internal/error_values"
	"github.com/pageturn/bookstream/internal/repository"
	"github.com/pageturn/bookstream/pkg/entity"
)

// In-memory fakes backing the service tests. Each keeps just enough state
// for the behavior under test.

type fakeBooksRepo struct {
	books     map[uuid.UUID]*entity.Book
	createErr error
}

func newFakeBooksRepo() *fakeBooksRepo {
	return &fakeBooksRepo{books: make(map[uuid.UUID]*entity.Book)}
}

func (f *fakeBooksRepo) Create(ctx context.Context, book *entity.Book) (*entity.Book, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	copied := *book
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = time.Now()
	}
	f.books[copied.ID] = &copied
	return &copied, nil
}

func (f *fakeBooksRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	book, ok := f.books[id]
	if !ok {
		return nil, errorvalues.ErrBookNotFound
	}
	copied := *book
	return &copied, nil
}

func (f *fakeBooksRepo) List(ctx context.Context, filter repository.BookFilter) ([]*entity.Book, error) {
	result := make([]*entity.Book, 0, len(f.books))
	for _, book := range f.books {
		result = append(result, book)
	}
	return result, nil
}

func (f *fakeBooksRepo) Update(ctx context.Context, book *entity.Book) error {
	if _, ok := f.books[book.ID]; !ok {
		return errorvalues.ErrBookNotFound
	}
	copied := *book
	f.books[book.ID] = &copied
	return nil
}

func (f *fakeBooksRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.books[id]; !ok {
		return errorvalues.ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

func (f *fakeBooksRepo) TitleExists(ctx context.Context, ownerID uuid.UUID, title string, exclude *uuid.UUID) (bool, error) {
	normalized := normalizeTitle(title)
	for id, book := range f.books {
		if exclude != nil && id == *exclude {
			continue
		}
		if book.UserID != nil && *book.UserID == ownerID && normalizeTitle(book.Title) == normalized {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBooksRepo) SetVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	book, ok := f.books[id]
	if !ok {
		return errorvalues.ErrBookNotFound
	}
	book.IsVerified = verified
	return nil
}

func (f *fakeBooksRepo) Stats(ctx context.Context) (*entity.BookStats, error) {
	return &entity.BookStats{TotalBooks: len(f.books)}, nil
}

func normalizeTitle(title string) string {
	result := make([]rune, 0, len(title))
	for _, r := range title {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		result = append(result, r)
	}
	start, end := 0, len(result)
	for start < end && result[start] == ' ' {
		start++
	}
	for end > start && result[end-1] == ' ' {
		end--
	}
	return string(result[start:end])
}

type fakeMarksRepo struct {
	marks map[[2]uuid.UUID]time.Time
}

func newFakeMarksRepo() *fakeMarksRepo {
	return &fakeMarksRepo{marks: make(map[[2]uuid.UUID]time.Time)}
}

func (f *fakeMarksRepo) Create(ctx context.Context, userID, bookID uuid.UUID) error {
	key := [2]uuid.UUID{userID, bookID}
	if _, ok := f.marks[key]; ok {
		return errorvalues.ErrAlreadyMarked
	}
	f.marks[key] = time.Now()
	return nil
}

func (f *fakeMarksRepo) Delete(ctx context.Context, userID, bookID uuid.UUID) error {
	key := [2]uuid.UUID{userID, bookID}
	if _, ok := f.marks[key]; !ok {
		return errorvalues.ErrMarkNotFound
	}
	delete(f.marks, key)
	return nil
}

func (f *fakeMarksRepo) Exists(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	_, ok := f.marks[[2]uuid.UUID{userID, bookID}]
	return ok, nil
}

func (f *fakeMarksRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.MarkedBook, error) {
	return nil, nil
}

type fakeReviewsRepo struct {
	reviews map[uuid.UUID]*entity.Review
}

func newFakeReviewsRepo() *fakeReviewsRepo {
	return &fakeReviewsRepo{reviews: make(map[uuid.UUID]*entity.Review)}
}

func (f *fakeReviewsRepo) Create(ctx context.Context, review *entity.Review) error {
	for _, existing := range f.reviews {
		if existing.UserID == review.UserID && existing.BookID == review.BookID {
			return errorvalues.ErrReviewExists
		}
	}
	copied := *review
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	f.reviews[copied.ID] = &copied
	return nil
}

func (f *fakeReviewsRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, errorvalues.ErrReviewNotFound
	}
	copied := *review
	return &copied, nil
}

func (f *fakeReviewsRepo) ListByBook(ctx context.Context, bookID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	result := make([]*entity.Review, 0)
	for _, review := range f.reviews {
		if review.BookID == bookID {
			result = append(result, review)
		}
	}
	return result, nil
}

func (f *fakeReviewsRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	result := make([]*entity.Review, 0)
	for _, review := range f.reviews {
		if review.UserID == userID {
			result = append(result, review)
		}
	}
	return result, nil
}

func (f *fakeReviewsRepo) Update(ctx context.Context, review *entity.Review) error {
	if _, ok := f.reviews[review.ID]; !ok {
		return errorvalues.ErrReviewNotFound
	}
	copied := *review
	copied.UpdatedAt = time.Now()
	f.reviews[review.ID] = &copied
	return nil
}

func (f *fakeReviewsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.reviews[id]; !ok {
		return errorvalues.ErrReviewNotFound
	}
	delete(f.reviews, id)
	return nil
}

func (f *fakeReviewsRepo) SummaryByBook(ctx context.Context, bookID uuid.UUID) (*entity.ReviewSummary, error) {
	summary := &entity.ReviewSummary{BookID: bookID}
	var sum float64
	var rated int
	for _, review := range f.reviews {
		if review.BookID != bookID {
			continue
		}
		summary.ReviewCount++
		if review.Rating != nil {
			sum += *review.Rating
			rated++
		}
	}
	if rated > 0 {
		avg := sum / float64(rated)
		summary.AverageRating = &avg
	}
	return summary, nil
}

type fakeSessionsRepo struct {
	sessions map[uuid.UUID]*entity.ReadingSession
}

func newFakeSessionsRepo() *fakeSessionsRepo {
	return &fakeSessionsRepo{sessions: make(map[uuid.UUID]*entity.ReadingSession)}
}

func (f *fakeSessionsRepo) Create(ctx context.Context, session *entity.ReadingSession) error {
	copied := *session
	copied.CreatedAt = time.Now()
	f.sessions[copied.ID] = &copied
	return nil
}

func (f *fakeSessionsRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReadingSession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, errorvalues.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionsRepo) Close(ctx context.Context, id uuid.UUID, endTime time.Time, durationMin int) error {
	session, ok := f.sessions[id]
	if !ok || session.EndTime != nil {
		return errorvalues.ErrSessionClosed
	}
	session.EndTime = &endTime
	session.DurationMin = &durationMin
	return nil
}

func (f *fakeSessionsRepo) ListByUser(ctx context.Context, userID uuid.UUID, filter repository.SessionFilter) ([]*entity.ReadingSession, error) {
	result := make([]*entity.ReadingSession, 0)
	for _, session := range f.sessions {
		if session.UserID == userID {
			result = append(result, session)
		}
	}
	return result, nil
}

func (f *fakeSessionsRepo) GetWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.ReadingSession, error) {
	result := make([]*entity.ReadingSession, 0)
	for _, session := range f.sessions {
		if session.UserID != userID {
			continue
		}
		if session.StartTime.Before(from) || session.StartTime.After(to) {
			continue
		}
		result = append(result, session)
	}
	return result, nil
}

type fakeFollowsRepo struct {
	follows map[[2]uuid.UUID]bool
}

func newFakeFollowsRepo() *fakeFollowsRepo {
	return &fakeFollowsRepo{follows: make(map[[2]uuid.UUID]bool)}
}

func (f *fakeFollowsRepo) Create(ctx context.Context, followerID, followedID uuid.UUID) error {
	key := [2]uuid.UUID{followerID, followedID}
	if f.follows[key] {
		return errorvalues.ErrAlreadyFollowing
	}
	f.follows[key] = true
	return nil
}

func (f *fakeFollowsRepo) Delete(ctx context.Context, followerID, followedID uuid.UUID) error {
	key := [2]uuid.UUID{followerID, followedID}
	if !f.follows[key] {
		return errorvalues.ErrFollowNotFound
	}
	delete(f.follows, key)
	return nil
}

func (f *fakeFollowsRepo) Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	return f.follows[[2]uuid.UUID{followerID, followedID}], nil
}

func (f *fakeFollowsRepo) Following(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeFollowsRepo) CountFollowing(ctx context.Context, userID uuid.UUID) (int, error) {
	count := 0
	for key := range f.follows {
		if key[0] == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeFollowsRepo) Followers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeFollowsRepo) CountFollowers(ctx context.Context, userID uuid.UUID) (int, error) {
	count := 0
	for key := range f.follows {
		if key[1] == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeFollowsRepo) ActivityFeed(ctx context.Context, followerID uuid.UUID, limit, offset int) ([]*entity.ActivityEvent, error) {
	return nil, nil
}

type fakeUsersRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUsersRepo) Create(ctx context.Context, user *entity.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return errorvalues.ErrEmailTaken
		}
	}
	copied := *user
	copied.CreatedAt = time.Now()
	f.users[copied.ID] = &copied
	return nil
}

func (f *fakeUsersRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}

func (f *fakeUsersRepo) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, ok := f.users[uid]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUsersRepo) UpdateProfile(ctx context.Context, user *entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return errorvalues.ErrUserNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUsersRepo) UpdateStreak(ctx context.Context, uid uuid.UUID, current, last int, lastLogin time.Time) error {
	user, ok := f.users[uid]
	if !ok {
		return errorvalues.ErrUserNotFound
	}
	user.CurrentStreak = current
	user.LastStreak = last
	login := lastLogin
	user.LastLogin = &login
	return nil
}

func (f *fakeUsersRepo) Delete(ctx context.Context, uid uuid.UUID) error {
	if _, ok := f.users[uid]; !ok {
		return errorvalues.ErrUserNotFound
	}
	delete(f.users, uid)
	return nil
}

func (f *fakeUsersRepo) SearchByName(ctx context.Context, query string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUsersRepo) CountByName(ctx context.Context, query string) (int, error) {
	return len(f.users), nil
}

type fakeCoverStore struct {
	saved   []string
	deleted []string
	saveErr error
}

func (f *fakeCoverStore) Save(suggestedName string, r io.Reader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, suggestedName)
	return suggestedName, nil
}

func (f *fakeCoverStore) Delete(storedName string) bool {
	f.deleted = append(f.deleted, storedName)
	return true
}
