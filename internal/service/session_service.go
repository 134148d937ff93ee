package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/pageturn/bookstream/internal/error_values"
	"github.com/pageturn/bookstream/internal/repository"
	"github.com/pageturn/bookstream/pkg/entity"
)

type SessionService struct {
	sessionsRepo repository.SessionsRepositoryI
	booksRepo    repository.BooksRepositoryI
	now          func() time.Time
}

func NewSessionService(sessionsRepo repository.SessionsRepositoryI, booksRepo repository.BooksRepositoryI) *SessionService {
	if sessionsRepo == nil || booksRepo == nil {
		log.Fatal("on session service provided nil repos")
	}
	return &SessionService{
		sessionsRepo: sessionsRepo,
		booksRepo:    booksRepo,
		now:          time.Now,
	}
}

// DurationMinutes derives the stored duration: minutes rounded to nearest,
// clamped at zero so clock skew never produces a negative duration.
func DurationMinutes(start, end time.Time) int {
	minutes := int(math.Round(end.Sub(start).Minutes()))
	if minutes < 0 {
		return 0
	}
	return minutes
}

// StartSession creates a session in the open state, or already closed when
// an end time is supplied with the creation call.
func (ss *SessionService) StartSession(ctx context.Context, userID, bookID uuid.UUID, req *StartSessionRequest) (*entity.ReadingSession, error) {
	if _, err := ss.booksRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, errorvalues.ErrBookNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	start := req.StartTime
	if start.IsZero() {
		start = ss.now()
	}
	session := &entity.ReadingSession{
		ID:        uuid.New(),
		UserID:    userID,
		BookID:    bookID,
		StartTime: start,
	}
	if req.EndTime != nil {
		if req.EndTime.Before(start) {
			return nil, errorvalues.ErrEndBeforeStart
		}
		duration := DurationMinutes(start, *req.EndTime)
		session.EndTime = req.EndTime
		session.DurationMin = &duration
	}
	if err := ss.sessionsRepo.Create(ctx, session); err != nil {
		if errors.Is(err, errorvalues.ErrBookNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	created, err := ss.sessionsRepo.GetByID(ctx, session.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return created, nil
}

// CloseSession transitions an open session to its terminal state. Closing an
// already closed session is rejected, the transition is not idempotent.
func (ss *SessionService) CloseSession(ctx context.Context, userID, sessionID uuid.UUID, endTime time.Time) (*entity.ReadingSession, error) {
	session, err := ss.sessionsRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSessionNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if session.UserID != userID {
		return nil, errorvalues.ErrSessionNotFound
	}
	if session.Closed() {
		return nil, errorvalues.ErrSessionClosed
	}
	duration := DurationMinutes(session.StartTime, endTime)
	if err := ss.sessionsRepo.Close(ctx, sessionID, endTime, duration); err != nil {
		if errors.Is(err, errorvalues.ErrSessionClosed) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	session.EndTime = &endTime
	session.DurationMin = &duration
	return session, nil
}

func (ss *SessionService) UserSessions(ctx context.Context, userID uuid.UUID, filter repository.SessionFilter) ([]*entity.ReadingSession, error) {
	sessions, err := ss.sessionsRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return sessions, nil
}

// Stats aggregates the user's sessions inside the requested period with a
// single pass: open sessions contribute to the count but not to minute sums
// or the average.
func (ss *SessionService) Stats(ctx context.Context, userID uuid.UUID, period string, bookID *uuid.UUID) (*entity.ReadingStats, error) {
	now := ss.now()
	from, err := periodStart(period, now)
	if err != nil {
		return nil, err
	}
	sessions, err := ss.sessionsRepo.GetWindow(ctx, userID, from, now)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	stats := &entity.ReadingStats{
		Period: period,
		From:   from,
		To:     now,
	}
	closedCount := 0
	for _, session := range sessions {
		if bookID != nil && session.BookID != *bookID {
			continue
		}
		stats.SessionCount++
		if stats.FirstSession == nil || session.StartTime.Before(*stats.FirstSession) {
			start := session.StartTime
			stats.FirstSession = &start
		}
		if stats.LastSession == nil || session.StartTime.After(*stats.LastSession) {
			start := session.StartTime
			stats.LastSession = &start
		}
		if session.DurationMin != nil {
			stats.TotalMinutes += *session.DurationMin
			closedCount++
		}
	}
	if closedCount > 0 {
		stats.AvgMinutes = float64(stats.TotalMinutes) / float64(closedCount)
	}
	return stats, nil
}

// periodStart anchors the window in the server's local calendar: day at
// midnight, week at Monday, month and year at their first day.
func periodStart(period string, now time.Time) (time.Time, error) {
	year, month, day := now.Date()
	switch period {
	case "day":
		return time.Date(year, month, day, 0, 0, 0, 0, now.Location()), nil
	case "week":
		weekday := int(now.Weekday())
		// Sunday is 0 in time.Weekday, the week anchors to Monday
		if weekday == 0 {
			weekday = 7
		}
		monday := time.Date(year, month, day, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -(weekday - 1))
		return monday, nil
	case "month":
		return time.Date(year, month, 1, 0, 0, 0, 0, now.Location()), nil
	case "year":
		return time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location()), nil
	default:
		return time.Time{}, errorvalues.ErrInvalidPeriod
	}
}
