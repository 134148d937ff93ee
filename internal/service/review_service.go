package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/pageturn/bookstream/internal/error_values"
	"github.com/pageturn/bookstream/internal/repository"
	"github.com/pageturn/bookstream/pkg/entity"
)

var errRatingOutOfBounds = fmt.Errorf("%w: rating must be between 0.0 and 5.0", errorvalues.ErrValidation)

type ReviewService struct {
	reviewsRepo repository.ReviewsRepositoryI
	booksRepo   repository.BooksRepositoryI
}

func NewReviewService(reviewsRepo repository.ReviewsRepositoryI, booksRepo repository.BooksRepositoryI) *ReviewService {
	if reviewsRepo == nil || booksRepo == nil {
		log.Fatal("on review service provided nil repos")
	}
	return &ReviewService{
		reviewsRepo: reviewsRepo,
		booksRepo:   booksRepo,
	}
}

func (rs *ReviewService) CreateReview(ctx context.Context, userID, bookID uuid.UUID, req *ReviewRequest) (*entity.Review, error) {
	if !RatingInBounds(req.Rating) {
		return nil, errRatingOutOfBounds
	}
	if _, err := rs.booksRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, errorvalues.ErrBookNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	review := &entity.Review{
		ID:            uuid.New(),
		UserID:        userID,
		BookID:        bookID,
		Rating:        req.Rating,
		ReviewComment: req.ReviewComment,
	}
	err := rs.reviewsRepo.Create(ctx, review)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrReviewExists), errors.Is(err, errorvalues.ErrBookNotFound):
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	created, err := rs.reviewsRepo.GetByID(ctx, review.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return created, nil
}

func (rs *ReviewService) BookReviews(ctx context.Context, bookID uuid.UUID, pagination PaginationOpts) ([]*entity.Review, error) {
	reviews, err := rs.reviewsRepo.ListByBook(ctx, bookID, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return reviews, nil
}

func (rs *ReviewService) MyReviews(ctx context.Context, userID uuid.UUID, pagination PaginationOpts) ([]*entity.Review, error) {
	reviews, err := rs.reviewsRepo.ListByUser(ctx, userID, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return reviews, nil
}

func (rs *ReviewService) Summary(ctx context.Context, bookID uuid.UUID) (*entity.ReviewSummary, error) {
	if _, err := rs.booksRepo.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, errorvalues.ErrBookNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	summary, err := rs.reviewsRepo.SummaryByBook(ctx, bookID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return summary, nil
}

func (rs *ReviewService) UpdateReview(ctx context.Context, userID, reviewID uuid.UUID, req *ReviewRequest) (*entity.Review, error) {
	if !RatingInBounds(req.Rating) {
		return nil, errRatingOutOfBounds
	}
	review, err := rs.ownedReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}
	if req.Rating != nil {
		review.Rating = req.Rating
	}
	if req.ReviewComment != nil {
		review.ReviewComment = req.ReviewComment
	}
	if err := rs.reviewsRepo.Update(ctx, review); err != nil {
		if errors.Is(err, errorvalues.ErrReviewNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	updated, err := rs.reviewsRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return updated, nil
}

func (rs *ReviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	if _, err := rs.ownedReview(ctx, userID, reviewID); err != nil {
		return err
	}
	if err := rs.reviewsRepo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, errorvalues.ErrReviewNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

// A foreign review is reported as missing, same policy as books.
func (rs *ReviewService) ownedReview(ctx context.Context, userID, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := rs.reviewsRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrReviewNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if review.UserID != userID {
		return nil, errorvalues.ErrReviewNotFound
	}
	return review, nil
}
