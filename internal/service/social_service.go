package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/pageturn/bookstream/internal/error_values"
	"github.com/pageturn/bookstream/internal/repository"
	"github.com/pageturn/bookstream/pkg/entity"
)

type SocialService struct {
	followsRepo repository.FollowsRepositoryI
	usersRepo   repository.UsersRepositoryI
}

func NewSocialService(followsRepo repository.FollowsRepositoryI, usersRepo repository.UsersRepositoryI) *SocialService {
	if followsRepo == nil || usersRepo == nil {
		log.Fatal("on social service provided nil repos")
	}
	return &SocialService{
		followsRepo: followsRepo,
		usersRepo:   usersRepo,
	}
}

func (ss *SocialService) Follow(ctx context.Context, followerID, followedID uuid.UUID) error {
	if followerID == followedID {
		return errorvalues.ErrSelfFollow
	}
	if _, err := ss.usersRepo.FindByID(ctx, followedID); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	err := ss.followsRepo.Create(ctx, followerID, followedID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlreadyFollowing), errors.Is(err, errorvalues.ErrUserNotFound):
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (ss *SocialService) Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error {
	err := ss.followsRepo.Delete(ctx, followerID, followedID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFollowNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (ss *SocialService) Status(ctx context.Context, callerID, otherID uuid.UUID) (*entity.FollowStatus, error) {
	if _, err := ss.usersRepo.FindByID(ctx, otherID); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	following, err := ss.followsRepo.Exists(ctx, callerID, otherID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	followedBy, err := ss.followsRepo.Exists(ctx, otherID, callerID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return &entity.FollowStatus{
		IsFollowing:  following,
		IsFollowedBy: followedBy,
	}, nil
}

func (ss *SocialService) FollowingList(ctx context.Context, userID uuid.UUID, pagination PaginationOpts) ([]*entity.User, int, error) {
	users, err := ss.followsRepo.Following(ctx, userID, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, 0, errors.New("repository error: " + err.Error())
	}
	total, err := ss.followsRepo.CountFollowing(ctx, userID)
	if err != nil {
		return nil, 0, errors.New("repository error: " + err.Error())
	}
	return users, total, nil
}

func (ss *SocialService) FollowersList(ctx context.Context, userID uuid.UUID, pagination PaginationOpts) ([]*entity.User, int, error) {
	users, err := ss.followsRepo.Followers(ctx, userID, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, 0, errors.New("repository error: " + err.Error())
	}
	total, err := ss.followsRepo.CountFollowers(ctx, userID)
	if err != nil {
		return nil, 0, errors.New("repository error: " + err.Error())
	}
	return users, total, nil
}

func (ss *SocialService) Feed(ctx context.Context, userID uuid.UUID, pagination PaginationOpts) ([]*entity.ActivityEvent, error) {
	events, err := ss.followsRepo.ActivityFeed(ctx, userID, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return events, nil
}
