package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/pageturn/bookstream/internal/error_values"
	"github.com/pageturn/bookstream/internal/repository"
	"github.com/pageturn/bookstream/pkg/entity"
)

type UserService struct {
	repo repository.UsersRepositoryI
	now  func() time.Time
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	return &UserService{
		repo: usersRepo,
		now:  time.Now,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrValidation
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	user := &entity.User{
		ID:           uuid.New(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(passwordHash),
	}
	err = us.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEmailTaken) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	created, err := us.repo.FindByID(ctx, user.ID)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return created, nil
}

// Login verifies credentials and applies the streak transition. The streak
// update is a single statement and re-running it with the same inputs is a
// no-op, so there is no retry handling here.
func (us *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := us.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	now := us.now()
	streak := ComputeStreak(user.LastLogin, user.CurrentStreak, now)
	if streak.Changed {
		if err := us.repo.UpdateStreak(ctx, user.ID, streak.Current, streak.Previous, now); err != nil {
			return nil, errors.New("repository streak update error: " + err.Error())
		}
		user.CurrentStreak = streak.Current
		user.LastStreak = streak.Previous
		user.LastLogin = &now
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if req.Name != nil {
		if err := validate.Var(*req.Name, "required,min=1,max=100"); err != nil {
			return nil, fmt.Errorf("%w: invalid name", errorvalues.ErrValidation)
		}
		user.Name = *req.Name
	}
	if req.Password != nil {
		if err := validate.Var(*req.Password, "required,password_strength"); err != nil {
			return nil, fmt.Errorf("%w: weak password", errorvalues.ErrValidation)
		}
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.New("hashing password error: " + err.Error())
		}
		user.PasswordHash = string(passwordHash)
	}
	if err := us.repo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	err := us.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}

func (us *UserService) Search(ctx context.Context, query string, pagination PaginationOpts) ([]*entity.User, int, error) {
	users, err := us.repo.SearchByName(ctx, query, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, 0, errors.New("repository searching error: " + err.Error())
	}
	total, err := us.repo.CountByName(ctx, query)
	if err != nil {
		return nil, 0, errors.New("repository counting error: " + err.Error())
	}
	return users, total, nil
}
