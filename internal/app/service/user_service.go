package service

import (
	"context"
	"errors"
	"fmt"
	"user_api/internal/common"
	"user_api/internal/domain/model"
	"user_api/internal/domain/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) CreateUser(ctx context.Context, cmd model.CreateUserCommand) (*model.User, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, common.ErrBadRequest
	}

	user, err := s.userRepo.Create(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *UserService) ReadUser(ctx context.Context, query model.ReadUserQuery) (*model.User, error) {
	user, err := s.userRepo.Read(ctx, query)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to read user: %w", err)
	}
	return user, nil
}

// ReadAllUsers softens the repository's empty-result signal into an empty
// collection. Deliberately asymmetric with ReadUser, which turns the same
// signal into a 404.
func (s *UserService) ReadAllUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.ReadAll(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return []model.User{}, nil
		}
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}

func (s *UserService) UpdateUser(ctx context.Context, cmd model.UpdateUserCommand) (*model.User, error) {
	user, err := s.userRepo.Update(ctx, cmd)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, cmd model.DeleteUserCommand) (*model.User, error) {
	user, err := s.userRepo.Delete(ctx, cmd)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return user, nil
}
