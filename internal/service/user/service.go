package user

import (
	"context"
	"fmt"

	"github.com/campuslab/attendance-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	GetUser(ctx context.Context, id string) (user.UserResponse, error)
	ListUsers(ctx context.Context, role string) ([]user.UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}

type userServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	created, err := s.userRepo.Create(ctx, user.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: &hashStr,
		Role:         user.Role(req.Role),
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return toResponse(created), nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toResponse(u), nil
}

func (s *userServiceImpl) ListUsers(ctx context.Context, role string) ([]user.UserResponse, error) {
	var roleFilter *user.Role
	if role != "" {
		r := user.Role(role)
		roleFilter = &r
	}

	users, err := s.userRepo.List(ctx, roleFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toResponse(u))
	}
	return responses, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}

func toResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}
