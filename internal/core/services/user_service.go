package services

import (
	"context"

	"github.com/tajuwa/clickbit_backend/internal/core/domain"
	portsrepo "github.com/tajuwa/clickbit_backend/internal/core/ports/repositories"
	portssvc "github.com/tajuwa/clickbit_backend/internal/core/ports/services"
)

type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates the user lookup service used by session resolution
// and the profile endpoints.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
