package services

import (
	portsrepo "github.com/tajuwa/clickbit_backend/internal/core/ports/repositories"
	portssvc "github.com/tajuwa/clickbit_backend/internal/core/ports/services"
	"github.com/tajuwa/clickbit_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Token = NewTokenService(cfg)
	container.User = NewUserService(repos.UserRepo)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Auth = NewAuthService(repos.UserRepo, container.Token, container.GoogleOAuth)

	return container
}
