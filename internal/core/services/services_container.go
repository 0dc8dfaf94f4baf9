package services

import (
	portsrepo "github.com/vidtube/vidtube_backend/internal/core/ports/repositories"
	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, media portssvc.MediaStorageSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The user service is the credential store everything else leans on.
	container.User = NewUserService(repos.UserRepo)

	// The token service binds session state to the account record.
	container.Token = NewTokenService(cfg, container.User)

	container.Channel = NewChannelService(repos.UserRepo, repos.SubscriptionRepo, repos.VideoRepo)
	container.Video = NewVideoService(repos.VideoRepo)
	container.Media = media

	return container
}
