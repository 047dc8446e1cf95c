package services

import (
	portsrepo "github.com/greekrode/erpnext/internal/core/ports/repositories"
	portssvc "github.com/greekrode/erpnext/internal/core/ports/services"
	"github.com/greekrode/erpnext/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Statement = NewStatementService(
		repos,
		WithFloatPrecision(cfg.FloatPrecision),
	)

	return container
}
