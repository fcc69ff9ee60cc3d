package services

import (
	portsrepo "github.com/sameoldmason/finance-web-sub000/internal/core/ports/repositories"
	portssvc "github.com/sameoldmason/finance-web-sub000/internal/core/ports/services"
	"github.com/sameoldmason/finance-web-sub000/pkg/config"
)

// NewContainer creates the service container with properly initialized
// dependencies. The payoff planner reads through the ledger service, so the
// ledger service is constructed first.
func NewContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServicesContainer {
	container := &portssvc.ServicesContainer{}

	container.Ledger = NewLedgerServiceImpl(repos.SnapshotRepo)
	container.Payoff = NewPayoffServiceImpl(container.Ledger)
	container.Profile = NewProfileServiceImpl(repos.ProfileRepo)
	container.Token = NewTokenServiceImpl(cfg)

	return container
}
