package services

import (
	portsrepo "github.com/kenzhang87-cpu/networth-tracker/internal/core/ports/repositories"
	portssvc "github.com/kenzhang87-cpu/networth-tracker/internal/core/ports/services"
)

// NewServiceContainer wires every application service from the repository
// provider. Handlers depend only on the container's interfaces.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account: NewAccountService(repos.AccountRepo),
		Balance: NewBalanceService(repos.BalanceRepo, repos.AccountRepo),
		Ledger:  NewLedgerService(repos.AccountRepo, repos.BalanceRepo),
		Series:  NewSeriesService(repos.AccountRepo, repos.BalanceRepo),
		User:    NewUserService(repos.UserRepo),
	}
}
