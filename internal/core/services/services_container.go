package services

import (
	portsrepo "github.com/SscSPs/debt_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/debt_ledger_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Client:  NewClientService(repos.TxManager, repos.ClientRepo, repos.DebtRepo),
		Debt:    NewDebtService(repos.TxManager, repos.ClientRepo, repos.DebtRepo, repos.PaymentRepo),
		Payment: NewPaymentService(repos.TxManager, repos.DebtRepo, repos.PaymentRepo),
	}
}
