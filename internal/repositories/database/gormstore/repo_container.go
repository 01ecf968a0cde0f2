package gormstore

import (
	portsrepo "github.com/SscSPs/debt_ledger_app/internal/core/ports/repositories"
	"gorm.io/gorm"
)

func NewRepositoryProvider(db *gorm.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:   &BaseRepository{DB: db},
		ClientRepo:  newGormClientRepository(db),
		DebtRepo:    newGormDebtRepository(db),
		PaymentRepo: newGormPaymentRepository(db),
	}
}
