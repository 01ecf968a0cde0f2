package pgsql

import (
	portsrepo "github.com/SscSPs/debt_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:   &BaseRepository{Pool: dbPool},
		ClientRepo:  newPgxClientRepository(dbPool),
		DebtRepo:    newPgxDebtRepository(dbPool),
		PaymentRepo: newPgxPaymentRepository(dbPool),
	}
}
