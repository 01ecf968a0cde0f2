package gormstore

import (
	"context"
	"strings"

	"github.com/SscSPs/debt_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debt_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/debt_ledger_app/internal/models"
	"gorm.io/gorm"
)

type txKey struct{}

// BaseRepository provides the shared handle and transaction support for gorm repositories.
type BaseRepository struct {
	DB *gorm.DB
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// db returns the transaction carried by ctx, or the base handle, bound to ctx.
func (r *BaseRepository) db(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return r.DB.WithContext(ctx)
}

// WithinTx runs fn in a transaction stored in the context handed to fn.
func (r *BaseRepository) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// AutoMigrate creates or updates the clients, debts and payments tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Client{}, &models.Debt{}, &models.Payment{})
}

func applyPage(q *gorm.DB, page domain.PageRequest, tiebreak string) *gorm.DB {
	dir := "ASC"
	if page.SortDir == domain.SortDesc {
		dir = "DESC"
	}
	q = q.Order(page.SortBy + " " + dir)
	if page.SortBy != tiebreak {
		q = q.Order(tiebreak + " " + dir)
	}
	return q.Limit(page.Size).Offset(page.Offset())
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a substring pattern for LIKE ... ESCAPE '\' with the wildcards in s matched literally.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
