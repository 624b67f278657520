package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
	"github.com/budget-control/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface
// on the table of a single transaction kind.
type transactionRepository struct {
	db    *gorm.DB
	kind  entity.TransactionKind
	table string
}

// NewTransactionRepository creates a new transaction repository for the given kind.
func NewTransactionRepository(db *gorm.DB, kind entity.TransactionKind) adapter.TransactionRepository {
	return &transactionRepository{
		db:    db,
		kind:  kind,
		table: model.TransactionTable(kind),
	}
}

// Kind returns the transaction kind served by this repository.
func (r *transactionRepository) Kind() entity.TransactionKind {
	return r.kind
}

func (r *transactionRepository) session(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table(r.table)
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	if err := r.session(ctx).Create(transactionModel).Error; err != nil {
		return translateWriteError(err, r.kind.Label())
	}
	transaction.ID = transactionModel.ID
	return nil
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	if err := r.session(ctx).Where("id = ?", id).First(&transactionModel).Error; err != nil {
		return nil, translateReadError(err)
	}
	return transactionModel.ToEntity(r.kind), nil
}

// FindByIdentity retrieves transactions sharing the candidate's identity tuple.
func (r *transactionRepository) FindByIdentity(ctx context.Context, candidate *entity.Transaction) ([]*entity.Transaction, error) {
	query := r.session(ctx).Where("name = ? AND description = ?", string(candidate.Name), candidate.Description)
	if candidate.Amount != nil {
		query = query.Where("amount = ?", *candidate.Amount)
	}
	if candidate.Date != nil {
		query = query.Where("date = ?", *candidate.Date)
	}
	if r.kind.RequiresRecurrence() && candidate.Recurrent != nil {
		query = query.Where("recurrent = ?", *candidate.Recurrent)
	}

	var transactionModels []model.TransactionModel
	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, err
	}
	return r.toEntities(transactionModels), nil
}

// FindByFilter retrieves transactions matching every supplied criterion.
// An explicit date is only honored when no date range bound is given.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.session(ctx)

	if filter.Name != nil {
		query = query.Where("name = ?", string(*filter.Name))
	}
	if filter.Description != nil && *filter.Description != "" {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(*filter.Description)+"%")
	}
	if filter.Amount != nil {
		query = query.Where("amount = ?", *filter.Amount)
	}
	if filter.StartDate == nil && filter.EndDate == nil && filter.Date != nil {
		query = query.Where("date = ?", *filter.Date)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if filter.Recurrent != nil && r.kind.RequiresRecurrence() {
		query = query.Where("recurrent = ?", *filter.Recurrent)
	}

	var transactionModels []model.TransactionModel
	if err := query.Order("date DESC, created_at DESC").Find(&transactionModels).Error; err != nil {
		return nil, err
	}
	return r.toEntities(transactionModels), nil
}

// Update saves every field of an existing transaction.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	if err := r.session(ctx).Save(model.TransactionFromEntity(transaction)).Error; err != nil {
		return translateWriteError(err, r.kind.Label())
	}
	return nil
}

// Delete removes a transaction by its ID.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.session(ctx).Delete(&model.TransactionModel{}, "id = ?", id).Error
}

func (r *transactionRepository) toEntities(transactionModels []model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity(r.kind)
	}
	return transactions
}
