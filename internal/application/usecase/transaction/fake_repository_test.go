package transaction

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
	domainerror "github.com/budget-control/backend/internal/domain/error"
)

var errStoreDown = errors.New("store unavailable")

// fakeRepository is an in-memory adapter.TransactionRepository.
type fakeRepository struct {
	kind       entity.TransactionKind
	records    map[uuid.UUID]*entity.Transaction
	lastFilter *adapter.TransactionFilter
	findErr    error
	creates    int
	updates    int
	deletes    int
}

func newFakeRepository(kind entity.TransactionKind) *fakeRepository {
	return &fakeRepository{
		kind:    kind,
		records: make(map[uuid.UUID]*entity.Transaction),
	}
}

func (r *fakeRepository) Kind() entity.TransactionKind { return r.kind }

func (r *fakeRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	r.creates++
	transaction.ID = uuid.New()
	r.records[transaction.ID] = clone(transaction)
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	record, ok := r.records[id]
	if !ok {
		return nil, domainerror.ErrRecordNotFound
	}
	return clone(record), nil
}

func (r *fakeRepository) FindByIdentity(_ context.Context, candidate *entity.Transaction) ([]*entity.Transaction, error) {
	var matches []*entity.Transaction
	for _, record := range r.records {
		if record.Name != candidate.Name || record.Description != candidate.Description {
			continue
		}
		if !record.Amount.Equal(*candidate.Amount) || !record.Date.Equal(*candidate.Date) {
			continue
		}
		if r.kind.RequiresRecurrence() && *record.Recurrent != *candidate.Recurrent {
			continue
		}
		matches = append(matches, clone(record))
	}
	return matches, nil
}

func (r *fakeRepository) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	r.lastFilter = &filter
	result := make([]*entity.Transaction, 0, len(r.records))
	for _, record := range r.records {
		result = append(result, clone(record))
	}
	return result, nil
}

func (r *fakeRepository) Update(_ context.Context, transaction *entity.Transaction) error {
	r.updates++
	r.records[transaction.ID] = clone(transaction)
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.deletes++
	delete(r.records, id)
	return nil
}

func clone(transaction *entity.Transaction) *entity.Transaction {
	copied := *transaction
	if transaction.Amount != nil {
		amount := *transaction.Amount
		copied.Amount = &amount
	}
	if transaction.Date != nil {
		date := *transaction.Date
		copied.Date = &date
	}
	if transaction.Recurrent != nil {
		recurrent := *transaction.Recurrent
		copied.Recurrent = &recurrent
	}
	return &copied
}
