// Package goat contains goat registry use cases.
package goat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// fakeGoatRepository is an in-memory adapter.GoatRepository.
type fakeGoatRepository struct {
	goats map[uuid.UUID]*entity.Goat
}

func newFakeGoatRepository() *fakeGoatRepository {
	return &fakeGoatRepository{goats: map[uuid.UUID]*entity.Goat{}}
}

func (f *fakeGoatRepository) Create(_ context.Context, goat *entity.Goat) error {
	copied := *goat
	f.goats[goat.ID] = &copied
	return nil
}

func (f *fakeGoatRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goat, error) {
	goat, ok := f.goats[id]
	if !ok {
		return nil, domainerror.ErrGoatNotFound
	}
	copied := *goat
	return &copied, nil
}

func (f *fakeGoatRepository) ExistsByTagNumber(_ context.Context, tagNumber string, excludeID *uuid.UUID) (bool, error) {
	for id, goat := range f.goats {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if goat.TagNumber == tagNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGoatRepository) FindPage(_ context.Context, status *entity.GoatStatus, pagination adapter.GoatPagination) (*entity.GoatListResult, error) {
	var goats []*entity.Goat
	for _, goat := range f.goats {
		if status != nil && goat.Status != *status {
			continue
		}
		copied := *goat
		goats = append(goats, &copied)
	}

	total := int64(len(goats))
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	return &entity.GoatListResult{
		Goats:      goats,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

func (f *fakeGoatRepository) Update(_ context.Context, goat *entity.Goat) error {
	copied := *goat
	f.goats[goat.ID] = &copied
	return nil
}

func (f *fakeGoatRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.goats, id)
	return nil
}

// fakeTransactionRepository tracks only what the goat use cases touch.
type fakeTransactionRepository struct {
	byGoat     map[uuid.UUID][]*entity.Transaction
	clearedFor []uuid.UUID
	findByGoat func(goatID uuid.UUID) []*entity.Transaction
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{byGoat: map[uuid.UUID][]*entity.Transaction{}}
}

func (f *fakeTransactionRepository) Create(_ context.Context, _ *entity.Transaction) error {
	return nil
}

func (f *fakeTransactionRepository) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepository) FindByIDWithGoat(_ context.Context, _ uuid.UUID) (*entity.TransactionWithGoat, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepository) FindByFilter(_ context.Context, _ adapter.TransactionFilter, _ adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	return &entity.TransactionListResult{}, nil
}

func (f *fakeTransactionRepository) FindByGoat(_ context.Context, goatID uuid.UUID) ([]*entity.Transaction, error) {
	if f.findByGoat != nil {
		return f.findByGoat(goatID), nil
	}
	return f.byGoat[goatID], nil
}

func (f *fakeTransactionRepository) Update(_ context.Context, _ *entity.Transaction) error {
	return nil
}

func (f *fakeTransactionRepository) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (f *fakeTransactionRepository) ClearGoatReference(_ context.Context, goatID uuid.UUID) error {
	f.clearedFor = append(f.clearedFor, goatID)
	return nil
}

func validCreateInput() CreateGoatInput {
	return CreateGoatInput{
		TagNumber: "KMB-1001",
		Breed:     "Etawa",
		Sex:       entity.GoatSexFemale,
	}
}

func TestCreateGoatUseCase_Execute(t *testing.T) {
	t.Run("defaults status to healthy", func(t *testing.T) {
		repo := newFakeGoatRepository()
		uc := NewCreateGoatUseCase(repo)

		output, err := uc.Execute(context.Background(), validCreateInput())
		require.NoError(t, err)
		assert.Equal(t, entity.GoatStatusHealthy, output.Goat.Status)
	})

	t.Run("rejects duplicate tag number", func(t *testing.T) {
		repo := newFakeGoatRepository()
		uc := NewCreateGoatUseCase(repo)

		_, err := uc.Execute(context.Background(), validCreateInput())
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), validCreateInput())
		var goatErr *domainerror.GoatError
		require.True(t, errors.As(err, &goatErr))
		assert.Equal(t, domainerror.ErrCodeDuplicateTagNumber, goatErr.Code)
	})

	t.Run("validation failures", func(t *testing.T) {
		future := time.Now().UTC().AddDate(0, 0, 2)
		negative := decimal.NewFromInt(-5)

		tests := []struct {
			name     string
			mutate   func(*CreateGoatInput)
			wantCode domainerror.GoatErrorCode
		}{
			{"missing tag number", func(in *CreateGoatInput) { in.TagNumber = "" }, domainerror.ErrCodeMissingTagNumber},
			{"missing breed", func(in *CreateGoatInput) { in.Breed = "" }, domainerror.ErrCodeMissingBreed},
			{"invalid sex", func(in *CreateGoatInput) { in.Sex = "unknown" }, domainerror.ErrCodeInvalidGoatSex},
			{"invalid status", func(in *CreateGoatInput) { in.Status = "retired" }, domainerror.ErrCodeInvalidGoatStatus},
			{"future birth date", func(in *CreateGoatInput) { in.BirthDate = &future }, domainerror.ErrCodeBirthDateInFuture},
			{"future purchase date", func(in *CreateGoatInput) { in.PurchaseDate = &future }, domainerror.ErrCodePurchaseDateInFuture},
			{"negative weight", func(in *CreateGoatInput) { in.Weight = &negative }, domainerror.ErrCodeNegativeWeight},
			{"negative purchase price", func(in *CreateGoatInput) { in.PurchasePrice = &negative }, domainerror.ErrCodeNegativePurchasePrice},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := newFakeGoatRepository()
				uc := NewCreateGoatUseCase(repo)

				input := validCreateInput()
				tt.mutate(&input)

				_, err := uc.Execute(context.Background(), input)
				var goatErr *domainerror.GoatError
				require.True(t, errors.As(err, &goatErr), "expected a goat error, got %v", err)
				assert.Equal(t, tt.wantCode, goatErr.Code)
			})
		}
	})
}

func TestUpdateGoatUseCase_Execute(t *testing.T) {
	seedGoat := func(repo *fakeGoatRepository, tag string, status entity.GoatStatus) *entity.Goat {
		goat := entity.NewGoat(tag, "Boer", entity.GoatSexMale, nil, nil, status, nil, nil, "")
		_ = repo.Create(context.Background(), goat)
		return goat
	}

	t.Run("empty status keeps the existing one", func(t *testing.T) {
		repo := newFakeGoatRepository()
		existing := seedGoat(repo, "KMB-2001", entity.GoatStatusSick)
		uc := NewUpdateGoatUseCase(repo)

		output, err := uc.Execute(context.Background(), UpdateGoatInput{
			ID:        existing.ID,
			TagNumber: existing.TagNumber,
			Breed:     existing.Breed,
			Sex:       existing.Sex,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.GoatStatusSick, output.Goat.Status)
	})

	t.Run("tag uniqueness excludes the goat itself", func(t *testing.T) {
		repo := newFakeGoatRepository()
		existing := seedGoat(repo, "KMB-2002", entity.GoatStatusHealthy)
		uc := NewUpdateGoatUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateGoatInput{
			ID:        existing.ID,
			TagNumber: existing.TagNumber,
			Breed:     "Saanen",
			Sex:       existing.Sex,
		})
		assert.NoError(t, err, "keeping its own tag must not conflict")
	})

	t.Run("rejects a tag taken by another goat", func(t *testing.T) {
		repo := newFakeGoatRepository()
		_ = seedGoat(repo, "KMB-2003", entity.GoatStatusHealthy)
		other := seedGoat(repo, "KMB-2004", entity.GoatStatusHealthy)
		uc := NewUpdateGoatUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateGoatInput{
			ID:        other.ID,
			TagNumber: "KMB-2003",
			Breed:     other.Breed,
			Sex:       other.Sex,
		})
		var goatErr *domainerror.GoatError
		require.True(t, errors.As(err, &goatErr))
		assert.Equal(t, domainerror.ErrCodeDuplicateTagNumber, goatErr.Code)
	})

	t.Run("unknown goat", func(t *testing.T) {
		repo := newFakeGoatRepository()
		uc := NewUpdateGoatUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateGoatInput{
			ID:        uuid.New(),
			TagNumber: "KMB-9999",
			Breed:     "Boer",
			Sex:       entity.GoatSexMale,
		})
		var goatErr *domainerror.GoatError
		require.True(t, errors.As(err, &goatErr))
		assert.Equal(t, domainerror.ErrCodeGoatNotFound, goatErr.Code)
	})
}

func TestDeleteGoatUseCase_Execute(t *testing.T) {
	t.Run("detaches ledger entries before deleting", func(t *testing.T) {
		goatRepo := newFakeGoatRepository()
		txnRepo := newFakeTransactionRepository()
		goat := entity.NewGoat("KMB-3001", "Kacang", entity.GoatSexFemale, nil, nil, entity.GoatStatusHealthy, nil, nil, "")
		_ = goatRepo.Create(context.Background(), goat)

		uc := NewDeleteGoatUseCase(goatRepo, txnRepo)
		err := uc.Execute(context.Background(), DeleteGoatInput{ID: goat.ID})
		require.NoError(t, err)

		require.Len(t, txnRepo.clearedFor, 1)
		assert.Equal(t, goat.ID, txnRepo.clearedFor[0])

		_, err = goatRepo.FindByID(context.Background(), goat.ID)
		assert.ErrorIs(t, err, domainerror.ErrGoatNotFound)
	})

	t.Run("unknown goat", func(t *testing.T) {
		uc := NewDeleteGoatUseCase(newFakeGoatRepository(), newFakeTransactionRepository())
		err := uc.Execute(context.Background(), DeleteGoatInput{ID: uuid.New()})

		var goatErr *domainerror.GoatError
		require.True(t, errors.As(err, &goatErr))
		assert.Equal(t, domainerror.ErrCodeGoatNotFound, goatErr.Code)
	})
}

func TestListGoatsUseCase_Execute(t *testing.T) {
	t.Run("pagination defaults and clamping", func(t *testing.T) {
		repo := newFakeGoatRepository()
		uc := NewListGoatsUseCase(repo)

		output, err := uc.Execute(context.Background(), ListGoatsInput{Page: 0, Limit: 0})
		require.NoError(t, err)
		assert.Equal(t, 1, output.Page)
		assert.Equal(t, 10, output.Limit)

		output, err = uc.Execute(context.Background(), ListGoatsInput{Page: 2, Limit: 9999})
		require.NoError(t, err)
		assert.Equal(t, 100, output.Limit)
	})

	t.Run("rejects an unknown status filter", func(t *testing.T) {
		uc := NewListGoatsUseCase(newFakeGoatRepository())

		_, err := uc.Execute(context.Background(), ListGoatsInput{Status: "retired"})
		var goatErr *domainerror.GoatError
		require.True(t, errors.As(err, &goatErr))
		assert.Equal(t, domainerror.ErrCodeInvalidGoatStatus, goatErr.Code)
	})
}

func TestGetGoatUseCase_Execute(t *testing.T) {
	goatRepo := newFakeGoatRepository()
	txnRepo := newFakeTransactionRepository()

	goat := entity.NewGoat("KMB-4001", "Jawarandu", entity.GoatSexFemale, nil, nil, entity.GoatStatusHealthy, nil, nil, "")
	_ = goatRepo.Create(context.Background(), goat)

	sale := entity.NewTransaction(
		time.Now().UTC().AddDate(0, -1, 0),
		entity.TransactionTypeIncome,
		entity.CategorySaleOfMilk,
		"Milk sale",
		decimal.NewFromInt(150_000),
		"",
		&goat.ID,
		"",
	)
	txnRepo.byGoat[goat.ID] = []*entity.Transaction{sale}

	uc := NewGetGoatUseCase(goatRepo, txnRepo)
	output, err := uc.Execute(context.Background(), GetGoatInput{ID: goat.ID})
	require.NoError(t, err)

	assert.Equal(t, "KMB-4001", output.Goat.TagNumber)
	require.Len(t, output.Transactions, 1)
	assert.Equal(t, "Milk Sale", output.Transactions[0].Label)
}
