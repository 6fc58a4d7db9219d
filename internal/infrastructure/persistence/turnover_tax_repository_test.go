package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockTurnoverTaxRepository creates a GormTurnoverTaxRepository with a mocked SQL connection
func newMockTurnoverTaxRepository(t *testing.T) (*GormTurnoverTaxRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormTurnoverTaxRepository(gormDB), mock, mockDB
}

func TestGormTurnoverTaxRepository_FindByMonthForOwner(t *testing.T) {
	t.Run("finds the record for one month", func(t *testing.T) {
		repo, mock, mockDB := newMockTurnoverTaxRepository(t)
		defer mockDB.Close()

		recordID := uuid.New()
		ownerID := uuid.New()

		rows := sqlmock.NewRows([]string{
			"id", "owner_id", "year", "month",
			"revenue", "taxable_amount", "tax_due", "rate", "version",
		}).AddRow(
			recordID, ownerID, 2026, 3,
			decimal.NewFromInt(8000), decimal.NewFromInt(7000), decimal.NewFromInt(350),
			decimal.NewFromFloat(0.05), 1,
		)

		mock.ExpectQuery(`SELECT \* FROM "turnover_tax_records" WHERE owner_id = \$1 AND year = \$2 AND month = \$3`).
			WithArgs(ownerID, 2026, 3, 1).
			WillReturnRows(rows)

		record, err := repo.FindByMonthForOwner(context.Background(), ownerID, 2026, 3)

		assert.NoError(t, err)
		assert.NotNil(t, record)
		assert.Equal(t, 2026, record.Year)
		assert.Equal(t, 3, record.Month)
		assert.True(t, record.TaxDue.Equal(decimal.NewFromInt(350)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for a month with no activity", func(t *testing.T) {
		repo, mock, mockDB := newMockTurnoverTaxRepository(t)
		defer mockDB.Close()

		ownerID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "turnover_tax_records" WHERE owner_id = \$1 AND year = \$2 AND month = \$3`).
			WithArgs(ownerID, 2026, 7, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		record, err := repo.FindByMonthForOwner(context.Background(), ownerID, 2026, 7)

		assert.Error(t, err)
		assert.Nil(t, record)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTurnoverTaxRepository_SumTaxDue(t *testing.T) {
	t.Run("sums tax due across all months", func(t *testing.T) {
		repo, mock, mockDB := newMockTurnoverTaxRepository(t)
		defer mockDB.Close()

		ownerID := uuid.New()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(tax_due\), 0\) AS total FROM "turnover_tax_records" WHERE owner_id = \$1`).
			WithArgs(ownerID).
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(decimal.NewFromInt(1225)))

		total, err := repo.SumTaxDue(context.Background(), ownerID)

		assert.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(1225)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
