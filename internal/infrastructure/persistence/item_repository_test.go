package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/catalog"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockItemRepository creates a GormItemRepository with a mocked SQL connection
func newMockItemRepository(t *testing.T) (*GormItemRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormItemRepository(gormDB), mock, mockDB
}

func TestNewGormItemRepository(t *testing.T) {
	t.Run("creates repository with valid DB", func(t *testing.T) {
		repo, _, mockDB := newMockItemRepository(t)
		defer mockDB.Close()

		assert.NotNil(t, repo)
		assert.NotNil(t, repo.db)
	})
}

func TestGormItemRepository_FindByIDForOwner(t *testing.T) {
	t.Run("finds item within owner catalog", func(t *testing.T) {
		repo, mock, mockDB := newMockItemRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()
		ownerID := uuid.New()

		rows := sqlmock.NewRows([]string{
			"id", "owner_id", "kind", "name", "active",
			"sku", "unit_price", "cost_price", "reorder_level", "version",
		}).AddRow(
			itemID, ownerID, catalog.ItemKindProduct, "Mealie Meal 25kg", true,
			"MM-25", decimal.NewFromInt(250), decimal.NewFromInt(210), decimal.NewFromInt(10), 1,
		)

		mock.ExpectQuery(`SELECT \* FROM "catalog_items" WHERE owner_id = \$1 AND id = \$2`).
			WithArgs(ownerID, itemID, 1).
			WillReturnRows(rows)

		item, err := repo.FindByIDForOwner(context.Background(), ownerID, itemID)

		assert.NoError(t, err)
		assert.NotNil(t, item)
		assert.Equal(t, itemID, item.ID)
		assert.Equal(t, ownerID, item.OwnerID)
		assert.Equal(t, "Mealie Meal 25kg", item.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("another owner's item reads as not found", func(t *testing.T) {
		repo, mock, mockDB := newMockItemRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()
		ownerID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "catalog_items" WHERE owner_id = \$1 AND id = \$2`).
			WithArgs(ownerID, itemID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		item, err := repo.FindByIDForOwner(context.Background(), ownerID, itemID)

		assert.Error(t, err)
		assert.Nil(t, item)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormItemRepository_FindBySKUForOwner(t *testing.T) {
	t.Run("normalizes SKU to uppercase before lookup", func(t *testing.T) {
		repo, mock, mockDB := newMockItemRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()
		ownerID := uuid.New()

		rows := sqlmock.NewRows([]string{
			"id", "owner_id", "kind", "name", "sku", "version",
		}).AddRow(
			itemID, ownerID, catalog.ItemKindProduct, "Sugar 1kg", "SU-1", 1,
		)

		mock.ExpectQuery(`SELECT \* FROM "catalog_items" WHERE owner_id = \$1 AND sku = \$2`).
			WithArgs(ownerID, "SU-1", 1).
			WillReturnRows(rows)

		item, err := repo.FindBySKUForOwner(context.Background(), ownerID, "su-1")

		assert.NoError(t, err)
		assert.NotNil(t, item)
		assert.Equal(t, "SU-1", item.SKU)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormItemRepository_ExistsByNameForOwner(t *testing.T) {
	t.Run("returns true when a name is taken within the kind", func(t *testing.T) {
		repo, mock, mockDB := newMockItemRepository(t)
		defer mockDB.Close()

		ownerID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "catalog_items" WHERE owner_id = \$1 AND kind = \$2 AND name = \$3`).
			WithArgs(ownerID, catalog.ItemKindService, "Haircut").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByNameForOwner(context.Background(), ownerID, catalog.ItemKindService, "Haircut")

		assert.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false for an unused name", func(t *testing.T) {
		repo, mock, mockDB := newMockItemRepository(t)
		defer mockDB.Close()

		ownerID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "catalog_items" WHERE owner_id = \$1 AND kind = \$2 AND name = \$3`).
			WithArgs(ownerID, catalog.ItemKindProduct, "Cooking Oil 2L").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByNameForOwner(context.Background(), ownerID, catalog.ItemKindProduct, "Cooking Oil 2L")

		assert.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormItemRepository_Delete(t *testing.T) {
	t.Run("returns not found when nothing was deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockItemRepository(t)
		defer mockDB.Close()

		itemID := uuid.New()

		mock.ExpectExec(`DELETE FROM "catalog_items" WHERE id = \$1`).
			WithArgs(itemID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), itemID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
