package product

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{
	"id", "description", "price", "category", "image", "specs", "version", "created_at", "updated_at",
}

func productRow(rows *sqlmock.Rows, id, description, category string, specs string) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, description, 50000.0, category, "/uploads/a.png", []byte(specs), 1, now, now)
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		rows := sqlmock.NewRows(productRowColumns)
		productRow(rows, "p1", "Ryzen 5 7600", "Processor", `[{"key":"cores","value":"6"}]`)
		productRow(rows, "p2", "RTX 4060", "GPU", `null`)

		mock.ExpectQuery(`SELECT .* FROM products ORDER BY created_at DESC`).WillReturnRows(rows)

		res, err := repo.List(ctx, "")
		assert.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "Ryzen 5 7600", res[0].Description)
		assert.Equal(t, Specs{{Key: "cores", Value: "6"}}, res[0].Specs)
		assert.NotNil(t, res[1].Specs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ByCategory", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT .* FROM products WHERE category = \$1`).
			WithArgs("GPU").
			WillReturnRows(sqlmock.NewRows(productRowColumns))

		res, err := repo.List(ctx, "GPU")
		assert.NoError(t, err)
		assert.Empty(t, res)
		assert.NotNil(t, res)
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT .*`).WillReturnError(errors.New("db error"))
		_, err = repo.List(ctx, "")
		assert.Error(t, err)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		rows := productRow(sqlmock.NewRows(productRowColumns), "p1", "Corsair RM750e", "Power Supply", `[{"key":"wattage","value":"750W"}]`)
		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1`).WithArgs("p1").WillReturnRows(rows)

		p, err := repo.GetByID(ctx, "p1")
		require.NoError(t, err)
		v, ok := p.SpecValue("Wattage")
		assert.True(t, ok)
		assert.Equal(t, "750W", v)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT .* FROM products WHERE id = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(productRowColumns))

		_, err = repo.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_GetByIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty skips query", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		res, err := NewRepository(db).GetByIDs(ctx, nil)
		assert.NoError(t, err)
		assert.Empty(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Batched", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := productRow(sqlmock.NewRows(productRowColumns), "p1", "Ryzen 5 7600", "Processor", `[]`)
		mock.ExpectQuery(`SELECT .* FROM products WHERE id = ANY\(\$1\)`).
			WithArgs(pq.Array([]string{"p1", "p9"})).
			WillReturnRows(rows)

		res, err := NewRepository(db).GetByIDs(ctx, []string{"p1", "p9"})
		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})
}

func TestRepository_ExistsByDescription(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("RTX 4060", "GPU", "").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByDescription(context.Background(), "RTX 4060", "GPU", "")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	input := Product{
		Description: "RTX 4060",
		Price:       110000,
		Category:    "GPU",
		Specs:       Specs{{Key: "vram", Value: "8GB"}},
	}

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		now := time.Now()
		mock.ExpectQuery(`INSERT INTO products`).
			WithArgs(sqlmock.AnyArg(), input.Description, input.Price, input.Category, input.Image, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"version", "created_at", "updated_at"}).AddRow(1, now, now))

		p, err := repo.Create(ctx, input)
		assert.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, 1, p.Version)
	})

	t.Run("Error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`INSERT INTO products`).WillReturnError(errors.New("insert failed"))

		_, err = repo.Create(ctx, input)
		assert.Error(t, err)
	})
}

func TestRepository_Update(t *testing.T) {
	ctx := context.Background()
	p := Product{ID: "p1", Description: "RTX 4060 Ti", Price: 130000, Category: "GPU", Version: 3}
	updateSQL := regexp.QuoteMeta(`WHERE id = $1 AND version = $2`)

	t.Run("Success bumps version", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mock.ExpectQuery(updateSQL).
			WithArgs("p1", 3, p.Description, p.Price, p.Category, p.Image, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"version", "created_at", "updated_at"}).AddRow(4, now, now))

		res, err := NewRepository(db).Update(ctx, p)
		assert.NoError(t, err)
		assert.Equal(t, 4, res.Version)
	})

	t.Run("No match", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(updateSQL).WillReturnRows(sqlmock.NewRows([]string{"version", "created_at", "updated_at"}))

		_, err = NewRepository(db).Update(ctx, p)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs("p1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewRepository(db).Delete(ctx, "p1"))
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM products`).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, NewRepository(db).Delete(ctx, "p1"), ErrProductNotFound)
	})
}

func TestSpecs_Value(t *testing.T) {
	v, err := Specs(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, driver.Value([]byte(`[]`)), v)
}
