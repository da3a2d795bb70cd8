package faq

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)
	cols := []string{"id", "question", "answer", "category", "created_at"}

	t.Run("No filter", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, question, answer, category, created_at FROM faqs ORDER BY category ASC, created_at ASC`).
			WillReturnRows(sqlmock.NewRows(cols).AddRow("f1", "Warranty?", "1 year", "General", time.Now()))

		list, err := repo.List(context.Background(), Filter{})
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("Category and search", func(t *testing.T) {
		mock.ExpectQuery(`FROM faqs WHERE LOWER\(category\) = LOWER\(\$1\) AND \(question ILIKE \$2 OR answer ILIKE \$2\)`).
			WithArgs("Shipping", "%days%").
			WillReturnRows(sqlmock.NewRows(cols))

		list, err := repo.List(context.Background(), Filter{Category: "Shipping", Search: "days"})
		require.NoError(t, err)
		assert.Empty(t, list)
		assert.NotNil(t, list)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExistsByQuestion(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM faqs WHERE LOWER\(question\) = LOWER\(\$1\) AND id <> \$2\)`).
		WithArgs("Warranty?", "").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := NewRepository(db).ExistsByQuestion(context.Background(), "Warranty?", "")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestRepository_UpdateAndDelete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(`UPDATE faqs SET question = \$2`).
		WithArgs("f9", "Q", "A", "General").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}))
	_, err = repo.Update(context.Background(), FAQ{ID: "f9", Question: "Q", Answer: "A", Category: "General"})
	assert.ErrorIs(t, err, ErrFAQNotFound)

	mock.ExpectExec(`DELETE FROM faqs WHERE id = \$1`).WithArgs("f9").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), "f9"), ErrFAQNotFound)
}
