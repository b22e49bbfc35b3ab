package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentaryRepo_GetDetail(t *testing.T) {
	cols := []string{"id", "title", "description", "duration_min", "published_at", "label", "video", "image"}
	published := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("found with assets", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewDocumentaryRepo(db)

		mock.ExpectQuery("SELECT d.id, d.title, d.description").
			WithArgs(uint64(3)).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(3, "Cosmos", "space", 55, published, "Ciencia", "https://cdn/video.mp4", "https://cdn/img.jpg"))

		det, err := repo.GetDetail(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "Cosmos", det.Title)
		assert.Equal(t, "Ciencia", det.Genre)
		require.NotNil(t, det.VideoURL)
		assert.Equal(t, "https://cdn/video.mp4", *det.VideoURL)
		require.NotNil(t, det.ImageURL)
		assert.Equal(t, "https://cdn/img.jpg", *det.ImageURL)
	})

	t.Run("found without assets", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewDocumentaryRepo(db)

		mock.ExpectQuery("SELECT d.id, d.title, d.description").
			WithArgs(uint64(4)).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(4, "Oceans", "deep", 40, published, "Naturaleza", nil, nil))

		det, err := repo.GetDetail(context.Background(), 4)
		require.NoError(t, err)
		assert.Nil(t, det.VideoURL)
		assert.Nil(t, det.ImageURL)
	})

	t.Run("absent or inactive", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewDocumentaryRepo(db)

		// The query filters is_active=1, so an inactive row and a missing
		// row land in the same branch.
		mock.ExpectQuery("SELECT d.id, d.title, d.description").
			WithArgs(uint64(999)).
			WillReturnError(sql.ErrNoRows)

		_, err = repo.GetDetail(context.Background(), 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDocumentaryRepo_Recommendations(t *testing.T) {
	cols := []string{"id", "title", "label", "image"}

	t.Run("rows in id order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewDocumentaryRepo(db)

		mock.ExpectQuery("SELECT DISTINCT d.id, d.title").
			WithArgs(uint64(7), uint64(7)).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(1, "Cosmos", "Ciencia", "https://cdn/1.jpg").
				AddRow(5, "Oceans", "Naturaleza", nil))

		recs, err := repo.Recommendations(context.Background(), 7)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, uint64(1), recs[0].ID)
		require.NotNil(t, recs[0].ImageURL)
		assert.Nil(t, recs[1].ImageURL)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewDocumentaryRepo(db)

		mock.ExpectQuery("SELECT DISTINCT d.id, d.title").
			WithArgs(uint64(7), uint64(7)).
			WillReturnRows(sqlmock.NewRows(cols))

		recs, err := repo.Recommendations(context.Background(), 7)
		require.NoError(t, err)
		assert.Empty(t, recs)
		assert.NotNil(t, recs)
	})
}

func TestDocumentaryRepo_SetActive_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewDocumentaryRepo(db)

	mock.ExpectExec("UPDATE documentaries SET is_active").
		WithArgs(true, uint64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM documentaries").
		WithArgs(uint64(999)).
		WillReturnError(sql.ErrNoRows)

	err = repo.SetActive(context.Background(), 999, true)
	assert.ErrorIs(t, err, ErrNotFound)
}
