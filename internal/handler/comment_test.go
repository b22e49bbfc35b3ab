package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docusmart/docusmart-server/internal/repository"
)

func newCommentHandler(t *testing.T) (*CommentHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewCommentHandler(repository.NewCommentRepo(db)), mock
}

func commentContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/comentarios", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(7)) // what BearerAuth would have stored
	return c, rec
}

func TestCommentCreate_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty text", body: `{"documentary_id":3,"text":""}`},
		{name: "whitespace only", body: `{"documentary_id":3,"text":"   \t  "}`},
		{name: "missing documentary", body: `{"text":"great film"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mock := newCommentHandler(t)
			c, rec := commentContext(tt.body)

			require.NoError(t, h.Create(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			// Rejected at the boundary: nothing may be written.
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCommentCreate_TrimsText(t *testing.T) {
	h, mock := newCommentHandler(t)
	mock.ExpectExec("INSERT INTO comments").
		WithArgs(uint64(7), uint64(3), "great film").
		WillReturnResult(sqlmock.NewResult(11, 1))

	c, rec := commentContext(`{"documentary_id":3,"text":"  great film  "}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"comment added","id":11}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
