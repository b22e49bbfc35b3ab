package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/docusmart/docusmart-server/internal/config"
	"github.com/docusmart/docusmart-server/internal/repository"
	"github.com/docusmart/docusmart-server/internal/utils"
)

const testSecret = "handler-test-secret"

func testConfig() config.Config {
	return config.Config{
		Env:          "test",
		JWTSecret:    testSecret,
		AccessTTLMin: 60,
		BcryptCost:   bcrypt.MinCost,
	}
}

func newAuthServer(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := NewAuthHandler(testConfig(), repository.NewUserRepo(db))
	e := echo.New()
	e.POST("/registro", h.Register)
	e.POST("/login", h.Login)
	return e, mock
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, mock := newAuthServer(t)
		mock.ExpectExec("INSERT INTO users").
			WithArgs("Ana", "ana@x.com", sqlmock.AnyArg(), "standard").
			WillReturnResult(sqlmock.NewResult(7, 1))

		rec := postJSON(e, "/registro", `{"name":"Ana","email":"ana@x.com","password":"pw123"}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"user registered","id":7}`, rec.Body.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing fields", func(t *testing.T) {
		e, mock := newAuthServer(t)
		for _, body := range []string{
			`{}`,
			`{"name":"Ana"}`,
			`{"name":"Ana","email":"ana@x.com"}`,
			`{"name":"  ","email":"ana@x.com","password":"pw123"}`,
		} {
			rec := postJSON(e, "/registro", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
		}
		// No statement may reach the store on validation failure.
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		e, mock := newAuthServer(t)
		mock.ExpectExec("INSERT INTO users").
			WillReturnError(errDuplicate())

		rec := postJSON(e, "/registro", `{"name":"Ana","email":"ana@x.com","password":"pw123"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":"email already exists"}`, rec.Body.String())
	})
}

func errDuplicate() error {
	return &mysqlErrStub{"Error 1062 (23000): Duplicate entry 'ana@x.com' for key 'users.email'"}
}

type mysqlErrStub struct{ msg string }

func (e *mysqlErrStub) Error() string { return e.msg }

func userRow(hash string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "is_active", "created_at", "updated_at"}).
		AddRow(7, "Ana", "ana@x.com", hash, "standard", true, now, now)
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("pw123", bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("success returns token with caller claims", func(t *testing.T) {
		e, mock := newAuthServer(t)
		mock.ExpectQuery("SELECT .+ FROM users WHERE email=. AND is_active=1").
			WithArgs("ana@x.com").
			WillReturnRows(userRow(hash))

		rec := postJSON(e, "/login", `{"email":"Ana@X.com","password":"pw123"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Token string `json:"token"`
			Role  string `json:"role"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "standard", resp.Role)

		claims, err := utils.VerifyAccessToken(testSecret, resp.Token)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), claims.UserID)
		assert.Equal(t, "standard", claims.Role)
	})

	t.Run("unknown or inactive account and wrong password are identical", func(t *testing.T) {
		e, mock := newAuthServer(t)
		// Inactive accounts fall out of the login lookup entirely.
		mock.ExpectQuery("is_active=1").
			WithArgs("bob@x.com").
			WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery("is_active=1").
			WithArgs("ana@x.com").
			WillReturnRows(userRow(hash))

		recUnknown := postJSON(e, "/login", `{"email":"bob@x.com","password":"pw123"}`)
		recBadPass := postJSON(e, "/login", `{"email":"ana@x.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)
		assert.Equal(t, http.StatusUnauthorized, recBadPass.Code)
		assert.Equal(t, recUnknown.Body.String(), recBadPass.Body.String())
	})

	t.Run("malformed input", func(t *testing.T) {
		e, _ := newAuthServer(t)
		rec := postJSON(e, "/login", `{"email":"ana@x.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
