package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	utils "ems-backend/shared/utils/auth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

// newAuthRouter wires the handler with a stub identity middleware; the
// real bearer middleware is covered separately.
func newAuthRouter(db *gorm.DB, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	h := NewAuthHandler(db)

	identity := func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", identity, h.Me)
		auth.POST("/logout", identity, h.Logout)
		auth.PUT("/change-password", identity, h.ChangePassword)
	}

	return router
}

var userColumns = []string{
	"id", "username", "email", "password", "role",
	"is_active", "created_at", "updated_at",
}

func userRow(id uuid.UUID, username, email, passwordHash, role string, active bool) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(userColumns).
		AddRow(id.String(), username, email, passwordHash, role, active, now, now)
}

func postJSON(router *gin.Engine, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeAuthBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestLoginSuccess(t *testing.T) {
	db, mock := newAuthTestDB(t)
	router := newAuthRouter(db, uuid.Nil)
	id := uuid.New()

	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("admin@ems.local", 1).
		WillReturnRows(userRow(id, "admin", "admin@ems.local", hash, "admin", true))

	w := postJSON(router, "/api/auth/login", `{"email":"admin@ems.local","password":"admin123"}`)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeAuthBody(t, w)
	data := body["data"].(map[string]interface{})
	token := data["token"].(string)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	user := data["user"].(map[string]interface{})
	assert.Equal(t, "admin@ems.local", user["email"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock := newAuthTestDB(t)
	router := newAuthRouter(db, uuid.Nil)

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("ada@example.com", 1).
		WillReturnRows(userRow(uuid.New(), "ada", "ada@example.com", hash, "employee", true))

	w := postJSON(router, "/api/auth/login", `{"email":"ada@example.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeAuthBody(t, w)
	assert.Equal(t, "Invalid credentials", body["error"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownEmail(t *testing.T) {
	db, mock := newAuthTestDB(t)
	router := newAuthRouter(db, uuid.Nil)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("ghost@example.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns))

	w := postJSON(router, "/api/auth/login", `{"email":"ghost@example.com","password":"whatever"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeAuthBody(t, w)
	assert.Equal(t, "Invalid credentials", body["error"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginDeactivatedAccount(t *testing.T) {
	db, mock := newAuthTestDB(t)
	router := newAuthRouter(db, uuid.Nil)

	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("gone@example.com", 1).
		WillReturnRows(userRow(uuid.New(), "gone", "gone@example.com", hash, "employee", false))

	w := postJSON(router, "/api/auth/login", `{"email":"gone@example.com","password":"admin123"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeAuthBody(t, w)
	assert.Equal(t, "Account is deactivated", body["error"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterSuccess(t *testing.T) {
	db, mock := newAuthTestDB(t)
	router := newAuthRouter(db, uuid.Nil)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("jdoe@example.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))
	mock.ExpectCommit()

	w := postJSON(router, "/api/auth/register", `{"username":"jdoe","email":"jdoe@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeAuthBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "jdoe", data["username"])
	assert.Equal(t, "employee", data["role"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db, mock := newAuthTestDB(t)
	router := newAuthRouter(db, uuid.Nil)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("taken@example.com", 1).
		WillReturnRows(userRow(uuid.New(), "taken", "taken@example.com", "hash", "employee", true))

	w := postJSON(router, "/api/auth/register", `{"username":"other","email":"taken@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusConflict, w.Code)
	body := decodeAuthBody(t, w)
	assert.Equal(t, "Email already exists", body["error"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterInvalidRole(t *testing.T) {
	db, mock := newAuthTestDB(t)
	router := newAuthRouter(db, uuid.Nil)

	w := postJSON(router, "/api/auth/register", `{"username":"jdoe","email":"jdoe@example.com","password":"secret123","role":"superuser"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeAuthBody(t, w)
	assert.Equal(t, "Invalid role", body["error"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	db, mock := newAuthTestDB(t)
	router := newAuthRouter(db, uuid.Nil)

	w := postJSON(router, "/api/auth/register", `{"username":"jdoe","email":"jdoe@example.com","password":"abc"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeReturnsAccount(t *testing.T) {
	db, mock := newAuthTestDB(t)
	id := uuid.New()
	router := newAuthRouter(db, id)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(id.String(), 1).
		WillReturnRows(userRow(id, "ada", "ada@example.com", "hash", "manager", true))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeAuthBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "ada@example.com", data["email"])
	assert.Equal(t, "manager", data["role"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMeAccountGone(t *testing.T) {
	db, mock := newAuthTestDB(t)
	id := uuid.New()
	router := newAuthRouter(db, id)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(id.String(), 1).
		WillReturnRows(sqlmock.NewRows(userColumns))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	db, mock := newAuthTestDB(t)
	id := uuid.New()
	router := newAuthRouter(db, id)

	hash, err := utils.HashPassword("actual-password")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(id.String(), 1).
		WillReturnRows(userRow(id, "ada", "ada@example.com", hash, "employee", true))

	req := httptest.NewRequest(http.MethodPut, "/api/auth/change-password",
		strings.NewReader(`{"currentPassword":"guess","newPassword":"newpass123","confirmPassword":"newpass123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeAuthBody(t, w)
	assert.Equal(t, "Current password is incorrect", body["error"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangePasswordMismatchedConfirmation(t *testing.T) {
	db, mock := newAuthTestDB(t)
	router := newAuthRouter(db, uuid.New())

	req := httptest.NewRequest(http.MethodPut, "/api/auth/change-password",
		strings.NewReader(`{"currentPassword":"old","newPassword":"newpass123","confirmPassword":"different"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
