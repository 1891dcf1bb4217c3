package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchEmployeesMatchesAcrossFields(t *testing.T) {
	mock := setupMockDB(t)
	router := newEmployeeRouter()

	pattern := "%eng%"
	rows := sqlmock.NewRows(employeeColumns)
	employeeRow(rows, uuid.New(), "EMP00001", "Engin Oz", "engin@example.com", 70000, true)
	employeeRow(rows, uuid.New(), "EMP00002", "Ada Lovelace", "ada@example.com", 90000, true)

	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE \(?name ILIKE \$1 OR employee_id ILIKE \$2 OR email ILIKE \$3 OR department ILIKE \$4\)? ORDER BY created_at DESC`).
		WithArgs(pattern, pattern, pattern, pattern).
		WillReturnRows(rows)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/employees/search/eng", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"], 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchEmployeesIncludesInactiveRecords(t *testing.T) {
	mock := setupMockDB(t)
	router := newEmployeeRouter()

	// Unlike the listing, search surfaces soft-deleted employees too
	pattern := "%ada%"
	rows := sqlmock.NewRows(employeeColumns)
	employeeRow(rows, uuid.New(), "EMP00001", "Ada Lovelace", "ada@example.com", 90000, true)
	employeeRow(rows, uuid.New(), "EMP00005", "Adalyn Reed", "adalyn@example.com", 60000, false)

	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE \(?name ILIKE \$1 OR employee_id ILIKE \$2 OR email ILIKE \$3 OR department ILIKE \$4\)? ORDER BY created_at DESC`).
		WithArgs(pattern, pattern, pattern, pattern).
		WillReturnRows(rows)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/employees/search/ada", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].([]interface{})
	require.Len(t, data, 2)
	assert.Equal(t, false, data[1].(map[string]interface{})["isActive"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchEmployeesRejectsBlankTerm(t *testing.T) {
	mock := setupMockDB(t)
	router := newEmployeeRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/employees/search/%20%20", nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Search term is required", body["error"])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchEmployeesNoMatches(t *testing.T) {
	mock := setupMockDB(t)
	router := newEmployeeRouter()

	pattern := "%nobody%"
	mock.ExpectQuery(`SELECT \* FROM "employees" WHERE \(?name ILIKE \$1 OR employee_id ILIKE \$2 OR email ILIKE \$3 OR department ILIKE \$4\)? ORDER BY created_at DESC`).
		WithArgs(pattern, pattern, pattern, pattern).
		WillReturnRows(sqlmock.NewRows(employeeColumns))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/employees/search/nobody", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["data"], 0)

	assert.NoError(t, mock.ExpectationsWereMet())
}
