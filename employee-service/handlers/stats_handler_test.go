package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ems-backend/shared/utils/cache"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearStatsCache drops any cached aggregate so expectations hit the
// database. A nil manager means Redis is absent and nothing is cached.
func clearStatsCache() {
	if cm := cache.GetCacheManager(); cm != nil {
		cm.Delete(statsCacheKey)
	}
}

func expectStatsQueries(mock sqlmock.Sqlmock, total int64, avg, max, min float64, departments, designations *sqlmock.Rows) {
	mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE is_active = \$1`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(total))

	mock.ExpectQuery(`SELECT COALESCE\(AVG\(salary\), 0\), COALESCE\(MAX\(salary\), 0\), COALESCE\(MIN\(salary\), 0\) FROM "employees" WHERE is_active = \$1`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "max", "min"}).AddRow(avg, max, min))

	mock.ExpectQuery(`SELECT department AS label, COUNT\(\*\) AS count FROM "employees" WHERE is_active = \$1 GROUP BY "department"`).
		WithArgs(true).
		WillReturnRows(departments)

	mock.ExpectQuery(`SELECT designation AS label, COUNT\(\*\) AS count FROM "employees" WHERE is_active = \$1 GROUP BY "designation"`).
		WithArgs(true).
		WillReturnRows(designations)
}

func TestGetEmployeeStatsAggregates(t *testing.T) {
	mock := setupMockDB(t)
	router := newEmployeeRouter()
	clearStatsCache()

	departments := sqlmock.NewRows([]string{"label", "count"}).
		AddRow("Engineering", 2).
		AddRow("Sales", 1)
	designations := sqlmock.NewRows([]string{"label", "count"}).
		AddRow("Developer", 2).
		AddRow("Executive", 1)

	expectStatsQueries(mock, 3, 65000, 95000, 40000, departments, designations)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/employees/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool          `json:"success"`
		Data    EmployeeStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, int64(3), body.Data.TotalEmployees)
	assert.Equal(t, float64(65000), body.Data.AverageSalary)
	assert.Equal(t, float64(95000), body.Data.HighestSalary)
	assert.Equal(t, float64(40000), body.Data.LowestSalary)
	assert.Equal(t, map[string]int64{"Engineering": 2, "Sales": 1}, body.Data.DepartmentStats)
	assert.Equal(t, map[string]int64{"Developer": 2, "Executive": 1}, body.Data.DesignationStats)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployeeStatsEmptyDatabase(t *testing.T) {
	mock := setupMockDB(t)
	router := newEmployeeRouter()
	clearStatsCache()

	departments := sqlmock.NewRows([]string{"label", "count"})
	designations := sqlmock.NewRows([]string{"label", "count"})

	expectStatsQueries(mock, 0, 0, 0, 0, departments, designations)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/employees/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool          `json:"success"`
		Data    EmployeeStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, int64(0), body.Data.TotalEmployees)
	assert.Equal(t, float64(0), body.Data.AverageSalary)
	assert.Len(t, body.Data.DepartmentStats, 0)
	assert.Len(t, body.Data.DesignationStats, 0)

	assert.NoError(t, mock.ExpectationsWereMet())
}
