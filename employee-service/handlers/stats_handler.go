package handlers

import (
	"log"
	"net/http"

	"ems-backend/shared/database"
	"ems-backend/shared/database/models"
	"ems-backend/shared/utils/cache"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const statsCacheKey = "stats:employees"

// EmployeeStats is the aggregate view over active employees
type EmployeeStats struct {
	TotalEmployees   int64            `json:"totalEmployees"`
	AverageSalary    float64          `json:"averageSalary"`
	HighestSalary    float64          `json:"highestSalary"`
	LowestSalary     float64          `json:"lowestSalary"`
	DepartmentStats  map[string]int64 `json:"departmentStats"`
	DesignationStats map[string]int64 `json:"designationStats"`
}

type groupCount struct {
	Label string `gorm:"column:label"`
	Count int64  `gorm:"column:count"`
}

// GetEmployeeStats computes summary statistics over active employees
// @Summary Get employee statistics
// @Description Count, salary aggregates and department/designation breakdowns over active employees
// @Tags employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.EmployeeStats "Statistics"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /employees/stats [get]
func GetEmployeeStats(ctx *gin.Context) {
	cm := cache.GetCacheManager()
	if cm != nil {
		var cached EmployeeStats
		if hit, err := cm.Get(statsCacheKey, &cached); err == nil && hit {
			ctx.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    cached,
			})
			return
		}
	}

	stats, err := computeEmployeeStats()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to compute statistics",
			"message": err.Error(),
		})
		return
	}

	if cm != nil {
		if err := cm.Set(statsCacheKey, stats, cache.StatsTTL); err != nil {
			log.Printf("⚠️ Failed to cache employee stats: %v", err)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// computeEmployeeStats runs one query per aggregate. The aggregates are
// not read in a shared transaction; concurrent writes can skew them
// against each other slightly.
func computeEmployeeStats() (*EmployeeStats, error) {
	db := database.GetDB()

	stats := &EmployeeStats{
		DepartmentStats:  map[string]int64{},
		DesignationStats: map[string]int64{},
	}

	active := func() *gorm.DB {
		return db.Model(&models.Employee{}).Where("is_active = ?", true)
	}

	if err := active().Count(&stats.TotalEmployees).Error; err != nil {
		return nil, err
	}

	// COALESCE keeps the zero-employee case at 0 instead of NULL/NaN
	row := active().
		Select("COALESCE(AVG(salary), 0), COALESCE(MAX(salary), 0), COALESCE(MIN(salary), 0)").
		Row()
	if err := row.Scan(&stats.AverageSalary, &stats.HighestSalary, &stats.LowestSalary); err != nil {
		return nil, err
	}

	var departments []groupCount
	if err := active().
		Select("department AS label, COUNT(*) AS count").
		Group("department").
		Scan(&departments).Error; err != nil {
		return nil, err
	}
	for _, group := range departments {
		stats.DepartmentStats[group.Label] = group.Count
	}

	var designations []groupCount
	if err := active().
		Select("designation AS label, COUNT(*) AS count").
		Group("designation").
		Scan(&designations).Error; err != nil {
		return nil, err
	}
	for _, group := range designations {
		stats.DesignationStats[group.Label] = group.Count
	}

	return stats, nil
}
