package handlers

import (
	"net/http"
	"strings"

	"ems-backend/shared/database"
	"ems-backend/shared/database/models"

	"github.com/gin-gonic/gin"
)

// SearchEmployees searches employees by a free-text key
// @Summary Search employees
// @Description Case-insensitive substring search over name, employee ID, email and department. Unlike the listing endpoint, results include soft-deleted records.
// @Tags employees
// @Accept json
// @Produce json
// @Param key path string true "Search term"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Matching employees"
// @Failure 400 {object} map[string]string "Empty search term"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /employees/search/{key} [get]
func SearchEmployees(ctx *gin.Context) {
	key := strings.TrimSpace(ctx.Param("key"))
	if key == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Search term is required",
		})
		return
	}

	db := database.GetDB()
	pattern := "%" + key + "%"

	// No is_active filter here: search exposes inactive records so a
	// removed employee can still be found by direct lookup.
	var employees []models.Employee
	err := db.
		Where("name ILIKE ? OR employee_id ILIKE ? OR email ILIKE ? OR department ILIKE ?",
			pattern, pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&employees).Error
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to search employees",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    employees,
	})
}
