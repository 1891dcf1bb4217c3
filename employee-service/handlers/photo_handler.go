package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"ems-backend/employee-service/services"
	"ems-backend/shared/database"
	"ems-backend/shared/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadEmployeePhoto replaces the profile photo of an employee
// @Summary Upload a profile photo
// @Description Store a new profile photo for an employee; the previous photo blob is removed
// @Tags employees
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Employee ID" format(uuid)
// @Param profilePhoto formData file true "Profile photo (jpeg/jpg/png/gif, max 5MB)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "New photo reference"
// @Failure 400 {object} map[string]string "No file supplied or invalid file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /employees/{id}/photo [put]
func UploadEmployeePhoto(ctx *gin.Context) {
	employeeUUID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid employee ID format",
			"message": err.Error(),
		})
		return
	}

	db := database.GetDB()
	var employee models.Employee

	if err := db.First(&employee, "id = ?", employeeUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Employee not found",
				"message": "Employee with the given ID does not exist",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to retrieve employee",
			"message": err.Error(),
		})
		return
	}

	photoName, status, err := uploadIncomingPhoto(ctx)
	if err != nil {
		if errors.Is(err, errNoPhotoFile) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "No file supplied",
			})
			return
		}
		ctx.JSON(status, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	oldPhoto := employee.ProfilePhoto

	if err := db.Model(&employee).Update("profile_photo", photoName).Error; err != nil {
		removePhotoAsync(photoName)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to update employee photo",
			"message": err.Error(),
		})
		return
	}

	// The row write is the success criterion; cleanup of the replaced
	// blob is best effort.
	if oldPhoto != "" && oldPhoto != photoName {
		removePhotoAsync(oldPhoto)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile photo updated successfully",
		"data": gin.H{
			"profilePhoto": photoName,
		},
	})
}

// GetProfilePhoto streams a stored profile photo by its object name
// @Summary Download a profile photo
// @Description Stream a profile photo from the blob store by its generated filename
// @Tags employees
// @Produce image/jpeg
// @Param filename path string true "Stored photo filename"
// @Success 200 {file} binary "Photo content"
// @Failure 404 {object} map[string]string "Photo not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /uploads/profiles/{filename} [get]
func GetProfilePhoto(ctx *gin.Context) {
	fileName := ctx.Param("filename")
	if fileName == "" || strings.Contains(fileName, "/") || strings.Contains(fileName, "..") {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid file name",
		})
		return
	}

	storage, err := services.NewPhotoStorage()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Storage service unavailable",
		})
		return
	}

	object, contentType, err := storage.DownloadProfilePhoto(ctx.Request.Context(), fileName)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Photo not found",
		})
		return
	}
	defer object.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ctx.Header("Content-Type", contentType)
	ctx.Status(http.StatusOK)
	if _, err := io.Copy(ctx.Writer, object); err != nil {
		// client likely disconnected mid-stream
		return
	}
}
