package employee

import (
	"fmt"

	"gorm.io/gorm"

	"ems-backend/shared/database/models"
)

// GenerateEmployeeID formats the identifier for the (count+1)-th
// employee record: EMP followed by a five digit zero-padded sequence.
func GenerateEmployeeID(count int64) string {
	return fmt.Sprintf("EMP%05d", count+1)
}

// NextEmployeeID derives the next identifier from a live count of all
// employee rows, active and inactive. Concurrent creates can read the
// same count; the unique index on employee_id surfaces that collision
// as a duplicate key error and callers retry the create.
func NextEmployeeID(db *gorm.DB) (string, error) {
	var count int64
	if err := db.Model(&models.Employee{}).Count(&count).Error; err != nil {
		return "", err
	}
	return GenerateEmployeeID(count), nil
}
