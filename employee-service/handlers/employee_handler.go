package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"ems-backend/employee-service/services"
	"ems-backend/shared/database"
	"ems-backend/shared/database/models"
	utils "ems-backend/shared/utils/auth"
	employeeutils "ems-backend/shared/utils/employee"
	"ems-backend/shared/utils/query"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateEmployeeRequest represents the multipart form body for creating
// an employee. Nested groups (address, bankDetails, emergencyContact)
// arrive as JSON-encoded form fields.
type CreateEmployeeRequest struct {
	EmployeeID       string   `form:"employeeId"`
	Name             string   `form:"name"`
	Email            string   `form:"email"`
	Phone            string   `form:"phone"`
	Department       string   `form:"department"`
	Designation      string   `form:"designation"`
	JoiningDate      string   `form:"joiningDate"`
	Salary           *float64 `form:"salary"`
	EmploymentType   string   `form:"employmentType"`
	ReportingManager string   `form:"reportingManager"`
	UserID           string   `form:"userId"`
	DateOfBirth      string   `form:"dateOfBirth"`
	Gender           string   `form:"gender"`
	BloodGroup       string   `form:"bloodGroup"`
	MaritalStatus    string   `form:"maritalStatus"`
	AlternatePhone   string   `form:"alternatePhone"`
	Address          string   `form:"address"`
	BankDetails      string   `form:"bankDetails"`
	EmergencyContact string   `form:"emergencyContact"`
}

// UpdateEmployeeRequest represents the multipart form body for a
// partial update. Pointer fields distinguish "not supplied" from an
// explicit empty value; only supplied fields are merged. employeeId is
// deliberately not part of this struct, it is immutable.
type UpdateEmployeeRequest struct {
	Name             *string  `form:"name"`
	Email            *string  `form:"email"`
	Phone            *string  `form:"phone"`
	Department       *string  `form:"department"`
	Designation      *string  `form:"designation"`
	JoiningDate      *string  `form:"joiningDate"`
	Salary           *float64 `form:"salary"`
	EmploymentType   *string  `form:"employmentType"`
	ReportingManager *string  `form:"reportingManager"`
	UserID           *string  `form:"userId"`
	DateOfBirth      *string  `form:"dateOfBirth"`
	Gender           *string  `form:"gender"`
	BloodGroup       *string  `form:"bloodGroup"`
	MaritalStatus    *string  `form:"maritalStatus"`
	AlternatePhone   *string  `form:"alternatePhone"`
	Address          *string  `form:"address"`
	BankDetails      *string  `form:"bankDetails"`
	EmergencyContact *string  `form:"emergencyContact"`
}

// ManagerSummary is the denormalized projection of a reporting manager
type ManagerSummary struct {
	ID          uuid.UUID `json:"id"`
	EmployeeID  string    `json:"employeeId"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
}

// UserSummary is the denormalized projection of a linked account
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

// EmployeeDetailResponse is an employee with its weak references
// resolved. A dangling reference leaves the projection nil.
type EmployeeDetailResponse struct {
	models.Employee
	ReportingManager *ManagerSummary `json:"reportingManager,omitempty"`
	User             *UserSummary    `json:"user,omitempty"`
}

// parseDate accepts a plain calendar date or an RFC3339 timestamp
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// isDuplicateKeyError reports whether err is a unique index violation
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") || strings.Contains(msg, "duplicate key")
}

var errNoPhotoFile = errors.New("no file supplied")

// uploadIncomingPhoto validates and stores the profilePhoto part when
// present. It returns the generated object name and the suggested HTTP
// status when storing fails.
func uploadIncomingPhoto(ctx *gin.Context) (string, int, error) {
	fileHeader, err := ctx.FormFile("profilePhoto")
	if err != nil {
		return "", http.StatusBadRequest, errNoPhotoFile
	}

	if err := employeeutils.ValidateProfilePhoto(fileHeader); err != nil {
		return "", http.StatusBadRequest, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", http.StatusInternalServerError, err
	}
	defer file.Close()

	fileName := employeeutils.GenerateProfilePhotoName(fileHeader.Filename)

	storage, err := services.NewPhotoStorage()
	if err != nil {
		return "", http.StatusInternalServerError, errors.New("storage service unavailable")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := storage.UploadProfilePhoto(ctx.Request.Context(), file, fileName, fileHeader.Size, contentType); err != nil {
		return "", http.StatusInternalServerError, errors.New("failed to upload photo")
	}

	return fileName, 0, nil
}

// removePhotoAsync deregisters a replaced photo blob. The record write
// is already committed; a failed deletion is logged and never surfaced.
func removePhotoAsync(fileName string) {
	if fileName == "" {
		return
	}

	go func() {
		storage, err := services.NewPhotoStorage()
		if err != nil {
			log.Printf("⚠️ Could not reach photo storage to remove %s: %v", fileName, err)
			return
		}
		if err := storage.RemoveProfilePhoto(context.Background(), fileName); err != nil {
			log.Printf("⚠️ Failed to remove old profile photo %s: %v", fileName, err)
		}
	}()
}

// CreateEmployee creates a new employee record
// @Summary Create a new employee
// @Description Create a new employee with the provided information and an optional profile photo
// @Tags employees
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Full name"
// @Param email formData string true "Email address"
// @Param phone formData string true "Phone number"
// @Param department formData string true "Department"
// @Param designation formData string true "Designation"
// @Param joiningDate formData string true "Joining date (YYYY-MM-DD)"
// @Param salary formData number true "Salary"
// @Param employmentType formData string false "Employment type (Full-time, Part-time, Contract, Intern)"
// @Param reportingManager formData string false "Reporting manager employee UUID"
// @Param profilePhoto formData file false "Profile photo (jpeg/jpg/png/gif, max 5MB)"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "Created employee"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /employees [post]
func CreateEmployee(ctx *gin.Context) {
	var req CreateEmployeeRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	employee, errMsg := buildEmployeeFromRequest(&req)
	if errMsg != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed",
			"message": errMsg,
		})
		return
	}

	db := database.GetDB()

	// Email must be unique across active and inactive records
	var existing models.Employee
	if err := db.Where("email = ?", employee.Email).First(&existing).Error; err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Email already exists",
			"message": "An employee with this email already exists",
		})
		return
	}

	if employee.EmployeeID == "" {
		employeeID, err := employeeutils.NextEmployeeID(db)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to generate employee ID",
				"message": err.Error(),
			})
			return
		}
		employee.EmployeeID = employeeID
	} else {
		if err := db.Where("employee_id = ?", employee.EmployeeID).First(&existing).Error; err == nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Employee ID already exists",
				"message": "An employee with this ID already exists",
			})
			return
		}
	}

	// Optional photo, uploaded before the row exists
	photoName, status, err := uploadIncomingPhoto(ctx)
	if err != nil && !errors.Is(err, errNoPhotoFile) {
		ctx.JSON(status, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	employee.ProfilePhoto = photoName

	if err := db.Create(employee).Error; err != nil {
		removePhotoAsync(photoName)

		// Concurrent creates can race the count-based ID generator; the
		// unique index reports the collision here and the caller retries.
		if isDuplicateKeyError(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Duplicate employee ID or email",
				"message": err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to create employee",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Employee created successfully",
		"data":    employee,
	})
}

// buildEmployeeFromRequest validates the create form and assembles the
// record. It returns a non-empty message on the first validation error.
func buildEmployeeFromRequest(req *CreateEmployeeRequest) (*models.Employee, string) {
	type requiredField struct {
		value string
		name  string
	}
	for _, f := range []requiredField{
		{req.Name, "name"},
		{req.Email, "email"},
		{req.Phone, "phone"},
		{req.Department, "department"},
		{req.Designation, "designation"},
		{req.JoiningDate, "joiningDate"},
	} {
		if err := utils.ValidateRequired(f.value, f.name); err != nil {
			return nil, err.Error()
		}
	}

	if err := utils.ValidateEmail(req.Email); err != nil {
		return nil, err.Error()
	}

	if req.Salary == nil {
		return nil, "salary is required"
	}
	if *req.Salary < 0 {
		return nil, "salary must not be negative"
	}

	joiningDate, err := parseDate(req.JoiningDate)
	if err != nil {
		return nil, "invalid joiningDate, expected YYYY-MM-DD"
	}

	employmentType := req.EmploymentType
	if employmentType == "" {
		employmentType = models.EmploymentFullTime
	}
	if !models.ValidEmploymentType(employmentType) {
		return nil, "invalid employmentType"
	}

	employee := &models.Employee{
		EmployeeID:     strings.TrimSpace(req.EmployeeID),
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Department:     req.Department,
		Designation:    req.Designation,
		JoiningDate:    joiningDate,
		Salary:         *req.Salary,
		EmploymentType: employmentType,
		Gender:         req.Gender,
		BloodGroup:     req.BloodGroup,
		MaritalStatus:  req.MaritalStatus,
		AlternatePhone: req.AlternatePhone,
		IsActive:       true,
	}

	if req.ReportingManager != "" {
		managerID, err := uuid.Parse(req.ReportingManager)
		if err != nil {
			return nil, "invalid reportingManager ID format"
		}
		employee.ReportingManagerID = &managerID
	}

	if req.UserID != "" {
		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			return nil, "invalid userId format"
		}
		employee.UserID = &userID
	}

	if req.DateOfBirth != "" {
		dob, err := parseDate(req.DateOfBirth)
		if err != nil {
			return nil, "invalid dateOfBirth, expected YYYY-MM-DD"
		}
		employee.DateOfBirth = &dob
	}

	if req.Address != "" {
		if err := json.Unmarshal([]byte(req.Address), &employee.Address); err != nil {
			return nil, "invalid address payload"
		}
	}
	if req.BankDetails != "" {
		if err := json.Unmarshal([]byte(req.BankDetails), &employee.BankDetails); err != nil {
			return nil, "invalid bankDetails payload"
		}
	}
	if req.EmergencyContact != "" {
		if err := json.Unmarshal([]byte(req.EmergencyContact), &employee.EmergencyContact); err != nil {
			return nil, "invalid emergencyContact payload"
		}
	}

	return employee, ""
}

// GetEmployees lists active employees
// @Summary Get all active employees
// @Description Get active employees ordered by creation time, with pagination, filtering and search
// @Tags employees
// @Accept json
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10)"
// @Param search query string false "Search term across name, employee ID, email and department"
// @Param filters[department] query string false "Filter by department"
// @Param filters[employment_type] query string false "Filter by employment type"
// @Param sort[field] query string false "Sort field (name, department, designation, salary, joining_date, created_at)"
// @Param sort[order] query string false "Sort order (asc, desc)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Employees with pagination"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /employees [get]
func GetEmployees(ctx *gin.Context) {
	db := database.GetDB()

	params := query.ParseQueryParams(ctx)

	allowedFilters := map[string]string{
		"department":      "department",
		"employment_type": "employment_type",
		"designation":     "designation",
	}

	allowedSortFields := map[string]string{
		"name":         "name",
		"department":   "department",
		"designation":  "designation",
		"salary":       "salary",
		"joining_date": "joining_date",
		"created_at":   "created_at",
		"updated_at":   "updated_at",
	}

	searchFields := []string{"name", "employee_id", "email", "department"}

	// Soft-deleted records never show up in listings
	baseQuery := db.Model(&models.Employee{}).Where("is_active = ?", true)

	filteredQuery := query.ApplyFilters(baseQuery, params.Filters, allowedFilters)
	searchedQuery := query.ApplySearch(filteredQuery, params.Search, searchFields)

	var total int64
	searchedQuery.Count(&total)

	finalQuery := query.ApplySort(searchedQuery, params.Sort, allowedSortFields)
	finalQuery = query.ApplyPagination(finalQuery, params.Page, params.Limit)

	var employees []models.Employee
	if err := finalQuery.Find(&employees).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to retrieve employees",
			"message": err.Error(),
		})
		return
	}

	pagination := query.BuildPaginationResponse(params.Page, params.Limit, total)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items":      employees,
			"pagination": pagination,
		},
	})
}

// GetEmployee retrieves a single employee by ID
// @Summary Get employee by ID
// @Description Get an employee, including soft-deleted ones, with reporting manager and account references resolved
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID" format(uuid)
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Employee detail"
// @Failure 400 {object} map[string]string "Invalid employee ID format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /employees/{id} [get]
func GetEmployee(ctx *gin.Context) {
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

	// Direct lookup returns inactive records too
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

	response := EmployeeDetailResponse{Employee: employee}

	// Weak references: a dangling ID resolves to nothing, never an error
	if employee.ReportingManagerID != nil {
		var manager models.Employee
		if err := db.First(&manager, "id = ?", *employee.ReportingManagerID).Error; err == nil {
			response.ReportingManager = &ManagerSummary{
				ID:          manager.ID,
				EmployeeID:  manager.EmployeeID,
				Name:        manager.Name,
				Designation: manager.Designation,
			}
		}
	}

	if employee.UserID != nil {
		var user models.User
		if err := db.First(&user, "id = ?", *employee.UserID).Error; err == nil {
			response.User = &UserSummary{
				ID:       user.ID,
				Username: user.Username,
				Email:    user.Email,
				Role:     user.Role,
			}
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    response,
	})
}

// UpdateEmployee partially updates an employee record
// @Summary Update an employee
// @Description Merge the supplied fields into an existing employee; a new profile photo replaces and removes the old one
// @Tags employees
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Employee ID" format(uuid)
// @Param profilePhoto formData file false "New profile photo (jpeg/jpg/png/gif, max 5MB)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Updated employee"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /employees/{id} [put]
func UpdateEmployee(ctx *gin.Context) {
	employeeUUID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid employee ID format",
			"message": err.Error(),
		})
		return
	}

	var req UpdateEmployeeRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request data",
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

	if req.Email != nil && *req.Email != employee.Email {
		if err := utils.ValidateEmail(*req.Email); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Validation failed",
				"message": err.Error(),
			})
			return
		}
		var existing models.Employee
		if err := db.Where("email = ? AND id != ?", *req.Email, employeeUUID).First(&existing).Error; err == nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Email already exists",
				"message": "Another employee with this email already exists",
			})
			return
		}
	}

	updates, errMsg := buildEmployeeUpdates(&req)
	if errMsg != "" {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed",
			"message": errMsg,
		})
		return
	}

	// Optional photo replacement: upload the new blob first, commit the
	// row, then best-effort delete the previous blob.
	oldPhoto := ""
	photoName, status, err := uploadIncomingPhoto(ctx)
	if err != nil && !errors.Is(err, errNoPhotoFile) {
		ctx.JSON(status, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	if photoName != "" {
		oldPhoto = employee.ProfilePhoto
		updates["profile_photo"] = photoName
	}

	if len(updates) > 0 {
		if err := db.Model(&employee).Updates(updates).Error; err != nil {
			removePhotoAsync(photoName)

			if isDuplicateKeyError(err) {
				ctx.JSON(http.StatusBadRequest, gin.H{
					"success": false,
					"error":   "Duplicate email",
					"message": err.Error(),
				})
				return
			}
			ctx.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to update employee",
				"message": err.Error(),
			})
			return
		}
	}

	if photoName != "" && oldPhoto != "" && oldPhoto != photoName {
		removePhotoAsync(oldPhoto)
	}

	if err := db.First(&employee, "id = ?", employeeUUID).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to reload employee",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employee updated successfully",
		"data":    employee,
	})
}

// buildEmployeeUpdates validates supplied patch fields and maps them to
// columns. employeeId is never part of the result.
func buildEmployeeUpdates(req *UpdateEmployeeRequest) (map[string]interface{}, string) {
	updates := map[string]interface{}{}

	if req.Name != nil {
		if err := utils.ValidateRequired(*req.Name, "name"); err != nil {
			return nil, err.Error()
		}
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		if err := utils.ValidateRequired(*req.Phone, "phone"); err != nil {
			return nil, err.Error()
		}
		updates["phone"] = *req.Phone
	}
	if req.Department != nil {
		if err := utils.ValidateRequired(*req.Department, "department"); err != nil {
			return nil, err.Error()
		}
		updates["department"] = *req.Department
	}
	if req.Designation != nil {
		if err := utils.ValidateRequired(*req.Designation, "designation"); err != nil {
			return nil, err.Error()
		}
		updates["designation"] = *req.Designation
	}
	if req.JoiningDate != nil {
		joiningDate, err := parseDate(*req.JoiningDate)
		if err != nil {
			return nil, "invalid joiningDate, expected YYYY-MM-DD"
		}
		updates["joining_date"] = joiningDate
	}
	if req.Salary != nil {
		if *req.Salary < 0 {
			return nil, "salary must not be negative"
		}
		updates["salary"] = *req.Salary
	}
	if req.EmploymentType != nil {
		if !models.ValidEmploymentType(*req.EmploymentType) {
			return nil, "invalid employmentType"
		}
		updates["employment_type"] = *req.EmploymentType
	}
	if req.ReportingManager != nil {
		if *req.ReportingManager == "" {
			updates["reporting_manager_id"] = nil
		} else {
			managerID, err := uuid.Parse(*req.ReportingManager)
			if err != nil {
				return nil, "invalid reportingManager ID format"
			}
			updates["reporting_manager_id"] = managerID
		}
	}
	if req.UserID != nil {
		if *req.UserID == "" {
			updates["user_id"] = nil
		} else {
			userID, err := uuid.Parse(*req.UserID)
			if err != nil {
				return nil, "invalid userId format"
			}
			updates["user_id"] = userID
		}
	}
	if req.DateOfBirth != nil {
		if *req.DateOfBirth == "" {
			updates["date_of_birth"] = nil
		} else {
			dob, err := parseDate(*req.DateOfBirth)
			if err != nil {
				return nil, "invalid dateOfBirth, expected YYYY-MM-DD"
			}
			updates["date_of_birth"] = dob
		}
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.BloodGroup != nil {
		updates["blood_group"] = *req.BloodGroup
	}
	if req.MaritalStatus != nil {
		updates["marital_status"] = *req.MaritalStatus
	}
	if req.AlternatePhone != nil {
		updates["alternate_phone"] = *req.AlternatePhone
	}

	// Nested groups replace the whole group
	if req.Address != nil {
		var address models.Address
		if err := json.Unmarshal([]byte(*req.Address), &address); err != nil {
			return nil, "invalid address payload"
		}
		updates["address_street"] = address.Street
		updates["address_city"] = address.City
		updates["address_state"] = address.State
		updates["address_country"] = address.Country
		updates["address_pincode"] = address.Pincode
	}
	if req.BankDetails != nil {
		var bank models.BankDetails
		if err := json.Unmarshal([]byte(*req.BankDetails), &bank); err != nil {
			return nil, "invalid bankDetails payload"
		}
		updates["bank_account_number"] = bank.AccountNumber
		updates["bank_bank_name"] = bank.BankName
		updates["bank_ifsc_code"] = bank.IFSCCode
		updates["bank_branch"] = bank.Branch
	}
	if req.EmergencyContact != nil {
		var contact models.EmergencyContact
		if err := json.Unmarshal([]byte(*req.EmergencyContact), &contact); err != nil {
			return nil, "invalid emergencyContact payload"
		}
		updates["emergency_name"] = contact.Name
		updates["emergency_relationship"] = contact.Relationship
		updates["emergency_phone"] = contact.Phone
	}

	return updates, ""
}

// DeleteEmployee soft deletes an employee
// @Summary Delete an employee
// @Description Soft delete an employee by clearing the active flag; the record stays addressable by ID
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID" format(uuid)
// @Security BearerAuth
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} map[string]string "Invalid employee ID format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /employees/{id} [delete]
func DeleteEmployee(ctx *gin.Context) {
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

	// Soft delete only clears the flag; photo and fields stay intact.
	// Repeating the call on an inactive record succeeds unchanged.
	if err := db.Model(&employee).Update("is_active", false).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to delete employee",
			"message": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employee removed",
	})
}
