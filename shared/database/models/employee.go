package models

import (
	"time"

	"github.com/google/uuid"
)

// Employment types accepted for Employee.EmploymentType.
const (
	EmploymentFullTime = "Full-time"
	EmploymentPartTime = "Part-time"
	EmploymentContract = "Contract"
	EmploymentIntern   = "Intern"
)

// Address is the postal address group of an employee record.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}

// BankDetails is the payroll account group of an employee record.
type BankDetails struct {
	AccountNumber string `json:"accountNumber,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	IFSCCode      string `json:"ifscCode,omitempty" gorm:"column:ifsc_code"`
	Branch        string `json:"branch,omitempty"`
}

// EmergencyContact is the emergency contact group of an employee record.
type EmergencyContact struct {
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// Employee is the single domain entity. EmployeeID is assigned once at
// creation and never changed by updates. IsActive is the soft-delete
// flag: inactive rows stay addressable by ID but are excluded from
// listings and statistics.
type Employee struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID string    `json:"employeeId" gorm:"uniqueIndex;size:20;not null"`
	Name       string    `json:"name" gorm:"size:150;not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`

	// Personal information
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	Gender        string     `json:"gender,omitempty" gorm:"size:10"`
	BloodGroup    string     `json:"bloodGroup,omitempty" gorm:"size:5"`
	MaritalStatus string     `json:"maritalStatus,omitempty" gorm:"size:10"`

	// Contact information
	Phone          string  `json:"phone" gorm:"size:20;not null"`
	AlternatePhone string  `json:"alternatePhone,omitempty" gorm:"size:20"`
	Address        Address `json:"address" gorm:"embedded;embeddedPrefix:address_"`

	// Professional information
	Department         string     `json:"department" gorm:"size:100;not null"`
	Designation        string     `json:"designation" gorm:"size:100;not null"`
	JoiningDate        time.Time  `json:"joiningDate" gorm:"not null"`
	EmploymentType     string     `json:"employmentType" gorm:"size:20;default:'Full-time'"`
	ReportingManagerID *uuid.UUID `json:"reportingManagerId,omitempty" gorm:"type:uuid"`

	// Salary information
	Salary      float64     `json:"salary" gorm:"not null"`
	BankDetails BankDetails `json:"bankDetails" gorm:"embedded;embeddedPrefix:bank_"`

	// Profile photo object name in the blob store, empty when no photo
	ProfilePhoto string `json:"profilePhoto,omitempty"`

	// Emergency contact
	EmergencyContact EmergencyContact `json:"emergencyContact" gorm:"embedded;embeddedPrefix:emergency_"`

	// Soft-delete flag
	IsActive bool `json:"isActive" gorm:"default:true"`

	// Weak reference to the account of this employee
	UserID *uuid.UUID `json:"userId,omitempty" gorm:"type:uuid"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ValidEmploymentType reports whether t is one of the accepted
// employment type values.
func ValidEmploymentType(t string) bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentIntern:
		return true
	}
	return false
}
