package database

import (
	"log"
	"time"

	"ems-backend/shared/config"
	"ems-backend/shared/database/models"
	utils "ems-backend/shared/utils/auth"
	employeeutils "ems-backend/shared/utils/employee"
)

// SeedDatabase seeds the database with the bootstrap admin account and,
// when the employees table is empty, a handful of demo records.
func SeedDatabase() error {
	log.Println("🌱 Checking database seed data...")

	if err := CreateAdminFromConfig(); err != nil {
		return err
	}

	created, err := seedDemoEmployees()
	if err != nil {
		return err
	}

	if created > 0 {
		log.Printf("✅ Database seeding completed (%d demo employees created)", created)
	} else {
		log.Println("✅ Database seed data is up to date")
	}

	return nil
}

// CreateAdminFromConfig creates the admin account configured through
// ADMIN_EMAIL / ADMIN_PASSWORD when it does not exist yet.
func CreateAdminFromConfig() error {
	cfg := config.GetConfig()

	var existing models.User
	if err := DB.Where("email = ?", cfg.AdminEmail).First(&existing).Error; err == nil {
		log.Println("✅ Admin account already exists")
		return nil
	}

	hashedPassword, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:  "admin",
		Email:     cfg.AdminEmail,
		Password:  hashedPassword,
		Role:      models.RoleAdmin,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin account created: %s", cfg.AdminEmail)
	return nil
}

// seedDemoEmployees inserts a few sample records when the table is
// empty so a fresh install has data to list and aggregate.
func seedDemoEmployees() (int, error) {
	var count int64
	if err := DB.Model(&models.Employee{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	demo := []models.Employee{
		{
			Name:           "Ayşe Demir",
			Email:          "ayse.demir@ems.local",
			Phone:          "+905301112233",
			Department:     "Engineering",
			Designation:    "Senior Software Engineer",
			JoiningDate:    time.Date(2022, 3, 14, 0, 0, 0, 0, time.UTC),
			EmploymentType: models.EmploymentFullTime,
			Salary:         95000,
			IsActive:       true,
		},
		{
			Name:           "Mert Kaya",
			Email:          "mert.kaya@ems.local",
			Phone:          "+905302223344",
			Department:     "Engineering",
			Designation:    "Software Engineer",
			JoiningDate:    time.Date(2023, 7, 3, 0, 0, 0, 0, time.UTC),
			EmploymentType: models.EmploymentFullTime,
			Salary:         68000,
			IsActive:       true,
		},
		{
			Name:           "Elif Şahin",
			Email:          "elif.sahin@ems.local",
			Phone:          "+905303334455",
			Department:     "Human Resources",
			Designation:    "HR Specialist",
			JoiningDate:    time.Date(2021, 11, 22, 0, 0, 0, 0, time.UTC),
			EmploymentType: models.EmploymentPartTime,
			Salary:         42000,
			IsActive:       true,
		},
	}

	created := 0
	for i := range demo {
		employeeID, err := employeeutils.NextEmployeeID(DB)
		if err != nil {
			return created, err
		}
		demo[i].EmployeeID = employeeID

		if err := DB.Create(&demo[i]).Error; err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}
