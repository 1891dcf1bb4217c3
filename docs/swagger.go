// Package docs EMS API documentation
package docs

// Swagger documentation info
// @title Employee Management System API
// @version 1.0
// @description API documentation for the EMS auth and employee services

// @host localhost:8002
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

// Auth Service Endpoints
// @tag.name auth
// @tag.description Authentication and account management

// Employee Service Endpoints
// @tag.name employees
// @tag.description Employee records, search, statistics and profile photos
