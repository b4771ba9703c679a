package handlers

import "github.com/gin-gonic/gin"

// AuthHandlerInterface defines the methods needed by the auth routes.
type AuthHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Me(c *gin.Context)
}

// UserHandlerInterface defines the methods needed by the user routes.
type UserHandlerInterface interface {
	GetProfile(c *gin.Context)
	UpdateProfile(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	ListJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	CreateJob(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the job
// seeker application routes.
type ApplicationHandlerInterface interface {
	Apply(c *gin.Context)
	ListMyApplications(c *gin.Context)
	HasApplied(c *gin.Context)
}

// CompanyHandlerInterface defines the methods needed by the company
// routes.
type CompanyHandlerInterface interface {
	DashboardStats(c *gin.Context)
	ListCompanyJobs(c *gin.Context)
	ListJobApplications(c *gin.Context)
	UpdateApplicationStatus(c *gin.Context)
}

// FileHandlerInterface defines the methods needed by the file routes.
type FileHandlerInterface interface {
	UploadResume(c *gin.Context)
}

// Compile-time checks
var _ AuthHandlerInterface = (*AuthHandler)(nil)
var _ UserHandlerInterface = (*UserHandler)(nil)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
var _ CompanyHandlerInterface = (*CompanyHandler)(nil)
var _ FileHandlerInterface = (*FileHandler)(nil)
