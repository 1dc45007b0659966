package controllers

import (
	"errors"
	"net/http"

	jobdto "github.com/attajnr2001/adwumawura-2/dto/job"
	"github.com/attajnr2001/adwumawura-2/middleware"
	"github.com/attajnr2001/adwumawura-2/services"

	"github.com/gin-gonic/gin"
)

func CreateJob(c *gin.Context) {
	poster, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var data jobdto.JobCreateDTO
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jobService := services.JobService{}

	job, err := jobService.CreateJob(poster, data)
	if err != nil {
		if errors.Is(err, services.ErrMissingJobFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Job posted successfully",
		"job":     job,
	})
}

// ListJobs returns every job, or only those posted by the user named in the
// postedBy query parameter.
func ListJobs(c *gin.Context) {
	jobService := services.JobService{}

	jobs, err := jobService.ListJobs(c.Query("postedBy"))
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func ApplyToJob(c *gin.Context) {
	applicant, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobService := services.JobService{}

	if err := jobService.ApplyToJob(c.Param("id"), applicant); err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		case errors.Is(err, services.ErrOwnJob), errors.Is(err, services.ErrAlreadyApplied):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application submitted successfully"})
}

// AcceptApplicant lets the poster pick one applicant and marks the job filled.
func AcceptApplicant(c *gin.Context) {
	poster, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var data jobdto.JobAcceptDTO
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Applicant ID is required"})
		return
	}

	jobService := services.JobService{}

	job, err := jobService.AcceptApplicant(c.Param("id"), poster, data.ApplicantID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		case errors.Is(err, services.ErrNotJobPoster),
			errors.Is(err, services.ErrNotAnApplicant),
			errors.Is(err, services.ErrJobFilled):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			serverError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Applicant accepted successfully",
		"job":     job,
	})
}
