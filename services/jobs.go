package services

import (
	"errors"
	"time"

	jobdto "github.com/attajnr2001/adwumawura-2/dto/job"
	"github.com/attajnr2001/adwumawura-2/models"
	"github.com/attajnr2001/adwumawura-2/repositories"
	"github.com/attajnr2001/adwumawura-2/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrMissingJobFields = errors.New("title, description, skills, and budget are required")
	ErrJobNotFound      = errors.New("job not found")
	ErrOwnJob           = errors.New("you cannot apply to your own job")
	ErrAlreadyApplied   = errors.New("you have already applied to this job")
	ErrNotJobPoster     = errors.New("only the job poster can accept an applicant")
	ErrNotAnApplicant   = errors.New("user has not applied to this job")
	ErrJobFilled        = errors.New("job already has an accepted applicant")
)

type JobService struct{}

// CreateJob persists a job for the poster. The denormalized poster name falls
// back through the request name, the stored name, the username, "Anonymous".
func (js *JobService) CreateJob(poster *models.User, data jobdto.JobCreateDTO) (*models.Job, error) {
	skills := utils.NormalizeSkills(data.Skills)

	if data.Title == "" || data.Description == "" || len(skills) == 0 || data.Budget == "" {
		return nil, ErrMissingJobFields
	}

	name := data.Name
	if name == "" {
		name = poster.Name
	}
	if name == "" {
		name = poster.Username
	}
	if name == "" {
		name = "Anonymous"
	}

	job := &models.Job{
		Title:       data.Title,
		Description: data.Description,
		Skills:      skills,
		Budget:      data.Budget,
		PostedBy: models.JobPoster{
			UserID: poster.ID,
			Name:   name,
		},
		Applicants: []primitive.ObjectID{},
		Status:     models.JobStatusOpen,
		CreatedAt:  time.Now(),
	}

	if err := repositories.CreateJob(job); err != nil {
		return nil, err
	}
	return job, nil
}

// ListJobs returns all jobs with user references expanded, optionally
// restricted to a poster. A postedBy value that is not a valid object id is
// ignored rather than rejected.
func (js *JobService) ListJobs(postedBy string) ([]models.JobView, error) {
	var filter *primitive.ObjectID
	if postedBy != "" {
		if oid, err := primitive.ObjectIDFromHex(postedBy); err == nil {
			filter = &oid
		}
	}

	jobs, err := repositories.ListJobs(filter)
	if err != nil {
		return nil, err
	}

	// Batch-load every referenced user once instead of a lookup per job.
	idSet := map[primitive.ObjectID]bool{}
	for _, job := range jobs {
		idSet[job.PostedBy.UserID] = true
		for _, applicant := range job.Applicants {
			idSet[applicant] = true
		}
	}
	ids := make([]primitive.ObjectID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := repositories.GetUsersByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	views := make([]models.JobView, 0, len(jobs))
	for _, job := range jobs {
		view := models.JobView{Job: job, ApplicantInfo: []models.JobApplicant{}}
		if poster, ok := byID[job.PostedBy.UserID]; ok {
			view.PosterUsername = poster.Username
		}
		for _, applicantID := range job.Applicants {
			applicant, ok := byID[applicantID]
			if !ok {
				continue
			}
			view.ApplicantInfo = append(view.ApplicantInfo, models.JobApplicant{
				ID:     applicant.ID,
				Name:   applicant.Name,
				Skills: applicant.Skills,
			})
		}
		views = append(views, view)
	}
	return views, nil
}

// ApplyToJob appends the applicant to the job's applicant list.
func (js *JobService) ApplyToJob(jobID string, applicant *models.User) error {
	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return ErrJobNotFound
	}

	job, err := repositories.GetJobByID(oid)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrJobNotFound
	}

	if job.PostedBy.UserID == applicant.ID {
		return ErrOwnJob
	}

	for _, existing := range job.Applicants {
		if existing == applicant.ID {
			return ErrAlreadyApplied
		}
	}

	return repositories.AddApplicant(job.ID, applicant.ID)
}

// AcceptApplicant records the poster's choice and marks the job filled.
func (js *JobService) AcceptApplicant(jobID string, poster *models.User, applicantID string) (*models.Job, error) {
	oid, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, ErrJobNotFound
	}

	job, err := repositories.GetJobByID(oid)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}

	if job.PostedBy.UserID != poster.ID {
		return nil, ErrNotJobPoster
	}

	if job.Status == models.JobStatusFilled {
		return nil, ErrJobFilled
	}

	applicantOID, err := primitive.ObjectIDFromHex(applicantID)
	if err != nil {
		return nil, ErrNotAnApplicant
	}

	isApplicant := false
	for _, existing := range job.Applicants {
		if existing == applicantOID {
			isApplicant = true
			break
		}
	}
	if !isApplicant {
		return nil, ErrNotAnApplicant
	}

	applicant, err := repositories.GetUserByID(applicantOID)
	if err != nil {
		return nil, err
	}
	if applicant == nil {
		return nil, ErrNotAnApplicant
	}

	accepted := models.AcceptedApplicant{
		UserID: applicant.ID,
		Name:   applicant.Name,
	}

	modified, err := repositories.AcceptApplicant(job.ID, accepted)
	if err != nil {
		return nil, err
	}
	if !modified {
		// Lost a race with another acceptance.
		return nil, ErrJobFilled
	}

	job.AcceptedApplicant = &accepted
	job.Status = models.JobStatusFilled
	return job, nil
}
