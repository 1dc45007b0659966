package job

// JobCreateDTO is the job creation request body. Skills may arrive either as
// a comma separated string or as a list; the service normalizes both.
type JobCreateDTO struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Skills      interface{} `json:"skills"`
	Budget      string      `json:"budget"`
	Name        string      `json:"name"`
}

// JobAcceptDTO names the applicant the poster accepts.
type JobAcceptDTO struct {
	ApplicantID string `json:"applicantId" binding:"required"`
}
