package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	JobStatusOpen   = "open"
	JobStatusFilled = "filled"
)

// JobPoster carries the poster's id together with the display name captured
// at posting time, so listings do not need a join for the common case.
type JobPoster struct {
	UserID primitive.ObjectID `json:"userId" bson:"userId"`
	Name   string             `json:"name" bson:"name"`
}

// AcceptedApplicant records the applicant the poster accepted.
type AcceptedApplicant struct {
	UserID primitive.ObjectID `json:"userId" bson:"userId"`
	Name   string             `json:"name" bson:"name"`
}

type Job struct {
	ID                primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Title             string               `json:"title" bson:"title"`
	Description       string               `json:"description" bson:"description"`
	Skills            []string             `json:"skills" bson:"skills"`
	Budget            string               `json:"budget" bson:"budget"`
	PostedBy          JobPoster            `json:"postedBy" bson:"postedBy"`
	Applicants        []primitive.ObjectID `json:"applicants" bson:"applicants"`
	AcceptedApplicant *AcceptedApplicant   `json:"acceptedApplicant,omitempty" bson:"acceptedApplicant,omitempty"`
	Status            string               `json:"status" bson:"status"`
	CreatedAt         time.Time            `json:"createdAt" bson:"createdAt"`
}

// JobApplicant is the expanded applicant reference in job listings.
type JobApplicant struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name"`
	Skills []string           `json:"skills"`
}

// JobView is a Job with its user references expanded for API responses.
type JobView struct {
	Job
	PosterUsername string         `json:"posterUsername,omitempty"`
	ApplicantInfo  []JobApplicant `json:"applicantInfo"`
}
