package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account in the system. Every account can both post jobs
// and be discovered as an artisan through the public listing.
type User struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username      string             `json:"username" bson:"username"`
	Email         string             `json:"email" bson:"email"`
	Password      string             `json:"-" bson:"password"`
	Name          string             `json:"name" bson:"name"`
	Location      string             `json:"location,omitempty" bson:"location,omitempty"`
	Phone         string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Address       string             `json:"address,omitempty" bson:"address,omitempty"`
	Bio           string             `json:"bio,omitempty" bson:"bio,omitempty"`
	Image         string             `json:"image,omitempty" bson:"image,omitempty"`
	Skills        []string           `json:"skills" bson:"skills"`
	Ratings       []Rating           `json:"ratings" bson:"ratings"`
	AverageRating float64            `json:"averageRating" bson:"averageRating"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

// Rating is embedded in the rated user's document. RaterID is the stable
// identity used for duplicate detection; Client is only a display label.
type Rating struct {
	RaterID   primitive.ObjectID `json:"raterId" bson:"raterId"`
	Client    string             `json:"client" bson:"client"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment,omitempty" bson:"comment,omitempty"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
}

// AverageOf computes the mean of the given ratings, 0 when there are none.
func AverageOf(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(ratings))
}

// ArtisanSummary is the public projection returned by the artisans listing.
type ArtisanSummary struct {
	ID            primitive.ObjectID `json:"id" bson:"_id"`
	Name          string             `json:"name" bson:"name"`
	Location      string             `json:"location,omitempty" bson:"location,omitempty"`
	Skills        []string           `json:"skills" bson:"skills"`
	AverageRating float64            `json:"averageRating" bson:"averageRating"`
	Bio           string             `json:"bio,omitempty" bson:"bio,omitempty"`
	Image         string             `json:"image,omitempty" bson:"image,omitempty"`
}
