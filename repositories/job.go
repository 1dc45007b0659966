package repositories

import (
	"context"
	"log"

	"github.com/attajnr2001/adwumawura-2/config"
	"github.com/attajnr2001/adwumawura-2/database"
	"github.com/attajnr2001/adwumawura-2/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateJob(job *models.Job) error {
	jobCollection := database.GetCollection(config.DB_Collection.Jobs)
	res, err := jobCollection.InsertOne(context.Background(), job)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		job.ID = oid
	}
	return nil
}

func GetJobByID(id primitive.ObjectID) (*models.Job, error) {
	var job models.Job
	jobCollection := database.GetCollection(config.DB_Collection.Jobs)
	err := jobCollection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&job)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		log.Println("Error fetching job:", err)
		return nil, err
	}
	return &job, nil
}

// ListJobs returns all jobs, newest first, optionally restricted to a poster.
func ListJobs(postedBy *primitive.ObjectID) ([]models.Job, error) {
	jobCollection := database.GetCollection(config.DB_Collection.Jobs)

	filter := bson.M{}
	if postedBy != nil {
		filter["postedBy.userId"] = *postedBy
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := jobCollection.Find(context.Background(), filter, opts)
	if err != nil {
		log.Println("Error listing jobs:", err)
		return nil, err
	}
	defer cursor.Close(context.Background())

	jobs := []models.Job{}
	if err := cursor.All(context.Background(), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// AddApplicant appends the applicant id. $addToSet keeps the list a set even
// if two applications for the same user race past the service-level check.
func AddApplicant(jobID, applicantID primitive.ObjectID) error {
	jobCollection := database.GetCollection(config.DB_Collection.Jobs)
	_, err := jobCollection.UpdateOne(
		context.Background(),
		bson.M{"_id": jobID},
		bson.M{"$addToSet": bson.M{"applicants": applicantID}},
	)
	return err
}

// AcceptApplicant records the accepted applicant and flips the job to filled.
// The status filter makes acceptance first-writer-wins: it matches zero
// documents when the job is already filled.
func AcceptApplicant(jobID primitive.ObjectID, accepted models.AcceptedApplicant) (bool, error) {
	jobCollection := database.GetCollection(config.DB_Collection.Jobs)
	res, err := jobCollection.UpdateOne(
		context.Background(),
		bson.M{"_id": jobID, "status": models.JobStatusOpen},
		bson.M{"$set": bson.M{
			"acceptedApplicant": accepted,
			"status":            models.JobStatusFilled,
		}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}
