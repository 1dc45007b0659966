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

func GetUser(filters map[string]interface{}) (*models.User, error) {
	var user models.User

	filter := bson.M{}
	for key, value := range filters {
		if key == "_id" {
			objID, err := primitive.ObjectIDFromHex(value.(string))
			if err != nil {
				log.Printf("Error converting ID to ObjectID: %v", err)
				return nil, err
			}
			filter[key] = objID
		} else {
			filter[key] = value
		}
	}

	userCollection := database.GetCollection(config.DB_Collection.Users)

	err := userCollection.FindOne(context.Background(), filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}

	if err != nil {
		log.Println("Error fetching user:", err)
		return nil, err
	}

	return &user, nil
}

func GetUserByID(id primitive.ObjectID) (*models.User, error) {
	var user models.User
	userCollection := database.GetCollection(config.DB_Collection.Users)
	err := userCollection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		log.Println("Error fetching user by id:", err)
		return nil, err
	}
	return &user, nil
}

func GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	userCollection := database.GetCollection(config.DB_Collection.Users)
	err := userCollection.FindOne(context.Background(), bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		log.Println("Error fetching user by username:", err)
		return nil, err
	}
	return &user, nil
}

func GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	userCollection := database.GetCollection(config.DB_Collection.Users)
	err := userCollection.FindOne(context.Background(), bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		log.Println("Error fetching user by email:", err)
		return nil, err
	}
	return &user, nil
}

func CreateUser(user *models.User) error {
	userCollection := database.GetCollection(config.DB_Collection.Users)
	res, err := userCollection.InsertOne(context.Background(), user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// IsDuplicateKeyError reports whether err is a Mongo unique index violation,
// which the service layer maps to a username/email conflict.
func IsDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// UpdateUserFields applies the given $set document and returns the updated user.
func UpdateUserFields(id primitive.ObjectID, fields bson.M) (*models.User, error) {
	var user models.User
	userCollection := database.GetCollection(config.DB_Collection.Users)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := userCollection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": fields},
		opts,
	).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		log.Println("Error updating user:", err)
		return nil, err
	}
	return &user, nil
}

// AppendRating pushes a rating and stores the recomputed average in one update.
func AppendRating(id primitive.ObjectID, rating models.Rating, newAverage float64) error {
	userCollection := database.GetCollection(config.DB_Collection.Users)
	_, err := userCollection.UpdateOne(
		context.Background(),
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"ratings": rating},
			"$set":  bson.M{"averageRating": newAverage},
		},
	)
	return err
}

// ListArtisans returns every user projected to the public listing fields.
func ListArtisans() ([]models.ArtisanSummary, error) {
	userCollection := database.GetCollection(config.DB_Collection.Users)

	projection := bson.M{
		"name":          1,
		"location":      1,
		"skills":        1,
		"averageRating": 1,
		"bio":           1,
		"image":         1,
	}
	cursor, err := userCollection.Find(context.Background(), bson.M{}, options.Find().SetProjection(projection))
	if err != nil {
		log.Println("Error listing artisans:", err)
		return nil, err
	}
	defer cursor.Close(context.Background())

	artisans := []models.ArtisanSummary{}
	if err := cursor.All(context.Background(), &artisans); err != nil {
		return nil, err
	}
	return artisans, nil
}

// GetUsersByIDs fetches the users for the given ids, in no particular order.
func GetUsersByIDs(ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	userCollection := database.GetCollection(config.DB_Collection.Users)
	cursor, err := userCollection.Find(context.Background(), bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	users := []models.User{}
	if err := cursor.All(context.Background(), &users); err != nil {
		return nil, err
	}
	return users, nil
}
