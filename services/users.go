package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/attajnr2001/adwumawura-2/cache"
	userdto "github.com/attajnr2001/adwumawura-2/dto/user"
	"github.com/attajnr2001/adwumawura-2/models"
	"github.com/attajnr2001/adwumawura-2/repositories"
	"github.com/attajnr2001/adwumawura-2/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUpdateField = errors.New("invalid updates")
	ErrRatingOutOfRange   = errors.New("rating must be between 1 and 5")
	ErrSelfRating         = errors.New("you cannot rate yourself")
	ErrAlreadyRated       = errors.New("you have already rated this user")
)

const artisansCacheKey = "artisans:list"
const artisansCacheTTL = time.Minute

// allowedProfileUpdates is the field allow-list for profile updates. Anything
// outside it fails the whole request.
var allowedProfileUpdates = map[string]bool{
	"name":     true,
	"location": true,
	"phone":    true,
	"address":  true,
	"skills":   true,
	"bio":      true,
	"image":    true,
}

type UserService struct{}

// RegisterUser creates an account from the registration form. imagePath is
// the already-stored public path of the uploaded image, or empty.
func (us *UserService) RegisterUser(data userdto.UserRegisterDTO, imagePath string) (*models.User, error) {
	existing, err := repositories.GetUserByUsername(data.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	existing, err = repositories.GetUserByEmail(data.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  data.Username,
		Email:     data.Email,
		Password:  string(hashedPassword),
		Name:      data.Name,
		Location:  data.Location,
		Phone:     data.Phone,
		Address:   data.Address,
		Bio:       data.Bio,
		Image:     imagePath,
		Skills:    utils.SplitSkills(data.Skills),
		Ratings:   []models.Rating{},
		CreatedAt: time.Now(),
	}

	if err := repositories.CreateUser(user); err != nil {
		// The unique indexes are the real gate; the lookups above only give
		// nicer messages for the common case.
		if repositories.IsDuplicateKeyError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	cache.Invalidate(context.Background(), artisansCacheKey)
	return user, nil
}

func (us *UserService) LoginUser(username, password string) (string, *models.User, error) {
	user, err := repositories.GetUserByUsername(username)
	if err != nil {
		return "", nil, err
	}

	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (us *UserService) GetProfile(id primitive.ObjectID) (*models.User, error) {
	user, err := repositories.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies an allow-listed partial update. updates holds the raw
// form fields; imagePath, when non-empty, replaces the stored image and the
// previous local file is removed.
func (us *UserService) UpdateProfile(user *models.User, updates map[string]string, imagePath string) (*models.User, error) {
	for field := range updates {
		if !allowedProfileUpdates[field] {
			return nil, ErrInvalidUpdateField
		}
	}

	fields := bson.M{}
	for field, value := range updates {
		if value == "" {
			continue
		}
		if field == "skills" {
			fields["skills"] = utils.SplitSkills(value)
			continue
		}
		fields[field] = value
	}

	if imagePath != "" {
		fields["image"] = imagePath
	}

	if len(fields) == 0 {
		return user, nil
	}

	updated, err := repositories.UpdateUserFields(user.ID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}

	if imagePath != "" && user.Image != "" && user.Image != imagePath {
		utils.DeleteImage(user.Image)
	}

	cache.Invalidate(context.Background(), artisansCacheKey)
	return updated, nil
}

// ListArtisans returns the public artisan listing, served cache-aside when
// Redis is available.
func (us *UserService) ListArtisans(ctx context.Context) ([]models.ArtisanSummary, error) {
	artisans := []models.ArtisanSummary{}

	found, err := cache.GetJSON(ctx, artisansCacheKey, &artisans)
	if err != nil {
		log.Println("Artisan cache read failed:", err)
	}
	if found {
		return artisans, nil
	}

	artisans, err = repositories.ListArtisans()
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, artisansCacheKey, artisans, artisansCacheTTL); err != nil {
		log.Println("Artisan cache write failed:", err)
	}
	return artisans, nil
}

// RateUser appends a rating from rater to the target user and returns the
// recomputed average. One rating per (rater, target); no self-rating.
func (us *UserService) RateUser(targetID string, rater *models.User, data userdto.RatingDTO) (float64, error) {
	if data.Rating < 1 || data.Rating > 5 {
		return 0, ErrRatingOutOfRange
	}

	oid, err := primitive.ObjectIDFromHex(targetID)
	if err != nil {
		return 0, ErrUserNotFound
	}

	target, err := repositories.GetUserByID(oid)
	if err != nil {
		return 0, err
	}
	if target == nil {
		return 0, ErrUserNotFound
	}

	if target.ID == rater.ID {
		return 0, ErrSelfRating
	}

	for _, r := range target.Ratings {
		if r.RaterID == rater.ID {
			return 0, ErrAlreadyRated
		}
	}

	rating := models.Rating{
		RaterID:   rater.ID,
		Client:    rater.Name,
		Rating:    data.Rating,
		Comment:   data.Comment,
		Timestamp: time.Now(),
	}

	newAverage := models.AverageOf(append(target.Ratings, rating))
	if err := repositories.AppendRating(target.ID, rating, newAverage); err != nil {
		return 0, err
	}

	cache.Invalidate(context.Background(), artisansCacheKey)
	return newAverage, nil
}
