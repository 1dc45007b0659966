// Command seed populates the database with demo artisans and jobs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/attajnr2001/adwumawura-2/config"
	"github.com/attajnr2001/adwumawura-2/database"
	"github.com/attajnr2001/adwumawura-2/models"
	"github.com/attajnr2001/adwumawura-2/repositories"

	"github.com/brianvoe/gofakeit/v6"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var trades = []string{
	"Carpenter", "Baker", "Plumber", "Electrician", "Tailor",
	"Mason", "Welder", "Painter", "Mechanic", "Hairdresser",
}

func main() {
	numUsers := flag.Int("users", 20, "Number of artisans to create")
	numJobs := flag.Int("jobs", 10, "Number of jobs to create")
	password := flag.String("password", "123456", "Password for every seeded account")
	shouldClean := flag.Bool("clean", false, "Drop collections before seeding")
	flag.Parse()

	config.LoadConfig()

	_, err := database.Connect()
	if err != nil {
		log.Fatalf("❌ MongoDB Connection Error: %v", err)
	}
	defer database.Disconnect()

	if *shouldClean {
		for _, name := range []config.CollectionName{
			config.DB_Collection.Users,
			config.DB_Collection.Jobs,
			config.DB_Collection.Messages,
		} {
			if err := database.GetCollection(name).Drop(context.Background()); err != nil {
				log.Fatalf("❌ Dropping %s failed: %v", name, err)
			}
		}
		log.Println("Dropped existing collections")
	}

	if err := database.EnsureIndexes(); err != nil {
		log.Fatalf("❌ MongoDB Index Error: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Hashing seed password failed: %v", err)
	}

	users := make([]*models.User, 0, *numUsers)
	for i := 0; i < *numUsers; i++ {
		user := fakeArtisan(string(hashed), i)
		if err := repositories.CreateUser(user); err != nil {
			log.Fatalf("❌ Seeding user %s failed: %v", user.Username, err)
		}
		users = append(users, user)
	}
	log.Printf("Created %d artisans (password %q)", len(users), *password)

	for i := 0; i < *numJobs && len(users) > 0; i++ {
		poster := users[rand.Intn(len(users))]
		job := fakeJob(poster)

		for _, applicant := range pickApplicants(users, poster) {
			job.Applicants = append(job.Applicants, applicant.ID)
		}

		if err := repositories.CreateJob(job); err != nil {
			log.Fatalf("❌ Seeding job %q failed: %v", job.Title, err)
		}
	}
	log.Printf("Created %d jobs", *numJobs)
}

func fakeArtisan(hashedPassword string, n int) *models.User {
	trade := trades[rand.Intn(len(trades))]

	ratings := []models.Rating{}
	for i := 0; i < rand.Intn(5); i++ {
		ratings = append(ratings, models.Rating{
			RaterID:   primitive.NewObjectID(),
			Client:    gofakeit.Name(),
			Rating:    rand.Intn(5) + 1,
			Comment:   gofakeit.Sentence(8),
			Timestamp: gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now()),
		})
	}

	return &models.User{
		Username:      fmt.Sprintf("%s%d", gofakeit.Username(), n),
		Email:         fmt.Sprintf("seed%d.%s", n, gofakeit.Email()),
		Password:      hashedPassword,
		Name:          gofakeit.Name(),
		Location:      gofakeit.City(),
		Phone:         gofakeit.Phone(),
		Address:       gofakeit.Address().Address,
		Bio:           gofakeit.Sentence(12),
		Image:         fmt.Sprintf("https://picsum.photos/seed/user%d/200/200", n),
		Skills:        []string{trade},
		Ratings:       ratings,
		AverageRating: models.AverageOf(ratings),
		CreatedAt:     time.Now(),
	}
}

func fakeJob(poster *models.User) *models.Job {
	trade := trades[rand.Intn(len(trades))]

	return &models.Job{
		Title:       fmt.Sprintf("%s needed: %s", trade, gofakeit.ProductName()),
		Description: gofakeit.Paragraph(1, 3, 10, " "),
		Skills:      []string{trade},
		Budget:      fmt.Sprintf("%d-%d", 100+rand.Intn(400), 500+rand.Intn(500)),
		PostedBy: models.JobPoster{
			UserID: poster.ID,
			Name:   poster.Name,
		},
		Applicants: []primitive.ObjectID{},
		Status:     models.JobStatusOpen,
		CreatedAt:  gofakeit.DateRange(time.Now().AddDate(0, -1, 0), time.Now()),
	}
}

// pickApplicants selects up to three distinct users other than the poster.
func pickApplicants(users []*models.User, poster *models.User) []*models.User {
	picked := []*models.User{}
	seen := map[primitive.ObjectID]bool{poster.ID: true}
	for i := 0; i < rand.Intn(4); i++ {
		candidate := users[rand.Intn(len(users))]
		if seen[candidate.ID] {
			continue
		}
		seen[candidate.ID] = true
		picked = append(picked, candidate)
	}
	return picked
}
