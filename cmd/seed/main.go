package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"therapy_platform/internal/config"
	"therapy_platform/internal/model"
	"therapy_platform/internal/repository"
	"therapy_platform/internal/utils"

	"github.com/joho/godotenv"
)

// Seeds the database with sample users, posts, comments and
// appointments for development and testing. Existing data is wiped.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	ctx := context.Background()

	// Clear existing data
	if _, err := dbPool.Exec(ctx, `TRUNCATE users, sessions, posts, comments, appointments RESTART IDENTITY CASCADE`); err != nil {
		log.Fatalf("Failed to clear existing data: %v", err)
	}

	userRepo := repository.NewUserRepository(dbPool)
	postRepo := repository.NewPostRepository(dbPool)
	commentRepo := repository.NewCommentRepository(dbPool)
	appointmentRepo := repository.NewAppointmentRepository(dbPool)

	passwordHash, err := utils.HashPassword("password123")
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	users := []*model.User{
		{Username: "john_doe", Email: "john@example.com", IsTherapist: false},
		{Username: "jane_smith", Email: "jane@example.com", IsTherapist: false},
		{Username: "dr_thompson", Email: "thompson@therapy.com", IsTherapist: true},
		{Username: "dr_wilson", Email: "wilson@therapy.com", IsTherapist: true},
	}
	for _, u := range users {
		u.PasswordHash = passwordHash
		u.CreatedAt = time.Now()
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Username, err)
		}
	}
	clients := users[:2]
	therapists := users[2:]

	posts := []*model.Post{
		{TherapistID: therapists[0].ID, Title: "Coping with Anxiety", Content: "Anxiety is a common issue that many people face..."},
		{TherapistID: therapists[0].ID, Title: "The Importance of Sleep", Content: "Getting enough quality sleep is crucial for mental health..."},
		{TherapistID: therapists[1].ID, Title: "Mindfulness Techniques", Content: "Mindfulness can be a powerful tool for managing stress..."},
		{TherapistID: therapists[1].ID, Title: "Building Healthy Relationships", Content: "Healthy relationships are fundamental to our well-being..."},
	}
	for _, p := range posts {
		p.MediaType = model.MediaTypeText
		p.CreatedAt = time.Now()
		if err := postRepo.Create(ctx, p); err != nil {
			log.Fatalf("Failed to seed post %q: %v", p.Title, err)
		}
	}

	comments := []*model.Comment{
		{UserID: clients[0].ID, PostID: posts[0].ID, Content: "This article really helped me understand my anxiety better."},
		{UserID: clients[1].ID, PostID: posts[0].ID, Content: "I've been using these techniques and they work great!"},
		{UserID: clients[0].ID, PostID: posts[1].ID, Content: "I never realized how important sleep was. Thanks for the info!"},
		{UserID: clients[1].ID, PostID: posts[2].ID, Content: "Mindfulness has changed my life. Great article!"},
	}
	for _, c := range comments {
		c.CreatedAt = time.Now()
		if err := commentRepo.Create(ctx, c); err != nil {
			log.Fatalf("Failed to seed comment: %v", err)
		}
	}

	statuses := []string{
		model.AppointmentStatusPending,
		model.AppointmentStatusConfirmed,
		model.AppointmentStatusCancelled,
	}
	startDate := time.Now().AddDate(0, 0, 1)
	for i := 0; i < 10; i++ {
		a := &model.Appointment{
			UserID:      clients[rand.Intn(len(clients))].ID,
			TherapistID: therapists[rand.Intn(len(therapists))].ID,
			Date:        startDate.AddDate(0, 0, rand.Intn(31)).Add(time.Duration(9+rand.Intn(9)) * time.Hour),
			Duration:    model.DefaultAppointmentDuration,
			Status:      statuses[rand.Intn(len(statuses))],
			Notes:       "Initial consultation",
			CreatedAt:   time.Now(),
		}
		if err := appointmentRepo.Create(ctx, a); err != nil {
			log.Fatalf("Failed to seed appointment: %v", err)
		}
	}

	fmt.Println("Database seeded successfully!")
}
