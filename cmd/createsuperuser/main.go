// Command main creates an administrative account with staff and superuser
// flags set. Regular registration can never produce one.
package main

import (
	"context"
	"flag"
	"log"

	"chirp/internal/config"
	"chirp/internal/database"
	"chirp/internal/repository"
	"chirp/internal/service"
)

func main() {
	username := flag.String("username", "", "Username for the new superuser")
	email := flag.String("email", "", "Email for the new superuser")
	password := flag.String("password", "", "Password for the new superuser")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		log.Fatal("Usage: createsuperuser -username <name> -email <email> -password <password>")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	svc := service.NewUserService(userRepo, followRepo, tweetRepo)

	user, err := svc.CreateSuperuser(context.Background(), service.RegisterInput{
		Username: *username,
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		log.Fatalf("Failed to create superuser: %v", err)
	}

	log.Printf("Superuser %q created with id %d", user.Username, user.ID)
}
