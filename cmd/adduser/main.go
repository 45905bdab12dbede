// Command adduser creates or updates an API user from the command line.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pitwall/pitwallapi/config"
	"github.com/pitwall/pitwallapi/db"
	"github.com/pitwall/pitwallapi/models"
)

func main() {
	email := flag.String("email", "", "user email (required)")
	password := flag.String("password", "", "plaintext password (required)")
	name := flag.String("name", "", "display name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg := config.Load()
	bdb := db.Setup(cfg)
	defer bdb.Close()

	ctx := context.Background()
	if err := db.CreateTables(ctx, bdb); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	user := &models.User{
		Email:        *email,
		DisplayName:  *name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	_, err = bdb.NewInsert().
		Model(user).
		On("CONFLICT (email) DO UPDATE").
		Set("password_hash = EXCLUDED.password_hash").
		Set("display_name = EXCLUDED.display_name").
		Returning("id").
		Exec(ctx)
	if err != nil {
		log.Fatalf("upsert user: %v", err)
	}

	prefs := &models.UserPreference{
		UserID:          user.ID,
		FollowedSeries:  "[]",
		FollowedDrivers: "[]",
		FollowedTeams:   "[]",
	}
	_, err = bdb.NewInsert().
		Model(prefs).
		On("CONFLICT (user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		log.Fatalf("create preferences: %v", err)
	}

	log.Printf("user %s ready (id=%d)", *email, user.ID)
}
