package main

import (
	"context"
	"flag"
	"log"

	"github.com/google/uuid"
	"tapacademy.com/attendance/attendance/model"
	"tapacademy.com/attendance/attendance/store"
	"tapacademy.com/attendance/config"
	"tapacademy.com/attendance/core"
	"tapacademy.com/attendance/security"
	"tapacademy.com/attendance/utils"
)

// seedUser ids are derived from the email so re-seeding updates in place.
type seedUser struct {
	Name       string
	Email      string
	EmployeeID string
	Department string
	Role       model.Role
}

var seedUsers = []seedUser{
	{Name: "Meera Shah", Email: "manager@example.com", EmployeeID: "MGR001", Department: "Operations", Role: model.RoleManager},
	{Name: "Asha Rao", Email: "asha@example.com", EmployeeID: "EMP001", Department: "Engineering", Role: model.RoleEmployee},
	{Name: "Ben Carter", Email: "ben@example.com", EmployeeID: "EMP002", Department: "Sales", Role: model.RoleEmployee},
	{Name: "Chen Li", Email: "chen@example.com", EmployeeID: "EMP003", Department: "Engineering", Role: model.RoleEmployee},
}

func main() {
	seed := flag.Bool("seed", false, "insert or refresh the demo users")
	password := flag.String("password", "password123", "password for seeded users")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.DSN == "" {
		log.Fatal("DSN is required")
	}

	db, err := core.ConnectDB(cfg.DSN, core.LogLevelInfo)
	if err != nil {
		log.Fatal(err)
	}
	ex := store.Direct{DB: db}

	if err := store.Migrate(ctx, ex); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Printf("[INFO] migrated %d tables", len(store.Models))

	if !*seed {
		return
	}

	hash, err := security.HashPassword(*password)
	if err != nil {
		log.Fatal(err)
	}

	users := utils.Map(seedUsers, func(s seedUser) model.User {
		return model.User{
			ID:           uuid.NewSHA1(uuid.NameSpaceOID, []byte(s.Email)).String(),
			Name:         s.Name,
			Email:        s.Email,
			PasswordHash: hash,
			EmployeeID:   s.EmployeeID,
			Department:   utils.Ptr(s.Department),
			Role:         s.Role,
		}
	})

	if err := store.NewUserStore(ex).Upsert(ctx, users); err != nil {
		log.Fatalf("failed to seed users: %v", err)
	}
	log.Printf("[INFO] seeded %d users", len(users))
}
