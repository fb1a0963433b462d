package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"tapacademy.com/attendance/attendance/model"
	"tapacademy.com/attendance/config"
	"tapacademy.com/attendance/security"
)

func main() {
	userID := flag.String("user", "", "user id to embed in the token")
	role := flag.String("role", string(model.RoleEmployee), "employee or manager")
	flag.Parse()

	if *userID == "" || !model.Role(*role).Valid() {
		flag.Usage()
		log.Fatal("a user id and a valid role are required")
	}

	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	secret, err := cfg.Secret()
	if err != nil {
		log.Fatal(err)
	}

	token, err := security.CreateIdentityToken(security.Identity{UserID: *userID, Role: model.Role(*role)}, secret, cfg.TokenTTL)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
