package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	attendance "tapacademy.com/attendance/attendance/core"
	"tapacademy.com/attendance/attendance/store"
	"tapacademy.com/attendance/attendance/web/server"
	"tapacademy.com/attendance/config"
	"tapacademy.com/attendance/core"
)

// serverSettings validates cfg and derives the signing secret and rules.
func serverSettings(cfg config.Config) ([]byte, attendance.Rules, error) {
	if err := cfg.Validate(); err != nil {
		return nil, attendance.Rules{}, err
	}
	secret, err := cfg.Secret()
	if err != nil {
		return nil, attendance.Rules{}, err
	}
	rules, err := cfg.Rules()
	if err != nil {
		return nil, attendance.Rules{}, err
	}
	return secret, rules, nil
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}
	secret, rules, err := serverSettings(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("[INFO] time zone %s, late after %s, half day under %s", rules.Location, rules.LateCutoff, rules.HalfDayThreshold)

	dm, err := core.New(cfg.DSN, cfg.MaxConnections)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()
	dm.LogLevel = cfg.GormLogLevel()

	if cfg.Slack.BotToken != "" {
		log.Printf("[INFO] slack notifications enabled")
	}

	r := server.New(gin.Default(), server.Options{
		Store:       store.NewAttendanceStore(dm),
		Users:       store.NewUserStore(dm),
		Rules:       rules,
		Secret:      secret,
		TokenTTL:    cfg.TokenTTL,
		CORSOrigins: cfg.CORSOrigins,
		Notifier:    cfg.Notifier(),
		Ping:        dm.Ping,
	})

	log.Printf("[INFO] listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
