package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"tapacademy.com/attendance/attendance/core"
	"tapacademy.com/attendance/attendance/web/handlers/attendance"
	"tapacademy.com/attendance/attendance/web/handlers/auth"
	"tapacademy.com/attendance/infrastructure/communication"
	"tapacademy.com/attendance/web/common"
	"tapacademy.com/attendance/web/middlewares"
)

// Users is the account store that also serves as the user directory.
type Users interface {
	core.UserStore
	core.Directory
}

type Options struct {
	Store       core.Store
	Users       Users
	Rules       core.Rules
	Secret      []byte
	TokenTTL    time.Duration
	CORSOrigins []string
	Notifier    communication.Notifier
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Ping reports database health on /ping. Nil means always healthy.
	Ping func(ctx context.Context) error
}

func New(engine *gin.Engine, opts Options) *gin.Engine {
	engine.Use(middlewares.CORS(opts.CORSOrigins))

	engine.GET("/ping", func(c *gin.Context) {
		if opts.Ping != nil {
			if err := opts.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, common.NewErrorResponse("database unavailable"))
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	manager := core.NewManager(opts.Store, opts.Users, opts.Rules)
	accounts := core.NewAccounts(opts.Users)

	api := engine.Group("/api")
	protected := api.Group("", middlewares.Authentication(opts.Secret))

	auth.NewEndpoint(accounts, opts.Secret, opts.TokenTTL).
		Register(api.Group("/auth"), protected.Group("/auth"))

	attendance.Register(protected.Group("/attendance"),
		attendance.NewEndpoint(manager, opts.Users, opts.Notifier).WithClock(opts.Clock))

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("route not found"))
	})

	return engine
}
