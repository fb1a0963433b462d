package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"tapacademy.com/attendance/attendance/core"
	"tapacademy.com/attendance/attendance/model"
	"tapacademy.com/attendance/attendance/web/handlers"
	"tapacademy.com/attendance/security"
	"tapacademy.com/attendance/web/common"
	"tapacademy.com/attendance/web/middlewares"
)

type Endpoint struct {
	accounts *core.Accounts
	secret   []byte
	ttl      time.Duration
}

func NewEndpoint(accounts *core.Accounts, secret []byte, ttl time.Duration) *Endpoint {
	return &Endpoint{accounts: accounts, secret: secret, ttl: ttl}
}

// Register mounts the public routes on public and /me on protected.
func (ep *Endpoint) Register(public, protected *gin.RouterGroup) {
	public.POST("/register", ep.SignUp)
	public.POST("/login", ep.Login)
	protected.GET("/me", middlewares.WithIdentity(ep.Me))
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SessionDTO struct {
	model.UserView
	Token string `json:"token"`
}

func (ep *Endpoint) session(user *model.User) (*SessionDTO, error) {
	token, err := security.CreateIdentityToken(security.Identity{UserID: user.ID, Role: user.Role}, ep.secret, ep.ttl)
	if err != nil {
		return nil, err
	}
	return &SessionDTO{UserView: user.View(), Token: token}, nil
}

func (ep *Endpoint) SignUp(c *gin.Context) {
	var body core.Registration
	if err := c.ShouldBindJSON(&body); err != nil {
		handlers.BindError(c, err)
		return
	}

	user, err := ep.accounts.Register(c.Request.Context(), body)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	session, err := ep.session(user)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, common.NewSuccessResponse(session))
}

func (ep *Endpoint) Login(c *gin.Context) {
	var body LoginDTO
	if err := c.ShouldBindJSON(&body); err != nil {
		handlers.BindError(c, err)
		return
	}

	user, err := ep.accounts.Authenticate(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	session, err := ep.session(user)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(session))
}

func (ep *Endpoint) Me(c *gin.Context, identity security.Identity) {
	user, err := ep.accounts.Profile(c.Request.Context(), identity.UserID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(user.View()))
}
