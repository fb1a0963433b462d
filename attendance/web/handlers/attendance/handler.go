package attendance

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"tapacademy.com/attendance/attendance/core"
	"tapacademy.com/attendance/attendance/model"
	"tapacademy.com/attendance/infrastructure/communication"
	"tapacademy.com/attendance/web/middlewares"
)

type Endpoint struct {
	manager   *core.Manager
	directory core.Directory
	notifier  communication.Notifier
	now       func() time.Time
}

func NewEndpoint(manager *core.Manager, directory core.Directory, notifier communication.Notifier) *Endpoint {
	if notifier == nil {
		notifier = communication.Nop{}
	}
	return &Endpoint{manager: manager, directory: directory, notifier: notifier, now: time.Now}
}

// WithClock replaces the time source, used by tests.
func (ep *Endpoint) WithClock(now func() time.Time) *Endpoint {
	if now != nil {
		ep.now = now
	}
	return ep
}

// Register mounts the attendance routes. r must already require Authentication.
func Register(r *gin.RouterGroup, ep *Endpoint) {
	r.POST("/checkin", middlewares.WithIdentity(ep.CheckIn))
	r.POST("/checkout", middlewares.WithIdentity(ep.CheckOut))
	r.GET("/today", middlewares.WithIdentity(ep.Today))
	r.GET("/my-history", middlewares.WithIdentity(ep.MyHistory))
	r.GET("/stats", middlewares.WithIdentity(ep.Stats))

	manager := r.Group("", middlewares.RequireRole(model.RoleManager))
	manager.GET("/all", ep.All)
	manager.GET("/summary", ep.Summary)
	manager.GET("/export", ep.Export)
}

// notifyLate never fails the request; errors are only logged.
func (ep *Endpoint) notifyLate(ctx context.Context, rec *model.AttendanceRecord) {
	who := rec.UserID
	users, err := ep.directory.Resolve(ctx, []string{rec.UserID})
	if err == nil {
		if u, ok := users[rec.UserID]; ok {
			who = fmt.Sprintf("%s (%s)", u.Name, u.EmployeeID)
		}
	}

	local := rec.CheckInTime.In(ep.manager.Rules().Location)
	msg := fmt.Sprintf("Late check-in: %s at %s on %s", who, local.Format("15:04"), rec.Date)
	if err := ep.notifier.Info(msg); err != nil {
		log.Printf("[ERROR] late check-in notice for %s: %v", rec.UserID, err)
	}
}
