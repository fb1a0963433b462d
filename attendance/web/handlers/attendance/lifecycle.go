package attendance

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tapacademy.com/attendance/attendance/model"
	"tapacademy.com/attendance/attendance/web/handlers"
	"tapacademy.com/attendance/security"
	"tapacademy.com/attendance/web/common"
)

func (ep *Endpoint) CheckIn(c *gin.Context, identity security.Identity) {
	ctx := c.Request.Context()

	rec, err := ep.manager.CheckIn(ctx, identity.UserID, ep.now())
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	if rec.Status == model.StatusLate {
		ep.notifyLate(ctx, rec)
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(rec))
}

func (ep *Endpoint) CheckOut(c *gin.Context, identity security.Identity) {
	rec, err := ep.manager.CheckOut(c.Request.Context(), identity.UserID, ep.now())
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(rec))
}

// Today responds with data null when the caller has not checked in.
func (ep *Endpoint) Today(c *gin.Context, identity security.Identity) {
	rec, err := ep.manager.TodayStatus(c.Request.Context(), identity.UserID, ep.now())
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	if rec == nil {
		c.JSON(http.StatusOK, common.NewSuccessResponse(nil))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(rec))
}

func (ep *Endpoint) MyHistory(c *gin.Context, identity security.Identity) {
	records, err := ep.manager.History(c.Request.Context(), identity.UserID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.NewSearchResponse(records))
}
