package attendance

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"tapacademy.com/attendance/attendance/core"
	"tapacademy.com/attendance/attendance/model"
	"tapacademy.com/attendance/attendance/web/handlers"
	"tapacademy.com/attendance/utils"
	"tapacademy.com/attendance/web/common"
)

func (ep *Endpoint) bindFilter(c *gin.Context) (core.RecordFilter, bool) {
	var filter core.RecordFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		handlers.BindError(c, err)
		return filter, false
	}
	if filter.Date != "" {
		if _, err := utils.ParseDate(filter.Date, ep.manager.Rules().Location); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
			return filter, false
		}
	}
	if filter.Status != "" {
		if _, err := model.ParseStatus(filter.Status); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(fmt.Sprintf("invalid status filter: %s", filter.Status)))
			return filter, false
		}
	}
	return filter, true
}

// filtered loads every joined record and applies the request's filter.
func (ep *Endpoint) filtered(c *gin.Context) ([]core.JoinedRecord, bool) {
	filter, ok := ep.bindFilter(c)
	if !ok {
		return nil, false
	}

	records, err := ep.manager.All(c.Request.Context())
	if err != nil {
		handlers.WriteError(c, err)
		return nil, false
	}
	return filter.Apply(records), true
}

func (ep *Endpoint) All(c *gin.Context) {
	records, ok := ep.filtered(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, common.NewSearchResponse(records))
}
