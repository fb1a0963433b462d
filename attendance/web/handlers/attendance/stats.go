package attendance

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tapacademy.com/attendance/attendance/core"
	"tapacademy.com/attendance/attendance/web/handlers"
	"tapacademy.com/attendance/security"
	"tapacademy.com/attendance/web/common"
)

type EmployeeStatsDTO struct {
	Monthly      core.MonthlySummary `json:"monthly"`
	Distribution []core.NamedCount   `json:"distribution"`
	WeeklyHours  []core.DayHours     `json:"weeklyHours"`
}

type ManagerSummaryDTO struct {
	Today       core.DailySummary `json:"today"`
	WeeklyTrend []core.DayCount   `json:"weeklyTrend"`
	Departments []core.NamedCount `json:"departments"`
}

func (ep *Endpoint) Stats(c *gin.Context, identity security.Identity) {
	records, err := ep.manager.History(c.Request.Context(), identity.UserID)
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	now := ep.now()
	loc := ep.manager.Rules().Location
	monthly := core.Monthly(records, now, loc)

	c.JSON(http.StatusOK, common.NewSuccessResponse(EmployeeStatsDTO{
		Monthly:      monthly,
		Distribution: monthly.Distribution(),
		WeeklyHours:  core.WeeklyHours(records, now, loc),
	}))
}

func (ep *Endpoint) Summary(c *gin.Context) {
	records, err := ep.manager.All(c.Request.Context())
	if err != nil {
		handlers.WriteError(c, err)
		return
	}

	now := ep.now()
	rules := ep.manager.Rules()

	c.JSON(http.StatusOK, common.NewSuccessResponse(ManagerSummaryDTO{
		Today:       core.Daily(records, rules.Today(now)),
		WeeklyTrend: core.WeeklyPresence(records, now, rules.Location),
		Departments: core.DepartmentDistribution(records),
	}))
}
