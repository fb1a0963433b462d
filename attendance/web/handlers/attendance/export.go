package attendance

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"tapacademy.com/attendance/attendance/core"
	"tapacademy.com/attendance/attendance/report"
	"tapacademy.com/attendance/attendance/web/handlers"
	"tapacademy.com/attendance/web/common"
)

// Export downloads the filtered records as CSV or XLSX.
func (ep *Endpoint) Export(c *gin.Context) {
	format, err := report.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(err.Error()))
		return
	}

	records, ok := ep.filtered(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, format, core.BuildReportRows(records)); err != nil {
		handlers.WriteError(c, fmt.Errorf("export failed: %w", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, format.FileName()))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
