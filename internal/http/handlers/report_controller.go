package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crudkit/internal/app"
	"crudkit/internal/domain"
	"crudkit/internal/services"
)

// ReportController streams the task report PDF. Failures still use the
// JSON envelope so clients get notifications.
type ReportController struct {
	Report *app.TaskReportProcessor
	Hooks  *services.EntityHooks[[]byte]
}

func (ctl *ReportController) Mount(g *gin.RouterGroup) {
	g.GET("/tasks", ctl.HandleTaskReport)
}

func (ctl *ReportController) HandleTaskReport(c *gin.Context) {
	notifier := domain.NewCollector()
	service := services.NewResultService[[]byte](ctl.Report, ctl.Hooks, notifier)
	res := service.Execute(c.Request.Context())
	if !res.Succeeded() {
		WriteResult(c, res, notifier)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="task-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", res.Value)
}
