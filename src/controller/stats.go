package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Jaeki-Lee/mini-cloud/src/middleware"
	"github.com/Jaeki-Lee/mini-cloud/src/schemas"
	"github.com/Jaeki-Lee/mini-cloud/src/service"
	"github.com/Jaeki-Lee/mini-cloud/src/utils"
)

type StatsController struct {
	Service *service.StatsService
	Log     *logrus.Logger
}

func NewStatsController(statsService *service.StatsService, log *logrus.Logger) *StatsController {
	return &StatsController{
		Service: statsService,
		Log:     log,
	}
}

// Stats godoc
// @Summary Dashboard statistics
// @Description Aggregated instance and image counts for the session's project
// @Tags stats
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Failure 401 {object} schemas.ErrorResponse
// @Failure 502 {object} schemas.ErrorResponse
// @Router /stats [get]
func (c *StatsController) Stats(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		utils.SendError(ctx, c.Log, schemas.NewUnauthorizedError("no session in request context", ctx.Request.URL.Path))
		return
	}

	stats, err := c.Service.Stats(ctx.Request.Context(), sess)
	if err != nil {
		utils.SendError(ctx, c.Log, utils.MapUpstreamError(err, ctx.Request.URL.Path))
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
