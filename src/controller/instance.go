package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Jaeki-Lee/mini-cloud/src/middleware"
	"github.com/Jaeki-Lee/mini-cloud/src/models"
	"github.com/Jaeki-Lee/mini-cloud/src/schemas"
	"github.com/Jaeki-Lee/mini-cloud/src/service"
	"github.com/Jaeki-Lee/mini-cloud/src/utils"
)

type InstanceController struct {
	Service *service.InstanceService
	Log     *logrus.Logger
}

func NewInstanceController(instanceService *service.InstanceService, log *logrus.Logger) *InstanceController {
	return &InstanceController{
		Service: instanceService,
		Log:     log,
	}
}

// List godoc
// @Summary List instances
// @Description Lists every instance in the session's project
// @Tags instances
// @Produce json
// @Success 200 {object} models.InstanceList
// @Failure 401 {object} schemas.ErrorResponse
// @Failure 502 {object} schemas.ErrorResponse
// @Router /instances [get]
func (c *InstanceController) List(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		utils.SendError(ctx, c.Log, schemas.NewUnauthorizedError("no session in request context", ctx.Request.URL.Path))
		return
	}

	instances, err := c.Service.List(ctx.Request.Context(), sess)
	if err != nil {
		utils.SendError(ctx, c.Log, utils.MapUpstreamError(err, ctx.Request.URL.Path))
		return
	}
	ctx.JSON(http.StatusOK, instances)
}

// Get godoc
// @Summary Instance detail
// @Description Returns the detail view of one instance
// @Tags instances
// @Produce json
// @Param instanceId path string true "Instance ID"
// @Success 200 {object} models.Instance
// @Failure 401 {object} schemas.ErrorResponse
// @Failure 404 {object} schemas.ErrorResponse
// @Router /instances/{instanceId} [get]
func (c *InstanceController) Get(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		utils.SendError(ctx, c.Log, schemas.NewUnauthorizedError("no session in request context", ctx.Request.URL.Path))
		return
	}

	instance, err := c.Service.Get(ctx.Request.Context(), sess, ctx.Param("instanceId"))
	if err != nil {
		utils.SendError(ctx, c.Log, utils.MapUpstreamError(err, ctx.Request.URL.Path))
		return
	}
	ctx.JSON(http.StatusOK, instance)
}

// Create godoc
// @Summary Create instance
// @Description Creates a new instance in the session's project
// @Tags instances
// @Accept json
// @Produce json
// @Param CreateInstanceRequest body models.CreateInstanceRequest true "Instance spec"
// @Success 200 {object} models.Instance
// @Failure 400 {object} schemas.ErrorResponse
// @Failure 401 {object} schemas.ErrorResponse
// @Failure 502 {object} schemas.ErrorResponse
// @Router /instances [post]
func (c *InstanceController) Create(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		utils.SendError(ctx, c.Log, schemas.NewUnauthorizedError("no session in request context", ctx.Request.URL.Path))
		return
	}

	var req models.CreateInstanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.SendError(ctx, c.Log, schemas.NewBadRequestError("Invalid JSON format: "+err.Error(), ctx.Request.URL.Path))
		return
	}

	instance, err := c.Service.Create(ctx.Request.Context(), sess, req)
	if err != nil {
		utils.SendError(ctx, c.Log, utils.MapUpstreamError(err, ctx.Request.URL.Path))
		return
	}
	ctx.JSON(http.StatusOK, instance)
}

// Action godoc
// @Summary Perform instance action
// @Description Issues a lifecycle action (start/stop/restart/...) on an instance
// @Tags instances
// @Accept json
// @Produce json
// @Param instanceId path string true "Instance ID"
// @Param InstanceActionRequest body models.InstanceActionRequest true "Action"
// @Success 200 {object} models.InstanceActionResponse
// @Failure 400 {object} schemas.ErrorResponse
// @Failure 401 {object} schemas.ErrorResponse
// @Failure 502 {object} schemas.ErrorResponse
// @Router /instances/{instanceId}/action [post]
func (c *InstanceController) Action(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		utils.SendError(ctx, c.Log, schemas.NewUnauthorizedError("no session in request context", ctx.Request.URL.Path))
		return
	}

	var req models.InstanceActionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.SendError(ctx, c.Log, schemas.NewBadRequestError("Invalid JSON format: "+err.Error(), ctx.Request.URL.Path))
		return
	}
	if !req.Action.Valid() {
		utils.SendError(ctx, c.Log, schemas.NewBadRequestError(fmt.Sprintf("unknown action %q", req.Action), ctx.Request.URL.Path))
		return
	}

	if err := c.Service.PerformAction(ctx.Request.Context(), sess, ctx.Param("instanceId"), req.Action, req.Force); err != nil {
		utils.SendError(ctx, c.Log, utils.MapUpstreamError(err, ctx.Request.URL.Path))
		return
	}

	ctx.JSON(http.StatusOK, models.InstanceActionResponse{
		Success: true,
		Message: fmt.Sprintf("Action %s performed successfully", req.Action),
	})
}

// Delete godoc
// @Summary Delete instance
// @Description Deletes an instance
// @Tags instances
// @Produce json
// @Param instanceId path string true "Instance ID"
// @Success 200 {object} models.InstanceActionResponse
// @Failure 401 {object} schemas.ErrorResponse
// @Failure 502 {object} schemas.ErrorResponse
// @Router /instances/{instanceId} [delete]
func (c *InstanceController) Delete(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		utils.SendError(ctx, c.Log, schemas.NewUnauthorizedError("no session in request context", ctx.Request.URL.Path))
		return
	}

	if err := c.Service.PerformAction(ctx.Request.Context(), sess, ctx.Param("instanceId"), models.ActionDelete, false); err != nil {
		utils.SendError(ctx, c.Log, utils.MapUpstreamError(err, ctx.Request.URL.Path))
		return
	}

	ctx.JSON(http.StatusOK, models.InstanceActionResponse{
		Success: true,
		Message: "Instance deleted successfully",
	})
}

// Flavors godoc
// @Summary List flavors
// @Description Lists the flavors visible to the session
// @Tags flavors
// @Produce json
// @Success 200 {array} models.Flavor
// @Failure 401 {object} schemas.ErrorResponse
// @Failure 502 {object} schemas.ErrorResponse
// @Router /flavors [get]
func (c *InstanceController) Flavors(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		utils.SendError(ctx, c.Log, schemas.NewUnauthorizedError("no session in request context", ctx.Request.URL.Path))
		return
	}

	flavors, err := c.Service.Flavors(ctx.Request.Context(), sess)
	if err != nil {
		utils.SendError(ctx, c.Log, utils.MapUpstreamError(err, ctx.Request.URL.Path))
		return
	}
	ctx.JSON(http.StatusOK, flavors)
}
