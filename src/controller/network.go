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

type NetworkController struct {
	Service *service.NetworkService
	Log     *logrus.Logger
}

func NewNetworkController(networkService *service.NetworkService, log *logrus.Logger) *NetworkController {
	return &NetworkController{
		Service: networkService,
		Log:     log,
	}
}

// ListNetworks godoc
// @Summary List networks
// @Description Lists the networks visible to the session, filtered to its project when scoped
// @Tags networks
// @Produce json
// @Success 200 {array} models.Network
// @Failure 401 {object} schemas.ErrorResponse
// @Router /networks [get]
func (c *NetworkController) ListNetworks(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		utils.SendError(ctx, c.Log, schemas.NewUnauthorizedError("no session in request context", ctx.Request.URL.Path))
		return
	}

	ctx.JSON(http.StatusOK, c.Service.Networks(ctx.Request.Context(), sess))
}

// GetNetwork godoc
// @Summary Network detail
// @Description Returns one network
// @Tags networks
// @Produce json
// @Param networkId path string true "Network ID"
// @Success 200 {object} models.Network
// @Failure 401 {object} schemas.ErrorResponse
// @Failure 404 {object} schemas.ErrorResponse
// @Router /networks/{networkId} [get]
func (c *NetworkController) GetNetwork(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		utils.SendError(ctx, c.Log, schemas.NewUnauthorizedError("no session in request context", ctx.Request.URL.Path))
		return
	}

	network, err := c.Service.Network(ctx.Request.Context(), sess, ctx.Param("networkId"))
	if err != nil {
		utils.SendError(ctx, c.Log, utils.MapUpstreamError(err, ctx.Request.URL.Path))
		return
	}
	ctx.JSON(http.StatusOK, network)
}

// ListSecurityGroups godoc
// @Summary List security groups
// @Description Lists the security groups visible to the session
// @Tags security-groups
// @Produce json
// @Success 200 {array} models.SecurityGroup
// @Failure 401 {object} schemas.ErrorResponse
// @Router /security-groups [get]
func (c *NetworkController) ListSecurityGroups(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		utils.SendError(ctx, c.Log, schemas.NewUnauthorizedError("no session in request context", ctx.Request.URL.Path))
		return
	}

	ctx.JSON(http.StatusOK, c.Service.SecurityGroups(ctx.Request.Context(), sess))
}

// GetSecurityGroup godoc
// @Summary Security group detail
// @Description Returns one security group with its rules
// @Tags security-groups
// @Produce json
// @Param securityGroupId path string true "Security Group ID"
// @Success 200 {object} models.SecurityGroup
// @Failure 401 {object} schemas.ErrorResponse
// @Failure 404 {object} schemas.ErrorResponse
// @Router /security-groups/{securityGroupId} [get]
func (c *NetworkController) GetSecurityGroup(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		utils.SendError(ctx, c.Log, schemas.NewUnauthorizedError("no session in request context", ctx.Request.URL.Path))
		return
	}

	group, err := c.Service.SecurityGroup(ctx.Request.Context(), sess, ctx.Param("securityGroupId"))
	if err != nil {
		utils.SendError(ctx, c.Log, utils.MapUpstreamError(err, ctx.Request.URL.Path))
		return
	}
	ctx.JSON(http.StatusOK, group)
}
