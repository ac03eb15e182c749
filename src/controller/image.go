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

type ImageController struct {
	Service *service.ImageService
	Log     *logrus.Logger
}

func NewImageController(imageService *service.ImageService, log *logrus.Logger) *ImageController {
	return &ImageController{
		Service: imageService,
		Log:     log,
	}
}

// List godoc
// @Summary List images
// @Description Lists every image visible to the session; degrades to an empty list when Glance is unreachable
// @Tags images
// @Produce json
// @Success 200 {array} models.Image
// @Failure 401 {object} schemas.ErrorResponse
// @Router /images [get]
func (c *ImageController) List(ctx *gin.Context) {
	sess, ok := middleware.SessionFromContext(ctx)
	if !ok {
		utils.SendError(ctx, c.Log, schemas.NewUnauthorizedError("no session in request context", ctx.Request.URL.Path))
		return
	}

	ctx.JSON(http.StatusOK, c.Service.Images(ctx.Request.Context(), sess))
}
