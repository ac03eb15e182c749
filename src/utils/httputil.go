package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Jaeki-Lee/mini-cloud/src/models"
	"github.com/Jaeki-Lee/mini-cloud/src/schemas"
)

// SendError writes an RFC 7807 error response and logs it.
func SendError(ctx *gin.Context, log *logrus.Logger, apiErr *schemas.ErrorResponse) {
	ctx.JSON(apiErr.Status, apiErr)
	log.WithFields(logrus.Fields{
		"status":   apiErr.Status,
		"instance": apiErr.Instance,
	}).Error(apiErr.Title + ": " + apiErr.Detail)
}

// MapUpstreamError translates a failed upstream call into the API error the
// facade returns. Meaningful upstream 4xx statuses are propagated; 5xx and
// network failures become 502; absent resources become 404.
func MapUpstreamError(err error, instance string) *schemas.ErrorResponse {
	if errors.Is(err, models.ErrNotFound) {
		return schemas.NewNotFoundError(err.Error(), instance)
	}
	if errors.Is(err, models.ErrNoProject) {
		return schemas.NewUnauthorizedError(err.Error(), instance)
	}

	var svcErr *models.ServiceError
	if errors.As(err, &svcErr) {
		if svcErr.StatusCode >= 400 && svcErr.StatusCode < 500 {
			return schemas.NewErrorResponse(svcErr.StatusCode, "Upstream Error", svcErr.Message, instance)
		}
		return schemas.NewBadGatewayError(svcErr.Message, instance)
	}

	return schemas.NewBadGatewayError(err.Error(), instance)
}
