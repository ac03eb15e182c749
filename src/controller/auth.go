package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Jaeki-Lee/mini-cloud/src/middleware"
	"github.com/Jaeki-Lee/mini-cloud/src/models"
	"github.com/Jaeki-Lee/mini-cloud/src/schemas"
	"github.com/Jaeki-Lee/mini-cloud/src/service"
	"github.com/Jaeki-Lee/mini-cloud/src/utils"
)

type AuthController struct {
	Service *service.AuthService
	Log     *logrus.Logger
}

func NewAuthController(authService *service.AuthService, log *logrus.Logger) *AuthController {
	return &AuthController{
		Service: authService,
		Log:     log,
	}
}

// Login godoc
// @Summary Log in with OpenStack credentials
// @Description Authenticates against Keystone and starts a cookie session
// @Tags auth
// @Accept json
// @Produce json
// @Param LoginRequest body models.LoginRequest true "Credentials"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} schemas.ErrorResponse
// @Failure 401 {object} models.AuthResponse
// @Failure 502 {object} models.AuthResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.SendError(ctx, c.Log, schemas.NewBadRequestError("Invalid JSON format: "+err.Error(), ctx.Request.URL.Path))
		return
	}

	sess, resp, err := c.Service.Login(ctx.Request.Context(), req)
	if err != nil {
		ctx.JSON(loginFailureStatus(err), resp)
		return
	}

	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middleware.SessionCookieName, sess.ID, maxAge, "/", "", false, true)

	ctx.JSON(http.StatusOK, resp)
}

// loginFailureStatus maps a login error to its response status. Keystone
// rejecting the credentials is the caller's fault; everything else means
// the identity service itself misbehaved.
func loginFailureStatus(err error) int {
	var svcErr *models.ServiceError
	if errors.As(err, &svcErr) && svcErr.StatusCode >= 400 && svcErr.StatusCode < 500 {
		return http.StatusUnauthorized
	}
	return http.StatusBadGateway
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the current session
// @Tags auth
// @Produce json
// @Success 200 {object} models.LogoutResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if sessionID, err := ctx.Cookie(middleware.SessionCookieName); err == nil && sessionID != "" {
		c.Service.Logout(sessionID)
	}
	ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, models.LogoutResponse{Message: "Logout successful"})
}

// Me godoc
// @Summary Current user
// @Description Returns the identity stored for the caller's session
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserInfo
// @Failure 401 {object} schemas.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	sessionID, err := ctx.Cookie(middleware.SessionCookieName)
	if err != nil || sessionID == "" {
		utils.SendError(ctx, c.Log, schemas.NewUnauthorizedError("not authenticated", ctx.Request.URL.Path))
		return
	}

	sess, ok := c.Service.Validate(sessionID)
	if !ok {
		utils.SendError(ctx, c.Log, schemas.NewUnauthorizedError("not authenticated", ctx.Request.URL.Path))
		return
	}

	ctx.JSON(http.StatusOK, sess.Identity)
}

// Status godoc
// @Summary Authentication status
// @Description Reports whether the caller currently holds a live session
// @Tags auth
// @Produce json
// @Success 200 {object} models.AuthStatusResponse
// @Router /auth/status [get]
func (c *AuthController) Status(ctx *gin.Context) {
	status := models.AuthStatusResponse{SessionID: "none"}

	if sessionID, err := ctx.Cookie(middleware.SessionCookieName); err == nil && sessionID != "" {
		if _, ok := c.Service.Validate(sessionID); ok {
			status.Authenticated = true
			status.SessionID = sessionID
		}
	}

	ctx.JSON(http.StatusOK, status)
}
