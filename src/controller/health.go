package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jaeki-Lee/mini-cloud/src/config"
)

const appVersion = "1.0.0"

type HealthController struct {
	Config config.GlobalConfig
}

func NewHealthController(cfg config.GlobalConfig) *HealthController {
	return &HealthController{Config: cfg}
}

// Health godoc
// @Summary Liveness check
// @Description Reports whether the process is up
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":      "UP",
		"application": "mini-cloud-backend",
		"timestamp":   time.Now().Format(time.RFC3339),
		"version":     appVersion,
	})
}

// ConfigEcho godoc
// @Summary Configuration echo
// @Description Echoes the upstream base URLs the process was configured with
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health/config [get]
func (c *HealthController) ConfigEcho(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"openstack": gin.H{
			"authUrl":    c.Config.KeystoneURL,
			"novaUrl":    c.Config.NovaURL,
			"neutronUrl": c.Config.NeutronURL,
			"glanceUrl":  c.Config.GlanceURL,
		},
		"environment": "development",
	})
}
