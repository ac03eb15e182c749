package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Jaeki-Lee/mini-cloud/src/config"
	"github.com/Jaeki-Lee/mini-cloud/src/controller"
	"github.com/Jaeki-Lee/mini-cloud/src/middleware"
	"github.com/Jaeki-Lee/mini-cloud/src/openstack"
	"github.com/Jaeki-Lee/mini-cloud/src/service"
	"github.com/Jaeki-Lee/mini-cloud/src/session"
)

// NewRouter wires the OpenStack clients, services and controllers and
// registers every route. The session store is injected so tests can run
// against an isolated instance.
func NewRouter(cfg config.GlobalConfig, store *session.Store, log *logrus.Logger) *gin.Engine {
	identity := openstack.NewIdentityClient(cfg.KeystoneURL, cfg.UpstreamTimeout)
	compute := openstack.NewComputeClient(cfg.NovaURL, cfg.UpstreamTimeout)
	network := openstack.NewNetworkClient(cfg.NeutronURL, cfg.UpstreamTimeout)
	image := openstack.NewImageClient(cfg.GlanceURL, cfg.UpstreamTimeout)

	authService := service.NewAuthService(identity, store, log)
	instanceService := service.NewInstanceService(compute, log)
	networkService := service.NewNetworkService(network, log)
	imageService := service.NewImageService(image, log)
	statsService := service.NewStatsService(compute, image, log)

	authController := controller.NewAuthController(authService, log)
	instanceController := controller.NewInstanceController(instanceService, log)
	networkController := controller.NewNetworkController(networkService, log)
	imageController := controller.NewImageController(imageService, log)
	statsController := controller.NewStatsController(statsService, log)
	healthController := controller.NewHealthController(cfg)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", authController.Login)
	auth.POST("/logout", authController.Logout)
	auth.GET("/me", authController.Me)
	auth.GET("/status", authController.Status)

	health := api.Group("/health")
	health.GET("", healthController.Health)
	health.GET("/config", healthController.ConfigEcho)

	protected := api.Group("")
	protected.Use(middleware.SessionRequired(authService, log))

	protected.GET("/instances", instanceController.List)
	protected.POST("/instances", instanceController.Create)
	protected.GET("/instances/:instanceId", instanceController.Get)
	protected.POST("/instances/:instanceId/action", instanceController.Action)
	protected.DELETE("/instances/:instanceId", instanceController.Delete)

	protected.GET("/flavors", instanceController.Flavors)
	protected.GET("/images", imageController.List)

	protected.GET("/networks", networkController.ListNetworks)
	protected.GET("/networks/:networkId", networkController.GetNetwork)
	protected.GET("/security-groups", networkController.ListSecurityGroups)
	protected.GET("/security-groups/:securityGroupId", networkController.GetSecurityGroup)

	protected.GET("/stats", statsController.Stats)

	return router
}
