package routes

import (
	"jobmatch_backend/internal/handlers"
	"jobmatch_backend/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует HTTP API v1 и swagger.
// authMW проверяет токен, разрешения навешивают сами хэндлеры.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, authMW gin.HandlerFunc) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.HealthHandler.RegisterRoutes(api)
		appHandlers.MatchingHandler.RegisterRoutes(api, authMW)
		appHandlers.JobHandler.RegisterRoutes(api, authMW)
		appHandlers.WorkerHandler.RegisterRoutes(api, authMW)
		appHandlers.ApplicationHandler.RegisterRoutes(api, authMW)
		appHandlers.ReviewHandler.RegisterRoutes(api, authMW)
	}

	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	logger.Debug("Routes registered", "count", len(ginRouter.Routes()))
}
