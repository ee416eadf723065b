package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/ariebrainware/geresapi/certificate"
	"github.com/ariebrainware/geresapi/config"
	"github.com/ariebrainware/geresapi/database"
	"github.com/ariebrainware/geresapi/docs"
	"github.com/ariebrainware/geresapi/endpoint"
	"github.com/ariebrainware/geresapi/middleware"
)

// setupRouter wires middleware and routes. It has no side effects beyond the
// returned engine and the swagger metadata, so tests can call it directly.
func setupRouter(cfg *config.Config, provider *database.Provider, renderer *certificate.Renderer, logger *zap.Logger) *gin.Engine {
	docs.SwaggerInfo.Title = cfg.AppName
	docs.SwaggerInfo.Description = cfg.AppDescription
	docs.SwaggerInfo.Version = cfg.AppVersion

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	router.GET("/paciente", endpoint.GetPaciente(provider))
	router.GET("/atenciones", endpoint.GetAtenciones(provider, cfg.MaxPerPage))
	router.GET("/atenciones/excel", endpoint.ExportAtenciones(provider, cfg.MaxPerPage))

	limiter := middleware.RateLimiter(middleware.RateLimitConfig{
		Limit:  cfg.CertRateLimit,
		Window: cfg.CertRateWindow,
	}, logger)
	router.GET("/certificado/", limiter, endpoint.GenerateCertificate(renderer))

	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
