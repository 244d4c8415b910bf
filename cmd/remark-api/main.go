package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/remark-assist-api/api/swagger"
	"github.com/noah-isme/remark-assist-api/internal/handler"
	"github.com/noah-isme/remark-assist-api/internal/llm"
	appmiddleware "github.com/noah-isme/remark-assist-api/internal/middleware"
	"github.com/noah-isme/remark-assist-api/internal/service"
	"github.com/noah-isme/remark-assist-api/pkg/config"
	"github.com/noah-isme/remark-assist-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/remark-assist-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/remark-assist-api/pkg/middleware/requestid"
)

// @title Remark Assist API
// @version 0.1.0
// @description Report card remark assistant for Vietnamese elementary teachers
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	// The generator stays nil without an API key; generation endpoints then
	// degrade to empty results instead of failing.
	var generator *llm.Gemini
	if cfg.Gemini.APIKey != "" {
		generator, err = llm.NewGemini(context.Background(), llm.Config{APIKey: cfg.Gemini.APIKey, Model: cfg.Gemini.Model})
		if err != nil {
			logr.Sugar().Fatalw("failed to init gemini client", "error", err)
		}
	} else {
		logr.Warn("GEMINI_API_KEY not set, generation endpoints will return empty results")
	}

	importSvc := service.NewImportService(service.ImportConfig{HeaderScanRows: cfg.Import.HeaderScanRows}, metricsSvc, logr)
	remarkSvc := service.NewRemarkService(validate, logr)
	bankSvc := service.NewBankService(nil, metricsSvc, cfg.Gemini.Timeout, validate, logr)
	if generator != nil {
		bankSvc = service.NewBankService(generator, metricsSvc, cfg.Gemini.Timeout, validate, logr)
	}
	exportSvc := service.NewExportService(logr)
	sessionSvc := service.NewSessionService(logr)

	importHandler := handler.NewImportHandler(importSvc, cfg.Import.MaxFileSizeBytes)
	remarkHandler := handler.NewRemarkHandler(remarkSvc, bankSvc)
	bankHandler := handler.NewBankHandler(bankSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	sessionHandler := handler.NewSessionHandler(sessionSvc)
	subjectHandler := handler.NewSubjectHandler()
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(appmiddleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/imports", importHandler.Import)
		api.POST("/remarks/process", remarkHandler.Process)
		api.POST("/remarks/generate", remarkHandler.Generate)
		api.POST("/bank/generate", bankHandler.Generate)
		api.POST("/exports/remarks", exportHandler.Remarks)
		api.POST("/exports/bank", exportHandler.Bank)
		api.POST("/sessions", sessionHandler.Create)
		api.GET("/sessions/:id", sessionHandler.Get)
		api.PUT("/sessions/:id", sessionHandler.Update)
		api.GET("/subjects", subjectHandler.List)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
