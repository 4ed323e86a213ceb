package app

import (
	"crewboard/internal/config"
	"crewboard/internal/handlers"
	"crewboard/internal/repo"
	"crewboard/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, users repo.UserRepo, checklists repo.ChecklistRepo, feedbacks repo.FeedbackRepo) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api")

	userSvc := service.NewUserService(users)
	authHandler := handlers.NewAuthHandler(userSvc)
	api.POST("/login", authHandler.Login)

	checklistSvc := service.NewChecklistService(checklists)
	checklistHandler := handlers.NewChecklistHandler(checklistSvc)
	registerChecklistRoutes(api, checklistHandler)

	feedbackSvc := service.NewFeedbackService(feedbacks)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackSvc)
	registerFeedbackRoutes(api, feedbackHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Crewboard API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerChecklistRoutes(api *gin.RouterGroup, h *handlers.ChecklistHandler) {
	api.GET("/checklists", h.List)
	api.POST("/checklists", h.Create)
	api.PUT("/checklists/:id", h.Update)
	api.DELETE("/checklists/:id", h.Delete)
	api.PUT("/checklists/:id/status", h.SetStatus)
	api.PUT("/checklists/:id/items", h.ToggleItem)
}

func registerFeedbackRoutes(api *gin.RouterGroup, h *handlers.FeedbackHandler) {
	api.GET("/feedbacks", h.List)
	api.POST("/feedbacks", h.Create)
	api.PUT("/feedbacks/:id", h.Update)
	api.DELETE("/feedbacks/:id", h.Delete)
}
