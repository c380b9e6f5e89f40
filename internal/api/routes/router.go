package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/reqflow-io/reqflow/internal/api/handlers"
	"github.com/reqflow-io/reqflow/internal/api/middleware"
	"github.com/reqflow-io/reqflow/internal/application"
	"github.com/reqflow-io/reqflow/internal/repository"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, drafts application.DraftStore) *application.Services {
	repos := repository.NewRepositories(db)
	services := application.New(repos, drafts)
	h := handlers.New(services, repos, r)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/ws/requests/:id/events", h.WS.StreamSessionEvents)

		forms := auth.Group("/forms")
		{
			forms.GET("", h.Form.ListForms)
			forms.GET("/:id", h.Form.GetForm)
			forms.POST("", middleware.AdminOnly(), h.Form.CreateForm)
		}

		requests := auth.Group("/requests")
		{
			requests.POST("", h.Request.Open)
			requests.GET("/:id", h.Request.Get)
			requests.DELETE("/:id", h.Request.Discard)
			requests.PUT("/:id/fields", h.Request.FieldChange)
			requests.POST("/:id/sections/:sectionId/duplicate", h.Request.DuplicateSection)
			requests.DELETE("/:id/duplicates/:duplicationId", h.Request.RemoveSection)
			requests.POST("/:id/submit", h.Request.Submit)
			requests.PUT("/:id/draft", h.Request.SaveDraft)
			requests.GET("/:id/draft", h.Request.LoadDraft)
		}

		auth.POST("/canvass", h.Canvass.Canvass)
	}

	return services
}
