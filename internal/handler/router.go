package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lifehub/internal/config"
	"lifehub/internal/handler/middleware"
	jwtpkg "lifehub/pkg/jwt"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Auth     *AuthHandler
	Invite   *InviteHandler
	Note     *NoteHandler
	Counter  *CounterHandler
	Wheel    *WheelHandler
	Exercise *ExerciseHandler
	Cuisine  *CuisineHandler
	List     *ListHandler
}

func SetupRouter(cfg *config.Config, logger *zap.Logger, jwtManager *jwtpkg.Manager, h Handlers) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtManager))
	{
		protected.GET("/auth/me", h.Auth.Me)

		invite := protected.Group("/invite")
		{
			invite.POST("/create", h.Invite.Create)
			invite.GET("/my-code", h.Invite.MyCode)
			invite.POST("/bind", h.Invite.Bind)
			invite.GET("/status", h.Invite.Status)
		}

		notes := protected.Group("/notes")
		{
			notes.GET("", h.Note.List)
			notes.POST("", h.Note.Save)
			notes.GET("/:date", h.Note.Get)
			notes.DELETE("/:date", h.Note.Delete)
		}

		counters := protected.Group("/counters")
		{
			counters.GET("", h.Counter.All)
			counters.POST("/update", h.Counter.Update)
			counters.POST("/reset", h.Counter.Reset)
		}

		wheel := protected.Group("/wheel")
		{
			wheel.GET("/settings", h.Wheel.ListSettings)
			wheel.POST("/settings", h.Wheel.SaveSetting)
			wheel.GET("/settings/:id", h.Wheel.GetSetting)
			wheel.DELETE("/settings/:id", h.Wheel.DeleteSetting)
			wheel.GET("/history", h.Wheel.ListHistory)
			wheel.POST("/history", h.Wheel.AddHistory)
		}

		exercises := protected.Group("/exercises")
		{
			exercises.GET("", h.Exercise.List)
			exercises.POST("", h.Exercise.Create)
			exercises.GET("/types", h.Exercise.ListTypes)
			exercises.POST("/types", h.Exercise.AddType)
			exercises.DELETE("/types/:id", h.Exercise.DeleteType)
			exercises.GET("/reminder", h.Exercise.Reminder)
			exercises.POST("/reminder", h.Exercise.SaveReminder)
			exercises.PUT("/:id", h.Exercise.Update)
			exercises.DELETE("/:id", h.Exercise.Delete)
			exercises.PUT("/:id/completed", h.Exercise.SetCompleted)
		}

		cuisine := protected.Group("/cuisine")
		{
			cuisine.GET("/categories", h.Cuisine.Categories)
			cuisine.POST("/categories", h.Cuisine.SaveCategories)
			cuisine.GET("/random", h.Cuisine.Random)
			cuisine.GET("/history", h.Cuisine.History)
			cuisine.POST("/history", h.Cuisine.AddHistory)
			cuisine.DELETE("/history", h.Cuisine.ClearHistory)
		}

		lists := protected.Group("/lists")
		{
			lists.GET("", h.List.List)
			lists.POST("", h.List.Create)
			lists.GET("/:id", h.List.Get)
			lists.GET("/:id/items", h.List.Items)
			lists.POST("/:id/items", h.List.AddItem)
			lists.POST("/:id/members", h.List.AddMember)
			lists.PUT("/items/:itemId", h.List.UpdateItem)
			lists.DELETE("/items/:itemId", h.List.DeleteItem)
		}
	}

	return r
}
