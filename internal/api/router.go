package api

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	docs "github.com/sonofaryeetey/tailorflow/docs"
	"github.com/sonofaryeetey/tailorflow/internal/controller"
)

var (
	routerHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "api")})
	routerLogger  = slog.New(routerHandler)
)

// Controllers bundles the handlers the router mounts. They are constructed in
// main and injected; the router owns no state of its own.
type Controllers struct {
	Client *controller.ClientController
	Item   *controller.ItemController
	Intake *controller.IntakeController
}

func InitRoutes(ctl Controllers) *gin.Engine {
	routerLogger.Info("initializing routes")
	r := gin.Default()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// notblank rejects whitespace-only values that "required" lets through.
		v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"*"}
	corsConfig.AddAllowMethods("OPTIONS", "PUT", "PATCH", "DELETE")

	r.Use(cors.New(corsConfig))
	r.Use(metricsMiddleware())

	// SWAGGER
	docs.SwaggerInfo.BasePath = ""
	{
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// INTAKE WIZARD ROUTER
	intake := r.Group("/intake")
	{
		intake.POST("", ctl.Intake.Start)
		intake.GET("/:id", ctl.Intake.Get)
		intake.PUT("/:id/client", ctl.Intake.SubmitClient)
		intake.PUT("/:id/draft", ctl.Intake.UpdateDraft)
		intake.POST("/:id/draft/image", ctl.Intake.AttachImage)
		intake.POST("/:id/items", ctl.Intake.AddItem)
		intake.POST("/:id/review", ctl.Intake.Review)
		intake.POST("/:id/back", ctl.Intake.Back)
		intake.POST("/:id/save", ctl.Intake.Save)
		intake.DELETE("/:id", ctl.Intake.Abandon)
	}

	// CLIENT ROUTER
	clients := r.Group("/clients")
	{
		clients.GET("", ctl.Client.ListClients)
		clients.POST("", ctl.Client.CreateClient)
		clients.GET("/:id", ctl.Client.GetClientByID)
		clients.DELETE("/:id", ctl.Client.DeleteClient)
		clients.GET("/:id/items", ctl.Item.ListClientItems)
	}

	// ITEM ROUTER
	items := r.Group("/items")
	{
		items.GET("/:id", ctl.Item.GetItem)
		items.PATCH("/:id", ctl.Item.UpdateItem)
		items.DELETE("/:id", ctl.Item.DeleteItem)
	}

	return r
}
