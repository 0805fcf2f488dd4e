package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/yongxin12/Macrohard/internal/handler"
	"github.com/yongxin12/Macrohard/internal/middleware"
	"github.com/yongxin12/Macrohard/internal/service"
)

// Setup configures the Gin engine for the main API with all routes and
// middleware. Endpoints work without a token; when one is sent, the
// authenticated user is attributed on processed documents and reports.
func Setup(
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	documentH *handler.DocumentHandler,
	assistantH *handler.AssistantHandler,
	reportH *handler.ReportHandler,
	clientH *handler.ClientHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	r.GET("/health", healthH.Check)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)

	api := v1.Group("")
	api.Use(middleware.OptionalAuth(authSvc))

	documents := api.Group("/documents")
	documents.POST("/process", documentH.Process)
	documents.GET("/:client_id", documentH.ListForClient)
	documents.GET("/:client_id/:document_id", documentH.Get)

	assistant := api.Group("/assistant")
	assistant.POST("/query", assistantH.Query)
	assistant.POST("/task-breakdown", assistantH.TaskBreakdown)

	reports := api.Group("/reports")
	reports.POST("/generate", reportH.Generate)
	reports.POST("/export", reportH.Export)
	reports.POST("/send", reportH.Send)

	clients := api.Group("/clients")
	clients.GET("", clientH.List)
	clients.GET("/:client_id", clientH.Get)

	return r
}

// SetupVault configures the Gin engine for the form vault binary. All form
// routes require a valid JWT.
func SetupVault(
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	formH *handler.FormHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	r.GET("/health", healthH.Check)

	r.POST("/auth/login", authH.Login)

	forms := r.Group("/forms")
	forms.Use(middleware.AuthMiddleware(authSvc))
	forms.POST("/information-insert", formH.InformationInsert)
	forms.GET("/content-confirmation", formH.ContentConfirmation)
	forms.POST("/document-fill", formH.DocumentFill)

	return r
}
