package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"request-market/internal/handler/api"
	"request-market/internal/handler/middleware"
	"request-market/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	requestHandler *api.RequestHandler,
	responseHandler *api.ResponseHandler,
	urgentHandler *api.UrgentBoostHandler,
	entitlementHandler *api.EntitlementHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, requestHandler, responseHandler, urgentHandler, entitlementHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	requestHandler *api.RequestHandler,
	responseHandler *api.ResponseHandler,
	urgentHandler *api.UrgentBoostHandler,
	entitlementHandler *api.EntitlementHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		requests := apiGroup.Group("/requests")
		{
			// Listing and detail stay open: anonymous viewers get masked contacts.
			browse := requests.Group("")
			browse.Use(authMiddleware.OptionalAuth())
			addRoutes(browse, []route{
				{Method: http.MethodGet, Path: "", Handler: requestHandler.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: requestHandler.GetByID},
				{Method: http.MethodGet, Path: "/:id/responses", Handler: responseHandler.ListByRequest},
			})

			authed := requests.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodPost, Path: "", Handler: requestHandler.Create},
				{Method: http.MethodGet, Path: "/mine", Handler: requestHandler.ListMine},
				{Method: http.MethodPut, Path: "/:id", Handler: requestHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: requestHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: requestHandler.AcceptResponse},
				{Method: http.MethodPost, Path: "/:id/clear-accepted", Handler: requestHandler.ClearAccepted},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: requestHandler.MarkCompleted},
				{Method: http.MethodPost, Path: "/:id/responses", Handler: responseHandler.Create},
				{Method: http.MethodPost, Path: "/:id/urgent-boost", Handler: urgentHandler.Start},
				{Method: http.MethodPost, Path: "/:id/urgent-boost/confirm", Handler: urgentHandler.Confirm},
				{Method: http.MethodDelete, Path: "/:id/urgent-boost", Handler: urgentHandler.Clear},
			})
		}

		responses := apiGroup.Group("/responses")
		responses.Use(authMiddleware.RequireAuth())
		{
			addRoutes(responses, []route{
				{Method: http.MethodPut, Path: "/:id", Handler: responseHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: responseHandler.Delete},
			})
		}

		me := apiGroup.Group("/me")
		me.Use(authMiddleware.RequireAuth())
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "/entitlements", Handler: entitlementHandler.Me},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPut, Path: "/countries/:country/urgent-boost-price", Handler: urgentHandler.SetPrice},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
