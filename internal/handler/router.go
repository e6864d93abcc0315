package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkpass/internal/domain/auth"
	"parkpass/internal/handler/api"
	"parkpass/internal/handler/middleware"
	"parkpass/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Token   *api.TokenHandler
	Scan    *api.ScanHandler
	Session *api.SessionHandler
	Lot     *api.LotHandler
	Invoice *api.InvoiceHandler
	Billing *api.BillingHandler
}

func NewHandlers(
	token *api.TokenHandler,
	scan *api.ScanHandler,
	session *api.SessionHandler,
	lot *api.LotHandler,
	invoice *api.InvoiceHandler,
	billing *api.BillingHandler,
) Handlers {
	return Handlers{Token: token, Scan: scan, Session: session, Lot: lot, Invoice: invoice, Billing: billing}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)
	if gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	driverOnly := authMiddleware.RequireRole(auth.RoleDriver)
	operator := authMiddleware.RequireRoleAtLeast(auth.RoleOperator)
	admin := authMiddleware.RequireRoleAtLeast(auth.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/lots/:id/availability", Handler: h.Lot.Availability},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "/tokens", Handler: h.Token.Mint, Mw: []gin.HandlerFunc{driverOnly}},
			{Method: http.MethodGet, Path: "/invoices/:year/:month", Handler: h.Invoice.Get, Mw: []gin.HandlerFunc{driverOnly}},

			{Method: http.MethodPost, Path: "/scans", Handler: h.Scan.Scan, Mw: []gin.HandlerFunc{operator}},

			{Method: http.MethodGet, Path: "/sessions", Handler: h.Session.List},
			{Method: http.MethodGet, Path: "/sessions/:id", Handler: h.Session.Get},
			{Method: http.MethodPost, Path: "/sessions/:id/close", Handler: h.Session.Close, Mw: []gin.HandlerFunc{operator}},

			{Method: http.MethodPost, Path: "/lots", Handler: h.Lot.Create, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodGet, Path: "/lots/:id", Handler: h.Lot.Get, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodPatch, Path: "/lots/:id/status", Handler: h.Lot.UpdateStatus, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodGet, Path: "/lots/:id/dashboard", Handler: h.Lot.Dashboard, Mw: []gin.HandlerFunc{operator}},

			{Method: http.MethodPost, Path: "/billing/reconcile", Handler: h.Billing.Reconcile, Mw: []gin.HandlerFunc{admin}},
		})
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
