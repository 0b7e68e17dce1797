package v1

import (
	"net/http"

	"aimlaw-web/config"
	"aimlaw-web/internal/delivery/http/middleware"
	"aimlaw-web/internal/delivery/http/response"
	"aimlaw-web/internal/delivery/http/web"
	"aimlaw-web/internal/domain"
	"aimlaw-web/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	LocaleUC  domain.LocaleUsecase
	HealthUC  usecase.HealthUsecase
	Catalog   domain.ServiceCatalog
	Config    *config.Config
}

func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins, deps.Config.IsProduction())) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Public routes
	NewContactHandler(v1, deps.ContactUC, deps.LocaleUC)
	NewSiteHandler(v1, deps.Catalog, deps.LocaleUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Site pages
	err := web.Register(r, web.Deps{
		Catalog:       deps.Catalog,
		LocaleUC:      deps.LocaleUC,
		ContactUC:     deps.ContactUC,
		SiteURL:       deps.Config.SiteURL,
		SecureCookies: deps.Config.IsProduction(),
	})
	if err != nil {
		return nil, err
	}

	return r, nil
}
