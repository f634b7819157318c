package router

import (
	"context"

	"github.com/Waer1/complex-product-CRUD/internal/cache"
	"github.com/Waer1/complex-product-CRUD/internal/config"
	"github.com/Waer1/complex-product-CRUD/internal/handler"
	"github.com/Waer1/complex-product-CRUD/internal/middleware"
	"github.com/Waer1/complex-product-CRUD/internal/repository"
	"github.com/Waer1/complex-product-CRUD/internal/service"

	_ "github.com/Waer1/complex-product-CRUD/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// rdb may be nil, in which case reads go straight to the database.
// Background middleware work stops when ctx is done.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))

	// ── Repositories ─────────────────────────────────────────────────────────
	productRepo := repository.NewProductRepository(db)
	uomRepo := repository.NewUOMRepository(db)
	addonRepo := repository.NewAddonRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	productCache := cache.NewProductCache(rdb, cfg.CacheTTL)
	productSvc := service.NewProductService(productRepo, uomRepo, addonRepo, productCache)
	uomSvc := service.NewUOMService(uomRepo, productCache)
	addonSvc := service.NewAddonService(addonRepo, productCache)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	uomsH := handler.NewUOMsHandler(uomSvc)
	addonsH := handler.NewAddonsHandler(addonSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/api/v1")
	{
		products := v1.Group("/product")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.FindAll)
			products.GET("/:id", productsH.FindOne)
			products.PATCH("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Remove)

			// gin needs the same wildcard name as /:id at this segment
			products.POST("/:id/uoms", productsH.AddUOM)
			products.DELETE("/:id/uoms/:uomId", productsH.RemoveUOM)
			products.POST("/:id/uoms/:uomId/addons", productsH.AddAddon)
			products.DELETE("/:id/uoms/:uomId/addons/:addonId", productsH.RemoveAddon)
		}

		uoms := v1.Group("/uom")
		{
			uoms.POST("", uomsH.Create)
			uoms.GET("", uomsH.FindAll)
			uoms.GET("/:id", uomsH.FindOne)
			uoms.PATCH("/:id", uomsH.Update)
			uoms.DELETE("/:id", uomsH.Remove)
		}

		addons := v1.Group("/addon")
		{
			addons.POST("", addonsH.Create)
			addons.GET("", addonsH.FindAll)
			addons.GET("/:id", addonsH.FindOne)
			addons.PATCH("/:id", addonsH.Update)
			addons.DELETE("/:id", addonsH.Remove)
		}
	}

	// Swagger UI, only outside production
	if !cfg.IsProduction() {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
