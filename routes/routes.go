package routes

import (
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/configs"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/controllers"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/entity"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/middlewares"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/repository"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogSvc, cfg.UploadDir)
	orderCtrl := controllers.NewOrderController(orderSvc)

	authed := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", authed)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Catalog
	r.GET("/catalog", authed, catalogCtrl.List)
	catalogAdmin := r.Group("/catalog", adminOnly)
	{
		catalogAdmin.POST("", catalogCtrl.Create)
		catalogAdmin.POST("/upload", catalogCtrl.Upload)
		catalogAdmin.PUT("/:id", catalogCtrl.Update)
		catalogAdmin.DELETE("/:id", catalogCtrl.Delete)
	}

	// Orders (customer)
	o := r.Group("/orders", authed)
	{
		o.POST("", orderCtrl.Create)
		o.GET("/mine", orderCtrl.ListMine)
		o.GET("/slots", orderCtrl.Slots)
		o.PUT("/:id/cancel", orderCtrl.Cancel)
	}

	// Orders (admin back-office)
	oAdmin := r.Group("/orders", adminOnly)
	{
		oAdmin.GET("/all", orderCtrl.ListAll)
		oAdmin.PUT("/:id/status", orderCtrl.UpdateStatus)
	}
}
