package routes

import (
	"github.com/rodriguezalexp/little-lemon-api/configs"
	"github.com/rodriguezalexp/little-lemon-api/controllers"
	"github.com/rodriguezalexp/little-lemon-api/entity"
	"github.com/rodriguezalexp/little-lemon-api/middlewares"
	"github.com/rodriguezalexp/little-lemon-api/repository"
	"github.com/rodriguezalexp/little-lemon-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories & services
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	userRepo := repository.NewUserRepository(db)

	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	categoryCtrl := controllers.NewCategoryController(db)
	menuCtrl := controllers.NewMenuItemController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(cartRepo, userRepo)

	// Authentication and authorization are separate layers: auth parses the
	// token, can consults entity.Allows so route gates and the access matrix
	// cannot drift apart.
	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	can := func(action, resource string) gin.HandlerFunc {
		return middlewares.RequireAccess(action, resource)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", auth, authCtrl.Me)

	// Catalog
	catalog := r.Group("/", auth)
	{
		catalog.GET("/categories", can(entity.ActionRead, entity.ResourceCategory), categoryCtrl.List)
		catalog.GET("/categories/:id", can(entity.ActionRead, entity.ResourceCategory), categoryCtrl.Get)
		catalog.POST("/categories", can(entity.ActionWrite, entity.ResourceCategory), categoryCtrl.Create)
		catalog.PUT("/categories/:id", can(entity.ActionWrite, entity.ResourceCategory), categoryCtrl.Update)
		catalog.PATCH("/categories/:id", can(entity.ActionWrite, entity.ResourceCategory), categoryCtrl.Update)
		catalog.DELETE("/categories/:id", can(entity.ActionDelete, entity.ResourceCategory), categoryCtrl.Delete)

		catalog.GET("/menu-items", can(entity.ActionRead, entity.ResourceMenu), menuCtrl.List)
		catalog.GET("/menu-items/:id", can(entity.ActionRead, entity.ResourceMenu), menuCtrl.Get)
		catalog.POST("/menu-items", can(entity.ActionWrite, entity.ResourceMenu), menuCtrl.Create)
		catalog.PUT("/menu-items/:id", can(entity.ActionWrite, entity.ResourceMenu), menuCtrl.Replace)
		catalog.PATCH("/menu-items/:id", can(entity.ActionWrite, entity.ResourceMenu), menuCtrl.Patch)
		catalog.DELETE("/menu-items/:id", can(entity.ActionDelete, entity.ResourceMenu), menuCtrl.Delete)
	}

	// Cart (owner only; every operation is scoped to the token's user)
	cart := r.Group("/cart", auth)
	{
		cart.GET("", can(entity.ActionRead, entity.ResourceCart), cartCtrl.Get)
		cart.POST("", can(entity.ActionWrite, entity.ResourceCart), cartCtrl.Add)
		cart.PUT("/items/:id", can(entity.ActionWrite, entity.ResourceCart), cartCtrl.UpdateQuantity)
		cart.PATCH("/items/:id", can(entity.ActionWrite, entity.ResourceCart), cartCtrl.UpdateQuantity)
		cart.DELETE("/items/:id", can(entity.ActionDelete, entity.ResourceCart), cartCtrl.RemoveItem)
		cart.DELETE("", can(entity.ActionDelete, entity.ResourceCart), cartCtrl.Clear)
	}

	// Orders
	orders := r.Group("/orders", auth)
	{
		orders.POST("", can(entity.ActionWrite, entity.ResourceOrder), orderCtrl.Create)
		orders.GET("", can(entity.ActionRead, entity.ResourceOrder), orderCtrl.List)
		orders.GET("/:id", can(entity.ActionRead, entity.ResourceOrder), orderCtrl.Detail)
		orders.PATCH("/:id", can(entity.ActionWrite, entity.ResourceOrderStatus), orderCtrl.Update)
		orders.DELETE("/:id", can(entity.ActionDelete, entity.ResourceOrder), orderCtrl.Delete)
	}

	// Admin
	admin := r.Group("/admin", auth)
	{
		admin.GET("/carts", can(entity.ActionRead, entity.ResourceAdminCart), adminCtrl.ListCarts)
		admin.GET("/carts/:id", can(entity.ActionRead, entity.ResourceAdminCart), adminCtrl.GetCartLine)
		admin.PUT("/carts/:id", can(entity.ActionWrite, entity.ResourceAdminCart), adminCtrl.UpdateCartLine)
		admin.PATCH("/carts/:id", can(entity.ActionWrite, entity.ResourceAdminCart), adminCtrl.UpdateCartLine)
		admin.DELETE("/carts/:id", can(entity.ActionDelete, entity.ResourceAdminCart), adminCtrl.DeleteCartLine)

		admin.GET("/groups/:role/users", can(entity.ActionRead, entity.ResourceGroup), adminCtrl.ListGroup)
		admin.POST("/groups/:role/users", can(entity.ActionWrite, entity.ResourceGroup), adminCtrl.AddToGroup)
		admin.DELETE("/groups/:role/users/:id", can(entity.ActionDelete, entity.ResourceGroup), adminCtrl.RemoveFromGroup)
	}
}
