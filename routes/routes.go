package routes

import (
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/configs"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/controllers"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/middlewares"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/repository"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/services"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.NotifyHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	catRepo := repository.NewMenuCategoryRepository(db)
	itemRepo := repository.NewMenuItemRepository(db)
	sideRepo := repository.NewSideRepository(db)
	eventRepo := repository.NewEventRepository(db)
	resRepo := repository.NewReservationRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	menuSvc := services.NewMenuService(catRepo)
	resSvc := services.NewReservationService(db, resRepo)
	resSvc.Notifier = hub

	// Controllers
	authCtrl := controllers.NewAuthController(userRepo, cfg)
	menuCtrl := controllers.NewMenuController(menuSvc)
	catCtrl := controllers.NewCategoryController(catRepo)
	itemCtrl := controllers.NewItemController(itemRepo, cfg)
	sideCtrl := controllers.NewSideController(sideRepo)
	eventCtrl := controllers.NewEventController(eventRepo)
	resCtrl := controllers.NewReservationController(resSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Public site. Optional auth so an admin token widens what these return.
	pub := r.Group("/", middlewares.OptionalAuthMiddleware(cfg.JWTSecret))
	{
		pub.GET("/menu", menuCtrl.List)
		pub.GET("/menu/search", menuCtrl.Search)
		pub.GET("/allergens", menuCtrl.Allergens)
		pub.GET("/sides", sideCtrl.List)
		pub.GET("/events", eventCtrl.List)
		pub.POST("/reservations", resCtrl.Create)
	}

	// Admin panel
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/categories", catCtrl.Create)
		admin.PATCH("/categories/reorder", catCtrl.Reorder)
		admin.PATCH("/categories/:id", catCtrl.Update)
		admin.DELETE("/categories/:id", catCtrl.Delete)
		admin.PATCH("/categories/:id/items/reorder", itemCtrl.Reorder)

		admin.GET("/items/:id", itemCtrl.Get)
		admin.POST("/items", itemCtrl.Create)
		admin.PATCH("/items/:id", itemCtrl.Update)
		admin.DELETE("/items/:id", itemCtrl.Delete)
		admin.POST("/items/:id/images", itemCtrl.UploadImage)
		admin.DELETE("/items/images/:imageId", itemCtrl.DeleteImage)

		admin.POST("/sides", sideCtrl.Create)
		admin.PATCH("/sides/:id", sideCtrl.Update)
		admin.DELETE("/sides/:id", sideCtrl.Delete)

		admin.POST("/events", eventCtrl.Create)
		admin.PATCH("/events/:id", eventCtrl.Update)
		admin.DELETE("/events/:id", eventCtrl.Delete)

		admin.GET("/reservations", resCtrl.List)
		admin.PATCH("/reservations/:id/confirm", resCtrl.Confirm)
		admin.PATCH("/reservations/:id/decline", resCtrl.Decline)
		admin.PATCH("/reservations/:id/cancel", resCtrl.Cancel)
	}

	// Admin notifications over websocket. Browsers cannot set headers on
	// the WS handshake, so this route takes the token from the query too.
	r.GET("/ws/admin/notifications", middlewares.WSAuthMiddleware(cfg.JWTSecret, "admin"), hub.HandleWebSocket)
}
