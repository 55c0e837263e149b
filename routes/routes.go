package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.ReviewHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	storeRepo := repository.NewStoreRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favRepo := repository.NewFavoriteRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	storeSvc := services.NewStoreService(storeRepo)
	reviewSvc := services.NewReviewService(db, reviewRepo, userRepo)
	favSvc := services.NewFavoriteService(favRepo, storeRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	storeCtrl := controllers.NewStoreController(storeSvc, cfg)
	reviewCtrl := controllers.NewReviewController(reviewSvc, hub)
	favCtrl := controllers.NewFavoriteController(favSvc)
	recCtrl := controllers.NewRecommendController(db, storeSvc)
	homeCtrl := controllers.NewHomeController(storeSvc, favSvc)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/signup", authCtrl.Signup)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.POST("/logout", authCtrl.Logout)
	}

	// Stores (public)
	r.GET("/stores", storeCtrl.List)
	r.GET("/stores/nearby", storeCtrl.Nearby)
	r.GET("/stores/:id", storeCtrl.Detail)
	r.GET("/stores/:id/reviews", reviewCtrl.ListForStore)

	// Needs / Recommendations (public)
	r.GET("/needs", recCtrl.Needs)
	r.GET("/recommendations", recCtrl.Recommendations)

	// Home feed — nearby ดัน favorite ขึ้นก่อนถ้า login อยู่
	home := r.Group("/home", middlewares.OptionalAuthMiddleware())
	{
		home.GET("/hot-picks", homeCtrl.HotPicks)
		home.GET("/nearby", homeCtrl.NearBy)
	}

	// Mutations (ต้องล็อกอิน)
	u := r.Group("/", middlewares.AuthMiddleware())
	{
		u.POST("/stores/:id/reviews", reviewCtrl.Create)
		u.POST("/stores/:id/favorite", favCtrl.Toggle)
	}

	// Profile
	profile := r.Group("/profile", middlewares.AuthMiddleware())
	{
		profile.GET("/favorites", favCtrl.ListForMe)
		profile.GET("/reviews", reviewCtrl.ListForMe)
	}

	// Live review feed
	r.GET("/ws/stores/:id/reviews", hub.HandleWebSocket)
}
