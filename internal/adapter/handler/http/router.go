package http

import (
	"github.com/dinehall/backend/internal/adapter/config"
	"github.com/dinehall/backend/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	userHandler *UserHandler,
	orderHandler *OrderHandler,
	catalogHandler *CatalogHandler,
	couponHandler *CouponHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("/register", userHandler.RegisterUser)
			users.POST("/login", userHandler.LoginUser)

			authUsers := users.Group("")
			{
				authUsers.Use(authCheck(tokenService))
				authUsers.GET("", userHandler.ListUsers)
				authUsers.PUT("/password", userHandler.ResetPassword)
				authUsers.GET("/:id", userHandler.GetUser)
				authUsers.POST("/:id/balance", userHandler.TopUpBalance)
				authUsers.GET("/:id/coupons", couponHandler.ListUserCoupons)
				authUsers.GET("/:id/orders", orderHandler.ListUserOrders)
			}
		}

		stores := api.Group("/stores")
		{
			stores.GET("", catalogHandler.ListStores)
			stores.GET("/:id", catalogHandler.GetStore)
			stores.GET("/:id/menu", catalogHandler.ListMenuItemsByStore)

			adminStores := stores.Group("")
			{
				adminStores.Use(authCheck(tokenService))
				adminStores.POST("", catalogHandler.CreateStore)
				adminStores.PUT("/:id", catalogHandler.UpdateStore)
				adminStores.DELETE("/:id", catalogHandler.DeleteStore)
			}
		}

		menu := api.Group("/menu")
		{
			menu.GET("", catalogHandler.ListMenuItems)
			menu.GET("/search", catalogHandler.SearchMenuItems)
			menu.GET("/:id", catalogHandler.GetMenuItem)
			menu.GET("/:id/reviews", catalogHandler.ListReviewsByItem)

			adminMenu := menu.Group("")
			{
				adminMenu.Use(authCheck(tokenService))
				adminMenu.POST("", catalogHandler.CreateMenuItem)
				adminMenu.PUT("/:id", catalogHandler.UpdateMenuItem)
				adminMenu.DELETE("/:id", catalogHandler.DeleteMenuItem)
			}
		}

		reviews := api.Group("/reviews")
		{
			reviews.Use(authCheck(tokenService))
			reviews.POST("", catalogHandler.CreateReview)
			reviews.PUT("/:id", catalogHandler.UpdateReview)
			reviews.DELETE("/:id", catalogHandler.DeleteReview)
		}

		orders := api.Group("/orders")
		{
			orders.Use(authCheck(tokenService))
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/stats", orderHandler.GetOrderStats)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.DELETE("/:id", orderHandler.DeleteOrder)

			orders.POST("/:id/items", orderHandler.AddLineItem)
			orders.PUT("/:id/items/:detailId", orderHandler.UpdateLineItem)
			orders.DELETE("/:id/items/:detailId", orderHandler.RemoveLineItem)

			orders.PUT("/:id/confirm", orderHandler.ConfirmOrder)
			orders.PUT("/:id/complete", orderHandler.CompleteOrder)
			orders.PUT("/:id/cancel", orderHandler.CancelOrder)
			orders.PUT("/:id/refund", orderHandler.RefundOrder)
		}

		coupons := api.Group("/coupons")
		{
			coupons.Use(authCheck(tokenService))
			coupons.GET("/active", couponHandler.ListActiveCoupons)
			coupons.GET("/code/:code", couponHandler.GetCouponByCode)
			coupons.GET("/:id", couponHandler.GetCoupon)
			coupons.POST("", couponHandler.CreateCoupon)
			coupons.POST("/batch", couponHandler.CreateCouponsBatch)
			coupons.PUT("/:id", couponHandler.UpdateCoupon)
			coupons.DELETE("/:id", couponHandler.DeleteCoupon)
			coupons.POST("/assign", couponHandler.AssignCoupon)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
