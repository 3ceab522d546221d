package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/restexample/shop-service/internal/middleware"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the engine serving the shop API.
//
// Raw paths are matched so an encoded slash stays inside one segment, e.g.
// /api/shops/get-route-query/Izmir%2FBuca.
func NewRouter(h *ShopHandler, logger logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.UseRawPath = true
	router.UnescapePathValues = true
	router.Use(middleware.LoggingMiddleware(logger), middleware.RecoveryMiddleware(logger))

	RegisterRoutes(router, h)

	router.GET("/health", h.Health)
	return router
}

func RegisterRoutes(r gin.IRouter, h *ShopHandler) {
	shops := r.Group("/api/shops")
	{
		shops.POST("", h.CreateShop)
		shops.GET("", h.ListShops)
		shops.GET("/get-query", h.GetShopByEmployeesQuery)
		shops.GET("/get-route/:numberOfEmployees", h.GetShopByEmployeesRoute)
		shops.GET("/get-route-query/:shopAddress", h.GetShopByAddressAndEmployees)
		shops.GET("/:name", h.GetShopByName)
		shops.PATCH("/:id", h.UpdateShopName)
		shops.PUT("/:id", h.UpdateShop)
		shops.DELETE("/:id", h.DeleteShop)
	}
}
