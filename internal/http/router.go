package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Forbidden-Duck/ecommerce-backend/internal/http/handlers"
	"github.com/Forbidden-Duck/ecommerce-backend/internal/http/middleware"
)

// BuildRouter wires every route group. /auth carries the session
// lifecycle; everything under /api requires a bearer token; the product
// write routes additionally pass the casbin policy check.
func BuildRouter(
	ah *handlers.AuthHandlers,
	uh *handlers.UserHandlers,
	ph *handlers.ProductHandlers,
	ch *handlers.CartHandlers,
	oh *handlers.OrderHandlers,
	authmw *middleware.AuthMW,
	cb *middleware.CasbinMW,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)
	auth.POST("/refresh_token", authmw.WithRefreshCookie(), ah.Refresh)
	auth.POST("/logout", authmw.WithRefreshCookie(), ah.Logout)

	api := r.Group("/api")
	api.Use(authmw.WithBearer())

	api.GET("/user/:userid", uh.Get)
	api.PUT("/user/:userid", uh.Update)
	api.DELETE("/user/:userid", uh.Delete)

	api.GET("/product", ph.List)
	api.GET("/product/:productid", ph.Get)
	api.POST("/product", cb.Enforce(), ph.Create)
	api.PUT("/product/:productid", cb.Enforce(), ph.Update)
	api.DELETE("/product/:productid", cb.Enforce(), ph.Delete)

	api.POST("/cart", ch.Create)
	api.GET("/cart", ch.GetOwn)
	api.GET("/cart/:cartid", ch.Get)
	api.POST("/cart/:cartid/items", ch.AddItem)
	api.PUT("/cart/:cartid/items/:itemid", ch.UpdateItem)
	api.DELETE("/cart/:cartid/items/:itemid", ch.RemoveItem)
	api.POST("/cart/:cartid/checkout", ch.Checkout)

	api.GET("/order", oh.List)
	api.GET("/order/:orderid", oh.Get)

	return r
}
