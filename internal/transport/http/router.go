package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/gifthub/gifthub/internal/handlers"
	authmw "github.com/gifthub/gifthub/internal/middleware/auth"
	"github.com/gifthub/gifthub/internal/service"
	"github.com/gifthub/gifthub/internal/session"
)

type Deps struct {
	AuthHandler    *handlers.AuthHandler
	CartHandler    *handlers.CartHandler
	ProductHandler *handlers.ProductHandler
	SearchHandler  *handlers.SearchHandler
	Sessions       session.Store
	Tokens         *service.TokenService
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	auth := e.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/logout", d.AuthHandler.Logout)

	products := e.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct, authmw.RequireSession(d.Sessions, d.Tokens))

	if d.SearchHandler != nil {
		e.GET("/search", d.SearchHandler.Search)
	}

	cart := e.Group("/cart", authmw.RequireSession(d.Sessions, d.Tokens))
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("", d.CartHandler.AddToCart)
	cart.DELETE("/:id", d.CartHandler.DeleteOneFromCart)
	cart.DELETE("/:id/all", d.CartHandler.DeleteAllFromCart)
}
