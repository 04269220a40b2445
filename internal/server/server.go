package server

import (
	"khalti-storefront-demo/internal/handler"
	appmiddleware "khalti-storefront-demo/internal/middleware"
	"khalti-storefront-demo/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	productHandler  *handler.ProductHandler
	authHandler     *handler.AuthHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	paymentHandler  *handler.PaymentHandler
}

func NewServer(
	productService service.ProductService,
	authService service.AuthService,
	cartService service.CartService,
	checkoutService service.CheckoutService,
	reconcileService service.ReconcileService,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(appmiddleware.Session(authService))

	s := &Server{
		echo:            e,
		productHandler:  handler.NewProductHandler(productService),
		authHandler:     handler.NewAuthHandler(authService),
		cartHandler:     handler.NewCartHandler(cartService),
		checkoutHandler: handler.NewCheckoutHandler(checkoutService),
		paymentHandler:  handler.NewPaymentHandler(reconcileService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.GET("/products", s.productHandler.ListProducts)
	api.GET("/products/categories", s.productHandler.ListCategories)

	auth := api.Group("/auth")
	auth.POST("/signup", s.authHandler.SignUp)
	auth.POST("/signin", s.authHandler.SignIn)
	auth.POST("/signout", s.authHandler.SignOut)

	cart := api.Group("/cart")
	cart.GET("", s.cartHandler.GetCart)
	cart.POST("/items", s.cartHandler.AddItem)
	cart.PUT("/items/:id", s.cartHandler.SetQuantity)
	cart.DELETE("/items/:id", s.cartHandler.RemoveItem)

	api.POST("/checkout", s.checkoutHandler.Initiate)

	// -------- gateway return redirect --------
	api.GET("/payment/return", s.paymentHandler.Return)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
