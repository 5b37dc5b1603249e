package server

import (
	"net/http"

	"soulseer-admin/internal/handler"
	adminmw "soulseer-admin/internal/middleware"
	"soulseer-admin/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	readerHandler  *handler.ReaderHandler
	productHandler *handler.ProductHandler
	giftHandler    *handler.GiftHandler
	jwtSecret      string
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func NewServer(
	readerService service.ReaderService,
	productService service.ProductService,
	giftService service.GiftService,
	jwtSecret string,
) *Server {
	e := echo.New()
	e.Validator = &requestValidator{validate: validator.New()}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		readerHandler:  handler.NewReaderHandler(readerService),
		productHandler: handler.NewProductHandler(productService),
		giftHandler:    handler.NewGiftHandler(giftService),
		jwtSecret:      jwtSecret,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	admin := api.Group("", adminmw.AdminAuthMiddleware(s.jwtSecret))

	// -------- readers --------
	readers := admin.Group("/readers")
	readers.POST("", s.readerHandler.CreateReader)
	readers.GET("", s.readerHandler.ListReaders)
	readers.GET("/:id", s.readerHandler.GetReader)
	readers.PUT("/:id", s.readerHandler.UpdateReader)
	readers.POST("/:id/deactivate", s.readerHandler.DeactivateReader)

	// -------- products --------
	products := admin.Group("/products")
	products.POST("", s.productHandler.CreateProduct)
	products.GET("", s.productHandler.ListProducts)
	products.GET("/:id", s.productHandler.GetProduct)
	products.PUT("/:id", s.productHandler.UpdateProduct)
	products.DELETE("/:id", s.productHandler.DeleteProduct)

	// -------- gifts --------
	gifts := admin.Group("/gifts")
	gifts.POST("", s.giftHandler.CreateGift)
	gifts.GET("", s.giftHandler.ListGifts)
	gifts.GET("/:id", s.giftHandler.GetGift)
	gifts.PUT("/:id", s.giftHandler.UpdateGift)
	gifts.DELETE("/:id", s.giftHandler.DeleteGift)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
