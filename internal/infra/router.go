package infra

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/umalmyha/customer-directory/internal/auth"
	"github.com/umalmyha/customer-directory/internal/handlers"
	"github.com/umalmyha/customer-directory/internal/middleware"
	"github.com/umalmyha/customer-directory/internal/service"
	"github.com/umalmyha/customer-directory/internal/validation"

	_ "github.com/umalmyha/customer-directory/docs" // swagger documentation
)

// Router builds echo instance with all API routes.
// Customer routes require bearer jwt only if jwtValidator is provided.
func Router(customerSvc service.CustomerService, jwtValidator *auth.JwtValidator) (*echo.Echo, error) {
	validator, err := validation.New()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			logrus.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			}).Info("request")
			return nil
		},
	}))

	// Handlers
	customerHTTPHandler := handlers.NewCustomerHTTPHandler(customerSvc)

	// Swagger
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API routes
	api := e.Group("/api")

	var customerMw []echo.MiddlewareFunc
	if jwtValidator != nil {
		customerMw = append(customerMw, middleware.Authorize(jwtValidator))
	}

	// customers
	customersAPI := api.Group("/customers", customerMw...)
	customersAPI.GET("", customerHTTPHandler.GetAll)
	customersAPI.POST("", customerHTTPHandler.Post)
	customersAPI.GET("/:id", customerHTTPHandler.Get)
	customersAPI.PUT("/:id", customerHTTPHandler.Update)
	customersAPI.PATCH("/:id", customerHTTPHandler.Update)
	customersAPI.DELETE("/:id", customerHTTPHandler.DeleteByID)

	return e, nil
}
