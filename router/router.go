package router

import (
	"github.com/labstack/echo/v4"

	"cereagis/pkg/middleware"
)

func New(
	e *echo.Echo,
	bundleCtrl interface {
		Upload(echo.Context) error
		Get(echo.Context) error
		Delete(echo.Context) error
		Export(echo.Context) error
		Report(echo.Context) error
	},
	fieldCtrl interface {
		List(echo.Context) error
		Get(echo.Context) error
		Reset(echo.Context) error
		Export(echo.Context) error
	},
	trackCtrl interface {
		Rename(echo.Context) error
		Reorder(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.Session())
	api := e.Group("")

	e.GET("/health", healthCtrl.Health)

	api.POST("/imports", bundleCtrl.Upload)
	api.GET("/imports/:id", bundleCtrl.Get)
	api.DELETE("/imports/:id", bundleCtrl.Delete)
	api.GET("/imports/:id/export", bundleCtrl.Export)
	api.GET("/imports/:id/report", bundleCtrl.Report)
	api.GET("/imports/:id/fields", fieldCtrl.List)

	g := e.Group("/fields")
	g.GET("/:field_id", fieldCtrl.Get)
	g.POST("/:field_id/reset", fieldCtrl.Reset)
	g.GET("/:field_id/export", fieldCtrl.Export)
	g.PUT("/:field_id/tracks/order", trackCtrl.Reorder)

	api.PATCH("/tracks/:track_id", trackCtrl.Rename)
	return e
}
