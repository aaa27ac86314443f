package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	RegisterPlot(c *ginext.Context)
	ListPlots(c *ginext.Context)
	RetirePlot(c *ginext.Context)
	StartBooking(c *ginext.Context)
	ChoosePlan(c *ginext.Context)
	Pay(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	GetTicket(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Plots
		api.POST("/plots", h.RegisterPlot)
		api.GET("/plots", h.ListPlots)
		api.DELETE("/plots/:id", h.RetirePlot)

		// Bookings
		api.POST("/bookings", h.StartBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/plan", h.ChoosePlan)
		api.POST("/bookings/:id/pay", h.Pay)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.GET("/bookings/:id/ticket", h.GetTicket)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
