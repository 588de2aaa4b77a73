package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteltrack/internal/handler/api"
	"hoteltrack/internal/handler/middleware"
	"hoteltrack/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, roomHandler *api.RoomHandler, guestHandler *api.GuestHandler, reservationHandler *api.ReservationHandler, stayHandler *api.StayHandler, billingHandler *api.BillingHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, roomHandler, guestHandler, reservationHandler, stayHandler, billingHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, roomHandler *api.RoomHandler, guestHandler *api.GuestHandler, reservationHandler *api.ReservationHandler, stayHandler *api.StayHandler, billingHandler *api.BillingHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		roomTypes := apiGroup.Group("/room-types")
		{
			addRoutes(roomTypes, []route{
				{Method: http.MethodPost, Path: "", Handler: roomHandler.CreateRoomType},
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRoomTypes},
				{Method: http.MethodPatch, Path: "/:id/pricing", Handler: roomHandler.UpdatePricing},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodPost, Path: "", Handler: roomHandler.CreateRoom},
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.GetRoom},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: roomHandler.SetStatus},
				{Method: http.MethodDelete, Path: "/:id", Handler: roomHandler.DeleteRoom},
			})
		}

		guests := apiGroup.Group("/guests")
		{
			addRoutes(guests, []route{
				{Method: http.MethodPost, Path: "", Handler: guestHandler.Register},
				{Method: http.MethodGet, Path: "", Handler: guestHandler.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: guestHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: guestHandler.UpdateProfile},
				{Method: http.MethodPost, Path: "/:id/deactivate", Handler: guestHandler.Deactivate},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.List},
				{Method: http.MethodGet, Path: "/search", Handler: reservationHandler.SearchAvailableRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: reservationHandler.Modify},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: reservationHandler.Confirm},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/no-show", Handler: reservationHandler.MarkNoShow},
				{Method: http.MethodPost, Path: "/:id/assign-room", Handler: reservationHandler.AssignRoom},
				{Method: http.MethodPost, Path: "/:id/reassign-room", Handler: reservationHandler.ReassignRoom},
			})
		}

		stays := apiGroup.Group("/stays")
		{
			addRoutes(stays, []route{
				{Method: http.MethodPost, Path: "/check-in", Handler: stayHandler.CheckIn},
				{Method: http.MethodPost, Path: "/walk-in", Handler: stayHandler.WalkIn},
				{Method: http.MethodGet, Path: "", Handler: stayHandler.List},
				{Method: http.MethodGet, Path: "/active", Handler: stayHandler.ListActive},
				{Method: http.MethodGet, Path: "/active/by-room/:number", Handler: stayHandler.ActiveByRoom},
				{Method: http.MethodGet, Path: "/:id", Handler: stayHandler.Get},
				{Method: http.MethodPost, Path: "/:id/charges", Handler: stayHandler.RecordCharge},
				{Method: http.MethodGet, Path: "/:id/charges", Handler: stayHandler.ListCharges},
				{Method: http.MethodPost, Path: "/:id/check-out", Handler: stayHandler.CheckOut},
				{Method: http.MethodGet, Path: "/:id/balance", Handler: stayHandler.Balance},
				{Method: http.MethodGet, Path: "/:id/total-charges", Handler: billingHandler.TotalChargesByStay},
			})
		}

		invoices := apiGroup.Group("/invoices")
		{
			addRoutes(invoices, []route{
				{Method: http.MethodGet, Path: "", Handler: billingHandler.ListInvoices},
				{Method: http.MethodGet, Path: "/by-stay/:stayId", Handler: billingHandler.GetInvoiceByStay},
				{Method: http.MethodGet, Path: "/:id", Handler: billingHandler.GetInvoice},
				{Method: http.MethodPost, Path: "/:id/payments", Handler: billingHandler.ProcessPayment},
				{Method: http.MethodGet, Path: "/:id/payments", Handler: billingHandler.ListPayments},
				{Method: http.MethodPost, Path: "/:id/discounts", Handler: billingHandler.ApplyDiscount},
				{Method: http.MethodPut, Path: "/:id/status", Handler: billingHandler.OverrideStatus},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
