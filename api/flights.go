package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/service/booking"
	"github.com/Domenick1991/airledger/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service  flights.FlightUseCase
	bookings booking.BookingUseCase
}

type createFlightRequest struct {
	ID          int     `json:"id"`
	FromCity    string  `json:"from_city" binding:"required"`
	ToCity      string  `json:"to_city" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Duration    float64 `json:"duration" binding:"min=0"`
	MaxCapacity int     `json:"max_capacity" binding:"min=0"`
}

type flightResponse struct {
	ID          int     `json:"id"`
	FromCity    string  `json:"from_city"`
	ToCity      string  `json:"to_city"`
	Date        string  `json:"date"`
	Duration    float64 `json:"duration"`
	MaxCapacity int     `json:"max_capacity"`
}

func NewFlightHandler(service flights.FlightUseCase, bookings booking.BookingUseCase) *FlightHandler {
	return &FlightHandler{service: service, bookings: bookings}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.GET("/:id/fare", h.fare)
	router.GET("/:id/revenue", h.revenue)
	router.GET("/:id/origin-airport", h.originAirport)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, err := domain.ParseCity(req.FromCity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := domain.ParseCity(req.ToCity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	h.service.AddFlight(c.Request.Context(), domain.Flight{
		ID:          req.ID,
		FromCity:    from,
		ToCity:      to,
		Date:        date,
		Duration:    req.Duration,
		MaxCapacity: req.MaxCapacity,
	})
	c.JSON(http.StatusCreated, resultResponse{Result: string(domain.ResultSuccess)})
}

func (h *FlightHandler) list(c *gin.Context) {
	list := h.service.List(c.Request.Context())
	resp := make([]flightResponse, 0, len(list))
	for _, f := range list {
		resp = append(resp, toFlightResponse(f))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(*flight))
}

func (h *FlightHandler) fare(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight_id": id, "fare": h.bookings.Fare(c.Request.Context(), id)})
}

func (h *FlightHandler) revenue(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight_id": id, "revenue": h.bookings.Revenue(c.Request.Context(), id)})
}

func (h *FlightHandler) originAirport(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	name := h.service.OriginAirport(c.Request.Context(), id)
	if name == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "origin airport not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight_id": id, "airport": name})
}

func toFlightResponse(f domain.Flight) flightResponse {
	return flightResponse{
		ID:          f.ID,
		FromCity:    string(f.FromCity),
		ToCity:      string(f.ToCity),
		Date:        f.Date.Format(domain.DateLayout),
		Duration:    f.Duration,
		MaxCapacity: f.MaxCapacity,
	}
}
