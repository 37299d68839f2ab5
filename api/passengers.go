package api

import (
	"net/http"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/service/booking"
	"github.com/Domenick1991/airledger/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	service  flights.FlightUseCase
	bookings booking.BookingUseCase
}

type createPassengerRequest struct {
	ID     int    `json:"id"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	Age    int    `json:"age" binding:"min=0"`
}

func NewPassengerHandler(service flights.FlightUseCase, bookings booking.BookingUseCase) *PassengerHandler {
	return &PassengerHandler{service: service, bookings: bookings}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("/:id/bookings/count", h.countBookings)
}

func (h *PassengerHandler) create(c *gin.Context) {
	var req createPassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.service.AddPassenger(c.Request.Context(), domain.Passenger{
		ID:     req.ID,
		Email:  req.Email,
		Mobile: req.Mobile,
		Age:    req.Age,
	})
	c.JSON(http.StatusCreated, resultResponse{Result: string(domain.ResultSuccess)})
}

func (h *PassengerHandler) countBookings(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"passenger_id": id, "count": h.bookings.CountBookings(c.Request.Context(), id)})
}
