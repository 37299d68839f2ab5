package api

import (
	"net/http"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookTicketRequest struct {
	FlightID    int `json:"flight_id"`
	PassengerID int `json:"passenger_id"`
}

type bookingResponse struct {
	Result      string `json:"result"`
	FlightID    int    `json:"flight_id"`
	PassengerID int    `json:"passenger_id"`
	Fare        int    `json:"fare,omitempty"`
	Error       string `json:"error,omitempty"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.book)
	router.DELETE("/:flight_id/:passenger_id", h.cancel)
}

func (h *BookingHandler) book(c *gin.Context) {
	var req bookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receipt, err := h.service.BookTicket(c.Request.Context(), booking.BookTicketInput{
		FlightID:    req.FlightID,
		PassengerID: req.PassengerID,
	})
	if err != nil {
		c.JSON(failureStatus(err), bookingResponse{
			Result:      string(domain.ResultFailure),
			FlightID:    req.FlightID,
			PassengerID: req.PassengerID,
			Error:       err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, bookingResponse{
		Result:      string(domain.ResultSuccess),
		FlightID:    receipt.FlightID,
		PassengerID: receipt.PassengerID,
		Fare:        receipt.Fare,
	})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	flightID, ok := intParam(c, "flight_id")
	if !ok {
		return
	}
	passengerID, ok := intParam(c, "passenger_id")
	if !ok {
		return
	}

	if err := h.service.CancelTicket(c.Request.Context(), flightID, passengerID); err != nil {
		c.JSON(failureStatus(err), bookingResponse{
			Result:      string(domain.ResultFailure),
			FlightID:    flightID,
			PassengerID: passengerID,
			Error:       err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, bookingResponse{
		Result:      string(domain.ResultSuccess),
		FlightID:    flightID,
		PassengerID: passengerID,
	})
}

func failureStatus(err error) int {
	if domain.IsLedgerRejection(err) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
