package api

import (
	"net/http"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service flights.FlightUseCase
}

type createAirportRequest struct {
	Name      string `json:"name" binding:"required"`
	City      string `json:"city" binding:"required"`
	Terminals int    `json:"terminals" binding:"min=0"`
}

func NewAirportHandler(service flights.FlightUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("", h.list)
}

func (h *AirportHandler) create(c *gin.Context) {
	var req createAirportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	city, err := domain.ParseCity(req.City)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.service.AddAirport(c.Request.Context(), domain.Airport{Name: req.Name, City: city, Terminals: req.Terminals})
	c.JSON(http.StatusCreated, resultResponse{Result: string(domain.ResultSuccess)})
}

func (h *AirportHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListAirports(c.Request.Context()))
}
