package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/airledger/internal/domain"
	"github.com/Domenick1991/airledger/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service flights.FlightUseCase
}

func NewReportHandler(service flights.FlightUseCase) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) Register(router *gin.RouterGroup) {
	router.GET("/largest-airport", h.largestAirport)
	router.GET("/shortest-duration", h.shortestDuration)
	router.GET("/people", h.people)
}

func (h *ReportHandler) largestAirport(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"airport": h.service.LargestAirport(c.Request.Context())})
}

func (h *ReportHandler) shortestDuration(c *gin.Context) {
	from, err := domain.ParseCity(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := domain.ParseCity(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"from":     from,
		"to":       to,
		"duration": h.service.ShortestDuration(c.Request.Context(), from, to),
	})
}

func (h *ReportHandler) people(c *gin.Context) {
	airport := c.Query("airport")
	if airport == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "airport is required"})
		return
	}
	date, err := time.Parse(domain.DateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"airport": airport,
		"date":    date.Format(domain.DateLayout),
		"count":   h.service.PeopleOn(c.Request.Context(), date, airport),
	})
}
