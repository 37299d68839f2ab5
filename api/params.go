package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type resultResponse struct {
	Result string `json:"result"`
	Error  string `json:"error,omitempty"`
}

func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}
