package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func HealthHandler(c *gin.Context) {
	response := HealthResponse{Status: "ok", Service: "dedup-api"}
	c.JSON(http.StatusOK, response)
}
