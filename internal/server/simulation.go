package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	simulationdomain "github.com/invoiceloop/roisim/internal/simulation/domain"
)

// Simulate evaluates the submitted inputs without persisting anything.
func (s *Server) Simulate(c *gin.Context) {
	var req simulationdomain.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.simulationSvc.Simulate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
