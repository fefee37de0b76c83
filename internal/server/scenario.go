package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	simulationdomain "github.com/invoiceloop/roisim/internal/simulation/domain"
)

func (s *Server) CreateScenario(c *gin.Context) {
	var req simulationdomain.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.scenarioSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListScenarios(c *gin.Context) {
	resp, err := s.scenarioSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetScenarioByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	item, err := s.scenarioSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": item})
}

func (s *Server) DeleteScenario(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	if err := s.scenarioSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"deleted": true}})
}
