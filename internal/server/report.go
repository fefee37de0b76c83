package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	reportdomain "github.com/invoiceloop/roisim/internal/report/domain"
)

// GenerateReport renders a stored scenario into a downloadable document,
// recording the requesting email as a lead first.
func (s *Server) GenerateReport(c *gin.Context) {
	var req reportdomain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	doc, err := s.reportSvc.Generate(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}
