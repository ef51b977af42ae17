package handlers

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var indexPage []byte

// PageHandler serves the browser front end
type PageHandler struct{}

// NewPageHandler creates a new page handler
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}
