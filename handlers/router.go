package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter creates a gin engine with logging, recovery, request ids and CORS
func NewRouter(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), RequestID(), Recovery(), CORS(allowedOrigins))
	return r
}

// RegisterRoutes wires the summarization endpoints onto the router
func RegisterRoutes(r *gin.Engine, summaryHandler *SummaryHandler, pageHandler *PageHandler) {
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/", pageHandler.Index)

	r.POST("/summarize", summaryHandler.Summarize)
	r.POST("/summarize/upload", summaryHandler.SummarizeUpload)
	if summaryHandler.HasStorage() {
		r.POST("/summarize/stored", summaryHandler.SummarizeStored)
	}
}
