package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskapi/internal/models"
)

// respondData writes the success envelope around a single payload.
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondList writes the success envelope with pagination meta.
func respondList(c *gin.Context, data interface{}, meta models.ListMeta) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "meta": meta})
}

// abortWithError hands the typed error to the translation middleware.
// Handlers never shape error responses themselves.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
