package handlers

import (
	"log"
	"net/http"

	"phrasebingo/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses.
// Unclassified errors (store failures, DB errors) become 500 without
// leaking internals to the client.
func respondError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperr.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperr.KindInvalidArgument:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Internal error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
