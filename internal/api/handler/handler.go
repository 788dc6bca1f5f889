package handler

import (
	"net/http"
	"strconv"

	"mediarate/internal/api/httperr"

	"github.com/gin-gonic/gin"
)

// respondError writes the JSON error envelope with the status the error
// maps to.
func respondError(c *gin.Context, err error) {
	c.JSON(httperr.Status(err), gin.H{"error": err.Error()})
}

// pathID parses a numeric path parameter. On failure it writes a 400 and
// returns false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
