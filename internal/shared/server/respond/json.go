package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes payload with the given status code.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// OK writes payload with 200 OK. Success bodies carry domain keys directly;
// only errors get the envelope from Error.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}
