package middleware

import (
	"log"
	"net/http"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/gateway"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in any later handler into a 500 "Server Error"
// envelope. The request is not retried.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gateway.Fail[gateway.Empty](gateway.MessageServerError))
	})
}
