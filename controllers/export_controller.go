package controllers

import (
	"errors"
	"log"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/gateway"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/middleware"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/services"
	"github.com/gin-gonic/gin"
)

// Export failures
const (
	MessageExportsDisabled = "Exports are not configured"
	MessageExportForbidden = "Cannot export another user's data"
)

// ExportController serves /exports/create
type ExportController struct {
	exports *services.ExportService
}

// NewExportController wraps exports; a nil service disables the endpoint
func NewExportController(exports *services.ExportService) *ExportController {
	return &ExportController{exports: exports}
}

// Create handles POST /exports/create with a user id body. Only the
// token's own user can be exported.
func (ec *ExportController) Create(c *gin.Context) {
	userID, ok := bindID(c)
	if !ok {
		return
	}

	caller, err := middleware.GetUserID(c)
	if err != nil || caller != userID {
		respond(c, gateway.Fail[services.Export](MessageExportForbidden))
		return
	}

	export, err := ec.exports.Export(c.Request.Context(), userID)
	if errors.Is(err, services.ErrExportsDisabled) {
		respond(c, gateway.Fail[services.Export](MessageExportsDisabled))
		return
	}
	if err != nil {
		log.Printf("Export for user %d failed: %v", userID, err)
		respond(c, gateway.Fail[services.Export]("Error exporting data"))
		return
	}
	respond(c, gateway.OK(export))
}
