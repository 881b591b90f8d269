package controllers

import (
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/gateway"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
	"github.com/gin-gonic/gin"
)

// EntityRoutes names the read endpoints of one entity group
type EntityRoutes struct {
	Get  string // body: record id
	List string // body: owner id
}

// EntityController serves create, update, delete, get and list for one
// entity kind.
type EntityController[E any] struct {
	gw *gateway.Entity[E]
}

// RegisterEntity mounts the five entity endpoints on group
func RegisterEntity[E any](group *gin.RouterGroup, gw *gateway.Entity[E], routes EntityRoutes) *EntityController[E] {
	ec := &EntityController[E]{gw: gw}
	group.POST("/create", ec.Create)
	group.POST("/update", ec.Update)
	group.POST("/delete", ec.Delete)
	group.POST("/"+routes.Get, ec.GetByID)
	group.POST("/"+routes.List, ec.ListByOwner)
	return ec
}

// Create handles POST <group>/create with the record as body
func (ec *EntityController[E]) Create(c *gin.Context) {
	var payload E
	if !bindRecord(c, &payload) {
		return
	}
	respond(c, ec.gw.Create(c.Request.Context(), &payload))
}

// Update handles POST <group>/update with the full record as body
func (ec *EntityController[E]) Update(c *gin.Context) {
	var payload E
	if !bindRecord(c, &payload) {
		return
	}
	respond(c, ec.gw.Update(c.Request.Context(), &payload))
}

// Delete handles POST <group>/delete with a bare id body
func (ec *EntityController[E]) Delete(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	respond(c, ec.gw.Delete(c.Request.Context(), id))
}

// GetByID handles the group's single-record read
func (ec *EntityController[E]) GetByID(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	respond(c, ec.gw.GetByID(c.Request.Context(), id))
}

// ListByOwner handles the group's list read; the body is the owner id
func (ec *EntityController[E]) ListByOwner(c *gin.Context) {
	ownerID, ok := bindID(c)
	if !ok {
		return
	}
	respond(c, ec.gw.ListByOwner(c.Request.Context(), ownerID))
}

// AppointmentController adds the by-user listing to the appointment group
type AppointmentController struct {
	*EntityController[models.Appointment]
	gw *gateway.Appointments
}

// ListByUserID handles POST /appointments/getByUserID
func (ac *AppointmentController) ListByUserID(c *gin.Context) {
	userID, ok := bindID(c)
	if !ok {
		return
	}
	respond(c, ac.gw.ListByUserID(c.Request.Context(), userID))
}
