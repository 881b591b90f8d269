package controllers

import (
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/gateway"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
	"github.com/gin-gonic/gin"
)

// CreateNoteRequest is the body of /notes/create, where the owner kind is data
type CreateNoteRequest struct {
	OwnerKind models.OwnerKind `json:"owner_kind"`
	OwnerID   uint             `json:"owner_id"`
	Note      models.NoteInput `json:"note"`
}

// NoteController serves the /notes group
type NoteController struct {
	notes *gateway.Notes
}

// RegisterNotes mounts the per-kind note endpoints, the identity endpoints
// and the kind-as-data endpoints on group.
func RegisterNotes(group *gin.RouterGroup, notes *gateway.Notes) *NoteController {
	nc := &NoteController{notes: notes}

	group.POST("/createCustomerNote", nc.CreateFor(models.OwnerCustomer))
	group.POST("/createAppointmentNote", nc.CreateFor(models.OwnerAppointment))
	group.POST("/createServiceNote", nc.CreateFor(models.OwnerService))
	group.POST("/getCustomerNotes", nc.ListFor(models.OwnerCustomer))
	group.POST("/getAppointmentNotes", nc.ListFor(models.OwnerAppointment))
	group.POST("/getServiceNotes", nc.ListFor(models.OwnerService))

	group.POST("/getNoteByID", nc.GetByID)
	group.POST("/updateNoteByID", nc.UpdateByID)
	group.POST("/deleteNoteByID", nc.DeleteByID)

	group.POST("/create", nc.Create)
	group.POST("/list", nc.List)
	return nc
}

// CreateFor handles [ownerID, note] bodies for one owner kind
func (nc *NoteController) CreateFor(kind models.OwnerKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, input, ok := bindNoteTuple(c)
		if !ok {
			return
		}
		respond(c, nc.notes.CreateNote(c.Request.Context(), kind, ownerID, input))
	}
}

// ListFor handles owner id bodies for one owner kind
func (nc *NoteController) ListFor(kind models.OwnerKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := bindID(c)
		if !ok {
			return
		}
		respond(c, nc.notes.ListNotesByOwner(c.Request.Context(), kind, ownerID))
	}
}

// Create handles POST /notes/create
func (nc *NoteController) Create(c *gin.Context) {
	var req CreateNoteRequest
	if !bindRecord(c, &req) {
		return
	}
	respond(c, nc.notes.CreateNote(c.Request.Context(), req.OwnerKind, req.OwnerID, req.Note))
}

// List handles POST /notes/list with an {"owner_kind","owner_id"} body
func (nc *NoteController) List(c *gin.Context) {
	var ref models.OwnerRef
	if !bindRecord(c, &ref) {
		return
	}
	respond(c, nc.notes.ListNotesByOwner(c.Request.Context(), ref.Kind, ref.ID))
}

func (nc *NoteController) GetByID(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	respond(c, nc.notes.GetNoteByID(c.Request.Context(), id))
}

// UpdateByID takes a full note; only its id, title and body are used
func (nc *NoteController) UpdateByID(c *gin.Context) {
	var note models.Note
	if !bindRecord(c, &note) {
		return
	}
	respond(c, nc.notes.UpdateNoteByID(c.Request.Context(), &note))
}

func (nc *NoteController) DeleteByID(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	respond(c, nc.notes.DeleteNoteByID(c.Request.Context(), id))
}
