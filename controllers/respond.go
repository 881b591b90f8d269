package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/gateway"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/utils"
	"github.com/gin-gonic/gin"
)

// respond writes env with 201. Business failures use 201 as well; callers
// read the envelope's success field.
func respond[T any](c *gin.Context, env gateway.Envelope[T]) {
	c.JSON(http.StatusCreated, env)
}

// rejectPayload answers an undecodable body without touching the store
func rejectPayload(c *gin.Context, err error) {
	log.Printf("Rejected %s body: %v", c.Request.URL.Path, err)

	message := gateway.MessageInvalidRequest
	var payloadErr *utils.PayloadError
	if errors.As(err, &payloadErr) {
		message = payloadErr.Message
	}
	respond(c, gateway.Fail[gateway.Empty](message))
}

// bindJSON binds the body with gin's JSON binding, capped at
// utils.MaxBodySize, and refuses anything after the first JSON value.
func bindJSON(c *gin.Context, v interface{}) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, utils.MaxBodySize)
	if err := c.ShouldBindBodyWithJSON(v); err != nil {
		return utils.BindError(err)
	}
	body, _ := c.Get(gin.BodyBytesKey)
	raw, _ := body.([]byte)
	return utils.RejectTrailing(raw)
}

// bindID decodes a bare JSON number body
func bindID(c *gin.Context) (uint, bool) {
	var raw json.RawMessage
	if err := bindJSON(c, &raw); err != nil {
		rejectPayload(c, err)
		return 0, false
	}
	id, err := utils.ParseID(raw)
	if err != nil {
		rejectPayload(c, err)
		return 0, false
	}
	return id, true
}

// bindNoteTuple decodes an [ownerID, note] body
func bindNoteTuple(c *gin.Context) (uint, models.NoteInput, bool) {
	var parts []json.RawMessage
	if err := bindJSON(c, &parts); err != nil {
		rejectPayload(c, err)
		return 0, models.NoteInput{}, false
	}
	ownerID, input, err := utils.ParseNoteTuple(parts)
	if err != nil {
		rejectPayload(c, err)
		return 0, models.NoteInput{}, false
	}
	return ownerID, input, true
}

// bindRecord decodes a JSON object body into v
func bindRecord(c *gin.Context, v interface{}) bool {
	if err := bindJSON(c, v); err != nil {
		rejectPayload(c, err)
		return false
	}
	return true
}

// invalidEndpoint answers every unknown path with a 500 envelope
func invalidEndpoint(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gateway.Fail[gateway.Empty](gateway.MessageInvalidEndpoint))
}
