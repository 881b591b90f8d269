package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
	"github.com/gin-gonic/gin/binding"
)

// MaxBodySize is 1MB in bytes
const MaxBodySize = 1 << 20

// PayloadError represents a request body that cannot be decoded
type PayloadError struct {
	Code    string
	Message string
}

func (e *PayloadError) Error() string {
	return e.Message
}

// BindError converts an error from gin's JSON binding into a PayloadError
func BindError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &PayloadError{
			Code:    "BODY_TOO_LARGE",
			Message: fmt.Sprintf("Request body exceeds maximum allowed size of %d MB", MaxBodySize/(1024*1024)),
		}
	}
	return &PayloadError{Code: "INVALID_JSON", Message: fmt.Sprintf("Invalid JSON body: %v", err)}
}

// RejectTrailing fails when body holds anything after its first JSON value
func RejectTrailing(body []byte) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	var first json.RawMessage
	if err := dec.Decode(&first); err != nil {
		return BindError(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return &PayloadError{Code: "INVALID_JSON", Message: "Invalid JSON body: unexpected trailing data"}
	}
	return nil
}

// ParseID accepts a bare JSON number (5) or a numeric string ("5")
func ParseID(raw json.RawMessage) (uint, error) {
	invalid := &PayloadError{Code: "INVALID_ID", Message: "Expected a positive integer id"}

	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, invalid
		}
		raw = json.RawMessage(s)
	}

	id, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, invalid
	}
	return uint(id), nil
}

// ParseNoteTuple splits the note creation body [ownerID, {"title", "body"}]
func ParseNoteTuple(parts []json.RawMessage) (uint, models.NoteInput, error) {
	if len(parts) != 2 {
		return 0, models.NoteInput{}, &PayloadError{
			Code:    "INVALID_TUPLE",
			Message: fmt.Sprintf("Expected [ownerID, note], got %d elements", len(parts)),
		}
	}

	ownerID, err := ParseID(parts[0])
	if err != nil {
		return 0, models.NoteInput{}, err
	}

	var input models.NoteInput
	if err := binding.JSON.BindBody(parts[1], &input); err != nil {
		return 0, models.NoteInput{}, BindError(err)
	}
	return ownerID, input, nil
}
