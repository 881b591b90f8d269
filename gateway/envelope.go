// Package gateway exposes customers, appointments, services and notes through
// one uniform set of operations whose results are always an Envelope.
package gateway

// MessageSuccess is the message carried by every successful envelope
const MessageSuccess = "Success"

// Envelope is the response shape of every operation. A false Success means
// business logic ran and rejected the call; Data is then nil.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data,omitempty"`
}

// Empty is the payload type of operations that return no data
type Empty struct{}

// Created carries the identity the store assigned to a new record
type Created struct {
	ID uint `json:"id"`
}

// OK wraps data in a successful envelope
func OK[T any](data *T) Envelope[T] {
	return Envelope[T]{Success: true, Message: MessageSuccess, Data: data}
}

// Done is a successful envelope without data
func Done() Envelope[Empty] {
	return Envelope[Empty]{Success: true, Message: MessageSuccess}
}

// Fail builds a rejected envelope with the given message
func Fail[T any](message string) Envelope[T] {
	if message == "" {
		message = "Request failed"
	}
	return Envelope[T]{Success: false, Message: message}
}
