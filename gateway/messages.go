package gateway

import "fmt"

// Messages returned to callers. Store errors are logged, never echoed.
const (
	MessageServerError      = "Server Error"
	MessageInvalidEndpoint  = "Invalid Endpoint"
	MessageInvalidRequest   = "Invalid request body"
	MessageInvalidOwnerKind = "Invalid owner kind"
)

func createFailed(kind string) string { return fmt.Sprintf("Error adding %s", kind) }
func updateFailed(kind string) string { return fmt.Sprintf("Error updating %s", kind) }
func deleteFailed(kind string) string { return fmt.Sprintf("Error deleting %s", kind) }
func notFound(kind string) string     { return fmt.Sprintf("Error finding %s", kind) }
func listFailed(kind string) string   { return fmt.Sprintf("Error finding %ss", kind) }
