package config

import (
	"fmt"
	"os"
	"testing"
)

// TestMain runs before all tests in the config package
// It refuses to run against a production environment and pins GO_ENV to "test"
func TestMain(m *testing.M) {
	env := os.Getenv("GO_ENV")
	if env == "production" {
		fmt.Fprintf(os.Stderr, "\n"+
			"╔════════════════════════════════════════════════════════════════╗\n"+
			"║                    SAFETY CHECK FAILED                         ║\n"+
			"║                                                                ║\n"+
			"║  Tests must not run with GO_ENV=production.                    ║\n"+
			"║                                                                ║\n"+
			"║  To run tests safely:                                          ║\n"+
			"║    GO_ENV=test go test ./...                                   ║\n"+
			"╚════════════════════════════════════════════════════════════════╝\n\n")
		os.Exit(1)
	}
	os.Setenv("GO_ENV", "test")

	// Run tests
	os.Exit(m.Run())
}
