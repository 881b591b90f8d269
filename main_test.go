package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/config"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/services"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("GO_ENV", "test")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		GoEnv:       "test",
		JWTSecret:   "main-test-secret",
		JWTIssuer:   "groomy",
		JWTAudience: "groomy-api",
		TokenTTL:    time.Hour,
		LogLevel:    "debug",
	}
}

func newTestToken(t *testing.T, userID uint) string {
	t.Helper()
	signed, _, err := services.NewAuthService(nil, testConfig()).IssueToken(userID)
	require.NoError(t, err)
	return signed
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "login", "customers", "notes"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestBuildRouterHealthCheck(t *testing.T) {
	router := buildRouter(context.Background(), testutil.NewTestDB(t), testConfig())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 2, "Response should have exactly 2 fields")
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Groomy API is running", response["message"])
}

func TestBuildRouterWithoutBucketDisablesExports(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, db, "owner@example.com")
	router := buildRouter(context.Background(), db, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/exports/create", bytes.NewReader([]byte(fmt.Sprint(user.ID))))
	req.Header.Set("Authorization", "Bearer "+newTestToken(t, user.ID))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Exports are not configured")
}

func TestNotesCommandRejectsUnknownKind(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"notes", "--kind", "invoice", "--owner", "1", "--api-url", "http://127.0.0.1:1"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid owner kind")
}

func TestCustomersCommandPrintsList(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.SeedUser(t, db, "owner@example.com")
	testutil.SeedCustomer(t, db, user.ID, "Ada")
	server := httptest.NewServer(buildRouter(context.Background(), db, testConfig()))
	defer server.Close()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"customers", "--user", fmt.Sprint(user.ID), "--api-url", server.URL, "--token", newTestToken(t, user.ID)})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	var customers []map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &customers))
	require.Len(t, customers, 1)
	assert.Equal(t, "Ada", customers[0]["first_name"])
}
