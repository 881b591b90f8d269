package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityCreateThenGet(t *testing.T) {
	ctx := context.Background()
	customers := NewEntity[models.Customer]("customer", newMemCustomers())

	created := customers.Create(ctx, &models.Customer{UserID: 1, FirstName: "Ada", Email: "ada@example.com"})
	require.True(t, created.Success)
	assert.Equal(t, MessageSuccess, created.Message)
	require.NotNil(t, created.Data)

	got := customers.GetByID(ctx, created.Data.ID)
	require.True(t, got.Success)
	assert.Equal(t, "Ada", got.Data.FirstName)
	assert.Equal(t, "ada@example.com", got.Data.Email)
	assert.Equal(t, created.Data.ID, got.Data.ID)
}

func TestEntityGetMissing(t *testing.T) {
	customers := NewEntity[models.Customer]("customer", newMemCustomers())

	env := customers.GetByID(context.Background(), 42)
	assert.False(t, env.Success)
	assert.Nil(t, env.Data)
	assert.Equal(t, "Error finding customer", env.Message)
}

func TestEntityListByOwnerEmptyIsNotNull(t *testing.T) {
	customers := NewEntity[models.Customer]("customer", newMemCustomers())

	env := customers.ListByOwner(context.Background(), 7)
	require.True(t, env.Success)
	require.NotNil(t, env.Data)
	assert.Empty(t, *env.Data)

	body, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"Success","data":[]}`, string(body))
}

func TestEntityListByOwnerFiltersByOwner(t *testing.T) {
	ctx := context.Background()
	customers := NewEntity[models.Customer]("customer", newMemCustomers())
	customers.Create(ctx, &models.Customer{UserID: 1, FirstName: "A"})
	customers.Create(ctx, &models.Customer{UserID: 2, FirstName: "B"})
	customers.Create(ctx, &models.Customer{UserID: 1, FirstName: "C"})

	env := customers.ListByOwner(ctx, 1)
	require.True(t, env.Success)
	require.Len(t, *env.Data, 2)
	assert.Equal(t, "A", (*env.Data)[0].FirstName)
	assert.Equal(t, "C", (*env.Data)[1].FirstName)
}

func TestEntityDeleteIsNotIdempotent(t *testing.T) {
	ctx := context.Background()
	customers := NewEntity[models.Customer]("customer", newMemCustomers())
	created := customers.Create(ctx, &models.Customer{UserID: 1, FirstName: "A"})

	first := customers.Delete(ctx, created.Data.ID)
	assert.True(t, first.Success)

	second := customers.Delete(ctx, created.Data.ID)
	assert.False(t, second.Success)
	assert.Equal(t, "Error deleting customer", second.Message)

	assert.False(t, customers.GetByID(ctx, created.Data.ID).Success)
}

func TestEntityUpdate(t *testing.T) {
	ctx := context.Background()
	customers := NewEntity[models.Customer]("customer", newMemCustomers())
	created := customers.Create(ctx, &models.Customer{UserID: 1, FirstName: "A"})

	env := customers.Update(ctx, &models.Customer{ID: created.Data.ID, UserID: 1, FirstName: "B"})
	require.True(t, env.Success)
	assert.Nil(t, env.Data)
	assert.Equal(t, "B", customers.GetByID(ctx, created.Data.ID).Data.FirstName)

	missing := customers.Update(ctx, &models.Customer{ID: 99, FirstName: "X"})
	assert.False(t, missing.Success)
	assert.Equal(t, "Error updating customer", missing.Message)
}

func TestEntityStoreFailures(t *testing.T) {
	ctx := context.Background()
	store := newMemCustomers()
	store.fail = errors.New("connection refused")
	customers := NewEntity[models.Customer]("customer", store)

	tests := []struct {
		name    string
		env     func() (bool, string)
		message string
	}{
		{"create", func() (bool, string) { e := customers.Create(ctx, &models.Customer{}); return e.Success, e.Message }, "Error adding customer"},
		{"update", func() (bool, string) { e := customers.Update(ctx, &models.Customer{ID: 1}); return e.Success, e.Message }, "Error updating customer"},
		{"delete", func() (bool, string) { e := customers.Delete(ctx, 1); return e.Success, e.Message }, "Error deleting customer"},
		{"get", func() (bool, string) { e := customers.GetByID(ctx, 1); return e.Success, e.Message }, "Error finding customer"},
		{"list", func() (bool, string) { e := customers.ListByOwner(ctx, 1); return e.Success, e.Message }, "Error finding customers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			success, message := tt.env()
			assert.False(t, success)
			assert.Equal(t, tt.message, message)
			assert.NotContains(t, message, "connection refused")
		})
	}
}

func TestEntityNilPayload(t *testing.T) {
	store := newMemCustomers()
	customers := NewEntity[models.Customer]("customer", store)

	assert.False(t, customers.Create(context.Background(), nil).Success)
	assert.False(t, customers.Update(context.Background(), nil).Success)
	assert.Zero(t, store.calls)
}

func TestEnvelopeJSON(t *testing.T) {
	failed, err := json.Marshal(Fail[models.Customer]("Error finding customer"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"message":"Error finding customer"}`, string(failed))

	done, err := json.Marshal(Done())
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"message":"Success"}`, string(done))

	assert.NotEmpty(t, Fail[Empty]("").Message)
}
