// Package client is a typed Go binding for the Groomy API. Every operation
// is one POST whose body is the operation's sole argument.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/gateway"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/services"
)

// DefaultTimeout bounds each request when no http.Client is supplied
const DefaultTimeout = 10 * time.Second

// Ack is the result of operations that return no data. A 204 response sets
// NoContent and skips envelope decoding.
type Ack struct {
	NoContent bool
	gateway.Envelope[gateway.Empty]
}

// OK reports whether the operation succeeded
func (a Ack) OK() bool {
	return a.NoContent || a.Success
}

// Client calls one Groomy API deployment
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sends token as a bearer credential on every request
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New returns a client for the API at baseURL, e.g. http://localhost:8080
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the bearer token, e.g. after Login
func (c *Client) SetToken(token string) {
	c.token = token
}

// do posts body to /api/<path>. It returns noContent for a 204 and otherwise
// decodes the envelope into out, for 2xx and 500 alike.
func (c *Client) do(ctx context.Context, path string, body interface{}, out interface{}) (noContent bool, err error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return false, fmt.Errorf("failed to encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/"+path, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNoContent {
		return true, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read %s response: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("%s returned status %d with undecodable body: %w", path, resp.StatusCode, err)
	}
	return false, nil
}

func call[T any](ctx context.Context, c *Client, path string, body interface{}) (gateway.Envelope[T], error) {
	var env gateway.Envelope[T]
	noContent, err := c.do(ctx, path, body, &env)
	if err != nil {
		return gateway.Envelope[T]{}, err
	}
	if noContent {
		return gateway.Envelope[T]{Success: true, Message: gateway.MessageSuccess}, nil
	}
	return env, nil
}

func ack(ctx context.Context, c *Client, path string, body interface{}) (Ack, error) {
	var result Ack
	noContent, err := c.do(ctx, path, body, &result.Envelope)
	if err != nil {
		return Ack{}, err
	}
	result.NoContent = noContent
	return result, nil
}

// Entity is the client side of one entity group
type Entity[E any] struct {
	c     *Client
	group string
	get   string
	list  string
}

// Create returns the new record's id in Data
func (e Entity[E]) Create(ctx context.Context, payload E) (gateway.Envelope[gateway.Created], error) {
	return call[gateway.Created](ctx, e.c, e.group+"/create", payload)
}

// Update replaces the record identified by payload's id
func (e Entity[E]) Update(ctx context.Context, payload E) (Ack, error) {
	return ack(ctx, e.c, e.group+"/update", payload)
}

// Delete removes one record by id
func (e Entity[E]) Delete(ctx context.Context, id uint) (Ack, error) {
	return ack(ctx, e.c, e.group+"/delete", id)
}

// GetByID fetches one record; a missing record is success=false
func (e Entity[E]) GetByID(ctx context.Context, id uint) (gateway.Envelope[E], error) {
	return call[E](ctx, e.c, e.group+"/"+e.get, id)
}

// ListByOwner lists the owner's records, empty rather than null
func (e Entity[E]) ListByOwner(ctx context.Context, ownerID uint) (gateway.Envelope[[]E], error) {
	return call[[]E](ctx, e.c, e.group+"/"+e.list, ownerID)
}

// Customers binds /customers; GetByID is getCustomerByUserID, which looks a
// customer up by its own id.
func (c *Client) Customers() Entity[models.Customer] {
	return Entity[models.Customer]{c: c, group: "customers", get: "getCustomerByUserID", list: "getCustomersByUserID"}
}

// Services binds /services
func (c *Client) Services() Entity[models.Service] {
	return Entity[models.Service]{c: c, group: "services", get: "getServiceByID", list: "getServicesByUserID"}
}

// Appointments binds /appointments; ListByOwner lists by customer
func (c *Client) Appointments() Appointments {
	return Appointments{
		Entity: Entity[models.Appointment]{c: c, group: "appointments", get: "getByAppointmentID", list: "getByCustomerID"},
	}
}

// Appointments adds the by-user listing
type Appointments struct {
	Entity[models.Appointment]
}

// ListByUserID lists every appointment of every customer the user owns
func (a Appointments) ListByUserID(ctx context.Context, userID uint) (gateway.Envelope[[]models.Appointment], error) {
	return call[[]models.Appointment](ctx, a.c, "appointments/getByUserID", userID)
}

var noteRoutes = map[models.OwnerKind]struct{ create, list string }{
	models.OwnerCustomer:    {"createCustomerNote", "getCustomerNotes"},
	models.OwnerAppointment: {"createAppointmentNote", "getAppointmentNotes"},
	models.OwnerService:     {"createServiceNote", "getServiceNotes"},
}

// CreateNote posts [ownerID, note] to the kind's create endpoint. Kinds
// without a dedicated endpoint go through /notes/create so the server
// reports them.
func (c *Client) CreateNote(ctx context.Context, kind models.OwnerKind, ownerID uint, note models.NoteInput) (gateway.Envelope[gateway.Created], error) {
	routes, ok := noteRoutes[kind]
	if !ok {
		return call[gateway.Created](ctx, c, "notes/create", map[string]interface{}{
			"owner_kind": kind,
			"owner_id":   ownerID,
			"note":       note,
		})
	}
	return call[gateway.Created](ctx, c, "notes/"+routes.create, []interface{}{ownerID, note})
}

// ListNotes lists the notes attached to one owner
func (c *Client) ListNotes(ctx context.Context, kind models.OwnerKind, ownerID uint) (gateway.Envelope[[]models.Note], error) {
	routes, ok := noteRoutes[kind]
	if !ok {
		return call[[]models.Note](ctx, c, "notes/list", models.OwnerRef{Kind: kind, ID: ownerID})
	}
	return call[[]models.Note](ctx, c, "notes/"+routes.list, ownerID)
}

// GetNote fetches a note by id
func (c *Client) GetNote(ctx context.Context, id uint) (gateway.Envelope[models.Note], error) {
	return call[models.Note](ctx, c, "notes/getNoteByID", id)
}

// UpdateNote replaces a note's title and body
func (c *Client) UpdateNote(ctx context.Context, note models.Note) (Ack, error) {
	return ack(ctx, c, "notes/updateNoteByID", note)
}

// DeleteNote removes a note by id
func (c *Client) DeleteNote(ctx context.Context, id uint) (Ack, error) {
	return ack(ctx, c, "notes/deleteNoteByID", id)
}

// Signup registers a user; on success the session token is kept for later calls
func (c *Client) Signup(ctx context.Context, in services.SignupInput) (gateway.Envelope[services.Session], error) {
	return c.session(ctx, "auth/signup", in)
}

// Login opens a session; on success the session token is kept for later calls
func (c *Client) Login(ctx context.Context, in services.LoginInput) (gateway.Envelope[services.Session], error) {
	return c.session(ctx, "auth/login", in)
}

func (c *Client) session(ctx context.Context, path string, body interface{}) (gateway.Envelope[services.Session], error) {
	env, err := call[services.Session](ctx, c, path, body)
	if err == nil && env.Success && env.Data != nil {
		c.token = env.Data.Token
	}
	return env, err
}

// Export asks the server to upload a snapshot of userID's data
func (c *Client) Export(ctx context.Context, userID uint) (gateway.Envelope[services.Export], error) {
	return call[services.Export](ctx, c, "exports/create", userID)
}
