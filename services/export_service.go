package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bsu-cs4360-software-engineering/groomy-tbd/gateway"
	"github.com/bsu-cs4360-software-engineering/groomy-tbd/models"
	"github.com/google/uuid"
)

// ErrExportsDisabled is returned when no object store is configured
var ErrExportsDisabled = errors.New("exports are not configured")

// ExportSources are the stores a snapshot is read from
type ExportSources struct {
	Customers    gateway.Store[models.Customer]
	Services     gateway.Store[models.Service]
	Appointments gateway.AppointmentStore
	Notes        map[models.OwnerKind]gateway.NoteOwnerStore
}

// Snapshot is everything one user owns, as written to the export object
type Snapshot struct {
	UserID       uint                 `json:"user_id"`
	ExportedAt   time.Time            `json:"exported_at"`
	Customers    []models.Customer    `json:"customers"`
	Services     []models.Service     `json:"services"`
	Appointments []models.Appointment `json:"appointments"`
	Notes        []models.Note        `json:"notes"`
}

// Export locates an uploaded snapshot
type Export struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// ExportService uploads per-user JSON snapshots to object storage
type ExportService struct {
	sources ExportSources
	objects S3Interface
	now     func() time.Time
}

// NewExportService returns a service writing to objects; a nil objects
// store makes every export fail with ErrExportsDisabled.
func NewExportService(sources ExportSources, objects S3Interface) *ExportService {
	return &ExportService{sources: sources, objects: objects, now: time.Now}
}

// Enabled reports whether an object store is configured
func (s *ExportService) Enabled() bool {
	return s != nil && s.objects != nil
}

// Export snapshots userID's book and returns where it was stored
func (s *ExportService) Export(ctx context.Context, userID uint) (*Export, error) {
	if !s.Enabled() {
		return nil, ErrExportsDisabled
	}

	snapshot, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	body, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := fmt.Sprintf("exports/%d/%s.json", userID, uuid.NewString())
	if err := s.objects.PutObject(ctx, key, body, "application/json"); err != nil {
		return nil, err
	}

	url, err := s.objects.GetPresignedURL(ctx, key)
	if err != nil {
		if delErr := s.objects.DeleteObject(ctx, key); delErr != nil {
			log.Printf("warning: failed to remove export %s: %v", key, delErr)
		}
		return nil, err
	}

	log.Printf("Exported snapshot for user %d to %s", userID, key)
	return &Export{Key: key, URL: url}, nil
}

// Snapshot reads everything userID owns, including notes on each entity
func (s *ExportService) Snapshot(ctx context.Context, userID uint) (*Snapshot, error) {
	customers, err := s.sources.Customers.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	svcs, err := s.sources.Services.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	appointments, err := s.sources.Appointments.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := &Snapshot{
		UserID:       userID,
		ExportedAt:   s.now().UTC(),
		Customers:    nonNil(customers),
		Services:     nonNil(svcs),
		Appointments: nonNil(appointments),
		Notes:        []models.Note{},
	}

	owners := map[models.OwnerKind][]uint{}
	for _, c := range customers {
		owners[models.OwnerCustomer] = append(owners[models.OwnerCustomer], c.ID)
	}
	for _, a := range appointments {
		owners[models.OwnerAppointment] = append(owners[models.OwnerAppointment], a.ID)
	}
	for _, sv := range svcs {
		owners[models.OwnerService] = append(owners[models.OwnerService], sv.ID)
	}

	for _, kind := range models.OwnerKinds {
		notes, ok := s.sources.Notes[kind]
		if !ok {
			continue
		}
		for _, id := range owners[kind] {
			list, err := notes.List(ctx, id)
			if err != nil {
				return nil, err
			}
			snapshot.Notes = append(snapshot.Notes, list...)
		}
	}
	return snapshot, nil
}

func nonNil[E any](items []E) []E {
	if items == nil {
		return []E{}
	}
	return items
}
