package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edtrack/edtrack-go/internal/domain"
	"github.com/edtrack/edtrack-go/internal/restclient"
	"github.com/edtrack/edtrack-go/internal/wire"
)

// DepartmentService provides department operations.
type DepartmentService struct {
	client *restclient.Client
	logger *slog.Logger
}

// NewDepartmentService creates a DepartmentService. It returns an error
// if the client is nil.
func NewDepartmentService(client *restclient.Client, log *slog.Logger) (*DepartmentService, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &DepartmentService{
		client: client,
		logger: log.With(slog.String("component", "department_service")),
	}, nil
}

// List returns all departments.
func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	ws, err := restclient.Get[[]wire.Department](ctx, s.client, "/departments")
	if err != nil {
		return nil, err
	}

	departments := make([]domain.Department, 0, len(ws))
	for _, w := range ws {
		departments = append(departments, wire.DepartmentFromWire(w))
	}
	return departments, nil
}

// Get returns a single department. A 404 propagates as not-found.
func (s *DepartmentService) Get(ctx context.Context, id string) (domain.Department, error) {
	if err := requireID("department id", id); err != nil {
		return domain.Department{}, err
	}

	w, err := restclient.Get[wire.Department](ctx, s.client, "/departments/"+id)
	if err != nil {
		return domain.Department{}, err
	}
	return wire.DepartmentFromWire(w), nil
}

// Create adds a department.
func (s *DepartmentService) Create(ctx context.Context, name, headID string) (domain.Department, error) {
	if err := requireID("department name", name); err != nil {
		return domain.Department{}, err
	}

	w, err := restclient.Post[wire.Department](ctx, s.client, "/departments",
		map[string]string{"name": name, "headId": headID})
	if err != nil {
		return domain.Department{}, err
	}
	return wire.DepartmentFromWire(w), nil
}

// Update renames a department or reassigns its head.
func (s *DepartmentService) Update(ctx context.Context, id, name, headID string) (domain.Department, error) {
	if err := requireID("department id", id); err != nil {
		return domain.Department{}, err
	}
	if err := requireID("department name", name); err != nil {
		return domain.Department{}, err
	}

	w, err := restclient.Put[wire.Department](ctx, s.client, "/departments/"+id,
		map[string]string{"name": name, "headId": headID})
	if err != nil {
		return domain.Department{}, err
	}
	return wire.DepartmentFromWire(w), nil
}

// Delete removes a department.
func (s *DepartmentService) Delete(ctx context.Context, id string) error {
	if err := requireID("department id", id); err != nil {
		return err
	}

	_, err := restclient.Delete[struct{}](ctx, s.client, "/departments/"+id, nil)
	return err
}

// PositionService provides job-title operations.
type PositionService struct {
	client *restclient.Client
}

// NewPositionService creates a PositionService. It returns an error if
// the client is nil.
func NewPositionService(client *restclient.Client) (*PositionService, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}
	return &PositionService{client: client}, nil
}

// List returns all positions.
func (s *PositionService) List(ctx context.Context) ([]domain.Position, error) {
	ws, err := restclient.Get[[]wire.Position](ctx, s.client, "/positions")
	if err != nil {
		return nil, err
	}

	positions := make([]domain.Position, 0, len(ws))
	for _, w := range ws {
		positions = append(positions, wire.PositionFromWire(w))
	}
	return positions, nil
}

// Create adds a position.
func (s *PositionService) Create(ctx context.Context, name string) (domain.Position, error) {
	if err := requireID("position name", name); err != nil {
		return domain.Position{}, err
	}

	w, err := restclient.Post[wire.Position](ctx, s.client, "/positions",
		map[string]string{"name": name})
	if err != nil {
		return domain.Position{}, err
	}
	return wire.PositionFromWire(w), nil
}

// Update renames a position.
func (s *PositionService) Update(ctx context.Context, id, name string) (domain.Position, error) {
	if err := requireID("position id", id); err != nil {
		return domain.Position{}, err
	}
	if err := requireID("position name", name); err != nil {
		return domain.Position{}, err
	}

	w, err := restclient.Put[wire.Position](ctx, s.client, "/positions/"+id,
		map[string]string{"name": name})
	if err != nil {
		return domain.Position{}, err
	}
	return wire.PositionFromWire(w), nil
}

// Delete removes a position.
func (s *PositionService) Delete(ctx context.Context, id string) error {
	if err := requireID("position id", id); err != nil {
		return err
	}

	_, err := restclient.Delete[struct{}](ctx, s.client, "/positions/"+id, nil)
	return err
}
