package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edtrack/edtrack-go/internal/apperr"
	"github.com/edtrack/edtrack-go/internal/domain"
	"github.com/edtrack/edtrack-go/internal/restclient"
	"github.com/edtrack/edtrack-go/internal/wire"
)

// UserService provides account operations against /users.
type UserService struct {
	client *restclient.Client
	logger *slog.Logger
}

// NewUserService creates a UserService. It returns an error if the
// client is nil.
func NewUserService(client *restclient.Client, log *slog.Logger) (*UserService, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &UserService{
		client: client,
		logger: log.With(slog.String("component", "user_service")),
	}, nil
}

// List returns one page of users matching the filter.
func (s *UserService) List(ctx context.Context, filter domain.UserFilter, page, pageSize int) (domain.Page[domain.User], error) {
	params := restclient.PageParams(page, pageSize).Merge(restclient.Params{
		"role":         string(filter.Role),
		"departmentId": filter.DepartmentID,
		"search":       filter.Search,
	})
	if filter.Active != nil {
		params["active"] = *filter.Active
	}

	wirePage, err := restclient.Get[wire.Page[wire.User]](ctx, s.client, "/users", restclient.WithQuery(params))
	if err != nil {
		return domain.Page[domain.User]{}, err
	}
	return wire.PageFromWire(wirePage, wire.UserFromWire), nil
}

// Get returns a single user. A 404 propagates as not-found.
func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	if err := requireID("user id", id); err != nil {
		return domain.User{}, err
	}

	w, err := restclient.Get[wire.User](ctx, s.client, "/users/"+id)
	if err != nil {
		return domain.User{}, err
	}
	return wire.UserFromWire(w), nil
}

// Create registers a new user.
func (s *UserService) Create(ctx context.Context, in domain.UserDraftInput) (domain.User, error) {
	if err := checkInput(in); err != nil {
		return domain.User{}, err
	}

	w, err := restclient.Post[wire.User](ctx, s.client, "/users", wire.UserDraftToWire(in))
	if err != nil {
		return domain.User{}, err
	}

	s.logger.InfoContext(ctx, "user created", slog.String("user_id", w.ID))
	return wire.UserFromWire(w), nil
}

// Update replaces a user's editable fields.
func (s *UserService) Update(ctx context.Context, id string, in domain.UserDraftInput) (domain.User, error) {
	if err := requireID("user id", id); err != nil {
		return domain.User{}, err
	}
	if err := checkInput(in); err != nil {
		return domain.User{}, err
	}

	w, err := restclient.Put[wire.User](ctx, s.client, "/users/"+id, wire.UserDraftToWire(in))
	if err != nil {
		return domain.User{}, err
	}
	return wire.UserFromWire(w), nil
}

// AssignRole changes a user's role without touching other fields.
func (s *UserService) AssignRole(ctx context.Context, id string, role domain.Role) (domain.User, error) {
	if err := requireID("user id", id); err != nil {
		return domain.User{}, err
	}
	switch role {
	case domain.RoleAdmin, domain.RoleManager, domain.RoleStudent:
	default:
		return domain.User{}, apperr.New(apperr.KindValidation, "unknown role", nil)
	}

	w, err := restclient.Put[wire.User](ctx, s.client, "/users/"+id+"/role",
		map[string]string{"role": string(role)})
	if err != nil {
		return domain.User{}, err
	}
	return wire.UserFromWire(w), nil
}

// Delete deactivates and removes a user.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := requireID("user id", id); err != nil {
		return err
	}

	_, err := restclient.Delete[struct{}](ctx, s.client, "/users/"+id, nil)
	return err
}
