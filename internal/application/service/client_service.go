package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sangkips/ventes-dashboard/internal/domain/entity"
	"github.com/sangkips/ventes-dashboard/internal/domain/repository"
	"github.com/sangkips/ventes-dashboard/pkg/apperror"
	"github.com/sirupsen/logrus"
)

var validate = validator.New()

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
	log        logrus.FieldLogger
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository, log logrus.FieldLogger) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
		log:        log,
	}
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	Name  string
	Email string
	Phone string
}

// ListClients returns every client
func (s *ClientService) ListClients(ctx context.Context) ([]entity.Client, error) {
	return s.clientRepo.List(ctx)
}

// CreateClient creates a new client. Only the name is required; a blank
// e-mail or phone is stored as NULL.
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)

	var fieldErrors []apperror.FieldError
	if name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "nom", Message: "nom is required"})
	}
	if email != "" {
		if err := validate.Var(email, "email"); err != nil {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: "email", Message: "email must be a valid email address"})
		}
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewInputError(fieldErrors)
	}

	client := &entity.Client{
		Name:  name,
		Email: optional(email),
		Phone: optional(input.Phone),
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"client_id": client.ID, "nom": client.Name}).Info("client created")
	return client, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
