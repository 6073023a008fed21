package service

import (
	"context"

	"github.com/MKhiriev/go-gtd/internal/events"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/store"
	"github.com/MKhiriev/go-gtd/internal/validators"
	"github.com/MKhiriev/go-gtd/models"
)

const defaultUserLogin = "default"

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	notifier       *events.Notifier
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, notifier *events.Notifier, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		notifier:       notifier,
		logger:         logger,
	}
}

func (s *userService) Me(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, mapStoreError("get user", err)
	}
	return user, nil
}

func (s *userService) UpdateMe(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		return models.User{}, mapStoreError("update user", err)
	}

	if !update.Empty() {
		s.notifier.Notify(ctx, models.ResourceUser, models.ActionUpdated, user.UserID, user.UserID)
	}
	return user, nil
}

func (s *userService) EnsureDefault(ctx context.Context, userID int64) error {
	if err := s.userRepository.EnsureUser(ctx, userID, defaultUserLogin); err != nil {
		return mapStoreError("ensure default user", err)
	}
	return nil
}
