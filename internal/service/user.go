// Package service provides business logic for the application.
package service

import (
	"context"

	"github.com/ece-devops/userapi/internal/metrics"
	"github.com/ece-devops/userapi/internal/model"
)

// RecordStore is the hash store backing user records.
type RecordStore interface {
	SetHash(ctx context.Context, key string, fields map[string]string) (string, error)
	GetHash(ctx context.Context, key string) (map[string]string, error)
}

// UserService creates and reads user records.
type UserService struct {
	store   RecordStore
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(store RecordStore, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		store:   store,
		metrics: recorder,
	}
}

// CreateUserInput defines input for creating a user.
type CreateUserInput struct {
	Username  string
	Firstname string
	Lastname  string
}

// Create writes the user's names under its username and returns the store
// acknowledgement. An existing record with the same username is overwritten.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (string, error) {
	if input.Username == "" {
		return "", invalidParameters(msgWrongUserParameters)
	}

	user := &model.User{
		Username:  input.Username,
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
	}

	// TODO: reject usernames that already exist once clients can handle a conflict response.
	ack, err := s.store.SetHash(ctx, user.Username, user.ToHash())
	if err != nil {
		s.metrics.IncStoreError("create")
		return "", storeFailure(err)
	}

	s.metrics.IncUserCreated()
	return ack, nil
}

// Get returns the user stored under username.
func (s *UserService) Get(ctx context.Context, username string) (*model.User, error) {
	if username == "" {
		return nil, invalidParameters(msgUsernameRequired)
	}

	fields, err := s.store.GetHash(ctx, username)
	if err != nil {
		s.metrics.IncStoreError("get")
		s.metrics.IncUserLookup(metrics.LookupError)
		return nil, storeFailure(err)
	}

	if len(fields) == 0 {
		s.metrics.IncUserLookup(metrics.LookupNotFound)
		return nil, notFound(MsgUserNotFound)
	}

	s.metrics.IncUserLookup(metrics.LookupFound)
	return model.UserFromHash(username, fields), nil
}
