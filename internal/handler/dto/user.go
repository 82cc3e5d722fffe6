// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/ece-devops/userapi/internal/model"

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// CreateUserResponse carries the store acknowledgement of a create.
type CreateUserResponse struct {
	Status string `json:"status"`
	Msg    string `json:"msg"`
}

// UserResponse wraps a single user.
type UserResponse struct {
	Status string      `json:"status"`
	User   *model.User `json:"user"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Status string `json:"status"`
	Msg    string `json:"msg"`
}

// NewErrorResponse builds an error envelope.
func NewErrorResponse(msg string) *ErrorResponse {
	return &ErrorResponse{Status: StatusError, Msg: msg}
}

// ToCreateUserResponse wraps a store acknowledgement.
func ToCreateUserResponse(ack string) *CreateUserResponse {
	return &CreateUserResponse{Status: StatusSuccess, Msg: ack}
}

// ToUserResponse wraps a user.
func ToUserResponse(user *model.User) *UserResponse {
	return &UserResponse{Status: StatusSuccess, User: user}
}
