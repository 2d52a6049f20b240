package auth

import (
	"github.com/go-playground/validator/v10"
)

// Input schemas are validated before any store access, so structurally
// malformed payloads never reach a query.

var validate = validator.New()

type signupInput struct {
	Name     string `validate:"required,max=30"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=30"`
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=30"`
}
