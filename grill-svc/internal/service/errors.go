package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCategory    = errors.New("menu item must reference an existing category")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrSelfDelete         = errors.New("cannot delete the account you are logged in with")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLoginThrottled     = errors.New("too many failed login attempts")
	ErrEmptyUpload        = errors.New("file is empty")
	ErrUnsupportedImage   = errors.New("invalid file type, only JPEG, PNG, GIF, WebP allowed")
)

const MinPasswordLength = 8

var validate = validator.New()

func validateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// uniqueViolation reports a Postgres unique constraint failure.
func uniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
