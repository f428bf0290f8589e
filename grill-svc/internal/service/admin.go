package service

import (
	"fmt"
	"log"
	"strings"

	"mikes-grill/grill-svc/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type AdminService struct {
	repo AdminRepository
}

func NewAdminService(repo AdminRepository) *AdminService {
	return &AdminService{repo: repo}
}

func (s *AdminService) List() ([]domain.AdminUser, error) {
	return s.repo.ListAdmins()
}

func (s *AdminService) Create(req domain.CreateAdminRequest) (*domain.AdminUser, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if len(req.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.repo.GetAdminByUsername(req.Username); err == nil {
		return nil, ErrDuplicateUsername
	} else if notFound(err) != ErrNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.AdminUser{Username: req.Username, PasswordHash: string(hash)}
	if err := s.repo.CreateAdmin(user); err != nil {
		if uniqueViolation(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	return user, nil
}

// Delete removes an admin; the account behind the acting session cannot remove itself.
func (s *AdminService) Delete(id int, acting *domain.Session) error {
	if acting != nil && acting.UserID == id {
		return ErrSelfDelete
	}
	rows, err := s.repo.DeleteAdmin(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *AdminService) EnsureDefaultAdmin(username, password string) error {
	count, err := s.repo.CountAdmins()
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}
	if password == "" {
		log.Printf("No admin accounts exist and ADMIN_PASSWORD is empty; admin login is disabled")
		return nil
	}
	if _, err := s.Create(domain.CreateAdminRequest{Username: username, Password: password}); err != nil {
		return fmt.Errorf("seed admin %q: %w", username, err)
	}
	log.Printf("Seeded admin account %q", username)
	return nil
}

var _ AdminServiceInterface = (*AdminService)(nil)
