package service

import (
	"errors"
	"fmt"

	"rentwheels/internal/apperr"
	"rentwheels/internal/auth"
	"rentwheels/internal/db"
	"rentwheels/internal/entities"
	"rentwheels/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users  *repository.UserRepository
	Admins *repository.AdminRepository
}

func NewAuthService(users *repository.UserRepository, admins *repository.AdminRepository) *AuthService {
	return &AuthService{Users: users, Admins: admins}
}

// VerifyUser checks a customer's phone number and password against the store.
func (s *AuthService) VerifyUser(phone, password string) (*entities.Identity, error) {
	user, err := s.Users.GetByPhone(phone)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}
	return &entities.Identity{Role: entities.RoleUser, User: user}, nil
}

// VerifyAdmin checks an admin ID and password. Admin rows are seeded
// out-of-band; there is no signup path for them.
func (s *AuthService) VerifyAdmin(adminID, password string) (*entities.Identity, error) {
	admin, err := s.Admins.GetByID(adminID)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}
	return &entities.Identity{Role: entities.RoleAdmin, Admin: admin}, nil
}

// Signup creates a user and returns its identity. Duplicate phone numbers
// surface as apperr.ErrDuplicatePhone from the unique constraint.
func (s *AuthService) Signup(name, phone, password string) (*entities.Identity, error) {
	if name == "" || phone == "" || password == "" {
		return nil, errors.New("name, phone and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &db.User{Phone: phone, Name: name, PasswordHash: string(hash)}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return &entities.Identity{Role: entities.RoleUser, User: user}, nil
}

// LoadIdentity re-fetches the identity a session refers to. Sessions carry
// only {id, role}; the row comes from the store on every request.
func (s *AuthService) LoadIdentity(sess auth.Session) (*entities.Identity, error) {
	switch sess.Role {
	case entities.RoleAdmin:
		admin, err := s.Admins.GetByID(sess.ID)
		if err != nil {
			return nil, err
		}
		return &entities.Identity{Role: entities.RoleAdmin, Admin: admin}, nil
	default:
		user, err := s.Users.GetByPhone(sess.ID)
		if err != nil {
			return nil, err
		}
		return &entities.Identity{Role: entities.RoleUser, User: user}, nil
	}
}
