package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"shopgrid/internal/domain"
	"shopgrid/internal/store"
)

var ErrUsernameTaken = errors.New("username already taken")

type AccountService struct {
	Store store.Storage
}

func NewAccountService(s store.Storage) *AccountService {
	return &AccountService{Store: s}
}

// Register hashes the password and stores the user. Uniqueness is enforced
// by lookup, not by a storage constraint.
func (s *AccountService) Register(username, password string) (domain.User, error) {
	if _, ok, err := s.Store.GetUserByUsername(username); err != nil {
		return domain.User{}, err
	} else if ok {
		return domain.User{}, ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	return s.Store.CreateUser(domain.User{Username: username, Password: string(hash)})
}

func (s *AccountService) ByUsername(username string) (domain.User, bool, error) {
	return s.Store.GetUserByUsername(username)
}
