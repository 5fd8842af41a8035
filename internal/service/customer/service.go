package customer

import (
	"context"
	"errors"
	"strings"
	"time"

	"shopmate-api/internal/domain"
	custrepo "shopmate-api/internal/repository/customer"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

type repo interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	UpdateProfile(ctx context.Context, id int, in custrepo.ProfileUpdate) (*domain.Customer, error)
	UpdateAddress(ctx context.Context, id int, in custrepo.AddressUpdate) (*domain.Customer, error)
	UpdateCreditCard(ctx context.Context, id int, creditCard string) (*domain.Customer, error)
}

// Service handles customer signup/login flows and profile updates.
type Service struct {
	repo       repo
	tokens     *tokenManager
	tokenTTL   time.Duration
	bcryptCost int
}

func New(r repo, jwtKey []byte, tokenTTL time.Duration, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       r,
		tokens:     newTokenManager(jwtKey, tokenTTL),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// AuthResult bundles the registered/authenticated customer with their token.
type AuthResult struct {
	Customer  *domain.Customer
	Token     string
	ExpiresIn time.Duration
}

// Signup registers a new customer and logs them straight in.
func (s *Service) Signup(ctx context.Context, name, email, password string) (*AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" {
		return nil, &domain.ValidationError{Field: "name"}
	}
	if email == "" {
		return nil, &domain.ValidationError{Field: "email"}
	}
	if strings.TrimSpace(password) == "" {
		return nil, &domain.ValidationError{Field: "password"}
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	c, err := s.repo.Create(ctx, domain.Customer{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	})
	if err != nil {
		return nil, err
	}
	return s.issueFor(c)
}

// Login validates credentials and returns the customer plus a fresh token.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issueFor(c)
}

func (s *Service) issueFor(c *domain.Customer) (*AuthResult, error) {
	token, err := s.tokens.Issue(c.ID, c.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Customer: c, Token: token, ExpiresIn: s.tokenTTL}, nil
}

// LookupByToken returns the customer bound to a valid token.
func (s *Service) LookupByToken(ctx context.Context, token string) (*domain.Customer, error) {
	meta, err := s.tokens.Validate(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	c, err := s.repo.GetByID(ctx, meta.CustomerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, id int, in custrepo.ProfileUpdate) (*domain.Customer, error) {
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Name == "" {
		return nil, &domain.ValidationError{Field: "name"}
	}
	if in.Email == "" {
		return nil, &domain.ValidationError{Field: "email"}
	}
	return s.repo.UpdateProfile(ctx, id, in)
}

func (s *Service) UpdateAddress(ctx context.Context, id int, in custrepo.AddressUpdate) (*domain.Customer, error) {
	if in.Address1 == "" || in.City == "" || in.Region == "" || in.PostalCode == "" || in.Country == "" {
		return nil, &domain.ValidationError{Field: "address_1, city, region, postal_code, country"}
	}
	return s.repo.UpdateAddress(ctx, id, in)
}

func (s *Service) UpdateCreditCard(ctx context.Context, id int, creditCard string) (*domain.Customer, error) {
	if strings.TrimSpace(creditCard) == "" {
		return nil, &domain.ValidationError{Field: "credit_card"}
	}
	return s.repo.UpdateCreditCard(ctx, id, creditCard)
}
