package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLen = 6
	// bcrypt limit
	maxPasswordLen = 72
)

type UserService struct {
	repo       ports.UserRepo
	uploader   ports.ImageUploader
	tokens     ports.TokenIssuer
	bcryptCost int
}

func NewUserService(repo ports.UserRepo, uploader ports.ImageUploader, tokens ports.TokenIssuer, bcryptCost int) *UserService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{
		repo:       repo,
		uploader:   uploader,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           name,
		Email:          email,
		PasswordHash:   hash,
		Role:           domain.RoleCustomer,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login returns a signed token. Unknown email and wrong password look the same to the caller.
func (s *UserService) Login(ctx context.Context, input domain.LoginInput) (string, *domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, input domain.ProfileUpdateInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	user.Name = name
	if input.Password != "" {
		if user.PasswordHash, err = s.hashPassword(input.Password); err != nil {
			return nil, err
		}
	}
	if input.TelegramChatID != nil {
		user.TelegramChatID = input.TelegramChatID
	}

	var uploaded *domain.UploadedImage
	if input.Image != nil {
		img, err := s.uploader.Upload(ctx, *input.Image)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
		}
		uploaded = &img
		user.ImageURL = img.URL
	}
	user.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, user); err != nil {
		if uploaded != nil {
			_ = s.uploader.Delete(context.WithoutCancel(ctx), uploaded.PublicID)
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

// BecomeSeller promotes a customer. Sellers are returned unchanged.
func (s *UserService) BecomeSeller(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user.Role == domain.RoleSeller {
		return user, nil
	}

	user.Role = domain.RoleSeller
	user.UpdatedAt = time.Now().UTC()
	if err = s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

func (s *UserService) hashPassword(password string) (string, error) {
	if len(password) < minPasswordLen {
		return "", fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}
	if len(password) > maxPasswordLen {
		return "", fmt.Errorf("%w: password must be at most %d bytes", domain.ErrValidation, maxPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email", domain.ErrValidation)
	}
	return email, nil
}
