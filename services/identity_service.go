package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-manager/models"
)

// IdentityProvider is the slice of the identity system the booking core
// consumes: role lookup, identity-to-email correlation, and deletion. Token
// issuance and password storage stay behind this interface.
type IdentityProvider interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	RolesFor(ctx context.Context, user *models.User) ([]string, error)
	DeleteIdentity(ctx context.Context, user *models.User) error
}

// IdentityService is the gorm-backed provider used in production and tests.
type IdentityService struct {
	DB *gorm.DB
}

func NewIdentityService(db *gorm.DB) *IdentityService {
	return &IdentityService{DB: db}
}

// FindByEmail returns nil (not an error) when no account matches.
func (s *IdentityService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", strings.TrimSpace(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up identity: %w", err)
	}
	return &user, nil
}

func (s *IdentityService) RolesFor(ctx context.Context, user *models.User) ([]string, error) {
	var roles []models.Role
	err := s.DB.WithContext(ctx).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", user.ID).
		Find(&roles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names, nil
}

func (s *IdentityService) DeleteIdentity(ctx context.Context, user *models.User) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", user.ID).Error
	})
}

// EnsureRole creates the named role if absent and returns it either way.
func (s *IdentityService) EnsureRole(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	err := s.DB.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if err == nil {
		return &role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	role = models.Role{Name: name}
	if err := s.DB.WithContext(ctx).Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// CreateUser registers an identity account with a bcrypt-hashed credential
// and assigns it the given role.
func (s *IdentityService) CreateUser(ctx context.Context, fullName, email, password, roleName string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role, err := s.EnsureRole(ctx, roleName)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:            uuid.NewString(),
		FullName:      fullName,
		Email:         strings.TrimSpace(email),
		PasswordHash:  string(hash),
		SecurityStamp: uuid.NewString(),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserRole{UserID: user.ID, RoleID: role.ID}).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
func (s *IdentityService) VerifyPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

func jwtSecret() []byte {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "hotel-manager-dev-secret"
	}
	return []byte(secret)
}

// IssueToken signs a session token carrying the account email and its primary
// role. Expiry is fixed at 24h.
func (s *IdentityService) IssueToken(ctx context.Context, user *models.User) (string, error) {
	roles, err := s.RolesFor(ctx, user)
	if err != nil {
		return "", err
	}
	role := RoleUser
	for _, r := range roles {
		if r == RoleAdmin {
			role = RoleAdmin
			break
		}
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseToken validates a session token and returns the caller it encodes.
func ParseToken(raw string) (Caller, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return Caller{}, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Caller{}, errors.New("invalid claims")
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	return Caller{Role: role, Email: email}, nil
}
