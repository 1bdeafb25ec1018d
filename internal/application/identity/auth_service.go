package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crosserp/backend/internal/domain/catalog"
	"github.com/crosserp/backend/internal/domain/identity"
	"github.com/crosserp/backend/internal/domain/partner"
	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/crosserp/backend/internal/infrastructure/auth"
)

// AuthService handles company registration and authentication
type AuthService struct {
	tenantRepo    identity.TenantRepository
	userRepo      identity.UserRepository
	warehouseRepo partner.WarehouseRepository
	uomRepo       catalog.UOMRepository
	jwtService    *auth.JWTService
	logger        *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	tenantRepo identity.TenantRepository,
	userRepo identity.UserRepository,
	warehouseRepo partner.WarehouseRepository,
	uomRepo catalog.UOMRepository,
	jwtService *auth.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		tenantRepo:    tenantRepo,
		userRepo:      userRepo,
		warehouseRepo: warehouseRepo,
		uomRepo:       uomRepo,
		jwtService:    jwtService,
		logger:        logger,
	}
}

// Register creates a tenant with its first user, a default warehouse
// and a default unit of measure, then signs the user in.
func (s *AuthService) Register(ctx context.Context, req RegisterCompanyRequest) (*AuthResponse, error) {
	taken, err := s.tenantRepo.ExistsBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("SLUG_TAKEN", "A company with this slug already exists")
	}

	tenant, err := identity.NewTenant(req.CompanyName, req.Slug)
	if err != nil {
		return nil, err
	}
	if req.Phone != "" {
		if err := tenant.SetContact(req.Phone, "", ""); err != nil {
			return nil, err
		}
	}
	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	user, err := identity.NewUser(tenant.ID, req.Username, req.Password, req.DisplayName)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	warehouse, err := partner.NewWarehouse(tenant.ID, "MAIN", "Main Warehouse")
	if err != nil {
		return nil, err
	}
	warehouse.SetDefault(true)
	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	uom, err := catalog.NewUnitOfMeasure(tenant.ID, "Pieces", "pcs")
	if err != nil {
		return nil, err
	}
	if err := s.uomRepo.Save(ctx, uom); err != nil {
		return nil, err
	}

	s.logger.Info("Company registered",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("slug", tenant.Slug))

	return s.issueTokens(user, tenant)
}

// Login authenticates a user within a tenant and returns a token pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	tenant, err := s.tenantRepo.FindBySlug(ctx, req.TenantSlug)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, errInvalidCredentials()
		}
		return nil, err
	}
	if !tenant.IsActive {
		return nil, shared.NewDomainError("TENANT_INACTIVE", "Company account is not active")
	}

	user, err := s.userRepo.FindByUsername(ctx, tenant.ID, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login for unknown user",
				zap.String("tenant_slug", req.TenantSlug),
				zap.String("username", req.Username))
			return nil, errInvalidCredentials()
		}
		return nil, err
	}
	if !user.IsActive() {
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is not active")
	}
	if !user.CheckPassword(req.Password) {
		s.logger.Warn("Invalid password attempt",
			zap.String("tenant_id", tenant.ID.String()),
			zap.String("username", user.Username))
		return nil, errInvalidCredentials()
	}

	user.RecordLogin(time.Now())
	if err := s.userRepo.Save(ctx, user); err != nil {
		// Login still succeeds; the timestamp is best-effort
		s.logger.Error("Failed to record login time", zap.Error(err))
	}

	return s.issueTokens(user, tenant)
}

// RefreshToken exchanges a valid refresh token for a new pair
func (s *AuthService) RefreshToken(ctx context.Context, req RefreshTokenRequest) (*TokenResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, mapTokenError(err)
	}

	tenantID, err := claims.GetTenantUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid tenant in token")
	}
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user in token")
	}

	user, err := s.userRepo.FindByID(ctx, tenantID, userID)
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "User no longer exists")
	}
	if !user.IsActive() {
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is no longer active")
	}

	pair, err := s.jwtService.RefreshTokenPair(req.RefreshToken)
	if err != nil {
		return nil, mapTokenError(err)
	}

	return &TokenResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
	}, nil
}

// Me returns the authenticated user's profile
func (s *AuthService) Me(ctx context.Context, tenantID, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	tenant, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	info := toUserInfo(user, tenant)
	return &info, nil
}

func (s *AuthService) issueTokens(user *identity.User, tenant *identity.Tenant) (*AuthResponse, error) {
	pair, err := s.jwtService.GenerateTokenPair(user.TenantID, user.ID, user.Username)
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	return &AuthResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
		User:                  toUserInfo(user, tenant),
	}, nil
}

func errInvalidCredentials() error {
	return shared.NewDomainError("INVALID_CREDENTIALS", "Invalid company, username or password")
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidTokenType), errors.Is(err, auth.ErrInvalidClaims):
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	default:
		return shared.NewDomainError("TOKEN_ERROR", "Failed to validate refresh token")
	}
}
