package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"mintfire.backend/internal/domain/entities"
	domainerrors "mintfire.backend/internal/domain/errors"
	"mintfire.backend/internal/domain/repositories"
	"mintfire.backend/pkg/crypto"
	"mintfire.backend/pkg/jwt"
	"mintfire.backend/pkg/logger"
	"mintfire.backend/pkg/redis"
)

// indirections for tests
var (
	getFailureCount   = redis.GetInt
	bumpFailureCount  = redis.IncrWithTTL
	clearFailureCount = redis.Del
)

// AuthUsecase handles the admin session lifecycle: login with lockout,
// one-time super-action bypass, token verification and logout.
type AuthUsecase struct {
	adminRepo   repositories.AdminRepository
	superRepo   repositories.SuperActionRepository
	auditRepo   repositories.AuditRepository
	jwtService  *jwt.Service
	sessions    *redis.SessionStore
	maxFailures int
	lockoutTTL  time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	adminRepo repositories.AdminRepository,
	superRepo repositories.SuperActionRepository,
	auditRepo repositories.AuditRepository,
	jwtService *jwt.Service,
	sessions *redis.SessionStore,
	maxFailures int,
	lockoutTTL time.Duration,
) *AuthUsecase {
	if maxFailures <= 0 {
		maxFailures = 5
	}
	if lockoutTTL <= 0 {
		lockoutTTL = 15 * time.Minute
	}
	return &AuthUsecase{
		adminRepo:   adminRepo,
		superRepo:   superRepo,
		auditRepo:   auditRepo,
		jwtService:  jwtService,
		sessions:    sessions,
		maxFailures: maxFailures,
		lockoutTTL:  lockoutTTL,
	}
}

func failureKey(email string) string {
	return "admin_login_failures:" + strings.ToLower(strings.TrimSpace(email))
}

// Login authenticates an admin and issues a signed session token backed
// by a server-side session record. The error is always the generic
// invalid-credentials one on mismatch: which field was wrong must not
// leak.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthSession, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	locked, err := u.isLocked(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, domainerrors.ErrAccountLocked
	}

	admin, err := u.adminRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, u.registerFailure(ctx, input.Email)
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, admin.PasswordHash) {
		return nil, u.registerFailure(ctx, input.Email)
	}

	if err := clearFailureCount(ctx, failureKey(input.Email)); err != nil {
		logger.Warn(ctx, "failed to clear login failure counter", zap.Error(err))
	}

	sessionID := uuid.New().String()
	token, err := u.jwtService.GenerateSessionToken(admin.ID, admin.Email, sessionID)
	if err != nil {
		return nil, err
	}

	expiry := u.jwtService.SessionExpiry()
	err = u.sessions.CreateSession(ctx, sessionID, &redis.SessionData{
		AdminID:  admin.ID.String(),
		Email:    admin.Email,
		IssuedAt: time.Now(),
	}, expiry)
	if err != nil {
		return nil, err
	}

	return &entities.AuthSession{
		Token:     token,
		ExpiresAt: time.Now().Add(expiry),
		Admin:     admin,
	}, nil
}

// Verify checks a presented session token: signature, expiry, and that
// the embedded session still exists server-side. Cookie presence alone
// never passes.
func (u *AuthUsecase) Verify(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, domainerrors.ErrUnauthorized
	}

	if _, err := u.sessions.GetSession(ctx, claims.SessionID); err != nil {
		return nil, domainerrors.ErrUnauthorized
	}
	return claims, nil
}

// Logout revokes the session behind a token. Revocation is what makes
// the signed token dead before its embedded expiry.
func (u *AuthUsecase) Logout(ctx context.Context, token string) error {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		// Nothing to revoke for an unverifiable token
		return nil
	}
	return u.sessions.DeleteSession(ctx, claims.SessionID)
}

// SuperAction redeems a one-time high-privilege code to clear a lockout.
// Fails closed: an invalid code counts as another failure and the lock
// stays. Every attempt is audited.
func (u *AuthUsecase) SuperAction(ctx context.Context, input *entities.SuperActionInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	codes, err := u.superRepo.ListUnused(ctx)
	if err != nil {
		return err
	}

	for _, code := range codes {
		if !crypto.CheckPassword(input.Code, code.CodeHash) {
			continue
		}
		if err := u.superRepo.MarkUsed(ctx, code.ID); err != nil {
			// Lost the race to another redemption; treat as invalid
			break
		}
		if err := clearFailureCount(ctx, failureKey(input.Email)); err != nil {
			return err
		}
		u.audit(ctx, "super_action_redeemed", input.Email, "lockout bypass for "+input.Email)
		logger.Warn(ctx, "super action code redeemed", zap.String("email", input.Email))
		return nil
	}

	u.audit(ctx, "super_action_denied", input.Email, "invalid code presented")
	if err := u.registerFailure(ctx, input.Email); errors.Is(err, domainerrors.ErrAccountLocked) {
		return domainerrors.ErrAccountLocked
	}
	return domainerrors.ErrInvalidCredentials
}

// CreateAdmin provisions a new admin credential
func (u *AuthUsecase) CreateAdmin(ctx context.Context, actorEmail string, input *entities.CreateAdminInput) (*entities.AdminCredential, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	admin, err := u.adminRepo.Create(ctx, input, hash)
	if err != nil {
		return nil, err
	}

	u.audit(ctx, "admin_created", actorEmail, "created admin "+admin.Email)
	return admin, nil
}

// ProvisionSuperActionCode mints a one-time bypass code and returns the
// plaintext exactly once; only the hash is stored.
func (u *AuthUsecase) ProvisionSuperActionCode(ctx context.Context, actorEmail string) (string, error) {
	plaintext, err := crypto.GenerateSuperActionCode()
	if err != nil {
		return "", err
	}
	hash, err := crypto.HashPassword(plaintext)
	if err != nil {
		return "", err
	}
	if _, err := u.superRepo.Create(ctx, hash); err != nil {
		return "", err
	}
	u.audit(ctx, "super_action_provisioned", actorEmail, "one-time code issued")
	return plaintext, nil
}

func (u *AuthUsecase) isLocked(ctx context.Context, email string) (bool, error) {
	n, err := getFailureCount(ctx, failureKey(email))
	if err != nil {
		return false, err
	}
	return n >= int64(u.maxFailures), nil
}

// registerFailure bumps the counter and returns either the generic
// credential error or the lockout error when the threshold is crossed.
func (u *AuthUsecase) registerFailure(ctx context.Context, email string) error {
	n, err := bumpFailureCount(ctx, failureKey(email), u.lockoutTTL)
	if err != nil {
		logger.Warn(ctx, "failed to record login failure", zap.Error(err))
		return domainerrors.ErrInvalidCredentials
	}
	if n >= int64(u.maxFailures) {
		return domainerrors.ErrAccountLocked
	}
	return domainerrors.ErrInvalidCredentials
}

func (u *AuthUsecase) audit(ctx context.Context, action, actor, detail string) {
	if err := u.auditRepo.Record(ctx, action, actor, detail); err != nil {
		logger.Error(ctx, "failed to write audit entry", zap.String("action", action), zap.Error(err))
	}
}
