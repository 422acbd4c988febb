package usecase

import (
	"context"
	"errors"
	"time"

	"casaok/internal/domain/entity"
	"casaok/internal/domain/repository"
	"casaok/internal/infrastructure/firebase"
	apperrors "casaok/pkg/errors"
	"casaok/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
	adminEmails  map[string]bool
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient, adminEmails []string) *AuthUseCase {
	emails := make(map[string]bool, len(adminEmails))
	for _, email := range adminEmails {
		emails[email] = true
	}
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
		adminEmails:  emails,
	}
}

type RegisterInput struct {
	Email       string
	Password    string
	FullName    string
	Phone       string
	PartnerCode string
}

type AuthResult struct {
	User      *entity.User
	Token     string
	PanelPath string
}

// Session is a resolved, role-checked identity. The role guard returns nil
// (not an error) when access is denied.
type Session struct {
	UID  string
	Role string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, apperrors.BadRequest("Este email já está em uso.", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.FullName)
	if err != nil {
		return nil, mapAuthError(err)
	}

	now := time.Now()
	user := &entity.User{
		ID:          uid,
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		PartnerCode: input.PartnerCode,
		Role:        entity.RoleCliente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, apperrors.Internal("Failed to create user record", err)
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, mapAuthError(err)
	}

	return &AuthResult{
		User:      user,
		Token:     token,
		PanelPath: PanelPath(user.Role),
	}, nil
}

// Login signs the user in and upserts the profile document. The stored
// role wins over the requested one, except for admin-designated e-mails,
// which are always forced to admin. New profiles take the requested role.
func (uc *AuthUseCase) Login(ctx context.Context, email, password, requestedRole string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, mapAuthError(err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, apperrors.Internal("Failed to verify token", err)
	}

	user, err := uc.resolveProfile(ctx, uid, email, requestedRole)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:      user,
		Token:     token,
		PanelPath: PanelPath(user.Role),
	}, nil
}

func (uc *AuthUseCase) resolveProfile(ctx context.Context, uid, email, requestedRole string) (*entity.User, error) {
	if !entity.ValidRole(requestedRole) {
		requestedRole = entity.RoleCliente
	}

	// A failed read is not a missing profile: writing the requested role
	// over a profile we could not read would demote it.
	existing, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil && !apperrors.Is(err, "NOT_FOUND") {
		return nil, apperrors.Internal("Failed to read user record", err)
	}

	finalRole := requestedRole
	fullName := ""
	if existing != nil {
		fullName = existing.FullName
		if uc.adminEmails[email] {
			finalRole = entity.RoleAdmin
		} else if existing.Role != "" {
			finalRole = existing.Role
		}
	} else if uc.adminEmails[email] {
		finalRole = entity.RoleAdmin
	}

	user := &entity.User{
		ID:       uid,
		FullName: fullName,
		Email:    email,
		Role:     finalRole,
	}
	if existing == nil {
		user.CreatedAt = time.Now()
	}

	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		return nil, apperrors.Internal("Failed to update user record", err)
	}

	if existing != nil {
		user.Phone = existing.Phone
		user.PartnerCode = existing.PartnerCode
		user.CreatedAt = existing.CreatedAt
	}
	return user, nil
}

// RequireRole resolves the token once and returns the session only when
// the stored role is in allowedRoles. nil means no access: unauthenticated,
// role not allowed, or a profile fetch failure.
func (uc *AuthUseCase) RequireRole(ctx context.Context, idToken string, allowedRoles []string) (*Session, error) {
	uid, err := uc.firebaseAuth.VerifyToken(ctx, idToken)
	if err != nil {
		return nil, nil
	}

	role := uc.GetUserRole(ctx, uid)
	for _, allowed := range allowedRoles {
		if role == allowed {
			return &Session{UID: uid, Role: role}, nil
		}
	}
	return nil, nil
}

// ResolveRole returns the stored role for uid. A missing profile or an
// empty role resolves to cliente; read failures propagate.
func (uc *AuthUseCase) ResolveRole(ctx context.Context, uid string) (string, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		if apperrors.Is(err, "NOT_FOUND") {
			return entity.RoleCliente, nil
		}
		return "", err
	}
	if user.Role == "" {
		return entity.RoleCliente, nil
	}
	return user.Role, nil
}

// GetUserRole is ResolveRole with read failures degraded to cliente.
func (uc *AuthUseCase) GetUserRole(ctx context.Context, uid string) string {
	role, err := uc.ResolveRole(ctx, uid)
	if err != nil {
		logger.Error("Failed to fetch role for %s: %v", uid, err)
		return entity.RoleCliente
	}
	return role
}

// PanelPath maps a role to its canonical dashboard path.
func PanelPath(role string) string {
	switch role {
	case entity.RoleImobiliaria:
		return "/imobiliaria"
	case entity.RoleTecnico:
		return "/tecnico"
	case entity.RoleAdmin:
		return "/admin"
	default:
		return "/dashboard"
	}
}

func mapAuthError(err error) error {
	var authErr *firebase.AuthError
	if errors.As(err, &authErr) {
		switch authErr.Code {
		case "EMAIL_EXISTS":
			return apperrors.BadRequest(authErr.Message(), err)
		case "WEAK_PASSWORD", "INVALID_EMAIL":
			return apperrors.BadRequest(authErr.Message(), err)
		case "CONFIGURATION_NOT_FOUND", "API_KEY_NOT_VALID":
			return apperrors.Internal(authErr.Message(), err)
		default:
			return apperrors.Unauthorized(authErr.Message(), err)
		}
	}
	return apperrors.Internal("Falha na autenticação", err)
}
