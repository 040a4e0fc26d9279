package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/project-planner/internal/domain/errors"
	"github.com/wekeepgrowing/project-planner/internal/domain/repository"
	"github.com/wekeepgrowing/project-planner/internal/domain/service"
)

// SignupInput 비밀번호 가입 입력
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// AuthUsecase 가입, 로그인, 베어러 토큰 인증
type AuthUsecase struct {
	users    repository.UserRepository
	hasher   service.PasswordHasher
	tokens   service.TokenService
	identity service.IdentityVerifier
	notifier *Notifier
	logger   *zap.Logger
}

func NewAuthUsecase(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	identity service.IdentityVerifier,
	notifier *Notifier,
	logger *zap.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		identity: identity,
		notifier: notifier,
		logger:   logger,
	}
}

// SignupNormal 이메일 중복이면 ErrEmailInUse
func (uc *AuthUsecase) SignupNormal(ctx context.Context, in SignupInput) (*entity.AuthToken, error) {
	email := entity.NormalizeEmail(in.Email)

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if existing != nil {
		return nil, domainerrors.ErrEmailInUse
	}

	// bcrypt 한도는 바이트 기준 (validator의 max는 글자 수)
	if len(in.Password) > maxPasswordBytes {
		return nil, domainerrors.ErrPasswordTooLong
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}

	user, err := entity.NewUser(uuid.NewString(), in.Name, email, hash)
	if err != nil {
		return nil, domainerrors.Invalid(err.Error(), err)
	}

	if err := uc.create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("User signed up",
		zap.String("user_id", user.ID),
		zap.String("auth_type", string(user.AuthType)))
	uc.notifier.Welcome(ctx, user)
	uc.notifier.Emit(ctx, entity.NewEvent(entity.EventUserSignedUp, user.ID, "", ""))

	return uc.sign(user)
}

// SignupGoogle 이미 가입된 이메일이면 그 사용자로 토큰을 발급한다.
// Google이 이메일 소유를 확인하지 않은 토큰은 가입과 계정 연결 모두 거부한다.
func (uc *AuthUsecase) SignupGoogle(ctx context.Context, idToken string) (*entity.AuthToken, error) {
	claims, err := uc.LoginGoogle(ctx, idToken)
	if err != nil {
		return nil, err
	}
	if !claims.EmailVerified {
		uc.logger.Warn("Google token with unverified email rejected", zap.String("sub", claims.Subject))
		return nil, domainerrors.ErrInvalidGoogleToken
	}

	existing, err := uc.users.FindByEmail(ctx, entity.NormalizeEmail(claims.Email))
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if existing != nil {
		return uc.sign(existing)
	}

	user, err := entity.NewGoogleUser(uuid.NewString(), *claims)
	if err != nil {
		return nil, domainerrors.ErrInvalidGoogleToken.WithCause(err)
	}
	if err := uc.create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("User signed up",
		zap.String("user_id", user.ID),
		zap.String("auth_type", string(user.AuthType)))
	uc.notifier.Welcome(ctx, user)
	uc.notifier.Emit(ctx, entity.NewEvent(entity.EventUserSignedUp, user.ID, "", ""))

	return uc.sign(user)
}

// LoginNormal 없는 이메일, 틀린 비밀번호, Google 계정 모두 같은 에러로 응답한다.
func (uc *AuthUsecase) LoginNormal(ctx context.Context, email, password string) (*entity.AuthToken, error) {
	user, err := uc.users.FindByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if user == nil || !uc.hasher.Verify(password, user.HashedPassword) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	return uc.sign(user)
}

// LoginGoogle Google ID 토큰을 검증하고 클레임을 그대로 돌려준다.
func (uc *AuthUsecase) LoginGoogle(ctx context.Context, idToken string) (*entity.IdentityClaims, error) {
	if uc.identity == nil {
		return nil, domainerrors.ErrInvalidGoogleToken
	}
	claims, err := uc.identity.Verify(ctx, idToken)
	if err != nil {
		uc.logger.Warn("Google token rejected", zap.Error(err))
		if errors.Is(err, domainerrors.ErrInvalidGoogleToken) {
			return nil, err
		}
		return nil, domainerrors.ErrInvalidGoogleToken.WithCause(err)
	}
	if claims == nil || claims.Email == "" {
		return nil, domainerrors.ErrInvalidGoogleToken
	}
	return claims, nil
}

// Authenticate 베어러 토큰을 사용자로 해석한다. 실패 사유와 관계없이 ErrInvalidToken.
func (uc *AuthUsecase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domainerrors.ErrInvalidToken
	}
	claims, err := uc.tokens.Decode(token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WithCause(err)
	}

	var user *entity.User
	if claims.UserID != "" {
		user, err = uc.users.FindByID(ctx, claims.UserID)
	} else {
		user, err = uc.users.FindByEmail(ctx, entity.NormalizeEmail(claims.Email))
	}
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if user == nil {
		return nil, domainerrors.ErrInvalidToken
	}
	return user, nil
}

func (uc *AuthUsecase) create(ctx context.Context, user *entity.User) error {
	if err := uc.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return domainerrors.ErrEmailInUse.WithCause(err)
		}
		return domainerrors.Internal(err)
	}
	return nil
}

func (uc *AuthUsecase) sign(user *entity.User) (*entity.AuthToken, error) {
	token, err := uc.tokens.Sign(user.ID, user.Email)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	return token, nil
}
