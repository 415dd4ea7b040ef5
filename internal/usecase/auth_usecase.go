package usecase

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"go-jobportal-client/internal/domain"
	"go-jobportal-client/pkg/apperror"
	"go-jobportal-client/pkg/auth"
	"go-jobportal-client/pkg/logger"
	"go-jobportal-client/pkg/validation"
)

type authUsecase struct {
	authRepo   domain.AuthRepository
	sessions   *Sessions
	validate   *validator.Validate
	adminEmail string
}

func NewAuthUsecase(authRepo domain.AuthRepository, sessions *Sessions, validate *validator.Validate, adminEmail string) domain.AuthUsecase {
	return &authUsecase{
		authRepo:   authRepo,
		sessions:   sessions,
		validate:   validate,
		adminEmail: adminEmail,
	}
}

func (u *authUsecase) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	creds := &domain.Credentials{Email: email, Password: password}
	if err := u.validate.StructPartial(creds, "Email", "Password"); err != nil {
		return nil, apperror.Validation(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	result, err := u.authRepo.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return u.openSession(ctx, result)
}

func (u *authUsecase) SignUp(ctx context.Context, creds *domain.Credentials) (*domain.Session, error) {
	if err := u.validate.Struct(creds); err != nil {
		return nil, apperror.Validation(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	result, err := u.authRepo.SignUp(ctx, creds)
	if err != nil {
		return nil, err
	}
	return u.openSession(ctx, result)
}

func (u *authUsecase) GoogleSignIn(ctx context.Context, idToken string) (*domain.Session, error) {
	if idToken == "" {
		return nil, apperror.Validation("Google credential is required")
	}
	result, err := u.authRepo.GoogleSignIn(ctx, idToken)
	if err != nil {
		return nil, err
	}
	return u.openSession(ctx, result)
}

// openSession resolves the role, hydrates name/phone and persists the
// session. Role resolution order: token claim, server-reported role,
// legacy admin-email comparison.
func (u *authUsecase) openSession(ctx context.Context, result *domain.AuthResult) (*domain.Session, error) {
	role, ok := auth.ClaimedRole(result.Token)
	if !ok {
		if result.Role != "" {
			role = result.Role
		} else {
			role = auth.FallbackRole(result.Email, u.adminEmail)
		}
	}

	sess := &domain.Session{
		Email: result.Email,
		Role:  role,
		Token: result.Token,
	}

	// Best effort; sign-in succeeds without the extra profile fields
	if info, err := u.authRepo.GetUser(ctx, result.Email); err == nil {
		sess.Name = info.Name
		sess.Phone = info.MobileNo
	} else {
		logger.Log.Warn("could not hydrate user info", "email", result.Email, "error", err)
	}

	if err := u.sessions.save(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (u *authUsecase) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return apperror.Validation("Email is required")
	}
	return u.authRepo.ForgotPassword(ctx, email)
}

func (u *authUsecase) VerifyOTP(ctx context.Context, email, otp string) error {
	if otp == "" {
		return apperror.Validation("OTP is required")
	}
	return u.authRepo.VerifyOTP(ctx, email, otp)
}

func (u *authUsecase) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	if len(newPassword) < 6 {
		return apperror.Validation("Password must be at least 6 characters")
	}
	return u.authRepo.ResetPassword(ctx, email, otp, newPassword)
}

func (u *authUsecase) Current() *domain.Session {
	if sess := u.sessions.Current(); sess.SignedIn() {
		return sess
	}
	return nil
}

func (u *authUsecase) SignOut() error {
	return u.sessions.clear()
}
