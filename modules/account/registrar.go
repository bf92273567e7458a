package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pbrandao/authkit/pkg/crypt"
	"github.com/pbrandao/authkit/pkg/logger"
	"github.com/pbrandao/authkit/pkg/sanitizer"
	"github.com/pbrandao/authkit/pkg/storage"
	"github.com/pbrandao/authkit/pkg/token"
	"github.com/pbrandao/authkit/pkg/user"
	"github.com/pbrandao/authkit/pkg/validator"
)

// RegisterInput is the raw form payload of a registration request. Values
// arrive untrusted and unnormalized.
type RegisterInput struct {
	Name            string `json:"name"`
	Login           string `json:"login"`
	Email           string `json:"email"`
	ConfirmEmail    string `json:"confirm_email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	CellPhone       string `json:"cell_phone"`
	Workplace       string `json:"workplace"`
}

// Registrar runs the account registration pipeline: normalization,
// validation, password hashing, user creation and session token issuance.
type Registrar struct {
	users  *user.Service[*user.User]
	tokens *token.Service
	checks *validator.CredentialValidator[*user.User]
	log    *slog.Logger
}

// Option configures a Registrar.
type Option func(*Registrar)

// WithLogger sets a custom logger for the registrar.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registrar) {
		if log != nil {
			r.log = log
		}
	}
}

// ValidationConfig is the rule set registration validates users against:
// identity fields are required, the externally visible identifiers are
// globally unique, and the two hash-bearing fields are writable by the
// unique-hash protocol.
func ValidationConfig() validator.Config[*user.User] {
	return validator.Config[*user.User]{
		Required: map[string]validator.FieldRule[*user.User]{
			user.FieldName:      {Get: func(u *user.User) string { return u.Name }, Message: validator.MsgNameRequired},
			user.FieldLogin:     {Get: func(u *user.User) string { return u.Login }, Message: validator.MsgLoginRequired},
			user.FieldEmail:     {Get: func(u *user.User) string { return u.Email }, Message: validator.MsgEmailRequired},
			user.FieldPassword:  {Get: func(u *user.User) string { return u.Password }, Message: validator.MsgPasswordRequired},
			user.FieldCellPhone: {Get: func(u *user.User) string { return u.CellPhone }, Message: validator.MsgPhoneRequired},
			user.FieldWorkplace: {Get: func(u *user.User) string { return u.Workplace }, Message: validator.MsgWorkplaceRequired},
		},
		Unique: map[string]validator.FieldRule[*user.User]{
			user.FieldLogin:     {Get: func(u *user.User) string { return u.Login }, Message: validator.MsgDuplicatedLogin},
			user.FieldEmail:     {Get: func(u *user.User) string { return u.Email }, Message: validator.MsgDuplicatedEmail},
			user.FieldCellPhone: {Get: func(u *user.User) string { return u.CellPhone }, Message: validator.MsgDuplicatedPhone},
		},
		Bindings: map[string]validator.FieldBinding[*user.User]{
			user.FieldPassword: {
				Get: func(u *user.User) string { return u.Password },
				Set: func(u *user.User, v string) { u.Password = v },
			},
			user.FieldAuthToken: {
				Get: func(u *user.User) string { return u.AuthToken },
				Set: func(u *user.User, v string) { u.AuthToken = v },
			},
		},
		PasswordField:        user.FieldPassword,
		ConfirmEmailField:    user.FieldConfirmEmail,
		ConfirmPasswordField: user.FieldConfirmPassword,
	}
}

// NewRegistrar wires the registration pipeline over the given repositories.
func NewRegistrar(
	userRepo storage.Repository[*user.User],
	tokenRepo storage.Repository[*token.SessionToken],
	hasher *crypt.Hasher,
	opts ...Option,
) (*Registrar, error) {
	checks, err := validator.New(hasher, userRepo, ValidationConfig())
	if err != nil {
		return nil, fmt.Errorf("build registration validator: %w", err)
	}

	r := &Registrar{
		users:  user.NewService(userRepo),
		tokens: token.NewService(tokenRepo),
		checks: checks,
		log:    logger.NewDiscard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Register runs the full registration pipeline. Validation failures come
// back as a non-empty Report with a nil user and a nil error; only
// infrastructure faults return an error. A registration that fails after
// partial persistence is rolled back: no half-registered accounts remain.
func (r *Registrar) Register(ctx context.Context, in RegisterInput) (*user.User, validator.Report, error) {
	report := validator.NewReport()

	u := user.New()
	u.Name = sanitizer.TrimField(in.Name)
	u.Login = sanitizer.NormalizeLogin(in.Login)
	u.Email = sanitizer.NormalizeEmail(in.Email)
	u.ConfirmEmail = sanitizer.NormalizeEmail(in.ConfirmEmail)
	u.Password = in.Password
	u.ConfirmPassword = in.ConfirmPassword
	u.CellPhone = sanitizer.TrimField(in.CellPhone)
	u.Workplace = sanitizer.TrimField(in.Workplace)

	// Every check runs even after an earlier one fails so the report
	// carries the complete picture in a single round trip.
	r.checks.CheckRequired(u, report)
	if _, err := r.checks.CheckUnique(ctx, u, report); err != nil {
		return nil, report, fmt.Errorf("uniqueness checks: %w", err)
	}
	r.checks.CheckEmailsMatch(u.Email, u.ConfirmEmail, report)
	if r.checks.CheckPasswordStrength(in.Password, report) {
		r.checks.CheckPasswordsMatch(in.Password, in.ConfirmPassword, report)
	}

	if !report.IsEmpty() {
		return nil, report, nil
	}

	ok, err := r.checks.GuaranteeUniqueHash(ctx, u, user.FieldPassword, in.Password, report)
	if err != nil {
		return nil, report, fmt.Errorf("hash password: %w", err)
	}
	if !ok {
		return nil, report, nil
	}

	if err := r.users.Create(ctx, u); err != nil {
		return nil, report, err
	}

	tok, err := r.tokens.IssueForUser(ctx, u.ID)
	if err != nil {
		r.rollback(ctx, u, nil)
		return nil, report, fmt.Errorf("issue session token: %w", err)
	}

	ok, err = r.checks.GuaranteeUniqueHash(ctx, u, user.FieldAuthToken, tok.Value, report)
	if err != nil {
		r.rollback(ctx, u, tok)
		return nil, report, fmt.Errorf("hash auth token: %w", err)
	}
	if !ok {
		r.rollback(ctx, u, tok)
		return nil, report, nil
	}

	if err := r.users.Update(ctx, u); err != nil {
		r.rollback(ctx, u, tok)
		return nil, report, err
	}

	r.log.InfoContext(ctx, "account registered",
		logger.UserID(u.ID), logger.Login(u.Login), logger.Component("account"))
	return u, report, nil
}

// rollback undoes partial persistence after a mid-pipeline failure. Errors
// here are logged, not returned: the original failure is the one the
// caller needs to see.
func (r *Registrar) rollback(ctx context.Context, u *user.User, tok *token.SessionToken) {
	if tok != nil {
		if err := r.tokens.Delete(ctx, tok.ID); err != nil {
			r.log.ErrorContext(ctx, "rollback: failed to delete session token",
				logger.UserID(u.ID), logger.Error(err), logger.Component("account"))
		}
	}
	if _, err := r.users.Delete(ctx, u.ID); err != nil {
		r.log.ErrorContext(ctx, "rollback: failed to delete user",
			logger.UserID(u.ID), logger.Error(err), logger.Component("account"))
	}
}
