package validator

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/pbrandao/authkit/pkg/crypt"
	"github.com/pbrandao/authkit/pkg/logger"
	"github.com/pbrandao/authkit/pkg/storage"
)

// hashAttempts bounds the unique-hash retry protocol. Salted hashing makes
// each retry produce a fresh digest, so three attempts are enough to clear
// any realistic collision.
const hashAttempts = 3

// Minimum password length and required character classes.
const minPasswordLength = 8

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
	symbolRegex    = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// CredentialValidator validates candidate principals against configured
// field rules and runs the unique-hash protocol. All check methods return
// true when the check passed; failures are accumulated into the caller's
// Report rather than returned as errors.
type CredentialValidator[P any] struct {
	hasher *crypt.Hasher
	unique *storage.UniquenessChecker[P]
	cfg    Config[P]
	log    *slog.Logger
}

// Option configures a CredentialValidator.
type Option[P any] func(*CredentialValidator[P])

// WithLogger sets a custom logger for the validator.
func WithLogger[P any](log *slog.Logger) Option[P] {
	return func(v *CredentialValidator[P]) {
		if log != nil {
			v.log = log
		}
	}
}

// New creates a validator over the given hasher and repository.
// Malformed rule configuration is rejected immediately.
func New[P any](hasher *crypt.Hasher, repo storage.Repository[P], cfg Config[P], opts ...Option[P]) (*CredentialValidator[P], error) {
	if hasher == nil {
		return nil, fmt.Errorf("%w: nil hasher", ErrInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	v := &CredentialValidator[P]{
		hasher: hasher,
		unique: storage.NewUniquenessChecker[P](repo),
		cfg:    cfg,
		log:    logger.NewDiscard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// CheckRequired verifies that every configured required field carries a
// non-blank value. Returns true when all fields are present.
func (v *CredentialValidator[P]) CheckRequired(p P, report Report) bool {
	ok := true

	for _, field := range sortedKeys(v.cfg.Required) {
		rule := v.cfg.Required[field]
		if strings.TrimSpace(rule.Get(p)) == "" {
			report.Add(field, rule.Message)
			ok = false
		}
	}

	return ok
}

// CheckUnique verifies that every configured unique field's current value
// is free in the store. Empty values are skipped — presence is
// CheckRequired's concern. Storage failures and unknown fields are fatal.
func (v *CredentialValidator[P]) CheckUnique(ctx context.Context, p P, report Report) (bool, error) {
	ok := true

	for _, field := range sortedKeys(v.cfg.Unique) {
		rule := v.cfg.Unique[field]
		value := rule.Get(p)
		if value == "" {
			continue
		}

		unique, err := v.unique.IsUnique(ctx, field, value)
		if err != nil {
			return false, fmt.Errorf("uniqueness check for %q: %w", field, err)
		}
		if !unique {
			report.Add(field, rule.Message)
			ok = false
		}
	}

	return ok, nil
}

// CheckEmailsMatch verifies the e-mail confirmation. Returns true on match.
func (v *CredentialValidator[P]) CheckEmailsMatch(email, confirmEmail string, report Report) bool {
	if email != confirmEmail {
		report.Add(v.cfg.ConfirmEmailField, MsgEmailsDoNotMatch)
		return false
	}
	return true
}

// CheckPasswordsMatch verifies the password confirmation. Returns true on match.
func (v *CredentialValidator[P]) CheckPasswordsMatch(password, confirmPassword string, report Report) bool {
	if password != confirmPassword {
		report.Add(v.cfg.ConfirmPasswordField, MsgPasswordsDoNotMatch)
		return false
	}
	return true
}

// CheckPasswordStrength verifies the password is at least eight characters
// and mixes lower-case, upper-case, digit and symbol classes.
func (v *CredentialValidator[P]) CheckPasswordStrength(password string, report Report) bool {
	strong := len(password) >= minPasswordLength &&
		lowercaseRegex.MatchString(password) &&
		uppercaseRegex.MatchString(password) &&
		digitRegex.MatchString(password) &&
		symbolRegex.MatchString(password)

	if !strong {
		report.Add(v.cfg.PasswordField, MsgPasswordNotStrong)
		return false
	}
	return true
}

// VerifyPassword reports whether the plain password matches the stored
// hash. It deliberately adds nothing to any report: how an authentication
// failure is surfaced is the caller's decision, and keeping this check
// silent avoids leaking which credential was wrong.
func (v *CredentialValidator[P]) VerifyPassword(password, hash string) bool {
	return v.hasher.Verify(password, hash)
}

// GuaranteeUniqueHash writes a salted hash of candidate into the bound
// field, retrying with a fresh hash while the value collides with a stored
// one. An empty candidate or an unbound field is a caller-contract bug and
// returns an error; exhausting the attempt budget is recorded in the
// report as a permanent failure and returns false.
func (v *CredentialValidator[P]) GuaranteeUniqueHash(ctx context.Context, p P, field, candidate string, report Report) (bool, error) {
	if candidate == "" {
		return false, fmt.Errorf("%w: field %q", ErrEmptyCandidate, field)
	}

	binding, bound := v.cfg.Bindings[field]
	if !bound {
		return false, fmt.Errorf("%w: %q", ErrUnboundField, field)
	}

	for attempt := 1; attempt <= hashAttempts; attempt++ {
		hash, err := v.hasher.Hash(candidate)
		if err != nil {
			return false, fmt.Errorf("hash candidate for %q: %w", field, err)
		}

		binding.Set(p, hash)

		unique, err := v.unique.IsUnique(ctx, field, binding.Get(p))
		if err != nil {
			return false, fmt.Errorf("uniqueness check for %q: %w", field, err)
		}
		if unique {
			return true, nil
		}

		v.log.WarnContext(ctx, "hash collision, retrying",
			logger.Field(field),
			slog.Int("attempt", attempt),
			logger.Component("validator"),
		)
	}

	report.Add(field, MsgHashGenerationFailed)
	return false, nil
}

// sortedKeys yields deterministic iteration order so reports and
// uniqueness queries are stable across runs.
func sortedKeys[P any](rules map[string]FieldRule[P]) []string {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
