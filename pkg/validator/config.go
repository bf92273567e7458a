package validator

import (
	"fmt"

	"github.com/pbrandao/authkit/pkg/storage"
)

// FieldRule couples a typed accessor with the message reported when the
// rule fails. Rule sets are keyed by field name; the accessor replaces
// reflection-based property lookup.
type FieldRule[P any] struct {
	Get     storage.FieldGetter[P]
	Message string
}

// FieldBinding is a read/write accessor pair for fields the unique-hash
// protocol writes to.
type FieldBinding[P any] struct {
	Get func(P) string
	Set func(P, string)
}

// Config declares which fields a CredentialValidator checks and how.
type Config[P any] struct {
	// Required maps field names to presence rules.
	Required map[string]FieldRule[P]

	// Unique maps field names to global-uniqueness rules. Field names must
	// be queryable on the backing repository.
	Unique map[string]FieldRule[P]

	// Bindings maps field names usable with GuaranteeUniqueHash.
	Bindings map[string]FieldBinding[P]

	// PasswordField, ConfirmEmailField and ConfirmPasswordField are the
	// report keys the strength and confirmation checks write under. Empty
	// values fall back to "password", "confirm_email" and
	// "confirm_password".
	PasswordField        string
	ConfirmEmailField    string
	ConfirmPasswordField string
}

func (c *Config[P]) applyDefaults() {
	if c.PasswordField == "" {
		c.PasswordField = "password"
	}
	if c.ConfirmEmailField == "" {
		c.ConfirmEmailField = "confirm_email"
	}
	if c.ConfirmPasswordField == "" {
		c.ConfirmPasswordField = "confirm_password"
	}
}

// validate rejects malformed configuration at construction time: a rule
// without an accessor can only be a programming error and must not wait
// for a request to blow up.
func (c Config[P]) validate() error {
	for field, rule := range c.Required {
		if rule.Get == nil {
			return fmt.Errorf("%w: required rule for %q has no accessor", ErrInvalidConfig, field)
		}
	}
	for field, rule := range c.Unique {
		if rule.Get == nil {
			return fmt.Errorf("%w: unique rule for %q has no accessor", ErrInvalidConfig, field)
		}
	}
	for field, binding := range c.Bindings {
		if binding.Get == nil || binding.Set == nil {
			return fmt.Errorf("%w: binding for %q must have both accessors", ErrInvalidConfig, field)
		}
	}
	return nil
}
