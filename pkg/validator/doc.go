// Package validator implements credential validation for generic
// principals: required-field presence, global uniqueness, confirmation
// matching, password strength, password verification and the unique-hash
// retry protocol.
//
// Rule sets are configuration: maps from field-name keys to typed accessor
// functions plus the message to report on failure. That keeps the
// validator generic over the principal type without reflection — a field
// that "does not exist" is simply one with no configured accessor, caught
// at construction or as a fatal ErrUnboundField.
//
// Failed checks accumulate into a Report and are returned to the caller as
// data; only configuration bugs, storage failures and contract violations
// surface as errors.
package validator
