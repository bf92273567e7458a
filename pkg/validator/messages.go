package validator

// Standardized user-facing validation messages. Keeping them in one place
// makes error reporting consistent across flows and lets a front end key
// translations off stable strings.
const (
	MsgNameRequired      = "The name is required."
	MsgLoginRequired     = "The login is required."
	MsgPasswordRequired  = "The password is required."
	MsgEmailRequired     = "The e-mail is required."
	MsgPhoneRequired     = "The cell phone is required."
	MsgWorkplaceRequired = "The workplace is required."

	MsgDuplicatedLogin = "The login is already in use."
	MsgDuplicatedEmail = "The e-mail is already in use."
	MsgDuplicatedPhone = "The cell phone is already in use."

	MsgEmailsDoNotMatch    = "The e-mails do not match."
	MsgPasswordsDoNotMatch = "The passwords do not match."
	MsgPasswordNotStrong   = "The password does not meet the security requirements."

	MsgHashGenerationFailed = "Could not generate a unique hash for this field."
)
