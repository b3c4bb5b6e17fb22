package payload

type MailBadgePayload struct {
	// Email overrides the address on file. Only admins may set a different one.
	Email string `json:"email" validate:"omitempty,email"`
}
