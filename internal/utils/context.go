package utils

import "context"

type contextKey string

const (
	userIDKey      contextKey = "user_id"
	phoneNumberKey contextKey = "phone_number"
)

// WithIdentity returns a context carrying the verified caller identity.
func WithIdentity(ctx context.Context, userID, phoneNumber string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, phoneNumberKey, phoneNumber)
}

// GetUserIDFromContext extracts the authenticated user id from the context.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// GetPhoneNumberFromContext extracts the verified phone number from the context.
func GetPhoneNumberFromContext(ctx context.Context) (string, bool) {
	phone, ok := ctx.Value(phoneNumberKey).(string)
	return phone, ok && phone != ""
}
