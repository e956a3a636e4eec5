package middleware

import "context"

// userIDKey and usernameKey carry the resolved identity through the request
// context. They are set exactly once, by the auth middleware.
const (
	userIDKey   = contextKey("userID")
	usernameKey = contextKey("username")
)

// WithIdentity returns a context carrying the authenticated identity.
func WithIdentity(ctx context.Context, userID, username string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, usernameKey, username)
}

// GetUserIDFromCtx retrieves the authenticated user ID from the context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// GetUsernameFromCtx retrieves the authenticated username from the context.
func GetUsernameFromCtx(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok
}
