package ctxutil

import "context"

// userIDKeyType is private so the key cannot collide with other packages.
type userIDKeyType struct{}

var userIDKey = userIDKeyType{}

// WithUserID injects the authenticated user id into the context.
// The auth middleware calls this after JWT validation.
func WithUserID(ctx context.Context, userID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID extracts the user id from the context.
func GetUserID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	v := ctx.Value(userIDKey)
	id, ok := v.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
