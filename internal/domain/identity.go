package domain

import "context"

// SystemIdentity is recorded on audit stamps when no caller identity is
// present in the context (background jobs, tests).
const SystemIdentity = "system"

type identityKey struct{}

// ContextWithIdentity stores the acting user identifier in the context.
// Write operations read it back for the createdby/updatedby stamps.
func ContextWithIdentity(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, identityKey{}, userID)
}

// IdentityFromContext extracts the acting user identifier, falling back to
// SystemIdentity.
func IdentityFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(identityKey{}).(string); ok && id != "" {
		return id
	}
	return SystemIdentity
}
