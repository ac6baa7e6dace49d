package utils

import (
	"context"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/contextkeys"
	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"
)

// Identity is the caller resolved by the auth middleware: either the subject
// of a verified bearer token or, in development bypass mode, the fixed
// fallback principal.
type Identity struct {
	UserID uint64
	Email  string
	Role   string
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, id.UserID)
	ctx = context.WithValue(ctx, contextkeys.UserEmailKey, id.Email)
	return context.WithValue(ctx, contextkeys.UserRoleKey, id.Role)
}

func IdentityFromContext(ctx context.Context) (Identity, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return Identity{}, apperrors.ErrUserIDNotFoundInContext
	}
	email, _ := ctx.Value(contextkeys.UserEmailKey).(string)
	role, _ := ctx.Value(contextkeys.UserRoleKey).(string)
	return Identity{UserID: userID, Email: email, Role: role}, nil
}
