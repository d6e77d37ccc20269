// Package utils provides general-purpose helpers shared by the client and
// the reference object API: payload checksums, request signing, JWT helpers,
// identifiers, context keys and small HTTP utilities.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// AccountIDCtxKey is the context key of the authenticated account id.
var AccountIDCtxKey = contextKey("accountID")

// GetAccountIDFromContext returns the account id stored under
// [AccountIDCtxKey].
func GetAccountIDFromContext(ctx context.Context) (string, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(string)
	return accountID, ok && accountID != ""
}

// WithAccountID returns a copy of ctx carrying accountID.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, AccountIDCtxKey, accountID)
}
