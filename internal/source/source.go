// Package source defines the contract for external notification
// integrations: anything that can deliver {title, message, type,
// actionData} records into the notification center.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/dashy/dashy/internal/notify"
)

// AuthError indicates that authentication has failed or expired for a
// source. It is returned by source clients when a 401 response or a
// login failure is received.
type AuthError struct {
	SourceType SourceType
	Message    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth error (%s): %s", e.SourceType, e.Message)
}

// IsAuthError reports whether err (or any error in its chain) is an
// AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// SourceType identifies the kind of notification source integration.
type SourceType string

const (
	SourceTypeFeed  SourceType = "feed"
	SourceTypeEmail SourceType = "email"
)

// Source defines the contract that every notification integration
// must implement.
type Source interface {
	// Type returns the source type identifier.
	Type() SourceType

	// Name returns the user-defined label for this source instance.
	Name() string

	// Fetch retrieves notifications produced since the previous call.
	// Implementations own their own high-water mark so repeated calls
	// never redeliver the same record.
	Fetch(ctx context.Context) ([]notify.Incoming, error)
}
