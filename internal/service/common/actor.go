//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"fmt"
	"os"
	"os/user"

	"github.com/oshokin/clockeroo/internal/domain/session"
)

// DetectActor gathers host and user information recorded with a stopwatch.
func DetectActor() (*session.Owner, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("hostname: %w", err)
	}

	currentUser, err := user.Current()
	if err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}

	return &session.Owner{
		Hostname: hostname,
		Username: currentUser.Username,
	}, nil
}
