package session

import (
	"strings"
	"time"

	"drivethrough/internal/pkg/errs"
)

// Turn is one line of the transcript.
type Turn struct {
	Role    Role
	Content string
	At      time.Time
}

// NewTurn validates role and trims content, which must not be empty.
func NewTurn(role Role, content string, at time.Time) (Turn, error) {
	if err := role.Validate(); err != nil {
		return Turn{}, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return Turn{}, errs.NewValueIsRequiredError("content")
	}
	return Turn{Role: role, Content: content, At: at.UTC()}, nil
}
