package i

import (
	"time"
)

// Tokenizer defines methods for issuing and verifying operator tokens.
type Tokenizer interface {
	// Issue creates a token for subject that expires after ttl.
	Issue(subject string, ttl time.Duration) (string, error)

	// Verify validates a token and returns its subject.
	Verify(token string) (string, error)
}
