// Package gauntlet contains the constants shared between the gauntlet binary
// and the service library.
package gauntlet

import "time"

// Version is the current version of Gauntlet. Set at build time with ldflags.
var Version = "devel"

const (
	// CookieName is the name of the cookie that holds the pass token minted
	// after a successful verification.
	CookieName = "hangarworks.io-gauntlet-pass"

	// DefaultTTL is how long an issued challenge stays valid. A challenge
	// whose TTL has elapsed fails verification even if the answer is right.
	DefaultTTL = 5 * time.Minute

	// PassTokenExpiration is how long a pass token is honored by the signup
	// flow before the user has to solve another challenge.
	PassTokenExpiration = 1 * time.Hour

	// APIPrefix is where the challenge and verify endpoints live relative to
	// the base prefix.
	APIPrefix = "/api/captcha"
)
