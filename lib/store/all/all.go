// Package all imports every storage backend so that the factory registry is
// fully populated with one underscore import.
package all

import (
	_ "github.com/hangarworks/gauntlet/lib/store/bbolt"
	_ "github.com/hangarworks/gauntlet/lib/store/memory"
	_ "github.com/hangarworks/gauntlet/lib/store/sqlite"
	_ "github.com/hangarworks/gauntlet/lib/store/valkey"
)
