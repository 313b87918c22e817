// Package puzzle defines the puzzle family capability and the registry the
// orchestrator picks families from. Each family generates one challenge: a
// prompt, optionally a set of candidate options, and the answer the server
// keeps for itself.
package puzzle

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"

	"github.com/hangarworks/gauntlet/internal"
	"github.com/hangarworks/gauntlet/lib/assets"
)

// Challenge kinds as requested by the client.
const (
	KindVisual = "visual"
	KindText   = "text"
)

var (
	// ErrTooFewAssets means a catalogue cannot supply enough distinct
	// entries for a full option set. This is a configuration error and
	// fails the issuance loudly instead of emitting a broken challenge.
	ErrTooFewAssets = errors.New("puzzle: catalogue too small to generate a challenge")

	// ErrAmbiguous means two options rendered identical content with
	// different correctness labels.
	ErrAmbiguous = errors.New("puzzle: option set contains duplicate renderings")

	// ErrNoFamilies means no family is registered for the requested kind.
	ErrNoFamilies = errors.New("puzzle: no families registered for kind")
)

// Option is one candidate answer shown to the user. Exactly one option per
// generated set is correct, and nothing about an option's payload or position
// may reveal which.
type Option struct {
	ID      string `json:"id"`
	Payload string `json:"payload,omitempty"`
	Label   string `json:"label,omitempty"`
}

// Result is one generated challenge. Answer never leaves the server: the
// orchestrator hashes it and discards it.
type Result struct {
	PromptLabel   string
	PromptPayload string
	Options       []Option
	Answer        string
}

// Family is one puzzle-generation strategy. Implementations register
// themselves in init, so adding a family is a matter of registering a new
// implementation rather than editing a switch.
type Family interface {
	// Name tags challenges produced by this family.
	Name() string

	// Kind reports whether this family produces visual or text challenges.
	Kind() string

	// Generate produces a new challenge using rng for all randomness.
	Generate(rng *rand.Rand) (*Result, error)

	// Normalize maps a user submission to the canonical form that was
	// hashed at issuance. Visual families pass option ids through
	// unchanged.
	Normalize(submission string) string
}

var (
	registry map[string]Family = map[string]Family{}
	regLock  sync.RWMutex
)

func Register(name string, impl Family) {
	regLock.Lock()
	defer regLock.Unlock()

	registry[name] = impl
}

func Get(name string) (Family, bool) {
	regLock.RLock()
	defer regLock.RUnlock()
	result, ok := registry[name]
	return result, ok
}

func Families() []string {
	regLock.RLock()
	defer regLock.RUnlock()
	var result []string
	for name := range registry {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Pick selects a registered family of the given kind at random. A family's
// weight comes from weights; families missing from the map count as weight 1
// and families with weight zero or below are excluded. The reference
// deployment weights the identify family more heavily than the rest.
func Pick(rng *rand.Rand, kind string, weights map[string]int) (Family, error) {
	var pool []Family

	for _, name := range Families() {
		fam, _ := Get(name)
		if fam.Kind() != kind {
			continue
		}

		weight := 1
		if w, ok := weights[name]; ok {
			weight = w
		}

		for range weight {
			pool = append(pool, fam)
		}
	}

	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoFamilies, kind)
	}

	return pool[rng.IntN(len(pool))], nil
}

// Shuffled returns a new uniformly shuffled copy of xs, leaving xs untouched.
func Shuffled[T any](rng *rand.Rand, xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// CheckDistinct returns ErrAmbiguous when two options in the set render the
// same content, because then the puzzle has no single defensible answer.
// Content is the option's user-visible parts, not its id.
func CheckDistinct(opts []Option) error {
	seen := map[string]string{}

	for _, opt := range opts {
		sum := internal.FastHash(opt.Label + "\x00" + opt.Payload)
		if other, ok := seen[sum]; ok {
			return fmt.Errorf("%w: options %q and %q", ErrAmbiguous, other, opt.ID)
		}
		seen[sum] = opt.ID
	}

	return nil
}

// Shared rendering styles. The prompt is rendered lighter than the options
// so the widget can present "prompt" and "candidates" consistently across
// families without the styling leaking which option is correct.
var (
	PromptStyle = assets.Transform{Fill: "#9ca3af", Size: 160}
	OptionStyle = assets.Transform{Fill: "#4b5563", Size: 96}
)
