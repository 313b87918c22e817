// Package puzzletest contains the conformance checks every visual puzzle
// family has to pass.
package puzzletest

import (
	"math/rand/v2"
	"testing"

	"github.com/hangarworks/gauntlet/lib/puzzle"
)

// Common generates many challenges from fam and checks the properties that
// hold for every visual family: exactly one correct option, option count
// within bounds, no ambiguous duplicates, and no positional bias toward the
// correct option.
func Common(t *testing.T, fam puzzle.Family, minOptions, maxOptions int) {
	t.Helper()

	rng := rand.New(rand.NewPCG(0xcafe, 0xd00d))

	const trials = 400
	positionCounts := map[int]int{}

	for range trials {
		res, err := fam.Generate(rng)
		if err != nil {
			t.Fatal(err)
		}

		if res.PromptPayload == "" {
			t.Fatal("prompt payload is empty")
		}

		if len(res.Options) < minOptions || len(res.Options) > maxOptions {
			t.Fatalf("wanted between %d and %d options, got %d", minOptions, maxOptions, len(res.Options))
		}

		correct := 0
		for i, opt := range res.Options {
			if opt.ID == res.Answer {
				correct++
				positionCounts[i]++
			}
		}

		if correct != 1 {
			t.Fatalf("wanted exactly one correct option, got %d (answer %q)", correct, res.Answer)
		}

		if err := puzzle.CheckDistinct(res.Options); err != nil {
			t.Fatal(err)
		}
	}

	// The correct option has to show up at every possible index, and no
	// index may dominate. This catches "correct answer first" bugs where
	// only the distractor pool gets shuffled.
	for i := range minOptions {
		n := positionCounts[i]
		if n == 0 {
			t.Errorf("correct option never appeared at index %d over %d trials", i, trials)
		}
		if n > trials*6/10 {
			t.Errorf("correct option appeared at index %d %d times out of %d, option order is biased", i, n, trials)
		}
	}
}
