// Package silhouette implements the silhouette-matching puzzle family: the
// user is shown a mech silhouette and has to find the identical silhouette
// among distractors.
package silhouette

import (
	"fmt"
	"math/rand/v2"

	"github.com/hangarworks/gauntlet/lib/assets"
	"github.com/hangarworks/gauntlet/lib/puzzle"
)

func init() {
	puzzle.Register("silhouette", &Impl{})
}

type Impl struct{}

func (*Impl) Name() string { return "silhouette" }

func (*Impl) Kind() string { return puzzle.KindVisual }

func (*Impl) Normalize(submission string) string { return submission }

func (*Impl) Generate(rng *rand.Rand) (*puzzle.Result, error) {
	cat := puzzle.Shuffled(rng, assets.Silhouettes())

	// 3 to 5 distractors, so 4 to 6 options total.
	distractors := 3 + rng.IntN(3)
	if len(cat) < distractors+1 {
		return nil, fmt.Errorf("%w: need %d silhouettes, have %d", puzzle.ErrTooFewAssets, distractors+1, len(cat))
	}

	target := cat[0]

	// Every option gets identical styling so silhouette shape is the only
	// distinguishing feature.
	options := make([]puzzle.Option, 0, distractors+1)
	for _, a := range cat[:distractors+1] {
		options = append(options, puzzle.Option{
			ID:      a.ID,
			Payload: assets.Render(a, puzzle.OptionStyle),
		})
	}

	options = puzzle.Shuffled(rng, options)

	if err := puzzle.CheckDistinct(options); err != nil {
		return nil, err
	}

	return &puzzle.Result{
		PromptLabel:   "Find the matching silhouette",
		PromptPayload: assets.Render(target, puzzle.PromptStyle),
		Options:       options,
		Answer:        target.ID,
	}, nil
}
