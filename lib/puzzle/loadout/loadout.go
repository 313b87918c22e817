// Package loadout implements the loadout-matching puzzle family: the user is
// shown a unit archetype and has to pick the weapon loadout that belongs to
// it. The archetype catalogue carries the correctness mapping.
package loadout

import (
	"fmt"
	"math/rand/v2"

	"github.com/hangarworks/gauntlet/lib/assets"
	"github.com/hangarworks/gauntlet/lib/puzzle"
)

func init() {
	puzzle.Register("loadout", &Impl{})
}

const optionCount = 4

type Impl struct{}

func (*Impl) Name() string { return "loadout" }

func (*Impl) Kind() string { return puzzle.KindVisual }

func (*Impl) Normalize(submission string) string { return submission }

func (*Impl) Generate(rng *rand.Rand) (*puzzle.Result, error) {
	arcs := puzzle.Shuffled(rng, assets.Archetypes())
	if len(arcs) < optionCount {
		return nil, fmt.Errorf("%w: need %d archetypes, have %d", puzzle.ErrTooFewAssets, optionCount, len(arcs))
	}

	target := arcs[0]

	// Distractors are loadouts belonging to other archetypes. Skip any that
	// share the target's loadout so no distractor is accidentally correct.
	loadoutIDs := []string{target.LoadoutID}
	for _, a := range arcs[1:] {
		if len(loadoutIDs) == optionCount {
			break
		}
		if a.LoadoutID == target.LoadoutID {
			continue
		}
		loadoutIDs = append(loadoutIDs, a.LoadoutID)
	}

	if len(loadoutIDs) < optionCount {
		return nil, fmt.Errorf("%w: only %d distinct loadouts available", puzzle.ErrTooFewAssets, len(loadoutIDs))
	}

	options := make([]puzzle.Option, 0, optionCount)
	for _, id := range loadoutIDs {
		l, ok := assets.LoadoutByID(id)
		if !ok {
			return nil, fmt.Errorf("%w: archetype links to unknown loadout %q", puzzle.ErrTooFewAssets, id)
		}
		options = append(options, puzzle.Option{
			ID:      l.ID,
			Payload: assets.Render(l, puzzle.OptionStyle),
		})
	}

	options = puzzle.Shuffled(rng, options)

	if err := puzzle.CheckDistinct(options); err != nil {
		return nil, err
	}

	return &puzzle.Result{
		PromptLabel:   "Pick the loadout for this chassis",
		PromptPayload: assets.Render(target.VectorAsset, puzzle.PromptStyle),
		Options:       options,
		Answer:        target.LoadoutID,
	}, nil
}
