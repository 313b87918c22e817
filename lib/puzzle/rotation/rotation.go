// Package rotation implements the alignment puzzle family: the user is shown
// the head and torso of a mech upright and has to pick the option where the
// same part sits at the same upright rotation. The correctness key is the
// rotation angle, not the asset identity.
package rotation

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/hangarworks/gauntlet/lib/assets"
	"github.com/hangarworks/gauntlet/lib/puzzle"
)

func init() {
	puzzle.Register("rotation", &Impl{})
}

// partPaths is how many leading paths form the prompt part. Catalogue path
// order guarantees the first two are head and torso.
const partPaths = 2

// Distractor angles are large offsets so a human can tell them apart at a
// glance. Zero is deliberately absent: the correct option is always the only
// upright one.
var distractorAngles = []float64{-135, -90, -45, 45, 90, 135, 180}

type Impl struct{}

func (*Impl) Name() string { return "rotation" }

func (*Impl) Kind() string { return puzzle.KindVisual }

func (*Impl) Normalize(submission string) string { return submission }

func (*Impl) Generate(rng *rand.Rand) (*puzzle.Result, error) {
	cat := assets.Silhouettes()
	if len(cat) == 0 {
		return nil, fmt.Errorf("%w: silhouette catalogue is empty", puzzle.ErrTooFewAssets)
	}

	target := cat[rng.IntN(len(cat))]
	angles := puzzle.Shuffled(rng, distractorAngles)[:3]

	options := make([]puzzle.Option, 0, len(angles)+1)
	options = append(options, puzzle.Option{
		ID:      optionID(0),
		Payload: assets.RenderPaths(target, partPaths, puzzle.OptionStyle),
	})

	for _, angle := range angles {
		tr := puzzle.OptionStyle
		tr.Rotate = angle
		options = append(options, puzzle.Option{
			ID:      optionID(angle),
			Payload: assets.RenderPaths(target, partPaths, tr),
		})
	}

	options = puzzle.Shuffled(rng, options)

	if err := puzzle.CheckDistinct(options); err != nil {
		return nil, err
	}

	return &puzzle.Result{
		PromptLabel:   "Pick the upright armor section",
		PromptPayload: assets.RenderPaths(target, partPaths, puzzle.PromptStyle),
		Options:       options,
		Answer:        optionID(0),
	}, nil
}

// optionID encodes the rotation angle normalized to [0, 360) so that ids
// round-trip cleanly, e.g. -45 becomes rot-315.
func optionID(angle float64) string {
	deg := int(angle)
	deg = ((deg % 360) + 360) % 360
	return "rot-" + strconv.Itoa(deg)
}
