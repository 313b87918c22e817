// Package identify implements the image-identification puzzle family: the
// user is shown a labeled reference image and has to pick its name. Decoy
// names come from a pool disjoint from the real label set, so no decoy is
// ever accidentally correct.
package identify

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/hangarworks/gauntlet/lib/puzzle"
)

func init() {
	puzzle.Register("identify", &Impl{})
}

const optionCount = 4

type reference struct {
	Image string
	Label string
}

// references are served by the static asset host the widget already talks to.
// Image file names are opaque on purpose: the correct label must not be
// recoverable from the prompt payload by string matching.
var references = []reference{
	{Image: "/static/captcha/9d3c7f2a.webp", Label: "Atlas"},
	{Image: "/static/captcha/4b81e6d0.webp", Label: "Raven"},
	{Image: "/static/captcha/a27c50f9.webp", Label: "Marauder"},
	{Image: "/static/captcha/e9104bc8.webp", Label: "Locust"},
	{Image: "/static/captcha/61f8ad35.webp", Label: "UrbanMech"},
	{Image: "/static/captcha/c05e92b7.webp", Label: "Catapult"},
}

// decoys must stay disjoint from the reference labels above.
var decoys = []string{
	"Banshee",
	"Cyclops",
	"Dervish",
	"Firestarter",
	"Grasshopper",
	"Javelin",
	"Kintaro",
	"Longbow",
	"Phoenix Hawk",
	"Quickdraw",
	"Stalker",
	"Zeus",
}

type Impl struct{}

func (*Impl) Name() string { return "identify" }

func (*Impl) Kind() string { return puzzle.KindVisual }

func (*Impl) Normalize(submission string) string { return submission }

func (*Impl) Generate(rng *rand.Rand) (*puzzle.Result, error) {
	if len(references) == 0 || len(decoys) < optionCount-1 {
		return nil, fmt.Errorf("%w: identify pools are too small", puzzle.ErrTooFewAssets)
	}

	target := references[rng.IntN(len(references))]

	options := make([]puzzle.Option, 0, optionCount)
	options = append(options, puzzle.Option{
		ID:    slug(target.Label),
		Label: target.Label,
	})

	for _, name := range puzzle.Shuffled(rng, decoys)[:optionCount-1] {
		options = append(options, puzzle.Option{
			ID:    slug(name),
			Label: name,
		})
	}

	options = puzzle.Shuffled(rng, options)

	if err := puzzle.CheckDistinct(options); err != nil {
		return nil, err
	}

	return &puzzle.Result{
		PromptLabel:   "Name this mech",
		PromptPayload: target.Image,
		Options:       options,
		Answer:        slug(target.Label),
	}, nil
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
