package silhouette

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/hangarworks/gauntlet/lib/puzzle"
	"github.com/hangarworks/gauntlet/lib/puzzle/puzzletest"
)

func TestCommon(t *testing.T) {
	puzzletest.Common(t, &Impl{}, 4, 6)
}

func TestPromptMatchesCorrectOption(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	i := &Impl{}

	for range 50 {
		res, err := i.Generate(rng)
		if err != nil {
			t.Fatal(err)
		}

		// The answer is the target's catalogue id, and the prompt renders
		// the target, so the prompt payload carries the same path data as
		// the correct option (only the styling differs).
		var correct puzzle.Option
		for _, opt := range res.Options {
			if opt.ID == res.Answer {
				correct = opt
			}
		}

		promptPaths := pathData(res.PromptPayload)
		optionPaths := pathData(correct.Payload)
		if promptPaths != optionPaths {
			t.Logf("prompt:  %s", promptPaths)
			t.Logf("correct: %s", optionPaths)
			t.Fatal("prompt and correct option render different assets")
		}
	}
}

func TestOptionsIdenticallyStyled(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))

	res, err := (&Impl{}).Generate(rng)
	if err != nil {
		t.Fatal(err)
	}

	for _, opt := range res.Options {
		if !strings.Contains(opt.Payload, `fill="`+puzzle.OptionStyle.Fill+`"`) {
			t.Errorf("option %q is not styled like the others", opt.ID)
		}
	}
}

// pathData strips everything but the <path> elements from a rendered payload.
func pathData(payload string) string {
	start := strings.Index(payload, "<path")
	end := strings.LastIndex(payload, "/>")
	if start == -1 || end == -1 {
		return payload
	}
	return payload[start : end+2]
}
