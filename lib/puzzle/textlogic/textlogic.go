// Package textlogic implements the accessible text fallback family: a short
// arithmetic word problem with small operands a human can compute mentally in
// a few seconds. No options are rendered; the client submits free text.
package textlogic

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/hangarworks/gauntlet/lib/puzzle"
	"golang.org/x/text/cases"
)

func init() {
	puzzle.Register("textlogic", &Impl{})
}

type template struct {
	question func(a, b int) string
	answer   func(a, b int) int
	// operand ranges, inclusive
	aMin, aMax int
	bMin, bMax int
}

var templates = []template{
	{
		question: func(a, b int) string {
			return fmt.Sprintf("One lance fields %d mechs and a second lance fields %d. How many mechs deploy in total?", a, b)
		},
		answer: func(a, b int) int { return a + b },
		aMin:   2, aMax: 12,
		bMin: 2, bMax: 12,
	},
	{
		question: func(a, b int) string {
			return fmt.Sprintf("Each of %d mechs carries %d missiles. How many missiles is that altogether?", a, b)
		},
		answer: func(a, b int) int { return a * b },
		aMin:   2, aMax: 9,
		bMin: 2, bMax: 9,
	},
	{
		question: func(a, b int) string {
			return fmt.Sprintf("A hangar holds %d mechs and %d of them launch. How many mechs are left in the hangar?", a, b)
		},
		answer: func(a, b int) int { return a - b },
		aMin:   6, aMax: 18,
		bMin: 2, bMax: 5,
	},
}

type Impl struct{}

func (*Impl) Name() string { return "textlogic" }

func (*Impl) Kind() string { return puzzle.KindText }

// Normalize trims surrounding whitespace and applies Unicode case folding.
// There is deliberately no numeric canonicalization: the answer is hashed as
// the exact decimal string, so "08" does not match "8".
func (*Impl) Normalize(submission string) string {
	return cases.Fold().String(strings.TrimSpace(submission))
}

func (*Impl) Generate(rng *rand.Rand) (*puzzle.Result, error) {
	tpl := templates[rng.IntN(len(templates))]

	a := tpl.aMin + rng.IntN(tpl.aMax-tpl.aMin+1)
	b := tpl.bMin + rng.IntN(tpl.bMax-tpl.bMin+1)

	return &puzzle.Result{
		PromptLabel:   "Answer the question",
		PromptPayload: tpl.question(a, b),
		Answer:        strconv.Itoa(tpl.answer(a, b)),
	}, nil
}
