package captcha

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/hangarworks/gauntlet/internal"
	"github.com/hangarworks/gauntlet/lib/puzzle"
	"github.com/hangarworks/gauntlet/lib/store/memory"

	_ "github.com/hangarworks/gauntlet/lib/puzzle/identify"
	_ "github.com/hangarworks/gauntlet/lib/puzzle/loadout"
	_ "github.com/hangarworks/gauntlet/lib/puzzle/rotation"
	_ "github.com/hangarworks/gauntlet/lib/puzzle/silhouette"
	_ "github.com/hangarworks/gauntlet/lib/puzzle/textlogic"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return New(memory.New(t.Context()), 5*time.Minute, nil)
}

func init() {
	puzzle.Register("callsign", &callsignFamily{})
}

// callsignFamily emits a canonical answer that is not in normal form. It
// exists to pin down that issuance hashes the normalized answer, because
// Verify hashes the normalized submission.
type callsignFamily struct{}

func (*callsignFamily) Name() string { return "callsign" }
func (*callsignFamily) Kind() string { return puzzle.KindVisual }

func (*callsignFamily) Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (*callsignFamily) Generate(rng *rand.Rand) (*puzzle.Result, error) {
	options := puzzle.Shuffled(rng, []puzzle.Option{
		{ID: "cs-alpha", Label: "Alpha"},
		{ID: "cs-bravo", Label: "Bravo"},
		{ID: "cs-delta", Label: "Delta"},
		{ID: "cs-echo", Label: "Echo"},
	})

	return &puzzle.Result{
		PromptLabel:   "Pick Alpha",
		PromptPayload: "which callsign reads Alpha?",
		Options:       options,
		Answer:        " CS-ALPHA ",
	}, nil
}

// correctAnswer recovers the correct submission for an issued challenge by
// hashing every candidate against the stored record. White-box only: nothing
// reachable by a client exposes the hash.
func correctAnswer(t *testing.T, ctx context.Context, s *Service, view *View) string {
	t.Helper()

	rec, err := s.db.Get(ctx, view.ChallengeID)
	if err != nil {
		t.Fatal(err)
	}

	for _, opt := range view.Options {
		if internal.SHA256sum(opt.ID) == rec.AnswerHash {
			return opt.ID
		}
	}

	// Text challenges: the answer is a small integer.
	for n := 0; n <= 400; n++ {
		if internal.SHA256sum(strconv.Itoa(n)) == rec.AnswerHash {
			return strconv.Itoa(n)
		}
	}

	t.Fatalf("can't recover answer for challenge %s (%s)", view.ChallengeID, view.Family)
	return ""
}

func TestIssueVerifyEveryFamily(t *testing.T) {
	for _, name := range puzzle.Families() {
		t.Run(name, func(t *testing.T) {
			s := newService(t)
			fam, _ := puzzle.Get(name)
			rng := rand.New(rand.NewPCG(61, 62))

			view, err := s.issue(t.Context(), fam, rng)
			if err != nil {
				t.Fatal(err)
			}

			if view.Family != name {
				t.Errorf("wanted family %q, got %q", name, view.Family)
			}

			answer := correctAnswer(t, t.Context(), s, view)

			res, err := s.Verify(t.Context(), view.ChallengeID, answer)
			if err != nil {
				t.Fatal(err)
			}
			if !res.OK {
				t.Errorf("wanted the correct answer %q to verify", answer)
			}
		})
	}
}

func TestSingleUse(t *testing.T) {
	s := newService(t)

	view, err := s.Issue(t.Context(), puzzle.KindVisual)
	if err != nil {
		t.Fatal(err)
	}

	answer := correctAnswer(t, t.Context(), s, view)

	res, err := s.Verify(t.Context(), view.ChallengeID, answer)
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK {
		t.Fatal("wanted the first verification to pass")
	}

	res, err = s.Verify(t.Context(), view.ChallengeID, answer)
	if err != nil {
		t.Fatal(err)
	}
	if res.OK {
		t.Error("wanted the second verification to fail, challenges are single use")
	}
}

func TestWrongAnswerConsumes(t *testing.T) {
	s := newService(t)

	view, err := s.Issue(t.Context(), puzzle.KindVisual)
	if err != nil {
		t.Fatal(err)
	}

	answer := correctAnswer(t, t.Context(), s, view)

	res, err := s.Verify(t.Context(), view.ChallengeID, "definitely-wrong")
	if err != nil {
		t.Fatal(err)
	}
	if res.OK {
		t.Fatal("wanted a wrong answer to fail")
	}

	// The record is gone, so even the right answer fails now.
	res, err = s.Verify(t.Context(), view.ChallengeID, answer)
	if err != nil {
		t.Fatal(err)
	}
	if res.OK {
		t.Error("wanted the record consumed after the wrong attempt")
	}
}

func TestExpired(t *testing.T) {
	s := newService(t)

	now := time.Now()
	s.now = func() time.Time { return now }

	view, err := s.Issue(t.Context(), puzzle.KindVisual)
	if err != nil {
		t.Fatal(err)
	}

	answer := correctAnswer(t, t.Context(), s, view)

	s.now = func() time.Time { return now.Add(6 * time.Minute) }

	res, err := s.Verify(t.Context(), view.ChallengeID, answer)
	if err != nil {
		t.Fatal(err)
	}
	if res.OK {
		t.Error("wanted an expired challenge to fail even with the correct answer")
	}
}

func TestUnknownChallenge(t *testing.T) {
	s := newService(t)

	res, err := s.Verify(t.Context(), "no-such-challenge", "whatever")
	if err != nil {
		t.Fatal(err)
	}
	if res.OK {
		t.Error("wanted an unknown challenge id to fail")
	}
}

func TestTextChallenge(t *testing.T) {
	s := newService(t)

	view, err := s.Issue(t.Context(), puzzle.KindText)
	if err != nil {
		t.Fatal(err)
	}

	if len(view.Options) != 0 {
		t.Error("text challenges must not carry options")
	}
	if view.PromptPayload == "" {
		t.Error("text challenge has no question")
	}

	answer := correctAnswer(t, t.Context(), s, view)

	// Whitespace is normalized away before hashing.
	res, err := s.Verify(t.Context(), view.ChallengeID, " "+answer+" ")
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK {
		t.Errorf("wanted padded answer %q to verify after normalization", " "+answer+" ")
	}
}

func TestIssueNormalizesAnswer(t *testing.T) {
	s := newService(t)
	fam, _ := puzzle.Get("callsign")
	rng := rand.New(rand.NewPCG(7, 11))

	view, err := s.issue(t.Context(), fam, rng)
	if err != nil {
		t.Fatal(err)
	}

	// The normalized form of the canonical answer verifies.
	res, err := s.Verify(t.Context(), view.ChallengeID, "cs-alpha")
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK {
		t.Error("wanted the normalized answer to verify")
	}

	// So does the raw canonical form on a fresh challenge.
	view, err = s.issue(t.Context(), fam, rng)
	if err != nil {
		t.Fatal(err)
	}

	res, err = s.Verify(t.Context(), view.ChallengeID, " CS-ALPHA ")
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK {
		t.Error("wanted the raw canonical answer to verify after normalization")
	}
}

func TestViewNeverLeaksAnswer(t *testing.T) {
	s := newService(t)

	for range 20 {
		view, err := s.Issue(t.Context(), puzzle.KindVisual)
		if err != nil {
			t.Fatal(err)
		}

		rec, err := s.db.Get(t.Context(), view.ChallengeID)
		if err != nil {
			t.Fatal(err)
		}

		data, err := json.Marshal(view)
		if err != nil {
			t.Fatal(err)
		}

		if strings.Contains(string(data), rec.AnswerHash) {
			t.Fatal("client view contains the answer hash")
		}
		if strings.Contains(string(data), "answerHash") {
			t.Fatal("client view contains an answerHash field")
		}
	}
}

func TestUnknownKind(t *testing.T) {
	s := newService(t)

	if _, err := s.Issue(t.Context(), "telepathy"); err == nil {
		t.Error("wanted an unknown kind to fail issuance")
	}
}

func TestRecordKeepsAudit(t *testing.T) {
	s := newService(t)

	view, err := s.Issue(t.Context(), puzzle.KindVisual)
	if err != nil {
		t.Fatal(err)
	}

	rec, err := s.db.Get(t.Context(), view.ChallengeID)
	if err != nil {
		t.Fatal(err)
	}

	if len(rec.OptionIDs) != len(view.Options) {
		t.Errorf("record has %d option ids, view has %d options", len(rec.OptionIDs), len(view.Options))
	}

	if !rec.ExpiresAt.Equal(rec.CreatedAt.Add(5 * time.Minute)) {
		t.Errorf("wanted expiry %v after creation, got %v", 5*time.Minute, rec.ExpiresAt.Sub(rec.CreatedAt))
	}
}
