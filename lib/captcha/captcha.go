// Package captcha orchestrates challenge issuance and verification. It picks
// a puzzle family, persists a one-way hash of the correct answer with an
// expiry, and later consumes the record exactly once to verify a submission.
package captcha

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/hangarworks/gauntlet"
	"github.com/hangarworks/gauntlet/internal"
	"github.com/hangarworks/gauntlet/lib/puzzle"
	"github.com/hangarworks/gauntlet/lib/store"
)

// ErrUnknownKind is returned when the caller requests a challenge kind that
// is neither visual nor text.
var ErrUnknownKind = errors.New("captcha: unknown challenge kind")

// Record is the persisted shape of one issued challenge. PromptLabel,
// OptionIDs and Question are kept for audit only; verification is purely the
// hash comparison.
type Record struct {
	ID          string    `json:"id"`
	Family      string    `json:"family"`
	PromptLabel string    `json:"promptLabel"`
	OptionIDs   []string  `json:"optionIds,omitempty"`
	Question    string    `json:"question,omitempty"`
	AnswerHash  string    `json:"answerHash"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// View is what the client gets back from issuance. It never carries the
// answer or its hash.
type View struct {
	ChallengeID   string          `json:"challengeId"`
	Family        string          `json:"family"`
	PromptLabel   string          `json:"promptLabel"`
	PromptPayload string          `json:"promptPayload"`
	Options       []puzzle.Option `json:"options,omitempty"`
}

// Result is the outcome of a verification attempt. Wrong answer, expired
// challenge and unknown challenge all look the same to the caller so that
// the API is not an oracle for automated guessing.
type Result struct {
	OK bool `json:"ok"`
}

// Service implements the challenge protocol on top of a storage backend.
type Service struct {
	db      *store.JSON[Record]
	ttl     time.Duration
	weights map[string]int
	now     func() time.Time
}

func New(backing store.Interface, ttl time.Duration, weights map[string]int) *Service {
	if ttl <= 0 {
		ttl = gauntlet.DefaultTTL
	}

	return &Service{
		db: &store.JSON[Record]{
			Underlying: backing,
			Prefix:     "challenge:",
		},
		ttl:     ttl,
		weights: weights,
		now:     time.Now,
	}
}

// Issue generates a new challenge of the given kind ("visual" picks a visual
// family at random, "text" the accessible fallback), persists its record and
// returns the client view.
func (s *Service) Issue(ctx context.Context, kind string) (*View, error) {
	if kind == "" {
		kind = puzzle.KindVisual
	}

	switch kind {
	case puzzle.KindVisual, puzzle.KindText:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	fam, err := puzzle.Pick(rng, kind, s.weights)
	if err != nil {
		return nil, err
	}

	return s.issue(ctx, fam, rng)
}

func (s *Service) issue(ctx context.Context, fam puzzle.Family, rng *rand.Rand) (*View, error) {
	res, err := fam.Generate(rng)
	if err != nil {
		return nil, fmt.Errorf("can't generate %s challenge: %w", fam.Name(), err)
	}

	now := s.now()
	rec := Record{
		ID:          uuid.NewString(),
		Family:      fam.Name(),
		PromptLabel: res.PromptLabel,
		// The same Normalize runs on submissions in Verify, so a family whose
		// canonical answer is not in normal form still round-trips.
		AnswerHash: internal.SHA256sum(fam.Normalize(res.Answer)),
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.ttl),
	}

	if fam.Kind() == puzzle.KindText {
		rec.Question = res.PromptPayload
	} else {
		for _, opt := range res.Options {
			rec.OptionIDs = append(rec.OptionIDs, opt.ID)
		}
	}

	if err := s.db.Set(ctx, rec.ID, rec, s.ttl); err != nil {
		return nil, fmt.Errorf("can't persist challenge: %w", err)
	}

	challengesIssued.WithLabelValues(fam.Name()).Inc()

	return &View{
		ChallengeID:   rec.ID,
		Family:        rec.Family,
		PromptLabel:   res.PromptLabel,
		PromptPayload: res.PromptPayload,
		Options:       res.Options,
	}, nil
}

// Verify consumes the challenge record and compares the hashed submission
// against the stored answer hash. The record is consumed on the first attempt
// no matter the outcome; a second attempt finds nothing.
//
// The returned error is only ever an internal storage failure. Every
// user-facing failure mode is a plain ok=false.
func (s *Service) Verify(ctx context.Context, challengeID, submission string) (Result, error) {
	rec, err := s.db.Take(ctx, challengeID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		failedVerifications.WithLabelValues("unknown", "not_found").Inc()
		return Result{OK: false}, nil
	case err != nil:
		return Result{}, fmt.Errorf("can't load challenge: %w", err)
	}

	// Take already deleted the record, so a stale-but-present record is
	// gone after this check either way.
	if !s.now().Before(rec.ExpiresAt) {
		failedVerifications.WithLabelValues(rec.Family, "expired").Inc()
		return Result{OK: false}, nil
	}

	normalized := submission
	if fam, ok := puzzle.Get(rec.Family); ok {
		normalized = fam.Normalize(submission)
	} else {
		slog.Warn("challenge record references unregistered family", "family", rec.Family)
	}

	sum := internal.SHA256sum(normalized)
	if subtle.ConstantTimeCompare([]byte(sum), []byte(rec.AnswerHash)) != 1 {
		failedVerifications.WithLabelValues(rec.Family, "mismatch").Inc()
		return Result{OK: false}, nil
	}

	challengesValidated.WithLabelValues(rec.Family).Inc()
	return Result{OK: true}, nil
}
