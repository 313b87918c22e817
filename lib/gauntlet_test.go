package lib

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hangarworks/gauntlet/internal"
	"github.com/hangarworks/gauntlet/lib/captcha"
	"github.com/hangarworks/gauntlet/lib/puzzle"
	"github.com/hangarworks/gauntlet/lib/store/memory"
)

func init() {
	internal.InitSlog("debug")
	puzzle.Register("fixture", &fixtureFamily{})
}

// fixtureFamily is a deterministic family so HTTP tests know the correct
// answer without peeking at the store.
type fixtureFamily struct{}

func (*fixtureFamily) Name() string              { return "fixture" }
func (*fixtureFamily) Kind() string              { return puzzle.KindVisual }
func (*fixtureFamily) Normalize(s string) string { return s }

func (*fixtureFamily) Generate(rng *rand.Rand) (*puzzle.Result, error) {
	options := puzzle.Shuffled(rng, []puzzle.Option{
		{ID: "fixture-a", Payload: "<svg>a</svg>"},
		{ID: "fixture-b", Payload: "<svg>b</svg>"},
		{ID: "fixture-c", Payload: "<svg>c</svg>"},
		{ID: "fixture-d", Payload: "<svg>d</svg>"},
	})

	return &puzzle.Result{
		PromptLabel:   "Pick c",
		PromptPayload: "<svg>prompt</svg>",
		Options:       options,
		Answer:        "fixture-c",
	}, nil
}

func spawnGauntlet(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	// Zero out every real visual family so issuance always picks the fixture.
	weights := map[string]int{"fixture": 1}
	for _, name := range puzzle.Families() {
		fam, _ := puzzle.Get(name)
		if name != "fixture" && fam.Kind() == puzzle.KindVisual {
			weights[name] = 0
		}
	}

	s, err := New(Options{
		Store:   memory.New(t.Context()),
		Weights: weights,
	})
	if err != nil {
		t.Fatalf("can't construct lib.Server: %v", err)
	}

	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)

	return s, ts
}

func postJSON(t *testing.T, url string, body any, out any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("can't decode response body: %v", err)
		}
	}

	return resp
}

func TestHealthz(t *testing.T) {
	_, ts := spawnGauntlet(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("wanted 200, got %d", resp.StatusCode)
	}
}

func TestChallengeFlow(t *testing.T) {
	_, ts := spawnGauntlet(t)

	var view captcha.View
	resp := postJSON(t, ts.URL+"/api/captcha/challenge", map[string]string{}, &view)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("wanted 200, got %d", resp.StatusCode)
	}
	if view.ChallengeID == "" {
		t.Fatal("challenge has no id")
	}
	if view.Family != "fixture" {
		t.Fatalf("wanted the fixture family, got %q", view.Family)
	}
	if len(view.Options) != 4 {
		t.Fatalf("wanted 4 options, got %d", len(view.Options))
	}

	var verifyResp captcha.Result
	resp = postJSON(t, ts.URL+"/api/captcha/verify", map[string]string{
		"challengeId": view.ChallengeID,
		"answer":      "fixture-c",
	}, &verifyResp)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("wanted 200, got %d", resp.StatusCode)
	}
	if !verifyResp.OK {
		t.Fatal("wanted the correct answer to verify")
	}

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "hangarworks.io-gauntlet-pass" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("wanted a pass cookie on success")
	}

	// Replay: the challenge is consumed.
	resp = postJSON(t, ts.URL+"/api/captcha/verify", map[string]string{
		"challengeId": view.ChallengeID,
		"answer":      "fixture-c",
	}, &verifyResp)
	if verifyResp.OK {
		t.Error("wanted the replayed verification to fail")
	}
	if len(resp.Cookies()) != 0 {
		t.Error("wanted no pass cookie on failure")
	}
}

func TestWrongAnswerNoCookie(t *testing.T) {
	_, ts := spawnGauntlet(t)

	var view captcha.View
	postJSON(t, ts.URL+"/api/captcha/challenge", map[string]string{}, &view)

	var verifyResp captcha.Result
	resp := postJSON(t, ts.URL+"/api/captcha/verify", map[string]string{
		"challengeId": view.ChallengeID,
		"answer":      "fixture-a",
	}, &verifyResp)

	if verifyResp.OK {
		t.Error("wanted a wrong answer to fail")
	}
	if len(resp.Cookies()) != 0 {
		t.Error("wanted no pass cookie for a wrong answer")
	}
}

func TestChallengeResponseLeaksNothing(t *testing.T) {
	_, ts := spawnGauntlet(t)

	resp, err := http.Post(ts.URL+"/api/captcha/challenge", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var raw bytes.Buffer
	if _, err := raw.ReadFrom(resp.Body); err != nil {
		t.Fatal(err)
	}

	for _, needle := range []string{"answerHash", "answer_hash"} {
		if strings.Contains(raw.String(), needle) {
			t.Errorf("challenge response contains %q", needle)
		}
	}
}

func TestTextKind(t *testing.T) {
	_, ts := spawnGauntlet(t)

	var view captcha.View
	resp := postJSON(t, ts.URL+"/api/captcha/challenge", map[string]string{"kind": "text"}, &view)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("wanted 200, got %d", resp.StatusCode)
	}
	if view.Family != "textlogic" {
		t.Errorf("wanted the textlogic family, got %q", view.Family)
	}
	if len(view.Options) != 0 {
		t.Error("text challenges must not carry options")
	}
	if view.PromptPayload == "" {
		t.Error("text challenge has no question")
	}
}

func TestBadRequests(t *testing.T) {
	_, ts := spawnGauntlet(t)

	resp := postJSON(t, ts.URL+"/api/captcha/challenge", map[string]string{"kind": "telepathy"}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("wanted 400 for an unknown kind, got %d", resp.StatusCode)
	}

	resp = postJSON(t, ts.URL+"/api/captcha/verify", map[string]string{"answer": "7"}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("wanted 400 for a missing challengeId, got %d", resp.StatusCode)
	}
}

func TestValidatePassToken(t *testing.T) {
	s, ts := spawnGauntlet(t)

	var view captcha.View
	postJSON(t, ts.URL+"/api/captcha/challenge", map[string]string{}, &view)

	var verifyResp captcha.Result
	resp := postJSON(t, ts.URL+"/api/captcha/verify", map[string]string{
		"challengeId": view.ChallengeID,
		"answer":      "fixture-c",
	}, &verifyResp)

	if !verifyResp.OK {
		t.Fatal("wanted verification to pass")
	}

	var token string
	for _, c := range resp.Cookies() {
		if c.Name == "hangarworks.io-gauntlet-pass" {
			token = c.Value
		}
	}

	if err := s.ValidatePassToken(token); err != nil {
		t.Errorf("wanted the minted pass token to validate: %v", err)
	}

	if err := s.ValidatePassToken("garbage"); err == nil {
		t.Error("wanted a garbage token to fail validation")
	}
}
