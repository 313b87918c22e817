// Package lib wires the captcha service into an http.Handler.
package lib

import (
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hangarworks/gauntlet"
	"github.com/hangarworks/gauntlet/internal"
	"github.com/hangarworks/gauntlet/lib/captcha"
	"github.com/hangarworks/gauntlet/lib/store"

	// puzzle family implementations
	_ "github.com/hangarworks/gauntlet/lib/puzzle/identify"
	_ "github.com/hangarworks/gauntlet/lib/puzzle/loadout"
	_ "github.com/hangarworks/gauntlet/lib/puzzle/rotation"
	_ "github.com/hangarworks/gauntlet/lib/puzzle/silhouette"
	_ "github.com/hangarworks/gauntlet/lib/puzzle/textlogic"
)

var (
	ErrNoStore = errors.New("lib: Options.Store is required")
)

type Options struct {
	// Store is the persistence backend for challenge records.
	Store store.Interface

	// TTL is how long an issued challenge stays valid. Defaults to
	// gauntlet.DefaultTTL.
	TTL time.Duration

	// Weights biases the visual family selection. Families missing from
	// the map get weight 1, weight zero excludes a family.
	Weights map[string]int

	// BasePrefix is the URL prefix the service is mounted under, e.g. "/myapp".
	BasePrefix string

	CookieDomain     string
	CookieName       string
	CookieSecure     bool
	CookieExpiration time.Duration

	// ED25519PrivateKey signs pass tokens. A random key is generated when
	// unset, which means pass tokens do not survive restarts.
	ED25519PrivateKey ed25519.PrivateKey
}

type Server struct {
	mux  *http.ServeMux
	svc  *captcha.Service
	opts Options
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

func New(opts Options) (*Server, error) {
	if opts.Store == nil {
		return nil, ErrNoStore
	}

	if opts.TTL <= 0 {
		opts.TTL = gauntlet.DefaultTTL
	}
	if opts.CookieName == "" {
		opts.CookieName = gauntlet.CookieName
	}
	if opts.CookieExpiration <= 0 {
		opts.CookieExpiration = gauntlet.PassTokenExpiration
	}

	priv := opts.ED25519PrivateKey
	if priv == nil {
		var err error
		_, priv, err = ed25519.GenerateKey(nil)
		if err != nil {
			return nil, fmt.Errorf("can't generate ed25519 key: %w", err)
		}
		slog.Warn("generated a random ed25519 key, pass tokens will not survive a restart")
	}

	s := &Server{
		mux:  http.NewServeMux(),
		svc:  captcha.New(opts.Store, opts.TTL, opts.Weights),
		opts: opts,
		priv: priv,
		pub:  priv.Public().(ed25519.PublicKey),
	}

	prefix := strings.TrimSuffix(opts.BasePrefix, "/")
	s.mux.HandleFunc("POST "+prefix+gauntlet.APIPrefix+"/challenge", s.makeChallenge)
	s.mux.HandleFunc("POST "+prefix+gauntlet.APIPrefix+"/verify", s.verifyChallenge)
	s.mux.HandleFunc("GET "+prefix+"/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	})

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

func (s *Server) makeChallenge(w http.ResponseWriter, r *http.Request) {
	lg := internal.GetRequestLogger(r)

	var req struct {
		Kind string `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		lg.Debug("invalid challenge request body", "err", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	view, err := s.svc.Issue(r.Context(), req.Kind)
	switch {
	case errors.Is(err, captcha.ErrUnknownKind):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown challenge kind"})
		return
	case err != nil:
		lg.Error("can't issue challenge", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	lg.Debug("issued challenge", "challenge_id", view.ChallengeID, "family", view.Family)
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) verifyChallenge(w http.ResponseWriter, r *http.Request) {
	lg := internal.GetRequestLogger(r)

	var req struct {
		ChallengeID string `json:"challengeId"`
		Answer      string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		lg.Debug("invalid verify request body", "err", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if req.ChallengeID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "challengeId is required"})
		return
	}

	res, err := s.svc.Verify(r.Context(), req.ChallengeID, req.Answer)
	if err != nil {
		lg.Error("can't verify challenge", "challenge_id", req.ChallengeID, "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	if res.OK {
		if err := s.setPassCookie(w, req.ChallengeID); err != nil {
			lg.Error("can't mint pass token", "err", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
			return
		}
	}

	lg.Debug("verified challenge", "challenge_id", req.ChallengeID, "ok", res.OK)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) setPassCookie(w http.ResponseWriter, challengeID string) error {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, jwt.MapClaims{
		"sub": "captcha-pass",
		"jti": challengeID,
		"iat": now.Unix(),
		"nbf": now.Add(-1 * time.Minute).Unix(),
		"exp": now.Add(s.opts.CookieExpiration).Unix(),
	})

	signed, err := token.SignedString(s.priv)
	if err != nil {
		return fmt.Errorf("can't sign pass token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    signed,
		Expires:  now.Add(s.opts.CookieExpiration),
		Domain:   s.opts.CookieDomain,
		Secure:   s.opts.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})

	return nil
}

// ValidatePassToken checks a pass token minted by setPassCookie. The signup
// flow calls this to decide whether the user already solved a challenge.
func (s *Server) ValidatePassToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.pub, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return fmt.Errorf("invalid pass token: %w", err)
	}

	if !token.Valid {
		return errors.New("invalid pass token")
	}

	return nil
}
