package assets

import (
	"strings"
	"testing"
)

func TestRenderDeterministic(t *testing.T) {
	tr := Transform{Fill: "#4b5563", Rotate: 45, Size: 128}

	for _, a := range Silhouettes() {
		if Render(a, tr) != Render(a, tr) {
			t.Errorf("rendering %q twice did not yield identical output", a.ID)
		}
	}
}

func TestRenderTransform(t *testing.T) {
	a := Silhouettes()[0]

	for _, tt := range []struct {
		name string
		tr   Transform
		want string
	}{
		{
			name: "fill",
			tr:   Transform{Fill: "#9ca3af"},
			want: `fill="#9ca3af"`,
		},
		{
			name: "default fill",
			tr:   Transform{},
			want: `fill="#000000"`,
		},
		{
			name: "rotation about viewport center",
			tr:   Transform{Rotate: 90},
			want: `transform="rotate(90 50 50)"`,
		},
		{
			name: "negative rotation",
			tr:   Transform{Rotate: -45},
			want: `transform="rotate(-45 50 50)"`,
		},
		{
			name: "opacity",
			tr:   Transform{Opacity: 0.5},
			want: `opacity="0.5"`,
		},
		{
			name: "stroke",
			tr:   Transform{Stroke: "#111827", StrokeWidth: 2},
			want: `stroke="#111827" stroke-width="2"`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(a, tt.tr)
			if !strings.Contains(got, tt.want) {
				t.Logf("payload: %s", got)
				t.Errorf("wanted payload to contain %q", tt.want)
			}
		})
	}
}

func TestRenderAspectRatio(t *testing.T) {
	a := VectorAsset{
		ID:       "tall",
		Viewport: Viewport{Width: 50, Height: 100},
		Paths:    []string{"M0 0h50v100h-50z"},
	}

	got := Render(a, Transform{Size: 64})
	if !strings.Contains(got, `width="64" height="128"`) {
		t.Errorf("wanted height scaled to preserve aspect ratio, got: %s", got)
	}
}

func TestRenderPaths(t *testing.T) {
	a := Silhouettes()[0]

	part := RenderPaths(a, 2, Transform{})
	full := Render(a, Transform{})

	if strings.Count(part, "<path") != 2 {
		t.Errorf("wanted 2 paths in the partial render, got %d", strings.Count(part, "<path"))
	}

	if strings.Count(full, "<path") != len(a.Paths) {
		t.Errorf("wanted %d paths in the full render, got %d", len(a.Paths), strings.Count(full, "<path"))
	}
}

func TestCatalogueIntegrity(t *testing.T) {
	t.Run("silhouettes", func(t *testing.T) {
		checkUnique(t, Silhouettes())
	})

	t.Run("loadouts", func(t *testing.T) {
		checkUnique(t, Loadouts())
	})

	t.Run("archetype loadout links resolve", func(t *testing.T) {
		seen := map[string]bool{}
		for _, a := range Archetypes() {
			if _, ok := LoadoutByID(a.LoadoutID); !ok {
				t.Errorf("archetype %q links to unknown loadout %q", a.ID, a.LoadoutID)
			}
			if seen[a.ID] {
				t.Errorf("duplicate archetype id %q", a.ID)
			}
			seen[a.ID] = true
		}
	})

	t.Run("rotation parts need two paths", func(t *testing.T) {
		for _, a := range Silhouettes() {
			if len(a.Paths) < 2 {
				t.Errorf("silhouette %q has %d paths, rotation puzzles need at least 2", a.ID, len(a.Paths))
			}
		}
	})
}

func checkUnique(t *testing.T, cat []VectorAsset) {
	t.Helper()

	seen := map[string]bool{}
	for _, a := range cat {
		if a.ID == "" {
			t.Error("catalogue entry with empty id")
		}
		if len(a.Paths) == 0 {
			t.Errorf("catalogue entry %q has no paths", a.ID)
		}
		if a.Viewport.Width <= 0 || a.Viewport.Height <= 0 {
			t.Errorf("catalogue entry %q has a degenerate viewport", a.ID)
		}
		if seen[a.ID] {
			t.Errorf("duplicate catalogue id %q", a.ID)
		}
		seen[a.ID] = true
	}
}
