package internal

import "testing"

func TestSHA256sum(t *testing.T) {
	// echo -n hunter2 | sha256sum
	const want = "f52fbd32b2b3b86ff88ef6c490628285f482af15ddcb29541f94bcf526a3f6c7"

	if got := SHA256sum("hunter2"); got != want {
		t.Errorf("wanted %q, got: %q", want, got)
	}
}

func TestFastHashStable(t *testing.T) {
	if FastHash("atlas") != FastHash("atlas") {
		t.Error("FastHash is not stable for the same input")
	}

	if FastHash("atlas") == FastHash("raven") {
		t.Error("FastHash collides on trivially different inputs")
	}
}

func BenchmarkSHA256sum(b *testing.B) {
	for b.Loop() {
		_ = SHA256sum("rot-135")
	}
}
