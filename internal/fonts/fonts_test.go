package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// writeFont places a parsable font file in a temp dir.
func writeFont(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func closeSet(t *testing.T, s *Set) {
	t.Helper()
	if err := s.Close(); err != nil {
		t.Errorf("Set.Close() = %v", err)
	}
}

func TestResolveFirstLoadableCandidate(t *testing.T) {
	garbage := writeFont(t, "broken.ttf", []byte("not a font"))
	good := writeFont(t, "goregular.ttf", goregular.TTF)
	missing := filepath.Join(t.TempDir(), "absent.ttf")

	set, err := Resolve([]string{missing, garbage, good}, 128, 512.0/12, "DND", "SCHEDULER")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	defer closeSet(t, set)

	if set.Source != good {
		t.Errorf("Source = %q, want %q", set.Source, good)
	}
	if set.Fallback {
		t.Error("Fallback = true, want false")
	}
	if got := set.Primary.Size(); got != 128 {
		t.Errorf("Primary.Size() = %v, want 128", got)
	}
	if got := set.Secondary.Size(); got != 512.0/12 {
		t.Errorf("Secondary.Size() = %v, want %v", got, 512.0/12)
	}
	if set.Primary.Source() != set.Secondary.Source() {
		t.Error("primary and secondary faces come from different sources")
	}
}

func TestResolveFallsBackToBuiltin(t *testing.T) {
	tests := []struct {
		name       string
		candidates func(t *testing.T) []string
	}{
		{"no candidates", func(*testing.T) []string { return nil }},
		{"all missing", func(t *testing.T) []string {
			dir := t.TempDir()
			return []string{filepath.Join(dir, "arial.ttf"), filepath.Join(dir, "calibri.ttf")}
		}},
		{"all broken", func(t *testing.T) []string {
			return []string{writeFont(t, "a.ttf", []byte{0, 1, 0, 0}), writeFont(t, "b.ttf", nil)}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := Resolve(tt.candidates(t), 128, 42, "DND")
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			defer closeSet(t, set)

			if !set.Fallback {
				t.Error("Fallback = false, want true")
			}
			if set.Source != BuiltinName {
				t.Errorf("Source = %q, want %q", set.Source, BuiltinName)
			}
			if set.Primary == nil || set.Secondary == nil {
				t.Fatal("fallback set has nil faces")
			}
			if set.Primary.Size() != 128 || set.Secondary.Size() != 42 {
				t.Errorf("sizes = %v/%v, want 128/42", set.Primary.Size(), set.Secondary.Size())
			}
		})
	}
}

func TestResolveSkipsFontWithoutGlyphs(t *testing.T) {
	good := writeFont(t, "goregular.ttf", goregular.TTF)

	set, err := Resolve([]string{good}, 64, 24, "DND \U0001F600")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	defer closeSet(t, set)

	if !set.Fallback {
		t.Errorf("Source = %q, want the candidate without emoji skipped", set.Source)
	}
}

func TestCovers(t *testing.T) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() error = %v", err)
	}
	defer func() { _ = src.Close() }()
	face := src.Face(24)

	if err := covers(face, "DND", "SCHEDULER"); err != nil {
		t.Errorf("covers(latin) = %v, want nil", err)
	}
	if err := covers(face, "\U0001F600"); !errors.Is(err, ErrNoGlyphs) {
		t.Errorf("covers(emoji) = %v, want ErrNoGlyphs", err)
	}
}

func TestCandidatesFor(t *testing.T) {
	tests := []struct {
		goos  string
		first string
	}{
		{"windows", "C:/Windows/Fonts/arial.ttf"},
		{"darwin", "/Library/Fonts/Arial.ttf"},
		{"linux", "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"},
		{"freebsd", "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got := candidatesFor(tt.goos)
			if len(got) == 0 {
				t.Fatal("no candidates")
			}
			if got[0] != tt.first {
				t.Errorf("first candidate = %q, want %q", got[0], tt.first)
			}
			if got[len(got)-1] != "arial.ttf" {
				t.Errorf("last candidate = %q, want bare arial.ttf", got[len(got)-1])
			}
		})
	}
	if len(Candidates()) == 0 {
		t.Error("Candidates() is empty on this platform")
	}
}

func TestSetCloseNil(t *testing.T) {
	var s *Set
	if err := s.Close(); err != nil {
		t.Errorf("nil Set.Close() = %v", err)
	}
}
