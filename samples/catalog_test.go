package samples

import (
	"bytes"
	"errors"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestListSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.py"), "print('hi')\n")
	writeFile(t, filepath.Join(dir, "a.rs"), "fn main() {}\n")
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got := List(dir)
	want := []string{filepath.Join(dir, "a.rs"), filepath.Join(dir, "b.py")}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("List = %v, want %v", got, want)
	}
}

func TestListMissingDirectory(t *testing.T) {
	if got := List(filepath.Join(t.TempDir(), "nope")); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestSubstituteReplacesEveryMarker(t *testing.T) {
	code := "print(\"$$$\")\necho '$$$'\n"
	got := Substitute(code, DefaultMarker, "Hello")
	want := "print(\"Hello\")\necho 'Hello'\n"
	if got != want {
		t.Fatalf("Substitute = %q, want %q", got, want)
	}
	if Substitute(code, "", "x") != code {
		t.Fatalf("empty marker should leave code untouched")
	}
}

func TestPickEmptyCatalog(t *testing.T) {
	c := NewCatalog(Options{Dir: t.TempDir()})
	if _, err := c.Pick(); !errors.Is(err, ErrNoSamples) {
		t.Fatalf("expected ErrNoSamples, got %v", err)
	}
	if _, err := c.Next("x"); !errors.Is(err, ErrNoSamples) {
		t.Fatalf("expected ErrNoSamples from Next, got %v", err)
	}
}

func TestNextSubstitutesAndDetects(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hello.py"), "print(\"$$$\")\nprint(\"$$$\")\n")
	c := NewCatalog(Options{Dir: dir, Rand: rand.New(rand.NewPCG(1, 2))})

	s, err := c.Next("Hello")
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if s.Text != "print(\"Hello\")\nprint(\"Hello\")\n" {
		t.Fatalf("unexpected text %q", s.Text)
	}
	if s.Language != "Python" {
		t.Fatalf("expected Python, got %q", s.Language)
	}
}

func TestNextUnreadableSampleIsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gone.txt")
	writeFile(t, path, "content")
	c := NewCatalog(Options{Dir: dir})
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}

	s, err := c.Next("x")
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if s.Text != "" {
		t.Fatalf("expected empty text for unreadable sample, got %q", s.Text)
	}
}

type fixedHistory struct {
	recent   []string
	recorded []Entry
}

func (h *fixedHistory) Record(e Entry) error {
	h.recorded = append(h.recorded, e)
	return nil
}

func (h *fixedHistory) Recent(n int) ([]string, error) {
	if n > len(h.recent) {
		n = len(h.recent)
	}
	return h.recent[:n], nil
}

func (h *fixedHistory) Count(path string) (int, error) {
	n := 0
	for _, e := range h.recorded {
		if e.Path == path {
			n++
		}
	}
	return n, nil
}

func (h *fixedHistory) Close() error { return nil }

func TestPickAvoidsRecent(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	writeFile(t, a, "a")
	writeFile(t, b, "b")

	c := NewCatalog(Options{
		Dir:         dir,
		AvoidRecent: 1,
		History:     &fixedHistory{recent: []string{a}},
		Rand:        rand.New(rand.NewPCG(7, 7)),
	})
	for i := 0; i < 20; i++ {
		got, err := c.Pick()
		if err != nil {
			t.Fatalf("Pick: %v", err)
		}
		if got != b {
			t.Fatalf("expected %s to be avoided, got %s", a, got)
		}
	}
}

func TestPickSingleFileIgnoresHistory(t *testing.T) {
	dir := t.TempDir()
	only := filepath.Join(dir, "only.txt")
	writeFile(t, only, "x")
	c := NewCatalog(Options{
		Dir:         dir,
		AvoidRecent: 3,
		History:     &fixedHistory{recent: []string{only}},
	})
	got, err := c.Pick()
	if err != nil || got != only {
		t.Fatalf("expected the only sample, got %q (%v)", got, err)
	}
}

func TestShownRecordsEntry(t *testing.T) {
	h := &fixedHistory{}
	c := NewCatalog(Options{Dir: t.TempDir(), History: h})
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	c.Shown(Sample{Path: "x.go", Language: "Go"}, 42)
	c.Shown(Sample{Path: "x.go", Language: "Go"}, 42)
	if len(h.recorded) != 2 || h.recorded[0].Frames != 42 || h.recorded[0].Language != "Go" {
		t.Fatalf("unexpected recorded entries %+v", h.recorded)
	}
	if !strings.Contains(buf.String(), "x.go shown 2 times") {
		t.Fatalf("expected the show count in the log, got %q", buf.String())
	}
}
