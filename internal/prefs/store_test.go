package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/navkit/navshell/internal/testutil"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs")
	s := NewFileStore(path)
	if err := s.Set(KeyCollapsed, "true"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := s.Set(KeyLocked, "false"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	reloaded := NewFileStore(path)
	if v, ok := reloaded.Get(KeyCollapsed); !ok || v != "true" {
		t.Fatalf("expected sidebarCollapsed=true after reload, got %q ok=%v", v, ok)
	}
	if v, ok := reloaded.Get(KeyLocked); !ok || v != "false" {
		t.Fatalf("expected sidebarLocked=false after reload, got %q ok=%v", v, ok)
	}
}

func TestFileStoreSkipsCorruptLines(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "prefs", strings.Join([]string{
		"# comment",
		"sidebarCollapsed=true",
		"not a pair",
		"=nokey",
		"",
		"sidebarLocked=false",
	}, "\n"))
	s := NewFileStore(path)
	if v, ok := s.Get(KeyCollapsed); !ok || v != "true" {
		t.Fatalf("expected sidebarCollapsed=true, got %q ok=%v", v, ok)
	}
	if v, ok := s.Get(KeyLocked); !ok || v != "false" {
		t.Fatalf("expected sidebarLocked=false, got %q ok=%v", v, ok)
	}
	if _, ok := s.Get("not a pair"); ok {
		t.Fatalf("corrupt line survived the load")
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "missing"))
	if _, ok := s.Get(KeyCollapsed); ok {
		t.Fatalf("missing file should behave as empty")
	}
}

func TestFileStoreWritesSortedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs")
	s := NewFileStore(path)
	s.Set(KeyLocked, "true")
	s.Set(KeyCollapsed, "true")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	want := "sidebarCollapsed=true\nsidebarLocked=true\n"
	if string(data) != want {
		t.Fatalf("expected %q, got %q", want, string(data))
	}
}

func TestPreferencesLiterals(t *testing.T) {
	store := NewMemoryStore()
	p := NewPreferences(store)
	p.SetSidebarCollapsed(true)
	if v, _ := store.Get(KeyCollapsed); v != "true" {
		t.Fatalf("expected literal %q, got %q", "true", v)
	}
	p.SetSidebarCollapsed(false)
	if v, _ := store.Get(KeyCollapsed); v != "false" {
		t.Fatalf("expected literal %q, got %q", "false", v)
	}
}

func TestPreferencesIgnoresUnparseableValues(t *testing.T) {
	store := NewMemoryStore()
	store.Set(KeyCollapsed, "TRUE")
	p := NewPreferences(store)
	if _, ok := p.SidebarCollapsed(); ok {
		t.Fatalf("only the exact literals should parse")
	}
}

func TestRestorePrecedence(t *testing.T) {
	cases := []struct {
		name      string
		collapsed string
		locked    string
		wantC     bool
		wantL     bool
	}{
		{"nothing persisted", "", "", false, false},
		{"collapsed only", "true", "", true, false},
		{"lock implies collapsed", "false", "true", true, true},
		{"unlocked keeps collapsed flag", "true", "false", true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := NewMemoryStore()
			if tc.collapsed != "" {
				store.Set(KeyCollapsed, tc.collapsed)
			}
			if tc.locked != "" {
				store.Set(KeyLocked, tc.locked)
			}
			c, l := NewPreferences(store).Restore()
			if c != tc.wantC || l != tc.wantL {
				t.Fatalf("Restore() = (%v, %v), expected (%v, %v)", c, l, tc.wantC, tc.wantL)
			}
		})
	}
}

func TestNilPreferences(t *testing.T) {
	var p *Preferences
	if _, ok := p.SidebarCollapsed(); ok {
		t.Fatalf("nil preferences reported a persisted value")
	}
	p.SetSidebarLocked(true)
	if c, l := p.Restore(); c || l {
		t.Fatalf("nil preferences restored non-defaults")
	}
}
