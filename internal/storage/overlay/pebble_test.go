package overlay_test

import (
	"testing"

	"github.com/shesheerrao0606/TheFelxDashboard/internal/storage/overlay"
)

func TestPebbleStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	st, err := overlay.OpenPebble(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer st.Close()

	if _, ok := st.Get("hostaway-1"); ok {
		t.Fatal("fresh store should be empty")
	}
	if err := st.Set("hostaway-1", "approved"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok := st.Get("hostaway-1")
	if !ok || v != "approved" {
		t.Fatalf("get: %q %v", v, ok)
	}
	if err := st.Delete("hostaway-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := st.Get("hostaway-1"); ok {
		t.Fatal("deleted key still present")
	}
	// deleting an absent key is fine
	if err := st.Delete("hostaway-404"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestPebbleStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	st, err := overlay.OpenPebble(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := st.Set("hostaway-7453", "approved"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	st2, err := overlay.OpenPebble(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st2.Close()
	v, ok := st2.Get("hostaway-7453")
	if !ok || v != "approved" {
		t.Fatalf("approval lost across reopen: %q %v", v, ok)
	}
}

func TestPebbleStore_Clear(t *testing.T) {
	st, err := overlay.OpenPebble(t.TempDir())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer st.Close()

	for _, k := range []string{"a", "b", "c"} {
		if err := st.Set(k, "approved"); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}
	if err := st.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if _, ok := st.Get(k); ok {
			t.Fatalf("key %s survived clear", k)
		}
	}
	// clearing an empty store is a no-op
	if err := st.Clear(); err != nil {
		t.Fatalf("clear empty: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	st := overlay.NewMemory()
	if err := st.Set("x", "approved"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok := st.Get("x"); !ok || v != "approved" {
		t.Fatalf("get: %q %v", v, ok)
	}
	if err := st.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := st.Get("x"); ok {
		t.Fatal("key survived clear")
	}
}
