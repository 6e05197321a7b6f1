package db

import (
	"testing"

	"github.com/DrJuChunKoO/transpal-engine/internal/store"
	"github.com/DrJuChunKoO/transpal-engine/internal/transcript"
)

func testState(name string) store.State {
	return store.State{
		Past: []*transcript.Document{
			{Info: &transcript.Info{Name: "older"}, Content: []transcript.Item{}},
		},
		Present: &transcript.Document{
			Info: &transcript.Info{Name: name},
			Content: []transcript.Item{
				{ID: "a", Type: transcript.ItemSpeech, Speaker: "Alice", Text: "hi"},
			},
		},
	}
}

func TestSaveLoadState_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer database.Close()

	if err := SaveState(database, testState("v1")); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	st, ok, err := LoadState(database)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if !ok {
		t.Fatal("LoadState reported no session after save")
	}
	if st.Present == nil || st.Present.Info.Name != "v1" {
		t.Errorf("loaded present = %+v, want name v1", st.Present)
	}
	if len(st.Past) != 1 || st.Past[0].Info.Name != "older" {
		t.Errorf("loaded past = %+v, want one entry named older", st.Past)
	}
	if st.Present.Content[0].Speaker != "Alice" {
		t.Errorf("loaded content speaker = %q, want Alice", st.Present.Content[0].Speaker)
	}
}

func TestSaveState_Overwrites(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer database.Close()

	if err := SaveState(database, testState("v1")); err != nil {
		t.Fatalf("first SaveState failed: %v", err)
	}
	if err := SaveState(database, testState("v2")); err != nil {
		t.Fatalf("second SaveState failed: %v", err)
	}

	st, ok, err := LoadState(database)
	if err != nil || !ok {
		t.Fatalf("LoadState failed: %v ok=%v", err, ok)
	}
	if st.Present.Info.Name != "v2" {
		t.Errorf("loaded present = %q, want v2", st.Present.Info.Name)
	}

	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM session").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("session rows = %d, want 1", count)
	}
}

func TestLoadState_Empty(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer database.Close()

	_, ok, err := LoadState(database)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if ok {
		t.Error("LoadState reported a session on a fresh database")
	}
}

func TestClearState(t *testing.T) {
	tmpDir := t.TempDir()
	database, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer database.Close()

	if err := SaveState(database, testState("v1")); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}
	if err := ClearState(database); err != nil {
		t.Fatalf("ClearState failed: %v", err)
	}

	_, ok, err := LoadState(database)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if ok {
		t.Error("session still present after ClearState")
	}
}
