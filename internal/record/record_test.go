package record

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clinmetrics/edss/internal/edss"
	"github.com/clinmetrics/edss/internal/naming"
)

func defaultScheme(t *testing.T) *naming.Scheme {
	t.Helper()
	s, err := naming.LoadBuiltin("default")
	if err != nil {
		t.Fatalf("LoadBuiltin(default) failed: %v", err)
	}
	return s
}

func fullRecord() Record {
	return Record{
		"visual":        "1",
		"brainstem":     "2",
		"pyramidal":     "1",
		"cerebellar":    "3",
		"sensory":       "1",
		"bowel_bladder": "4",
		"cerebral":      "2",
		"ambulation":    "1",
	}
}

func TestExtract(t *testing.T) {
	scores, ok, err := Extract(fullRecord(), defaultScheme(t), "")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !ok {
		t.Fatal("Extract reported incomplete for a complete record")
	}
	want := edss.Scores{
		Visual: 1, Brainstem: 2, Pyramidal: 1, Cerebellar: 3,
		Sensory: 1, BowelBladder: 4, Cerebral: 2, Ambulation: 1,
	}
	if scores != want {
		t.Errorf("Extract = %+v, want %+v", scores, want)
	}
}

func TestExtractIncomplete(t *testing.T) {
	t.Run("missing field", func(t *testing.T) {
		rec := fullRecord()
		delete(rec, "sensory")
		_, ok, err := Extract(rec, defaultScheme(t), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected incomplete result for missing field")
		}
	})
	t.Run("empty field", func(t *testing.T) {
		rec := fullRecord()
		rec["cerebral"] = ""
		_, ok, err := Extract(rec, defaultScheme(t), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected incomplete result for empty field")
		}
	})
	t.Run("blank field", func(t *testing.T) {
		rec := fullRecord()
		rec["ambulation"] = "   "
		_, ok, err := Extract(rec, defaultScheme(t), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Error("expected incomplete result for blank field")
		}
	})
}

func TestExtractParseError(t *testing.T) {
	rec := fullRecord()
	rec["pyramidal"] = "two"
	_, _, err := Extract(rec, defaultScheme(t), "")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "pyramidal") {
		t.Errorf("error does not name the offending field: %v", err)
	}
}

func TestExtractTrimsWhitespace(t *testing.T) {
	rec := fullRecord()
	rec["visual"] = " 1 "
	scores, ok, err := Extract(rec, defaultScheme(t), "")
	if err != nil || !ok {
		t.Fatalf("Extract = (ok=%v, err=%v), want complete", ok, err)
	}
	if scores.Visual != 1 {
		t.Errorf("Visual = %d, want 1", scores.Visual)
	}
}

func TestExtractWithSuffix(t *testing.T) {
	rec := Record{}
	for k, v := range fullRecord() {
		rec[k+"_2"] = v
	}
	rec["ambulation_2"] = "4"

	scores, ok, err := Extract(rec, defaultScheme(t), "_2")
	if err != nil || !ok {
		t.Fatalf("Extract = (ok=%v, err=%v), want complete", ok, err)
	}
	if scores.Ambulation != 4 {
		t.Errorf("Ambulation = %d, want 4", scores.Ambulation)
	}

	// Unsuffixed lookup against the same record is incomplete.
	_, ok, err = Extract(rec, defaultScheme(t), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected incomplete result without suffix")
	}
}

func TestExtractLegacyNaming(t *testing.T) {
	sch, err := naming.LoadBuiltin("legacy")
	if err != nil {
		t.Fatalf("LoadBuiltin(legacy) failed: %v", err)
	}
	rec := Record{
		"VIS": "0", "BST": "0", "PYR": "5", "CLL": "0",
		"SEN": "0", "BB": "0", "CER": "0", "AMB": "0",
	}
	scores, ok, err := Extract(rec, sch, "")
	if err != nil || !ok {
		t.Fatalf("Extract = (ok=%v, err=%v), want complete", ok, err)
	}
	if scores.Pyramidal != 5 {
		t.Errorf("Pyramidal = %d, want 5", scores.Pyramidal)
	}
}

func TestExtractIgnoresUnknownKeys(t *testing.T) {
	rec := fullRecord()
	rec["patient_id"] = "P-0042"
	_, ok, err := Extract(rec, defaultScheme(t), "")
	if err != nil || !ok {
		t.Errorf("Extract = (ok=%v, err=%v), want complete", ok, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rec.json")
	content := `{"visual": 1, "brainstem": "2", "note": null, "flag": true}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if f.Record["visual"] != "1" {
		t.Errorf("numeric value = %q, want %q", f.Record["visual"], "1")
	}
	if f.Record["brainstem"] != "2" {
		t.Errorf("string value = %q, want %q", f.Record["brainstem"], "2")
	}
	if f.Record["note"] != "" {
		t.Errorf("null value = %q, want empty", f.Record["note"])
	}
	if f.Record["flag"] != "true" {
		t.Errorf("bool value = %q, want %q", f.Record["flag"], "true")
	}
	if !strings.HasPrefix(f.Hash, "sha256:") {
		t.Errorf("hash = %q, want sha256 prefix", f.Hash)
	}
}

func TestLoadRejectsNested(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rec.json")
	if err := os.WriteFile(path, []byte(`{"scores": {"visual": 1}}`), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for nested value")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
