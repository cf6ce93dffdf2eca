// Package record handles reading score records and extracting the eight
// sub-scores from them.
package record

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/clinmetrics/edss/internal/edss"
	"github.com/clinmetrics/edss/internal/naming"
)

// Record is a flat key/value record as read from an export file. Keys the
// active naming scheme does not mention are ignored.
type Record map[string]string

// File holds a loaded record file with its content hash.
type File struct {
	FilePath string
	Record   Record
	Hash     string
}

// Load reads a record file (a flat JSON object) and computes its SHA-256
// hash. Number, boolean, and null values are stringified; nested objects and
// arrays are rejected.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("record.Load: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("record.Load: parse %s: %w", path, err)
	}
	rec := make(Record, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case string:
			rec[k] = t
		case float64:
			rec[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case bool:
			rec[k] = strconv.FormatBool(t)
		case nil:
			rec[k] = ""
		default:
			return nil, fmt.Errorf("record.Load: field %q: nested values are not supported", k)
		}
	}
	h := sha256.Sum256(data)
	return &File{
		FilePath: path,
		Record:   rec,
		Hash:     fmt.Sprintf("sha256:%x", h),
	}, nil
}

// Extract pulls the eight sub-scores out of a record using the given naming
// scheme and visit suffix. ok is false when any field is absent or empty (an
// incomplete record is an absent result, not an error); an error is returned
// only for a value that does not parse as an integer.
func Extract(rec Record, sch *naming.Scheme, suffix string) (edss.Scores, bool, error) {
	var s edss.Scores
	for _, f := range naming.Fields {
		key := sch.Key(f, suffix)
		v, present := rec[key]
		v = strings.TrimSpace(v)
		if !present || v == "" {
			return edss.Scores{}, false, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return edss.Scores{}, false, fmt.Errorf("record.Extract: field %q: %w", key, err)
		}
		setScore(&s, f, n)
	}
	return s, true, nil
}

func setScore(s *edss.Scores, f naming.Field, n int) {
	switch f {
	case naming.FieldVisual:
		s.Visual = n
	case naming.FieldBrainstem:
		s.Brainstem = n
	case naming.FieldPyramidal:
		s.Pyramidal = n
	case naming.FieldCerebellar:
		s.Cerebellar = n
	case naming.FieldSensory:
		s.Sensory = n
	case naming.FieldBowelBladder:
		s.BowelBladder = n
	case naming.FieldCerebral:
		s.Cerebral = n
	case naming.FieldAmbulation:
		s.Ambulation = n
	}
}
