// Package edss computes Expanded Disability Status Scale values from
// functional system scores.
package edss

// Scores holds the eight raw sub-scores for one assessment. The engine never
// mutates them; compression of the visual and bowel/bladder scores happens on
// a working copy.
type Scores struct {
	Visual       int `json:"visual"`
	Brainstem    int `json:"brainstem"`
	Pyramidal    int `json:"pyramidal"`
	Cerebellar   int `json:"cerebellar"`
	Sensory      int `json:"sensory"`
	BowelBladder int `json:"bowel_bladder"`
	Cerebral     int `json:"cerebral"`
	Ambulation   int `json:"ambulation"`
}

// Phase identifies which half of the decision procedure produced a value.
type Phase string

const (
	// PhaseAmbulation means the ambulation score alone decided the value.
	PhaseAmbulation Phase = "AMBULATION"
	// PhaseFunctional means the value came from ranking the seven
	// functional system scores.
	PhaseFunctional Phase = "FUNCTIONAL"
)

func (p Phase) Valid() bool {
	switch p {
	case PhaseAmbulation, PhaseFunctional:
		return true
	}
	return false
}

// Result is the outcome of one assessment: the scale value plus the ranking
// trace that produced it. Trace fields are zero for Phase-1 results.
type Result struct {
	Value      ScaleValue `json:"value"`
	Phase      Phase      `json:"phase"`
	Scores     Scores     `json:"scores"`
	Normalized []int      `json:"normalized,omitempty"`
	Max        int        `json:"max,omitempty"`
	MaxCount   int        `json:"max_count,omitempty"`
	Suffix     string     `json:"suffix,omitempty"`
}

// Report is the top-level output object for one scored record file. One
// Result per requested visit suffix.
type Report struct {
	Tool       string   `json:"tool"`
	Version    string   `json:"version"`
	RecordFile string   `json:"record_file"`
	RecordHash string   `json:"record_hash"`
	Naming     string   `json:"naming"`
	Results    []Result `json:"results"`
}
