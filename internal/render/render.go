// Package render produces text and Markdown output from scoring reports.
package render

import (
	"fmt"
	"strings"

	"github.com/clinmetrics/edss/internal/edss"
)

// systemLabels lists display names for the eight systems in canonical order.
var systemLabels = []string{
	"Visual", "Brainstem", "Pyramidal", "Cerebellar",
	"Sensory", "Bowel/Bladder", "Cerebral", "Ambulation",
}

func systemValues(s edss.Scores) []int {
	return []int{
		s.Visual, s.Brainstem, s.Pyramidal, s.Cerebellar,
		s.Sensory, s.BowelBladder, s.Cerebral, s.Ambulation,
	}
}

// Text renders a report as one plain line per result.
func Text(r *edss.Report) string {
	var b strings.Builder
	for _, res := range r.Results {
		if res.Suffix != "" {
			fmt.Fprintf(&b, "EDSS%s: %s\n", res.Suffix, res.Value)
			continue
		}
		fmt.Fprintf(&b, "EDSS: %s\n", res.Value)
	}
	return b.String()
}

// Markdown renders a report as a Markdown document with one section per
// result.
func Markdown(r *edss.Report) string {
	var b strings.Builder

	b.WriteString("# EDSS Report\n\n")
	fmt.Fprintf(&b, "**Record:** %s (%s)\n", r.RecordFile, r.RecordHash)
	fmt.Fprintf(&b, "**Naming scheme:** %s\n\n", r.Naming)

	for _, res := range r.Results {
		renderResult(&b, res)
	}

	return b.String()
}

func renderResult(b *strings.Builder, res edss.Result) {
	if res.Suffix != "" {
		fmt.Fprintf(b, "## Visit %s\n\n", strings.TrimLeft(res.Suffix, "_-. "))
	}
	fmt.Fprintf(b, "**EDSS:** %s\n", res.Value)
	fmt.Fprintf(b, "**Decided by:** %s\n\n", phaseLabel(res.Phase))

	b.WriteString("| System | Score |\n|---|---|\n")
	values := systemValues(res.Scores)
	for i, label := range systemLabels {
		fmt.Fprintf(b, "| %s | %d |\n", label, values[i])
	}
	b.WriteString("\n")

	if res.Phase == edss.PhaseFunctional {
		fmt.Fprintf(b, "Ranking vector %v, max %d in %d system(s).\n\n",
			res.Normalized, res.Max, res.MaxCount)
	}
}

func phaseLabel(p edss.Phase) string {
	switch p {
	case edss.PhaseAmbulation:
		return "ambulation score"
	case edss.PhaseFunctional:
		return "functional system ranking"
	}
	return string(p)
}
