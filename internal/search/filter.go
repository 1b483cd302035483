// Package search provides the free-text patient filter. It is a pure
// function over the current collection: no persisted state, recomputed on
// every read, referentially transparent.
package search

import (
	"strings"

	"github.com/medcoreph/clinic-core/internal/clinic"
)

// Patients returns the subsequence of patients whose name or PhilHealth id
// contains term, case-insensitively. An empty or blank term returns the
// full collection in its original order.
func Patients(patients []clinic.Patient, term string) []clinic.Patient {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		out := make([]clinic.Patient, len(patients))
		copy(out, patients)
		return out
	}

	var out []clinic.Patient
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.PhilHealthID), term) {
			out = append(out, p)
		}
	}
	return out
}
