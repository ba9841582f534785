package rankers

import (
	"github.com/ahrav/go-rostrum/internal/domain"
	"github.com/ahrav/go-rostrum/internal/ports"
)

var _ ports.Ranker = (*InstitutionRanker)(nil)

// InstitutionRanker prefers the candidate sharing fewer institutions
// with the subject. When the context carries an institution weight map,
// each shared institution counts with its weight instead of 1, so
// higher-weighted institutions penalize overlap more heavily.
type InstitutionRanker struct{}

// NewInstitutionRanker creates an InstitutionRanker.
func NewInstitutionRanker() *InstitutionRanker { return &InstitutionRanker{} }

// Name returns the ranker identifier.
func (r *InstitutionRanker) Name() string { return "institution" }

// Rank prefers the candidate with the lighter weighted institutional
// overlap against the subject.
func (r *InstitutionRanker) Rank(subject, a, b string, rc domain.RankContext) int {
	subjectInsts := rc.Details[subject].Institutions
	oa := overlapWeight(subjectInsts, rc.Details[a].Institutions, rc.InstitutionWeights)
	ob := overlapWeight(subjectInsts, rc.Details[b].Institutions, rc.InstitutionWeights)
	return threeWay(oa, ob)
}

// Validate implements ports.Ranker; InstitutionRanker has no
// configuration beyond the context's weight map.
func (r *InstitutionRanker) Validate() error { return nil }

// overlapWeight sums the weights of the institutions shared by the two
// lists. A missing weight counts as 1, reducing to plain overlap
// counting when no weight map is configured.
func overlapWeight(xs, ys []string, weights map[string]float64) float64 {
	in := make(map[string]struct{}, len(ys))
	for _, y := range ys {
		in[y] = struct{}{}
	}
	total := 0.0
	for _, x := range xs {
		if _, ok := in[x]; !ok {
			continue
		}
		if w, ok := weights[x]; ok {
			total += w
		} else {
			total++
		}
	}
	return total
}
