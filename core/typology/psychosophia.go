package typology

import "github.com/huangsam/typomatch/schema"

// Psychosophia category labels.
const (
	PsychosophiaExtinguishment = "Psychosophia Extinguishment"
	FullEros                   = "Full Eros"
	FullAgape                  = "Full Agape"
	Mirage                     = "Mirage"
	Revision                   = "Revision"
	TherapyAttraction          = "Therapy-Attraction"
	TherapyMisunderstanding    = "Therapy-Misunderstanding"
	ConflictSubmission         = "Conflict Submission/Dominance"
	Neutrality                 = "Neutrality"
)

// PsychosophiaAspects are the four functions in their base order.
var PsychosophiaAspects = []string{"Emotion", "Logic", "Will", "Physics"}

// Psychosophia classifies pairs of function orderings.
type Psychosophia struct {
	vocab vocabulary
	types []string
}

// NewPsychosophia builds the classifier with all 24 orderings.
func NewPsychosophia() *Psychosophia {
	return &Psychosophia{
		vocab: newVocabulary(PsychosophiaAspects),
		types: FormatAll(Permutations(PsychosophiaAspects)),
	}
}

// Name returns the typology name.
func (p *Psychosophia) Name() schema.TypologyName { return schema.Psychosophia }

// AllTypes returns a copy of the valid orderings.
func (p *Psychosophia) AllTypes() []string { return append([]string(nil), p.types...) }

// Relationship evaluates the rules top to bottom and stops at the first hit.
func (p *Psychosophia) Relationship(a, b string) schema.Category {
	x, okA := p.vocab.parse(a)
	y, okB := p.vocab.parse(b)
	if !okA || !okB {
		return schema.Unknown(schema.Psychosophia)
	}
	return schema.NewCategory(schema.Psychosophia, psychosophiaLabel(x, y))
}

func psychosophiaLabel(a, b []string) string {
	if equalSeq(a, b) || sameSet(a[0:2], b[0:2]) {
		return schema.IdentityPhilia
	}
	if isReverse(a, b) {
		return PsychosophiaExtinguishment
	}

	upperToLower := sameSet(a[0:2], b[2:4])
	lowerToUpper := sameSet(a[2:4], b[0:2])
	switch {
	case upperToLower && lowerToUpper:
		return FullEros
	case upperToLower != lowerToUpper:
		return FullAgape
	}

	switch {
	case a[0] == b[1] || a[1] == b[0]:
		return schema.OrderFullOrder
	case a[0] == b[2] && a[2] == b[0]:
		return Mirage
	case a[0] == b[3] && a[3] == b[0]:
		return Revision
	case a[1] == b[2] && a[2] == b[1]:
		return TherapyAttraction
	case (a[1] == b[3] && a[3] != b[1]) || (b[1] == a[3] && b[3] != a[1]):
		return TherapyMisunderstanding
	case (contains(b[2:4], a[0]) && !contains(a[2:4], b[0])) ||
		(contains(a[2:4], b[0]) && !contains(b[2:4], a[0])):
		return ConflictSubmission
	}
	return Neutrality
}

func isReverse(a, b []string) bool {
	for i := range a {
		if a[i] != b[len(b)-1-i] {
			return false
		}
	}
	return true
}

// DefaultScores returns the bundled comfort scores on a -10..10 scale.
func (p *Psychosophia) DefaultScores() schema.ScoreTable {
	return table{
		{schema.IdentityPhilia, 8, "Shared upper block, easy mutual understanding"},
		{PsychosophiaExtinguishment, -8, "Reversed orders, strengths meet weaknesses"},
		{FullEros, 10, "Upper and lower blocks mirror each other"},
		{FullAgape, 7, "One block feeds the other's need"},
		{schema.OrderFullOrder, 6, "Leading functions support each other"},
		{Mirage, 3, "Pleasant but unreliable attraction"},
		{Revision, -5, "One side revises what the other values most"},
		{TherapyAttraction, 5, "Second and third functions heal each other"},
		{TherapyMisunderstanding, -3, "Help offered where it is not wanted"},
		{ConflictSubmission, -6, "One leads where the other is vulnerable"},
		{Neutrality, 0, "No notable interaction"},
	}.build()
}
