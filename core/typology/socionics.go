package typology

import (
	"fmt"
	"strings"

	"github.com/huangsam/typomatch/schema"
)

// Socionics intertype relation labels.
const (
	Duality        = "Duality"
	Activity       = "Activity"
	Mirror         = "Mirror"
	Kindred        = "Kindred"
	Business       = "Business"
	QuasiIdentity  = "Quasi-Identity"
	Extinguishment = "Extinguishment"
	SuperEgo       = "Super-Ego"
	Conflict       = "Conflict"
	SemiDuality    = "Semi-Duality"
	Illusionary    = "Illusionary"
	Benefit        = "Benefit"
	Request        = "Request"
	Supervisor     = "Supervisor"
	Supervision    = "Supervision"
)

// SocionicsDichotomies generate the 16 types. The last axis decides whether the
// base function is judging (Rational) or perceiving (Irrational).
var SocionicsDichotomies = []Dichotomy{
	{"Extratim", "Introtim"},
	{"Intuitive", "Sensory"},
	{"Logical", "Ethical"},
	{"Rational", "Irrational"},
}

// socionicsNames maps the four-letter cognitive style to the club code and pseudonym.
var socionicsNames = map[string][2]string{
	"ENTp": {"ILE", "Don Quixote"},
	"ISFp": {"SEI", "Dumas"},
	"ESFj": {"ESE", "Hugo"},
	"INTj": {"LII", "Robespierre"},
	"ENFj": {"EIE", "Hamlet"},
	"ISTj": {"LSI", "Maxim Gorky"},
	"ESTp": {"SLE", "Zhukov"},
	"INFp": {"IEI", "Yesenin"},
	"ESFp": {"SEE", "Napoleon"},
	"INTp": {"ILI", "Balzac"},
	"ENTj": {"LIE", "Jack London"},
	"ISFj": {"ESI", "Dreiser"},
	"ESTj": {"LSE", "Stierlitz"},
	"INFj": {"EII", "Dostoevsky"},
	"ENFp": {"IEE", "Huxley"},
	"ISTp": {"SLI", "Gabin"},
}

// relationByPosition keys a relation by where the other type's base and creative
// functions sit in this type's Model A.
var relationByPosition = map[[2]int]string{
	{1, 2}: schema.Identity,
	{5, 6}: Duality,
	{6, 5}: Activity,
	{2, 1}: Mirror,
	{1, 4}: Kindred,
	{3, 2}: Business,
	{8, 7}: QuasiIdentity,
	{7, 8}: Extinguishment,
	{3, 4}: SuperEgo,
	{4, 3}: Conflict,
	{5, 8}: SemiDuality,
	{7, 6}: Illusionary,
	{8, 5}: Benefit,
	{6, 7}: Request,
	{2, 3}: Supervisor,
	{4, 1}: Supervision,
}

// function is an information element with its attitude, e.g. Ne or Ti.
type function struct {
	element   byte // N, S, T or F
	extravert bool
}

var oppositeElement = map[byte]byte{'N': 'S', 'S': 'N', 'T': 'F', 'F': 'T'}

func (f function) swap() function {
	return function{element: oppositeElement[f.element], extravert: f.extravert}
}

func (f function) flip() function {
	return function{element: f.element, extravert: !f.extravert}
}

// socionicsType is one of the 16 types with its Model A.
type socionicsType struct {
	style string // ENTp
	code  string // ILE
	name  string // Don Quixote
	model [8]function
}

func (s socionicsType) label() string {
	return fmt.Sprintf("%s (%s)", s.name, s.code)
}

func (s socionicsType) position(f function) int {
	for i, m := range s.model {
		if m == f {
			return i + 1
		}
	}
	return 0
}

// newSocionicsType derives Model A from the four dichotomy poles.
func newSocionicsType(poles []string) socionicsType {
	extravert := poles[0] == "Extratim"
	perceiving := byte('S')
	if poles[1] == "Intuitive" {
		perceiving = 'N'
	}
	judging := byte('F')
	if poles[2] == "Logical" {
		judging = 'T'
	}
	rational := poles[3] == "Rational"

	style := []byte{'I', perceiving, judging, 'p'}
	if extravert {
		style[0] = 'E'
	}
	base := function{element: perceiving, extravert: extravert}
	creative := function{element: judging, extravert: !extravert}
	if rational {
		style[3] = 'j'
		base.element, creative.element = judging, perceiving
	}

	names := socionicsNames[string(style)]
	return socionicsType{
		style: string(style),
		code:  names[0],
		name:  names[1],
		model: [8]function{
			base,
			creative,
			base.swap(),
			creative.swap(),
			base.swap().flip(),
			creative.swap().flip(),
			base.flip(),
			creative.flip(),
		},
	}
}

// Socionics classifies pairs of the 16 information metabolism types.
type Socionics struct {
	types     []socionicsType
	lookup    map[string]int
	relations map[[2]string]string
}

// NewSocionics builds the 16 types and their full relation table.
func NewSocionics() *Socionics {
	s := &Socionics{lookup: make(map[string]int), relations: make(map[[2]string]string)}
	for i, poles := range Combinations(SocionicsDichotomies) {
		t := newSocionicsType(poles)
		s.types = append(s.types, t)
		s.lookup[strings.ToUpper(t.style)] = i
		s.lookup[t.code] = i
	}
	for _, a := range s.types {
		for _, b := range s.types {
			key := [2]int{a.position(b.model[0]), a.position(b.model[1])}
			if label, ok := relationByPosition[key]; ok {
				s.relations[[2]string{a.style, b.style}] = label
			}
		}
	}
	return s
}

// Name returns the typology name.
func (s *Socionics) Name() schema.TypologyName { return schema.Socionics }

// AllTypes returns the 16 types as "Name (CODE)".
func (s *Socionics) AllTypes() []string {
	out := make([]string, len(s.types))
	for i, t := range s.types {
		out[i] = t.label()
	}
	return out
}

// Relationship looks up the relation of a towards b. Directional relations read
// from a's side: Supervisor means a supervises b.
func (s *Socionics) Relationship(a, b string) schema.Category {
	x, okA := s.resolve(a)
	y, okB := s.resolve(b)
	if !okA || !okB {
		return schema.Unknown(schema.Socionics)
	}
	if x.code == y.code {
		return schema.NewCategory(schema.Socionics, schema.Identity)
	}
	label, ok := s.relations[[2]string{x.style, y.style}]
	if !ok {
		return schema.Unknown(schema.Socionics)
	}
	return schema.NewCategory(schema.Socionics, label)
}

// resolve accepts "Name (CODE)", a club code or a cognitive style code.
func (s *Socionics) resolve(raw string) (socionicsType, bool) {
	code := strings.TrimSpace(raw)
	if open := strings.LastIndex(code, "("); open >= 0 {
		end := strings.LastIndex(code, ")")
		if end < open {
			return socionicsType{}, false
		}
		code = strings.TrimSpace(code[open+1 : end])
	}
	i, ok := s.lookup[strings.ToUpper(code)]
	if !ok {
		return socionicsType{}, false
	}
	return s.types[i], true
}

// DefaultScores returns the bundled comfort scores on a 0-100 scale.
func (s *Socionics) DefaultScores() schema.ScoreTable {
	return table{
		{Duality, 100, "Complete psychological complementarity"},
		{Activity, 90, "Quick mutual activation"},
		{SemiDuality, 80, "Partial complementarity"},
		{Mirror, 75, "Same interests, mutual correction"},
		{schema.Identity, 70, "Full understanding, little help"},
		{Kindred, 65, "Similar views, different methods"},
		{Illusionary, 60, "Seeming complementarity"},
		{Business, 60, "Similar goals, working partnership"},
		{Benefit, 55, "Gives help the other accepts"},
		{Request, 50, "Receives help and looks up to the other"},
		{QuasiIdentity, 45, "Similar on the surface, different inside"},
		{Supervisor, 40, "Watches over the other's weak point"},
		{SuperEgo, 35, "Mutual respect at a distance"},
		{Supervision, 30, "Feels watched and corrected"},
		{Extinguishment, 25, "Same domain, opposite attitude"},
		{Conflict, 10, "Strengths hit the other's weakness"},
	}.build()
}
