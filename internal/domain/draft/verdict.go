package draft

// Verdict is the categorical judgement attached to a draft pick.
type Verdict int

const (
	VerdictUnrated Verdict = iota
	VerdictBust
	VerdictReach
	VerdictFair
	VerdictValue
	VerdictSteal
)

const unratedLabel = "No Verdict"

// Verdicts lists every label accepted on ingestion, best first.
var Verdicts = []Verdict{VerdictSteal, VerdictValue, VerdictFair, VerdictReach, VerdictBust, VerdictUnrated}

// ParseVerdict matches a label exactly. Unknown labels report false and map
// to VerdictUnrated.
func ParseVerdict(label string) (Verdict, bool) {
	switch label {
	case "Steal":
		return VerdictSteal, true
	case "Value":
		return VerdictValue, true
	case "Fair":
		return VerdictFair, true
	case "Reach":
		return VerdictReach, true
	case "Bust":
		return VerdictBust, true
	case unratedLabel:
		return VerdictUnrated, true
	default:
		return VerdictUnrated, false
	}
}

func (v Verdict) String() string {
	switch v {
	case VerdictSteal:
		return "Steal"
	case VerdictValue:
		return "Value"
	case VerdictFair:
		return "Fair"
	case VerdictReach:
		return "Reach"
	case VerdictBust:
		return "Bust"
	case VerdictUnrated:
		return unratedLabel
	default:
		return unratedLabel
	}
}

// Score returns the 0-4 rating for scored verdicts. VerdictUnrated has no
// score and must be left out of averages.
func (v Verdict) Score() (float64, bool) {
	switch v {
	case VerdictSteal:
		return 4, true
	case VerdictValue:
		return 3, true
	case VerdictFair:
		return 2, true
	case VerdictReach:
		return 1, true
	case VerdictBust:
		return 0, true
	case VerdictUnrated:
		return 0, false
	default:
		return 0, false
	}
}

// Style is the badge class used when rendering the verdict.
func (v Verdict) Style() string {
	switch v {
	case VerdictSteal:
		return "bg-purple-100 text-purple-800"
	case VerdictValue:
		return "bg-green-100 text-green-800"
	case VerdictFair:
		return "bg-yellow-100 text-yellow-800"
	case VerdictReach:
		return "bg-red-100 text-red-800"
	case VerdictBust:
		return "bg-gray-800 text-white"
	case VerdictUnrated:
		return "bg-gray-100 text-gray-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}

// Score maps a raw label to its rating. Any label other than the five scored
// verdicts, including "No Verdict" and the empty string, reports false.
func Score(label string) (float64, bool) {
	v, ok := ParseVerdict(label)
	if !ok {
		return 0, false
	}
	return v.Score()
}

// IsKnownLabel reports whether label is one of the six accepted verdicts.
func IsKnownLabel(label string) bool {
	_, ok := ParseVerdict(label)
	return ok
}
