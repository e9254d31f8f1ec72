package draft

import (
	"errors"
	"fmt"
	"strings"
)

// EvalMethod selects the secondary figure shown next to a team rating.
type EvalMethod int

const (
	EvalAveragePPG EvalMethod = iota
	EvalWeightedPPG
	EvalTotalPoints
)

var EvalMethods = []EvalMethod{EvalAveragePPG, EvalWeightedPPG, EvalTotalPoints}

var ErrUnknownEvalMethod = errors.New("unknown evaluation method")

// ParseEvalMethod accepts the query-string keys. An empty value selects
// EvalAveragePPG, anything else unknown is an error.
func ParseEvalMethod(raw string) (EvalMethod, error) {
	switch strings.TrimSpace(raw) {
	case "", "average_ppg":
		return EvalAveragePPG, nil
	case "weighted_ppg":
		return EvalWeightedPPG, nil
	case "total_points":
		return EvalTotalPoints, nil
	default:
		return EvalAveragePPG, fmt.Errorf("%w: %q", ErrUnknownEvalMethod, raw)
	}
}

// Key is the query-string value.
func (m EvalMethod) Key() string {
	switch m {
	case EvalAveragePPG:
		return "average_ppg"
	case EvalWeightedPPG:
		return "weighted_ppg"
	case EvalTotalPoints:
		return "total_points"
	default:
		return "average_ppg"
	}
}

// Label is the selector option text.
func (m EvalMethod) Label() string {
	switch m {
	case EvalAveragePPG:
		return "Average PPG"
	case EvalWeightedPPG:
		return "PPG × Games"
	case EvalTotalPoints:
		return "Total Points"
	default:
		return "Average PPG"
	}
}

// ColumnTitle heads the secondary metric column.
func (m EvalMethod) ColumnTitle() string {
	switch m {
	case EvalAveragePPG:
		return "PPG"
	case EvalWeightedPPG:
		return "Weighted PPG"
	case EvalTotalPoints:
		return "Total Points"
	default:
		return "PPG"
	}
}

// NeedsGamesPlayed reports whether the metric depends on player snapshots.
func (m EvalMethod) NeedsGamesPlayed() bool {
	switch m {
	case EvalWeightedPPG, EvalTotalPoints:
		return true
	case EvalAveragePPG:
		return false
	default:
		return false
	}
}

// SecondaryMetric picks the figure surfaced for m.
func (a TeamAggregate) SecondaryMetric(m EvalMethod) float64 {
	switch m {
	case EvalAveragePPG:
		return a.AvgPointsPerPick
	case EvalWeightedPPG:
		return a.WeightedPPG
	case EvalTotalPoints:
		return a.TotalPoints
	default:
		return a.AvgPointsPerPick
	}
}
