package transaction

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const UnknownTeam = "Unknown Team"

// Transaction is one roster move. Rows are append-only.
type Transaction struct {
	SnapshotDate       string
	TransacTeam        *string
	TransacDate        time.Time
	TransacType        string
	PlayerInfo         string
	RelatedTransaction bool
	TransactionGroupID *string
}

// Resolved is a transaction joined to the team name of the newest draft
// snapshot. TeamName is empty when the join found nothing.
type Resolved struct {
	Transaction
	TeamName string
}

// Filter narrows a transaction listing by move type.
type Filter int

const (
	FilterAll Filter = iota
	FilterAdds
	FilterDrops
)

var ErrUnknownFilter = errors.New("unknown transaction filter")

// ParseFilter accepts "", "adds" and "drops".
func ParseFilter(raw string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return FilterAll, nil
	case "adds":
		return FilterAdds, nil
	case "drops":
		return FilterDrops, nil
	default:
		return FilterAll, fmt.Errorf("%w: %q", ErrUnknownFilter, raw)
	}
}

// Key is the query-string value; empty for FilterAll.
func (f Filter) Key() string {
	switch f {
	case FilterAdds:
		return "adds"
	case FilterDrops:
		return "drops"
	case FilterAll:
		return ""
	default:
		return ""
	}
}

// Matches reports whether a transac_type passes the filter. Adds are any
// type ending in ADDED, drops are exactly DROPPED.
func (f Filter) Matches(transacType string) bool {
	switch f {
	case FilterAdds:
		return strings.HasSuffix(transacType, "ADDED")
	case FilterDrops:
		return transacType == "DROPPED"
	case FilterAll:
		return true
	default:
		return true
	}
}

// IsAdd reports whether the move brought a player onto a roster.
func (t Transaction) IsAdd() bool {
	return FilterAdds.Matches(t.TransacType)
}

var ErrInvalidDate = errors.New("invalid transaction date")

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly}

// ParseDate accepts YYYY-MM-DD, a zone-less timestamp or RFC3339 and returns
// the instant in UTC. Zone-less values are read as UTC.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}
