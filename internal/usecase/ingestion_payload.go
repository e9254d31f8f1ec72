package usecase

import (
	"strings"

	"github.com/riskibarqy/draft-ratings/internal/domain/draft"
	"github.com/riskibarqy/draft-ratings/internal/domain/playersnapshot"
	"github.com/riskibarqy/draft-ratings/internal/domain/transaction"
)

// Numeric fields are pointers so "required" rejects absent keys while still
// accepting an explicit zero.

type DraftPicksPayload struct {
	SnapshotTimestamp string            `json:"snapshot_timestamp" validate:"required"`
	AllPicks          []DraftPickRecord `json:"allpicks" validate:"required,min=1,dive"`
}

type DraftPickRecord struct {
	PickNumber                      *int     `json:"pick_number" validate:"required,gt=0"`
	Round                           *int     `json:"round" validate:"required,gt=0"`
	OverallPick                     *int     `json:"overall_pick" validate:"required,gt=0"`
	PlayerID                        *int64   `json:"player_id" validate:"required,gt=0"`
	Season                          *int     `json:"season" validate:"required"`
	Verdict                         string   `json:"verdict" validate:"required,verdict"`
	DraftRoundFantasyPerGameAverage *float64 `json:"draft_round_fantasy_per_game_average" validate:"required"`
	FantasyPointsPerGame            *float64 `json:"fantasy_points_per_game" validate:"required"`
	PlayerName                      string   `json:"player_name" validate:"required"`
	TeamName                        string   `json:"team_name" validate:"required"`
	TeamID                          *int64   `json:"team_id" validate:"required,gt=0"`
}

func (p DraftPicksPayload) toPicks() []draft.Pick {
	out := make([]draft.Pick, 0, len(p.AllPicks))
	for _, rec := range p.AllPicks {
		out = append(out, draft.Pick{
			SnapshotTimestamp:               p.SnapshotTimestamp,
			Season:                          *rec.Season,
			PickNumber:                      *rec.PickNumber,
			Round:                           *rec.Round,
			OverallPick:                     *rec.OverallPick,
			PlayerID:                        *rec.PlayerID,
			PlayerName:                      strings.TrimSpace(rec.PlayerName),
			TeamID:                          *rec.TeamID,
			TeamName:                        strings.TrimSpace(rec.TeamName),
			Verdict:                         rec.Verdict,
			DraftRoundFantasyPerGameAverage: *rec.DraftRoundFantasyPerGameAverage,
			FantasyPointsPerGame:            *rec.FantasyPointsPerGame,
		})
	}
	return out
}

type TransactionsPayload struct {
	SnapshotDate string              `json:"snapshot_date" validate:"required"`
	Transactions []TransactionRecord `json:"transactions" validate:"required,dive"`
}

type TransactionRecord struct {
	TransacTeam        *string `json:"transac_team"`
	TransacDate        string  `json:"transac_date" validate:"required,transacdate"`
	TransacType        string  `json:"transac_type" validate:"required"`
	PlayerInfo         string  `json:"player_info"`
	RelatedTransaction *bool   `json:"related_transaction" validate:"required"`
	TransactionGroupID *string `json:"transaction_group_id"`
}

// toTransactions assumes every transac_date already passed validation.
func (p TransactionsPayload) toTransactions() []transaction.Transaction {
	out := make([]transaction.Transaction, 0, len(p.Transactions))
	for _, rec := range p.Transactions {
		date, _ := transaction.ParseDate(rec.TransacDate)
		out = append(out, transaction.Transaction{
			SnapshotDate:       p.SnapshotDate,
			TransacTeam:        trimmedOrNil(rec.TransacTeam),
			TransacDate:        date,
			TransacType:        strings.TrimSpace(rec.TransacType),
			PlayerInfo:         rec.PlayerInfo,
			RelatedTransaction: *rec.RelatedTransaction,
			TransactionGroupID: trimmedOrNil(rec.TransactionGroupID),
		})
	}
	return out
}

type PlayerSnapshotPayload struct {
	SnapshotDate string                 `json:"snapshot_date" validate:"required,datetime=2006-01-02"`
	PlayerInfo   []PlayerSnapshotRecord `json:"player_info" validate:"required,min=1,dive"`
}

type PlayerSnapshotRecord struct {
	PlayerID         *int64   `json:"PLAYER_ID" validate:"required"`
	PlayerName       string   `json:"PLAYER_NAME" validate:"required"`
	TeamID           *int64   `json:"TEAM_ID"`
	TeamAbbreviation *string  `json:"TEAM_ABBREVIATION"`
	Age              *float64 `json:"AGE" validate:"required"`
	GP               *int     `json:"GP" validate:"required,gte=0"`
	Min              *float64 `json:"MIN" validate:"required"`
	Pts              *float64 `json:"PTS" validate:"required"`
	FGM              *float64 `json:"FGM" validate:"required"`
	FGA              *float64 `json:"FGA" validate:"required"`
	FGPct            *float64 `json:"FG_PCT" validate:"required"`
	FG3M             *float64 `json:"FG3M" validate:"required"`
	FG3A             *float64 `json:"FG3A" validate:"required"`
	FG3Pct           *float64 `json:"FG3_PCT" validate:"required"`
	FTM              *float64 `json:"FTM" validate:"required"`
	FTA              *float64 `json:"FTA" validate:"required"`
	FTPct            *float64 `json:"FT_PCT" validate:"required"`
	Reb              *float64 `json:"REB" validate:"required"`
	Ast              *float64 `json:"AST" validate:"required"`
	Stl              *float64 `json:"STL" validate:"required"`
	Blk              *float64 `json:"BLK" validate:"required"`
	Tov              *float64 `json:"TOV" validate:"required"`
}

func (p PlayerSnapshotPayload) toSnapshots() []playersnapshot.Snapshot {
	out := make([]playersnapshot.Snapshot, 0, len(p.PlayerInfo))
	for _, rec := range p.PlayerInfo {
		out = append(out, playersnapshot.Snapshot{
			SnapshotDate:     p.SnapshotDate,
			PlayerID:         *rec.PlayerID,
			PlayerName:       strings.TrimSpace(rec.PlayerName),
			TeamID:           rec.TeamID,
			TeamAbbreviation: rec.TeamAbbreviation,
			Age:              *rec.Age,
			GP:               *rec.GP,
			Min:              *rec.Min,
			Pts:              *rec.Pts,
			FGM:              *rec.FGM,
			FGA:              *rec.FGA,
			FGPct:            *rec.FGPct,
			FG3M:             *rec.FG3M,
			FG3A:             *rec.FG3A,
			FG3Pct:           *rec.FG3Pct,
			FTM:              *rec.FTM,
			FTA:              *rec.FTA,
			FTPct:            *rec.FTPct,
			Reb:              *rec.Reb,
			Ast:              *rec.Ast,
			Stl:              *rec.Stl,
			Blk:              *rec.Blk,
			Tov:              *rec.Tov,
		})
	}
	return out
}

func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
