package postgres

import (
	"database/sql"
	"time"
)

type transactionTableModel struct {
	SnapshotDate       string         `db:"snapshot_date"`
	TransacTeam        sql.NullString `db:"transac_team"`
	TransacDate        time.Time      `db:"transac_date"`
	TransacType        string         `db:"transac_type"`
	PlayerInfo         string         `db:"player_info"`
	RelatedTransaction bool           `db:"related_transaction"`
	TransactionGroupID sql.NullString `db:"transaction_group_id"`
}
