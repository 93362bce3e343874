package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_QB      Position = "QB"
	POS_RB      Position = "RB"
	POS_WR      Position = "WR"
	POS_TE      Position = "TE"
	POS_K       Position = "K"
	POS_DEF     Position = "DEF"
)

func ParsePosition(pos string) Position {
	pos = strings.ToLower(pos)
	switch pos {
	case "qb":
		return POS_QB
	case "rb":
		return POS_RB
	case "wr":
		return POS_WR
	case "te":
		return POS_TE
	case "k":
		return POS_K
	case "def", "dst":
		return POS_DEF
	default:
		return POS_UNKNOWN
	}
}

// StatFields returns the stat columns the admin console records for a
// player at the given position.
func (p Position) StatFields() []string {
	switch p {
	case POS_QB:
		return []string{"pass_yards", "pass_tds", "interceptions", "rush_yards", "rush_tds"}
	case POS_RB:
		return []string{"rush_yards", "rush_tds", "receptions", "rec_yards", "fumbles"}
	case POS_WR, POS_TE:
		return []string{"receptions", "rec_yards", "rec_tds", "fumbles"}
	case POS_K:
		return []string{"fg_made", "fg_attempts", "xp_made"}
	case POS_DEF:
		return []string{"sacks", "interceptions", "points_allowed"}
	default:
		return nil
	}
}
