package models

import "time"

// XPLedger tracks cumulative and weekly experience points.
// Level is always derived from TotalXP and never mutated independently.
type XPLedger struct {
	TotalXP     int
	WeeklyXP    int
	LastGrantAt *time.Time
}

// Level derives the user's level from total XP
func (x *XPLedger) Level() int {
	return x.TotalXP/100 + 1
}
