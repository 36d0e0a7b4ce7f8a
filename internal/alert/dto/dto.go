package dto

import "time"

type ResolvedAlertFilters struct {
	ResolvedBefore time.Time
	Limit          int
}
