package entity

import "strings"

// SortOrder represents the ordering of list results over creation time
type SortOrder string

// Sort orders
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Pagination bounds
const (
	DefaultTake = 20
	MaxTake     = 100
)

// NormalizeSort maps a raw sort literal to a SortOrder. Only a
// case-insensitive "asc" selects ascending; everything else, including
// an absent value, falls back to descending.
func NormalizeSort(raw string) SortOrder {
	if strings.EqualFold(raw, string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

// ClampTake coerces a requested page size into [1, MaxTake]. A nil value
// selects the default page size.
func ClampTake(take *int) int {
	if take == nil {
		return DefaultTake
	}
	if *take < 1 {
		return 1
	}
	if *take > MaxTake {
		return MaxTake
	}
	return *take
}

// ClampSkip coerces a requested offset into [0, inf). A nil value selects
// no offset.
func ClampSkip(skip *int) int {
	if skip == nil || *skip < 0 {
		return 0
	}
	return *skip
}
