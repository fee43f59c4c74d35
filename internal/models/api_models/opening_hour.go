package api_models

import (
	"time"

	"trustmap/pkg/utils"
)

// SentinelHourID marks the synthetic record standing in for "fetched, none
// exist" so renderers can tell it apart from a never-fetched empty list.
const SentinelHourID = -1

type OpeningHour struct {
	ID          int    `json:"id"`
	BranchID    FlexID `json:"branchId"`
	DayOfWeek   int    `json:"dayOfWeek"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
	IsClosed    bool   `json:"isClosed"`
}

func (h OpeningHour) IsSentinel() bool { return h.ID == SentinelHourID }

// OpenAt reports whether the branch is open at the given instant according to
// this record. Closing times earlier than opening times span midnight.
func (h OpeningHour) OpenAt(now time.Time) bool {
	if h.IsClosed || h.DayOfWeek != int(now.Weekday()) {
		return false
	}
	open, err := utils.ParseClock(h.OpeningTime)
	if err != nil {
		return false
	}
	closing, err := utils.ParseClock(h.ClosingTime)
	if err != nil {
		return false
	}
	return utils.WithinOpenInterval(now.Hour()*60+now.Minute(), open, closing)
}

// SentinelOpeningHour builds the placeholder record used when the upstream
// reports that a branch has no opening hours defined.
func SentinelOpeningHour(branchID FlexID) OpeningHour {
	return OpeningHour{
		ID:          SentinelHourID,
		BranchID:    branchID,
		DayOfWeek:   int(time.Now().Weekday()),
		OpeningTime: "N/A",
		ClosingTime: "N/A",
		IsClosed:    true,
	}
}
