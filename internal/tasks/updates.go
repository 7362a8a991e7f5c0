package tasks

import (
	"fmt"
)

// ProgressUpdate represents a progress event during a lookup.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number
	Total   int    // Total steps in the lookup
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	FetchShow Phase = iota
	FetchSetlist
	ResolveShowID
	FetchShowSetlist
	Complete
)

// totalSteps counts the updates [LookupEngine.Run] can emit before [Complete].
const totalSteps = 4

func (p Phase) String() string {
	switch p {
	case FetchShow:
		return "fetch_show"
	case FetchSetlist:
		return "fetch_setlist"
	case ResolveShowID:
		return "resolve_show_id"
	case FetchShowSetlist:
		return "fetch_show_setlist"
	case Complete:
		return "complete"
	default:
		return ""
	}
}

func fetchingShowUpdate(date string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchShow,
		Step:    1,
		Total:   totalSteps,
		Message: fmt.Sprintf("Fetching show for %s...", date),
	}
}

func fetchingSetlistUpdate(date string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchSetlist,
		Step:    2,
		Total:   totalSteps,
		Message: fmt.Sprintf("Fetching setlist entries for %s...", date),
	}
}

func resolvingShowIDUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveShowID,
		Step:    3,
		Total:   totalSteps,
		Message: "Resolving show identifier...",
	}
}

func fetchingShowSetlistUpdate(showID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchShowSetlist,
		Step:    4,
		Total:   totalSteps,
		Message: fmt.Sprintf("Fetching full setlist for show %s...", showID),
	}
}

func completeUpdate(result *LookupResult) ProgressUpdate {
	msg := "No show found"
	if result.Show != nil {
		msg = fmt.Sprintf("Found %s, %s", result.Show.Venue, result.Show.Location())
	}
	return ProgressUpdate{
		Phase:   Complete,
		Step:    totalSteps,
		Total:   totalSteps,
		Message: msg,
	}
}
