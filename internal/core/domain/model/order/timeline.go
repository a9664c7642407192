package order

import "time"

// SystemActor is recorded as the author of changes made by the service itself.
const SystemActor = "system"

// TimelineEntry records one status change: which status, when, why and by whom.
type TimelineEntry struct {
	status    Status
	timestamp time.Time
	note      string
	updatedBy string
}

// NewTimelineEntry creates an entry. An empty updatedBy is recorded as SystemActor.
func NewTimelineEntry(status Status, timestamp time.Time, note, updatedBy string) TimelineEntry {
	if updatedBy == "" {
		updatedBy = SystemActor
	}
	return TimelineEntry{status: status, timestamp: timestamp, note: note, updatedBy: updatedBy}
}

func (e TimelineEntry) Status() Status { return e.status }
func (e TimelineEntry) Timestamp() time.Time { return e.timestamp }
func (e TimelineEntry) Note() string { return e.note }
func (e TimelineEntry) UpdatedBy() string { return e.updatedBy }
