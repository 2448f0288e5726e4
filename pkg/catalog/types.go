// Package catalog defines the event catalog data model and the controller
// that drives filtered, paginated queries against the club server.
package catalog

// Status enumerates the lifecycle states an event can be in.
type Status string

const (
	StatusConfirmed Status = "Confirmed"
	StatusPending   Status = "Pending"
	StatusCancelled Status = "Cancelled"
)

// ActivityType labels one kind of club activity ("alpinisme", "ski"...).
// The same shape is reused for event types and makes the rendering code
// shareable, matching the service's schema.
type ActivityType struct {
	ID    int    `json:"id"`
	Short string `json:"short"`
	Name  string `json:"name"`
}

// Leader identifies one event leader as shown on catalog cards.
type Leader struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	AvatarURI string `json:"avatar_uri"`
}

// EventSummary is one catalog row as returned by the events endpoint.
type EventSummary struct {
	ID    int       `json:"id"`
	Title string    `json:"title"`
	Start Timestamp `json:"start"`
	End   Timestamp `json:"end"`

	// DateRange is the server-formatted display range for the card header.
	DateRange string `json:"formated_datetime_range"`

	PhotoURI string `json:"photo_uri"`
	ViewURI  string `json:"view_uri"`

	Status      Status `json:"status"`
	IsConfirmed bool   `json:"is_confirmed"`
	Visibility  string `json:"visibility"`

	ActivityTypes []ActivityType `json:"activity_types"`

	// EventTypes carries a single element by service convention; the list
	// shape mirrors ActivityTypes so display code is shared.
	EventTypes []ActivityType `json:"event_types"`

	Tags    []Tag    `json:"tags"`
	Leaders []Leader `json:"leaders"`

	NumSlots       int `json:"num_slots"`
	NumOnlineSlots int `json:"num_online_slots"`
	FreeSlots      int `json:"free_slots"`
	OccupiedSlots  int `json:"occupied_slots"`

	HasFreeSlots        bool `json:"has_free_slots"`
	HasFreeWaitingSlots bool `json:"has_free_waiting_slots"`
	HasFreeOnlineSlots  bool `json:"has_free_online_slots"`

	RegistrationOpen  Timestamp `json:"registration_open_time"`
	RegistrationClose Timestamp `json:"registration_close_time"`
}

// Tag is one event label ("Mobilité douce", "Formation"...).
type Tag struct {
	ID    int    `json:"id"`
	Short string `json:"short"`
	Name  string `json:"name"`
}

// Badge returns the card badge for the event, or "" when none applies.
// Mirrors the site's card header rules.
func (e EventSummary) Badge() string {
	switch {
	case !e.IsConfirmed:
		return string(e.Status)
	case e.HasFreeWaitingSlots && !e.HasFreeOnlineSlots && e.Status != StatusCancelled:
		return "Liste d'attente"
	case !e.HasFreeSlots && !e.HasFreeWaitingSlots && e.Status != StatusCancelled:
		return "Complet"
	default:
		return ""
	}
}

// EventPage is one page of query results plus the page count the service
// reports for the full query.
type EventPage struct {
	Items    []EventSummary
	LastPage int
}
