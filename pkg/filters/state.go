package filters

import (
	"encoding/json"

	"sorties.club/sorties/pkg/store"
)

// State is the single source of truth for the FilterSet. Selections and the
// cancelled toggle are persisted on every update; title, leader and date are
// query-local and never stored.
type State struct {
	snaps   store.Snapshots
	current FilterSet
}

// snapshot is the persisted subset of a FilterSet, shape-compatible with the
// web frontend's browser-storage value.
type snapshot struct {
	Activities       []int `json:"activities"`
	EventTypes       []int `json:"eventTypes"`
	EventTags        []int `json:"eventTags"`
	DisplayCancelled bool  `json:"displayCancelled"`
}

// NewState creates a filter state backed by the provided snapshot store.
// A nil store disables persistence but keeps the state usable.
func NewState(snaps store.Snapshots) *State {
	s := &State{snaps: snaps}
	s.current = s.Load()
	return s
}

// Load reconciles the persisted snapshot with defaults and returns the
// resolved FilterSet. A missing or malformed snapshot yields the defaults;
// it is never an error.
func (s *State) Load() FilterSet {
	resolved := Defaults()
	if s.snaps == nil {
		s.current = resolved
		return resolved
	}
	data, err := s.snaps.Read(store.KeyFilters)
	if err != nil || len(data) == 0 {
		s.current = resolved
		return resolved
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.current = resolved
		return resolved
	}
	resolved.Activities = cloneIDs(snap.Activities)
	resolved.EventTypes = cloneIDs(snap.EventTypes)
	resolved.EventTags = cloneIDs(snap.EventTags)
	resolved.DisplayCancelled = snap.DisplayCancelled
	s.current = resolved
	return resolved.Clone()
}

// Current returns a copy of the live FilterSet.
func (s *State) Current() FilterSet {
	return s.current.Clone()
}

// Update merges the partial changes into the current FilterSet, persists the
// durable fields, and returns the new FilterSet. Persistence is best-effort:
// a storage failure leaves the in-memory state authoritative.
func (s *State) Update(p Partial) FilterSet {
	s.current = s.current.merge(p)
	s.persist()
	return s.current.Clone()
}

func (s *State) persist() {
	if s.snaps == nil {
		return
	}
	snap := snapshot{
		Activities:       s.current.Activities,
		EventTypes:       s.current.EventTypes,
		EventTags:        s.current.EventTags,
		DisplayCancelled: s.current.DisplayCancelled,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	// Overwrites the previous snapshot; write errors (quota, permissions)
	// are swallowed and the session continues on memory alone.
	_ = s.snaps.Write(store.KeyFilters, data)
}
