package filters

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

type memStore struct {
	data     map[string][]byte
	failNext bool
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Read(key string) ([]byte, error) {
	data, ok := m.data[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (m *memStore) Write(key string, data []byte) error {
	if m.failNext {
		m.failNext = false
		return errors.New("disk full")
	}
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func (m *memStore) Erase(key string) error {
	delete(m.data, key)
	return nil
}

func ptr[T any](v T) *T { return &v }

func TestLoadDefaultsWhenEmpty(t *testing.T) {
	s := NewState(newMemStore())
	got := s.Load()
	if !reflect.DeepEqual(got, Defaults()) {
		t.Errorf("Load on empty store = %+v, want defaults", got)
	}
}

func TestLoadDefaultsWhenMalformed(t *testing.T) {
	ms := newMemStore()
	ms.data["eventlist-filters"] = []byte(`{"activities": "oops"`)
	s := NewState(ms)
	if got := s.Load(); !reflect.DeepEqual(got, Defaults()) {
		t.Errorf("Load on malformed snapshot = %+v, want defaults", got)
	}
}

func TestUpdatePersistsDurableFieldsOnly(t *testing.T) {
	ms := newMemStore()
	s := NewState(ms)

	got := s.Update(Partial{
		Activities:       ptr([]int{5, 9}),
		Title:            ptr("Trek"),
		DisplayCancelled: ptr(true),
	})
	if got.Title != "Trek" || !got.DisplayCancelled || len(got.Activities) != 2 {
		t.Fatalf("Update result = %+v", got)
	}

	var snap map[string]any
	if err := json.Unmarshal(ms.data["eventlist-filters"], &snap); err != nil {
		t.Fatalf("persisted snapshot unreadable: %v", err)
	}
	if _, ok := snap["title"]; ok {
		t.Error("title must not be persisted")
	}
	if snap["displayCancelled"] != true {
		t.Errorf("displayCancelled not persisted: %v", snap)
	}
}

func TestFilterRoundTrip(t *testing.T) {
	ms := newMemStore()
	first := NewState(ms)
	first.Update(Partial{
		Activities:       ptr([]int{3}),
		EventTypes:       ptr([]int{1, 2}),
		EventTags:        ptr([]int{7}),
		DisplayCancelled: ptr(true),
	})
	want := first.Current()
	want.Title, want.Leader, want.DateFrom = "", "", ""

	// A fresh state over the same store restores the durable fields.
	second := NewState(ms)
	got := second.Load()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("reloaded = %+v, want %+v", got, want)
	}

	// Re-applying the loaded values is a no-op on state and snapshot.
	before := append([]byte(nil), ms.data["eventlist-filters"]...)
	after := second.Update(Partial{
		Activities:       &got.Activities,
		EventTypes:       &got.EventTypes,
		EventTags:        &got.EventTags,
		DisplayCancelled: &got.DisplayCancelled,
	})
	if !reflect.DeepEqual(after, got) {
		t.Errorf("idempotent update changed state: %+v vs %+v", after, got)
	}
	if !reflect.DeepEqual(before, ms.data["eventlist-filters"]) {
		t.Errorf("idempotent update changed snapshot")
	}
}

func TestUpdateSurvivesStorageFailure(t *testing.T) {
	ms := newMemStore()
	s := NewState(ms)
	ms.failNext = true

	got := s.Update(Partial{Leader: ptr("Dupont")})
	if got.Leader != "Dupont" {
		t.Errorf("in-memory state lost on storage failure: %+v", got)
	}
	if got := s.Current(); got.Leader != "Dupont" {
		t.Errorf("Current() = %+v", got)
	}
}

func TestNilStore(t *testing.T) {
	s := NewState(nil)
	got := s.Update(Partial{Title: ptr("Escalade")})
	if got.Title != "Escalade" {
		t.Errorf("nil-store update = %+v", got)
	}
}
