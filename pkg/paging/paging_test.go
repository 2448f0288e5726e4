package paging

import (
	"errors"
	"testing"
)

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Read(key string) ([]byte, error) {
	data, ok := m.data[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (m *memStore) Write(key string, data []byte) error {
	m.data[key] = append([]byte(nil), data...)
	return nil
}

func (m *memStore) Erase(key string) error {
	delete(m.data, key)
	return nil
}

func TestLoadFragment(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     int
	}{
		{"valid", "#3", 3},
		{"absent", "", 1},
		{"non numeric", "#abc", 1},
		{"zero", "#0", 1},
		{"garbage prefix", "page#7", 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ms := newMemStore()
			if tc.fragment != "" {
				ms.data["location"] = []byte(tc.fragment)
			}
			s := NewState(ms)
			got := s.Current()
			if got.Page != tc.want {
				t.Errorf("page = %d, want %d", got.Page, tc.want)
			}
			if got.PageSize != DefaultPageSize {
				t.Errorf("page size = %d, want %d", got.PageSize, DefaultPageSize)
			}
			if got.First != (got.Page-1)*got.PageSize {
				t.Errorf("offset %d inconsistent with page %d", got.First, got.Page)
			}
		})
	}
}

func TestSetPageClampsToOne(t *testing.T) {
	s := NewState(newMemStore())
	for _, page := range []int{0, -3} {
		got := s.SetPage(page, 25)
		if got.Page != 1 || got.First != 0 {
			t.Errorf("SetPage(%d, 25) = %+v, want page 1 offset 0", page, got)
		}
	}
}

func TestSetPageWritesFragment(t *testing.T) {
	ms := newMemStore()
	s := NewState(ms)
	got := s.SetPage(4, 50)
	if got.Page != 4 || got.PageSize != 50 || got.First != 150 {
		t.Fatalf("SetPage(4, 50) = %+v", got)
	}
	if string(ms.data["location"]) != "#4" {
		t.Errorf("fragment = %q, want %q", ms.data["location"], "#4")
	}

	// A fresh state over the same store restores the page.
	restored := NewState(ms)
	if restored.Current().Page != 4 {
		t.Errorf("restored page = %d, want 4", restored.Current().Page)
	}
}

func TestNilStoreDefaults(t *testing.T) {
	s := NewState(nil)
	if got := s.Current(); got.Page != 1 || got.PageSize != DefaultPageSize {
		t.Errorf("nil-store state = %+v", got)
	}
}
