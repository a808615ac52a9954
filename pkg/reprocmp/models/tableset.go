package models

import (
	"encoding/json"

	"github.com/tiendc/go-deepcopy"
)

// TableSet holds a paper's tables in creation order.
type TableSet struct {
	// Order lists table keys, oldest first.
	Order []string `json:"order"`
	// Tables maps table key to table.
	Tables map[string]Table `json:"tables" validate:"dive"`
}

// Len returns the number of tables.
func (s TableSet) Len() int {
	return len(s.Order)
}

// Get returns the table stored under key.
func (s TableSet) Get(key string) (Table, bool) {
	t, ok := s.Tables[key]
	return t, ok
}

// Last returns the most recently added table.
func (s TableSet) Last() (Table, bool) {
	if len(s.Order) == 0 {
		return Table{}, false
	}
	t, ok := s.Tables[s.Order[len(s.Order)-1]]
	return t, ok
}

// List returns the tables in order.
func (s TableSet) List() []Table {
	out := make([]Table, 0, len(s.Order))
	for _, key := range s.Order {
		if t, ok := s.Tables[key]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns a deep copy of s.
func (s TableSet) Clone() (TableSet, error) {
	var out TableSet
	if err := deepcopy.Copy(&out, s); err != nil {
		return TableSet{}, err
	}
	return out, nil
}

// NewTableSet builds a set from tables in the given order.
func NewTableSet(tables ...Table) TableSet {
	s := TableSet{Tables: make(map[string]Table, len(tables))}
	for _, t := range tables {
		if _, ok := s.Tables[t.Key]; !ok {
			s.Order = append(s.Order, t.Key)
		}
		s.Tables[t.Key] = t
	}
	return s
}

// UnmarshalJSON decodes a table set, filling table keys from the map keys and
// reconciling the order list.
func (s *TableSet) UnmarshalJSON(data []byte) error {
	type plain TableSet
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = TableSet(p)
	for key, t := range s.Tables {
		if t.Key == "" {
			t.Key = key
			s.Tables[key] = t
		}
	}
	s.Order = reconcileOrder(s.Order, s.Tables)
	return nil
}
