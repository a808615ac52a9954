// Package editor implements the pure state transitions behind the table
// editing form. Every operation returns a new value and leaves its input
// untouched; collections that are not changed are shared with the input.
package editor

import (
	"maps"
	"slices"

	"github.com/ukaji3/reprocmp-go/pkg/reprocmp/models"
)

// AddTable appends a new default table. It is refused while the most recently
// added table has no title.
func AddTable(tables models.TableSet) (models.TableSet, error) {
	if last, ok := tables.Last(); ok && last.Title == "" {
		return tables, NewDraftIncompleteError(KindTable)
	}
	t := models.NewTable()
	next := models.TableSet{
		Order:  append(slices.Clone(tables.Order), t.Key),
		Tables: maps.Clone(tables.Tables),
	}
	if next.Tables == nil {
		next.Tables = make(map[string]models.Table, 1)
	}
	next.Tables[t.Key] = t
	return next, nil
}

// RemoveTable deletes a table and all its data.
func RemoveTable(tables models.TableSet, key string) models.TableSet {
	next := models.TableSet{
		Order:  slices.DeleteFunc(slices.Clone(tables.Order), func(k string) bool { return k == key }),
		Tables: maps.Clone(tables.Tables),
	}
	delete(next.Tables, key)
	return next
}

// UpdateTable replaces the table stored under table.Key.
func UpdateTable(tables models.TableSet, table models.Table) (models.TableSet, error) {
	if _, ok := tables.Tables[table.Key]; !ok {
		return tables, unknownKey(KindTable, table.Key)
	}
	next := models.TableSet{
		Order:  tables.Order,
		Tables: maps.Clone(tables.Tables),
	}
	next.Tables[table.Key] = table
	return next, nil
}

// SetTitle returns table with its title replaced.
func SetTitle(table models.Table, title string) models.Table {
	table.Title = title
	return table
}
