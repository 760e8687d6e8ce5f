package data

// A RawRow is one record from a source CSV file, keyed by column name. A
// missing key means the source had no value for that column; everything else
// is the cell's original text. RawRows only exist at the ingest boundary --
// Normalize converts them into TrackRecords and nothing downstream of that
// sees one.
type RawRow map[string]string

// Clone copies a RawRow so that merging can't mutate a source row in place.
func (row RawRow) Clone() RawRow {
	out := make(RawRow, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

// Merge combines two ordered sequences of raw rows, keyed by the given column.
// Fields from a override same-key fields from b, but a field present in b and
// absent from the matching a row is retained.
//
// The result is in insertion order: b's keys first, then keys that only appear
// in a. That order matches neither source exactly, and consumers must not
// depend on it.
//
// Rows whose key cell is empty are dropped; the dataset's uniqueness invariant
// has no place for them. A duplicate key within one source keeps its first
// position and its last row's fields.
func Merge(a, b []RawRow, key string) []RawRow {
	index := make(map[string]int, len(b))
	var merged []RawRow

	for _, row := range b {
		id := row[key]
		if id == "" {
			continue
		}
		if i, ok := index[id]; ok {
			merged[i] = row.Clone()
			continue
		}
		index[id] = len(merged)
		merged = append(merged, row.Clone())
	}

	for _, row := range a {
		id := row[key]
		if id == "" {
			continue
		}
		i, ok := index[id]
		if !ok {
			index[id] = len(merged)
			merged = append(merged, row.Clone())
			continue
		}
		for k, v := range row {
			merged[i][k] = v
		}
	}

	return merged
}
