// Package selection models the dashboard's shared cross-view state: one
// selected heatmap cell (a year/genre pair, always set and cleared together)
// and one hovered track. States are immutable values; transitions return a
// new State, and whoever renders the views owns the single mutable slot that
// holds the current one.
package selection

import "github.com/ShaokangXie/trackboard/data"

// A Cell is one heatmap cell: a release year crossed with a genre bucket
// label (one of the top-k genres, or "Other").
type Cell struct {
	Year  int64  `json:"year"`
	Genre string `json:"genre"`
}

// A State is the coordination state shared by every view. The zero value
// means no selection and no hover.
type State struct {
	Cell      *Cell  `json:"cell"`
	HoveredID string `json:"hoveredId"`
}

// SelectCell applies a heatmap cell click. Clicking the already-selected cell
// toggles the selection off; clicking any other cell moves the selection
// there directly, with no intermediate clear.
func (s State) SelectCell(year int64, genre string) State {
	if s.Cell != nil && s.Cell.Year == year && s.Cell.Genre == genre {
		s.Cell = nil
		return s
	}
	s.Cell = &Cell{Year: year, Genre: genre}
	return s
}

// Hover applies a pointer-enter or pointer-leave. No toggle logic: the last
// write wins, and "" means nothing is hovered.
func (s State) Hover(id string) State {
	s.HoveredID = id
	return s
}

// Matches reports whether a track belongs to the selected cell's subset. With
// no cell selected every track matches. Genre comparison goes through the
// shared bucketing, so selecting "Other" matches the whole long tail; tracks
// without a valid release year never match a cell.
func (s State) Matches(t data.TrackRecord, top []string) bool {
	if s.Cell == nil {
		return true
	}
	if !t.ReleaseYear.Valid || t.ReleaseYear.Int64 != s.Cell.Year {
		return false
	}
	return data.Bucket(t.TopGenre, top) == s.Cell.Genre
}

// Filter recomputes a view's displayed subset from the canonical dataset.
func (s State) Filter(d *data.Dataset, top []string) []data.TrackRecord {
	var out []data.TrackRecord
	for _, t := range d.Tracks {
		if s.Matches(t, top) {
			out = append(out, t)
		}
	}
	return out
}

// Highlighted reports whether a view should emphasize the given track.
func (s State) Highlighted(id string) bool {
	return s.HoveredID != "" && s.HoveredID == id
}
