package server

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/ShaokangXie/trackboard/data"
	"github.com/ShaokangXie/trackboard/selection"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head><title>trackboard</title></head>
<body>
<h1>trackboard</h1>
<p>{{.Tracks}} tracks loaded, {{len .Buckets}} genre buckets.</p>
<ul>
{{range .Endpoints}}<li><a href="{{.}}">{{.}}</a></li>
{{end}}</ul>
</body>
</html>
`))

func (srv *Server) handleIndex(w http.ResponseWriter, req *http.Request) {
	endpoints := []string{"/api/selection", "/metrics"}
	if srv.views[ViewScatter] {
		endpoints = append(endpoints, "/api/tracks")
	}
	if srv.views[ViewHeatmap] {
		endpoints = append(endpoints, "/api/heatmap")
	}
	if srv.views[ViewParallel] {
		endpoints = append(endpoints, "/api/parallel")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, map[string]interface{}{
		"Tracks":    srv.dataset.Len(),
		"Buckets":   srv.top,
		"Endpoints": endpoints,
	}); err != nil {
		log.Printf("error rendering index: %s", err)
	}
}

// A scatterPoint is one mark in the scatter view: follower reach against
// track popularity, colored by genre bucket.
type scatterPoint struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Artist       string   `json:"artist"`
	Popularity   int64    `json:"popularity"`
	FollowersLog float64  `json:"followersLog"`
	Genre        string   `json:"genre"`
	Year         *int64   `json:"year"`
	DurationMin  *float64 `json:"durationMin"`
	Explicit     bool     `json:"explicit"`
}

type tracksResponse struct {
	Tracks    []scatterPoint  `json:"tracks"`
	Total     int             `json:"total"`
	HoveredID string          `json:"hoveredId"`
	Cell      *selection.Cell `json:"cell"`
}

func (srv *Server) handleTracks(w http.ResponseWriter, req *http.Request) {
	state := srv.selection()
	subset := state.Filter(srv.dataset, srv.top)

	resp := tracksResponse{
		Tracks:    make([]scatterPoint, 0, len(subset)),
		Total:     len(subset),
		HoveredID: state.HoveredID,
		Cell:      state.Cell,
	}
	for _, t := range srv.cap(subset) {
		resp.Tracks = append(resp.Tracks, scatterPoint{
			ID:           t.SpotifyID,
			Name:         t.Name,
			Artist:       t.ArtistName,
			Popularity:   t.Popularity,
			FollowersLog: t.FollowersLog,
			Genre:        data.Bucket(t.TopGenre, srv.top),
			Year:         nullInt(t.ReleaseYear.Int64, t.ReleaseYear.Valid),
			DurationMin:  nullFloat(t.DurationMin.Float64, t.DurationMin.Valid),
			Explicit:     t.Explicit,
		})
	}

	writeJSON(w, resp)
}

type heatmapCell struct {
	Year  int64  `json:"year"`
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

type heatmapResponse struct {
	Years    []int64         `json:"years"`
	Genres   []string        `json:"genres"`
	Cells    []heatmapCell   `json:"cells"`
	Selected *selection.Cell `json:"selected"`
}

// handleHeatmap counts tracks per year x genre bucket over the whole dataset.
// The heatmap is the filter's source, so it is never itself filtered. Tracks
// without a valid release year have no row to land in and are left out.
func (srv *Server) handleHeatmap(w http.ResponseWriter, req *http.Request) {
	counts := map[heatmapCell]int{}
	var years []int64
	seenYear := map[int64]bool{}

	for _, t := range srv.dataset.Tracks {
		if !t.ReleaseYear.Valid {
			continue
		}
		year := t.ReleaseYear.Int64
		if !seenYear[year] {
			seenYear[year] = true
			years = append(years, year)
		}
		key := heatmapCell{Year: year, Genre: data.Bucket(t.TopGenre, srv.top)}
		counts[key]++
	}

	genres := append(append([]string{}, srv.top...), data.OtherBucket)

	resp := heatmapResponse{
		Years:    years,
		Genres:   genres,
		Cells:    make([]heatmapCell, 0, len(counts)),
		Selected: srv.selection().Cell,
	}
	for _, year := range years {
		for _, genre := range genres {
			key := heatmapCell{Year: year, Genre: genre}
			if count, ok := counts[key]; ok {
				key.Count = count
				resp.Cells = append(resp.Cells, key)
			}
		}
	}

	writeJSON(w, resp)
}

// A parallelRow is one polyline in the parallel-coordinates view.
type parallelRow struct {
	ID               string   `json:"id"`
	Genre            string   `json:"genre"`
	Popularity       int64    `json:"popularity"`
	ArtistPopularity int64    `json:"artistPopularity"`
	FollowersLog     float64  `json:"followersLog"`
	DurationMin      *float64 `json:"durationMin"`
	Year             *int64   `json:"year"`
}

type parallelResponse struct {
	Dimensions []string      `json:"dimensions"`
	Rows       []parallelRow `json:"rows"`
	Total      int           `json:"total"`
	HoveredID  string        `json:"hoveredId"`
}

func (srv *Server) handleParallel(w http.ResponseWriter, req *http.Request) {
	state := srv.selection()
	subset := state.Filter(srv.dataset, srv.top)

	resp := parallelResponse{
		Dimensions: []string{"popularity", "artistPopularity", "followersLog", "durationMin", "year"},
		Rows:       make([]parallelRow, 0, len(subset)),
		Total:      len(subset),
		HoveredID:  state.HoveredID,
	}
	for _, t := range srv.cap(subset) {
		resp.Rows = append(resp.Rows, parallelRow{
			ID:               t.SpotifyID,
			Genre:            data.Bucket(t.TopGenre, srv.top),
			Popularity:       t.Popularity,
			ArtistPopularity: t.ArtistPopularity,
			FollowersLog:     t.FollowersLog,
			DurationMin:      nullFloat(t.DurationMin.Float64, t.DurationMin.Valid),
			Year:             nullInt(t.ReleaseYear.Int64, t.ReleaseYear.Valid),
		})
	}

	writeJSON(w, resp)
}

func (srv *Server) handleGetSelection(w http.ResponseWriter, req *http.Request) {
	writeJSON(w, srv.selection())
}

func (srv *Server) handleSelectCell(w http.ResponseWriter, req *http.Request) {
	var body selection.Cell
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, "bad cell body", http.StatusBadRequest)
		return
	}
	if body.Genre == "" {
		http.Error(w, "cell genre required", http.StatusBadRequest)
		return
	}

	state := srv.transition(func(s selection.State) selection.State {
		return s.SelectCell(body.Year, body.Genre)
	})
	writeJSON(w, state)
}

func (srv *Server) handleHover(w http.ResponseWriter, req *http.Request) {
	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, "bad hover body", http.StatusBadRequest)
		return
	}

	state := srv.transition(func(s selection.State) selection.State {
		return s.Hover(body.ID)
	})
	writeJSON(w, state)
}

// cap bounds a view's rows to the configured sample size.
func (srv *Server) cap(tracks []data.TrackRecord) []data.TrackRecord {
	if srv.sampleCap > 0 && len(tracks) > srv.sampleCap {
		return tracks[:srv.sampleCap]
	}
	return tracks
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error encoding response: %s", err)
	}
}

func nullInt(v int64, valid bool) *int64 {
	if !valid {
		return nil
	}
	return &v
}

func nullFloat(v float64, valid bool) *float64 {
	if !valid {
		return nil
	}
	return &v
}
