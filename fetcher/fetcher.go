// Package fetcher loads the two source CSV files and builds the canonical
// dataset out of them. Both sources are fetched concurrently and joined;
// either source failing fails the whole load, with the error attributed to
// the source that caused it. There is no retry and no partial result.
package fetcher

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ShaokangXie/trackboard/data"
	"github.com/ShaokangXie/trackboard/readthrough"
	"github.com/ShaokangXie/trackboard/request"
	"golang.org/x/sync/errgroup"
)

// A Source names one CSV input: a local file path or an http(s) URL.
type Source struct {
	Name     string
	Location string
}

// A SourceError attributes a load failure to the source that caused it, so
// "load failed" is never ambiguous about which file was the problem.
type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("error loading source '%s': %s", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

type Fetcher struct {
	cache *readthrough.ReadThrough
}

// New returns a Fetcher. With a non-empty cacheDir, remote fetches go through
// an on-disk read-through cache keyed by URL.
func New(cacheDir string) *Fetcher {
	f := &Fetcher{}
	if cacheDir != "" {
		f.cache = readthrough.New(cacheDir, "source-")
	}
	return f
}

// Load fetches both sources concurrently, waits for both, merges primary's
// fields over secondary's, and normalizes each merged row once.
func (f *Fetcher) Load(ctx context.Context, primary, secondary Source) (*data.Dataset, error) {
	var primaryRows, secondaryRows []data.RawRow

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := f.fetchSource(ctx, primary)
		primaryRows = rows
		return err
	})
	g.Go(func() error {
		rows, err := f.fetchSource(ctx, secondary)
		secondaryRows = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return data.Build(primaryRows, secondaryRows), nil
}

func (f *Fetcher) fetchSource(ctx context.Context, src Source) ([]data.RawRow, error) {
	body, err := f.read(ctx, src)
	if err != nil {
		return nil, &SourceError{Source: src.Name, Err: err}
	}
	defer body.Close()

	rows, err := decode(body)
	if err != nil {
		return nil, &SourceError{Source: src.Name, Err: err}
	}
	return rows, nil
}

func (f *Fetcher) read(ctx context.Context, src Source) (io.ReadCloser, error) {
	if !isURL(src.Location) {
		file, err := os.Open(src.Location)
		if err != nil {
			return nil, fmt.Errorf("error opening '%s': %w", src.Location, err)
		}
		return file, nil
	}

	if f.cache != nil {
		if bs, err := f.cache.Get(src.Location); err == nil {
			return io.NopCloser(strings.NewReader(string(bs))), nil
		}
	}

	resp, err := request.FetchCSV(ctx, src.Location)
	if err != nil {
		return nil, err
	}

	if f.cache == nil {
		return resp, nil
	}

	defer resp.Close()
	bs, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("error reading '%s': %w", src.Location, err)
	}
	if err := f.cache.Put(src.Location, bs); err != nil {
		return nil, err
	}
	return io.NopCloser(strings.NewReader(string(bs))), nil
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// decode reads a header-keyed CSV stream into raw rows, preserving the file's
// row order. Cells beyond the header are dropped; short rows just leave their
// trailing columns absent.
func decode(r io.Reader) ([]data.RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty csv file")
	} else if err != nil {
		return nil, fmt.Errorf("error reading csv header: %w", err)
	}

	var rows []data.RawRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("error reading csv row %d: %w", len(rows)+2, err)
		}

		row := make(data.RawRow, len(header))
		for i, cell := range record {
			if i >= len(header) {
				break
			}
			row[header[i]] = cell
		}
		rows = append(rows, row)
	}

	return rows, nil
}
