package data

import "sort"

// OtherBucket is the catch-all label for genres outside the top-k set.
const OtherBucket = "Other"

// TopKGenres is the shared bucket count. Every view buckets with the same k
// so that "Other" means the same thing everywhere.
const TopKGenres = 10

// TopGenres returns the k most frequent TopGenre labels among the given
// tracks, most frequent first. Ties break by first encounter in dataset
// order, which keeps the result stable for a fixed dataset.
func TopGenres(tracks []TrackRecord, k int) []string {
	counts := map[string]int{}
	var order []string
	for _, t := range tracks {
		if _, seen := counts[t.TopGenre]; !seen {
			order = append(order, t.TopGenre)
		}
		counts[t.TopGenre]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > k {
		order = order[:k]
	}
	return order
}

// Bucket maps a genre label into the top-k set, or OtherBucket if it isn't
// there.
func Bucket(label string, top []string) string {
	for _, t := range top {
		if t == label {
			return label
		}
	}
	return OtherBucket
}
