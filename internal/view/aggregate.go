package view

import (
	"math"
	"sort"
	"time"
)

// Bucket is one time-bucketed aggregation row. Sum is zero for pure counts.
type Bucket struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Sum   float64 `json:"sum"`
}

// GroupAverage is one categorical-averaging row.
type GroupAverage struct {
	Group   string  `json:"group"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// DayKey buckets a timestamp by calendar day. Missing timestamps are excluded
// from aggregation rather than merged into a default bucket.
func DayKey(t *time.Time) (string, bool) {
	if t == nil {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// MonthKey buckets a timestamp by calendar month.
func MonthKey(t *time.Time) (string, bool) {
	if t == nil {
		return "", false
	}
	return t.Format("2006-01"), true
}

// CountBy counts elements per bucket key, buckets ordered by key ascending.
// Elements whose key function returns false are skipped.
func CountBy[T any](items []T, key func(T) (string, bool)) []Bucket {
	counts := make(map[string]int)
	for _, item := range items {
		k, ok := key(item)
		if !ok {
			continue
		}
		counts[k]++
	}
	return sortedBuckets(counts, nil)
}

// SumBy sums amount(element) per bucket key, buckets ordered by key ascending.
func SumBy[T any](items []T, key func(T) (string, bool), amount func(T) float64) []Bucket {
	counts := make(map[string]int)
	sums := make(map[string]float64)
	for _, item := range items {
		k, ok := key(item)
		if !ok {
			continue
		}
		counts[k]++
		sums[k] += amount(item)
	}
	return sortedBuckets(counts, sums)
}

// AverageBy computes the arithmetic mean of value(element) per group, rounded
// to 2 decimal places, groups ordered by name ascending. Elements without a
// group key are excluded.
func AverageBy[T any](items []T, group func(T) (string, bool), value func(T) float64) []GroupAverage {
	counts := make(map[string]int)
	sums := make(map[string]float64)
	for _, item := range items {
		g, ok := group(item)
		if !ok {
			continue
		}
		counts[g]++
		sums[g] += value(item)
	}

	out := make([]GroupAverage, 0, len(counts))
	for g, n := range counts {
		out = append(out, GroupAverage{
			Group:   g,
			Average: round2(sums[g] / float64(n)),
			Count:   n,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Group < out[j].Group })
	return out
}

func sortedBuckets(counts map[string]int, sums map[string]float64) []Bucket {
	out := make([]Bucket, 0, len(counts))
	for k, n := range counts {
		b := Bucket{Key: k, Count: n}
		if sums != nil {
			b.Sum = sums[k]
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
