// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"math"

	"github.com/MKhiriev/booknotes/models"
)

// Aggregate computes the logical-book rollup for a slice of entries sharing
// one ISBN. Every entry counts toward the average, unrated (rating 0)
// entries included, so the figure matches what the SQL GROUP BY rollup
// produces for the same group.
//
// An empty slice yields the zero value.
func Aggregate(entries []models.BookEntry) models.AggregatedBook {
	if len(entries) == 0 {
		return models.AggregatedBook{}
	}

	aggregate := models.AggregatedBook{
		ISBN:        entries[0].ISBN,
		Title:       entries[0].Title,
		Author:      entries[0].Author,
		ReviewCount: len(entries),
	}

	var sum int
	for _, entry := range entries {
		sum += entry.Rating

		if entry.DateRead != nil &&
			(aggregate.LastReviewed == nil || entry.DateRead.After(*aggregate.LastReviewed)) {
			reviewed := *entry.DateRead
			aggregate.LastReviewed = &reviewed
		}
	}

	aggregate.AvgRating = roundRating(float64(sum) / float64(len(entries)))

	return aggregate
}

// roundRating rounds an average rating to one decimal place. Every view of
// an average rating goes through this function.
func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
