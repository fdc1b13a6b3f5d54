// Package categorize assigns a spending category to activities that arrive
// without an explicit one, using weighted keyword matching plus contextual
// adjustments.
package categorize

import (
	"strings"
	"time"

	"github.com/piggybong/fanplan/internal/domain/model"
	"github.com/piggybong/fanplan/pkg/metrics"
)

// Tuned scoring constants.
const (
	titleMatchBonus      = 0.5 // fraction of the keyword weight added when the title alone matches
	multiMatchBonus      = 0.5 // added per extra distinct keyword match in the same table
	minWinningScore      = 0.5 // below this the categorizer falls back to merch
	highPriceThreshold   = 100.0
	lowPriceThreshold    = 30.0
	recentActivityWindow = 7 * 24 * time.Hour

	highPriceConcertBoost = 1.0
	highPriceMerchBoost   = 0.5
	lowPriceSubsBoost     = 1.0
	recentEventBoost      = 0.3
	recentAlbumBoost      = 0.3
	knownArtistConcerts   = 0.5
	knownArtistMerch      = 0.3
)

// fallbackCategory is the safe default when no category scores above the
// minimum.
const fallbackCategory = model.CategoryMerch

// Option applies a configuration option to the Categorizer.
type Option func(*Categorizer)

// WithKeywords replaces a category's keyword table. Weights must be
// positive; non-positive entries are dropped.
func WithKeywords(c model.Category, pairs map[string]float64) Option {
	return func(cz *Categorizer) {
		table := make([]keyword, 0, len(pairs))
		for phrase, weight := range pairs {
			if weight > 0 {
				table = append(table, keyword{phrase: strings.ToLower(phrase), weight: weight})
			}
		}
		cz.keywords[c] = table
	}
}

// WithHighProfileArtists replaces the artist allow-list used for contextual
// boosts.
func WithHighProfileArtists(names []string) Option {
	return func(cz *Categorizer) {
		lowered := make([]string, 0, len(names))
		for _, n := range names {
			if n != "" {
				lowered = append(lowered, strings.ToLower(n))
			}
		}
		cz.knownArtists = lowered
	}
}

// Categorizer classifies activities into spending categories. It is
// stateless after construction and safe for concurrent use.
type Categorizer struct {
	keywords     map[model.Category][]keyword
	knownArtists []string
}

// New creates a Categorizer with the default keyword tables.
func New(opts ...Option) *Categorizer {
	cz := &Categorizer{
		keywords:     make(map[model.Category][]keyword, len(categoryKeywords)),
		knownArtists: highProfileArtists,
	}
	for c, table := range categoryKeywords {
		cz.keywords[c] = table
	}
	for _, opt := range opts {
		opt(cz)
	}
	return cz
}

// Categorize resolves the category for an activity. An explicit category is
// honored as-is; otherwise the activity content is scored against every
// keyword table and the best match wins. Ties resolve by the fixed category
// priority order so repeated runs always agree.
func (cz *Categorizer) Categorize(a model.Activity, now time.Time) model.Category {
	if a.Category != nil {
		metrics.RecordActivityCategorized(string(*a.Category), "explicit")
		return *a.Category
	}

	scores := cz.contentScores(a)
	cz.applyContext(scores, a, now)

	best := fallbackCategory
	bestScore := 0.0
	for _, c := range model.MainCategories {
		s := scores[c]
		if s > bestScore {
			best, bestScore = c, s
		}
	}
	if bestScore <= minWinningScore {
		metrics.RecordCategorizationFallback()
		metrics.RecordActivityCategorized(string(fallbackCategory), "fallback")
		return fallbackCategory
	}
	metrics.RecordActivityCategorized(string(best), "keyword")
	return best
}

// contentScores computes the weighted keyword score per category from the
// lowercased title and description.
func (cz *Categorizer) contentScores(a model.Activity) map[model.Category]float64 {
	title := strings.ToLower(a.Title)
	combined := title + " " + strings.ToLower(a.Description)

	scores := make(map[model.Category]float64, len(cz.keywords))
	for c, table := range cz.keywords {
		score := 0.0
		matches := 0
		for _, kw := range table {
			if !strings.Contains(combined, kw.phrase) {
				continue
			}
			matches++
			score += kw.weight
			if strings.Contains(title, kw.phrase) {
				score += kw.weight * titleMatchBonus
			}
		}
		if matches > 1 {
			score += multiMatchBonus * float64(matches-1)
		}
		scores[c] = score
	}
	return scores
}

// applyContext adjusts scores using signals beyond the text: price band,
// activity age, and the artist allow-list.
func (cz *Categorizer) applyContext(scores map[model.Category]float64, a model.Activity, now time.Time) {
	if a.Amount > highPriceThreshold {
		scores[model.CategoryConcerts] += highPriceConcertBoost
		scores[model.CategoryMerch] += highPriceMerchBoost
	} else if a.Amount < lowPriceThreshold {
		scores[model.CategorySubscriptions] += lowPriceSubsBoost
	}

	if now.Sub(a.Timestamp) < recentActivityWindow {
		scores[model.CategoryEvents] += recentEventBoost
		scores[model.CategoryAlbums] += recentAlbumBoost
	}

	artist := strings.ToLower(a.ArtistName)
	if artist == "" {
		return
	}
	for _, known := range cz.knownArtists {
		if strings.Contains(artist, known) {
			scores[model.CategoryConcerts] += knownArtistConcerts
			scores[model.CategoryMerch] += knownArtistMerch
			return
		}
	}
}
