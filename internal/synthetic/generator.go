// Package synthetic generates realistic fan activity data for demos and
// manual testing. The engine itself never depends on this package; its
// tests use fixed fixtures instead.
package synthetic

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/piggybong/fanplan/internal/domain/model"
)

// Generation defaults.
const (
	defaultCount       = 20
	defaultConcertSkew = 0
	defaultSeed        = 42
	defaultWindow      = 30 * 24 * time.Hour

	// explicitCategoryRatio controls how many activities carry an explicit
	// category; the rest exercise the keyword categorizer.
	explicitCategoryRatio = 0.7
)

// defaultArtists is a roster of plausible artists for generated activity.
var defaultArtists = []string{"BTS", "NewJeans", "TWICE", "Stray Kids", "ITZY", "aespa"}

// priceRange bounds the generated amount for one category.
type priceRange struct {
	min, max float64
}

// priceRanges holds per-category amount bands.
var priceRanges = map[model.Category]priceRange{
	model.CategoryConcerts:      {80, 300},
	model.CategoryAlbums:        {15, 50},
	model.CategoryMerch:         {20, 120},
	model.CategoryEvents:        {50, 200},
	model.CategorySubscriptions: {5, 30},
	model.CategoryOther:         {10, 80},
}

// titleTemplates renders a keyword-bearing title per category so implicit
// activities still classify correctly.
var titleTemplates = map[model.Category]string{
	model.CategoryConcerts:      "%s Concert Ticket",
	model.CategoryAlbums:        "%s Latest Album",
	model.CategoryMerch:         "%s Official Merchandise",
	model.CategoryEvents:        "%s Fan Meeting",
	model.CategorySubscriptions: "%s Membership Subscription",
	model.CategoryOther:         "%s Fan Item",
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed fixes the random source for reproducible output.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic data generation, not security
	}
}

// WithCount sets how many base activities to generate.
func WithCount(n int) Option {
	return func(g *Generator) {
		if n >= 0 {
			g.count = n
		}
	}
}

// WithWindow sets the time span the generated timestamps cover.
func WithWindow(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.window = d
		}
	}
}

// WithArtists replaces the artist roster.
func WithArtists(artists []string) Option {
	return func(g *Generator) {
		if len(artists) > 0 {
			g.artists = artists
		}
	}
}

// WithConcertSkew adds extra concert purchases on top of the base count,
// mirroring a concert-heavy user profile.
func WithConcertSkew(n int) Option {
	return func(g *Generator) {
		if n >= 0 {
			g.concertSkew = n
		}
	}
}

// Generator produces synthetic activity snapshots.
type Generator struct {
	artists     []string
	count       int
	concertSkew int
	window      time.Duration
	rng         *rand.Rand
}

// New creates a Generator with a deterministic default seed.
func New(opts ...Option) *Generator {
	g := &Generator{
		artists:     defaultArtists,
		count:       defaultCount,
		concertSkew: defaultConcertSkew,
		window:      defaultWindow,
		rng:         rand.New(rand.NewSource(defaultSeed)), //nolint:gosec // deterministic data generation, not security
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Activities generates the snapshot relative to now. Timestamps fall
// uniformly inside the window; roughly a third of activities omit the
// explicit category so downstream keyword classification gets exercised.
func (g *Generator) Activities(now time.Time) []model.Activity {
	categories := append([]model.Category{}, model.MainCategories...)

	out := make([]model.Activity, 0, g.count+g.concertSkew)
	for i := 0; i < g.count; i++ {
		category := categories[g.rng.Intn(len(categories))]
		out = append(out, g.one(now, category))
	}
	for i := 0; i < g.concertSkew; i++ {
		a := g.one(now, model.CategoryConcerts)
		a.ArtistName = g.artists[0]
		out = append(out, a)
	}
	return out
}

// one builds a single activity for the category.
func (g *Generator) one(now time.Time, category model.Category) model.Activity {
	artist := g.artists[g.rng.Intn(len(g.artists))]
	band := priceRanges[category]

	a := model.Activity{
		ID:         uuid.New().String(),
		ArtistName: artist,
		Title:      fmt.Sprintf(titleTemplates[category], artist),
		Amount:     band.min + g.rng.Float64()*(band.max-band.min),
		Timestamp:  now.Add(-time.Duration(g.rng.Float64() * float64(g.window))),
	}
	if g.rng.Float64() < explicitCategoryRatio {
		a = a.WithCategory(category)
	}
	return a
}
