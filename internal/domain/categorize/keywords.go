package categorize

import "github.com/piggybong/fanplan/internal/domain/model"

// keyword pairs a matchable phrase with its tuned weight.
type keyword struct {
	phrase string
	weight float64
}

// categoryKeywords holds the per-category keyword tables. Weights are tuned
// constants in the 1.0-3.5 range; longer, more specific phrases carry more
// weight than generic ones.
var categoryKeywords = map[model.Category][]keyword{
	model.CategoryConcerts: {
		{"concert", 3.0}, {"tour", 3.0}, {"show", 2.5}, {"live", 2.0},
		{"ticket", 2.5}, {"venue", 2.0}, {"performance", 2.0}, {"stage", 1.5},
		{"presale", 2.0}, {"vip", 1.5}, {"soundcheck", 2.0}, {"meet & greet", 2.5},
		{"world tour", 3.5}, {"fanmeet", 2.0}, {"showcase", 2.0},
	},
	model.CategoryAlbums: {
		{"album", 3.0}, {"cd", 2.5}, {"vinyl", 2.5}, {"photocard", 3.0},
		{"comeback", 2.5}, {"release", 2.0}, {"pre-order", 2.0}, {"preorder", 2.0},
		{"single", 2.0}, {"ep", 2.0}, {"mini album", 3.0}, {"full album", 3.0},
		{"track", 1.5}, {"song", 1.0}, {"music", 1.0}, {"pc", 2.0},
	},
	model.CategoryMerch: {
		{"merchandise", 3.0}, {"merch", 3.0}, {"lightstick", 3.0}, {"hoodie", 2.5},
		{"shirt", 2.0}, {"poster", 2.0}, {"keychain", 2.0}, {"bag", 2.0},
		{"official", 1.5}, {"limited edition", 2.5}, {"exclusive", 2.0},
		{"collection", 2.0}, {"drop", 2.0}, {"store", 1.5},
	},
	model.CategoryEvents: {
		{"fanmeet", 3.0}, {"fansign", 3.0}, {"kcon", 3.0}, {"convention", 2.5},
		{"hi-touch", 3.0}, {"meet and greet", 3.0}, {"fan event", 3.0},
		{"birthday", 2.0}, {"anniversary", 2.0}, {"debut", 2.0},
		{"vlive", 2.0}, {"live stream", 2.0}, {"instagram live", 2.0},
	},
	model.CategorySubscriptions: {
		{"subscription", 3.0}, {"membership", 3.0}, {"weverse", 2.5}, {"bubble", 2.5},
		{"lysn", 2.5}, {"app", 2.0}, {"platform", 2.0}, {"streaming", 2.0},
		{"digital", 2.0}, {"premium", 2.0}, {"exclusive content", 2.5},
		{"monthly", 1.5}, {"yearly", 1.5},
	},
}

// highProfileArtists is a heuristic allow-list of artists whose purchases
// skew toward concerts and high-value merch.
var highProfileArtists = []string{"bts", "blackpink"}
