// Package filter is a package that is used to implement functions
// that act upon reddit's posts and filter out
// the ones that can't be shown to the users
// (NSFW, videos, posts without an image).
package filter

import (
	"github.com/rs/zerolog/log"

	"github.com/handsomefox/memeapi/api"
)

// Default returns a slice of the filters included in this package.
func Default() []Filter {
	return []Filter{
		SecureMedia(),
		NSFW(),
		NoImage(),
	}
}

// IsFiltered returns a boolean that indicates whether applying filters to the given post
// indicate that the post is unwanted.
func IsFiltered(post *api.Post, filters ...Filter) bool {
	for _, f := range filters {
		if filtered := f.Filters(post); filtered {
			return true
		}
	}
	return false
}

// Filter is an interface that filters the given post and returns the result of filtering (true/false).
type Filter interface {
	// Filters returns whether the post should be filtered out.
	Filters(*api.Post) bool
}

// DeciderFunc implements filter interface and expects the function to return a boolean.
type DeciderFunc func(*api.Post) bool

func (fn DeciderFunc) Filters(p *api.Post) bool {
	return fn(p)
}

// SecureMedia filters out posts that carry any secure_media, which is usually a video or an embed.
func SecureMedia() DeciderFunc {
	return func(p *api.Post) bool {
		if p.HasSecureMedia() {
			log.Debug().Str("title", p.Title).Msg("filtered out secure_media")
			return true
		}
		return false
	}
}

// NSFW filters out posts marked as over 18.
func NSFW() DeciderFunc {
	return func(p *api.Post) bool {
		if p.Over18 {
			log.Debug().Str("title", p.Title).Msg("filtered out NSFW")
			return true
		}
		return false
	}
}

// NoImage filters out posts without a displayable image.
func NoImage() DeciderFunc {
	return func(p *api.Post) bool {
		if _, ok := p.ResolveImage(); !ok {
			log.Debug().Str("title", p.Title).Msg("filtered out post without image")
			return true
		}
		return false
	}
}
