// package api contains the code required to fetch top posts of a community from reddit
// and to pick a displayable image for each of them.
package api

import (
	"encoding/json"
)

// Posts mimics reddit's listing response. Only the fields we use are decoded.
type Posts struct {
	Data struct {
		Children []Child `json:"children"`
	} `json:"data"`
}

type Child struct {
	Data Post `json:"data"`
}

type Post struct {
	Title       string          `json:"title"`
	URL         string          `json:"url"`
	Author      string          `json:"author"`
	Thumbnail   string          `json:"thumbnail"`
	Selftext    string          `json:"selftext"`
	SecureMedia json.RawMessage `json:"secure_media"`
	Preview     *Preview        `json:"preview"`
	CreatedUTC  float64         `json:"created_utc"`
	Ups         int             `json:"ups"`
	Downs       int             `json:"downs"`
	NumComments int             `json:"num_comments"`
	Over18      bool            `json:"over_18"`
	IsVideo     bool            `json:"is_video"`

	// Snippets is derived from Selftext after decoding, it never comes from reddit.
	Snippets []string `json:"-"`
}

type Preview struct {
	Images []Image `json:"images"`
}

type Image struct {
	Source Source `json:"source"`
}

type Source struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// HasSecureMedia reports whether reddit attached any secure_media value to the post.
// The contents are irrelevant, null counts as absent.
func (p *Post) HasSecureMedia() bool {
	return len(p.SecureMedia) != 0 && string(p.SecureMedia) != "null"
}

// Posts returns the posts nested in the listing, in their original order.
func (ps *Posts) Posts() []Post {
	posts := make([]Post, 0, len(ps.Data.Children))
	for _, c := range ps.Data.Children {
		posts = append(posts, c.Data)
	}
	return posts
}
