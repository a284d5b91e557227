package server

import (
	"github.com/handsomefox/memeapi/api"
)

// MemeResponse is a single element of the GET /meme response.
type MemeResponse struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Author      string   `json:"author"`
	Over18      bool     `json:"over_18"`
	Thumbnail   string   `json:"thumbnail"`
	Image       *string  `json:"image"`
	CreatedUTC  float64  `json:"created_utc"`
	Ups         int      `json:"ups"`
	Downs       int      `json:"downs"`
	NumComments int      `json:"num_comments"`
	Snippets    []string `json:"snippets"`
	IsVideo     bool     `json:"is_video"`
}

func NewMemeResponse(p *api.Post) MemeResponse {
	res := MemeResponse{
		Title:       p.Title,
		URL:         p.URL,
		Author:      p.Author,
		Over18:      p.Over18,
		Thumbnail:   p.Thumbnail,
		CreatedUTC:  p.CreatedUTC,
		Ups:         p.Ups,
		Downs:       p.Downs,
		NumComments: p.NumComments,
		Snippets:    p.Snippets,
		IsVideo:     p.IsVideo,
	}
	if res.Snippets == nil {
		res.Snippets = []string{}
	}
	if img, ok := p.ResolveImage(); ok {
		res.Image = &img
	}
	return res
}

func NewMemeResponses(posts []api.Post) []MemeResponse {
	res := make([]MemeResponse, 0, len(posts))
	for i := range posts {
		res = append(res, NewMemeResponse(&posts[i]))
	}
	return res
}
