package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func previewPost(u string) *Post {
	return &Post{
		Preview: &Preview{Images: []Image{{Source: Source{URL: u, Width: 100, Height: 50}}}},
	}
}

func TestResolveImagePreview(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "external-preview",
			in:   "https://external-preview.redd.it/foo.jpg?width=100&amp;height=50",
			want: "https://i.redd.it/foo.jpg?width=100&height=50",
		},
		{
			name: "external-i",
			in:   "https://external-i.redd.it/bar.png",
			want: "https://i.redd.it/bar.png",
		},
		{
			name: "preview",
			in:   "https://preview.redd.it/baz.png?auto=webp&amp;s=abc",
			want: "https://i.redd.it/baz.png?auto=webp&s=abc",
		},
		{
			name: "already canonical",
			in:   "https://i.redd.it/qux.jpg",
			want: "https://i.redd.it/qux.jpg",
		},
		{
			name: "only first mirror rewritten",
			in:   "https://preview.redd.it/a.png?next=https://preview.redd.it/b.png",
			want: "https://i.redd.it/a.png?next=https://preview.redd.it/b.png",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := previewPost(tt.in).ResolveImage()
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveImageFallthrough(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		post *Post
		want string
		ok   bool
	}{
		{
			name: "external preview falls back to url",
			post: &Post{
				Preview: previewPost("https://external-images.example/external-foo.jpg").Preview,
				URL:     "https://i.imgur.com/direct.jpg",
			},
			want: "https://i.imgur.com/direct.jpg",
			ok:   true,
		},
		{
			name: "external preview falls back to thumbnail",
			post: &Post{
				Preview:   previewPost("https://external-images.example/external-foo.jpg").Preview,
				URL:       "https://example.com/article",
				Thumbnail: "https://b.thumbs.redditmedia.com/t.jpg",
			},
			want: "https://b.thumbs.redditmedia.com/t.jpg",
			ok:   true,
		},
		{
			name: "http scheme mirror is not rewritten and stays external",
			post: previewPost("http://external-preview.redd.it/foo.jpg"),
		},
		{
			name: "empty preview images",
			post: &Post{Preview: &Preview{}, URL: "https://i.redd.it/x.webp"},
			want: "https://i.redd.it/x.webp",
			ok:   true,
		},
		{
			name: "jpeg url",
			post: &Post{URL: "https://example.com/a.jpeg"},
			want: "https://example.com/a.jpeg",
			ok:   true,
		},
		{
			name: "extension is case sensitive",
			post: &Post{URL: "https://example.com/a.JPG", Thumbnail: "self"},
		},
		{
			name: "external url",
			post: &Post{URL: "https://external-i.redd.it/a.png", Thumbnail: "default"},
		},
		{
			name: "external thumbnail",
			post: &Post{URL: "https://example.com", Thumbnail: "https://external-thumbs.example/t.jpg"},
		},
		{
			name: "sentinel thumbnail",
			post: &Post{URL: "https://www.reddit.com/r/x/comments/1/", Thumbnail: "nsfw"},
		},
		{
			name: "nothing at all",
			post: &Post{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := tt.post.ResolveImage()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveImageIdempotent(t *testing.T) {
	t.Parallel()
	posts := []*Post{
		previewPost("https://external-preview.redd.it/foo.jpg?width=100&amp;height=50"),
		previewPost("https://external-images.example/external-foo.jpg"),
		{URL: "https://i.imgur.com/a.png"},
		{Thumbnail: "https://b.thumbs.redditmedia.com/t.jpg"},
		{},
	}
	for _, p := range posts {
		u1, ok1 := p.ResolveImage()
		u2, ok2 := p.ResolveImage()
		assert.Equal(t, u1, u2)
		assert.Equal(t, ok1, ok2)
	}
}

func TestHasSecureMedia(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want bool
	}{
		{in: `{}`, want: false},
		{in: `{"secure_media": null}`, want: false},
		{in: `{"secure_media": {}}`, want: true},
		{in: `{"secure_media": {"type": "youtube.com"}}`, want: true},
		{in: `{"secure_media": {"reddit_video": {"height": 1}}}`, want: true},
	}
	for _, tt := range tests {
		var p Post
		assert.NoError(t, json.Unmarshal([]byte(tt.in), &p))
		assert.Equal(t, tt.want, p.HasSecureMedia(), tt.in)
	}
}
