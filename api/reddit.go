package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	clientTimeout    = 5 * time.Second
	defaultBaseURL   = "https://www.reddit.com"
	defaultUserAgent = "PetrusBot/1.0 (contact: petrus@example.com)"
)

// Client is safe for concurrent use. It is built once at startup and shared between
// all requests so that connections to reddit are reused.
type Client struct {
	Subreddit *SubredditService

	client *http.Client
	base   *url.URL
}

// WithTimeout replaces the request timeout. It must be called before the client is shared.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.client.Timeout = timeout
	return c
}

// WithBaseURL points the client to another host, mostly useful for tests.
func (c *Client) WithBaseURL(u *url.URL) *Client {
	c.base = u
	return c
}

func (c *Client) BaseURL() *url.URL {
	return c.base
}

// Get performs a GET request to the given url with the required headers set.
func (c *Client) Get(ctx context.Context, surl string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, surl, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRequest, err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	return res, nil
}

// TopURL formats the "top" listing url of the community.
// The community name has to be validated beforehand.
func (c *Client) TopURL(community string, limit int) string {
	u := c.base.
		JoinPath("r").
		JoinPath(community).
		JoinPath("top.json")

	values := u.Query()
	values.Set("limit", strconv.Itoa(limit))
	u.RawQuery = values.Encode()

	return u.String()
}

func DefaultClient() *Client {
	baseURL, _ := url.Parse(defaultBaseURL)
	c := &Client{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				TLSNextProto:        map[string]func(authority string, c *tls.Conn) http.RoundTripper{},
				MaxIdleConnsPerHost: 16,
				IdleConnTimeout:     90 * time.Second,
			},
			Timeout: clientTimeout,
		},
		base: baseURL,
	}
	c.Subreddit = &SubredditService{
		client: c,
	}
	return c
}
