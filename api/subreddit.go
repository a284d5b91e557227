package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

type SubredditService struct {
	client *Client
}

// ValidateCommunity makes sure the name only consists of ASCII letters, digits and underscores,
// so it can't be used to point the request anywhere but the listing endpoint.
func ValidateCommunity(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty community name", ErrInvalidInput)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		default:
			return fmt.Errorf("%w: community name %q contains %q", ErrInvalidInput, name, c)
		}
	}
	return nil
}

// GetTop fetches the top posts of the community. Posts are returned exactly as reddit
// listed them, no filtering is done here. The limit is expected to be range-checked by the caller.
func (s *SubredditService) GetTop(ctx context.Context, community string, limit int) ([]Post, error) {
	if err := ValidateCommunity(community); err != nil {
		return nil, err
	}

	res, err := s.client.Get(ctx, s.client.TopURL(community, limit))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{StatusCode: res.StatusCode}
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: couldn't read body: %w", ErrParse, err)
	}

	var ps Posts
	if err := json.Unmarshal(b, &ps); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return ps.Posts(), nil
}
