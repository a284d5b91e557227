package server

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

const defaultLimit = 10

var (
	ErrMalformedQuery = errors.New("malformed query parameters")
	ErrLimitRange     = errors.New("limit out of range")
)

var validate = validator.New()

// MemeQuery holds the parameters of GET /meme.
type MemeQuery struct {
	Community string `validate:"required"`
	Limit     int    `validate:"min=1,max=50"`
}

// Validate checks that the query meets all validation requirements.
// The community name itself is checked by the api package before any request is made.
func (q *MemeQuery) Validate() error {
	if err := validate.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Field() == "Limit" {
					return fmt.Errorf("%w: %d", ErrLimitRange, q.Limit)
				}
			}
		}
		return fmt.Errorf("%w: %w", ErrMalformedQuery, err)
	}
	return nil
}

// ParseMemeQuery decodes and validates the raw query string.
// Missing name falls back to the given community, missing limit to 10.
func ParseMemeQuery(rawQuery, community string) (MemeQuery, error) {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return MemeQuery{}, fmt.Errorf("%w: %w", ErrMalformedQuery, err)
	}

	q := MemeQuery{
		Community: community,
		Limit:     defaultLimit,
	}

	if name := values.Get("name"); name != "" {
		q.Community = name
	}

	if values.Has("limit") {
		limit, err := strconv.Atoi(values.Get("limit"))
		if err != nil {
			return MemeQuery{}, fmt.Errorf("%w: %w", ErrMalformedQuery, err)
		}
		q.Limit = limit
	}

	if err := q.Validate(); err != nil {
		return MemeQuery{}, err
	}

	return q, nil
}
