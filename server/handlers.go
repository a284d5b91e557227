package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/handsomefox/memeapi/api"
	"github.com/handsomefox/memeapi/filter"
)

const (
	homeMessage        = "Petrus API"
	invalidParamsMsg   = "Parâmetros inválidos."
	limitRangeMsg      = "O limite deve estar entre 1 e 50."
	invalidNameMsg     = "Nome de comunidade inválido."
	upstreamFailureMsg = "Falha ao buscar dados do Reddit. Tente novamente mais tarde."
)

// TopFetcher fetches the top posts of a community. *api.SubredditService implements it.
type TopFetcher interface {
	GetTop(ctx context.Context, community string, limit int) ([]api.Post, error)
}

type Handler struct {
	fetcher   TopFetcher
	community string
	filters   []filter.Filter
}

// NewHandler returns a Handler using the default filters.
// community is used whenever the request does not name one.
func NewHandler(fetcher TopFetcher, community string) *Handler {
	return &Handler{
		fetcher:   fetcher,
		community: community,
		filters:   filter.Default(),
	}
}

// Home handles GET /.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, homeMessage)
}

// Memes handles GET /meme.
func (h *Handler) Memes(w http.ResponseWriter, r *http.Request) {
	log := hlog.FromRequest(r)

	q, err := ParseMemeQuery(r.URL.RawQuery, h.community)
	if err != nil {
		log.Debug().Err(err).Msg("rejected query")
		if errors.Is(err, ErrLimitRange) {
			writeText(w, http.StatusBadRequest, limitRangeMsg)
		} else {
			writeText(w, http.StatusBadRequest, invalidParamsMsg)
		}
		return
	}

	posts, err := h.fetcher.GetTop(r.Context(), q.Community, q.Limit)
	if err != nil {
		if errors.Is(err, api.ErrInvalidInput) {
			log.Debug().Err(err).Str("community", q.Community).Msg("rejected community")
			writeText(w, http.StatusBadRequest, invalidNameMsg)
			return
		}

		ev := log.Error().Err(err).Str("community", q.Community).Int("limit", q.Limit)
		var se *api.StatusError
		if errors.As(err, &se) {
			ev = ev.Int("upstream_status", se.StatusCode)
		}
		ev.Msg("failed to fetch posts")

		writeText(w, http.StatusInternalServerError, upstreamFailureMsg)
		return
	}

	posts = filter.Process(posts, h.filters...)
	log.Debug().
		Str("community", q.Community).
		Int("limit", q.Limit).
		Int("returned", len(posts)).
		Msg("served posts")

	writeJSON(w, http.StatusOK, NewMemeResponses(posts))
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		writeText(w, http.StatusInternalServerError, upstreamFailureMsg)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
