package server

import (
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"github.com/at-ishikawa/wordoftheday/internal/dailyword"
)

// ServeRSS serves today's word as a single item RSS feed.
func (h *PageHandler) ServeRSS(w http.ResponseWriter, r *http.Request) {
	h.serveFeed(w, r, "application/rss+xml; charset=utf-8", (*feeds.Feed).ToRss)
}

// ServeAtom serves today's word as a single item Atom feed.
func (h *PageHandler) ServeAtom(w http.ResponseWriter, r *http.Request) {
	h.serveFeed(w, r, "application/atom+xml; charset=utf-8", (*feeds.Feed).ToAtom)
}

func (h *PageHandler) serveFeed(w http.ResponseWriter, r *http.Request, contentType string, encode func(*feeds.Feed) (string, error)) {
	record, err := h.resolve(r.Context())
	if err != nil {
		if errors.Is(err, dailyword.ErrConfiguration) {
			http.Error(w, missingAPIKeyMessage, http.StatusServiceUnavailable)
			return
		}
		h.writeResolveError(w, err)
		return
	}

	body, err := encode(newFeed(h.pageURL(r), dailyword.NewPage(record)))
	if err != nil {
		slog.Default().Error("failed to encode a feed", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write([]byte(body))
}

func newFeed(link string, page dailyword.Page) *feeds.Feed {
	published, err := time.Parse(dailyword.DateLayout, page.Date)
	if err != nil {
		published = time.Time{}
	}

	var description strings.Builder
	for i, definition := range page.Definitions {
		if i > 0 {
			description.WriteString("<br>")
		}
		if definition.PartOfSpeech != "" {
			fmt.Fprintf(&description, "<em>%s</em> ", html.EscapeString(definition.PartOfSpeech))
		}
		description.WriteString(html.EscapeString(definition.Text))
	}
	if page.Example != "" {
		fmt.Fprintf(&description, "<blockquote>%s</blockquote>", html.EscapeString(page.Example))
	}

	title := page.Word
	if page.PronunciationDisplay != "" {
		title = page.Word + " " + page.PronunciationDisplay
	}

	return &feeds.Feed{
		Title:       "Word of the Day",
		Link:        &feeds.Link{Href: link},
		Description: "A new word from Wordnik every day",
		Created:     published,
		Items: []*feeds.Item{
			{
				Id:          link + "#" + page.Date,
				Title:       title,
				Link:        &feeds.Link{Href: link},
				Description: description.String(),
				Created:     published,
			},
		},
	}
}

// pageURL returns the configured base URL, or one built from the request.
// Only http and https are taken from X-Forwarded-Proto, and a malformed Host falls back to localhost.
func (h *PageHandler) pageURL(r *http.Request) string {
	if h.baseURL != "" {
		return h.baseURL
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	switch forwarded := strings.ToLower(r.Header.Get("X-Forwarded-Proto")); forwarded {
	case "http", "https":
		scheme = forwarded
	}

	host := r.Host
	if host == "" || strings.ContainsAny(host, "/\\@?#<>\"' ") {
		host = "localhost"
	}
	return scheme + "://" + host + "/"
}
