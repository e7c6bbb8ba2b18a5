package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Simplici0/printcost/internal/quotes"
)

type quotesViewData struct {
	Query    string
	Quotes   []quotes.Summary
	Archived bool
}

func (s *server) handleQuotesList(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	data := quotesViewData{Query: query, Quotes: []quotes.Summary{}}

	if s.quotes != nil {
		list, err := s.quotes.List(r.Context(), query)
		if err != nil {
			s.log.Error("list quotes failed", "err", err)
			http.Error(w, "failed to load quotes", http.StatusInternalServerError)
			return
		}
		data.Quotes = list
		data.Archived = true
	}

	s.renderTemplate(w, "quotes.html", data)
}

func (s *server) handleQuoteText(w http.ResponseWriter, r *http.Request) {
	q, ok := s.loadQuote(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(quotes.Text(q)))
}

func (s *server) handleQuoteLoad(w http.ResponseWriter, r *http.Request) {
	q, ok := s.loadQuote(w, r)
	if !ok {
		return
	}

	sess := sessionFrom(r)
	sess.Load(q.Input)
	s.metrics.ObserveRecalculation()
	s.respond(w, r, sess, http.StatusOK, q.ID)
}

func (s *server) loadQuote(w http.ResponseWriter, r *http.Request) (quotes.Quote, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid quote id", http.StatusBadRequest)
		return quotes.Quote{}, false
	}
	if s.quotes == nil {
		http.NotFound(w, r)
		return quotes.Quote{}, false
	}

	q, err := s.quotes.Get(r.Context(), id)
	if errors.Is(err, quotes.ErrNotFound) {
		http.NotFound(w, r)
		return quotes.Quote{}, false
	}
	if err != nil {
		s.log.Error("load quote failed", "id", id, "err", err)
		http.Error(w, "failed to load quote", http.StatusInternalServerError)
		return quotes.Quote{}, false
	}
	return q, true
}
