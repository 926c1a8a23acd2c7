package main

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/xtding233/card-detail/internal/card"
	"github.com/xtding233/card-detail/internal/detail"
	"github.com/xtding233/card-detail/internal/game"
	"github.com/xtding233/card-detail/internal/selection"
	"github.com/xtding233/card-detail/internal/stats"
)

const maxBody = 1 << 20

type app struct {
	store *game.Store
	pool  *card.Pool
	log   *slog.Logger
}

type errResp struct {
	Err string `json:"err"`
}

type progressResp struct {
	Attribute stats.Attribute `json:"attribute"`
	Value     int             `json:"value"`
	Percent   float64         `json:"percent"`
}

func (a *app) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cards", a.handleCards)
	mux.HandleFunc("GET /card", a.handleCard)
	mux.HandleFunc("POST /card/detail", a.handleDetail)
	mux.HandleFunc("GET /progress", a.handleProgress)
	mux.HandleFunc("GET /max_stats", a.handleMaxStats)
	return mux
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errResp{Err: msg})
}

func parseInt(r *http.Request, key string) (int, bool, string) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, ""
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, "invalid " + key
	}
	return v, true, ""
}

func parseTier(r *http.Request) (card.Tier, string) {
	n, ok, msg := parseInt(r, "tier")
	if msg != "" {
		return 0, msg
	}
	if !ok {
		return card.Level1, ""
	}
	if !card.Tier(n).Valid() {
		return 0, "tier must be 0, 1 or 2"
	}
	return card.Tier(n), ""
}

// currentMax returns nil when no snapshot is loaded; detail views then omit stats.
func (a *app) currentMax() stats.GameMaxStats {
	m, err := a.store.MaxStats()
	if err != nil {
		return nil
	}
	return m
}

func (a *app) render(w http.ResponseWriter, rec *card.Record, tier card.Tier) {
	v, err := detail.Build(rec, a.currentMax(), detail.Options{Tier: tier, Logger: a.log})
	if err != nil {
		if errors.Is(err, selection.ErrTierUnavailable) || errors.Is(err, card.ErrNilCard) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (a *app) handleCards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ids": a.pool.IDs(), "count": a.pool.Len()})
}

// pool card by id
func (a *app) handleCard(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeErr(w, http.StatusBadRequest, "missing param id")
		return
	}
	tier, msg := parseTier(r)
	if msg != "" {
		writeErr(w, http.StatusBadRequest, msg)
		return
	}
	rec, err := a.pool.Get(card.GameID(id))
	if err != nil {
		writeErr(w, http.StatusNotFound, err.Error())
		return
	}
	a.render(w, rec, tier)
}

// card supplied in the body
func (a *app) handleDetail(w http.ResponseWriter, r *http.Request) {
	tier, msg := parseTier(r)
	if msg != "" {
		writeErr(w, http.StatusBadRequest, msg)
		return
	}
	var rec card.Record
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&rec); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid card: "+err.Error())
		return
	}
	a.render(w, &rec, tier)
}

func (a *app) handleProgress(w http.ResponseWriter, r *http.Request) {
	attr := stats.Attribute(r.URL.Query().Get("attr"))
	if attr.Index() < 0 {
		writeErr(w, http.StatusBadRequest, "attr must be Smile, Pure or Cool")
		return
	}
	value, ok, msg := parseInt(r, "value")
	if !ok || value < 0 {
		if msg == "" {
			msg = "missing/invalid param value"
		}
		writeErr(w, http.StatusBadRequest, msg)
		return
	}
	m, err := a.store.MaxStats()
	if err != nil {
		writeErr(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	pct, err := stats.Progress(attr, value, m.Vector())
	if err != nil {
		writeErr(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, progressResp{Attribute: attr, Value: value, Percent: pct})
}

func (a *app) handleMaxStats(w http.ResponseWriter, r *http.Request) {
	snap, ok := a.store.Current()
	if !ok {
		writeErr(w, http.StatusServiceUnavailable, "no max stats snapshot loaded")
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
