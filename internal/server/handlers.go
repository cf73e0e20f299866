package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"SeasonScope/internal/scan"
	"SeasonScope/internal/seasonality"
	"SeasonScope/internal/store"
)

// errResponse renders an error payload with the right status code.
type errResponse struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *errResponse) Render(_ http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}

func badRequest(msg string) render.Renderer {
	return &errResponse{StatusCode: http.StatusBadRequest, Message: msg}
}

func notFound(msg string) render.Renderer {
	return &errResponse{StatusCode: http.StatusNotFound, Message: msg}
}

func internalError(err error) render.Renderer {
	return &errResponse{StatusCode: http.StatusInternalServerError, Message: err.Error()}
}

// handleSeasonality computes the full engine output for a ticker.
// GET /api/seasonality?ticker=SPY&startYear=2010&excludeCurrent=true
func (s *Server) handleSeasonality(w http.ResponseWriter, r *http.Request) {
	ticker := r.URL.Query().Get("ticker")
	startYearStr := r.URL.Query().Get("startYear")
	if ticker == "" || startYearStr == "" {
		render.Render(w, r, badRequest("missing required query parameters: ticker and startYear"))
		return
	}
	startYear, err := strconv.Atoi(startYearStr)
	if err != nil {
		render.Render(w, r, badRequest("startYear must be an integer"))
		return
	}
	endYear := time.Now().Year()
	if v := r.URL.Query().Get("endYear"); v != "" {
		if endYear, err = strconv.Atoi(v); err != nil {
			render.Render(w, r, badRequest("endYear must be an integer"))
			return
		}
	}
	excludeCurrent, _ := strconv.ParseBool(r.URL.Query().Get("excludeCurrent"))

	closes, err := s.Fetcher.FetchDailyCloses(ticker, startYear)
	if err != nil {
		log.Printf("[ERROR] fetch %s: %v", ticker, err)
		render.Render(w, r, internalError(err))
		return
	}

	out, err := seasonality.Compute(closes, seasonality.Params{
		StartYear:          startYear,
		EndYear:            endYear,
		ExcludeCurrentYear: excludeCurrent,
	})
	if errors.Is(err, seasonality.ErrEmptyInput) {
		render.Render(w, r, notFound(fmt.Sprintf(
			"no data found for ticker %q from %d; it may be an invalid symbol", ticker, startYear)))
		return
	}
	if err != nil {
		render.Render(w, r, internalError(err))
		return
	}
	render.JSON(w, r, out)
}

// rangeRequest is the body of POST /api/seasonality/range. The two
// picks may arrive in either order; the selection state machine
// normalizes them.
type rangeRequest struct {
	Ticker         string `json:"ticker"`
	StartYear      int    `json:"startYear"`
	EndYear        int    `json:"endYear,omitempty"`
	ExcludeCurrent bool   `json:"excludeCurrent,omitempty"`
	PickA          int    `json:"pickA"`
	PickB          int    `json:"pickB"`
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	var req rangeRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		render.Render(w, r, badRequest("invalid JSON body"))
		return
	}
	if req.Ticker == "" || req.StartYear == 0 {
		render.Render(w, r, badRequest("ticker and startYear are required"))
		return
	}
	if req.EndYear == 0 {
		req.EndYear = time.Now().Year()
	}

	var sel seasonality.Selection
	sel.Pick(req.PickA)
	sel.Pick(req.PickB)
	start, end, ok := sel.Range()
	if !ok {
		render.Render(w, r, badRequest("two picks are required"))
		return
	}

	closes, err := s.Fetcher.FetchDailyCloses(req.Ticker, req.StartYear)
	if err != nil {
		log.Printf("[ERROR] fetch %s: %v", req.Ticker, err)
		render.Render(w, r, internalError(err))
		return
	}

	years := seasonality.GroupByYear(closes)
	res, err := seasonality.BuildPaths(years, seasonality.Params{
		StartYear:          req.StartYear,
		EndYear:            req.EndYear,
		ExcludeCurrentYear: req.ExcludeCurrent,
	})
	if errors.Is(err, seasonality.ErrEmptyInput) {
		render.Render(w, r, notFound(fmt.Sprintf("no data found for ticker %q", req.Ticker)))
		return
	}
	if err != nil {
		render.Render(w, r, internalError(err))
		return
	}

	sum, err := seasonality.RangeMetrics(res, years, start, end)
	if errors.Is(err, seasonality.ErrInvalidRange) {
		render.Render(w, r, badRequest(err.Error()))
		return
	}
	if err != nil {
		render.Render(w, r, internalError(err))
		return
	}
	render.JSON(w, r, sum)
}

// handleScan serves filtered entries from the precomputed scan store.
// GET /api/scan/stocks/1m_10y?minWinRate=70&minAvgReturn=1&minYears=5
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	assetClass := chi.URLParam(r, "assetClass")
	cellKey := chi.URLParam(r, "cellKey")

	forward, lookback, err := scan.ParseCellKey(cellKey)
	if err != nil {
		render.Render(w, r, badRequest(err.Error()))
		return
	}

	var f scan.Filter
	q := r.URL.Query()
	if v := q.Get("minWinRate"); v != "" {
		if f.MinWinRate, err = strconv.ParseFloat(v, 64); err != nil {
			render.Render(w, r, badRequest("minWinRate must be a number"))
			return
		}
	}
	if v := q.Get("minAvgReturn"); v != "" {
		if f.MinAvgReturn, err = strconv.ParseFloat(v, 64); err != nil {
			render.Render(w, r, badRequest("minAvgReturn must be a number"))
			return
		}
	}
	if v := q.Get("minYears"); v != "" {
		if f.MinYears, err = strconv.Atoi(v); err != nil {
			render.Render(w, r, badRequest("minYears must be an integer"))
			return
		}
	}

	entries, err := s.Store.QueryCell(store.Cell{
		AssetClass:    assetClass,
		ForwardMonths: forward,
		LookbackYears: lookback,
	})
	if err != nil {
		render.Render(w, r, internalError(err))
		return
	}
	render.JSON(w, r, scan.Apply(entries, f))
}
