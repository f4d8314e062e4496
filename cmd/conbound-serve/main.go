// Command conbound-serve answers constellation lookups over HTTP from a table
// file written by conbound-gen.
//
//	GET /constellation?ra=<hours>&dec=<degrees>
//	GET /metrics
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"net/http"
	"os"
	"strconv"

	"github.com/go-stdlog/stdlog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heyvito/conbound"
	"github.com/heyvito/conbound/cmd/internal/envflag"
	"github.com/heyvito/conbound/metrics"
)

type lookupResponse struct {
	RA            float64 `json:"ra"`
	Dec           float64 `json:"dec"`
	Constellation string  `json:"constellation"`
	Index         int     `json:"index"`
	BuildID       string  `json:"build_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func main() {
	envflag.Load()

	tablePath := flag.String("table", envflag.String("CONBOUND_TABLE", "out/"+conbound.TableFileName), "table file to serve (CONBOUND_TABLE)")
	addr := flag.String("addr", envflag.String("CONBOUND_ADDR", ":8080"), "listen address (CONBOUND_ADDR)")
	flag.Parse()

	log := stdlog.NewStd(os.Stderr).Named("serve")

	reg := prometheus.NewRegistry()
	metrics.InstallDelegate(newDelegates(reg))

	table, err := conbound.Open(*tablePath)
	if err != nil {
		log.Error(err, "Cannot open table", "path", *tablePath)
		os.Exit(1)
	}
	defer table.Close()
	log.Info("Table opened", "path", *tablePath, "records", table.Len(), "build_id", table.BuildID().String())

	mux := http.NewServeMux()
	mux.Handle("/constellation", lookupHandler(table))
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	log.Info("Listening", "addr", *addr)
	if err = http.ListenAndServe(*addr, mux); err != nil {
		log.Error(err, "Server stopped")
		os.Exit(1)
	}
}

func lookupHandler(table conbound.Table) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
			return
		}
		ra, err := queryFloat(r, "ra", 0, 24)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		dec, err := queryFloat(r, "dec", -90, 90)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		idx := table.FindIndex(ra, dec)
		writeJSON(w, http.StatusOK, lookupResponse{
			RA:            ra,
			Dec:           dec,
			Constellation: conbound.ConstellationName(idx),
			Index:         idx,
			BuildID:       table.BuildID().String(),
		})
	})
}

// queryFloat reads a required numeric query parameter within [lo, hi].
func queryFloat(r *http.Request, name string, lo, hi float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("missing parameter %q", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid parameter %q: %s", name, raw)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid parameter %q: %s", name, raw)
	}
	if v < lo || v > hi {
		return 0, fmt.Errorf("parameter %q out of range [%g, %g]", name, lo, hi)
	}
	return v, nil
}

// writeJSON encodes v before touching w, so encoding failures still yield a
// 500 instead of a truncated response.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed encoding response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}
