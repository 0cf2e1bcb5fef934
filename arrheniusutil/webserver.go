/*
Copyright © 2026 the Arrhenius authors.
This file is part of Arrhenius.

Arrhenius is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Arrhenius is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Arrhenius.  If not, see <http://www.gnu.org/licenses/>.
*/

package arrheniusutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/arrhenius"
	"github.com/spatialmodel/arrhenius/render"
)

// Server is a web interface for editing a list of reactions and
// viewing the resulting plot and summary table. Every request that
// reads the results recalculates them from the current reactions.
type Server struct {
	Config  arrhenius.Config
	Options render.Options

	Log logrus.FieldLogger

	mu      sync.Mutex
	session *arrhenius.Session
	mux     *http.ServeMux
}

// NewServer creates a web interface for session.
func NewServer(session *arrhenius.Session, cfg arrhenius.Config, o render.Options) *Server {
	s := &Server{
		Config:  cfg,
		Options: o,
		Log:     logrus.StandardLogger(),
		session: session,
		mux:     http.NewServeMux(),
	}
	session.Log = s.Log
	s.mux.HandleFunc("/", s.indexHandler)
	s.mux.HandleFunc("/api/reactions", s.reactionsHandler)
	s.mux.HandleFunc("/api/reactions/", s.reactionHandler)
	s.mux.HandleFunc("/api/result", s.resultHandler)
	s.mux.HandleFunc("/plot.png", s.plotHandler)
	s.mux.HandleFunc("/table.csv", s.tableHandler)
	s.mux.HandleFunc("/table.xlsx", s.tableHandler)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Log.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).Debug("request")
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe serves the web interface at address.
func (s *Server) ListenAndServe(address string) error {
	s.Log.WithField("address", address).Info("starting web interface")
	return http.ListenAndServe(address, s)
}

// compute recalculates the results from the current reactions.
func (s *Server) compute() (*arrhenius.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Compute(s.Config)
}

func (s *Server) httpError(w http.ResponseWriter, err error, code int) {
	s.Log.WithError(err).WithField("status", code).Warn("request failed")
	http.Error(w, err.Error(), code)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func s2i(s string) (int, error) {
	i64, err := strconv.ParseInt(s, 10, 64)
	return int(i64), err
}

// readReaction decodes a reaction from the request body and checks
// its display hints.
func readReaction(r *http.Request) (arrhenius.ReactionInput, error) {
	var in arrhenius.ReactionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return in, fmt.Errorf("arrheniusutil: invalid reaction: %v", err)
	}
	if err := render.CheckStyle(in.Style); err != nil {
		return in, err
	}
	return in, nil
}

// reactionsHandler lists the reactions (GET) or adds one (POST).
// A POST request without a body adds an empty reaction of the kind
// given by the "kind" query parameter.
func (s *Server) reactionsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.mu.Lock()
		reactions := s.session.Reactions()
		s.mu.Unlock()
		if reactions == nil {
			reactions = []arrhenius.ReactionInput{}
		}
		writeJSON(w, http.StatusOK, reactions)
	case http.MethodPost:
		var i int
		if r.ContentLength == 0 {
			k, err := arrhenius.ParseKind(r.URL.Query().Get("kind"))
			if err != nil {
				s.httpError(w, err, http.StatusBadRequest)
				return
			}
			s.mu.Lock()
			i = s.session.AddEmpty(k)
			s.mu.Unlock()
		} else {
			in, err := readReaction(r)
			if err != nil {
				s.httpError(w, err, http.StatusBadRequest)
				return
			}
			s.mu.Lock()
			i, err = s.session.Add(in)
			s.mu.Unlock()
			if err != nil {
				s.httpError(w, err, http.StatusBadRequest)
				return
			}
		}
		writeJSON(w, http.StatusCreated, map[string]int{"index": i})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// reactionHandler handles requests for a single reaction:
//
//	GET, PUT, DELETE /api/reactions/{i}
//	POST /api/reactions/{i}/channels
//	DELETE /api/reactions/{i}/channels/{j}
//
// Reactions and channels are numbered from zero.
func (s *Server) reactionHandler(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/reactions/"), "/"), "/")
	i, err := s2i(parts[0])
	if err != nil {
		s.httpError(w, fmt.Errorf("arrheniusutil: invalid reaction index '%s'", parts[0]), http.StatusNotFound)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		in, err := s.session.Reaction(i)
		if err != nil {
			s.httpError(w, err, http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, in)
	case len(parts) == 1 && r.Method == http.MethodPut:
		in, err := readReaction(r)
		if err != nil {
			s.httpError(w, err, http.StatusBadRequest)
			return
		}
		if err := s.session.Update(i, in); err != nil {
			s.httpError(w, err, http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case len(parts) == 1 && r.Method == http.MethodDelete:
		if err := s.session.Remove(i); err != nil {
			s.httpError(w, err, http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case len(parts) == 2 && parts[1] == "channels" && r.Method == http.MethodPost:
		j, err := s.session.AddChannel(i)
		if err != nil {
			s.httpError(w, err, http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]int{"channel": j})
	case len(parts) == 3 && parts[1] == "channels" && r.Method == http.MethodDelete:
		j, err := s2i(parts[2])
		if err != nil {
			s.httpError(w, fmt.Errorf("arrheniusutil: invalid channel index '%s'", parts[2]), http.StatusNotFound)
			return
		}
		if err := s.session.RemoveChannel(i, j); err != nil {
			s.httpError(w, err, http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "not found", http.StatusNotFound)
	}
}

// resultJSON is the JSON representation of a calculation result.
// Non-finite values are represented as null.
type resultJSON struct {
	Empty  bool             `json:"empty"`
	Axis   string           `json:"axis"`
	Series []seriesJSON     `json:"series"`
	XRange arrhenius.Range  `json:"xRange"`
	YRange *arrhenius.Range `json:"yRange"`
	Table  tableJSON        `json:"table"`
	Errors []string         `json:"errors"`
}

type seriesJSON struct {
	Label    string     `json:"label"`
	Reaction int        `json:"reaction"`
	Channel  int        `json:"channel"`
	X        []*float64 `json:"x"`
	Y        []*float64 `json:"y"`
}

type tableJSON struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

func nullable(v []float64) []*float64 {
	o := make([]*float64, len(v))
	for i := range v {
		if !math.IsNaN(v[i]) && !math.IsInf(v[i], 0) {
			o[i] = &v[i]
		}
	}
	return o
}

func newResultJSON(res *arrhenius.Result) resultJSON {
	o := resultJSON{
		Empty:  res.Empty(),
		Axis:   res.Axis.String(),
		Series: []seriesJSON{},
		XRange: res.XRange,
		YRange: res.YRange,
		Table: tableJSON{
			Header: res.Table.Header(),
			Rows:   res.Table.Records(),
		},
		Errors: []string{},
	}
	for _, s := range res.Series {
		o.Series = append(o.Series, seriesJSON{
			Label:    s.Label,
			Reaction: s.Reaction,
			Channel:  s.Channel,
			X:        nullable(s.X),
			Y:        nullable(s.LogK),
		})
	}
	for _, err := range res.Errors {
		o.Errors = append(o.Errors, err.Error())
	}
	return o
}

func (s *Server) resultHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.compute()
	if err != nil {
		s.httpError(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, newResultJSON(res))
}

// errNothingToShow is returned for images and tables when none of the
// reactions are complete.
var errNothingToShow = errors.New("arrheniusutil: nothing to show yet")

func (s *Server) plotHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.compute()
	if err != nil {
		s.httpError(w, err, http.StatusInternalServerError)
		return
	}
	if res.Empty() {
		http.Error(w, errNothingToShow.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := render.WriteTo(w, res, s.Options, "png"); err != nil {
		s.httpError(w, err, http.StatusInternalServerError)
	}
}

func (s *Server) tableHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.compute()
	if err != nil {
		s.httpError(w, err, http.StatusInternalServerError)
		return
	}
	if res.Empty() {
		http.Error(w, errNothingToShow.Error(), http.StatusNotFound)
		return
	}
	if strings.HasSuffix(r.URL.Path, ".xlsx") {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="rate_constants.xlsx"`)
		err = res.Table.WriteXLSX(w)
	} else {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="rate_constants.csv"`)
		err = res.Table.WriteCSV(w)
	}
	if err != nil {
		s.httpError(w, err, http.StatusInternalServerError)
	}
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	res, err := s.compute()
	if err != nil {
		s.httpError(w, err, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, struct {
		Version string
		Config  arrhenius.Config
		Result  *arrhenius.Result
	}{arrhenius.Version, s.Config, res}); err != nil {
		s.Log.WithError(err).Warn("rendering index page")
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`
<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>Arrhenius</title>
	<style>
		html, body {padding: 0; margin: 2% 0; font-family: sans-serif;}
		.container { max-width: 1000px; margin: 0 auto; padding: 10px; }
		table { border-collapse: collapse; font-size: 85%; }
		td, th { border: 1px solid #bbb; padding: 2px 6px; }
		.error { color: #c35; }
		img { max-width: 100%; }
	</style>
</head>
<body>
<div class="container">
	<h1>Arrhenius</h1>
	<p>
		T = {{.Config.TMin}} to {{.Config.TMax}} K, {{.Config.Points}} points;
		R = {{.Config.GasConstant}}; x axis: {{.Config.Axis}}.
	</p>
	{{range .Result.Errors}}<p class="error">{{.}}</p>{{end}}
	{{if .Result.Empty}}
	<p>Nothing to show yet. Add a reaction with an equation and all three
	rate parameters to see its curve.</p>
	{{else}}
	<img src="/plot.png" alt="rate constant plot">
	<table>
		<tr>{{range .Result.Table.Header}}<th>{{.}}</th>{{end}}</tr>
		{{range .Result.Table.Records}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
	</table>
	<p><a href="/table.csv">Download CSV</a> | <a href="/table.xlsx">Download Excel</a></p>
	{{end}}
	<h2>Add a reaction</h2>
	<form id="add">
		<input name="equation" placeholder="H + O2 = OH + O">
		<input name="A" placeholder="A, e.g. 2.64×10^16">
		<input name="n" placeholder="n">
		<input name="Ea" placeholder="Ea">
		<input name="reference" placeholder="reference">
		<button type="submit">Add</button>
	</form>
	<footer>
		Arrhenius v{{.Version}}
	</footer>
</div>
<script>
document.getElementById("add").addEventListener("submit", e => {
	e.preventDefault();
	let f = new FormData(e.target);
	fetch("/api/reactions", {
		method: "POST",
		body: JSON.stringify({
			equation: f.get("equation"),
			reference: f.get("reference"),
			kind: "single",
			channels: [{A: f.get("A"), n: f.get("n"), Ea: f.get("Ea")}],
		}),
	}).then(res => {
		if (!res.ok) {
			res.text().then(t => alert(t));
			return;
		}
		location.reload();
	});
});
</script>
</body>
</html>`))
