package server

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/matzehuels/commitgraph/pkg/buildinfo"
	"github.com/matzehuels/commitgraph/pkg/config"
	"github.com/matzehuels/commitgraph/pkg/errors"
	"github.com/matzehuels/commitgraph/pkg/graph"
	"github.com/matzehuels/commitgraph/pkg/pipeline"
	"github.com/matzehuels/commitgraph/pkg/render/palette"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatPNG
	}

	layout, err := s.layoutFromQuery(q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			s.writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
				Error:     "request body exceeds " + strconv.FormatInt(tooLarge.Limit, 10) + " bytes",
				Code:      string(errors.ErrCodeInvalidInput),
				RequestID: RequestID(r.Context()),
			})
			return
		}
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}

	res, err := s.runner.Execute(r.Context(), pipeline.Options{
		Source:   body,
		Encoding: encodingFor(r.Header.Get("Content-Type")),
		Layout:   layout,
		Formats:  []string{format},
		Logger:   s.logger.With("id", RequestID(r.Context())),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cacheState := "miss"
	if res.CacheInfo.AllHit([]string{format}) {
		cacheState = "hit"
	}
	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.Header().Set("X-Cache", cacheState)
	w.Header().Set("X-Branch-Count", strconv.Itoa(res.Stats.BranchCount))
	w.WriteHeader(http.StatusOK)
	w.Write(res.Artifacts[format])
}

type paletteResponse struct {
	Colors []string `json:"colors"`
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	colors := make([]string, palette.Default.Len())
	for i := range colors {
		colors[i] = palette.Default.Hex(i)
	}
	s.writeJSON(w, http.StatusOK, paletteResponse{Colors: colors})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// layoutFromQuery applies query parameter overrides to the server's layout.
func (s *Server) layoutFromQuery(q url.Values) (config.Layout, error) {
	l := s.layout

	floats := []struct {
		key string
		dst *float64
	}{
		{"step_primary", &l.StepPrimary},
		{"step_lane", &l.StepLane},
		{"dot_radius", &l.DotRadius},
		{"line_width", &l.LineWidth},
		{"scale", &l.Scale},
	}
	for _, f := range floats {
		v := q.Get(f.key)
		if v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return l, errors.Wrap(errors.ErrCodeInvalidConfig, err, "query parameter %s", f.key)
		}
		*f.dst = n
	}
	if v := q.Get("orientation"); v != "" {
		l.Orientation = config.Orientation(v)
	}
	if v := q.Get("scale_rule"); v != "" {
		l.ScaleRule = config.ScaleRule(v)
	}
	if v := q.Get("background"); v != "" {
		l.Background = v
	}
	return l, l.Validate()
}

// encodingFor maps a request content type to an input encoding.
func encodingFor(contentType string) string {
	mt, _, _ := mime.ParseMediaType(contentType)
	switch mt {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return graph.EncodingYAML
	}
	return graph.EncodingJSON
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.IsClientError(err) {
		status = http.StatusBadRequest
	} else {
		s.logger.Error("render failed", "id", RequestID(r.Context()), "error", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	s.writeJSON(w, status, errorResponse{
		Error:     errors.UserMessage(err),
		Code:      string(code),
		RequestID: RequestID(r.Context()),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "error", err)
	}
}
