// Package preview serves a generated board over HTTP for local checking.
//
// Routes:
//
//	GET /            HTML page showing the SVG, the PNG and the inlined stylesheet
//	GET /board.svg   the SVG asset
//	GET /board.png   the raster preview
//	GET /styles.css  the template stylesheet with the asset inlined
//
// The SVG is rendered once when the handler is built and the PNG on first
// request; the stylesheet template is re-read on every request so edits show
// up on reload.
package preview

import (
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/xqboard/pkg/board"
	"github.com/matzehuels/xqboard/pkg/board/sink"
	"github.com/matzehuels/xqboard/pkg/buildinfo"
	"github.com/matzehuels/xqboard/pkg/cssinline"
	"github.com/matzehuels/xqboard/pkg/errors"
	"github.com/matzehuels/xqboard/pkg/io"
	"github.com/matzehuels/xqboard/pkg/observability"
)

// Options configures the preview handler.
type Options struct {
	Style        board.Style
	SVGOptions   []sink.SVGOption
	AssetPath    string  // names the sentinel in the template
	TemplatePath string  // stylesheet template; empty disables /styles.css
	PNGScale     float64 // defaults to 1
	Logger       *log.Logger
}

type server struct {
	opts   Options
	svg    []byte
	png    func() ([]byte, error)
	logger *log.Logger
}

// NewHandler returns the preview router.
func NewHandler(opts Options) http.Handler {
	if opts.PNGScale <= 0 {
		opts.PNGScale = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &server{
		opts:   opts,
		svg:    sink.RenderSVG(opts.Style, opts.SVGOptions...),
		logger: logger,
	}
	s.png = sync.OnceValues(func() ([]byte, error) {
		return sink.RenderPNG(s.svg, opts.PNGScale)
	})

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/", s.index)
	r.Get("/board.svg", s.boardSVG)
	r.Get("/board.png", s.boardPNG)
	r.Get("/styles.css", s.styles)
	return r
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", buildinfo.Product())
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), ww.BytesWritten(), elapsed)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "bytes", ww.BytesWritten(), "elapsed", elapsed)
	})
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Name}} board</title>
  {{if .Styles}}<link rel="stylesheet" href="/styles.css">{{end}}
  <style>
    body { font-family: sans-serif; display: flex; gap: 2em; flex-wrap: wrap; }
    figure { margin: 0; }
    img { width: 360px; height: 400px; border: 1px solid #ccc; }
  </style>
</head>
<body>
  <figure><img src="/board.svg" alt="SVG board"><figcaption>board.svg</figcaption></figure>
  <figure><img src="/board.png" alt="PNG board"><figcaption>board.png</figcaption></figure>
</body>
</html>
`))

func (s *server) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Name   string
		Styles bool
	}{s.opts.Style.Name, s.opts.TemplatePath != ""}
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("render index", "err", err)
	}
}

func (s *server) boardSVG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(s.svg)
}

func (s *server) boardPNG(w http.ResponseWriter, r *http.Request) {
	data, err := s.png()
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}

func (s *server) styles(w http.ResponseWriter, r *http.Request) {
	if s.opts.TemplatePath == "" {
		http.NotFound(w, r)
		return
	}
	tmpl, err := io.ReadFile(s.opts.TemplatePath)
	if err != nil {
		s.fail(w, err)
		return
	}
	out, n := cssinline.Inline(string(tmpl), s.opts.AssetPath, s.svg)
	if n == 0 {
		s.logger.Warn("no sentinel in template", "template", s.opts.TemplatePath, "sentinel", cssinline.Sentinel(s.opts.AssetPath))
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	fmt.Fprint(w, out)
}

func (s *server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		status = http.StatusNotFound
	}
	s.logger.Error("preview request failed", "err", err)
	http.Error(w, errors.UserMessage(err), status)
}
