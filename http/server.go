// Package http serves the search form, search results, and rendered pages.
package http

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/simplesearch"
)

// DefaultSearchPath is the route of the search page.
const DefaultSearchPath = "/search"

// DefaultShutdownTimeout bounds graceful shutdown in ListenAndServe.
const DefaultShutdownTimeout = 5 * time.Second

// Server handles search and page requests.
type Server struct {
	Searcher  simplesearch.Searcher
	Documents simplesearch.DocumentService
	Pages     simplesearch.PageRepository
	Renderer  simplesearch.Renderer
	Templates *Templates

	// Cache stores rendered pages. Nil disables page caching.
	Cache simplesearch.PageCache

	Logger     *slog.Logger
	SearchPath string
}

// Option configures a Server.
type Option func(*Server)

// WithPageCache enables page caching on the server.
func WithPageCache(cache simplesearch.PageCache) Option {
	return func(s *Server) {
		s.Cache = cache
	}
}

// WithLogger sets the logger used for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithSearchPath overrides the search page route.
func WithSearchPath(path string) Option {
	return func(s *Server) {
		s.SearchPath = path
	}
}

// NewServer creates a Server with the given dependencies.
func NewServer(
	searcher simplesearch.Searcher,
	documents simplesearch.DocumentService,
	pages simplesearch.PageRepository,
	renderer simplesearch.Renderer,
	templates *Templates,
	opts ...Option,
) *Server {
	s := &Server{
		Searcher:   searcher,
		Documents:  documents,
		Pages:      pages,
		Renderer:   renderer,
		Templates:  templates,
		Logger:     slog.New(slog.DiscardHandler),
		SearchPath: DefaultSearchPath,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateSearchPath returns EINVALID unless path is an absolute route other
// than the root, which the page view owns.
func ValidateSearchPath(path string) error {
	switch {
	case !strings.HasPrefix(path, "/"):
		return simplesearch.Errorf(simplesearch.EINVALID, "search path %q must start with /", path)
	case path == "/":
		return simplesearch.Errorf(simplesearch.EINVALID, "search path cannot be the site root")
	case strings.ContainsAny(path, "{} \t\n?#"):
		return simplesearch.Errorf(simplesearch.EINVALID, "search path %q contains invalid characters", path)
	}
	return nil
}

// Handler returns an http.Handler with all entry points registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterSearchEntryPoints(mux)
	return mux
}

// RegisterSearchEntryPoints registers the search page and the page view on mux.
func (s *Server) RegisterSearchEntryPoints(mux *http.ServeMux) {
	mux.HandleFunc("GET "+s.SearchPath, s.handleSearch)
	mux.HandleFunc("GET /{route...}", s.handlePage)
}

type resultView struct {
	Title string
	URL   string
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	values := r.URL.Query()
	query := values.Get("query")
	_, submitted := values["query"]

	var results []resultView
	if submitted {
		docs, err := s.Searcher.Search(ctx, query)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		results = make([]resultView, 0, len(docs))
		for _, doc := range docs {
			results = append(results, resultView{Title: doc.Title, URL: "/" + doc.Route})
		}
	}

	form, err := s.Templates.renderString(TemplateForm, map[string]any{
		"action": s.SearchPath,
		"query":  query,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	list, err := s.Templates.renderString(TemplateResults, map[string]any{
		"query":     query,
		"results":   results,
		"submitted": submitted,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeLayout(w, r, "Search", form+list)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	route := strings.Trim(r.PathValue("route"), "/")

	docs, err := s.Documents.FindDocuments(ctx, simplesearch.DocumentFilter{Route: &route, Limit: 1})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(docs) == 0 {
		s.writeError(w, r, simplesearch.Errorf(simplesearch.ENOTFOUND, "page %q not found", "/"+route))
		return
	}
	doc := docs[0]

	body, err := s.pageHTML(ctx, doc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeLayout(w, r, doc.Title, template.HTML(body))
}

// pageHTML returns the rendered page, reading from and filling the page
// cache when caching is enabled.
func (s *Server) pageHTML(ctx context.Context, doc *simplesearch.Document) (string, error) {
	key := simplesearch.PageCacheKey(doc.Route)
	if s.Cache != nil {
		html, err := s.Cache.Get(ctx, key)
		if err == nil {
			return html, nil
		}
		if simplesearch.ErrorCode(err) != simplesearch.ENOTFOUND {
			s.Logger.Warn("page cache read failed", "key", key, "error", err)
		}
	}

	page, err := s.Pages.FindPage(ctx, doc.Path)
	if err != nil {
		return "", err
	}
	html, err := s.Renderer.RenderPage(page)
	if err != nil {
		return "", err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, html); err != nil {
			s.Logger.Warn("page cache write failed", "key", key, "error", err)
		}
	}
	return html, nil
}

func (s *Server) writeLayout(w http.ResponseWriter, r *http.Request, title string, body template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.Templates.RenderTemplate(w, TemplateLayout, map[string]any{
		"title": title,
		"body":  body,
	}); err != nil {
		s.Logger.Error("render layout", "path", r.URL.Path, "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := simplesearch.ErrorCode(err)
	status := errorStatus(code)
	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	http.Error(w, simplesearch.ErrorMessage(err), status)
}

func errorStatus(code string) int {
	switch code {
	case simplesearch.ENOTFOUND:
		return http.StatusNotFound
	case simplesearch.EINVALID:
		return http.StatusBadRequest
	case simplesearch.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ListenAndServe serves handler on addr until ctx is cancelled, then shuts
// the server down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
