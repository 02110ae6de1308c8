package httpapi

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"sheetfmt/internal/domain"
	"sheetfmt/internal/formatting"
)

// DefaultMaxBodyBytes bounds request bodies when Options leaves it unset.
const DefaultMaxBodyBytes = 1 << 20

// Options configures a Server.
type Options struct {
	// Locales are the locales responses may be formatted for; the first is
	// used when Accept-Language is absent or matches none of them.
	Locales      []language.Tag
	Now          func() time.Time
	MaxBodyBytes int64
	Logger       *zap.Logger
}

// Server exposes a FormatterService over HTTP.
type Server struct {
	svc     domain.FormatterService
	locales []language.Tag
	matcher language.Matcher
	now     func() time.Time
	maxBody int64
	log     *zap.Logger
	handler http.Handler
}

// New returns a Server delegating to svc.
func New(svc domain.FormatterService, opts Options) *Server {
	s := &Server{
		svc:     svc,
		locales: opts.Locales,
		now:     opts.Now,
		maxBody: opts.MaxBodyBytes,
		log:     opts.Logger,
	}
	if len(s.locales) == 0 {
		s.locales = []language.Tag{language.English}
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.maxBody <= 0 {
		s.maxBody = DefaultMaxBodyBytes
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.matcher = language.NewMatcher(s.locales)

	mux := http.NewServeMux()
	mux.Handle("GET /api/formatter", s.get(s.handleInfos))
	mux.Handle("GET /api/formatter/{name}", s.get(s.handleInfo))
	mux.Handle("POST /api/formatter/*/edit", s.post(s.handleEdit))
	mux.Handle("POST /api/formatter/*/format", s.post(s.handleFormat))
	mux.Handle("GET /api/formatter/*/menu", s.get(s.handleMenu))
	mux.Handle("GET /api/formatter/{name}/samples", s.get(s.handleSamples))
	mux.Handle("GET /api/formatter/{name}/text-components", s.get(s.handleTextComponents))
	mux.Handle("GET /api/formatter/{name}/next-text-component", s.get(s.handleNextTextComponent))
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.handler = withRequestID(withAccessLog(s.log, withRecover(s.log, mux)))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// formatterContext builds the per-request context from Accept-Language.
func (s *Server) formatterContext(r *http.Request) domain.FormatterContext {
	return formatting.NewContext(s.locale(r.Header.Get("Accept-Language")), s.now)
}

func (s *Server) locale(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return s.locales[0]
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return s.locales[0]
	}
	_, index, confidence := s.matcher.Match(tags...)
	if confidence == language.No {
		return s.locales[0]
	}
	return s.locales[index]
}

type apiHandler func(w http.ResponseWriter, r *http.Request) error

// get wraps a read-only endpoint with Accept negotiation and error mapping.
func (s *Server) get(h apiHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := checkAccept(r.Header.Get("Accept")); err != nil {
			s.writeError(w, r, err)
			return
		}
		if err := h(w, r); err != nil {
			s.writeError(w, r, err)
		}
	})
}

// post additionally requires a JSON body and bounds its size.
func (s *Server) post(h apiHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := checkContentType(r.Header.Get("Content-Type")); err != nil {
			s.writeError(w, r, err)
			return
		}
		if err := checkAccept(r.Header.Get("Accept")); err != nil {
			s.writeError(w, r, err)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
		if err := h(w, r); err != nil {
			s.writeError(w, r, err)
		}
	})
}
