package v1

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// AllowedMethods are all HTTP methods the API answers cross-origin
var AllowedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// AllowedHeaders answers preflights that name no headers. Preflights that do get
// their requested headers echoed back, since browsers do not expand "*" for
// credentialed requests.
var AllowedHeaders = []string{
	"Origin",
	"Accept",
	"Accept-Encoding",
	"Accept-Language",
	"Authorization",
	"Cache-Control",
	"Content-Length",
	"Content-Type",
	"X-CSRF-Token",
	"X-Requested-With",
}

// NewCORSMiddleware allows credentialed requests from exactly the given origins
func NewCORSMiddleware(origins []string) (gin.HandlerFunc, error) {
	if len(origins) == 0 {
		return nil, fmt.Errorf("cors requires at least one allowed origin")
	}
	for _, origin := range origins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return nil, fmt.Errorf("invalid cors origin %q: must start with http:// or https://", origin)
		}
	}

	handler := cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     AllowedMethods,
		AllowHeaders:     AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})

	return func(ctx *gin.Context) {
		if requested := requestedHeaders(ctx.Request); requested != "" {
			ctx.Writer = &echoHeadersWriter{ResponseWriter: ctx.Writer, requested: requested}
		}
		handler(ctx)
	}, nil
}

// requestedHeaders returns the cleaned Access-Control-Request-Headers of a preflight
func requestedHeaders(req *http.Request) string {
	if req.Method != http.MethodOptions || req.Header.Get("Origin") == "" {
		return ""
	}

	var names []string
	for _, value := range req.Header.Values("Access-Control-Request-Headers") {
		for _, name := range strings.Split(value, ",") {
			name = strings.TrimSpace(name)
			if isHeaderToken(name) {
				names = append(names, http.CanonicalHeaderKey(name))
			}
		}
	}
	return strings.Join(names, ",")
}

func isHeaderToken(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("!#$%&'*+-.^_`|~", r):
		default:
			return false
		}
	}
	return true
}

// echoHeadersWriter replaces the allow-headers list of an accepted preflight
// with the headers the browser asked for.
type echoHeadersWriter struct {
	gin.ResponseWriter
	requested string
}

func (w *echoHeadersWriter) WriteHeader(code int) {
	w.echo()
	w.ResponseWriter.WriteHeader(code)
}

func (w *echoHeadersWriter) WriteHeaderNow() {
	w.echo()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *echoHeadersWriter) echo() {
	header := w.Header()
	if header.Get("Access-Control-Allow-Origin") == "" {
		return
	}
	header.Set("Access-Control-Allow-Headers", w.requested)
}
