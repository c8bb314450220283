package http

import (
	"net/http"
	"time"

	"heritage-quiz-service/internal/app"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Options configures the HTTP surface.
type Options struct {
	Quiz          *app.QuizService
	Contact       *app.ContactService
	CORSOrigin    string
	StaticDir     string
	ContactPerMin int
	TickInterval  time.Duration
}

// NewRouter mounts the REST API, the live session websocket and, when
// configured, the static frontend.
func NewRouter(opts Options) http.Handler {
	rest := NewRESTHandler(opts.Quiz, opts.Contact)
	ws := NewWSHandler(opts.Quiz, WithTickInterval(opts.TickInterval))
	contactLimiter := NewRateLimiter(opts.ContactPerMin)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(CORS(opts.CORSOrigin))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/quiz", func(r chi.Router) {
			r.Get("/categories", rest.Categories)
			r.Post("/sessions", rest.StartSession)
			r.Route("/sessions/{id}", func(r chi.Router) {
				r.Get("/", rest.GetSession)
				r.Delete("/", rest.AbandonSession)
				r.Post("/answer", rest.Answer)
				r.Post("/advance", rest.Advance)
				r.Post("/previous", rest.Previous)
				r.Post("/tick", rest.Tick)
				r.Post("/lifelines/{kind}", rest.UseLifeline)
				r.Get("/summary", rest.Summary)
			})
			r.Get("/results", rest.Results)
			r.Get("/leaderboard/{category}", rest.Leaderboard)
		})

		r.With(contactLimiter.Middleware).Post("/contact", rest.Contact)
	})

	r.Get("/ws/sessions/{id}", ws.ServeWS)

	if opts.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(opts.StaticDir)))
	}
	return r
}
