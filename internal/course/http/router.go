package http

import (
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/opencampus/campus/api/course" // Swagger docs
	"github.com/opencampus/campus/internal/course/service"
	"github.com/opencampus/campus/internal/course/store"
	"github.com/opencampus/campus/pkg/httpx"
	"github.com/opencampus/campus/pkg/jwtx"
	"github.com/opencampus/campus/pkg/slogx"
)

// Router holds shared dependencies for the course HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store         store.Store
	verifier      jwtx.Verifier
	CourseService *service.CourseService
}

func NewRouter(buildVersion string, st store.Store, verifier jwtx.Verifier, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		verifier:     verifier,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerCourses()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.InstanceName("course"),
	))
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
//
//	@title			Campus Course Service API
//	@version		0.1.0
//	@description	Course catalog with instructor-only creation and owner-only updates. Reads are public.
//
//	@host			localhost:3001
//	@BasePath		/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerCourses() {
	// Reads are public. Writes require a verified bearer token and carry
	// per-caller limits.
	listHandler := &ListCoursesHandler{CourseService: r.CourseService}
	r.Mux.Handle("GET /api/v1/courses",
		httpx.Chain(listHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	getHandler := &GetCourseHandler{CourseService: r.CourseService}
	r.Mux.Handle("GET /api/v1/courses/{id}",
		httpx.Chain(getHandler,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	createHandler := &CreateCourseHandler{CourseService: r.CourseService}
	r.Mux.Handle("POST /api/v1/courses",
		httpx.Chain(createHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByCaller(httpx.ModerateLimit),
		),
	)

	updateHandler := &UpdateCourseHandler{CourseService: r.CourseService}
	r.Mux.Handle("PUT /api/v1/courses/{id}",
		httpx.Chain(updateHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByCaller(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
