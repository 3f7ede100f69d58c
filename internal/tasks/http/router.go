package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/jwtx"
	"github.com/aussiebroadwan/tasks/pkg/slogx"

	_ "github.com/aussiebroadwan/tasks/api/tasks" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       jwtx.Signer
	authScheme   string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	metrics      *httpx.Metrics

	store        store.Store
	TokenService *service.TokenService
	UserService  *service.UserService
	TaskService  *service.TaskService
}

func NewRouter(
	signer jwtx.Signer,
	authScheme, buildVersion string,
	st store.Store,
	metrics *httpx.Metrics,
	logger *slog.Logger,
) *Router {
	if authScheme == "" {
		authScheme = httpx.DefaultAuthScheme
	}

	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		authScheme:   authScheme,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		metrics:      metrics,
		logger:       logger,
	}

	// Metrics must sit directly on the mux to see the matched pattern.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		r.metrics.Middleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerTokens()
	r.registerTasks()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Tasks API
//	@version		0.1.0
//	@description	Personal task lists behind token authentication.
//	@description
//	@description				Tokens are HS256 JWTs obtained from POST /token.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/tasks
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	TokenAuth
//	@in							header
//	@name						Authorization
//	@description				Signed token. Format: "JWT {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authn verifies the token on every protected route and resolves it to the
// user it was issued to.
func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(
		r.authScheme,
		httpx.AuthenticatorFunc(func(ctx context.Context, token string) (httpx.Principal, error) {
			user, err := r.TokenService.Authenticate(ctx, token)
			if err != nil {
				return httpx.Principal{}, err
			}
			return httpx.Principal{ID: user.ID, Email: user.Email}, nil
		}),
		service.IsUnauthorized,
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("POST /users", http.HandlerFunc(h.HandleRegister))
	r.Mux.Handle("GET /user", httpx.Chain(http.HandlerFunc(h.HandleGet), r.authn()))
	r.Mux.Handle("DELETE /user", httpx.Chain(http.HandlerFunc(h.HandleDelete), r.authn()))
}

func (r *Router) registerTokens() {
	r.Mux.Handle("POST /token", &TokenHandler{TokenService: r.TokenService})
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	// Collection routes only need an authenticated caller.
	r.Mux.Handle("GET /tasks", httpx.Chain(http.HandlerFunc(h.HandleList), r.authn()))
	r.Mux.Handle("POST /tasks", httpx.Chain(http.HandlerFunc(h.HandleCreate), r.authn()))

	// Item routes additionally resolve the path id into an owner-bound scope
	// before the handler runs.
	item := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, r.authn(), RequireTaskScope)
	}
	r.Mux.Handle("GET /tasks/{id}", item(h.HandleGet))
	r.Mux.Handle("PUT /tasks/{id}", item(h.HandleUpdate))
	r.Mux.Handle("DELETE /tasks/{id}", item(h.HandleDelete))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer))
	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}
