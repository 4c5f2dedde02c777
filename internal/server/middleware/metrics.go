package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/iudanet/authmodule/internal/server/metrics"
)

const unmatchedRoute = "unmatched"

// RouteMatcher resolves the route template a request would be served by.
// *mux.Router implements it.
type RouteMatcher interface {
	Match(r *http.Request, match *mux.RouteMatch) bool
}

// MetricsMiddleware records request count, latency and in-flight requests.
// Requests are labelled by route template to keep label cardinality bounded.
func MetricsMiddleware(m *metrics.Metrics, routes RouteMatcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			m.InFlight.Inc()
			defer m.InFlight.Dec()

			wrapped := wrapResponseWriter(w)
			next.ServeHTTP(wrapped, r)

			labels := []string{r.Method, routeTemplate(routes, r), strconv.Itoa(wrapped.statusCode)}
			m.Requests.WithLabelValues(labels...).Inc()
			m.Duration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		})
	}
}

func routeTemplate(routes RouteMatcher, r *http.Request) string {
	if routes == nil {
		return unmatchedRoute
	}

	var match mux.RouteMatch
	if !routes.Match(r, &match) || match.Route == nil {
		return unmatchedRoute
	}

	tmpl, err := match.Route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tmpl
}
