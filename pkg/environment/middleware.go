package environment

import "net/http"

// Header names the environment on responses served outside production.
const Header = "X-Environment"

// Middleware stores env in each request context. Outside production the
// environment is also echoed in the X-Environment response header so that
// previews from staging can be told apart from live output.
func Middleware(env Environment) func(http.Handler) http.Handler {
	echo := env != "" && env != Production
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if echo {
				w.Header().Set(Header, string(env))
			}
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), env)))
		})
	}
}
