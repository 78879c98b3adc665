package auth

import (
	"context"
	"log"
	"net/http"
	"strings"
)

type ctxKey string

const subjectKey ctxKey = "subject"

type Middleware struct {
	secret []byte
}

func New(secret []byte) Middleware {
	return Middleware{secret: secret}
}

// Wrap rejects requests without a valid bearer token. OPTIONS requests pass
// through so CORS preflight keeps working.
func (m Middleware) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next(w, r)
			return
		}

		h := r.Header.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(h, "Bearer ")
		subject, err := ParseToken(m.secret, tokenString)
		if err != nil {
			log.Printf("[WARN] rejected token: %v", err)
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), subjectKey, subject)
		next(w, r.WithContext(ctx))
	}
}

func SubjectFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(subjectKey).(string)
	return v, ok
}
