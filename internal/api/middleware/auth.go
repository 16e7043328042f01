package middleware

import (
	"context"
	"net/http"
	"strings"

	"slots_backend/internal/ledger"
	"slots_backend/internal/service"
	"slots_backend/pkg/resp"
)

type signerKey struct{}

// Auth проверяет Bearer токен и кладёт подписанта в контекст запроса
func Auth(serv service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing access token")
				return
			}

			signer, err := serv.Verify(r.Context(), raw)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, err.Error())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSigner(r.Context(), signer)))
		})
	}
}

func WithSigner(ctx context.Context, signer ledger.Address) context.Context {
	return context.WithValue(ctx, signerKey{}, signer)
}

// Signer подписант, проверенный Auth
func Signer(ctx context.Context) (ledger.Address, bool) {
	signer, ok := ctx.Value(signerKey{}).(ledger.Address)
	return signer, ok
}
