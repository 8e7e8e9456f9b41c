package middleware

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/workforce-analytics-go/internal/domain/workforce"
	"github.com/cmlabs-hris/workforce-analytics-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type datasetKey struct{}

// RequireDataset resolves the {dataset} URL parameter and rejects unknown datasets
func RequireDataset(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dataset, err := workforce.ParseDataset(chi.URLParam(r, "dataset"))
		if err != nil {
			response.HandleError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), datasetKey{}, dataset)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// DatasetFromContext returns the dataset resolved by RequireDataset
func DatasetFromContext(ctx context.Context) (workforce.Dataset, bool) {
	dataset, ok := ctx.Value(datasetKey{}).(workforce.Dataset)
	return dataset, ok
}

// NoStore marks responses as uncacheable
func NoStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
