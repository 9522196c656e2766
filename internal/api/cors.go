package api

import (
	"net/http"

	"github.com/gorilla/handlers"
)

func setupCorsOptions(origin string) []handlers.CORSOption {
	credentials := handlers.AllowCredentials()
	methods := handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions})
	origins := handlers.AllowedOrigins([]string{origin})
	headers := handlers.AllowedHeaders([]string{"Content-Type", requestIDHeader})
	exposed := handlers.ExposedHeaders([]string{requestIDHeader})

	options := []handlers.CORSOption{credentials, methods, origins, headers, exposed}
	return options
}
