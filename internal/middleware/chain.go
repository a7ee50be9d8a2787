package middleware

import "net/http"

// Chain wraps the handler with the full middleware stack.
// Order: CORS → RequestID → Logging → Metrics → Recovery → MaxBytes → mux
//
// No timeout layer: a transform waits on the provider until the client
// disconnects.
func Chain(handler http.Handler, maxBodyBytes int64) http.Handler {
	h := handler
	h = MaxBytes(maxBodyBytes)(h)
	h = Recovery(h)
	h = Metrics(h)
	h = Logging(h)
	h = RequestID(h)
	h = CORS(h)
	return h
}
