// Package handler adapts environment-threading handler funcs to
// http.Handler so mux routes can share one environment value.
package handler

import "net/http"

// Handler pairs an environment with a handler func that receives it.
type Handler struct {
	Env interface{}
	H   func(e interface{}, w http.ResponseWriter, r *http.Request) error
}

// ServeHTTP calls the wrapped handler. Errors that escape the handler are
// reported as a bare 500; handlers that want friendlier responses write
// them before returning nil.
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.H(h.Env, w, r); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
