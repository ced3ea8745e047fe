package router

import (
	"net/http"

	"github.com/mindverse/mindverse/internal/auth"
	"github.com/mindverse/mindverse/internal/interpreter"
	"github.com/mindverse/mindverse/internal/profile"
	"github.com/mindverse/mindverse/internal/subscription"
)

// New returns an http.Handler serving the API under /api.
func New(
	authHandler *auth.Handler,
	profileHandler *profile.Handler,
	subHandler *subscription.Handler,
	interpretHandler *interpreter.Handler,
	requireAuth func(http.Handler) http.Handler,
) http.Handler {
	mux := http.NewServeMux()
	base := "/api"
	mux.HandleFunc(base+"/signup", methodPOST(authHandler.SignUp))
	mux.HandleFunc(base+"/signin", methodPOST(authHandler.SignIn))
	mux.HandleFunc(base+"/plans", methodGET(subHandler.ListPlans))

	mux.Handle(base+"/profile", requireAuth(methodGET(profileHandler.Get)))
	mux.Handle(base+"/subscribe", requireAuth(methodPOST(subHandler.Subscribe)))
	mux.Handle(base+"/interpret", requireAuth(methodPOST(interpretHandler.Interpret)))

	return mux
}

func methodGET(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

func methodPOST(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}
