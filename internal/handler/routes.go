package handler

import (
	"net/http"

	"github.com/mwadley/swapshop/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, accounts *service.AccountService, listings *service.ListingService, uploads *service.UploadService) {
	authH := NewAuthHandler(accounts)
	listingH := NewListingHandler(listings)
	uploadH := NewUploadHandler(uploads)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/register", authH.HandleRegister)
	mux.HandleFunc("POST /api/auth/login", authH.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", authH.HandleLogout)
	mux.Handle("GET /api/auth/me", RequireAuth(accounts, http.HandlerFunc(authH.HandleMe)))

	mux.HandleFunc("GET /api/listings", listingH.HandleList)
	mux.HandleFunc("GET /api/listings/search", listingH.HandleSearch)
	mux.HandleFunc("GET /api/listings/{id}", listingH.HandleGet)
	mux.Handle("POST /api/listings", RequireAuth(accounts, http.HandlerFunc(listingH.HandleCreate)))
	mux.Handle("GET /api/my/listings", RequireAuth(accounts, http.HandlerFunc(listingH.HandleMyListings)))

	mux.Handle("POST /api/uploads", RequireAuth(accounts, http.HandlerFunc(uploadH.HandleUpload)))
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploads.Dir()))))
}
