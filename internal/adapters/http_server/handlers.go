package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/adapters/identity"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/adapters/observability"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/app"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/domain"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/geo"
)

type Handlers struct {
	Q     *app.QueryService
	C     *app.CommandService
	M     *app.MatchService
	Token identity.Verifier
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/listings", h.searchListings)
	s.mux.Get("/v1/listings/{id}", h.getListing)
	s.mux.Get("/v1/colleges/coordinates", h.collegeCoordinates)
	s.mux.Post("/v1/smart-match", h.smartMatch)

	s.mux.Route("/v1/owner", func(r chi.Router) {
		r.Use(Auth(h.Token))
		r.Get("/listings", h.ownListings)
		r.Post("/listings", h.createListing)
		r.Put("/listings/{id}", h.updateListing)
		r.Delete("/listings/{id}", h.deleteListing)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeDomainErr maps domain sentinels to HTTP statuses.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "listing not found")
	case errors.Is(err, domain.ErrValidation):
		writeProblem(w, http.StatusUnprocessableEntity, "Validation Failed", err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeProblem(w, http.StatusForbidden, "Forbidden", "you do not own this listing")
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON body failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// ---- search surface ----

// parseFilterSpec builds a FilterSpec from UI query params. Every field has
// an explicit no-constraint default; malformed values are ignored rather
// than rejected, this is a best-effort search box.
func parseFilterSpec(r *http.Request) domain.FilterSpec {
	q := r.URL.Query()
	spec := domain.FilterSpec{
		Type:       q.Get("type"),
		SearchTerm: q.Get("q"),
	}
	if v, err := strconv.ParseFloat(q.Get("price_min"), 64); err == nil {
		spec.PriceRange.Min = &v
	}
	if v, err := strconv.ParseFloat(q.Get("price_max"), 64); err == nil {
		spec.PriceRange.Max = &v
	}
	if v, err := strconv.ParseFloat(q.Get("max_distance"), 64); err == nil {
		spec.MaxDistanceKM = v
	}
	if raw := q.Get("amenities"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				spec.Amenities = append(spec.Amenities, domain.Amenity(a))
			}
		}
	}
	return spec
}

func (h *Handlers) searchListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))
	if pageSize > 200 {
		pageSize = 200
	}

	out, err := h.Q.Search(r.Context(), parseFilterSpec(r), pageSize, page)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	observability.ObserveSearch(out.Total)

	etag, body := calcETagAndBody(out)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write search body")
	}
}

func (h *Handlers) getListing(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Q.GetListing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}

	etag, body := calcETagAndBody(resp)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getListing body")
	}
}

func (h *Handlers) collegeCoordinates(w http.ResponseWriter, r *http.Request) {
	// Resolution always succeeds; unknown names get the country-center default.
	writeJSON(w, http.StatusOK, geo.Resolve(r.URL.Query().Get("name")))
}

// ---- smart match ----

type smartMatchRequest struct {
	Budget    float64  `json:"budget"`
	Amenities []string `json:"amenities"`
	Reviews   string   `json:"reviews"`
}

func (h *Handlers) smartMatch(w http.ResponseWriter, r *http.Request) {
	var req smartMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	if req.Budget <= 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid Budget", "budget must be positive")
		return
	}

	out, err := h.M.Suggest(r.Context(), req.Budget, req.Amenities, req.Reviews)
	if err != nil {
		// Provider trouble is the provider's problem; tell the caller to retry.
		writeProblem(w, http.StatusBadGateway, "Suggestion Provider Unavailable", "try again later")
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ---- owner surface ----

func (h *Handlers) ownListings(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListByOwner(r.Context(), ownerFrom(r.Context()))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	if out == nil {
		out = []domain.Listing{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) createListing(w http.ResponseWriter, r *http.Request) {
	var l domain.Listing
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	created, err := h.C.CreateListing(r.Context(), ownerFrom(r.Context()), l)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) updateListing(w http.ResponseWriter, r *http.Request) {
	var patch domain.Listing
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "request body must be valid JSON")
		return
	}
	updated, err := h.C.UpdateListing(r.Context(), ownerFrom(r.Context()), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) deleteListing(w http.ResponseWriter, r *http.Request) {
	if err := h.C.DeleteListing(r.Context(), ownerFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		writeDomainErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
