package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	server "github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/adapters/http_server"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/adapters/identity"
	redisad "github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/adapters/redis"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/adapters/smartmatch"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/app"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/domain"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/storage/memory"
)

// newAPI wires a full API against the in-memory store, the no-op cache and a
// stubbed suggestion provider, then serves it from an httptest server.
func newAPI(t *testing.T) *httptest.Server {
	t.Helper()

	store := memory.New()
	if err := memory.SeedDemo(context.Background(), store); err != nil {
		t.Fatalf("seed: %v", err)
	}

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.MatchResult{
			AccommodationSuggestions: []string{"Sunrise Premium Hostel"},
			Reasoning:                "cheapest option with the requested amenities",
		})
	}))
	t.Cleanup(provider.Close)

	match, err := smartmatch.New(provider.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("smartmatch client: %v", err)
	}

	cache := redisad.Noop{}
	srv := server.New()
	srv.MountHandlers(&server.Handlers{
		Q: app.NewQueryService(store, cache, time.Minute),
		C: app.NewCommandService(store, cache),
		M: app.NewMatchService(match, time.Second),
		Token: identity.StaticVerifier{
			"owner-a-token": memory.DemoOwnerA,
			"owner-b-token": memory.DemoOwnerB,
		},
	})

	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, dst any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if dst != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func doJSON(t *testing.T, method, url, token string, body, dst any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	if dst != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return resp.StatusCode
}

func TestSearch_PriceRangeAndLoadMore(t *testing.T) {
	ts := newAPI(t)

	var page domain.SearchPage
	code := getJSON(t, ts.URL+"/v1/listings?price_min=5000&price_max=8000", &page)
	if code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	// Demo prices are {8000, 6500, 15000, 4000, 7500}: exactly three match.
	if page.Total != 3 || len(page.Items) != 3 {
		t.Fatalf("expected 3 matches, got total=%d items=%d", page.Total, len(page.Items))
	}
	if page.Items[0].Price != 8000 || page.Items[1].Price != 6500 || page.Items[2].Price != 7500 {
		t.Fatalf("unexpected order: %+v", page.Items)
	}

	// Load-more: page 1 of size 2 is a prefix of page 2.
	var p1, p2 domain.SearchPage
	getJSON(t, ts.URL+"/v1/listings?price_min=5000&price_max=8000&page_size=2&page=1", &p1)
	getJSON(t, ts.URL+"/v1/listings?price_min=5000&price_max=8000&page_size=2&page=2", &p2)
	if len(p1.Items) != 2 || len(p2.Items) != 3 {
		t.Fatalf("expected 2 then 3 items, got %d then %d", len(p1.Items), len(p2.Items))
	}
	for i := range p1.Items {
		if p1.Items[i].ID != p2.Items[i].ID {
			t.Fatalf("page 2 must extend page 1")
		}
	}

	// First match studies at Central University; map centers there.
	if page.MapCenter.Lat != 28.6139 {
		t.Fatalf("unexpected map center: %+v", page.MapCenter)
	}

	// An absurd page number clamps to the full result set, never a 500.
	var all domain.SearchPage
	code = getJSON(t, ts.URL+"/v1/listings?page_size=200&page=9223372036854775807", &all)
	if code != http.StatusOK {
		t.Fatalf("status: %d", code)
	}
	if all.Total != 5 || len(all.Items) != 5 {
		t.Fatalf("expected the full demo set, got total=%d items=%d", all.Total, len(all.Items))
	}
}

func TestSearch_AmenitiesTypeAndTerm(t *testing.T) {
	ts := newAPI(t)

	var page domain.SearchPage
	getJSON(t, ts.URL+"/v1/listings?type=pg&amenities=wifi,mess_food", &page)
	if page.Total != 1 || page.Items[0].Name != "The Study Nook PG (Co-ed)" {
		t.Fatalf("unexpected result: %+v", page.Items)
	}

	getJSON(t, ts.URL+"/v1/listings?q=central+university", &page)
	if page.Total != 2 {
		t.Fatalf("expected 2 listings near Central University, got %d", page.Total)
	}
}

func TestGetListing_NotFoundAndETag(t *testing.T) {
	ts := newAPI(t)

	if code := getJSON(t, ts.URL+"/v1/listings/does-not-exist", nil); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}

	var page domain.SearchPage
	getJSON(t, ts.URL+"/v1/listings", &page)
	id := page.Items[0].ID

	resp, err := http.Get(ts.URL + "/v1/listings/" + id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatalf("expected ETag header")
	}

	req, _ := http.NewRequest("GET", ts.URL+"/v1/listings/"+id, nil)
	req.Header.Set("If-None-Match", etag)
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional get: %v", err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", resp2.StatusCode)
	}
}

func TestCollegeCoordinates(t *testing.T) {
	ts := newAPI(t)

	var c domain.Coords
	getJSON(t, ts.URL+"/v1/colleges/coordinates?name=tech+institute", &c)
	if c.Lat != 12.9716 {
		t.Fatalf("unexpected coords: %+v", c)
	}

	var def domain.Coords
	getJSON(t, ts.URL+"/v1/colleges/coordinates", &def)
	if def.Lat != 20.5937 || def.Lng != 78.9629 {
		t.Fatalf("expected default coords, got %+v", def)
	}
}

func TestOwnerFlow_CreateUpdateDelete(t *testing.T) {
	ts := newAPI(t)

	newListing := domain.Listing{
		Name:         "Fresh PG",
		Address:      "9 New Street",
		Description:  "Just opened.",
		Price:        5500,
		Type:         domain.TypePG,
		Amenities:    []domain.Amenity{domain.AmenityWifi},
		Images:       []string{"https://example.com/new.png"},
		Contact:      domain.Contact{Name: "Owner A"},
		Availability: domain.AvailabilityAvailable,
	}

	// No token: 401.
	if code := doJSON(t, "POST", ts.URL+"/v1/owner/listings", "", newListing, nil); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}

	var created domain.Listing
	if code := doJSON(t, "POST", ts.URL+"/v1/owner/listings", "owner-a-token", newListing, &created); code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	if created.OwnerID != memory.DemoOwnerA || created.ID == "" {
		t.Fatalf("unexpected created listing: %+v", created)
	}

	// Another owner cannot touch it.
	if code := doJSON(t, "DELETE", fmt.Sprintf("%s/v1/owner/listings/%s", ts.URL, created.ID), "owner-b-token", nil, nil); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}

	// Invalid patch: 422.
	bad := created
	bad.Price = -1
	if code := doJSON(t, "PUT", fmt.Sprintf("%s/v1/owner/listings/%s", ts.URL, created.ID), "owner-a-token", bad, nil); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}

	// Delete, then repeat delete is 404.
	if code := doJSON(t, "DELETE", fmt.Sprintf("%s/v1/owner/listings/%s", ts.URL, created.ID), "owner-a-token", nil, nil); code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", code)
	}
	if code := doJSON(t, "DELETE", fmt.Sprintf("%s/v1/owner/listings/%s", ts.URL, created.ID), "owner-a-token", nil, nil); code != http.StatusNotFound {
		t.Fatalf("expected 404 on repeat delete, got %d", code)
	}
}

func TestOwnerListings_ScopedToSession(t *testing.T) {
	ts := newAPI(t)

	var mine []domain.Listing
	if code := doJSON(t, "GET", ts.URL+"/v1/owner/listings", "owner-b-token", nil, &mine); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(mine) != 2 {
		t.Fatalf("owner B has 2 demo listings, got %d", len(mine))
	}
	for _, l := range mine {
		if l.OwnerID != memory.DemoOwnerB {
			t.Fatalf("foreign listing leaked: %+v", l)
		}
	}
}

func TestSmartMatch_ProxiesProvider(t *testing.T) {
	ts := newAPI(t)

	var out domain.MatchResult
	body := map[string]any{"budget": 8000, "amenities": []string{"wifi", "ac"}, "reviews": "quiet"}
	if code := doJSON(t, "POST", ts.URL+"/v1/smart-match", "", body, &out); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(out.AccommodationSuggestions) != 1 || out.Reasoning == "" {
		t.Fatalf("unexpected result: %+v", out)
	}

	// Budget must be positive.
	if code := doJSON(t, "POST", ts.URL+"/v1/smart-match", "", map[string]any{"budget": 0}, nil); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}
