package home

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeService struct {
	calls int
}

func (f *fakeService) HandleHome(w http.ResponseWriter, _ *http.Request) {
	f.calls++
	w.WriteHeader(http.StatusOK)
}

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	mux := http.NewServeMux()
	RegisterRoutes(mux, svc)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK || svc.calls != 1 {
		t.Fatalf("home = %d (calls %d)", rr.Code, svc.calls)
	}

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("unknown status = %d, want 404", rr.Code)
	}

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nowhere/", nil))
	if rr.Code != http.StatusMovedPermanently {
		t.Fatalf("trailing slash status = %d, want 301", rr.Code)
	}
	if svc.calls != 1 {
		t.Fatalf("home called %d times, want 1", svc.calls)
	}
}
