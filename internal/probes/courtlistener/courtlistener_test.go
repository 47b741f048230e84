package courtlistener

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"laelaps/internal/core/domain"
	"laelaps/internal/platform/logx"
)

func newTestProbe(t *testing.T, handler http.Handler, apiKey string) *CourtListener {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewWithConfig(logx.NewWithLevel(logx.LevelError), CourtListenerConfig{
		APIKey:  apiKey,
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})
}

func fixtureHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/search/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [
			{"caseName": "Doe v. State", "court": "ca9", "dateFiled": "2023-01-15",
			 "docketNumber": "21-55555", "status": "Published",
			 "absolute_url": "/opinion/123/doe-v-state/", "snippet": "the defendant John Doe"}
		]}`))
	})
	mux.HandleFunc("/people/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [
			{"name_full": "John Doe", "date_dob": "1970-01-01",
			 "positions": [{"position_type": "jud"}],
			 "absolute_url": "/person/42/john-doe/"}
		]}`))
	})
	mux.HandleFunc("/dockets/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": [
			{"case_name": "Doe v. Roe", "absolute_url": "/docket/7/doe-v-roe/"}
		]}`))
	})
	return mux
}

func TestNew(t *testing.T) {
	probe := New(logx.NewWithLevel(logx.LevelError))

	if probe.Name() != "courtlistener" {
		t.Errorf("expected name 'courtlistener', got %q", probe.Name())
	}
	if probe.Kind() != domain.ProbeKindAPI {
		t.Errorf("expected API kind, got %v", probe.Kind())
	}
	if probe.Attribute() != domain.AttributeName {
		t.Errorf("expected name attribute, got %v", probe.Attribute())
	}
	if probe.Timeout() != defaultTimeout {
		t.Errorf("expected default timeout, got %v", probe.Timeout())
	}
}

func TestCourtListener_Run(t *testing.T) {
	probe := newTestProbe(t, fixtureHandler(), "")

	outcome, err := probe.Run(context.Background(), "John Doe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outcome.Errors) != 0 {
		t.Fatalf("unexpected endpoint errors: %v", outcome.Errors)
	}

	// 1 opinion + 1 person + 1 docket + 3 manual links
	if len(outcome.Findings) != 6 {
		t.Fatalf("expected 6 findings, got %d", len(outcome.Findings))
	}

	opinion := outcome.Findings[0]
	if opinion.URL != "https://www.courtlistener.com/opinion/123/doe-v-state/" {
		t.Errorf("unexpected opinion URL: %q", opinion.URL)
	}
	if opinion.Metadata["case_name"] != "Doe v. State" {
		t.Errorf("expected case metadata, got %v", opinion.Metadata)
	}
	if opinion.Metadata["docket_number"] != "21-55555" {
		t.Errorf("expected docket number metadata, got %v", opinion.Metadata)
	}

	person := outcome.Findings[1]
	if person.Metadata["positions"] != "jud" {
		t.Errorf("expected positions metadata, got %v", person.Metadata)
	}

	manual := 0
	for _, f := range outcome.Findings {
		if f.IdentityQuery {
			manual++
			if f.Status != domain.FindingAmbiguous {
				t.Errorf("manual links are ambiguous, got %v", f.Status)
			}
		}
	}
	if manual != 3 {
		t.Errorf("expected 3 manual search links, got %d", manual)
	}
}

func TestCourtListener_Run_QueryParams(t *testing.T) {
	var query atomic.Value

	mux := http.NewServeMux()
	mux.HandleFunc("/search/", func(w http.ResponseWriter, r *http.Request) {
		query.Store(r.URL.Query())
		w.Write([]byte(`{"results": []}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	})

	probe := newTestProbe(t, mux, "")
	if _, err := probe.Run(context.Background(), "John Doe"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	params, ok := query.Load().(url.Values)
	if !ok {
		t.Fatal("search endpoint was never hit")
	}
	if got := params.Get("q"); got != "John Doe" {
		t.Errorf("unexpected q param: %q", got)
	}
	if got := params.Get("type"); got != "o" {
		t.Errorf("unexpected type param: %q", got)
	}
	if got := params.Get("order_by"); got != "dateFiled desc" {
		t.Errorf("unexpected order_by param: %q", got)
	}
}

func TestCourtListener_Run_AuthHeader(t *testing.T) {
	var header atomic.Value

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		header.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`{"results": []}`))
	})

	probe := newTestProbe(t, mux, "secret-token")
	if _, err := probe.Run(context.Background(), "John Doe"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, _ := header.Load().(string); got != "Token secret-token" {
		t.Errorf("expected token auth header, got %q", got)
	}
}

func TestCourtListener_Run_CachesResponses(t *testing.T) {
	var requests atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(`{"results": []}`))
	})

	probe := newTestProbe(t, mux, "")

	if _, err := probe.Run(context.Background(), "John Doe"); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if _, err := probe.Run(context.Background(), "John Doe"); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if got := requests.Load(); got != 3 {
		t.Errorf("expected 3 requests (second run cached), got %d", got)
	}
}

func TestCourtListener_Run_EndpointFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	probe := newTestProbe(t, mux, "")

	outcome, err := probe.Run(context.Background(), "John Doe")
	if err != nil {
		t.Fatalf("endpoint failures must not fail the run: %v", err)
	}
	if len(outcome.Errors) != 3 {
		t.Errorf("expected 3 endpoint errors, got %v", outcome.Errors)
	}

	// Manual links survive even with the API fully down
	if len(outcome.Findings) != 3 {
		t.Errorf("expected the 3 manual links, got %d findings", len(outcome.Findings))
	}
	for _, f := range outcome.Findings {
		if !strings.Contains(f.URL, "courtlistener.com/?q=John+Doe") {
			t.Errorf("unexpected manual link: %q", f.URL)
		}
	}
}

func TestCourtListener_Available(t *testing.T) {
	logger := logx.NewWithLevel(logx.LevelError)

	open := NewWithConfig(logger, CourtListenerConfig{})
	if err := open.Available(context.Background()); err != nil {
		t.Errorf("probe should be available without a token: %v", err)
	}

	gated := NewWithConfig(logger, CourtListenerConfig{RequireAuth: true})
	if err := gated.Available(context.Background()); err == nil {
		t.Error("require_auth without token should be unavailable")
	}

	keyed := NewWithConfig(logger, CourtListenerConfig{RequireAuth: true, APIKey: "k"})
	if err := keyed.Available(context.Background()); err != nil {
		t.Errorf("require_auth with token should be available: %v", err)
	}
}
