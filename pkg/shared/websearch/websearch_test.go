package websearch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func resultHTML(n int) string {
	var sb strings.Builder
	sb.WriteString("<html><body><div id='links'>")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, `
			<div class="result results_links">
				<a rel="nofollow" class="result__a" href="https://example.com/%d">Result %d</a>
				<a class="result__snippet" href="https://example.com/%d">Snippet for result %d</a>
			</div>`, i, i, i, i)
	}
	sb.WriteString("</div></body></html>")
	return sb.String()
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(zerolog.Nop(), Options{
		HTTPClient: srv.Client(),
		Endpoint:   srv.URL,
	})
}

func TestSearchParsesResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "pet grooming niches" {
			t.Errorf("unexpected query %q", got)
		}
		if ua := r.Header.Get("User-Agent"); !strings.Contains(ua, "Mozilla") {
			t.Errorf("expected browser-like user agent, got %q", ua)
		}
		fmt.Fprint(w, resultHTML(3))
	})

	results := client.Search(context.Background(), "pet grooming niches")
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Title != "Result 1" {
		t.Errorf("title = %q, want %q", results[0].Title, "Result 1")
	}
	if results[0].Link != "https://example.com/1" {
		t.Errorf("link = %q, want %q", results[0].Link, "https://example.com/1")
	}
	if results[2].Snippet != "Snippet for result 3" {
		t.Errorf("snippet = %q, want %q", results[2].Snippet, "Snippet for result 3")
	}
}

func TestSearchCapsAtTen(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, resultHTML(14))
	})
	results := client.Search(context.Background(), "anything")
	if len(results) != 10 {
		t.Fatalf("expected 10 results, got %d", len(results))
	}
}

func TestSearchSkipsTitlelessBlocks(t *testing.T) {
	html := `<html><body>
		<div class="result"><a class="result__snippet" href="#">ad block without title</a></div>
		<div class="result"><a class="result__a" href="https://example.com/a">Real Hit</a></div>
		<div class="result"><a class="result__a" href="https://example.com/b">  </a></div>
	</body></html>`
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, html)
	})
	results := client.Search(context.Background(), "q")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d: %+v", len(results), results)
	}
	if results[0].Title != "Real Hit" {
		t.Errorf("title = %q, want %q", results[0].Title, "Real Hit")
	}
	if results[0].Snippet != "" {
		t.Errorf("snippet = %q, want empty", results[0].Snippet)
	}
}

func TestSearchSoftFailures(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
		if results := client.Search(context.Background(), "q"); len(results) != 0 {
			t.Fatalf("expected no results, got %d", len(results))
		}
	})

	t.Run("transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		httpClient := srv.Client()
		srv.Close()
		client := NewClient(zerolog.Nop(), Options{HTTPClient: httpClient, Endpoint: srv.URL})
		if results := client.Search(context.Background(), "q"); len(results) != 0 {
			t.Fatalf("expected no results, got %d", len(results))
		}
	})

	t.Run("garbage body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, "\x00\x01 not html at all")
		})
		// goquery tolerates almost anything; the point is it must not panic
		// and must not invent results.
		if results := client.Search(context.Background(), "q"); len(results) != 0 {
			t.Fatalf("expected no results, got %d", len(results))
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, resultHTML(2))
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if results := client.Search(ctx, "q"); len(results) != 0 {
			t.Fatalf("expected no results, got %d", len(results))
		}
	})
}

func TestSearchAllOrderAndTruncation(t *testing.T) {
	var queries []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.Query().Get("q"))
		fmt.Fprint(w, resultHTML(5))
	})

	all := client.SearchAll(context.Background(), []string{"first", "second", "third"}, 3)

	if want := []string{"first", "second", "third"}; len(queries) != 3 || queries[0] != want[0] || queries[1] != want[1] || queries[2] != want[2] {
		t.Fatalf("queries executed out of order: %v", queries)
	}
	if len(all) != 9 {
		t.Fatalf("expected 9 aggregated results, got %d", len(all))
	}
	// Duplicates across queries are expected and kept.
	if all[0].Title != "Result 1" || all[3].Title != "Result 1" || all[6].Title != "Result 1" {
		t.Errorf("aggregation did not keep per-query order: %+v", all)
	}
}

func TestSearchAllPartialFailure(t *testing.T) {
	n := 0
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		n++
		if n == 2 {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, resultHTML(2))
	})

	all := client.SearchAll(context.Background(), []string{"a", "b", "c"}, 3)
	if len(all) != 4 {
		t.Fatalf("expected 4 results with one failed query, got %d", len(all))
	}
}

func TestFormatSources(t *testing.T) {
	results := []Result{
		{Title: "One", Link: "https://one.test", Snippet: "first snippet"},
		{Title: "Two", Link: "", Snippet: ""},
	}
	got := FormatSources(results)
	want := "1. One\nfirst snippet\nhttps://one.test\n\n2. Two\n\n"
	if got != want {
		t.Fatalf("FormatSources = %q, want %q", got, want)
	}
}

func TestFormatSignals(t *testing.T) {
	results := []Result{
		{Title: "One", Link: "https://one.test", Snippet: "pain point"},
		{Title: "Two", Link: "https://two.test", Snippet: "another"},
	}
	got := FormatSignals(results)
	want := "1. One\npain point\n\n2. Two\nanother"
	if got != want {
		t.Fatalf("FormatSignals = %q, want %q", got, want)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := FormatSources(nil); got != "" {
		t.Fatalf("FormatSources(nil) = %q, want empty", got)
	}
	if got := FormatSignals(nil); got != "" {
		t.Fatalf("FormatSignals(nil) = %q, want empty", got)
	}
}
