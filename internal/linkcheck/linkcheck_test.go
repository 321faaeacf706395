package linkcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

func TestExtractURLs_DedupAndOrder(t *testing.T) {
	text := "See [docs](https://example.com/docs) and https://example.com/docs again,\n" +
		"then http://other.test/page."
	urls := ExtractURLs(text)
	want := []string{"https://example.com/docs", "http://other.test/page"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("urls = %v, want %v", urls, want)
	}
}

func TestExtractURLs_TrailingPunctuation(t *testing.T) {
	urls := ExtractURLs("Read https://example.com/a. Then https://example.com/b!")
	want := []string{"https://example.com/a", "https://example.com/b"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("urls = %v, want %v", urls, want)
	}
}

func TestExtractURLs_None(t *testing.T) {
	if urls := ExtractURLs("no links in here, not even ftp://old.example"); len(urls) != 0 {
		t.Errorf("urls = %v, want empty", urls)
	}
}

func TestFilterDomain(t *testing.T) {
	urls := []string{
		"https://blog.example.com/post",
		"https://BLOG.example.com/other",
		"https://elsewhere.test/page",
	}
	got := FilterDomain(urls, "blog.example.com")
	want := []string{"https://blog.example.com/post", "https://BLOG.example.com/other"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got = %v, want %v", got, want)
	}
}

func TestFilterDomain_EmptyKeepsAll(t *testing.T) {
	urls := []string{"https://a.test/x", "https://b.test/y"}
	if got := FilterDomain(urls, ""); !reflect.DeepEqual(got, urls) {
		t.Errorf("got = %v, want all URLs untouched", got)
	}
}

func TestCheck_StatusClasses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("method = %s, want HEAD", r.Method)
		}
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/gone":
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	checker := NewChecker(5*time.Second, "test-agent", 2)
	urls := []string{srv.URL + "/ok", srv.URL + "/gone", srv.URL + "/boom"}
	results := checker.Check(context.Background(), urls)

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	// Results come back in input order regardless of completion order.
	for i, u := range urls {
		if results[i].URL != u {
			t.Errorf("results[%d].URL = %q, want %q", i, results[i].URL, u)
		}
	}
	if results[0].Broken() {
		t.Errorf("200 reported broken: %+v", results[0])
	}
	if !results[1].Broken() || !results[2].Broken() {
		t.Errorf("4xx/5xx not reported broken: %+v %+v", results[1], results[2])
	}
}

func TestCheck_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead := srv.URL
	srv.Close()

	checker := NewChecker(2*time.Second, "", 1)
	results := checker.Check(context.Background(), []string{dead})
	if len(results) != 1 || !results[0].Broken() || results[0].Err == nil {
		t.Errorf("results = %+v, want one transport failure", results)
	}
}
