package imageres

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/goliatone/go-formdoc/pkg/formdoc"
)

func mediaItem(id string, kind formdoc.ItemType, source string) formdoc.Item {
	return formdoc.Item{ID: id, Type: kind, Value: source}
}

func TestPrefetchWarmsCacheWithDeduplication(t *testing.T) {
	var requests atomic.Int64
	payload := pngBytes(t, 40, 30)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.Write(payload)
	}))
	defer server.Close()

	doc := formdoc.FormDocument{Sections: []formdoc.Section{{
		ID: "s", Show: true,
		Columns: []formdoc.Column{{
			Items: []formdoc.Item{
				mediaItem("p1", formdoc.ItemTypePhoto, server.URL+"/one.png"),
				mediaItem("p2", formdoc.ItemTypePhoto, server.URL+"/one.png"),
				mediaItem("p3", formdoc.ItemTypePhoto, server.URL+"/two.png"),
				{ID: "t1", Type: formdoc.ItemTypeText, Value: "not media"},
			},
		}},
	}}}

	r := New(WithLogger(quietLogger()))
	if err := r.Prefetch(context.Background(), doc, 2); err != nil {
		t.Fatalf("prefetch: %v", err)
	}

	if got := requests.Load(); got != 2 {
		t.Fatalf("expected 2 fetches for 2 distinct sources, got %d", got)
	}

	// The build that follows reads everything from cache.
	before := requests.Load()
	r.Resolve(context.Background(), server.URL+"/one.png", CategoryPhoto)
	r.Resolve(context.Background(), server.URL+"/two.png", CategoryPhoto)
	if requests.Load() != before {
		t.Fatal("resolution after prefetch should not touch the network")
	}
}

func TestPrefetchSkipsHiddenSections(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.Write(pngBytes(t, 10, 10))
	}))
	defer server.Close()

	doc := formdoc.FormDocument{Sections: []formdoc.Section{{
		ID: "hidden", Show: false,
		Columns: []formdoc.Column{{
			Items: []formdoc.Item{mediaItem("p", formdoc.ItemTypePhoto, server.URL+"/x.png")},
		}},
	}}}

	r := New(WithLogger(quietLogger()))
	if err := r.Prefetch(context.Background(), doc, 0); err != nil {
		t.Fatalf("prefetch: %v", err)
	}
	if requests.Load() != 0 {
		t.Fatalf("hidden section media fetched %d times", requests.Load())
	}
}

func TestPrefetchSampleSourceFallback(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.Write(pngBytes(t, 10, 10))
	}))
	defer server.Close()

	doc := formdoc.FormDocument{Sections: []formdoc.Section{{
		ID: "s", Show: true,
		Columns: []formdoc.Column{{
			Items: []formdoc.Item{{
				ID: "d", Type: formdoc.ItemTypeDrawing,
				SampleMediaSource: server.URL + "/sample.png",
			}},
		}},
	}}}

	r := New(WithLogger(quietLogger()))
	if err := r.Prefetch(context.Background(), doc, 1); err != nil {
		t.Fatalf("prefetch: %v", err)
	}
	if requests.Load() != 1 {
		t.Fatalf("expected sample source fetch, got %d", requests.Load())
	}
}

func TestPrefetchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc := formdoc.FormDocument{Sections: []formdoc.Section{{
		ID: "s", Show: true,
		Columns: []formdoc.Column{{
			Items: []formdoc.Item{mediaItem("p", formdoc.ItemTypePhoto, "https://img.example.com/a.png")},
		}},
	}}}

	r := New(WithLogger(quietLogger()))
	if err := r.Prefetch(ctx, doc, 1); err == nil {
		t.Fatal("expected context cancellation error")
	}
}
