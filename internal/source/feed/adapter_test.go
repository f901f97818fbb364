package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dashy/dashy/internal/model"
	"github.com/dashy/dashy/internal/source"
)

func TestFetchMapsFeedEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/notifications" {
			t.Errorf("polled %s, want /notifications", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": "e1", "title": "New video", "message": "watch", "type": "youtube",
			 "actionData": {"videoId": "v1", "videoTitle": "Go Talk"}},
			{"id": "e2", "title": "Untyped entry", "message": "hello"},
			{"id": "e3", "message": "no title, dropped"}
		]`))
	}))
	defer srv.Close()

	a := NewAdapter("main feed", srv.URL, "", "")
	records, err := a.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Type != model.NotificationYoutube {
		t.Errorf("record 0 type = %q", records[0].Type)
	}
	if records[0].ActionData["videoId"] != "v1" {
		t.Errorf("action data not mapped: %+v", records[0].ActionData)
	}
	if records[1].Type != model.NotificationStandard {
		t.Errorf("untyped entry got type %q, want standard", records[1].Type)
	}
}

func TestFetchDeduplicatesAcrossPolls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": "e1", "title": "same entry"}]`))
	}))
	defer srv.Close()

	a := NewAdapter("main feed", srv.URL, "", "")
	ctx := context.Background()

	first, err := a.Fetch(ctx)
	if err != nil {
		t.Fatalf("first Fetch: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("first poll returned %d records", len(first))
	}

	second, err := a.Fetch(ctx)
	if err != nil {
		t.Fatalf("second Fetch: %v", err)
	}
	if len(second) != 0 {
		t.Errorf("second poll redelivered %d records", len(second))
	}
}

func TestFetchSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := NewAdapter("main feed", srv.URL, "", "secret-token")
	if _, err := a.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestFetchReturnsAuthErrorOnUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := NewAdapter("main feed", srv.URL, "", "expired")
	_, err := a.Fetch(context.Background())
	if err == nil {
		t.Fatal("no error on 401")
	}
	if !source.IsAuthError(err) {
		t.Errorf("error %v is not an AuthError", err)
	}
}

func TestFetchCustomPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := NewAdapter("main feed", srv.URL, "/v2/updates", "")
	if _, err := a.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotPath != "/v2/updates" {
		t.Errorf("polled %q, want /v2/updates", gotPath)
	}
}
