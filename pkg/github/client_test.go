package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSplitRepositoryURL(t *testing.T) {
	cases := []struct {
		name    string
		url     string
		owner   string
		repo    string
		wantErr bool
	}{
		{name: "Plain HTTPS URL", url: "https://github.com/acme/widgets", owner: "acme", repo: "widgets"},
		{name: "Trailing Slash", url: "https://github.com/acme/widgets/", owner: "acme", repo: "widgets"},
		{name: "Git Suffix", url: "https://github.com/acme/widgets.git", owner: "acme", repo: "widgets"},
		{name: "Git Suffix And Slash", url: "https://github.com/acme/widgets.git/", owner: "acme", repo: "widgets"},
		{name: "No Path", url: "widgets", wantErr: true},
		{name: "Empty", url: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			owner, repo, err := SplitRepositoryURL(tc.url)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if owner != tc.owner || repo != tc.repo {
				t.Errorf("got %s/%s, want %s/%s", owner, repo, tc.owner, tc.repo)
			}
		})
	}
}

func TestDownloadRepository(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotPath, gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte("PK\x03\x04fake-zip"))
		}))
		defer srv.Close()

		c := NewClient()
		c.SetCodeloadURL(srv.URL)

		data, err := c.DownloadRepository(context.Background(), "https://github.com/acme/widgets", "main", "gh-token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/acme/widgets/zip/refs/heads/main" {
			t.Errorf("unexpected download path %q", gotPath)
		}
		if gotAuth != "Bearer gh-token" {
			t.Errorf("unexpected auth header %q", gotAuth)
		}
		if string(data) != "PK\x03\x04fake-zip" {
			t.Errorf("unexpected archive body %q", data)
		}
	})

	t.Run("No Token Omits Authorization", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte("PK\x03\x04"))
		}))
		defer srv.Close()

		c := NewClient()
		c.SetCodeloadURL(srv.URL)

		if _, err := c.DownloadRepository(context.Background(), "https://github.com/acme/widgets", "main", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotAuth != "" {
			t.Errorf("expected no auth header, got %q", gotAuth)
		}
	})

	t.Run("Empty Body Is An Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := NewClient()
		c.SetCodeloadURL(srv.URL)

		_, err := c.DownloadRepository(context.Background(), "https://github.com/acme/widgets", "main", "")
		if !errors.Is(err, ErrEmptyArchive) {
			t.Errorf("expected ErrEmptyArchive, got %v", err)
		}
	})

	t.Run("Not Found Surfaces Status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		c := NewClient()
		c.SetCodeloadURL(srv.URL)

		_, err := c.DownloadRepository(context.Background(), "https://github.com/acme/widgets", "main", "")
		if err == nil || !strings.Contains(err.Error(), "404") {
			t.Errorf("expected 404 error, got %v", err)
		}
	})
}

func TestCreateHook(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotPath string
		var gotPayload map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			json.NewDecoder(r.Body).Decode(&gotPayload)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(Hook{ID: 4242})
		}))
		defer srv.Close()

		c := NewClient()
		c.SetAPIURL(srv.URL)

		hook, err := c.CreateHook(context.Background(), "acme", "widgets", "https://gateway.example.com/api/webhook/github", "s3cret", "gh-token")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hook.ID != 4242 {
			t.Errorf("expected hook ID 4242, got %d", hook.ID)
		}
		if gotPath != "/repos/acme/widgets/hooks" {
			t.Errorf("unexpected path %q", gotPath)
		}
		config, _ := gotPayload["config"].(map[string]any)
		if config["url"] != "https://gateway.example.com/api/webhook/github" {
			t.Errorf("unexpected callback url %v", config["url"])
		}
		if config["secret"] != "s3cret" {
			t.Errorf("unexpected secret %v", config["secret"])
		}
		if config["content_type"] != "json" {
			t.Errorf("unexpected content type %v", config["content_type"])
		}
	})

	t.Run("Unprocessable Hook Fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"Hook already exists"}`, http.StatusUnprocessableEntity)
		}))
		defer srv.Close()

		c := NewClient()
		c.SetAPIURL(srv.URL)

		_, err := c.CreateHook(context.Background(), "acme", "widgets", "https://cb", "s", "t")
		if err == nil || !strings.Contains(err.Error(), "422") {
			t.Errorf("expected 422 error, got %v", err)
		}
	})
}

func TestCreateIssueComment(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		gotBody = payload["body"]
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient()
	c.SetAPIURL(srv.URL)

	if err := c.CreateIssueComment(context.Background(), "acme", "widgets", 17, "looks good", "gh-token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/repos/acme/widgets/issues/17/comments" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotBody != "looks good" {
		t.Errorf("unexpected comment body %q", gotBody)
	}
}

func TestFetchDiff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer gh-token" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Write([]byte("diff --git a/main.go b/main.go"))
	}))
	defer srv.Close()

	c := NewClient()

	diff, err := c.FetchDiff(context.Background(), srv.URL+"/acme/widgets/pull/17.diff", "gh-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(string(diff), "diff --git") {
		t.Errorf("unexpected diff body %q", diff)
	}
}
