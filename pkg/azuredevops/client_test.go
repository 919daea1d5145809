package azuredevops

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func expectPAT(t *testing.T, r *http.Request, pat string) {
	t.Helper()
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte(":"+pat))
	if got := r.Header.Get("Authorization"); got != want {
		t.Errorf("unexpected authorization header %q", got)
	}
}

func TestValidatePAT(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			expectPAT(t, r, "az-pat")
			json.NewEncoder(w).Encode(map[string]any{"count": 0, "value": []any{}})
		}))
		defer srv.Close()

		c := NewClient()
		c.SetBaseURL(srv.URL)

		res := c.ValidatePAT(context.Background(), "az-pat", "acme-org")
		if !res.IsValid {
			t.Errorf("expected valid PAT, got reason %q", res.Reason)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		}))
		defer srv.Close()

		c := NewClient()
		c.SetBaseURL(srv.URL)

		res := c.ValidatePAT(context.Background(), "bad-pat", "acme-org")
		if res.IsValid {
			t.Fatal("expected invalid PAT")
		}
		if res.Reason != "unexpected status 401" {
			t.Errorf("unexpected reason %q", res.Reason)
		}
	})

	t.Run("Missing Arguments Never Hit Network", func(t *testing.T) {
		c := NewClient()
		c.SetBaseURL("http://127.0.0.1:0")

		if res := c.ValidatePAT(context.Background(), "", "acme-org"); res.IsValid {
			t.Error("expected invalid result for empty pat")
		}
		if res := c.ValidatePAT(context.Background(), "az-pat", ""); res.IsValid {
			t.Error("expected invalid result for empty organization")
		}
	})
}

func TestListProjects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/acme-org/_apis/projects" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"count": 2,
			"value": []Project{
				{ID: "proj-guid-1", Name: "Widgets"},
				{ID: "proj-guid-2", Name: "Gadgets"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient()
	c.SetBaseURL(srv.URL)

	projects, err := c.ListProjects(context.Background(), "az-pat", "acme-org")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects) != 2 || projects[0].Name != "Widgets" {
		t.Errorf("unexpected projects %+v", projects)
	}
}

func TestListBranches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/acme-org/Widgets/_apis/git/repositories/repo-guid-1/refs" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if filter := r.URL.Query().Get("filter"); filter != "heads/" {
			t.Errorf("expected heads filter, got %q", filter)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"count": 2,
			"value": []Branch{
				{Name: "refs/heads/main", ObjectID: "aaa111"},
				{Name: "refs/heads/feature/login", ObjectID: "bbb222"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient()
	c.SetBaseURL(srv.URL)

	branches, err := c.ListBranches(context.Background(), "az-pat", "acme-org", "Widgets", "repo-guid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(branches) != 2 {
		t.Fatalf("expected 2 branches, got %d", len(branches))
	}
	if branches[0].Name != "main" || branches[1].Name != "feature/login" {
		t.Errorf("expected refs/heads/ prefix stripped, got %+v", branches)
	}
}

func TestDownloadRepository(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			expectPAT(t, r, "az-pat")
			q := r.URL.Query()
			if q.Get("$format") != "zip" || q.Get("download") != "true" {
				t.Errorf("expected zip download query, got %q", r.URL.RawQuery)
			}
			if q.Get("versionDescriptor.version") != "develop" {
				t.Errorf("unexpected branch %q", q.Get("versionDescriptor.version"))
			}
			if q.Get("versionDescriptor.versionType") != "branch" {
				t.Errorf("unexpected version type %q", q.Get("versionDescriptor.versionType"))
			}
			w.Write([]byte("PK\x03\x04fake-zip"))
		}))
		defer srv.Close()

		c := NewClient()
		c.SetBaseURL(srv.URL)

		data, err := c.DownloadRepository(context.Background(), "az-pat", "acme-org", "Widgets", "repo-guid-1", "develop")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != "PK\x03\x04fake-zip" {
			t.Errorf("unexpected archive body %q", data)
		}
	})

	t.Run("Empty Branch Defaults To Main", func(t *testing.T) {
		var gotBranch string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotBranch = r.URL.Query().Get("versionDescriptor.version")
			w.Write([]byte("PK\x03\x04"))
		}))
		defer srv.Close()

		c := NewClient()
		c.SetBaseURL(srv.URL)

		if _, err := c.DownloadRepository(context.Background(), "az-pat", "acme-org", "Widgets", "repo-guid-1", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotBranch != "main" {
			t.Errorf("expected branch main, got %q", gotBranch)
		}
	})

	t.Run("Not Found Names The Ids", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		c := NewClient()
		c.SetBaseURL(srv.URL)

		_, err := c.DownloadRepository(context.Background(), "az-pat", "acme-org", "Widgets", "repo-guid-1", "main")
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("Empty Archive Is An Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		c := NewClient()
		c.SetBaseURL(srv.URL)

		_, err := c.DownloadRepository(context.Background(), "az-pat", "acme-org", "Widgets", "repo-guid-1", "main")
		if !errors.Is(err, ErrEmptyArchive) {
			t.Errorf("expected ErrEmptyArchive, got %v", err)
		}
	})
}
