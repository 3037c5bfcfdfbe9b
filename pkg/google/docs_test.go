package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"launchstories/internal/model"

	"github.com/go-playground/assert/v2"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

func TestCreateLaunchStoryDoc(t *testing.T) {
	var title, inserted, addParents string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/v1/documents"):
			var d struct {
				Title string `json:"title"`
			}
			json.NewDecoder(r.Body).Decode(&d)
			title = d.Title
			json.NewEncoder(w).Encode(map[string]any{"documentId": "doc-123"})
		case r.Method == http.MethodPatch && strings.HasSuffix(r.URL.Path, "/files/doc-123"):
			addParents = r.URL.Query().Get("addParents")
			json.NewEncoder(w).Encode(map[string]any{"id": "doc-123"})
		case strings.HasSuffix(r.URL.Path, "/v1/documents/doc-123:batchUpdate"):
			var req struct {
				Requests []struct {
					InsertText struct {
						Text string `json:"text"`
					} `json:"insertText"`
				} `json:"requests"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.Requests) > 0 {
				inserted = req.Requests[0].InsertText.Text
			}
			json.NewEncoder(w).Encode(map[string]any{"documentId": "doc-123"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	docsService, err := docs.NewService(ctx, option.WithEndpoint(srv.URL+"/"), option.WithHTTPClient(srv.Client()))
	assert.Equal(t, nil, err)
	driveService, err := drive.NewService(ctx, option.WithEndpoint(srv.URL+"/drive/v3/"), option.WithHTTPClient(srv.Client()))
	assert.Equal(t, nil, err)

	client, err := NewDocsClient(docsService, driveService, "folder-9")
	assert.Equal(t, nil, err)

	s := model.Story{
		MerchantName:     "Acme",
		LaunchConsultant: "Jane Doe",
		LineOfBusiness:   []model.LineOfBusiness{model.D2C},
		GMV:              map[model.LineOfBusiness]string{model.D2C: "1,000"},
		EnhancedStory:    "CHALLENGE: ...",
	}
	now := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)

	url, err := client.CreateLaunchStoryDoc(ctx, s, now)

	assert.Equal(t, nil, err)
	assert.Equal(t, "https://docs.google.com/document/d/doc-123/edit", url)
	assert.Equal(t, "Launch Story - Acme - 03/04/2026", title)
	assert.Equal(t, "folder-9", addParents)
	assert.Equal(t, true, strings.Contains(inserted, "Merchant Name: Acme"))
}

func TestNewDocsClient_RequiresFolder(t *testing.T) {
	_, err := NewDocsClient(nil, nil, "")
	assert.NotEqual(t, nil, err)
}

func newDriveFolderServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/files/folder-9") {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"id": "folder-9", "name": "Launch Stories"})
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheckFolder(t *testing.T) {
	srv := newDriveFolderServer(t)
	ctx := context.Background()

	driveService, err := drive.NewService(ctx, option.WithEndpoint(srv.URL+"/drive/v3/"), option.WithHTTPClient(srv.Client()))
	assert.Equal(t, nil, err)

	client, err := NewDocsClient(nil, driveService, "folder-9")
	assert.Equal(t, nil, err)

	name, err := client.CheckFolder(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, "Launch Stories", name)

	missing, err := NewDocsClient(nil, driveService, "folder-unshared")
	assert.Equal(t, nil, err)

	_, err = missing.CheckFolder(ctx)
	assert.NotEqual(t, nil, err)
	assert.Equal(t, true, strings.Contains(err.Error(), "folder-unshared"))
}
