package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"launchstories/internal/config"
	"launchstories/internal/model"

	"github.com/go-playground/assert/v2"
	"github.com/xuri/excelize/v2"
	"google.golang.org/api/option"
)

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	assert.Equal(t, nil, err)
	assert.Equal(t, "storyctl dev\n", buf.String())
}

func TestSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"version", "leaderboard", "export", "check", "recent"} {
		assert.Equal(t, true, names[want])
	}
}

func TestPrintLeaderboard(t *testing.T) {
	var buf bytes.Buffer
	err := printLeaderboard(&buf, []model.Contributor{
		{Name: "Jane Doe", Submissions: 5, Rank: 1},
		{Name: "Sam Lee", Submissions: 5, Rank: 1},
		{Name: "Ann Wu", Submissions: 2, Rank: 3},
	})
	assert.Equal(t, nil, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 4, len(lines))
	assert.Equal(t, []string{"RANK", "CONSULTANT", "SUBMISSIONS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "Sam", "Lee", "5"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"3", "Ann", "Wu", "2"}, strings.Fields(lines[3]))
}

func TestPrintLeaderboardEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := printLeaderboard(&buf, nil)
	assert.Equal(t, nil, err)
	assert.Equal(t, "No stories submitted yet.\n", buf.String())
}

func TestPrintSubmissions(t *testing.T) {
	var buf bytes.Buffer
	err := printSubmissions(&buf, []model.Submission{
		{
			MerchantName:     "Acme",
			LaunchConsultant: "Jane Doe",
			DocURL:           "https://docs.google.com/document/d/abc/edit",
			SlackNotified:    true,
			CreatedAt:        time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
		},
		{MerchantName: "Globex", LaunchConsultant: "Sam Lee", CreatedAt: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)},
	})
	assert.Equal(t, nil, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, []string{"2024-03-05", "14:30", "Jane", "Doe", "Acme", "yes", "https://docs.google.com/document/d/abc/edit"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"2024-03-04", "09:00", "Sam", "Lee", "Globex", "no", "-"}, strings.Fields(lines[2]))
}

func TestPrintChecks(t *testing.T) {
	tests := []struct {
		name    string
		results []checkResult
		wantErr string
	}{
		{
			name: "all ok or skipped",
			results: []checkResult{
				{Name: "google sheets", Status: statusOK, Detail: "sheet \"Stories\""},
				{Name: "redis", Status: statusSkipped, Detail: "REDIS_URL not set"},
			},
		},
		{
			name: "one failure",
			results: []checkResult{
				{Name: "google sheets", Status: statusOK},
				{Name: "postgres", Status: statusFailed, Detail: "connection refused"},
			},
			wantErr: "1 of 2 checks failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := printChecks(&buf, tt.results)
			if tt.wantErr == "" {
				assert.Equal(t, nil, err)
			} else {
				assert.NotEqual(t, nil, err)
				assert.Equal(t, tt.wantErr, err.Error())
			}
			assert.Equal(t, len(tt.results), strings.Count(buf.String(), "\n"))
		})
	}
}

func TestRunProbesKeepsOrder(t *testing.T) {
	probes := []probe{
		{name: "slow", run: func(ctx context.Context, cfg config.Config) (string, string) {
			time.Sleep(20 * time.Millisecond)
			return statusOK, "done"
		}},
		{name: "failing", run: func(ctx context.Context, cfg config.Config) (string, string) {
			return statusFailed, "boom"
		}},
		{name: "fast", run: func(ctx context.Context, cfg config.Config) (string, string) {
			return statusSkipped, cfg.Port
		}},
	}

	results := runProbes(context.Background(), config.Config{Port: "8080"}, probes)

	assert.Equal(t, []checkResult{
		{Name: "slow", Status: statusOK, Detail: "done"},
		{Name: "failing", Status: statusFailed, Detail: "boom"},
		{Name: "fast", Status: statusSkipped, Detail: "8080"},
	}, results)
}

func TestProbesWithoutConfiguration(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{LLMProvider: config.ProviderOpenAI}

	status, _ := probeSheets(ctx, cfg)
	assert.Equal(t, statusFailed, status)

	status, _ = probeDrive(ctx, cfg)
	assert.Equal(t, statusSkipped, status)

	status, _ = probeSlack(ctx, cfg)
	assert.Equal(t, statusSkipped, status)

	status, _ = probeLLM(ctx, cfg)
	assert.Equal(t, statusSkipped, status)

	status, _ = probePostgres(ctx, cfg)
	assert.Equal(t, statusSkipped, status)

	status, _ = probeRedis(ctx, cfg)
	assert.Equal(t, statusSkipped, status)
}

func TestProbeLLMUnknownProvider(t *testing.T) {
	status, detail := probeLLM(context.Background(), config.Config{LLMProvider: "mistral"})
	assert.Equal(t, statusFailed, status)
	assert.Equal(t, `unknown LLM_PROVIDER "mistral"`, detail)
}

func TestProbeSheetsMissingCredentials(t *testing.T) {
	status, detail := probeSheets(context.Background(), config.Config{SheetsID: "sheet-123"})
	assert.Equal(t, statusFailed, status)
	assert.Equal(t, true, strings.Contains(detail, "GOOGLE_SHEETS_CLIENT_EMAIL"))
}

func TestCheckDriveFolder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/files/folder-9") {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"id": "folder-9", "name": "Launch Stories"})
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	opts := []option.ClientOption{option.WithEndpoint(srv.URL + "/"), option.WithHTTPClient(srv.Client())}

	status, detail := checkDriveFolder(context.Background(), "folder-9", opts...)
	assert.Equal(t, statusOK, status)
	assert.Equal(t, `folder "Launch Stories" (folder-9)`, detail)

	status, _ = checkDriveFolder(context.Background(), "folder-missing", opts...)
	assert.Equal(t, statusFailed, status)
}

type fakeSheetReader struct {
	header []string
	rows   [][]string
}

func (f *fakeSheetReader) SheetName(ctx context.Context) (string, error) {
	return "Stories", nil
}

func (f *fakeSheetReader) Header(ctx context.Context, sheet string) ([]string, error) {
	return f.header, nil
}

func (f *fakeSheetReader) Rows(ctx context.Context, sheet string) ([][]string, error) {
	return f.rows, nil
}

func TestExportSheetUsesSheetHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stories.xlsx")
	src := &fakeSheetReader{
		header: []string{"Launch Consultant", "Merchant Name", "Region"},
		rows:   [][]string{{"Jane Doe", "Acme", "EMEA"}, {"Jane Doe", "Globex", "APAC"}},
	}

	stories, consultants, err := exportSheet(context.Background(), src, path)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, stories)
	assert.Equal(t, 1, consultants)

	f, err := excelize.OpenFile(path)
	assert.Equal(t, nil, err)
	defer f.Close()

	rows, err := f.GetRows("Stories")
	assert.Equal(t, nil, err)
	assert.Equal(t, src.header, rows[0])
	assert.Equal(t, []string{"Jane Doe", "Globex", "APAC"}, rows[2])
}
