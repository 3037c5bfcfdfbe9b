package story

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"launchstories/internal/model"

	"github.com/google/uuid"
)

type SheetStore interface {
	SheetName(ctx context.Context) (string, error)
	Append(ctx context.Context, sheet string, row []any) error
	Rows(ctx context.Context, sheet string) ([][]string, error)
}

type DocumentArchive interface {
	CreateLaunchStoryDoc(ctx context.Context, s model.Story, now time.Time) (string, error)
}

type Notifier interface {
	NotifyStory(ctx context.Context, s model.Story, docURL string) error
}

type Ledger interface {
	SaveSubmission(ctx context.Context, sub *model.Submission) error
}

type LeaderboardCache interface {
	Get(ctx context.Context) ([]model.Contributor, bool)
	Set(ctx context.Context, contributors []model.Contributor)
	Invalidate(ctx context.Context)
}

// Deps wires the service. Only Sheets is required.
type Deps struct {
	Sheets   SheetStore
	Docs     DocumentArchive
	Notifier Notifier
	Ledger   Ledger
	Cache    LeaderboardCache
	Now      func() time.Time
}

type Service struct {
	sheets   SheetStore
	docs     DocumentArchive
	notifier Notifier
	ledger   Ledger
	cache    LeaderboardCache
	now      func() time.Time

	// generation counts successful appends. A leaderboard read only caches
	// its result if no append happened while it was reading the sheet.
	generation atomic.Uint64
}

type SubmitResult struct {
	ID     string
	DocURL string
}

func NewService(d Deps) *Service {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		sheets:   d.Sheets,
		docs:     d.Docs,
		notifier: d.Notifier,
		ledger:   d.Ledger,
		cache:    d.Cache,
		now:      now,
	}
}

// Submit validates the story and appends it to the sheet. Only the append can
// fail the submission; the doc, Slack and ledger steps log and carry on.
func (s *Service) Submit(ctx context.Context, st model.Story) (*SubmitResult, error) {
	if err := Validate(st); err != nil {
		return nil, err
	}

	now := s.now()
	id := uuid.NewString()

	sheet, err := s.sheets.SheetName(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve sheet name: %w", err)
	}

	err = s.sheets.Append(ctx, sheet, FormatRow(st, now))
	if err != nil {
		return nil, fmt.Errorf("append story row: %w", err)
	}

	slog.Info("story appended", "submission_id", id, "sheet", sheet, "merchant", st.MerchantName)

	s.generation.Add(1)
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	res := &SubmitResult{ID: id}

	if s.docs != nil {
		docURL, err := s.docs.CreateLaunchStoryDoc(ctx, st, now)
		if err != nil {
			slog.Error("error creating launch story doc", "error", err, "submission_id", id)
		} else {
			res.DocURL = docURL
		}
	}

	notified := false
	if s.notifier != nil {
		err := s.notifier.NotifyStory(ctx, st, res.DocURL)
		if err != nil {
			slog.Error("error sending slack notification", "error", err, "submission_id", id)
		} else {
			notified = true
		}
	}

	if s.ledger != nil {
		sub := &model.Submission{
			ID:               id,
			MerchantName:     st.MerchantName,
			LaunchConsultant: NormalizeName(st.LaunchConsultant),
			SheetName:        sheet,
			DocURL:           res.DocURL,
			SlackNotified:    notified,
			CreatedAt:        now,
		}
		if err := s.ledger.SaveSubmission(ctx, sub); err != nil {
			slog.Error("error saving submission record", "error", err, "submission_id", id)
		}
	}

	return res, nil
}

func (s *Service) Leaderboard(ctx context.Context) ([]model.Contributor, error) {
	if s.cache != nil {
		if contributors, ok := s.cache.Get(ctx); ok {
			return contributors, nil
		}
	}

	gen := s.generation.Load()

	rows, err := s.AllRows(ctx)
	if err != nil {
		return nil, err
	}

	contributors := BuildLeaderboard(rows)

	if s.cache != nil && s.generation.Load() == gen {
		s.cache.Set(ctx, contributors)
	}

	return contributors, nil
}

// AllRows returns every story row below the header.
func (s *Service) AllRows(ctx context.Context) ([][]string, error) {
	sheet, err := s.sheets.SheetName(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve sheet name: %w", err)
	}

	rows, err := s.sheets.Rows(ctx, sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet rows: %w", err)
	}

	return rows, nil
}

func (s *Service) Ping(ctx context.Context) error {
	_, err := s.sheets.SheetName(ctx)
	return err
}
