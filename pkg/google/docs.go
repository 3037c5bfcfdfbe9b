package google

import (
	"context"
	"errors"
	"fmt"
	"time"

	"launchstories/internal/model"
	"launchstories/internal/story"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const docURLFormat = "https://docs.google.com/document/d/%s/edit"

// DocsClient archives stories as Google Docs inside a Drive folder.
type DocsClient struct {
	docs     *docs.Service
	drive    *drive.Service
	folderID string
}

func NewDocsClient(docsService *docs.Service, driveService *drive.Service, folderID string) (*DocsClient, error) {
	if folderID == "" {
		return nil, errors.New("GOOGLE_DRIVE_FOLDER_ID is not defined")
	}
	return &DocsClient{docs: docsService, drive: driveService, folderID: folderID}, nil
}

func NewDocsClientFromOptions(ctx context.Context, folderID string, opts ...option.ClientOption) (*DocsClient, error) {
	docsService, err := docs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize docs API: %w", err)
	}

	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize drive API: %w", err)
	}

	return NewDocsClient(docsService, driveService, folderID)
}

// CheckFolder fetches the archive folder's metadata, which fails when the
// folder is missing or not shared with the service account.
func (c *DocsClient) CheckFolder(ctx context.Context) (string, error) {
	f, err := c.drive.Files.Get(c.folderID).
		SupportsAllDrives(true).
		Fields("id", "name").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("get drive folder %s: %w", c.folderID, err)
	}
	return f.Name, nil
}

func (c *DocsClient) CreateLaunchStoryDoc(ctx context.Context, s model.Story, now time.Time) (string, error) {
	doc, err := c.docs.Documents.Create(&docs.Document{Title: story.DocumentTitle(s, now)}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create doc: %w", err)
	}
	if doc.DocumentId == "" {
		return "", errors.New("failed to create Google Doc")
	}

	_, err = c.drive.Files.Update(doc.DocumentId, &drive.File{}).
		AddParents(c.folderID).
		SupportsAllDrives(true).
		Fields("id", "parents").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("move doc %s to folder: %w", doc.DocumentId, err)
	}

	req := &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{
			{
				InsertText: &docs.InsertTextRequest{
					Location: &docs.Location{Index: 1},
					Text:     story.FormatDocument(s, now),
				},
			},
		},
	}
	_, err = c.docs.Documents.BatchUpdate(doc.DocumentId, req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("write doc %s: %w", doc.DocumentId, err)
	}

	return fmt.Sprintf(docURLFormat, doc.DocumentId), nil
}
