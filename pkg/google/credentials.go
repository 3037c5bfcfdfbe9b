package google

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var Scopes = []string{
	sheets.SpreadsheetsScope,
	drive.DriveFileScope,
	docs.DocumentsScope,
}

// Credentials identify the service account the spreadsheet and Drive folder are shared with.
type Credentials struct {
	ClientEmail string
	PrivateKey  string
	ProjectID   string
}

func (c Credentials) Validate() error {
	var missing []string
	if c.ClientEmail == "" {
		missing = append(missing, "GOOGLE_SHEETS_CLIENT_EMAIL")
	}
	if c.PrivateKey == "" {
		missing = append(missing, "GOOGLE_SHEETS_PRIVATE_KEY")
	}
	if c.ProjectID == "" {
		missing = append(missing, "GOOGLE_SHEETS_PROJECT_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// privateKey expands the literal \n sequences env files store the PEM with.
func (c Credentials) privateKey() []byte {
	return []byte(strings.ReplaceAll(c.PrivateKey, `\n`, "\n"))
}

func (c Credentials) TokenSource(ctx context.Context) oauth2.TokenSource {
	cfg := &jwt.Config{
		Email:      c.ClientEmail,
		PrivateKey: c.privateKey(),
		Scopes:     Scopes,
		TokenURL:   googleoauth.JWTTokenURL,
	}
	return cfg.TokenSource(ctx)
}

// ClientOptions authenticates API services with the service account.
func (c Credentials) ClientOptions(ctx context.Context) ([]option.ClientOption, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return []option.ClientOption{option.WithTokenSource(c.TokenSource(ctx))}, nil
}
