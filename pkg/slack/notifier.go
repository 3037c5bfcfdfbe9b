package slack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"launchstories/internal/model"
	"launchstories/internal/story"

	"github.com/slack-go/slack"
)

// Notifier announces submitted stories on an incoming webhook.
type Notifier struct {
	webhookURL string
	httpClient *http.Client
}

func NewNotifier(webhookURL string) (*Notifier, error) {
	if webhookURL == "" {
		return nil, errors.New("slack webhook URL not configured")
	}
	return &Notifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (n *Notifier) NotifyStory(ctx context.Context, s model.Story, docURL string) error {
	msg := BuildMessage(s, docURL)

	err := slack.PostWebhookCustomHTTPContext(ctx, n.webhookURL, n.httpClient, msg)
	if err != nil {
		return fmt.Errorf("post slack webhook: %w", err)
	}
	return nil
}

func BuildMessage(s model.Story, docURL string) *slack.WebhookMessage {
	var lobs []string
	for _, l := range s.LineOfBusiness {
		lobs = append(lobs, string(l))
	}

	var gmv []string
	for _, line := range story.GMVLines(s) {
		gmv = append(gmv, "• "+line)
	}

	links := fmt.Sprintf("*Links:*\n• <%s|Salesforce Case>", s.SalesforceCaseLink)
	if docURL != "" {
		links += fmt.Sprintf("\n• <%s|View Full Story in Google Docs>", docURL)
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(plain("🚀 New Launch Story Submitted! 🎉")),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			mrkdwn("*Merchant:*\n" + s.MerchantName),
			mrkdwn("*Launch Consultant:*\n" + story.NormalizeName(s.LaunchConsultant)),
		}, nil),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			mrkdwn("*Launch Status:*\n" + s.LaunchStatus),
			mrkdwn("*Business Lines:*\n" + strings.Join(lobs, ", ")),
		}, nil),
		slack.NewSectionBlock(mrkdwn(fmt.Sprintf("*GMV Details:*\n%s\n*Total GMV: $%s*",
			strings.Join(gmv, "\n"), formatAmount(story.TotalGMV(s)))), nil, nil),
		slack.NewSectionBlock(mrkdwn(links), nil, nil),
		slack.NewDividerBlock(),
	}

	return &slack.WebhookMessage{
		Text:   fmt.Sprintf("New launch story submitted for %s", s.MerchantName),
		Blocks: &slack.Blocks{BlockSet: blocks},
	}
}

func plain(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, true, false)
}

func mrkdwn(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, text, false, false)
}

// formatAmount renders 1234567.5 as 1,234,567.5.
func formatAmount(v float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	whole, frac, _ := strings.Cut(s, ".")

	var sb strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteRune(',')
		}
		sb.WriteRune(r)
	}
	if frac != "" {
		sb.WriteString("." + frac)
	}
	return sb.String()
}
