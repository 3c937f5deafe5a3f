package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/caroogle/bob/internal/metrics"
	domain "github.com/caroogle/bob/pkg/types"
)

// maxBatchBlocks is the number of alert sections sent in one batch message.
// Slack rejects messages with more than 50 blocks.
const maxBatchBlocks = 20

// SlackNotifier implements Notifier via a Slack incoming webhook.
type SlackNotifier struct {
	webhookURL string
	channel    string
	client     *http.Client
	limiter    *rate.Limiter
	log        *slog.Logger
}

// SlackOption configures a SlackNotifier.
type SlackOption func(*SlackNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) SlackOption {
	return func(s *SlackNotifier) {
		s.client = c
	}
}

// WithRateLimit limits webhook posts to perSecond with the given burst.
// Slack allows roughly one message per second per webhook.
func WithRateLimit(perSecond float64, burst int) SlackOption {
	return func(s *SlackNotifier) {
		if perSecond <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = rate.NewLimiter(rate.Limit(perSecond), max(burst, 1))
	}
}

// WithChannel overrides the webhook's default channel.
func WithChannel(channel string) SlackOption {
	return func(s *SlackNotifier) {
		s.channel = channel
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) SlackOption {
	return func(s *SlackNotifier) {
		s.log = l
	}
}

// NewSlackNotifier creates a new SlackNotifier. Posts are limited to one per
// second unless WithRateLimit says otherwise.
func NewSlackNotifier(webhookURL string, opts ...SlackOption) *SlackNotifier {
	s := &SlackNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
		limiter:    rate.NewLimiter(rate.Limit(1), 1),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type slackPayload struct {
	Channel string       `json:"channel,omitempty"`
	Text    string       `json:"text"`
	Blocks  []slackBlock `json:"blocks,omitempty"`
}

type slackBlock struct {
	Type     string      `json:"type"`
	Text     *slackText  `json:"text,omitempty"`
	Elements []slackText `json:"elements,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SendAlert posts a single alert.
func (s *SlackNotifier) SendAlert(ctx context.Context, alert *AlertPayload) error {
	payload := slackPayload{
		Channel: s.channel,
		Text:    alert.Message,
		Blocks: []slackBlock{
			alertSection(alert),
			contextBlock(fmt.Sprintf("%s | lot %s | %s", alert.Dealer, alert.LotID, reasonLabel(alert))),
		},
	}
	return s.post(ctx, payload)
}

// SendBatchAlert posts several alerts for one dealer as a single message.
func (s *SlackNotifier) SendBatchAlert(ctx context.Context, alerts []AlertPayload, dealer string) error {
	if len(alerts) == 0 {
		return nil
	}

	limit := min(len(alerts), maxBatchBlocks)
	summary := fmt.Sprintf("%d new alerts for %s", len(alerts), dealer)

	blocks := make([]slackBlock, 0, limit+2)
	blocks = append(blocks, slackBlock{
		Type: "section",
		Text: &slackText{Type: "mrkdwn", Text: "*" + summary + "*"},
	})
	for i := range limit {
		blocks = append(blocks, alertSection(&alerts[i]))
	}
	if len(alerts) > maxBatchBlocks {
		blocks = append(blocks, contextBlock(
			fmt.Sprintf("... and %d more alerts for %s. Check the alert log for the full list.",
				len(alerts)-maxBatchBlocks, dealer)))
	}

	return s.post(ctx, slackPayload{Channel: s.channel, Text: summary, Blocks: blocks})
}

func alertSection(alert *AlertPayload) slackBlock {
	return slackBlock{
		Type: "section",
		Text: &slackText{Type: "mrkdwn", Text: fmt.Sprintf("%s %s", typeEmoji(alert.AlertType), alert.Message)},
	}
}

func contextBlock(text string) slackBlock {
	return slackBlock{
		Type:     "context",
		Elements: []slackText{{Type: "mrkdwn", Text: text}},
	}
}

func typeEmoji(t domain.AlertType) string {
	if t == domain.AlertAction {
		return ":rotating_light:"
	}
	return ":mag:"
}

func reasonLabel(alert *AlertPayload) string {
	if alert.Reason == "" {
		return string(alert.AlertType)
	}
	return fmt.Sprintf("%s/%s", alert.AlertType, alert.Reason)
}

func (s *SlackNotifier) post(ctx context.Context, payload slackPayload) error {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("waiting for slack rate limit: %w", err)
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("sending slack webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		s.log.Warn("slack rate limited", "retry_after", resp.Header.Get("Retry-After"))
		return fmt.Errorf("slack rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("slack returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("slack returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
