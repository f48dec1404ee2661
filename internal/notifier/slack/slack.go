package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/season-standings/internal/metrics"
	"github.com/mauv0809/season-standings/internal/notifier"
	"github.com/mauv0809/season-standings/internal/standings"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

const dateLayout = "Mon 02 Jan 2006"

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// sendMessage posts to the configured channel. Without a channel every
// message is handled as a dry run.
func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun || s.channelID == "" {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-channel", "dry-run-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendStandings(st *standings.Standings, season string, dryRun bool) error {
	msg := s.formatStandings(st.Players, season, latestEventLine(st))
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendEventSummary(st *standings.Standings, eventID string, dryRun bool) error {
	summary, ok := notifier.SummarizeEvent(st, eventID)
	if !ok {
		return fmt.Errorf("event %s is not part of the standings", eventID)
	}
	_, _, err := s.sendMessage(s.formatEventSummary(summary), dryRun)
	return err
}

func (s *Notifier) SendChampions(reigns []standings.Reign, dryRun bool) error {
	_, _, err := s.sendMessage(s.formatChampions(reigns), dryRun)
	return err
}

// FormatStandingsResponse formats the standings table for a slash command response.
func (s *Notifier) FormatStandingsResponse(players []standings.PlayerStanding) (any, error) {
	return s.formatStandings(players, "", ""), nil
}

// FormatPlayerStandingResponse formats a single player's standing for a slash command response.
func (s *Notifier) FormatPlayerStandingResponse(player *standings.PlayerStanding, query string) (any, error) {
	return s.formatPlayerStanding(player, query), nil
}

// FormatPlayerNotFoundResponse formats a player not found message for a slash command response.
func (s *Notifier) FormatPlayerNotFoundResponse(query string) (any, error) {
	return s.formatPlayerNotFound(query), nil
}

// FormatChampionsResponse formats the reign history for a slash command response.
func (s *Notifier) FormatChampionsResponse(reigns []standings.Reign) (any, error) {
	return s.formatChampions(reigns), nil
}

func latestEventLine(st *standings.Standings) string {
	event, ok := st.LatestEvent()
	if !ok {
		return ""
	}
	name := event.Name
	if name == "" {
		name = event.ID
	}
	return fmt.Sprintf("After %s (%s)", name, event.Date.Format(dateLayout))
}

func medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ""
}

// formatStandings creates the Slack message for the standings table using Block Kit.
func (s *Notifier) formatStandings(players []standings.PlayerStanding, season, subtitle string) slack.Message {
	blocks := make([]slack.Block, 0)

	title := "🏆 Season Standings 🏆"
	if season != "" {
		title = fmt.Sprintf("🏆 %s Standings 🏆", season)
	}
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", title, true, false)))

	if subtitle != "" {
		blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", subtitle, true, false)))
	}

	if len(players) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No standings yet. Record some events first!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for _, row := range notifier.StandingsTable(players) {
		text := fmt.Sprintf("%d. %s %s\n> *Total*: %s | *Events*: %d | *Per event*: %d | *Streak*: %s",
			row.Rank,
			medal(row.Rank),
			row.Name,
			formatScore(row.TotalScore),
			row.EventsAttended,
			row.PointsPerEvent,
			row.Streak,
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatEventSummary creates the Slack message for one event's results.
func (s *Notifier) formatEventSummary(summary notifier.EventSummary) slack.Message {
	blocks := make([]slack.Block, 0)

	name := summary.Event.Name
	if name == "" {
		name = summary.Event.ID
	}
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", fmt.Sprintf("📋 %s results", name), true, false)))
	blocks = append(blocks, slack.NewContextBlock("", slack.NewTextBlockObject("plain_text", summary.Event.Date.Format(dateLayout), true, false)))

	if len(summary.Rows) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "Nobody attended this event.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	lines := make([]string, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		lines = append(lines, fmt.Sprintf("%d. %s %s: %s (season #%d)",
			row.EventRank, medal(row.EventRank), row.Name, formatScore(row.EventScore), row.CumulativeRank))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", strings.Join(lines, "\n"), false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatChampions creates the Slack message listing every player who has led the season.
func (s *Notifier) formatChampions(reigns []standings.Reign) slack.Message {
	blocks := make([]slack.Block, 0)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", "👑 Champions 👑", true, false)))

	if len(reigns) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "Nobody has led the season yet.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for _, r := range reigns {
		name := r.Name
		if name == "" {
			name = r.PlayerID
		}
		crown := ""
		if r.IsCurrentHolder {
			crown = " 👑"
		}
		text := fmt.Sprintf("*%s*%s\n> First led: %s | Longest reign: %d | Events led: %d",
			name, crown, r.HolderSince.Format(dateLayout), r.LongestReignLength, r.TotalReigns)
		if r.IsCurrentHolder {
			text += fmt.Sprintf("\n> Current reign: %d since %s", r.CurrentReignLength, r.ReignStarted.Format(dateLayout))
		}
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerStanding creates a Slack message to display a single player's standing.
func (s *Notifier) formatPlayerStanding(p *standings.PlayerStanding, query string) slack.Message {
	blocks := make([]slack.Block, 0)

	name := p.Name
	if name == "" {
		name = p.PlayerID
	}
	headerText := fmt.Sprintf("🏆 Standing for %s 🏆", name)
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", headerText, true, false)))

	text := fmt.Sprintf("> *Rank*: %d\n> *Total*: %s\n> *Events*: %d\n> *Per event*: %d\n> *Streak*: %s",
		p.Rank,
		formatScore(p.TotalScore),
		p.EventsAttended,
		p.PointsPerEvent(),
		notifier.FormatStreak(p.Streak),
	)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatPlayerNotFound creates a Slack message for when a player's standing is not found.
func (s *Notifier) formatPlayerNotFound(query string) slack.Message {
	text := fmt.Sprintf("Sorry, I couldn't find a player matching *%s*. Try a different name.", query)
	return slack.NewBlockMessage(
		slack.NewSectionBlock(slack.NewTextBlockObject("mrkdwn", text, false, false), nil, nil),
	)
}

// formatScore drops the fraction for whole scores.
func formatScore(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
