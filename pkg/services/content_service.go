package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/dailycontent"
	"github.com/creatorloop/looper/ent/dailyexecution"
	"github.com/creatorloop/looper/pkg/models"
)

// DailyContentInput carries one platform's generated content for a day.
type DailyContentInput struct {
	Script        string
	Title         string
	SEOTags       []string
	CTA           string
	Tweet         string
	Thread        []string
	ThumbnailURLs map[string]string
	Reasoning     string
}

// ConfirmDayInput records a user confirming what they posted for a day.
type ConfirmDayInput struct {
	Platform          string                 `json:"platform"`
	PostedToYouTube   bool                   `json:"posted_to_youtube"`
	PostedToTwitter   bool                   `json:"posted_to_twitter"`
	EngagementMetrics map[string]interface{} `json:"engagement_metrics"`
}

// ScheduleDay aggregates one day's content and execution records.
type ScheduleDay struct {
	DayNumber  int                   `json:"day_number"`
	Contents   []*ent.DailyContent   `json:"contents"`
	Executions []*ent.DailyExecution `json:"executions"`
}

// ContentService manages per-day generated content and execution records.
// Ownership of the campaign is the caller's responsibility.
type ContentService struct {
	client *ent.Client
}

// NewContentService creates a new ContentService
func NewContentService(client *ent.Client) *ContentService {
	return &ContentService{client: client}
}

// UpsertDailyContent writes one (campaign, day, platform) content row,
// replacing any earlier generation for the same key. Re-running the
// content stage after a crash lands on the same rows.
func (s *ContentService) UpsertDailyContent(ctx context.Context, campaignID string, dayNumber int, platform string, in DailyContentInput) (*ent.DailyContent, error) {
	if dayNumber < 1 || dayNumber > models.MaxDurationDays {
		return nil, NewValidationError("day_number",
			fmt.Sprintf("must be between 1 and %d", models.MaxDurationDays))
	}
	if platform != models.PlatformYouTube && platform != models.PlatformTwitter {
		return nil, NewValidationError("platform", "must be youtube or twitter")
	}
	if in.SEOTags == nil {
		in.SEOTags = []string{}
	}
	if in.Thread == nil {
		in.Thread = []string{}
	}
	if in.ThumbnailURLs == nil {
		in.ThumbnailURLs = map[string]string{}
	}

	return s.upsertDailyContent(ctx, campaignID, dayNumber, platform, in, true)
}

func (s *ContentService) upsertDailyContent(ctx context.Context, campaignID string, dayNumber int, platform string, in DailyContentInput, retry bool) (*ent.DailyContent, error) {
	existing, err := s.client.DailyContent.Query().
		Where(
			dailycontent.CampaignIDEQ(campaignID),
			dailycontent.DayNumberEQ(dayNumber),
			dailycontent.PlatformEQ(platform),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query daily content: %w", err)
	}

	if existing != nil {
		dc, err := existing.Update().
			SetScript(in.Script).
			SetTitle(in.Title).
			SetSeoTags(in.SEOTags).
			SetCta(in.CTA).
			SetTweet(in.Tweet).
			SetThread(in.Thread).
			SetThumbnailUrls(in.ThumbnailURLs).
			SetReasoning(in.Reasoning).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update daily content: %w", err)
		}
		return dc, nil
	}

	dc, err := s.client.DailyContent.Create().
		SetID(uuid.New().String()).
		SetCampaignID(campaignID).
		SetDayNumber(dayNumber).
		SetPlatform(platform).
		SetScript(in.Script).
		SetTitle(in.Title).
		SetSeoTags(in.SEOTags).
		SetCta(in.CTA).
		SetTweet(in.Tweet).
		SetThread(in.Thread).
		SetThumbnailUrls(in.ThumbnailURLs).
		SetReasoning(in.Reasoning).
		Save(ctx)
	if err != nil {
		// One retry for losing a concurrent upsert of the same key. A second
		// constraint error is not the unique key (foreign key: campaign
		// deleted underneath us) and must surface.
		if retry && ent.IsConstraintError(err) {
			return s.upsertDailyContent(ctx, campaignID, dayNumber, platform, in, false)
		}
		return nil, fmt.Errorf("failed to create daily content: %w", err)
	}
	return dc, nil
}

// ListContent returns all generated content for a campaign ordered by day.
func (s *ContentService) ListContent(ctx context.Context, campaignID string) ([]*ent.DailyContent, error) {
	dcs, err := s.client.DailyContent.Query().
		Where(dailycontent.CampaignIDEQ(campaignID)).
		Order(ent.Asc(dailycontent.FieldDayNumber), ent.Asc(dailycontent.FieldPlatform)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily content: %w", err)
	}
	return dcs, nil
}

// ContentDays counts distinct days that have content for a platform.
// Used for crash recovery to decide whether the content stage finished.
func (s *ContentService) ContentDays(ctx context.Context, campaignID, platform string) (map[int]bool, error) {
	var rows []struct {
		DayNumber int `json:"day_number"`
	}
	err := s.client.DailyContent.Query().
		Where(
			dailycontent.CampaignIDEQ(campaignID),
			dailycontent.PlatformEQ(platform),
		).
		Select(dailycontent.FieldDayNumber).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan content days: %w", err)
	}
	days := make(map[int]bool, len(rows))
	for _, r := range rows {
		days[r.DayNumber] = true
	}
	return days, nil
}

// ConfirmDay upserts the execution record for a day. A repeated
// confirmation overwrites the earlier one and refreshes executed_at.
func (s *ContentService) ConfirmDay(ctx context.Context, campaignID string, dayNumber int, in ConfirmDayInput) (*ent.DailyExecution, error) {
	if dayNumber < 1 || dayNumber > models.MaxDurationDays {
		return nil, NewValidationError("day_number",
			fmt.Sprintf("must be between 1 and %d", models.MaxDurationDays))
	}
	if in.Platform != models.PlatformYouTube && in.Platform != models.PlatformTwitter {
		return nil, NewValidationError("platform", "must be youtube or twitter")
	}
	if in.EngagementMetrics == nil {
		in.EngagementMetrics = map[string]interface{}{}
	}

	return s.confirmDay(ctx, campaignID, dayNumber, in, true)
}

func (s *ContentService) confirmDay(ctx context.Context, campaignID string, dayNumber int, in ConfirmDayInput, retry bool) (*ent.DailyExecution, error) {
	now := time.Now()

	existing, err := s.client.DailyExecution.Query().
		Where(
			dailyexecution.CampaignIDEQ(campaignID),
			dailyexecution.DayNumberEQ(dayNumber),
			dailyexecution.PlatformEQ(in.Platform),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query daily execution: %w", err)
	}

	if existing != nil {
		de, err := existing.Update().
			SetPostedToYoutube(in.PostedToYouTube).
			SetPostedToTwitter(in.PostedToTwitter).
			SetEngagementMetrics(in.EngagementMetrics).
			SetExecutedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update daily execution: %w", err)
		}
		return de, nil
	}

	de, err := s.client.DailyExecution.Create().
		SetID(uuid.New().String()).
		SetCampaignID(campaignID).
		SetDayNumber(dayNumber).
		SetPlatform(in.Platform).
		SetPostedToYoutube(in.PostedToYouTube).
		SetPostedToTwitter(in.PostedToTwitter).
		SetEngagementMetrics(in.EngagementMetrics).
		SetExecutedAt(now).
		Save(ctx)
	if err != nil {
		// Same single-retry rule as upsertDailyContent.
		if retry && ent.IsConstraintError(err) {
			return s.confirmDay(ctx, campaignID, dayNumber, in, false)
		}
		return nil, fmt.Errorf("failed to create daily execution: %w", err)
	}
	return de, nil
}

// Schedule groups content and execution records by day, ascending.
func (s *ContentService) Schedule(ctx context.Context, campaignID string) ([]ScheduleDay, error) {
	contents, err := s.ListContent(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	executions, err := s.client.DailyExecution.Query().
		Where(dailyexecution.CampaignIDEQ(campaignID)).
		Order(ent.Asc(dailyexecution.FieldDayNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily executions: %w", err)
	}

	byDay := map[int]*ScheduleDay{}
	for _, dc := range contents {
		d := byDay[dc.DayNumber]
		if d == nil {
			d = &ScheduleDay{DayNumber: dc.DayNumber}
			byDay[dc.DayNumber] = d
		}
		d.Contents = append(d.Contents, dc)
	}
	for _, de := range executions {
		d := byDay[de.DayNumber]
		if d == nil {
			d = &ScheduleDay{DayNumber: de.DayNumber}
			byDay[de.DayNumber] = d
		}
		d.Executions = append(d.Executions, de)
	}

	days := make([]ScheduleDay, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].DayNumber < days[j].DayNumber })
	return days, nil
}

// ExecutionMetrics aggregates confirmed engagement metrics for the
// outcome analysis: summed numeric values plus confirmation counts.
func (s *ContentService) ExecutionMetrics(ctx context.Context, campaignID string) (map[string]interface{}, error) {
	executions, err := s.client.DailyExecution.Query().
		Where(dailyexecution.CampaignIDEQ(campaignID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily executions: %w", err)
	}

	totals := map[string]float64{}
	confirmed := 0
	for _, de := range executions {
		if de.ExecutedAt != nil {
			confirmed++
		}
		for k, v := range de.EngagementMetrics {
			if n, ok := v.(float64); ok {
				totals[k] += n
			}
		}
	}

	out := map[string]interface{}{
		"days_confirmed": confirmed,
	}
	for k, v := range totals {
		out[k] = v
	}
	return out, nil
}
