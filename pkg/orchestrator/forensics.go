package orchestrator

import (
	"context"
	"fmt"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/pkg/classify"
	"github.com/creatorloop/looper/pkg/models"
	"github.com/creatorloop/looper/pkg/reasoning"
)

// Forensics status markers recorded in forensics_output.
const (
	forensicsCompleted = "completed"
	forensicsSkipped   = "skipped"
)

// stageForensics analyzes competitor content per platform. Individual
// competitor failures are logged and skipped; the stage fails only when
// every competitor on every requested platform fails.
func (e *Executor) stageForensics(ctx context.Context, t *ent.Task, s *workflowState) *stageError {
	if status, _ := s.c.ForensicsOutput["status"].(string); status != "" {
		return nil
	}

	toggles := s.onboarding.AgentToggles
	if toggles == nil || !toggles.RunForensics {
		if err := e.persistForensics(ctx, s, map[string]interface{}{"status": forensicsSkipped}); err != nil {
			return err
		}
		e.checkpoint(ctx, t, progressForensics, "forensics skipped")
		return nil
	}

	output := map[string]interface{}{"status": forensicsCompleted}
	attempted, failed := 0, 0

	for _, platformName := range s.goal.Platforms {
		competitors := s.onboarding.Competitors[platformName]
		if len(competitors) == 0 {
			continue
		}

		high, low, competitorFailures := e.gatherCohorts(ctx, s.c.ID, platformName, competitors)
		attempted += len(competitors)
		failed += competitorFailures
		if len(high) == 0 && len(low) == 0 {
			continue
		}

		forensics, err := e.reasoner.AnalyzeCompetitors(ctx, reasoning.CompetitorsInput{
			Platform:       platformName,
			HighPerforming: high,
			LowPerforming:  low,
		})
		if err != nil {
			e.logger.Warn("Competitor reasoning failed",
				"campaign_id", s.c.ID, "platform", platformName, "error", err)
			failed += len(competitors) - competitorFailures
			continue
		}

		raw, err := models.ToMap(forensics)
		if err != nil {
			return failStage(StageForensics, false, fmt.Errorf("failed to encode forensics: %w", err))
		}
		output[platformName] = raw
	}

	if attempted > 0 && failed >= attempted {
		return failStage(StageForensics, true,
			fmt.Errorf("all %d competitors failed across requested platforms", attempted))
	}

	if err := e.persistForensics(ctx, s, output); err != nil {
		return err
	}
	e.checkpoint(ctx, t, progressForensics, "forensics completed")
	return nil
}

// gatherCohorts fetches and classifies each competitor's recent content,
// merging the per-competitor cohorts. Returns the number of competitors
// that produced nothing.
func (e *Executor) gatherCohorts(ctx context.Context, campaignID, platformName string, competitors []string) (high, low []map[string]interface{}, failures int) {
	for _, competitor := range competitors {
		h, l, err := e.classifyCompetitor(ctx, platformName, competitor)
		if err != nil {
			e.logger.Warn("Competitor fetch failed, skipping",
				"campaign_id", campaignID,
				"platform", platformName,
				"competitor", competitor,
				"error", err)
			failures++
			continue
		}
		high = append(high, h...)
		low = append(low, l...)
	}
	return high, low, failures
}

// classifyCompetitor fetches one competitor's recent content and splits it
// into traction cohorts. A tweet sample below the classifier floor yields
// empty cohorts, not an error.
func (e *Executor) classifyCompetitor(ctx context.Context, platformName, competitor string) (high, low []map[string]interface{}, err error) {
	switch platformName {
	case models.PlatformYouTube:
		if e.youtube == nil {
			return nil, nil, fmt.Errorf("youtube fetcher not configured")
		}
		videos, err := e.youtube.FetchRecentVideos(ctx, competitor, 0)
		if err != nil {
			return nil, nil, err
		}
		h, l := classify.Videos(videos)
		return videoMaps(h), videoMaps(l), nil

	case models.PlatformTwitter:
		if e.twitter == nil {
			return nil, nil, fmt.Errorf("twitter fetcher not configured")
		}
		tweets, err := e.twitter.FetchRecentTweets(ctx, competitor, 0)
		if err != nil {
			return nil, nil, err
		}
		h, l := classify.Tweets(tweets)
		return tweetMaps(h), tweetMaps(l), nil

	default:
		return nil, nil, fmt.Errorf("unsupported platform %q", platformName)
	}
}

func (e *Executor) persistForensics(ctx context.Context, s *workflowState, output map[string]interface{}) *stageError {
	c, err := s.c.Update().SetForensicsOutput(output).Save(ctx)
	if err != nil {
		return failStage(StageForensics, true, fmt.Errorf("failed to persist forensics: %w", err))
	}
	s.c = c
	return nil
}

func videoMaps(videos []models.Video) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(videos))
	for _, v := range videos {
		if m, err := models.ToMap(v); err == nil {
			out = append(out, m)
		}
	}
	return out
}

func tweetMaps(tweets []models.Tweet) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(tweets))
	for _, t := range tweets {
		if m, err := models.ToMap(t); err == nil {
			out = append(out, m)
		}
	}
	return out
}
