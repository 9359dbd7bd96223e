// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/ent/creatorprofile"
	"github.com/creatorloop/looper/ent/dailycontent"
	"github.com/creatorloop/looper/ent/dailyexecution"
	"github.com/creatorloop/looper/ent/learningmemory"
	"github.com/creatorloop/looper/ent/schema"
	"github.com/creatorloop/looper/ent/task"
	"github.com/creatorloop/looper/ent/user"
	"github.com/creatorloop/looper/ent/webhookevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	campaignFields := schema.Campaign{}.Fields()
	_ = campaignFields
	// campaignDescOnboardingData is the schema descriptor for onboarding_data field.
	campaignDescOnboardingData := campaignFields[3].Descriptor()
	// campaign.DefaultOnboardingData holds the default value on creation for the onboarding_data field.
	campaign.DefaultOnboardingData = campaignDescOnboardingData.Default.(map[string]interface{})
	// campaignDescProfileSnapshot is the schema descriptor for profile_snapshot field.
	campaignDescProfileSnapshot := campaignFields[4].Descriptor()
	// campaign.DefaultProfileSnapshot holds the default value on creation for the profile_snapshot field.
	campaign.DefaultProfileSnapshot = campaignDescProfileSnapshot.Default.(map[string]interface{})
	// campaignDescAgentContext is the schema descriptor for agent_context field.
	campaignDescAgentContext := campaignFields[5].Descriptor()
	// campaign.DefaultAgentContext holds the default value on creation for the agent_context field.
	campaign.DefaultAgentContext = campaignDescAgentContext.Default.(map[string]interface{})
	// campaignDescStrategyOutput is the schema descriptor for strategy_output field.
	campaignDescStrategyOutput := campaignFields[6].Descriptor()
	// campaign.DefaultStrategyOutput holds the default value on creation for the strategy_output field.
	campaign.DefaultStrategyOutput = campaignDescStrategyOutput.Default.(map[string]interface{})
	// campaignDescForensicsOutput is the schema descriptor for forensics_output field.
	campaignDescForensicsOutput := campaignFields[7].Descriptor()
	// campaign.DefaultForensicsOutput holds the default value on creation for the forensics_output field.
	campaign.DefaultForensicsOutput = campaignDescForensicsOutput.Default.(map[string]interface{})
	// campaignDescCampaignPlan is the schema descriptor for campaign_plan field.
	campaignDescCampaignPlan := campaignFields[8].Descriptor()
	// campaign.DefaultCampaignPlan holds the default value on creation for the campaign_plan field.
	campaign.DefaultCampaignPlan = campaignDescCampaignPlan.Default.(map[string]interface{})
	// campaignDescOutcomeReport is the schema descriptor for outcome_report field.
	campaignDescOutcomeReport := campaignFields[9].Descriptor()
	// campaign.DefaultOutcomeReport holds the default value on creation for the outcome_report field.
	campaign.DefaultOutcomeReport = campaignDescOutcomeReport.Default.(map[string]interface{})
	// campaignDescLearningInsights is the schema descriptor for learning_insights field.
	campaignDescLearningInsights := campaignFields[10].Descriptor()
	// campaign.DefaultLearningInsights holds the default value on creation for the learning_insights field.
	campaign.DefaultLearningInsights = campaignDescLearningInsights.Default.(map[string]interface{})
	// campaignDescContentWarnings is the schema descriptor for content_warnings field.
	campaignDescContentWarnings := campaignFields[11].Descriptor()
	// campaign.DefaultContentWarnings holds the default value on creation for the content_warnings field.
	campaign.DefaultContentWarnings = campaignDescContentWarnings.Default.([]string)
	// campaignDescCreatedAt is the schema descriptor for created_at field.
	campaignDescCreatedAt := campaignFields[15].Descriptor()
	// campaign.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaign.DefaultCreatedAt = campaignDescCreatedAt.Default.(func() time.Time)
	// campaignDescUpdatedAt is the schema descriptor for updated_at field.
	campaignDescUpdatedAt := campaignFields[16].Descriptor()
	// campaign.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	campaign.DefaultUpdatedAt = campaignDescUpdatedAt.Default.(func() time.Time)
	// campaign.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	campaign.UpdateDefaultUpdatedAt = campaignDescUpdatedAt.UpdateDefault.(func() time.Time)
	creatorprofileFields := schema.CreatorProfile{}.Fields()
	_ = creatorprofileFields
	// creatorprofileDescExistingPlatforms is the schema descriptor for existing_platforms field.
	creatorprofileDescExistingPlatforms := creatorprofileFields[6].Descriptor()
	// creatorprofile.DefaultExistingPlatforms holds the default value on creation for the existing_platforms field.
	creatorprofile.DefaultExistingPlatforms = creatorprofileDescExistingPlatforms.Default.([]string)
	// creatorprofileDescPlatformUrls is the schema descriptor for platform_urls field.
	creatorprofileDescPlatformUrls := creatorprofileFields[7].Descriptor()
	// creatorprofile.DefaultPlatformUrls holds the default value on creation for the platform_urls field.
	creatorprofile.DefaultPlatformUrls = creatorprofileDescPlatformUrls.Default.(map[string]string)
	// creatorprofileDescStrengths is the schema descriptor for strengths field.
	creatorprofileDescStrengths := creatorprofileFields[10].Descriptor()
	// creatorprofile.DefaultStrengths holds the default value on creation for the strengths field.
	creatorprofile.DefaultStrengths = creatorprofileDescStrengths.Default.([]string)
	// creatorprofileDescTargetPlatforms is the schema descriptor for target_platforms field.
	creatorprofileDescTargetPlatforms := creatorprofileFields[11].Descriptor()
	// creatorprofile.DefaultTargetPlatforms holds the default value on creation for the target_platforms field.
	creatorprofile.DefaultTargetPlatforms = creatorprofileDescTargetPlatforms.Default.([]string)
	// creatorprofileDescTopics is the schema descriptor for topics field.
	creatorprofileDescTopics := creatorprofileFields[12].Descriptor()
	// creatorprofile.DefaultTopics holds the default value on creation for the topics field.
	creatorprofile.DefaultTopics = creatorprofileDescTopics.Default.([]string)
	// creatorprofileDescAudienceDemographics is the schema descriptor for audience_demographics field.
	creatorprofileDescAudienceDemographics := creatorprofileFields[13].Descriptor()
	// creatorprofile.DefaultAudienceDemographics holds the default value on creation for the audience_demographics field.
	creatorprofile.DefaultAudienceDemographics = creatorprofileDescAudienceDemographics.Default.(map[string]interface{})
	// creatorprofileDescCompetitorAccounts is the schema descriptor for competitor_accounts field.
	creatorprofileDescCompetitorAccounts := creatorprofileFields[14].Descriptor()
	// creatorprofile.DefaultCompetitorAccounts holds the default value on creation for the competitor_accounts field.
	creatorprofile.DefaultCompetitorAccounts = creatorprofileDescCompetitorAccounts.Default.(map[string][]string)
	// creatorprofileDescExistingAssets is the schema descriptor for existing_assets field.
	creatorprofileDescExistingAssets := creatorprofileFields[15].Descriptor()
	// creatorprofile.DefaultExistingAssets holds the default value on creation for the existing_assets field.
	creatorprofile.DefaultExistingAssets = creatorprofileDescExistingAssets.Default.([]string)
	// creatorprofileDescPhase2Completed is the schema descriptor for phase2_completed field.
	creatorprofileDescPhase2Completed := creatorprofileFields[17].Descriptor()
	// creatorprofile.DefaultPhase2Completed holds the default value on creation for the phase2_completed field.
	creatorprofile.DefaultPhase2Completed = creatorprofileDescPhase2Completed.Default.(bool)
	// creatorprofileDescAgentContext is the schema descriptor for agent_context field.
	creatorprofileDescAgentContext := creatorprofileFields[18].Descriptor()
	// creatorprofile.DefaultAgentContext holds the default value on creation for the agent_context field.
	creatorprofile.DefaultAgentContext = creatorprofileDescAgentContext.Default.(map[string]interface{})
	// creatorprofileDescCreatedAt is the schema descriptor for created_at field.
	creatorprofileDescCreatedAt := creatorprofileFields[20].Descriptor()
	// creatorprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	creatorprofile.DefaultCreatedAt = creatorprofileDescCreatedAt.Default.(func() time.Time)
	// creatorprofileDescUpdatedAt is the schema descriptor for updated_at field.
	creatorprofileDescUpdatedAt := creatorprofileFields[21].Descriptor()
	// creatorprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	creatorprofile.DefaultUpdatedAt = creatorprofileDescUpdatedAt.Default.(func() time.Time)
	// creatorprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	creatorprofile.UpdateDefaultUpdatedAt = creatorprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	dailycontentFields := schema.DailyContent{}.Fields()
	_ = dailycontentFields
	// dailycontentDescDayNumber is the schema descriptor for day_number field.
	dailycontentDescDayNumber := dailycontentFields[2].Descriptor()
	// dailycontent.DayNumberValidator is a validator for the "day_number" field. It is called by the builders before save.
	dailycontent.DayNumberValidator = func() func(int) error {
		validators := dailycontentDescDayNumber.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(day_number int) error {
			for _, fn := range fns {
				if err := fn(day_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// dailycontentDescSeoTags is the schema descriptor for seo_tags field.
	dailycontentDescSeoTags := dailycontentFields[6].Descriptor()
	// dailycontent.DefaultSeoTags holds the default value on creation for the seo_tags field.
	dailycontent.DefaultSeoTags = dailycontentDescSeoTags.Default.([]string)
	// dailycontentDescThread is the schema descriptor for thread field.
	dailycontentDescThread := dailycontentFields[9].Descriptor()
	// dailycontent.DefaultThread holds the default value on creation for the thread field.
	dailycontent.DefaultThread = dailycontentDescThread.Default.([]string)
	// dailycontentDescThumbnailUrls is the schema descriptor for thumbnail_urls field.
	dailycontentDescThumbnailUrls := dailycontentFields[10].Descriptor()
	// dailycontent.DefaultThumbnailUrls holds the default value on creation for the thumbnail_urls field.
	dailycontent.DefaultThumbnailUrls = dailycontentDescThumbnailUrls.Default.(map[string]string)
	// dailycontentDescCreatedAt is the schema descriptor for created_at field.
	dailycontentDescCreatedAt := dailycontentFields[12].Descriptor()
	// dailycontent.DefaultCreatedAt holds the default value on creation for the created_at field.
	dailycontent.DefaultCreatedAt = dailycontentDescCreatedAt.Default.(func() time.Time)
	// dailycontentDescUpdatedAt is the schema descriptor for updated_at field.
	dailycontentDescUpdatedAt := dailycontentFields[13].Descriptor()
	// dailycontent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dailycontent.DefaultUpdatedAt = dailycontentDescUpdatedAt.Default.(func() time.Time)
	// dailycontent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dailycontent.UpdateDefaultUpdatedAt = dailycontentDescUpdatedAt.UpdateDefault.(func() time.Time)
	dailyexecutionFields := schema.DailyExecution{}.Fields()
	_ = dailyexecutionFields
	// dailyexecutionDescDayNumber is the schema descriptor for day_number field.
	dailyexecutionDescDayNumber := dailyexecutionFields[2].Descriptor()
	// dailyexecution.DayNumberValidator is a validator for the "day_number" field. It is called by the builders before save.
	dailyexecution.DayNumberValidator = func() func(int) error {
		validators := dailyexecutionDescDayNumber.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(day_number int) error {
			for _, fn := range fns {
				if err := fn(day_number); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// dailyexecutionDescPostedToYoutube is the schema descriptor for posted_to_youtube field.
	dailyexecutionDescPostedToYoutube := dailyexecutionFields[4].Descriptor()
	// dailyexecution.DefaultPostedToYoutube holds the default value on creation for the posted_to_youtube field.
	dailyexecution.DefaultPostedToYoutube = dailyexecutionDescPostedToYoutube.Default.(bool)
	// dailyexecutionDescPostedToTwitter is the schema descriptor for posted_to_twitter field.
	dailyexecutionDescPostedToTwitter := dailyexecutionFields[5].Descriptor()
	// dailyexecution.DefaultPostedToTwitter holds the default value on creation for the posted_to_twitter field.
	dailyexecution.DefaultPostedToTwitter = dailyexecutionDescPostedToTwitter.Default.(bool)
	// dailyexecutionDescEngagementMetrics is the schema descriptor for engagement_metrics field.
	dailyexecutionDescEngagementMetrics := dailyexecutionFields[7].Descriptor()
	// dailyexecution.DefaultEngagementMetrics holds the default value on creation for the engagement_metrics field.
	dailyexecution.DefaultEngagementMetrics = dailyexecutionDescEngagementMetrics.Default.(map[string]interface{})
	// dailyexecutionDescCreatedAt is the schema descriptor for created_at field.
	dailyexecutionDescCreatedAt := dailyexecutionFields[8].Descriptor()
	// dailyexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	dailyexecution.DefaultCreatedAt = dailyexecutionDescCreatedAt.Default.(func() time.Time)
	// dailyexecutionDescUpdatedAt is the schema descriptor for updated_at field.
	dailyexecutionDescUpdatedAt := dailyexecutionFields[9].Descriptor()
	// dailyexecution.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dailyexecution.DefaultUpdatedAt = dailyexecutionDescUpdatedAt.Default.(func() time.Time)
	// dailyexecution.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dailyexecution.UpdateDefaultUpdatedAt = dailyexecutionDescUpdatedAt.UpdateDefault.(func() time.Time)
	learningmemoryFields := schema.LearningMemory{}.Fields()
	_ = learningmemoryFields
	// learningmemoryDescWhatWorked is the schema descriptor for what_worked field.
	learningmemoryDescWhatWorked := learningmemoryFields[8].Descriptor()
	// learningmemory.DefaultWhatWorked holds the default value on creation for the what_worked field.
	learningmemory.DefaultWhatWorked = learningmemoryDescWhatWorked.Default.([]string)
	// learningmemoryDescWhatFailed is the schema descriptor for what_failed field.
	learningmemoryDescWhatFailed := learningmemoryFields[9].Descriptor()
	// learningmemory.DefaultWhatFailed holds the default value on creation for the what_failed field.
	learningmemory.DefaultWhatFailed = learningmemoryDescWhatFailed.Default.([]string)
	// learningmemoryDescRecommendations is the schema descriptor for recommendations field.
	learningmemoryDescRecommendations := learningmemoryFields[10].Descriptor()
	// learningmemory.DefaultRecommendations holds the default value on creation for the recommendations field.
	learningmemory.DefaultRecommendations = learningmemoryDescRecommendations.Default.([]string)
	// learningmemoryDescCreatedAt is the schema descriptor for created_at field.
	learningmemoryDescCreatedAt := learningmemoryFields[12].Descriptor()
	// learningmemory.DefaultCreatedAt holds the default value on creation for the created_at field.
	learningmemory.DefaultCreatedAt = learningmemoryDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescArgs is the schema descriptor for args field.
	taskDescArgs := taskFields[5].Descriptor()
	// task.DefaultArgs holds the default value on creation for the args field.
	task.DefaultArgs = taskDescArgs.Default.(map[string]interface{})
	// taskDescProgress is the schema descriptor for progress field.
	taskDescProgress := taskFields[6].Descriptor()
	// task.DefaultProgress holds the default value on creation for the progress field.
	task.DefaultProgress = taskDescProgress.Default.(int)
	// task.ProgressValidator is a validator for the "progress" field. It is called by the builders before save.
	task.ProgressValidator = func() func(int) error {
		validators := taskDescProgress.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(progress int) error {
			for _, fn := range fns {
				if err := fn(progress); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescMessage is the schema descriptor for message field.
	taskDescMessage := taskFields[7].Descriptor()
	// task.DefaultMessage holds the default value on creation for the message field.
	task.DefaultMessage = taskDescMessage.Default.(string)
	// taskDescResult is the schema descriptor for result field.
	taskDescResult := taskFields[8].Descriptor()
	// task.DefaultResult holds the default value on creation for the result field.
	task.DefaultResult = taskDescResult.Default.(map[string]interface{})
	// taskDescAttempt is the schema descriptor for attempt field.
	taskDescAttempt := taskFields[10].Descriptor()
	// task.DefaultAttempt holds the default value on creation for the attempt field.
	task.DefaultAttempt = taskDescAttempt.Default.(int)
	// taskDescMaxAttempts is the schema descriptor for max_attempts field.
	taskDescMaxAttempts := taskFields[11].Descriptor()
	// task.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	task.DefaultMaxAttempts = taskDescMaxAttempts.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[15].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescPlanTier is the schema descriptor for plan_tier field.
	userDescPlanTier := userFields[3].Descriptor()
	// user.DefaultPlanTier holds the default value on creation for the plan_tier field.
	user.DefaultPlanTier = userDescPlanTier.Default.(string)
	// userDescUsage is the schema descriptor for usage field.
	userDescUsage := userFields[4].Descriptor()
	// user.DefaultUsage holds the default value on creation for the usage field.
	user.DefaultUsage = userDescUsage.Default.(map[string]interface{})
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[5].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[6].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	webhookeventFields := schema.WebhookEvent{}.Fields()
	_ = webhookeventFields
	// webhookeventDescPayload is the schema descriptor for payload field.
	webhookeventDescPayload := webhookeventFields[3].Descriptor()
	// webhookevent.DefaultPayload holds the default value on creation for the payload field.
	webhookevent.DefaultPayload = webhookeventDescPayload.Default.(map[string]interface{})
	// webhookeventDescProcessedAt is the schema descriptor for processed_at field.
	webhookeventDescProcessedAt := webhookeventFields[4].Descriptor()
	// webhookevent.DefaultProcessedAt holds the default value on creation for the processed_at field.
	webhookevent.DefaultProcessedAt = webhookeventDescProcessedAt.Default.(func() time.Time)
}
