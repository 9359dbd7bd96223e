package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/creatorprofile"
	"github.com/creatorloop/looper/pkg/models"
)

// Phase1Input is the required onboarding payload.
type Phase1Input struct {
	Name                string            `json:"name"`
	CreatorType         string            `json:"creator_type"`
	Niche               string            `json:"niche"`
	TargetAudienceNiche string            `json:"target_audience_niche"`
	ExistingPlatforms   []string          `json:"existing_platforms"`
	PlatformURLs        map[string]string `json:"platform_urls"`
}

// Phase2Input is the optional enrichment payload; nil fields are left
// untouched so partial updates merge.
type Phase2Input struct {
	UniqueAngle          *string                `json:"unique_angle"`
	Purpose              *string                `json:"purpose"`
	Strengths            []string               `json:"strengths"`
	TargetPlatforms      []string               `json:"target_platforms"`
	Topics               []string               `json:"topics"`
	AudienceDemographics map[string]interface{} `json:"audience_demographics"`
	CompetitorAccounts   map[string][]string    `json:"competitor_accounts"`
	ExistingAssets       []string               `json:"existing_assets"`
	Motivation           *string                `json:"motivation"`
}

// CompletionStats summarizes how much of the profile is filled in.
type CompletionStats struct {
	Phase1Complete    bool `json:"phase1_complete"`
	Phase2Complete    bool `json:"phase2_complete"`
	Phase2FieldsSet   int  `json:"phase2_fields_set"`
	Phase2FieldsTotal int  `json:"phase2_fields_total"`
}

// ProfileService manages creator profiles.
type ProfileService struct {
	client *ent.Client
}

// NewProfileService creates a new ProfileService
func NewProfileService(client *ent.Client) *ProfileService {
	return &ProfileService{client: client}
}

// GetProfile retrieves the profile owned by a user.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*ent.CreatorProfile, error) {
	p, err := s.client.CreatorProfile.Query().
		Where(creatorprofile.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// UpsertPhase1 creates the profile or replaces its Phase 1 fields.
func (s *ProfileService) UpsertPhase1(ctx context.Context, userID string, in Phase1Input) (*ent.CreatorProfile, error) {
	if in.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if in.CreatorType == "" {
		return nil, NewValidationError("creator_type", "required")
	}
	if in.Niche == "" {
		return nil, NewValidationError("niche", "required")
	}
	if in.TargetAudienceNiche == "" {
		return nil, NewValidationError("target_audience_niche", "required")
	}
	if len(in.ExistingPlatforms) == 0 {
		return nil, NewValidationError("existing_platforms", "at least one platform required")
	}
	if in.PlatformURLs == nil {
		in.PlatformURLs = map[string]string{}
	}

	existing, err := s.GetProfile(ctx, userID)
	if err == ErrNotFound {
		p, err := s.client.CreatorProfile.Create().
			SetID(uuid.New().String()).
			SetUserID(userID).
			SetName(in.Name).
			SetCreatorType(in.CreatorType).
			SetNiche(in.Niche).
			SetTargetAudienceNiche(in.TargetAudienceNiche).
			SetExistingPlatforms(in.ExistingPlatforms).
			SetPlatformUrls(in.PlatformURLs).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create profile: %w", err)
		}
		return p, nil
	}
	if err != nil {
		return nil, err
	}

	p, err := existing.Update().
		SetName(in.Name).
		SetCreatorType(in.CreatorType).
		SetNiche(in.Niche).
		SetTargetAudienceNiche(in.TargetAudienceNiche).
		SetExistingPlatforms(in.ExistingPlatforms).
		SetPlatformUrls(in.PlatformURLs).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return p, nil
}

// UpdatePhase2 merges the optional fields onto the profile and recomputes
// the phase2_completed flag.
func (s *ProfileService) UpdatePhase2(ctx context.Context, userID string, in Phase2Input) (*ent.CreatorProfile, error) {
	existing, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	update := existing.Update()
	if in.UniqueAngle != nil {
		update.SetUniqueAngle(*in.UniqueAngle)
	}
	if in.Purpose != nil {
		update.SetPurpose(*in.Purpose)
	}
	if in.Strengths != nil {
		update.SetStrengths(in.Strengths)
	}
	if in.TargetPlatforms != nil {
		update.SetTargetPlatforms(in.TargetPlatforms)
	}
	if in.Topics != nil {
		update.SetTopics(in.Topics)
	}
	if in.AudienceDemographics != nil {
		update.SetAudienceDemographics(in.AudienceDemographics)
	}
	if in.CompetitorAccounts != nil {
		update.SetCompetitorAccounts(in.CompetitorAccounts)
	}
	if in.ExistingAssets != nil {
		update.SetExistingAssets(in.ExistingAssets)
	}
	if in.Motivation != nil {
		update.SetMotivation(*in.Motivation)
	}

	p, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile phase 2: %w", err)
	}

	if set, _ := phase2Progress(p); set == phase2FieldCount && !p.Phase2Completed {
		p, err = p.Update().SetPhase2Completed(true).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to flag phase 2 completion: %w", err)
		}
	}
	return p, nil
}

// Completion returns profile completion stats.
func (s *ProfileService) Completion(ctx context.Context, userID string) (*CompletionStats, error) {
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	set, total := phase2Progress(p)
	return &CompletionStats{
		Phase1Complete:    true,
		Phase2Complete:    p.Phase2Completed,
		Phase2FieldsSet:   set,
		Phase2FieldsTotal: total,
	}, nil
}

// SaveAgentContext stores the context-analysis output on the profile.
func (s *ProfileService) SaveAgentContext(ctx context.Context, userID string, agentContext map[string]interface{}, frequency string) error {
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}
	update := p.Update().SetAgentContext(agentContext)
	if frequency != "" {
		update.SetRecommendedFrequency(frequency)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save agent context: %w", err)
	}
	return nil
}

// Snapshot converts the profile into the immutable map copied onto a
// campaign at creation.
func Snapshot(p *ent.CreatorProfile) (map[string]interface{}, error) {
	return models.ToMap(map[string]interface{}{
		"name":                  p.Name,
		"creator_type":          p.CreatorType,
		"niche":                 p.Niche,
		"target_audience_niche": p.TargetAudienceNiche,
		"existing_platforms":    p.ExistingPlatforms,
		"platform_urls":         p.PlatformUrls,
		"strengths":             p.Strengths,
		"topics":                p.Topics,
		"competitor_accounts":   p.CompetitorAccounts,
		"agent_context":         p.AgentContext,
	})
}

const phase2FieldCount = 9

// phase2Progress counts the optional fields that carry a value.
func phase2Progress(p *ent.CreatorProfile) (set, total int) {
	if p.UniqueAngle != nil && *p.UniqueAngle != "" {
		set++
	}
	if p.Purpose != nil && *p.Purpose != "" {
		set++
	}
	if len(p.Strengths) > 0 {
		set++
	}
	if len(p.TargetPlatforms) > 0 {
		set++
	}
	if len(p.Topics) > 0 {
		set++
	}
	if len(p.AudienceDemographics) > 0 {
		set++
	}
	if len(p.CompetitorAccounts) > 0 {
		set++
	}
	if len(p.ExistingAssets) > 0 {
		set++
	}
	if p.Motivation != nil && *p.Motivation != "" {
		set++
	}
	return set, phase2FieldCount
}
