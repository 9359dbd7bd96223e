// Reasoning sidecar contract. The engine treats reasoning as an opaque
// service with six typed operations; prompt engineering lives on the
// other side of this boundary.
//
// Generate with:
//   protoc --go_out=. --go-grpc_out=. proto/reasoning.proto

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: proto/reasoning.proto

package reasoningv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	structpb "google.golang.org/protobuf/types/known/structpb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type AnalyzeContextRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	UserId          string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	ProfileSnapshot *structpb.Struct       `protobuf:"bytes,2,opt,name=profile_snapshot,json=profileSnapshot,proto3" json:"profile_snapshot,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *AnalyzeContextRequest) Reset() {
	*x = AnalyzeContextRequest{}
	mi := &file_proto_reasoning_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeContextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeContextRequest) ProtoMessage() {}

func (x *AnalyzeContextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_reasoning_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeContextRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeContextRequest) Descriptor() ([]byte, []int) {
	return file_proto_reasoning_proto_rawDescGZIP(), []int{0}
}

func (x *AnalyzeContextRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AnalyzeContextRequest) GetProfileSnapshot() *structpb.Struct {
	if x != nil {
		return x.ProfileSnapshot
	}
	return nil
}

type AnalyzeContextResponse struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	AgentContext         *structpb.Struct       `protobuf:"bytes,1,opt,name=agent_context,json=agentContext,proto3" json:"agent_context,omitempty"`
	RecommendedFrequency string                 `protobuf:"bytes,2,opt,name=recommended_frequency,json=recommendedFrequency,proto3" json:"recommended_frequency,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *AnalyzeContextResponse) Reset() {
	*x = AnalyzeContextResponse{}
	mi := &file_proto_reasoning_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeContextResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeContextResponse) ProtoMessage() {}

func (x *AnalyzeContextResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_reasoning_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeContextResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeContextResponse) Descriptor() ([]byte, []int) {
	return file_proto_reasoning_proto_rawDescGZIP(), []int{1}
}

func (x *AnalyzeContextResponse) GetAgentContext() *structpb.Struct {
	if x != nil {
		return x.AgentContext
	}
	return nil
}

func (x *AnalyzeContextResponse) GetRecommendedFrequency() string {
	if x != nil {
		return x.RecommendedFrequency
	}
	return ""
}

type LearningRecord struct {
	state                  protoimpl.MessageState `protogen:"open.v1"`
	GoalType               string                 `protobuf:"bytes,1,opt,name=goal_type,json=goalType,proto3" json:"goal_type,omitempty"`
	Platform               string                 `protobuf:"bytes,2,opt,name=platform,proto3" json:"platform,omitempty"`
	Niche                  string                 `protobuf:"bytes,3,opt,name=niche,proto3" json:"niche,omitempty"`
	CampaignDurationDays   int32                  `protobuf:"varint,4,opt,name=campaign_duration_days,json=campaignDurationDays,proto3" json:"campaign_duration_days,omitempty"`
	PostingFrequency       string                 `protobuf:"bytes,5,opt,name=posting_frequency,json=postingFrequency,proto3" json:"posting_frequency,omitempty"`
	WhatWorked             []string               `protobuf:"bytes,6,rep,name=what_worked,json=whatWorked,proto3" json:"what_worked,omitempty"`
	WhatFailed             []string               `protobuf:"bytes,7,rep,name=what_failed,json=whatFailed,proto3" json:"what_failed,omitempty"`
	Recommendations        []string               `protobuf:"bytes,8,rep,name=recommendations,proto3" json:"recommendations,omitempty"`
	GoalAchievementSummary string                 `protobuf:"bytes,9,opt,name=goal_achievement_summary,json=goalAchievementSummary,proto3" json:"goal_achievement_summary,omitempty"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *LearningRecord) Reset() {
	*x = LearningRecord{}
	mi := &file_proto_reasoning_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LearningRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LearningRecord) ProtoMessage() {}

func (x *LearningRecord) ProtoReflect() protoreflect.Message {
	mi := &file_proto_reasoning_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LearningRecord.ProtoReflect.Descriptor instead.
func (*LearningRecord) Descriptor() ([]byte, []int) {
	return file_proto_reasoning_proto_rawDescGZIP(), []int{2}
}

func (x *LearningRecord) GetGoalType() string {
	if x != nil {
		return x.GoalType
	}
	return ""
}

func (x *LearningRecord) GetPlatform() string {
	if x != nil {
		return x.Platform
	}
	return ""
}

func (x *LearningRecord) GetNiche() string {
	if x != nil {
		return x.Niche
	}
	return ""
}

func (x *LearningRecord) GetCampaignDurationDays() int32 {
	if x != nil {
		return x.CampaignDurationDays
	}
	return 0
}

func (x *LearningRecord) GetPostingFrequency() string {
	if x != nil {
		return x.PostingFrequency
	}
	return ""
}

func (x *LearningRecord) GetWhatWorked() []string {
	if x != nil {
		return x.WhatWorked
	}
	return nil
}

func (x *LearningRecord) GetWhatFailed() []string {
	if x != nil {
		return x.WhatFailed
	}
	return nil
}

func (x *LearningRecord) GetRecommendations() []string {
	if x != nil {
		return x.Recommendations
	}
	return nil
}

func (x *LearningRecord) GetGoalAchievementSummary() string {
	if x != nil {
		return x.GoalAchievementSummary
	}
	return ""
}

type DevelopStrategyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Goal          *structpb.Struct       `protobuf:"bytes,1,opt,name=goal,proto3" json:"goal,omitempty"`
	AgentContext  *structpb.Struct       `protobuf:"bytes,2,opt,name=agent_context,json=agentContext,proto3" json:"agent_context,omitempty"`
	PastLearnings []*LearningRecord      `protobuf:"bytes,3,rep,name=past_learnings,json=pastLearnings,proto3" json:"past_learnings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DevelopStrategyRequest) Reset() {
	*x = DevelopStrategyRequest{}
	mi := &file_proto_reasoning_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DevelopStrategyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DevelopStrategyRequest) ProtoMessage() {}

func (x *DevelopStrategyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_reasoning_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DevelopStrategyRequest.ProtoReflect.Descriptor instead.
func (*DevelopStrategyRequest) Descriptor() ([]byte, []int) {
	return file_proto_reasoning_proto_rawDescGZIP(), []int{3}
}

func (x *DevelopStrategyRequest) GetGoal() *structpb.Struct {
	if x != nil {
		return x.Goal
	}
	return nil
}

func (x *DevelopStrategyRequest) GetAgentContext() *structpb.Struct {
	if x != nil {
		return x.AgentContext
	}
	return nil
}

func (x *DevelopStrategyRequest) GetPastLearnings() []*LearningRecord {
	if x != nil {
		return x.PastLearnings
	}
	return nil
}

type DevelopStrategyResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Hypothesis      string                 `protobuf:"bytes,1,opt,name=hypothesis,proto3" json:"hypothesis,omitempty"`
	PlatformFocus   []string               `protobuf:"bytes,2,rep,name=platform_focus,json=platformFocus,proto3" json:"platform_focus,omitempty"`
	ExperimentFocus []string               `protobuf:"bytes,3,rep,name=experiment_focus,json=experimentFocus,proto3" json:"experiment_focus,omitempty"`
	RealityCheck    string                 `protobuf:"bytes,4,opt,name=reality_check,json=realityCheck,proto3" json:"reality_check,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *DevelopStrategyResponse) Reset() {
	*x = DevelopStrategyResponse{}
	mi := &file_proto_reasoning_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DevelopStrategyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DevelopStrategyResponse) ProtoMessage() {}

func (x *DevelopStrategyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_reasoning_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DevelopStrategyResponse.ProtoReflect.Descriptor instead.
func (*DevelopStrategyResponse) Descriptor() ([]byte, []int) {
	return file_proto_reasoning_proto_rawDescGZIP(), []int{4}
}

func (x *DevelopStrategyResponse) GetHypothesis() string {
	if x != nil {
		return x.Hypothesis
	}
	return ""
}

func (x *DevelopStrategyResponse) GetPlatformFocus() []string {
	if x != nil {
		return x.PlatformFocus
	}
	return nil
}

func (x *DevelopStrategyResponse) GetExperimentFocus() []string {
	if x != nil {
		return x.ExperimentFocus
	}
	return nil
}

func (x *DevelopStrategyResponse) GetRealityCheck() string {
	if x != nil {
		return x.RealityCheck
	}
	return ""
}

type CompetitorItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fields        *structpb.Struct       `protobuf:"bytes,1,opt,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompetitorItem) Reset() {
	*x = CompetitorItem{}
	mi := &file_proto_reasoning_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompetitorItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompetitorItem) ProtoMessage() {}

func (x *CompetitorItem) ProtoReflect() protoreflect.Message {
	mi := &file_proto_reasoning_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompetitorItem.ProtoReflect.Descriptor instead.
func (*CompetitorItem) Descriptor() ([]byte, []int) {
	return file_proto_reasoning_proto_rawDescGZIP(), []int{5}
}

func (x *CompetitorItem) GetFields() *structpb.Struct {
	if x != nil {
		return x.Fields
	}
	return nil
}

type AnalyzeCompetitorsRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Platform       string                 `protobuf:"bytes,1,opt,name=platform,proto3" json:"platform,omitempty"`
	HighPerforming []*CompetitorItem      `protobuf:"bytes,2,rep,name=high_performing,json=highPerforming,proto3" json:"high_performing,omitempty"`
	LowPerforming  []*CompetitorItem      `protobuf:"bytes,3,rep,name=low_performing,json=lowPerforming,proto3" json:"low_performing,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *AnalyzeCompetitorsRequest) Reset() {
	*x = AnalyzeCompetitorsRequest{}
	mi := &file_proto_reasoning_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeCompetitorsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeCompetitorsRequest) ProtoMessage() {}

func (x *AnalyzeCompetitorsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_reasoning_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeCompetitorsRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeCompetitorsRequest) Descriptor() ([]byte, []int) {
	return file_proto_reasoning_proto_rawDescGZIP(), []int{6}
}

func (x *AnalyzeCompetitorsRequest) GetPlatform() string {
	if x != nil {
		return x.Platform
	}
	return ""
}

func (x *AnalyzeCompetitorsRequest) GetHighPerforming() []*CompetitorItem {
	if x != nil {
		return x.HighPerforming
	}
	return nil
}

func (x *AnalyzeCompetitorsRequest) GetLowPerforming() []*CompetitorItem {
	if x != nil {
		return x.LowPerforming
	}
	return nil
}

type AnalyzeCompetitorsResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	PatternsThatWorked []string               `protobuf:"bytes,1,rep,name=patterns_that_worked,json=patternsThatWorked,proto3" json:"patterns_that_worked,omitempty"`
	PatternsThatFailed []string               `protobuf:"bytes,2,rep,name=patterns_that_failed,json=patternsThatFailed,proto3" json:"patterns_that_failed,omitempty"`
	TransferableRules  []string               `protobuf:"bytes,3,rep,name=transferable_rules,json=transferableRules,proto3" json:"transferable_rules,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *AnalyzeCompetitorsResponse) Reset() {
	*x = AnalyzeCompetitorsResponse{}
	mi := &file_proto_reasoning_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeCompetitorsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeCompetitorsResponse) ProtoMessage() {}

func (x *AnalyzeCompetitorsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_reasoning_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeCompetitorsResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeCompetitorsResponse) Descriptor() ([]byte, []int) {
	return file_proto_reasoning_proto_rawDescGZIP(), []int{7}
}

func (x *AnalyzeCompetitorsResponse) GetPatternsThatWorked() []string {
	if x != nil {
		return x.PatternsThatWorked
	}
	return nil
}

func (x *AnalyzeCompetitorsResponse) GetPatternsThatFailed() []string {
	if x != nil {
		return x.PatternsThatFailed
	}
	return nil
}

func (x *AnalyzeCompetitorsResponse) GetTransferableRules() []string {
	if x != nil {
		return x.TransferableRules
	}
	return nil
}

type DayPlan struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Youtube       string                 `protobuf:"bytes,1,opt,name=youtube,proto3" json:"youtube,omitempty"`
	Twitter       string                 `protobuf:"bytes,2,opt,name=twitter,proto3" json:"twitter,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DayPlan) Reset() {
	*x = DayPlan{}
	mi := &file_proto_reasoning_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DayPlan) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DayPlan) ProtoMessage() {}

func (x *DayPlan) ProtoReflect() protoreflect.Message {
	mi := &file_proto_reasoning_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DayPlan.ProtoReflect.Descriptor instead.
func (*DayPlan) Descriptor() ([]byte, []int) {
	return file_proto_reasoning_proto_rawDescGZIP(), []int{8}
}

func (x *DayPlan) GetYoutube() string {
	if x != nil {
		return x.Youtube
	}
	return ""
}

func (x *DayPlan) GetTwitter() string {
	if x != nil {
		return x.Twitter
	}
	return ""
}

type PlanCampaignRequest struct {
	state         protoimpl.MessageState   `protogen:"open.v1"`
	Goal          *structpb.Struct         `protobuf:"bytes,1,opt,name=goal,proto3" json:"goal,omitempty"`
	Strategy      *DevelopStrategyResponse `protobuf:"bytes,2,opt,name=strategy,proto3" json:"strategy,omitempty"`
	Forensics     *structpb.Struct         `protobuf:"bytes,3,opt,name=forensics,proto3" json:"forensics,omitempty"`
	Intensity     string                   `protobuf:"bytes,4,opt,name=intensity,proto3" json:"intensity,omitempty"`
	PastLearnings []*LearningRecord        `protobuf:"bytes,5,rep,name=past_learnings,json=pastLearnings,proto3" json:"past_learnings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlanCampaignRequest) Reset() {
	*x = PlanCampaignRequest{}
	mi := &file_proto_reasoning_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlanCampaignRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlanCampaignRequest) ProtoMessage() {}

func (x *PlanCampaignRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_reasoning_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlanCampaignRequest.ProtoReflect.Descriptor instead.
func (*PlanCampaignRequest) Descriptor() ([]byte, []int) {
	return file_proto_reasoning_proto_rawDescGZIP(), []int{9}
}

func (x *PlanCampaignRequest) GetGoal() *structpb.Struct {
	if x != nil {
		return x.Goal
	}
	return nil
}

func (x *PlanCampaignRequest) GetStrategy() *DevelopStrategyResponse {
	if x != nil {
		return x.Strategy
	}
	return nil
}

func (x *PlanCampaignRequest) GetForensics() *structpb.Struct {
	if x != nil {
		return x.Forensics
	}
	return nil
}

func (x *PlanCampaignRequest) GetIntensity() string {
	if x != nil {
		return x.Intensity
	}
	return ""
}

func (x *PlanCampaignRequest) GetPastLearnings() []*LearningRecord {
	if x != nil {
		return x.PastLearnings
	}
	return nil
}

type PlanCampaignResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Day_1         *DayPlan               `protobuf:"bytes,1,opt,name=day_1,json=day1,proto3" json:"day_1,omitempty"`
	Day_2         *DayPlan               `protobuf:"bytes,2,opt,name=day_2,json=day2,proto3" json:"day_2,omitempty"`
	Day_3         *DayPlan               `protobuf:"bytes,3,opt,name=day_3,json=day3,proto3" json:"day_3,omitempty"`
	ExtraDays     map[int32]*DayPlan     `protobuf:"bytes,4,rep,name=extra_days,json=extraDays,proto3" json:"extra_days,omitempty" protobuf_key:"varint,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PlanCampaignResponse) Reset() {
	*x = PlanCampaignResponse{}
	mi := &file_proto_reasoning_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PlanCampaignResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlanCampaignResponse) ProtoMessage() {}

func (x *PlanCampaignResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_reasoning_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlanCampaignResponse.ProtoReflect.Descriptor instead.
func (*PlanCampaignResponse) Descriptor() ([]byte, []int) {
	return file_proto_reasoning_proto_rawDescGZIP(), []int{10}
}

func (x *PlanCampaignResponse) GetDay_1() *DayPlan {
	if x != nil {
		return x.Day_1
	}
	return nil
}

func (x *PlanCampaignResponse) GetDay_2() *DayPlan {
	if x != nil {
		return x.Day_2
	}
	return nil
}

func (x *PlanCampaignResponse) GetDay_3() *DayPlan {
	if x != nil {
		return x.Day_3
	}
	return nil
}

func (x *PlanCampaignResponse) GetExtraDays() map[int32]*DayPlan {
	if x != nil {
		return x.ExtraDays
	}
	return nil
}

type GenerateDailyContentRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	DayPlan         *DayPlan               `protobuf:"bytes,1,opt,name=day_plan,json=dayPlan,proto3" json:"day_plan,omitempty"`
	ProfileSnapshot *structpb.Struct       `protobuf:"bytes,2,opt,name=profile_snapshot,json=profileSnapshot,proto3" json:"profile_snapshot,omitempty"`
	DayNumber       int32                  `protobuf:"varint,3,opt,name=day_number,json=dayNumber,proto3" json:"day_number,omitempty"`
	DurationDays    int32                  `protobuf:"varint,4,opt,name=duration_days,json=durationDays,proto3" json:"duration_days,omitempty"`
	Intensity       string                 `protobuf:"bytes,5,opt,name=intensity,proto3" json:"intensity,omitempty"`
	GoalType        string                 `protobuf:"bytes,6,opt,name=goal_type,json=goalType,proto3" json:"goal_type,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GenerateDailyContentRequest) Reset() {
	*x = GenerateDailyContentRequest{}
	mi := &file_proto_reasoning_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateDailyContentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateDailyContentRequest) ProtoMessage() {}

func (x *GenerateDailyContentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_reasoning_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateDailyContentRequest.ProtoReflect.Descriptor instead.
func (*GenerateDailyContentRequest) Descriptor() ([]byte, []int) {
	return file_proto_reasoning_proto_rawDescGZIP(), []int{11}
}

func (x *GenerateDailyContentRequest) GetDayPlan() *DayPlan {
	if x != nil {
		return x.DayPlan
	}
	return nil
}

func (x *GenerateDailyContentRequest) GetProfileSnapshot() *structpb.Struct {
	if x != nil {
		return x.ProfileSnapshot
	}
	return nil
}

func (x *GenerateDailyContentRequest) GetDayNumber() int32 {
	if x != nil {
		return x.DayNumber
	}
	return 0
}

func (x *GenerateDailyContentRequest) GetDurationDays() int32 {
	if x != nil {
		return x.DurationDays
	}
	return 0
}

func (x *GenerateDailyContentRequest) GetIntensity() string {
	if x != nil {
		return x.Intensity
	}
	return ""
}

func (x *GenerateDailyContentRequest) GetGoalType() string {
	if x != nil {
		return x.GoalType
	}
	return ""
}

type GenerateDailyContentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	YoutubeScript string                 `protobuf:"bytes,1,opt,name=youtube_script,json=youtubeScript,proto3" json:"youtube_script,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	SeoTags       []string               `protobuf:"bytes,3,rep,name=seo_tags,json=seoTags,proto3" json:"seo_tags,omitempty"`
	Cta           string                 `protobuf:"bytes,4,opt,name=cta,proto3" json:"cta,omitempty"`
	Tweet         string                 `protobuf:"bytes,5,opt,name=tweet,proto3" json:"tweet,omitempty"`
	Thread        []string               `protobuf:"bytes,6,rep,name=thread,proto3" json:"thread,omitempty"`
	Reasoning     string                 `protobuf:"bytes,7,opt,name=reasoning,proto3" json:"reasoning,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateDailyContentResponse) Reset() {
	*x = GenerateDailyContentResponse{}
	mi := &file_proto_reasoning_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateDailyContentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateDailyContentResponse) ProtoMessage() {}

func (x *GenerateDailyContentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_reasoning_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateDailyContentResponse.ProtoReflect.Descriptor instead.
func (*GenerateDailyContentResponse) Descriptor() ([]byte, []int) {
	return file_proto_reasoning_proto_rawDescGZIP(), []int{12}
}

func (x *GenerateDailyContentResponse) GetYoutubeScript() string {
	if x != nil {
		return x.YoutubeScript
	}
	return ""
}

func (x *GenerateDailyContentResponse) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *GenerateDailyContentResponse) GetSeoTags() []string {
	if x != nil {
		return x.SeoTags
	}
	return nil
}

func (x *GenerateDailyContentResponse) GetCta() string {
	if x != nil {
		return x.Cta
	}
	return ""
}

func (x *GenerateDailyContentResponse) GetTweet() string {
	if x != nil {
		return x.Tweet
	}
	return ""
}

func (x *GenerateDailyContentResponse) GetThread() []string {
	if x != nil {
		return x.Thread
	}
	return nil
}

func (x *GenerateDailyContentResponse) GetReasoning() string {
	if x != nil {
		return x.Reasoning
	}
	return ""
}

type AnalyzeOutcomeRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Goal           *structpb.Struct       `protobuf:"bytes,1,opt,name=goal,proto3" json:"goal,omitempty"`
	CampaignPlan   *structpb.Struct       `protobuf:"bytes,2,opt,name=campaign_plan,json=campaignPlan,proto3" json:"campaign_plan,omitempty"`
	ActualMetrics  *structpb.Struct       `protobuf:"bytes,3,opt,name=actual_metrics,json=actualMetrics,proto3" json:"actual_metrics,omitempty"`
	DailyExecution *structpb.Struct       `protobuf:"bytes,4,opt,name=daily_execution,json=dailyExecution,proto3" json:"daily_execution,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *AnalyzeOutcomeRequest) Reset() {
	*x = AnalyzeOutcomeRequest{}
	mi := &file_proto_reasoning_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeOutcomeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeOutcomeRequest) ProtoMessage() {}

func (x *AnalyzeOutcomeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_reasoning_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeOutcomeRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeOutcomeRequest) Descriptor() ([]byte, []int) {
	return file_proto_reasoning_proto_rawDescGZIP(), []int{13}
}

func (x *AnalyzeOutcomeRequest) GetGoal() *structpb.Struct {
	if x != nil {
		return x.Goal
	}
	return nil
}

func (x *AnalyzeOutcomeRequest) GetCampaignPlan() *structpb.Struct {
	if x != nil {
		return x.CampaignPlan
	}
	return nil
}

func (x *AnalyzeOutcomeRequest) GetActualMetrics() *structpb.Struct {
	if x != nil {
		return x.ActualMetrics
	}
	return nil
}

func (x *AnalyzeOutcomeRequest) GetDailyExecution() *structpb.Struct {
	if x != nil {
		return x.DailyExecution
	}
	return nil
}

type AnalyzeOutcomeResponse struct {
	state                   protoimpl.MessageState `protogen:"open.v1"`
	GoalVsResult            *structpb.Struct       `protobuf:"bytes,1,opt,name=goal_vs_result,json=goalVsResult,proto3" json:"goal_vs_result,omitempty"`
	WhatWorked              []string               `protobuf:"bytes,2,rep,name=what_worked,json=whatWorked,proto3" json:"what_worked,omitempty"`
	WhatFailed              []string               `protobuf:"bytes,3,rep,name=what_failed,json=whatFailed,proto3" json:"what_failed,omitempty"`
	NextCampaignSuggestions []string               `protobuf:"bytes,4,rep,name=next_campaign_suggestions,json=nextCampaignSuggestions,proto3" json:"next_campaign_suggestions,omitempty"`
	unknownFields           protoimpl.UnknownFields
	sizeCache               protoimpl.SizeCache
}

func (x *AnalyzeOutcomeResponse) Reset() {
	*x = AnalyzeOutcomeResponse{}
	mi := &file_proto_reasoning_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeOutcomeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeOutcomeResponse) ProtoMessage() {}

func (x *AnalyzeOutcomeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_reasoning_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeOutcomeResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeOutcomeResponse) Descriptor() ([]byte, []int) {
	return file_proto_reasoning_proto_rawDescGZIP(), []int{14}
}

func (x *AnalyzeOutcomeResponse) GetGoalVsResult() *structpb.Struct {
	if x != nil {
		return x.GoalVsResult
	}
	return nil
}

func (x *AnalyzeOutcomeResponse) GetWhatWorked() []string {
	if x != nil {
		return x.WhatWorked
	}
	return nil
}

func (x *AnalyzeOutcomeResponse) GetWhatFailed() []string {
	if x != nil {
		return x.WhatFailed
	}
	return nil
}

func (x *AnalyzeOutcomeResponse) GetNextCampaignSuggestions() []string {
	if x != nil {
		return x.NextCampaignSuggestions
	}
	return nil
}

var File_proto_reasoning_proto protoreflect.FileDescriptor

const file_proto_reasoning_proto_rawDesc = "" +
	"\n" +
	"\x15proto/reasoning.proto\x12\freasoning.v1\x1a\x1cgoogle/protobuf/struct.proto\"t\n" +
	"\x15AnalyzeContextRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12B\n" +
	"\x10profile_snapshot\x18\x02 \x01(\v2\x17.google.protobuf.StructR\x0fprofileSnapshot\"\x8b\x01\n" +
	"\x16AnalyzeContextResponse\x12<\n" +
	"\ragent_context\x18\x01 \x01(\v2\x17.google.protobuf.StructR\fagentContext\x123\n" +
	"\x15recommended_frequency\x18\x02 \x01(\tR\x14recommendedFrequency\"\xe8\x02\n" +
	"\x0eLearningRecord\x12\x1b\n" +
	"\tgoal_type\x18\x01 \x01(\tR\bgoalType\x12\x1a\n" +
	"\bplatform\x18\x02 \x01(\tR\bplatform\x12\x14\n" +
	"\x05niche\x18\x03 \x01(\tR\x05niche\x124\n" +
	"\x16campaign_duration_days\x18\x04 \x01(\x05R\x14campaignDurationDays\x12+\n" +
	"\x11posting_frequency\x18\x05 \x01(\tR\x10postingFrequency\x12\x1f\n" +
	"\vwhat_worked\x18\x06 \x03(\tR\n" +
	"whatWorked\x12\x1f\n" +
	"\vwhat_failed\x18\a \x03(\tR\n" +
	"whatFailed\x12(\n" +
	"\x0frecommendations\x18\b \x03(\tR\x0frecommendations\x128\n" +
	"\x18goal_achievement_summary\x18\t \x01(\tR\x16goalAchievementSummary\"\xc8\x01\n" +
	"\x16DevelopStrategyRequest\x12+\n" +
	"\x04goal\x18\x01 \x01(\v2\x17.google.protobuf.StructR\x04goal\x12<\n" +
	"\ragent_context\x18\x02 \x01(\v2\x17.google.protobuf.StructR\fagentContext\x12C\n" +
	"\x0epast_learnings\x18\x03 \x03(\v2\x1c.reasoning.v1.LearningRecordR\rpastLearnings\"\xb0\x01\n" +
	"\x17DevelopStrategyResponse\x12\x1e\n" +
	"\n" +
	"hypothesis\x18\x01 \x01(\tR\n" +
	"hypothesis\x12%\n" +
	"\x0eplatform_focus\x18\x02 \x03(\tR\rplatformFocus\x12)\n" +
	"\x10experiment_focus\x18\x03 \x03(\tR\x0fexperimentFocus\x12#\n" +
	"\rreality_check\x18\x04 \x01(\tR\frealityCheck\"A\n" +
	"\x0eCompetitorItem\x12/\n" +
	"\x06fields\x18\x01 \x01(\v2\x17.google.protobuf.StructR\x06fields\"\xc3\x01\n" +
	"\x19AnalyzeCompetitorsRequest\x12\x1a\n" +
	"\bplatform\x18\x01 \x01(\tR\bplatform\x12E\n" +
	"\x0fhigh_performing\x18\x02 \x03(\v2\x1c.reasoning.v1.CompetitorItemR\x0ehighPerforming\x12C\n" +
	"\x0elow_performing\x18\x03 \x03(\v2\x1c.reasoning.v1.CompetitorItemR\rlowPerforming\"\xaf\x01\n" +
	"\x1aAnalyzeCompetitorsResponse\x120\n" +
	"\x14patterns_that_worked\x18\x01 \x03(\tR\x12patternsThatWorked\x120\n" +
	"\x14patterns_that_failed\x18\x02 \x03(\tR\x12patternsThatFailed\x12-\n" +
	"\x12transferable_rules\x18\x03 \x03(\tR\x11transferableRules\"=\n" +
	"\aDayPlan\x12\x18\n" +
	"\ayoutube\x18\x01 \x01(\tR\ayoutube\x12\x18\n" +
	"\atwitter\x18\x02 \x01(\tR\atwitter\"\x9f\x02\n" +
	"\x13PlanCampaignRequest\x12+\n" +
	"\x04goal\x18\x01 \x01(\v2\x17.google.protobuf.StructR\x04goal\x12A\n" +
	"\bstrategy\x18\x02 \x01(\v2%.reasoning.v1.DevelopStrategyResponseR\bstrategy\x125\n" +
	"\tforensics\x18\x03 \x01(\v2\x17.google.protobuf.StructR\tforensics\x12\x1c\n" +
	"\tintensity\x18\x04 \x01(\tR\tintensity\x12C\n" +
	"\x0epast_learnings\x18\x05 \x03(\v2\x1c.reasoning.v1.LearningRecordR\rpastLearnings\"\xc1\x02\n" +
	"\x14PlanCampaignResponse\x12*\n" +
	"\x05day_1\x18\x01 \x01(\v2\x15.reasoning.v1.DayPlanR\x04day1\x12*\n" +
	"\x05day_2\x18\x02 \x01(\v2\x15.reasoning.v1.DayPlanR\x04day2\x12*\n" +
	"\x05day_3\x18\x03 \x01(\v2\x15.reasoning.v1.DayPlanR\x04day3\x12P\n" +
	"\n" +
	"extra_days\x18\x04 \x03(\v21.reasoning.v1.PlanCampaignResponse.ExtraDaysEntryR\textraDays\x1aS\n" +
	"\x0eExtraDaysEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\x05R\x03key\x12+\n" +
	"\x05value\x18\x02 \x01(\v2\x15.reasoning.v1.DayPlanR\x05value:\x028\x01\"\x92\x02\n" +
	"\x1bGenerateDailyContentRequest\x120\n" +
	"\bday_plan\x18\x01 \x01(\v2\x15.reasoning.v1.DayPlanR\adayPlan\x12B\n" +
	"\x10profile_snapshot\x18\x02 \x01(\v2\x17.google.protobuf.StructR\x0fprofileSnapshot\x12\x1d\n" +
	"\n" +
	"day_number\x18\x03 \x01(\x05R\tdayNumber\x12#\n" +
	"\rduration_days\x18\x04 \x01(\x05R\fdurationDays\x12\x1c\n" +
	"\tintensity\x18\x05 \x01(\tR\tintensity\x12\x1b\n" +
	"\tgoal_type\x18\x06 \x01(\tR\bgoalType\"\xd4\x01\n" +
	"\x1cGenerateDailyContentResponse\x12%\n" +
	"\x0eyoutube_script\x18\x01 \x01(\tR\ryoutubeScript\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x19\n" +
	"\bseo_tags\x18\x03 \x03(\tR\aseoTags\x12\x10\n" +
	"\x03cta\x18\x04 \x01(\tR\x03cta\x12\x14\n" +
	"\x05tweet\x18\x05 \x01(\tR\x05tweet\x12\x16\n" +
	"\x06thread\x18\x06 \x03(\tR\x06thread\x12\x1c\n" +
	"\treasoning\x18\a \x01(\tR\treasoning\"\x84\x02\n" +
	"\x15AnalyzeOutcomeRequest\x12+\n" +
	"\x04goal\x18\x01 \x01(\v2\x17.google.protobuf.StructR\x04goal\x12<\n" +
	"\rcampaign_plan\x18\x02 \x01(\v2\x17.google.protobuf.StructR\fcampaignPlan\x12>\n" +
	"\x0eactual_metrics\x18\x03 \x01(\v2\x17.google.protobuf.StructR\ractualMetrics\x12@\n" +
	"\x0fdaily_execution\x18\x04 \x01(\v2\x17.google.protobuf.StructR\x0edailyExecution\"\xd5\x01\n" +
	"\x16AnalyzeOutcomeResponse\x12=\n" +
	"\x0egoal_vs_result\x18\x01 \x01(\v2\x17.google.protobuf.StructR\fgoalVsResult\x12\x1f\n" +
	"\vwhat_worked\x18\x02 \x03(\tR\n" +
	"whatWorked\x12\x1f\n" +
	"\vwhat_failed\x18\x03 \x03(\tR\n" +
	"whatFailed\x12:\n" +
	"\x19next_campaign_suggestions\x18\x04 \x03(\tR\x17nextCampaignSuggestions2\xdb\x04\n" +
	"\x10ReasoningService\x12[\n" +
	"\x0eAnalyzeContext\x12#.reasoning.v1.AnalyzeContextRequest\x1a$.reasoning.v1.AnalyzeContextResponse\x12^\n" +
	"\x0fDevelopStrategy\x12$.reasoning.v1.DevelopStrategyRequest\x1a%.reasoning.v1.DevelopStrategyResponse\x12g\n" +
	"\x12AnalyzeCompetitors\x12'.reasoning.v1.AnalyzeCompetitorsRequest\x1a(.reasoning.v1.AnalyzeCompetitorsResponse\x12U\n" +
	"\fPlanCampaign\x12!.reasoning.v1.PlanCampaignRequest\x1a\".reasoning.v1.PlanCampaignResponse\x12m\n" +
	"\x14GenerateDailyContent\x12).reasoning.v1.GenerateDailyContentRequest\x1a*.reasoning.v1.GenerateDailyContentResponse\x12[\n" +
	"\x0eAnalyzeOutcome\x12#.reasoning.v1.AnalyzeOutcomeRequest\x1a$.reasoning.v1.AnalyzeOutcomeResponseB1Z/github.com/creatorloop/looper/proto;reasoningv1b\x06proto3"

var (
	file_proto_reasoning_proto_rawDescOnce sync.Once
	file_proto_reasoning_proto_rawDescData []byte
)

func file_proto_reasoning_proto_rawDescGZIP() []byte {
	file_proto_reasoning_proto_rawDescOnce.Do(func() {
		file_proto_reasoning_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_proto_reasoning_proto_rawDesc), len(file_proto_reasoning_proto_rawDesc)))
	})
	return file_proto_reasoning_proto_rawDescData
}

var file_proto_reasoning_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_proto_reasoning_proto_goTypes = []any{
	(*AnalyzeContextRequest)(nil),        // 0: reasoning.v1.AnalyzeContextRequest
	(*AnalyzeContextResponse)(nil),       // 1: reasoning.v1.AnalyzeContextResponse
	(*LearningRecord)(nil),               // 2: reasoning.v1.LearningRecord
	(*DevelopStrategyRequest)(nil),       // 3: reasoning.v1.DevelopStrategyRequest
	(*DevelopStrategyResponse)(nil),      // 4: reasoning.v1.DevelopStrategyResponse
	(*CompetitorItem)(nil),               // 5: reasoning.v1.CompetitorItem
	(*AnalyzeCompetitorsRequest)(nil),    // 6: reasoning.v1.AnalyzeCompetitorsRequest
	(*AnalyzeCompetitorsResponse)(nil),   // 7: reasoning.v1.AnalyzeCompetitorsResponse
	(*DayPlan)(nil),                      // 8: reasoning.v1.DayPlan
	(*PlanCampaignRequest)(nil),          // 9: reasoning.v1.PlanCampaignRequest
	(*PlanCampaignResponse)(nil),         // 10: reasoning.v1.PlanCampaignResponse
	(*GenerateDailyContentRequest)(nil),  // 11: reasoning.v1.GenerateDailyContentRequest
	(*GenerateDailyContentResponse)(nil), // 12: reasoning.v1.GenerateDailyContentResponse
	(*AnalyzeOutcomeRequest)(nil),        // 13: reasoning.v1.AnalyzeOutcomeRequest
	(*AnalyzeOutcomeResponse)(nil),       // 14: reasoning.v1.AnalyzeOutcomeResponse
	nil,                                  // 15: reasoning.v1.PlanCampaignResponse.ExtraDaysEntry
	(*structpb.Struct)(nil),              // 16: google.protobuf.Struct
}
var file_proto_reasoning_proto_depIdxs = []int32{
	16, // 0: reasoning.v1.AnalyzeContextRequest.profile_snapshot:type_name -> google.protobuf.Struct
	16, // 1: reasoning.v1.AnalyzeContextResponse.agent_context:type_name -> google.protobuf.Struct
	16, // 2: reasoning.v1.DevelopStrategyRequest.goal:type_name -> google.protobuf.Struct
	16, // 3: reasoning.v1.DevelopStrategyRequest.agent_context:type_name -> google.protobuf.Struct
	2,  // 4: reasoning.v1.DevelopStrategyRequest.past_learnings:type_name -> reasoning.v1.LearningRecord
	16, // 5: reasoning.v1.CompetitorItem.fields:type_name -> google.protobuf.Struct
	5,  // 6: reasoning.v1.AnalyzeCompetitorsRequest.high_performing:type_name -> reasoning.v1.CompetitorItem
	5,  // 7: reasoning.v1.AnalyzeCompetitorsRequest.low_performing:type_name -> reasoning.v1.CompetitorItem
	16, // 8: reasoning.v1.PlanCampaignRequest.goal:type_name -> google.protobuf.Struct
	4,  // 9: reasoning.v1.PlanCampaignRequest.strategy:type_name -> reasoning.v1.DevelopStrategyResponse
	16, // 10: reasoning.v1.PlanCampaignRequest.forensics:type_name -> google.protobuf.Struct
	2,  // 11: reasoning.v1.PlanCampaignRequest.past_learnings:type_name -> reasoning.v1.LearningRecord
	8,  // 12: reasoning.v1.PlanCampaignResponse.day_1:type_name -> reasoning.v1.DayPlan
	8,  // 13: reasoning.v1.PlanCampaignResponse.day_2:type_name -> reasoning.v1.DayPlan
	8,  // 14: reasoning.v1.PlanCampaignResponse.day_3:type_name -> reasoning.v1.DayPlan
	15, // 15: reasoning.v1.PlanCampaignResponse.extra_days:type_name -> reasoning.v1.PlanCampaignResponse.ExtraDaysEntry
	8,  // 16: reasoning.v1.GenerateDailyContentRequest.day_plan:type_name -> reasoning.v1.DayPlan
	16, // 17: reasoning.v1.GenerateDailyContentRequest.profile_snapshot:type_name -> google.protobuf.Struct
	16, // 18: reasoning.v1.AnalyzeOutcomeRequest.goal:type_name -> google.protobuf.Struct
	16, // 19: reasoning.v1.AnalyzeOutcomeRequest.campaign_plan:type_name -> google.protobuf.Struct
	16, // 20: reasoning.v1.AnalyzeOutcomeRequest.actual_metrics:type_name -> google.protobuf.Struct
	16, // 21: reasoning.v1.AnalyzeOutcomeRequest.daily_execution:type_name -> google.protobuf.Struct
	16, // 22: reasoning.v1.AnalyzeOutcomeResponse.goal_vs_result:type_name -> google.protobuf.Struct
	8,  // 23: reasoning.v1.PlanCampaignResponse.ExtraDaysEntry.value:type_name -> reasoning.v1.DayPlan
	0,  // 24: reasoning.v1.ReasoningService.AnalyzeContext:input_type -> reasoning.v1.AnalyzeContextRequest
	3,  // 25: reasoning.v1.ReasoningService.DevelopStrategy:input_type -> reasoning.v1.DevelopStrategyRequest
	6,  // 26: reasoning.v1.ReasoningService.AnalyzeCompetitors:input_type -> reasoning.v1.AnalyzeCompetitorsRequest
	9,  // 27: reasoning.v1.ReasoningService.PlanCampaign:input_type -> reasoning.v1.PlanCampaignRequest
	11, // 28: reasoning.v1.ReasoningService.GenerateDailyContent:input_type -> reasoning.v1.GenerateDailyContentRequest
	13, // 29: reasoning.v1.ReasoningService.AnalyzeOutcome:input_type -> reasoning.v1.AnalyzeOutcomeRequest
	1,  // 30: reasoning.v1.ReasoningService.AnalyzeContext:output_type -> reasoning.v1.AnalyzeContextResponse
	4,  // 31: reasoning.v1.ReasoningService.DevelopStrategy:output_type -> reasoning.v1.DevelopStrategyResponse
	7,  // 32: reasoning.v1.ReasoningService.AnalyzeCompetitors:output_type -> reasoning.v1.AnalyzeCompetitorsResponse
	10, // 33: reasoning.v1.ReasoningService.PlanCampaign:output_type -> reasoning.v1.PlanCampaignResponse
	12, // 34: reasoning.v1.ReasoningService.GenerateDailyContent:output_type -> reasoning.v1.GenerateDailyContentResponse
	14, // 35: reasoning.v1.ReasoningService.AnalyzeOutcome:output_type -> reasoning.v1.AnalyzeOutcomeResponse
	30, // [30:36] is the sub-list for method output_type
	24, // [24:30] is the sub-list for method input_type
	24, // [24:24] is the sub-list for extension type_name
	24, // [24:24] is the sub-list for extension extendee
	0,  // [0:24] is the sub-list for field type_name
}

func init() { file_proto_reasoning_proto_init() }
func file_proto_reasoning_proto_init() {
	if File_proto_reasoning_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_proto_reasoning_proto_rawDesc), len(file_proto_reasoning_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_reasoning_proto_goTypes,
		DependencyIndexes: file_proto_reasoning_proto_depIdxs,
		MessageInfos:      file_proto_reasoning_proto_msgTypes,
	}.Build()
	File_proto_reasoning_proto = out.File
	file_proto_reasoning_proto_goTypes = nil
	file_proto_reasoning_proto_depIdxs = nil
}
