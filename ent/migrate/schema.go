// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CampaignsColumns holds the columns for the "campaigns" table.
	CampaignsColumns = []*schema.Column{
		{Name: "campaign_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"onboarding_incomplete", "ready_to_start", "processing", "in_progress", "generating_report", "completed", "processing_failed", "failed", "archived_plan_expired", "archived_user_deleted"}, Default: "onboarding_incomplete"},
		{Name: "onboarding_data", Type: field.TypeJSON},
		{Name: "profile_snapshot", Type: field.TypeJSON},
		{Name: "agent_context", Type: field.TypeJSON},
		{Name: "strategy_output", Type: field.TypeJSON},
		{Name: "forensics_output", Type: field.TypeJSON},
		{Name: "campaign_plan", Type: field.TypeJSON},
		{Name: "outcome_report", Type: field.TypeJSON},
		{Name: "learning_insights", Type: field.TypeJSON},
		{Name: "content_warnings", Type: field.TypeJSON},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "last_attempted_phase", Type: field.TypeString, Nullable: true},
		{Name: "failed_stage", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "archived_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// CampaignsTable holds the schema information for the "campaigns" table.
	CampaignsTable = &schema.Table{
		Name:       "campaigns",
		Columns:    CampaignsColumns,
		PrimaryKey: []*schema.Column{CampaignsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "campaigns_users_campaigns",
				Columns:    []*schema.Column{CampaignsColumns[19]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "campaign_user_id",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[19]},
			},
			{
				Name:    "campaign_status",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[1]},
			},
			{
				Name:    "campaign_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[19], CampaignsColumns[1]},
			},
		},
	}
	// CreatorProfilesColumns holds the columns for the "creator_profiles" table.
	CreatorProfilesColumns = []*schema.Column{
		{Name: "profile_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "creator_type", Type: field.TypeString},
		{Name: "niche", Type: field.TypeString},
		{Name: "target_audience_niche", Type: field.TypeString},
		{Name: "existing_platforms", Type: field.TypeJSON},
		{Name: "platform_urls", Type: field.TypeJSON},
		{Name: "unique_angle", Type: field.TypeString, Nullable: true},
		{Name: "purpose", Type: field.TypeString, Nullable: true},
		{Name: "strengths", Type: field.TypeJSON},
		{Name: "target_platforms", Type: field.TypeJSON},
		{Name: "topics", Type: field.TypeJSON},
		{Name: "audience_demographics", Type: field.TypeJSON},
		{Name: "competitor_accounts", Type: field.TypeJSON},
		{Name: "existing_assets", Type: field.TypeJSON},
		{Name: "motivation", Type: field.TypeString, Nullable: true},
		{Name: "phase2_completed", Type: field.TypeBool, Default: false},
		{Name: "agent_context", Type: field.TypeJSON},
		{Name: "recommended_frequency", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString, Unique: true},
	}
	// CreatorProfilesTable holds the schema information for the "creator_profiles" table.
	CreatorProfilesTable = &schema.Table{
		Name:       "creator_profiles",
		Columns:    CreatorProfilesColumns,
		PrimaryKey: []*schema.Column{CreatorProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "creator_profiles_users_profile",
				Columns:    []*schema.Column{CreatorProfilesColumns[21]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// DailyContentsColumns holds the columns for the "daily_contents" table.
	DailyContentsColumns = []*schema.Column{
		{Name: "content_id", Type: field.TypeString, Unique: true},
		{Name: "day_number", Type: field.TypeInt},
		{Name: "platform", Type: field.TypeString},
		{Name: "script", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "seo_tags", Type: field.TypeJSON},
		{Name: "cta", Type: field.TypeString, Nullable: true},
		{Name: "tweet", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "thread", Type: field.TypeJSON},
		{Name: "thumbnail_urls", Type: field.TypeJSON},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeString},
	}
	// DailyContentsTable holds the schema information for the "daily_contents" table.
	DailyContentsTable = &schema.Table{
		Name:       "daily_contents",
		Columns:    DailyContentsColumns,
		PrimaryKey: []*schema.Column{DailyContentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "daily_contents_campaigns_daily_contents",
				Columns:    []*schema.Column{DailyContentsColumns[13]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dailycontent_campaign_id_day_number_platform",
				Unique:  true,
				Columns: []*schema.Column{DailyContentsColumns[13], DailyContentsColumns[1], DailyContentsColumns[2]},
			},
		},
	}
	// DailyExecutionsColumns holds the columns for the "daily_executions" table.
	DailyExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "day_number", Type: field.TypeInt},
		{Name: "platform", Type: field.TypeString},
		{Name: "posted_to_youtube", Type: field.TypeBool, Default: false},
		{Name: "posted_to_twitter", Type: field.TypeBool, Default: false},
		{Name: "executed_at", Type: field.TypeTime, Nullable: true},
		{Name: "engagement_metrics", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeString},
	}
	// DailyExecutionsTable holds the schema information for the "daily_executions" table.
	DailyExecutionsTable = &schema.Table{
		Name:       "daily_executions",
		Columns:    DailyExecutionsColumns,
		PrimaryKey: []*schema.Column{DailyExecutionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "daily_executions_campaigns_daily_executions",
				Columns:    []*schema.Column{DailyExecutionsColumns[9]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dailyexecution_campaign_id_day_number_platform",
				Unique:  true,
				Columns: []*schema.Column{DailyExecutionsColumns[9], DailyExecutionsColumns[1], DailyExecutionsColumns[2]},
			},
		},
	}
	// LearningMemoriesColumns holds the columns for the "learning_memories" table.
	LearningMemoriesColumns = []*schema.Column{
		{Name: "memory_id", Type: field.TypeString, Unique: true},
		{Name: "goal_type", Type: field.TypeString},
		{Name: "platform", Type: field.TypeString},
		{Name: "niche", Type: field.TypeString},
		{Name: "campaign_duration_days", Type: field.TypeInt},
		{Name: "posting_frequency", Type: field.TypeString, Nullable: true},
		{Name: "what_worked", Type: field.TypeJSON},
		{Name: "what_failed", Type: field.TypeJSON},
		{Name: "recommendations", Type: field.TypeJSON},
		{Name: "goal_achievement_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "campaign_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
	}
	// LearningMemoriesTable holds the schema information for the "learning_memories" table.
	LearningMemoriesTable = &schema.Table{
		Name:       "learning_memories",
		Columns:    LearningMemoriesColumns,
		PrimaryKey: []*schema.Column{LearningMemoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "learning_memories_campaigns_learning_memories",
				Columns:    []*schema.Column{LearningMemoriesColumns[11]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "learning_memories_users_learning_memories",
				Columns:    []*schema.Column{LearningMemoriesColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "learningmemory_user_id_goal_type_platform_niche",
				Unique:  false,
				Columns: []*schema.Column{LearningMemoriesColumns[12], LearningMemoriesColumns[1], LearningMemoriesColumns[2], LearningMemoriesColumns[3]},
			},
			{
				Name:    "learningmemory_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{LearningMemoriesColumns[12], LearningMemoriesColumns[10]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"run_campaign_workflow", "analyze_campaign_outcome", "analyze_previous_campaigns"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "started", "success", "failure", "retry", "revoked"}, Default: "pending"},
		{Name: "campaign_id", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "args", Type: field.TypeJSON},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "message", Type: field.TypeString, Default: ""},
		{Name: "result", Type: field.TypeJSON},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 3},
		{Name: "not_before", Type: field.TypeTime, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2]},
			},
			{
				Name:    "task_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2], TasksColumns[15]},
			},
			{
				Name:    "task_status_not_before",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2], TasksColumns[12]},
			},
			{
				Name:    "task_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2], TasksColumns[14]},
			},
			{
				Name:    "task_campaign_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[3]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "external_identity_id", Type: field.TypeString, Nullable: true},
		{Name: "plan_tier", Type: field.TypeString, Default: "free"},
		{Name: "usage", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_external_identity_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[2]},
			},
		},
	}
	// WebhookEventsColumns holds the columns for the "webhook_events" table.
	WebhookEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "external_user_id", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "processed_at", Type: field.TypeTime},
	}
	// WebhookEventsTable holds the schema information for the "webhook_events" table.
	WebhookEventsTable = &schema.Table{
		Name:       "webhook_events",
		Columns:    WebhookEventsColumns,
		PrimaryKey: []*schema.Column{WebhookEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookevent_external_user_id_event_type_processed_at",
				Unique:  false,
				Columns: []*schema.Column{WebhookEventsColumns[2], WebhookEventsColumns[1], WebhookEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CampaignsTable,
		CreatorProfilesTable,
		DailyContentsTable,
		DailyExecutionsTable,
		LearningMemoriesTable,
		TasksTable,
		UsersTable,
		WebhookEventsTable,
	}
)

func init() {
	CampaignsTable.ForeignKeys[0].RefTable = UsersTable
	CreatorProfilesTable.ForeignKeys[0].RefTable = UsersTable
	DailyContentsTable.ForeignKeys[0].RefTable = CampaignsTable
	DailyExecutionsTable.ForeignKeys[0].RefTable = CampaignsTable
	LearningMemoriesTable.ForeignKeys[0].RefTable = CampaignsTable
	LearningMemoriesTable.ForeignKeys[1].RefTable = UsersTable
}
