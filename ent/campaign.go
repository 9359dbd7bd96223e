// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/ent/user"
)

// Campaign is the model entity for the Campaign schema.
type Campaign struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Status holds the value of the "status" field.
	Status campaign.Status `json:"status,omitempty"`
	// OnboardingData holds the value of the "onboarding_data" field.
	OnboardingData map[string]interface{} `json:"onboarding_data,omitempty"`
	// Immutable copy of the creator profile taken at creation
	ProfileSnapshot map[string]interface{} `json:"profile_snapshot,omitempty"`
	// AgentContext holds the value of the "agent_context" field.
	AgentContext map[string]interface{} `json:"agent_context,omitempty"`
	// StrategyOutput holds the value of the "strategy_output" field.
	StrategyOutput map[string]interface{} `json:"strategy_output,omitempty"`
	// ForensicsOutput holds the value of the "forensics_output" field.
	ForensicsOutput map[string]interface{} `json:"forensics_output,omitempty"`
	// CampaignPlan holds the value of the "campaign_plan" field.
	CampaignPlan map[string]interface{} `json:"campaign_plan,omitempty"`
	// OutcomeReport holds the value of the "outcome_report" field.
	OutcomeReport map[string]interface{} `json:"outcome_report,omitempty"`
	// LearningInsights holds the value of the "learning_insights" field.
	LearningInsights map[string]interface{} `json:"learning_insights,omitempty"`
	// ContentWarnings holds the value of the "content_warnings" field.
	ContentWarnings []string `json:"content_warnings,omitempty"`
	// Current task runtime binding; null when no task is live
	TaskID *string `json:"task_id,omitempty"`
	// 'workflow' or 'outcome'; read by retry
	LastAttemptedPhase *string `json:"last_attempted_phase,omitempty"`
	// FailedStage holds the value of the "failed_stage" field.
	FailedStage *string `json:"failed_stage,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ArchivedAt holds the value of the "archived_at" field.
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CampaignQuery when eager-loading is set.
	Edges        CampaignEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CampaignEdges holds the relations/edges for other nodes in the graph.
type CampaignEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// DailyContents holds the value of the daily_contents edge.
	DailyContents []*DailyContent `json:"daily_contents,omitempty"`
	// DailyExecutions holds the value of the daily_executions edge.
	DailyExecutions []*DailyExecution `json:"daily_executions,omitempty"`
	// LearningMemories holds the value of the learning_memories edge.
	LearningMemories []*LearningMemory `json:"learning_memories,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CampaignEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// DailyContentsOrErr returns the DailyContents value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) DailyContentsOrErr() ([]*DailyContent, error) {
	if e.loadedTypes[1] {
		return e.DailyContents, nil
	}
	return nil, &NotLoadedError{edge: "daily_contents"}
}

// DailyExecutionsOrErr returns the DailyExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) DailyExecutionsOrErr() ([]*DailyExecution, error) {
	if e.loadedTypes[2] {
		return e.DailyExecutions, nil
	}
	return nil, &NotLoadedError{edge: "daily_executions"}
}

// LearningMemoriesOrErr returns the LearningMemories value or an error if the edge
// was not loaded in eager-loading.
func (e CampaignEdges) LearningMemoriesOrErr() ([]*LearningMemory, error) {
	if e.loadedTypes[3] {
		return e.LearningMemories, nil
	}
	return nil, &NotLoadedError{edge: "learning_memories"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Campaign) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case campaign.FieldOnboardingData, campaign.FieldProfileSnapshot, campaign.FieldAgentContext, campaign.FieldStrategyOutput, campaign.FieldForensicsOutput, campaign.FieldCampaignPlan, campaign.FieldOutcomeReport, campaign.FieldLearningInsights, campaign.FieldContentWarnings:
			values[i] = new([]byte)
		case campaign.FieldID, campaign.FieldUserID, campaign.FieldStatus, campaign.FieldTaskID, campaign.FieldLastAttemptedPhase, campaign.FieldFailedStage:
			values[i] = new(sql.NullString)
		case campaign.FieldCreatedAt, campaign.FieldUpdatedAt, campaign.FieldStartedAt, campaign.FieldCompletedAt, campaign.FieldArchivedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Campaign fields.
func (_m *Campaign) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case campaign.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case campaign.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case campaign.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = campaign.Status(value.String)
			}
		case campaign.FieldOnboardingData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field onboarding_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OnboardingData); err != nil {
					return fmt.Errorf("unmarshal field onboarding_data: %w", err)
				}
			}
		case campaign.FieldProfileSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field profile_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProfileSnapshot); err != nil {
					return fmt.Errorf("unmarshal field profile_snapshot: %w", err)
				}
			}
		case campaign.FieldAgentContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agent_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AgentContext); err != nil {
					return fmt.Errorf("unmarshal field agent_context: %w", err)
				}
			}
		case campaign.FieldStrategyOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strategy_output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StrategyOutput); err != nil {
					return fmt.Errorf("unmarshal field strategy_output: %w", err)
				}
			}
		case campaign.FieldForensicsOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field forensics_output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ForensicsOutput); err != nil {
					return fmt.Errorf("unmarshal field forensics_output: %w", err)
				}
			}
		case campaign.FieldCampaignPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CampaignPlan); err != nil {
					return fmt.Errorf("unmarshal field campaign_plan: %w", err)
				}
			}
		case campaign.FieldOutcomeReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field outcome_report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OutcomeReport); err != nil {
					return fmt.Errorf("unmarshal field outcome_report: %w", err)
				}
			}
		case campaign.FieldLearningInsights:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field learning_insights", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LearningInsights); err != nil {
					return fmt.Errorf("unmarshal field learning_insights: %w", err)
				}
			}
		case campaign.FieldContentWarnings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_warnings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContentWarnings); err != nil {
					return fmt.Errorf("unmarshal field content_warnings: %w", err)
				}
			}
		case campaign.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = new(string)
				*_m.TaskID = value.String
			}
		case campaign.FieldLastAttemptedPhase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempted_phase", values[i])
			} else if value.Valid {
				_m.LastAttemptedPhase = new(string)
				*_m.LastAttemptedPhase = value.String
			}
		case campaign.FieldFailedStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failed_stage", values[i])
			} else if value.Valid {
				_m.FailedStage = new(string)
				*_m.FailedStage = value.String
			}
		case campaign.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case campaign.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case campaign.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case campaign.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case campaign.FieldArchivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field archived_at", values[i])
			} else if value.Valid {
				_m.ArchivedAt = new(time.Time)
				*_m.ArchivedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Campaign.
// This includes values selected through modifiers, order, etc.
func (_m *Campaign) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Campaign entity.
func (_m *Campaign) QueryUser() *UserQuery {
	return NewCampaignClient(_m.config).QueryUser(_m)
}

// QueryDailyContents queries the "daily_contents" edge of the Campaign entity.
func (_m *Campaign) QueryDailyContents() *DailyContentQuery {
	return NewCampaignClient(_m.config).QueryDailyContents(_m)
}

// QueryDailyExecutions queries the "daily_executions" edge of the Campaign entity.
func (_m *Campaign) QueryDailyExecutions() *DailyExecutionQuery {
	return NewCampaignClient(_m.config).QueryDailyExecutions(_m)
}

// QueryLearningMemories queries the "learning_memories" edge of the Campaign entity.
func (_m *Campaign) QueryLearningMemories() *LearningMemoryQuery {
	return NewCampaignClient(_m.config).QueryLearningMemories(_m)
}

// Update returns a builder for updating this Campaign.
// Note that you need to call Campaign.Unwrap() before calling this method if this Campaign
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Campaign) Update() *CampaignUpdateOne {
	return NewCampaignClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Campaign entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Campaign) Unwrap() *Campaign {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Campaign is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Campaign) String() string {
	var builder strings.Builder
	builder.WriteString("Campaign(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("onboarding_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.OnboardingData))
	builder.WriteString(", ")
	builder.WriteString("profile_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileSnapshot))
	builder.WriteString(", ")
	builder.WriteString("agent_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentContext))
	builder.WriteString(", ")
	builder.WriteString("strategy_output=")
	builder.WriteString(fmt.Sprintf("%v", _m.StrategyOutput))
	builder.WriteString(", ")
	builder.WriteString("forensics_output=")
	builder.WriteString(fmt.Sprintf("%v", _m.ForensicsOutput))
	builder.WriteString(", ")
	builder.WriteString("campaign_plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.CampaignPlan))
	builder.WriteString(", ")
	builder.WriteString("outcome_report=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutcomeReport))
	builder.WriteString(", ")
	builder.WriteString("learning_insights=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearningInsights))
	builder.WriteString(", ")
	builder.WriteString("content_warnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentWarnings))
	builder.WriteString(", ")
	if v := _m.TaskID; v != nil {
		builder.WriteString("task_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastAttemptedPhase; v != nil {
		builder.WriteString("last_attempted_phase=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FailedStage; v != nil {
		builder.WriteString("failed_stage=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ArchivedAt; v != nil {
		builder.WriteString("archived_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Campaigns is a parsable slice of Campaign.
type Campaigns []*Campaign
