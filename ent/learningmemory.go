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
	"github.com/creatorloop/looper/ent/learningmemory"
	"github.com/creatorloop/looper/ent/user"
)

// LearningMemory is the model entity for the LearningMemory schema.
type LearningMemory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// CampaignID holds the value of the "campaign_id" field.
	CampaignID string `json:"campaign_id,omitempty"`
	// GoalType holds the value of the "goal_type" field.
	GoalType string `json:"goal_type,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// Niche holds the value of the "niche" field.
	Niche string `json:"niche,omitempty"`
	// CampaignDurationDays holds the value of the "campaign_duration_days" field.
	CampaignDurationDays int `json:"campaign_duration_days,omitempty"`
	// PostingFrequency holds the value of the "posting_frequency" field.
	PostingFrequency string `json:"posting_frequency,omitempty"`
	// WhatWorked holds the value of the "what_worked" field.
	WhatWorked []string `json:"what_worked,omitempty"`
	// WhatFailed holds the value of the "what_failed" field.
	WhatFailed []string `json:"what_failed,omitempty"`
	// Recommendations holds the value of the "recommendations" field.
	Recommendations []string `json:"recommendations,omitempty"`
	// GoalAchievementSummary holds the value of the "goal_achievement_summary" field.
	GoalAchievementSummary string `json:"goal_achievement_summary,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LearningMemoryQuery when eager-loading is set.
	Edges        LearningMemoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LearningMemoryEdges holds the relations/edges for other nodes in the graph.
type LearningMemoryEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Campaign holds the value of the campaign edge.
	Campaign *Campaign `json:"campaign,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LearningMemoryEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// CampaignOrErr returns the Campaign value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LearningMemoryEdges) CampaignOrErr() (*Campaign, error) {
	if e.Campaign != nil {
		return e.Campaign, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: campaign.Label}
	}
	return nil, &NotLoadedError{edge: "campaign"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningMemory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningmemory.FieldWhatWorked, learningmemory.FieldWhatFailed, learningmemory.FieldRecommendations:
			values[i] = new([]byte)
		case learningmemory.FieldCampaignDurationDays:
			values[i] = new(sql.NullInt64)
		case learningmemory.FieldID, learningmemory.FieldUserID, learningmemory.FieldCampaignID, learningmemory.FieldGoalType, learningmemory.FieldPlatform, learningmemory.FieldNiche, learningmemory.FieldPostingFrequency, learningmemory.FieldGoalAchievementSummary:
			values[i] = new(sql.NullString)
		case learningmemory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningMemory fields.
func (_m *LearningMemory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningmemory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case learningmemory.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case learningmemory.FieldCampaignID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = value.String
			}
		case learningmemory.FieldGoalType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_type", values[i])
			} else if value.Valid {
				_m.GoalType = value.String
			}
		case learningmemory.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case learningmemory.FieldNiche:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field niche", values[i])
			} else if value.Valid {
				_m.Niche = value.String
			}
		case learningmemory.FieldCampaignDurationDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_duration_days", values[i])
			} else if value.Valid {
				_m.CampaignDurationDays = int(value.Int64)
			}
		case learningmemory.FieldPostingFrequency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field posting_frequency", values[i])
			} else if value.Valid {
				_m.PostingFrequency = value.String
			}
		case learningmemory.FieldWhatWorked:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field what_worked", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WhatWorked); err != nil {
					return fmt.Errorf("unmarshal field what_worked: %w", err)
				}
			}
		case learningmemory.FieldWhatFailed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field what_failed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.WhatFailed); err != nil {
					return fmt.Errorf("unmarshal field what_failed: %w", err)
				}
			}
		case learningmemory.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case learningmemory.FieldGoalAchievementSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_achievement_summary", values[i])
			} else if value.Valid {
				_m.GoalAchievementSummary = value.String
			}
		case learningmemory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningMemory.
// This includes values selected through modifiers, order, etc.
func (_m *LearningMemory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the LearningMemory entity.
func (_m *LearningMemory) QueryUser() *UserQuery {
	return NewLearningMemoryClient(_m.config).QueryUser(_m)
}

// QueryCampaign queries the "campaign" edge of the LearningMemory entity.
func (_m *LearningMemory) QueryCampaign() *CampaignQuery {
	return NewLearningMemoryClient(_m.config).QueryCampaign(_m)
}

// Update returns a builder for updating this LearningMemory.
// Note that you need to call LearningMemory.Unwrap() before calling this method if this LearningMemory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningMemory) Update() *LearningMemoryUpdateOne {
	return NewLearningMemoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningMemory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningMemory) Unwrap() *LearningMemory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningMemory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningMemory) String() string {
	var builder strings.Builder
	builder.WriteString("LearningMemory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("campaign_id=")
	builder.WriteString(_m.CampaignID)
	builder.WriteString(", ")
	builder.WriteString("goal_type=")
	builder.WriteString(_m.GoalType)
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("niche=")
	builder.WriteString(_m.Niche)
	builder.WriteString(", ")
	builder.WriteString("campaign_duration_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.CampaignDurationDays))
	builder.WriteString(", ")
	builder.WriteString("posting_frequency=")
	builder.WriteString(_m.PostingFrequency)
	builder.WriteString(", ")
	builder.WriteString("what_worked=")
	builder.WriteString(fmt.Sprintf("%v", _m.WhatWorked))
	builder.WriteString(", ")
	builder.WriteString("what_failed=")
	builder.WriteString(fmt.Sprintf("%v", _m.WhatFailed))
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("goal_achievement_summary=")
	builder.WriteString(_m.GoalAchievementSummary)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearningMemories is a parsable slice of LearningMemory.
type LearningMemories []*LearningMemory
