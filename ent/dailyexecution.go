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
	"github.com/creatorloop/looper/ent/dailyexecution"
)

// DailyExecution is the model entity for the DailyExecution schema.
type DailyExecution struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CampaignID holds the value of the "campaign_id" field.
	CampaignID string `json:"campaign_id,omitempty"`
	// DayNumber holds the value of the "day_number" field.
	DayNumber int `json:"day_number,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// PostedToYoutube holds the value of the "posted_to_youtube" field.
	PostedToYoutube bool `json:"posted_to_youtube,omitempty"`
	// PostedToTwitter holds the value of the "posted_to_twitter" field.
	PostedToTwitter bool `json:"posted_to_twitter,omitempty"`
	// When the user confirmed posting for this day
	ExecutedAt *time.Time `json:"executed_at,omitempty"`
	// EngagementMetrics holds the value of the "engagement_metrics" field.
	EngagementMetrics map[string]interface{} `json:"engagement_metrics,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DailyExecutionQuery when eager-loading is set.
	Edges        DailyExecutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DailyExecutionEdges holds the relations/edges for other nodes in the graph.
type DailyExecutionEdges struct {
	// Campaign holds the value of the campaign edge.
	Campaign *Campaign `json:"campaign,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CampaignOrErr returns the Campaign value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DailyExecutionEdges) CampaignOrErr() (*Campaign, error) {
	if e.Campaign != nil {
		return e.Campaign, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: campaign.Label}
	}
	return nil, &NotLoadedError{edge: "campaign"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyExecution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailyexecution.FieldEngagementMetrics:
			values[i] = new([]byte)
		case dailyexecution.FieldPostedToYoutube, dailyexecution.FieldPostedToTwitter:
			values[i] = new(sql.NullBool)
		case dailyexecution.FieldDayNumber:
			values[i] = new(sql.NullInt64)
		case dailyexecution.FieldID, dailyexecution.FieldCampaignID, dailyexecution.FieldPlatform:
			values[i] = new(sql.NullString)
		case dailyexecution.FieldExecutedAt, dailyexecution.FieldCreatedAt, dailyexecution.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyExecution fields.
func (_m *DailyExecution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailyexecution.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dailyexecution.FieldCampaignID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = value.String
			}
		case dailyexecution.FieldDayNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_number", values[i])
			} else if value.Valid {
				_m.DayNumber = int(value.Int64)
			}
		case dailyexecution.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case dailyexecution.FieldPostedToYoutube:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field posted_to_youtube", values[i])
			} else if value.Valid {
				_m.PostedToYoutube = value.Bool
			}
		case dailyexecution.FieldPostedToTwitter:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field posted_to_twitter", values[i])
			} else if value.Valid {
				_m.PostedToTwitter = value.Bool
			}
		case dailyexecution.FieldExecutedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field executed_at", values[i])
			} else if value.Valid {
				_m.ExecutedAt = new(time.Time)
				*_m.ExecutedAt = value.Time
			}
		case dailyexecution.FieldEngagementMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EngagementMetrics); err != nil {
					return fmt.Errorf("unmarshal field engagement_metrics: %w", err)
				}
			}
		case dailyexecution.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dailyexecution.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DailyExecution.
// This includes values selected through modifiers, order, etc.
func (_m *DailyExecution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCampaign queries the "campaign" edge of the DailyExecution entity.
func (_m *DailyExecution) QueryCampaign() *CampaignQuery {
	return NewDailyExecutionClient(_m.config).QueryCampaign(_m)
}

// Update returns a builder for updating this DailyExecution.
// Note that you need to call DailyExecution.Unwrap() before calling this method if this DailyExecution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DailyExecution) Update() *DailyExecutionUpdateOne {
	return NewDailyExecutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DailyExecution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DailyExecution) Unwrap() *DailyExecution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyExecution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DailyExecution) String() string {
	var builder strings.Builder
	builder.WriteString("DailyExecution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("campaign_id=")
	builder.WriteString(_m.CampaignID)
	builder.WriteString(", ")
	builder.WriteString("day_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.DayNumber))
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("posted_to_youtube=")
	builder.WriteString(fmt.Sprintf("%v", _m.PostedToYoutube))
	builder.WriteString(", ")
	builder.WriteString("posted_to_twitter=")
	builder.WriteString(fmt.Sprintf("%v", _m.PostedToTwitter))
	builder.WriteString(", ")
	if v := _m.ExecutedAt; v != nil {
		builder.WriteString("executed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("engagement_metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.EngagementMetrics))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DailyExecutions is a parsable slice of DailyExecution.
type DailyExecutions []*DailyExecution
