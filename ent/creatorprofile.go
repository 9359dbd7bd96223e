// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/creatorloop/looper/ent/creatorprofile"
	"github.com/creatorloop/looper/ent/user"
)

// CreatorProfile is the model entity for the CreatorProfile schema.
type CreatorProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// CreatorType holds the value of the "creator_type" field.
	CreatorType string `json:"creator_type,omitempty"`
	// Niche holds the value of the "niche" field.
	Niche string `json:"niche,omitempty"`
	// TargetAudienceNiche holds the value of the "target_audience_niche" field.
	TargetAudienceNiche string `json:"target_audience_niche,omitempty"`
	// ExistingPlatforms holds the value of the "existing_platforms" field.
	ExistingPlatforms []string `json:"existing_platforms,omitempty"`
	// PlatformUrls holds the value of the "platform_urls" field.
	PlatformUrls map[string]string `json:"platform_urls,omitempty"`
	// UniqueAngle holds the value of the "unique_angle" field.
	UniqueAngle *string `json:"unique_angle,omitempty"`
	// Purpose holds the value of the "purpose" field.
	Purpose *string `json:"purpose,omitempty"`
	// Strengths holds the value of the "strengths" field.
	Strengths []string `json:"strengths,omitempty"`
	// TargetPlatforms holds the value of the "target_platforms" field.
	TargetPlatforms []string `json:"target_platforms,omitempty"`
	// Topics holds the value of the "topics" field.
	Topics []string `json:"topics,omitempty"`
	// AudienceDemographics holds the value of the "audience_demographics" field.
	AudienceDemographics map[string]interface{} `json:"audience_demographics,omitempty"`
	// platform -> competitor URLs
	CompetitorAccounts map[string][]string `json:"competitor_accounts,omitempty"`
	// ExistingAssets holds the value of the "existing_assets" field.
	ExistingAssets []string `json:"existing_assets,omitempty"`
	// Motivation holds the value of the "motivation" field.
	Motivation *string `json:"motivation,omitempty"`
	// Phase2Completed holds the value of the "phase2_completed" field.
	Phase2Completed bool `json:"phase2_completed,omitempty"`
	// AgentContext holds the value of the "agent_context" field.
	AgentContext map[string]interface{} `json:"agent_context,omitempty"`
	// RecommendedFrequency holds the value of the "recommended_frequency" field.
	RecommendedFrequency *string `json:"recommended_frequency,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CreatorProfileQuery when eager-loading is set.
	Edges        CreatorProfileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CreatorProfileEdges holds the relations/edges for other nodes in the graph.
type CreatorProfileEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CreatorProfileEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CreatorProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case creatorprofile.FieldExistingPlatforms, creatorprofile.FieldPlatformUrls, creatorprofile.FieldStrengths, creatorprofile.FieldTargetPlatforms, creatorprofile.FieldTopics, creatorprofile.FieldAudienceDemographics, creatorprofile.FieldCompetitorAccounts, creatorprofile.FieldExistingAssets, creatorprofile.FieldAgentContext:
			values[i] = new([]byte)
		case creatorprofile.FieldPhase2Completed:
			values[i] = new(sql.NullBool)
		case creatorprofile.FieldID, creatorprofile.FieldUserID, creatorprofile.FieldName, creatorprofile.FieldCreatorType, creatorprofile.FieldNiche, creatorprofile.FieldTargetAudienceNiche, creatorprofile.FieldUniqueAngle, creatorprofile.FieldPurpose, creatorprofile.FieldMotivation, creatorprofile.FieldRecommendedFrequency:
			values[i] = new(sql.NullString)
		case creatorprofile.FieldCreatedAt, creatorprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CreatorProfile fields.
func (_m *CreatorProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case creatorprofile.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case creatorprofile.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case creatorprofile.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case creatorprofile.FieldCreatorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field creator_type", values[i])
			} else if value.Valid {
				_m.CreatorType = value.String
			}
		case creatorprofile.FieldNiche:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field niche", values[i])
			} else if value.Valid {
				_m.Niche = value.String
			}
		case creatorprofile.FieldTargetAudienceNiche:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_audience_niche", values[i])
			} else if value.Valid {
				_m.TargetAudienceNiche = value.String
			}
		case creatorprofile.FieldExistingPlatforms:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field existing_platforms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExistingPlatforms); err != nil {
					return fmt.Errorf("unmarshal field existing_platforms: %w", err)
				}
			}
		case creatorprofile.FieldPlatformUrls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field platform_urls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlatformUrls); err != nil {
					return fmt.Errorf("unmarshal field platform_urls: %w", err)
				}
			}
		case creatorprofile.FieldUniqueAngle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unique_angle", values[i])
			} else if value.Valid {
				_m.UniqueAngle = new(string)
				*_m.UniqueAngle = value.String
			}
		case creatorprofile.FieldPurpose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field purpose", values[i])
			} else if value.Valid {
				_m.Purpose = new(string)
				*_m.Purpose = value.String
			}
		case creatorprofile.FieldStrengths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field strengths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Strengths); err != nil {
					return fmt.Errorf("unmarshal field strengths: %w", err)
				}
			}
		case creatorprofile.FieldTargetPlatforms:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field target_platforms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TargetPlatforms); err != nil {
					return fmt.Errorf("unmarshal field target_platforms: %w", err)
				}
			}
		case creatorprofile.FieldTopics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Topics); err != nil {
					return fmt.Errorf("unmarshal field topics: %w", err)
				}
			}
		case creatorprofile.FieldAudienceDemographics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field audience_demographics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AudienceDemographics); err != nil {
					return fmt.Errorf("unmarshal field audience_demographics: %w", err)
				}
			}
		case creatorprofile.FieldCompetitorAccounts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field competitor_accounts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompetitorAccounts); err != nil {
					return fmt.Errorf("unmarshal field competitor_accounts: %w", err)
				}
			}
		case creatorprofile.FieldExistingAssets:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field existing_assets", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExistingAssets); err != nil {
					return fmt.Errorf("unmarshal field existing_assets: %w", err)
				}
			}
		case creatorprofile.FieldMotivation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field motivation", values[i])
			} else if value.Valid {
				_m.Motivation = new(string)
				*_m.Motivation = value.String
			}
		case creatorprofile.FieldPhase2Completed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field phase2_completed", values[i])
			} else if value.Valid {
				_m.Phase2Completed = value.Bool
			}
		case creatorprofile.FieldAgentContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agent_context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AgentContext); err != nil {
					return fmt.Errorf("unmarshal field agent_context: %w", err)
				}
			}
		case creatorprofile.FieldRecommendedFrequency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_frequency", values[i])
			} else if value.Valid {
				_m.RecommendedFrequency = new(string)
				*_m.RecommendedFrequency = value.String
			}
		case creatorprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case creatorprofile.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CreatorProfile.
// This includes values selected through modifiers, order, etc.
func (_m *CreatorProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the CreatorProfile entity.
func (_m *CreatorProfile) QueryUser() *UserQuery {
	return NewCreatorProfileClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this CreatorProfile.
// Note that you need to call CreatorProfile.Unwrap() before calling this method if this CreatorProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CreatorProfile) Update() *CreatorProfileUpdateOne {
	return NewCreatorProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CreatorProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CreatorProfile) Unwrap() *CreatorProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CreatorProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CreatorProfile) String() string {
	var builder strings.Builder
	builder.WriteString("CreatorProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("creator_type=")
	builder.WriteString(_m.CreatorType)
	builder.WriteString(", ")
	builder.WriteString("niche=")
	builder.WriteString(_m.Niche)
	builder.WriteString(", ")
	builder.WriteString("target_audience_niche=")
	builder.WriteString(_m.TargetAudienceNiche)
	builder.WriteString(", ")
	builder.WriteString("existing_platforms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExistingPlatforms))
	builder.WriteString(", ")
	builder.WriteString("platform_urls=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlatformUrls))
	builder.WriteString(", ")
	if v := _m.UniqueAngle; v != nil {
		builder.WriteString("unique_angle=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Purpose; v != nil {
		builder.WriteString("purpose=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("strengths=")
	builder.WriteString(fmt.Sprintf("%v", _m.Strengths))
	builder.WriteString(", ")
	builder.WriteString("target_platforms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetPlatforms))
	builder.WriteString(", ")
	builder.WriteString("topics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Topics))
	builder.WriteString(", ")
	builder.WriteString("audience_demographics=")
	builder.WriteString(fmt.Sprintf("%v", _m.AudienceDemographics))
	builder.WriteString(", ")
	builder.WriteString("competitor_accounts=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompetitorAccounts))
	builder.WriteString(", ")
	builder.WriteString("existing_assets=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExistingAssets))
	builder.WriteString(", ")
	if v := _m.Motivation; v != nil {
		builder.WriteString("motivation=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("phase2_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phase2Completed))
	builder.WriteString(", ")
	builder.WriteString("agent_context=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentContext))
	builder.WriteString(", ")
	if v := _m.RecommendedFrequency; v != nil {
		builder.WriteString("recommended_frequency=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CreatorProfiles is a parsable slice of CreatorProfile.
type CreatorProfiles []*CreatorProfile
