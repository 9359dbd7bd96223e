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
	"github.com/creatorloop/looper/ent/dailycontent"
)

// DailyContent is the model entity for the DailyContent schema.
type DailyContent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CampaignID holds the value of the "campaign_id" field.
	CampaignID string `json:"campaign_id,omitempty"`
	// DayNumber holds the value of the "day_number" field.
	DayNumber int `json:"day_number,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// Script holds the value of the "script" field.
	Script string `json:"script,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// SeoTags holds the value of the "seo_tags" field.
	SeoTags []string `json:"seo_tags,omitempty"`
	// Cta holds the value of the "cta" field.
	Cta string `json:"cta,omitempty"`
	// Tweet holds the value of the "tweet" field.
	Tweet string `json:"tweet,omitempty"`
	// Thread holds the value of the "thread" field.
	Thread []string `json:"thread,omitempty"`
	// ThumbnailUrls holds the value of the "thumbnail_urls" field.
	ThumbnailUrls map[string]string `json:"thumbnail_urls,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning string `json:"reasoning,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DailyContentQuery when eager-loading is set.
	Edges        DailyContentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DailyContentEdges holds the relations/edges for other nodes in the graph.
type DailyContentEdges struct {
	// Campaign holds the value of the campaign edge.
	Campaign *Campaign `json:"campaign,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CampaignOrErr returns the Campaign value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DailyContentEdges) CampaignOrErr() (*Campaign, error) {
	if e.Campaign != nil {
		return e.Campaign, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: campaign.Label}
	}
	return nil, &NotLoadedError{edge: "campaign"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyContent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailycontent.FieldSeoTags, dailycontent.FieldThread, dailycontent.FieldThumbnailUrls:
			values[i] = new([]byte)
		case dailycontent.FieldDayNumber:
			values[i] = new(sql.NullInt64)
		case dailycontent.FieldID, dailycontent.FieldCampaignID, dailycontent.FieldPlatform, dailycontent.FieldScript, dailycontent.FieldTitle, dailycontent.FieldCta, dailycontent.FieldTweet, dailycontent.FieldReasoning:
			values[i] = new(sql.NullString)
		case dailycontent.FieldCreatedAt, dailycontent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyContent fields.
func (_m *DailyContent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailycontent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dailycontent.FieldCampaignID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = value.String
			}
		case dailycontent.FieldDayNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field day_number", values[i])
			} else if value.Valid {
				_m.DayNumber = int(value.Int64)
			}
		case dailycontent.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case dailycontent.FieldScript:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field script", values[i])
			} else if value.Valid {
				_m.Script = value.String
			}
		case dailycontent.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case dailycontent.FieldSeoTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field seo_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SeoTags); err != nil {
					return fmt.Errorf("unmarshal field seo_tags: %w", err)
				}
			}
		case dailycontent.FieldCta:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cta", values[i])
			} else if value.Valid {
				_m.Cta = value.String
			}
		case dailycontent.FieldTweet:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tweet", values[i])
			} else if value.Valid {
				_m.Tweet = value.String
			}
		case dailycontent.FieldThread:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field thread", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Thread); err != nil {
					return fmt.Errorf("unmarshal field thread: %w", err)
				}
			}
		case dailycontent.FieldThumbnailUrls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field thumbnail_urls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ThumbnailUrls); err != nil {
					return fmt.Errorf("unmarshal field thumbnail_urls: %w", err)
				}
			}
		case dailycontent.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case dailycontent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case dailycontent.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the DailyContent.
// This includes values selected through modifiers, order, etc.
func (_m *DailyContent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCampaign queries the "campaign" edge of the DailyContent entity.
func (_m *DailyContent) QueryCampaign() *CampaignQuery {
	return NewDailyContentClient(_m.config).QueryCampaign(_m)
}

// Update returns a builder for updating this DailyContent.
// Note that you need to call DailyContent.Unwrap() before calling this method if this DailyContent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DailyContent) Update() *DailyContentUpdateOne {
	return NewDailyContentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DailyContent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DailyContent) Unwrap() *DailyContent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyContent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DailyContent) String() string {
	var builder strings.Builder
	builder.WriteString("DailyContent(")
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
	builder.WriteString("script=")
	builder.WriteString(_m.Script)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("seo_tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.SeoTags))
	builder.WriteString(", ")
	builder.WriteString("cta=")
	builder.WriteString(_m.Cta)
	builder.WriteString(", ")
	builder.WriteString("tweet=")
	builder.WriteString(_m.Tweet)
	builder.WriteString(", ")
	builder.WriteString("thread=")
	builder.WriteString(fmt.Sprintf("%v", _m.Thread))
	builder.WriteString(", ")
	builder.WriteString("thumbnail_urls=")
	builder.WriteString(fmt.Sprintf("%v", _m.ThumbnailUrls))
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DailyContents is a parsable slice of DailyContent.
type DailyContents []*DailyContent
