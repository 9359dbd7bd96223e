// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/ent/dailycontent"
)

// DailyContentCreate is the builder for creating a DailyContent entity.
type DailyContentCreate struct {
	config
	mutation *DailyContentMutation
	hooks    []Hook
}

// SetCampaignID sets the "campaign_id" field.
func (_c *DailyContentCreate) SetCampaignID(v string) *DailyContentCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetDayNumber sets the "day_number" field.
func (_c *DailyContentCreate) SetDayNumber(v int) *DailyContentCreate {
	_c.mutation.SetDayNumber(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *DailyContentCreate) SetPlatform(v string) *DailyContentCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetScript sets the "script" field.
func (_c *DailyContentCreate) SetScript(v string) *DailyContentCreate {
	_c.mutation.SetScript(v)
	return _c
}

// SetNillableScript sets the "script" field if the given value is not nil.
func (_c *DailyContentCreate) SetNillableScript(v *string) *DailyContentCreate {
	if v != nil {
		_c.SetScript(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *DailyContentCreate) SetTitle(v string) *DailyContentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *DailyContentCreate) SetNillableTitle(v *string) *DailyContentCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetSeoTags sets the "seo_tags" field.
func (_c *DailyContentCreate) SetSeoTags(v []string) *DailyContentCreate {
	_c.mutation.SetSeoTags(v)
	return _c
}

// SetCta sets the "cta" field.
func (_c *DailyContentCreate) SetCta(v string) *DailyContentCreate {
	_c.mutation.SetCta(v)
	return _c
}

// SetNillableCta sets the "cta" field if the given value is not nil.
func (_c *DailyContentCreate) SetNillableCta(v *string) *DailyContentCreate {
	if v != nil {
		_c.SetCta(*v)
	}
	return _c
}

// SetTweet sets the "tweet" field.
func (_c *DailyContentCreate) SetTweet(v string) *DailyContentCreate {
	_c.mutation.SetTweet(v)
	return _c
}

// SetNillableTweet sets the "tweet" field if the given value is not nil.
func (_c *DailyContentCreate) SetNillableTweet(v *string) *DailyContentCreate {
	if v != nil {
		_c.SetTweet(*v)
	}
	return _c
}

// SetThread sets the "thread" field.
func (_c *DailyContentCreate) SetThread(v []string) *DailyContentCreate {
	_c.mutation.SetThread(v)
	return _c
}

// SetThumbnailUrls sets the "thumbnail_urls" field.
func (_c *DailyContentCreate) SetThumbnailUrls(v map[string]string) *DailyContentCreate {
	_c.mutation.SetThumbnailUrls(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *DailyContentCreate) SetReasoning(v string) *DailyContentCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *DailyContentCreate) SetNillableReasoning(v *string) *DailyContentCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DailyContentCreate) SetCreatedAt(v time.Time) *DailyContentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DailyContentCreate) SetNillableCreatedAt(v *time.Time) *DailyContentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DailyContentCreate) SetUpdatedAt(v time.Time) *DailyContentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DailyContentCreate) SetNillableUpdatedAt(v *time.Time) *DailyContentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DailyContentCreate) SetID(v string) *DailyContentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *DailyContentCreate) SetCampaign(v *Campaign) *DailyContentCreate {
	return _c.SetCampaignID(v.ID)
}

// Mutation returns the DailyContentMutation object of the builder.
func (_c *DailyContentCreate) Mutation() *DailyContentMutation {
	return _c.mutation
}

// Save creates the DailyContent in the database.
func (_c *DailyContentCreate) Save(ctx context.Context) (*DailyContent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DailyContentCreate) SaveX(ctx context.Context) *DailyContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyContentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyContentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DailyContentCreate) defaults() {
	if _, ok := _c.mutation.SeoTags(); !ok {
		v := dailycontent.DefaultSeoTags
		_c.mutation.SetSeoTags(v)
	}
	if _, ok := _c.mutation.Thread(); !ok {
		v := dailycontent.DefaultThread
		_c.mutation.SetThread(v)
	}
	if _, ok := _c.mutation.ThumbnailUrls(); !ok {
		v := dailycontent.DefaultThumbnailUrls
		_c.mutation.SetThumbnailUrls(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dailycontent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dailycontent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DailyContentCreate) check() error {
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "DailyContent.campaign_id"`)}
	}
	if _, ok := _c.mutation.DayNumber(); !ok {
		return &ValidationError{Name: "day_number", err: errors.New(`ent: missing required field "DailyContent.day_number"`)}
	}
	if v, ok := _c.mutation.DayNumber(); ok {
		if err := dailycontent.DayNumberValidator(v); err != nil {
			return &ValidationError{Name: "day_number", err: fmt.Errorf(`ent: validator failed for field "DailyContent.day_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "DailyContent.platform"`)}
	}
	if _, ok := _c.mutation.SeoTags(); !ok {
		return &ValidationError{Name: "seo_tags", err: errors.New(`ent: missing required field "DailyContent.seo_tags"`)}
	}
	if _, ok := _c.mutation.Thread(); !ok {
		return &ValidationError{Name: "thread", err: errors.New(`ent: missing required field "DailyContent.thread"`)}
	}
	if _, ok := _c.mutation.ThumbnailUrls(); !ok {
		return &ValidationError{Name: "thumbnail_urls", err: errors.New(`ent: missing required field "DailyContent.thumbnail_urls"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DailyContent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DailyContent.updated_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "DailyContent.campaign"`)}
	}
	return nil
}

func (_c *DailyContentCreate) sqlSave(ctx context.Context) (*DailyContent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DailyContent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DailyContentCreate) createSpec() (*DailyContent, *sqlgraph.CreateSpec) {
	var (
		_node = &DailyContent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dailycontent.Table, sqlgraph.NewFieldSpec(dailycontent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DayNumber(); ok {
		_spec.SetField(dailycontent.FieldDayNumber, field.TypeInt, value)
		_node.DayNumber = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(dailycontent.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.Script(); ok {
		_spec.SetField(dailycontent.FieldScript, field.TypeString, value)
		_node.Script = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(dailycontent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.SeoTags(); ok {
		_spec.SetField(dailycontent.FieldSeoTags, field.TypeJSON, value)
		_node.SeoTags = value
	}
	if value, ok := _c.mutation.Cta(); ok {
		_spec.SetField(dailycontent.FieldCta, field.TypeString, value)
		_node.Cta = value
	}
	if value, ok := _c.mutation.Tweet(); ok {
		_spec.SetField(dailycontent.FieldTweet, field.TypeString, value)
		_node.Tweet = value
	}
	if value, ok := _c.mutation.Thread(); ok {
		_spec.SetField(dailycontent.FieldThread, field.TypeJSON, value)
		_node.Thread = value
	}
	if value, ok := _c.mutation.ThumbnailUrls(); ok {
		_spec.SetField(dailycontent.FieldThumbnailUrls, field.TypeJSON, value)
		_node.ThumbnailUrls = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(dailycontent.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dailycontent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dailycontent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dailycontent.CampaignTable,
			Columns: []string{dailycontent.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CampaignID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DailyContentCreateBulk is the builder for creating many DailyContent entities in bulk.
type DailyContentCreateBulk struct {
	config
	err      error
	builders []*DailyContentCreate
}

// Save creates the DailyContent entities in the database.
func (_c *DailyContentCreateBulk) Save(ctx context.Context) ([]*DailyContent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DailyContent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DailyContentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DailyContentCreateBulk) SaveX(ctx context.Context) []*DailyContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyContentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyContentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
