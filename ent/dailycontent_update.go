// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/creatorloop/looper/ent/dailycontent"
	"github.com/creatorloop/looper/ent/predicate"
)

// DailyContentUpdate is the builder for updating DailyContent entities.
type DailyContentUpdate struct {
	config
	hooks    []Hook
	mutation *DailyContentMutation
}

// Where appends a list predicates to the DailyContentUpdate builder.
func (_u *DailyContentUpdate) Where(ps ...predicate.DailyContent) *DailyContentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDayNumber sets the "day_number" field.
func (_u *DailyContentUpdate) SetDayNumber(v int) *DailyContentUpdate {
	_u.mutation.ResetDayNumber()
	_u.mutation.SetDayNumber(v)
	return _u
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_u *DailyContentUpdate) SetNillableDayNumber(v *int) *DailyContentUpdate {
	if v != nil {
		_u.SetDayNumber(*v)
	}
	return _u
}

// AddDayNumber adds value to the "day_number" field.
func (_u *DailyContentUpdate) AddDayNumber(v int) *DailyContentUpdate {
	_u.mutation.AddDayNumber(v)
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *DailyContentUpdate) SetPlatform(v string) *DailyContentUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *DailyContentUpdate) SetNillablePlatform(v *string) *DailyContentUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetScript sets the "script" field.
func (_u *DailyContentUpdate) SetScript(v string) *DailyContentUpdate {
	_u.mutation.SetScript(v)
	return _u
}

// SetNillableScript sets the "script" field if the given value is not nil.
func (_u *DailyContentUpdate) SetNillableScript(v *string) *DailyContentUpdate {
	if v != nil {
		_u.SetScript(*v)
	}
	return _u
}

// ClearScript clears the value of the "script" field.
func (_u *DailyContentUpdate) ClearScript() *DailyContentUpdate {
	_u.mutation.ClearScript()
	return _u
}

// SetTitle sets the "title" field.
func (_u *DailyContentUpdate) SetTitle(v string) *DailyContentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DailyContentUpdate) SetNillableTitle(v *string) *DailyContentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DailyContentUpdate) ClearTitle() *DailyContentUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetSeoTags sets the "seo_tags" field.
func (_u *DailyContentUpdate) SetSeoTags(v []string) *DailyContentUpdate {
	_u.mutation.SetSeoTags(v)
	return _u
}

// AppendSeoTags appends value to the "seo_tags" field.
func (_u *DailyContentUpdate) AppendSeoTags(v []string) *DailyContentUpdate {
	_u.mutation.AppendSeoTags(v)
	return _u
}

// SetCta sets the "cta" field.
func (_u *DailyContentUpdate) SetCta(v string) *DailyContentUpdate {
	_u.mutation.SetCta(v)
	return _u
}

// SetNillableCta sets the "cta" field if the given value is not nil.
func (_u *DailyContentUpdate) SetNillableCta(v *string) *DailyContentUpdate {
	if v != nil {
		_u.SetCta(*v)
	}
	return _u
}

// ClearCta clears the value of the "cta" field.
func (_u *DailyContentUpdate) ClearCta() *DailyContentUpdate {
	_u.mutation.ClearCta()
	return _u
}

// SetTweet sets the "tweet" field.
func (_u *DailyContentUpdate) SetTweet(v string) *DailyContentUpdate {
	_u.mutation.SetTweet(v)
	return _u
}

// SetNillableTweet sets the "tweet" field if the given value is not nil.
func (_u *DailyContentUpdate) SetNillableTweet(v *string) *DailyContentUpdate {
	if v != nil {
		_u.SetTweet(*v)
	}
	return _u
}

// ClearTweet clears the value of the "tweet" field.
func (_u *DailyContentUpdate) ClearTweet() *DailyContentUpdate {
	_u.mutation.ClearTweet()
	return _u
}

// SetThread sets the "thread" field.
func (_u *DailyContentUpdate) SetThread(v []string) *DailyContentUpdate {
	_u.mutation.SetThread(v)
	return _u
}

// AppendThread appends value to the "thread" field.
func (_u *DailyContentUpdate) AppendThread(v []string) *DailyContentUpdate {
	_u.mutation.AppendThread(v)
	return _u
}

// SetThumbnailUrls sets the "thumbnail_urls" field.
func (_u *DailyContentUpdate) SetThumbnailUrls(v map[string]string) *DailyContentUpdate {
	_u.mutation.SetThumbnailUrls(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *DailyContentUpdate) SetReasoning(v string) *DailyContentUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *DailyContentUpdate) SetNillableReasoning(v *string) *DailyContentUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *DailyContentUpdate) ClearReasoning() *DailyContentUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DailyContentUpdate) SetUpdatedAt(v time.Time) *DailyContentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DailyContentMutation object of the builder.
func (_u *DailyContentUpdate) Mutation() *DailyContentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DailyContentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyContentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DailyContentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyContentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DailyContentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dailycontent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyContentUpdate) check() error {
	if v, ok := _u.mutation.DayNumber(); ok {
		if err := dailycontent.DayNumberValidator(v); err != nil {
			return &ValidationError{Name: "day_number", err: fmt.Errorf(`ent: validator failed for field "DailyContent.day_number": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DailyContent.campaign"`)
	}
	return nil
}

func (_u *DailyContentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailycontent.Table, dailycontent.Columns, sqlgraph.NewFieldSpec(dailycontent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DayNumber(); ok {
		_spec.SetField(dailycontent.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayNumber(); ok {
		_spec.AddField(dailycontent.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(dailycontent.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.Script(); ok {
		_spec.SetField(dailycontent.FieldScript, field.TypeString, value)
	}
	if _u.mutation.ScriptCleared() {
		_spec.ClearField(dailycontent.FieldScript, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(dailycontent.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(dailycontent.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.SeoTags(); ok {
		_spec.SetField(dailycontent.FieldSeoTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSeoTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dailycontent.FieldSeoTags, value)
		})
	}
	if value, ok := _u.mutation.Cta(); ok {
		_spec.SetField(dailycontent.FieldCta, field.TypeString, value)
	}
	if _u.mutation.CtaCleared() {
		_spec.ClearField(dailycontent.FieldCta, field.TypeString)
	}
	if value, ok := _u.mutation.Tweet(); ok {
		_spec.SetField(dailycontent.FieldTweet, field.TypeString, value)
	}
	if _u.mutation.TweetCleared() {
		_spec.ClearField(dailycontent.FieldTweet, field.TypeString)
	}
	if value, ok := _u.mutation.Thread(); ok {
		_spec.SetField(dailycontent.FieldThread, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedThread(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dailycontent.FieldThread, value)
		})
	}
	if value, ok := _u.mutation.ThumbnailUrls(); ok {
		_spec.SetField(dailycontent.FieldThumbnailUrls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(dailycontent.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(dailycontent.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dailycontent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailycontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DailyContentUpdateOne is the builder for updating a single DailyContent entity.
type DailyContentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyContentMutation
}

// SetDayNumber sets the "day_number" field.
func (_u *DailyContentUpdateOne) SetDayNumber(v int) *DailyContentUpdateOne {
	_u.mutation.ResetDayNumber()
	_u.mutation.SetDayNumber(v)
	return _u
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_u *DailyContentUpdateOne) SetNillableDayNumber(v *int) *DailyContentUpdateOne {
	if v != nil {
		_u.SetDayNumber(*v)
	}
	return _u
}

// AddDayNumber adds value to the "day_number" field.
func (_u *DailyContentUpdateOne) AddDayNumber(v int) *DailyContentUpdateOne {
	_u.mutation.AddDayNumber(v)
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *DailyContentUpdateOne) SetPlatform(v string) *DailyContentUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *DailyContentUpdateOne) SetNillablePlatform(v *string) *DailyContentUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetScript sets the "script" field.
func (_u *DailyContentUpdateOne) SetScript(v string) *DailyContentUpdateOne {
	_u.mutation.SetScript(v)
	return _u
}

// SetNillableScript sets the "script" field if the given value is not nil.
func (_u *DailyContentUpdateOne) SetNillableScript(v *string) *DailyContentUpdateOne {
	if v != nil {
		_u.SetScript(*v)
	}
	return _u
}

// ClearScript clears the value of the "script" field.
func (_u *DailyContentUpdateOne) ClearScript() *DailyContentUpdateOne {
	_u.mutation.ClearScript()
	return _u
}

// SetTitle sets the "title" field.
func (_u *DailyContentUpdateOne) SetTitle(v string) *DailyContentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DailyContentUpdateOne) SetNillableTitle(v *string) *DailyContentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DailyContentUpdateOne) ClearTitle() *DailyContentUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetSeoTags sets the "seo_tags" field.
func (_u *DailyContentUpdateOne) SetSeoTags(v []string) *DailyContentUpdateOne {
	_u.mutation.SetSeoTags(v)
	return _u
}

// AppendSeoTags appends value to the "seo_tags" field.
func (_u *DailyContentUpdateOne) AppendSeoTags(v []string) *DailyContentUpdateOne {
	_u.mutation.AppendSeoTags(v)
	return _u
}

// SetCta sets the "cta" field.
func (_u *DailyContentUpdateOne) SetCta(v string) *DailyContentUpdateOne {
	_u.mutation.SetCta(v)
	return _u
}

// SetNillableCta sets the "cta" field if the given value is not nil.
func (_u *DailyContentUpdateOne) SetNillableCta(v *string) *DailyContentUpdateOne {
	if v != nil {
		_u.SetCta(*v)
	}
	return _u
}

// ClearCta clears the value of the "cta" field.
func (_u *DailyContentUpdateOne) ClearCta() *DailyContentUpdateOne {
	_u.mutation.ClearCta()
	return _u
}

// SetTweet sets the "tweet" field.
func (_u *DailyContentUpdateOne) SetTweet(v string) *DailyContentUpdateOne {
	_u.mutation.SetTweet(v)
	return _u
}

// SetNillableTweet sets the "tweet" field if the given value is not nil.
func (_u *DailyContentUpdateOne) SetNillableTweet(v *string) *DailyContentUpdateOne {
	if v != nil {
		_u.SetTweet(*v)
	}
	return _u
}

// ClearTweet clears the value of the "tweet" field.
func (_u *DailyContentUpdateOne) ClearTweet() *DailyContentUpdateOne {
	_u.mutation.ClearTweet()
	return _u
}

// SetThread sets the "thread" field.
func (_u *DailyContentUpdateOne) SetThread(v []string) *DailyContentUpdateOne {
	_u.mutation.SetThread(v)
	return _u
}

// AppendThread appends value to the "thread" field.
func (_u *DailyContentUpdateOne) AppendThread(v []string) *DailyContentUpdateOne {
	_u.mutation.AppendThread(v)
	return _u
}

// SetThumbnailUrls sets the "thumbnail_urls" field.
func (_u *DailyContentUpdateOne) SetThumbnailUrls(v map[string]string) *DailyContentUpdateOne {
	_u.mutation.SetThumbnailUrls(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *DailyContentUpdateOne) SetReasoning(v string) *DailyContentUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *DailyContentUpdateOne) SetNillableReasoning(v *string) *DailyContentUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *DailyContentUpdateOne) ClearReasoning() *DailyContentUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DailyContentUpdateOne) SetUpdatedAt(v time.Time) *DailyContentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DailyContentMutation object of the builder.
func (_u *DailyContentUpdateOne) Mutation() *DailyContentMutation {
	return _u.mutation
}

// Where appends a list predicates to the DailyContentUpdate builder.
func (_u *DailyContentUpdateOne) Where(ps ...predicate.DailyContent) *DailyContentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DailyContentUpdateOne) Select(field string, fields ...string) *DailyContentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DailyContent entity.
func (_u *DailyContentUpdateOne) Save(ctx context.Context) (*DailyContent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyContentUpdateOne) SaveX(ctx context.Context) *DailyContent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DailyContentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyContentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DailyContentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dailycontent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyContentUpdateOne) check() error {
	if v, ok := _u.mutation.DayNumber(); ok {
		if err := dailycontent.DayNumberValidator(v); err != nil {
			return &ValidationError{Name: "day_number", err: fmt.Errorf(`ent: validator failed for field "DailyContent.day_number": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DailyContent.campaign"`)
	}
	return nil
}

func (_u *DailyContentUpdateOne) sqlSave(ctx context.Context) (_node *DailyContent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailycontent.Table, dailycontent.Columns, sqlgraph.NewFieldSpec(dailycontent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyContent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailycontent.FieldID)
		for _, f := range fields {
			if !dailycontent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailycontent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DayNumber(); ok {
		_spec.SetField(dailycontent.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayNumber(); ok {
		_spec.AddField(dailycontent.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(dailycontent.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.Script(); ok {
		_spec.SetField(dailycontent.FieldScript, field.TypeString, value)
	}
	if _u.mutation.ScriptCleared() {
		_spec.ClearField(dailycontent.FieldScript, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(dailycontent.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(dailycontent.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.SeoTags(); ok {
		_spec.SetField(dailycontent.FieldSeoTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSeoTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dailycontent.FieldSeoTags, value)
		})
	}
	if value, ok := _u.mutation.Cta(); ok {
		_spec.SetField(dailycontent.FieldCta, field.TypeString, value)
	}
	if _u.mutation.CtaCleared() {
		_spec.ClearField(dailycontent.FieldCta, field.TypeString)
	}
	if value, ok := _u.mutation.Tweet(); ok {
		_spec.SetField(dailycontent.FieldTweet, field.TypeString, value)
	}
	if _u.mutation.TweetCleared() {
		_spec.ClearField(dailycontent.FieldTweet, field.TypeString)
	}
	if value, ok := _u.mutation.Thread(); ok {
		_spec.SetField(dailycontent.FieldThread, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedThread(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, dailycontent.FieldThread, value)
		})
	}
	if value, ok := _u.mutation.ThumbnailUrls(); ok {
		_spec.SetField(dailycontent.FieldThumbnailUrls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(dailycontent.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(dailycontent.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dailycontent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DailyContent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailycontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
