// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/adaptiq/ent/lessonevent"
	"github.com/abhisek/adaptiq/ent/predicate"
)

// LessonEventQuery is the builder for querying LessonEvent entities.
type LessonEventQuery struct {
	config
	ctx        *QueryContext
	order      []lessonevent.OrderOption
	inters     []Interceptor
	predicates []predicate.LessonEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LessonEventQuery builder.
func (leq *LessonEventQuery) Where(ps ...predicate.LessonEvent) *LessonEventQuery {
	leq.predicates = append(leq.predicates, ps...)
	return leq
}

// Limit the number of records to be returned by this query.
func (leq *LessonEventQuery) Limit(limit int) *LessonEventQuery {
	leq.ctx.Limit = &limit
	return leq
}

// Offset to start from.
func (leq *LessonEventQuery) Offset(offset int) *LessonEventQuery {
	leq.ctx.Offset = &offset
	return leq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (leq *LessonEventQuery) Unique(unique bool) *LessonEventQuery {
	leq.ctx.Unique = &unique
	return leq
}

// Order specifies how the records should be ordered.
func (leq *LessonEventQuery) Order(o ...lessonevent.OrderOption) *LessonEventQuery {
	leq.order = append(leq.order, o...)
	return leq
}

// First returns the first LessonEvent entity from the query.
// Returns a *NotFoundError when no LessonEvent was found.
func (leq *LessonEventQuery) First(ctx context.Context) (*LessonEvent, error) {
	nodes, err := leq.Limit(1).All(setContextOp(ctx, leq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{lessonevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (leq *LessonEventQuery) FirstX(ctx context.Context) *LessonEvent {
	node, err := leq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LessonEvent ID from the query.
// Returns a *NotFoundError when no LessonEvent ID was found.
func (leq *LessonEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = leq.Limit(1).IDs(setContextOp(ctx, leq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{lessonevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (leq *LessonEventQuery) FirstIDX(ctx context.Context) int {
	id, err := leq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LessonEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LessonEvent entity is found.
// Returns a *NotFoundError when no LessonEvent entities are found.
func (leq *LessonEventQuery) Only(ctx context.Context) (*LessonEvent, error) {
	nodes, err := leq.Limit(2).All(setContextOp(ctx, leq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{lessonevent.Label}
	default:
		return nil, &NotSingularError{lessonevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (leq *LessonEventQuery) OnlyX(ctx context.Context) *LessonEvent {
	node, err := leq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LessonEvent ID in the query.
// Returns a *NotSingularError when more than one LessonEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (leq *LessonEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = leq.Limit(2).IDs(setContextOp(ctx, leq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{lessonevent.Label}
	default:
		err = &NotSingularError{lessonevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (leq *LessonEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := leq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LessonEvents.
func (leq *LessonEventQuery) All(ctx context.Context) ([]*LessonEvent, error) {
	ctx = setContextOp(ctx, leq.ctx, ent.OpQueryAll)
	if err := leq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LessonEvent, *LessonEventQuery]()
	return withInterceptors[[]*LessonEvent](ctx, leq, qr, leq.inters)
}

// AllX is like All, but panics if an error occurs.
func (leq *LessonEventQuery) AllX(ctx context.Context) []*LessonEvent {
	nodes, err := leq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LessonEvent IDs.
func (leq *LessonEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if leq.ctx.Unique == nil && leq.path != nil {
		leq.Unique(true)
	}
	ctx = setContextOp(ctx, leq.ctx, ent.OpQueryIDs)
	if err = leq.Select(lessonevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (leq *LessonEventQuery) IDsX(ctx context.Context) []int {
	ids, err := leq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (leq *LessonEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, leq.ctx, ent.OpQueryCount)
	if err := leq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, leq, querierCount[*LessonEventQuery](), leq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (leq *LessonEventQuery) CountX(ctx context.Context) int {
	count, err := leq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (leq *LessonEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, leq.ctx, ent.OpQueryExist)
	switch _, err := leq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (leq *LessonEventQuery) ExistX(ctx context.Context) bool {
	exist, err := leq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LessonEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (leq *LessonEventQuery) Clone() *LessonEventQuery {
	if leq == nil {
		return nil
	}
	return &LessonEventQuery{
		config:     leq.config,
		ctx:        leq.ctx.Clone(),
		order:      append([]lessonevent.OrderOption{}, leq.order...),
		inters:     append([]Interceptor{}, leq.inters...),
		predicates: append([]predicate.LessonEvent{}, leq.predicates...),
		// clone intermediate query.
		sql:  leq.sql.Clone(),
		path: leq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LessonEvent.Query().
//		GroupBy(lessonevent.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (leq *LessonEventQuery) GroupBy(field string, fields ...string) *LessonEventGroupBy {
	leq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LessonEventGroupBy{build: leq}
	grbuild.flds = &leq.ctx.Fields
	grbuild.label = lessonevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//	}
//
//	client.LessonEvent.Query().
//		Select(lessonevent.FieldSequence).
//		Scan(ctx, &v)
func (leq *LessonEventQuery) Select(fields ...string) *LessonEventSelect {
	leq.ctx.Fields = append(leq.ctx.Fields, fields...)
	sbuild := &LessonEventSelect{LessonEventQuery: leq}
	sbuild.label = lessonevent.Label
	sbuild.flds, sbuild.scan = &leq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LessonEventSelect configured with the given aggregations.
func (leq *LessonEventQuery) Aggregate(fns ...AggregateFunc) *LessonEventSelect {
	return leq.Select().Aggregate(fns...)
}

func (leq *LessonEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range leq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, leq); err != nil {
				return err
			}
		}
	}
	for _, f := range leq.ctx.Fields {
		if !lessonevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if leq.path != nil {
		prev, err := leq.path(ctx)
		if err != nil {
			return err
		}
		leq.sql = prev
	}
	return nil
}

func (leq *LessonEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LessonEvent, error) {
	var (
		nodes = []*LessonEvent{}
		_spec = leq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LessonEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LessonEvent{config: leq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, leq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (leq *LessonEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := leq.querySpec()
	_spec.Node.Columns = leq.ctx.Fields
	if len(leq.ctx.Fields) > 0 {
		_spec.Unique = leq.ctx.Unique != nil && *leq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, leq.driver, _spec)
}

func (leq *LessonEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	_spec.From = leq.sql
	if unique := leq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if leq.path != nil {
		_spec.Unique = true
	}
	if fields := leq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonevent.FieldID)
		for i := range fields {
			if fields[i] != lessonevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := leq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := leq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := leq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := leq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (leq *LessonEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(leq.driver.Dialect())
	t1 := builder.Table(lessonevent.Table)
	columns := leq.ctx.Fields
	if len(columns) == 0 {
		columns = lessonevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if leq.sql != nil {
		selector = leq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if leq.ctx.Unique != nil && *leq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range leq.predicates {
		p(selector)
	}
	for _, p := range leq.order {
		p(selector)
	}
	if offset := leq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := leq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// LessonEventGroupBy is the group-by builder for LessonEvent entities.
type LessonEventGroupBy struct {
	selector
	build *LessonEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (legb *LessonEventGroupBy) Aggregate(fns ...AggregateFunc) *LessonEventGroupBy {
	legb.fns = append(legb.fns, fns...)
	return legb
}

// Scan applies the selector query and scans the result into the given value.
func (legb *LessonEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, legb.build.ctx, ent.OpQueryGroupBy)
	if err := legb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LessonEventQuery, *LessonEventGroupBy](ctx, legb.build, legb, legb.build.inters, v)
}

func (legb *LessonEventGroupBy) sqlScan(ctx context.Context, root *LessonEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(legb.fns))
	for _, fn := range legb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*legb.flds)+len(legb.fns))
		for _, f := range *legb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*legb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := legb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// LessonEventSelect is the builder for selecting fields of LessonEvent entities.
type LessonEventSelect struct {
	*LessonEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (les *LessonEventSelect) Aggregate(fns ...AggregateFunc) *LessonEventSelect {
	les.fns = append(les.fns, fns...)
	return les
}

// Scan applies the selector query and scans the result into the given value.
func (les *LessonEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, les.ctx, ent.OpQuerySelect)
	if err := les.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LessonEventQuery, *LessonEventSelect](ctx, les.LessonEventQuery, les, les.inters, v)
}

func (les *LessonEventSelect) sqlScan(ctx context.Context, root *LessonEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(les.fns))
	for _, fn := range les.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*les.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := les.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
