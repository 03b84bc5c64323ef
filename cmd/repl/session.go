package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bawdo/fluentsql/builders"
	"github.com/bawdo/fluentsql/models"
	"github.com/bawdo/fluentsql/renderers"
	"github.com/bawdo/fluentsql/strategies"
)

var errNoStatement = errors.New("no statement started (use 'from', 'insert into', 'update', or 'delete from' first)")

// stmtMode tracks which kind of statement the REPL is currently building.
type stmtMode int

const (
	modeNone stmtMode = iota
	modeSelect
	modeInsert
	modeUpdate
	modeDelete
)

// replTable is a registered table plus its declared columns, used for
// column resolution and tab completion.
type replTable struct {
	table   *models.Table
	columns []string
	types   map[string]models.JDBCType
}

func (t *replTable) col(name string) *models.Column {
	if jt, ok := t.types[name]; ok {
		return t.table.TypedCol(name, jt)
	}
	return t.table.Col(name)
}

// joinState is one pending join clause of the select under construction.
type joinState struct {
	table *replTable
	alias string
	kind  models.JoinType
	on    []models.JoinCriterion
}

// selectState accumulates select clauses until render time.
type selectState struct {
	columns   []models.SelectItem
	distinct  bool
	from      *replTable
	fromAlias string
	joins     []joinState
	wheres    []models.Condition
	groupBy   []*models.Column
	havings   []models.Condition
	orderBy   []models.SortSpec
	limit     *int64
	offset    *int64
}

// commandEntry maps a REPL prefix to its handler and optional tab-completer.
type commandEntry struct {
	prefix    string
	handler   func(args string) error
	completer func(args string) (completionContext, string) // nil = no arg completion
	hidden    bool                                          // excluded from commandNames()
}

// Session holds the REPL state: registered tables, the statement under
// construction, and the active rendering strategy.
type Session struct {
	out          io.Writer
	tables       map[string]*replTable
	tableOrder   []string
	strategy     strategies.RenderingStrategy
	strategyName string
	commands     []commandEntry

	mode     stmtMode
	sel      *selectState
	ins      *builders.InsertBuilder
	upd      *builders.UpdateBuilder
	del      *builders.DeleteBuilder
	dmlTable *replTable
}

// NewSession creates a session rendering with the MyBatis3 strategy.
func NewSession(out io.Writer) *Session {
	s := &Session{
		out:          out,
		tables:       make(map[string]*replTable),
		strategy:     strategies.MyBatis3(),
		strategyName: "mybatis3",
	}
	s.initCommands()
	return s
}

// initCommands builds the command registry and sorts by prefix length descending.
func (s *Session) initCommands() {
	s.commands = []commandEntry{
		// --- display / session commands ---
		{prefix: "sql", handler: func(_ string) error { return s.cmdSQL() }},
		{prefix: "check", handler: func(_ string) error { return s.cmdCheck() }},
		{prefix: "reset", handler: func(_ string) error { return s.cmdReset() }},
		{prefix: "tables", handler: func(_ string) error { return s.cmdTables() }},
		{prefix: "help", handler: func(_ string) error { s.cmdHelp(); return nil }},
		{prefix: "strategy ", handler: func(a string) error { return s.cmdStrategy(a) }, completer: completeStrategyArgs},
		{prefix: "strategy", handler: func(_ string) error {
			_, _ = fmt.Fprintf(s.out, "  Strategy: %s\n", s.strategyName)
			return nil
		}, hidden: true},

		// --- table registration ---
		{prefix: "table ", handler: func(a string) error { return s.cmdTable(a) }},
		{prefix: "t ", handler: func(a string) error { return s.cmdTable(a) }, hidden: true},

		// --- select building ---
		{prefix: "from ", handler: func(a string) error { return s.cmdFrom(a) }, completer: completeTableArgs},
		{prefix: "select ", handler: func(a string) error { return s.cmdSelect(a) }, completer: completeColumnArgs},
		{prefix: "distinct", handler: func(_ string) error { return s.cmdDistinct() }},
		{prefix: "where ", handler: func(a string) error { return s.cmdWhere(a) }, completer: completeColumnArgs},
		{prefix: "group ", handler: func(a string) error { return s.cmdGroup(a) }, completer: completeColumnArgs},
		{prefix: "having ", handler: func(a string) error { return s.cmdHaving(a) }, completer: completeColumnArgs},
		{prefix: "order ", handler: func(a string) error { return s.cmdOrder(a) }, completer: completeColumnArgs},
		{prefix: "limit ", handler: func(a string) error { return s.cmdLimit(a) }},
		{prefix: "offset ", handler: func(a string) error { return s.cmdOffset(a) }},

		// --- joins (multi-word prefixes) ---
		{prefix: "right join ", handler: func(a string) error { return s.cmdJoin(a, models.RightJoin) }, completer: completeTableArgs},
		{prefix: "left join ", handler: func(a string) error { return s.cmdJoin(a, models.LeftJoin) }, completer: completeTableArgs},
		{prefix: "full join ", handler: func(a string) error { return s.cmdJoin(a, models.FullJoin) }, completer: completeTableArgs},
		{prefix: "join ", handler: func(a string) error { return s.cmdJoin(a, models.InnerJoin) }, completer: completeTableArgs},

		// --- DML builders ---
		{prefix: "insert into ", handler: func(a string) error { return s.cmdInsertInto(a) }, completer: completeTableArgs},
		{prefix: "delete from ", handler: func(a string) error { return s.cmdDeleteFrom(a) }, completer: completeTableArgs},
		{prefix: "update ", handler: func(a string) error { return s.cmdUpdate(a) }, completer: completeTableArgs},
		{prefix: "map ", handler: func(a string) error { return s.cmdMap(a) }, completer: completeColumnArgs},
		{prefix: "set ", handler: func(a string) error { return s.cmdSet(a) }, completer: completeColumnArgs},
	}
	sort.Slice(s.commands, func(i, j int) bool {
		return len(s.commands[i].prefix) > len(s.commands[j].prefix)
	})
}

// Execute dispatches one input line to the longest matching command prefix.
func (s *Session) Execute(line string) error {
	lower := strings.ToLower(line)
	for _, cmd := range s.commands {
		if strings.HasPrefix(lower, cmd.prefix) {
			args := strings.TrimSpace(line[len(cmd.prefix):])
			return cmd.handler(args)
		}
	}
	return fmt.Errorf("unknown command %q (try 'help')", line)
}

func (s *Session) commandNames() []string {
	names := make([]string, 0, len(s.commands))
	for _, cmd := range s.commands {
		if !cmd.hidden {
			names = append(names, strings.TrimSpace(cmd.prefix))
		}
	}
	sort.Strings(names)
	return names
}

// --- table registration ---

// cmdTable registers a table: table person id:integer first_name:varchar
func (s *Session) cmdTable(args string) error {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return fmt.Errorf("usage: table <name> [col[:type] ...]")
	}
	name := fields[0]
	rt := &replTable{table: models.NewTable(name), types: make(map[string]models.JDBCType)}
	for _, spec := range fields[1:] {
		col, jt, err := parseColumnSpec(spec)
		if err != nil {
			return err
		}
		rt.columns = append(rt.columns, col)
		if jt != "" {
			rt.types[col] = jt
		}
	}
	if _, exists := s.tables[name]; !exists {
		s.tableOrder = append(s.tableOrder, name)
	}
	s.tables[name] = rt
	_, _ = fmt.Fprintf(s.out, "  Registered table %s (%d columns)\n", name, len(rt.columns))
	return nil
}

func (s *Session) cmdTables() error {
	if len(s.tableOrder) == 0 {
		_, _ = fmt.Fprintln(s.out, "  No tables registered")
		return nil
	}
	for _, name := range s.tableOrder {
		rt := s.tables[name]
		_, _ = fmt.Fprintf(s.out, "  %s (%s)\n", name, strings.Join(rt.columns, ", "))
	}
	return nil
}

func (s *Session) lookupTable(name string) (*replTable, error) {
	rt, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("unknown table %q (register it with 'table %s ...')", name, name)
	}
	return rt, nil
}

// scopeTables returns the tables visible to column references in the
// current statement.
func (s *Session) scopeTables() []*replTable {
	switch s.mode {
	case modeSelect:
		scope := []*replTable{}
		if s.sel.from != nil {
			scope = append(scope, s.sel.from)
		}
		for _, j := range s.sel.joins {
			scope = append(scope, j.table)
		}
		return scope
	default:
		if s.dmlTable != nil {
			return []*replTable{s.dmlTable}
		}
		return nil
	}
}

// resolveColumn resolves "col" or "table.col" against the current scope.
func (s *Session) resolveColumn(ref string) (*models.Column, error) {
	if table, col, ok := strings.Cut(ref, "."); ok {
		rt, err := s.lookupTable(table)
		if err != nil {
			return nil, err
		}
		return rt.col(col), nil
	}
	for _, rt := range s.scopeTables() {
		for _, c := range rt.columns {
			if c == ref {
				return rt.col(ref), nil
			}
		}
	}
	scope := s.scopeTables()
	if len(scope) == 1 {
		return scope[0].col(ref), nil
	}
	return nil, fmt.Errorf("cannot resolve column %q (qualify it as table.column)", ref)
}

// --- select building ---

func (s *Session) cmdFrom(args string) error {
	fields := strings.Fields(args)
	if len(fields) == 0 || len(fields) > 2 {
		return fmt.Errorf("usage: from <table> [alias]")
	}
	rt, err := s.lookupTable(fields[0])
	if err != nil {
		return err
	}
	s.resetStatement()
	s.mode = modeSelect
	s.sel = &selectState{from: rt}
	if len(fields) == 2 {
		s.sel.fromAlias = fields[1]
	}
	return nil
}

func (s *Session) cmdSelect(args string) error {
	if s.mode != modeSelect {
		return errNoStatement
	}
	for _, ref := range splitList(args) {
		item, err := s.parseSelectItem(ref)
		if err != nil {
			return err
		}
		s.sel.columns = append(s.sel.columns, item)
	}
	return nil
}

func (s *Session) cmdDistinct() error {
	if s.mode != modeSelect {
		return errNoStatement
	}
	s.sel.distinct = true
	return nil
}

func (s *Session) cmdJoin(args string, kind models.JoinType) error {
	if s.mode != modeSelect {
		return errNoStatement
	}
	head, onClause, ok := cutFold(args, " on ")
	if !ok {
		return fmt.Errorf("usage: join <table> [alias] on <left> = <right>")
	}
	fields := strings.Fields(head)
	if len(fields) == 0 || len(fields) > 2 {
		return fmt.Errorf("usage: join <table> [alias] on <left> = <right>")
	}
	rt, err := s.lookupTable(fields[0])
	if err != nil {
		return err
	}
	j := joinState{table: rt, kind: kind}
	if len(fields) == 2 {
		j.alias = fields[1]
	}
	s.sel.joins = append(s.sel.joins, j)

	left, right, ok := strings.Cut(onClause, "=")
	if !ok {
		return fmt.Errorf("join criteria must be <left> = <right>")
	}
	lc, err := s.resolveColumn(strings.TrimSpace(left))
	if err != nil {
		return err
	}
	rc, err := s.resolveColumn(strings.TrimSpace(right))
	if err != nil {
		return err
	}
	s.sel.joins[len(s.sel.joins)-1].on = append(s.sel.joins[len(s.sel.joins)-1].on, builders.On(lc, rc))
	return nil
}

func (s *Session) cmdWhere(args string) error {
	cond, err := s.parseCondition(args)
	if err != nil {
		return err
	}
	switch s.mode {
	case modeSelect:
		s.sel.wheres = append(s.sel.wheres, cond)
	case modeUpdate:
		s.upd.Where(cond)
	case modeDelete:
		s.del.Where(cond)
	default:
		return errNoStatement
	}
	return nil
}

func (s *Session) cmdGroup(args string) error {
	if s.mode != modeSelect {
		return errNoStatement
	}
	for _, ref := range splitList(args) {
		col, err := s.resolveColumn(ref)
		if err != nil {
			return err
		}
		s.sel.groupBy = append(s.sel.groupBy, col)
	}
	return nil
}

func (s *Session) cmdHaving(args string) error {
	if s.mode != modeSelect {
		return errNoStatement
	}
	cond, err := s.parseCondition(args)
	if err != nil {
		return err
	}
	s.sel.havings = append(s.sel.havings, cond)
	return nil
}

func (s *Session) cmdOrder(args string) error {
	if s.mode != modeSelect {
		return errNoStatement
	}
	for _, ref := range splitList(args) {
		spec, err := s.parseSortSpec(ref)
		if err != nil {
			return err
		}
		s.sel.orderBy = append(s.sel.orderBy, spec)
	}
	return nil
}

func (s *Session) cmdLimit(args string) error {
	if s.mode != modeSelect {
		return errNoStatement
	}
	n, err := parseCount(args)
	if err != nil {
		return err
	}
	s.sel.limit = &n
	return nil
}

func (s *Session) cmdOffset(args string) error {
	if s.mode != modeSelect {
		return errNoStatement
	}
	n, err := parseCount(args)
	if err != nil {
		return err
	}
	s.sel.offset = &n
	return nil
}

// --- DML building ---

func (s *Session) cmdInsertInto(args string) error {
	rt, err := s.lookupTable(strings.TrimSpace(args))
	if err != nil {
		return err
	}
	s.resetStatement()
	s.mode = modeInsert
	s.ins = builders.Insert(rt.table)
	s.dmlTable = rt
	return nil
}

func (s *Session) cmdUpdate(args string) error {
	rt, err := s.lookupTable(strings.TrimSpace(args))
	if err != nil {
		return err
	}
	s.resetStatement()
	s.mode = modeUpdate
	s.upd = builders.Update(rt.table)
	s.dmlTable = rt
	return nil
}

func (s *Session) cmdDeleteFrom(args string) error {
	rt, err := s.lookupTable(strings.TrimSpace(args))
	if err != nil {
		return err
	}
	s.resetStatement()
	s.mode = modeDelete
	s.del = builders.Delete(rt.table)
	s.dmlTable = rt
	return nil
}

// cmdMap adds an insert column mapping: map first_name = 'Fred'
func (s *Session) cmdMap(args string) error {
	if s.mode != modeInsert {
		return fmt.Errorf("'map' requires an insert statement (use 'insert into <table>' first)")
	}
	colName, value, err := s.parseAssignment(args)
	if err != nil {
		return err
	}
	col := s.dmlTable.col(colName)
	if value == nil {
		s.ins.Map(col).ToNull()
	} else {
		s.ins.Map(col).ToProperty(propertyName(colName), value)
	}
	return nil
}

// cmdSet adds an update set mapping: set first_name = 'Betty'
func (s *Session) cmdSet(args string) error {
	if s.mode != modeUpdate {
		return fmt.Errorf("'set' requires an update statement (use 'update <table>' first)")
	}
	colName, value, err := s.parseAssignment(args)
	if err != nil {
		return err
	}
	col := s.dmlTable.col(colName)
	if value == nil {
		s.upd.Set(col).ToNull()
	} else {
		s.upd.Set(col).To(value)
	}
	return nil
}

// --- rendering ---

// render builds and renders the current statement with the given strategy.
func (s *Session) render(strategy strategies.RenderingStrategy) (*renderers.StatementProvider, error) {
	switch s.mode {
	case modeSelect:
		return s.buildSelect().Render(strategy)
	case modeInsert:
		return s.ins.Render(strategy)
	case modeUpdate:
		return s.upd.Render(strategy)
	case modeDelete:
		return s.del.Render(strategy)
	default:
		return nil, errNoStatement
	}
}

func (s *Session) buildSelect() *builders.SelectBuilder {
	st := s.sel
	b := builders.Select(st.columns...)
	if st.distinct {
		b.Distinct()
	}
	if st.from != nil {
		if st.fromAlias != "" {
			b.From(st.from.table, st.fromAlias)
		} else {
			b.From(st.from.table)
		}
	}
	for _, j := range st.joins {
		switch j.kind {
		case models.LeftJoin:
			b.LeftJoin(j.table.table, j.alias, j.on...)
		case models.RightJoin:
			b.RightJoin(j.table.table, j.alias, j.on...)
		case models.FullJoin:
			b.FullJoin(j.table.table, j.alias, j.on...)
		default:
			b.Join(j.table.table, j.alias, j.on...)
		}
	}
	b.Where(st.wheres...)
	b.GroupBy(st.groupBy...)
	b.Having(st.havings...)
	b.OrderBy(st.orderBy...)
	if st.limit != nil {
		b.Limit(*st.limit)
	}
	if st.offset != nil {
		b.Offset(*st.offset)
	}
	return b
}

func (s *Session) cmdSQL() error {
	provider, err := s.render(s.strategy)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(s.out, "  SQL: %s\n", provider.Statement())
	params := provider.Parameters()
	for _, name := range params.Names() {
		value, _ := params.Get(name)
		_, _ = fmt.Fprintf(s.out, "    %s = %v\n", name, value)
	}
	return nil
}

func (s *Session) cmdStrategy(args string) error {
	name := strings.TrimSpace(strings.ToLower(args))
	switch name {
	case "mybatis3":
		s.strategy = strategies.MyBatis3()
	case "named":
		s.strategy = strategies.Named()
	case "atnamed":
		s.strategy = strategies.AtNamed()
	case "positional":
		s.strategy = strategies.Positional()
	default:
		return fmt.Errorf("unknown strategy %q (mybatis3, named, atnamed, positional)", name)
	}
	s.strategyName = name
	return nil
}

func (s *Session) cmdReset() error {
	s.resetStatement()
	_, _ = fmt.Fprintln(s.out, "  Statement cleared")
	return nil
}

func (s *Session) resetStatement() {
	s.mode = modeNone
	s.sel = nil
	s.ins = nil
	s.upd = nil
	s.del = nil
	s.dmlTable = nil
}

func (s *Session) cmdHelp() {
	_, _ = fmt.Fprintln(s.out, "  Commands:")
	for _, name := range s.commandNames() {
		_, _ = fmt.Fprintf(s.out, "    %s\n", name)
	}
}
