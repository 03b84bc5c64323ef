package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bawdo/fluentsql/models"
)

// jdbcTypes maps the repl's column type keywords to JDBC type names.
var jdbcTypes = map[string]models.JDBCType{
	"integer":   models.Integer,
	"int":       models.Integer,
	"bigint":    models.Bigint,
	"varchar":   models.Varchar,
	"char":      models.Char,
	"date":      models.Date,
	"timestamp": models.Timestamp,
	"decimal":   models.Decimal,
	"boolean":   models.Boolean,
}

// parseColumnSpec parses "name" or "name:type" from a table registration.
func parseColumnSpec(spec string) (string, models.JDBCType, error) {
	name, typeName, ok := strings.Cut(spec, ":")
	if name == "" {
		return "", "", fmt.Errorf("invalid column spec %q", spec)
	}
	if !ok {
		return name, "", nil
	}
	jt, known := jdbcTypes[strings.ToLower(typeName)]
	if !known {
		return "", "", fmt.Errorf("unknown column type %q in %q", typeName, spec)
	}
	return name, jt, nil
}

// splitList splits a comma-separated argument list, trimming whitespace.
func splitList(args string) []string {
	parts := strings.Split(args, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// cutFold is strings.Cut with a case-insensitive separator.
func cutFold(s, sep string) (before, after string, found bool) {
	idx := strings.Index(strings.ToLower(s), sep)
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+len(sep):], true
}

// parseCount parses a non-negative limit/offset argument.
func parseCount(args string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("expected a non-negative number, got %q", strings.TrimSpace(args))
	}
	return n, nil
}

// parseValue parses a literal argument: quoted strings, numbers, booleans,
// and null.
func parseValue(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("missing value")
	}
	if len(raw) >= 2 {
		if (raw[0] == '\'' && raw[len(raw)-1] == '\'') || (raw[0] == '"' && raw[len(raw)-1] == '"') {
			return raw[1 : len(raw)-1], nil
		}
	}
	switch strings.ToLower(raw) {
	case "null":
		return nil, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("cannot parse value %q (quote strings)", raw)
}

// parseValueList parses a comma-separated list of literals.
func parseValueList(args string) ([]any, error) {
	parts := splitList(args)
	values := make([]any, 0, len(parts))
	for _, p := range parts {
		v, err := parseValue(p)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// compareOps in match order: two-char operators before their one-char
// prefixes.
var compareOps = []struct {
	token string
	op    models.CompareOp
}{
	{"<=", models.OpLtEq},
	{">=", models.OpGtEq},
	{"<>", models.OpNotEq},
	{"!=", models.OpNotEq},
	{"=", models.OpEq},
	{"<", models.OpLt},
	{">", models.OpGt},
}

// parseCondition parses one predicate:
//
//	<col> is [not] null
//	<col> [not] in v1, v2, ...
//	<col> between v1 and v2
//	<col> [not] like <value>
//	<col> <op> <value>  (value may be another column reference)
func (s *Session) parseCondition(args string) (models.Condition, error) {
	fields := strings.Fields(args)
	if len(fields) < 2 {
		return nil, fmt.Errorf("cannot parse condition %q", args)
	}
	col, err := s.resolveColumn(fields[0])
	if err != nil {
		return nil, err
	}
	rest := strings.TrimSpace(args[len(fields[0]):])
	lower := strings.ToLower(rest)

	switch {
	case lower == "is null":
		return col.IsNull(), nil
	case lower == "is not null":
		return col.IsNotNull(), nil
	case strings.HasPrefix(lower, "not in "):
		values, err := parseValueList(rest[len("not in "):])
		if err != nil {
			return nil, err
		}
		return col.NotIn(values...), nil
	case strings.HasPrefix(lower, "in "):
		values, err := parseValueList(rest[len("in "):])
		if err != nil {
			return nil, err
		}
		return col.In(values...), nil
	case strings.HasPrefix(lower, "between "):
		lowRaw, highRaw, found := cutFold(rest[len("between "):], " and ")
		if !found {
			return nil, fmt.Errorf("between requires '<low> and <high>'")
		}
		low, err := parseValue(lowRaw)
		if err != nil {
			return nil, err
		}
		high, err := parseValue(highRaw)
		if err != nil {
			return nil, err
		}
		return col.Between(low, high), nil
	case strings.HasPrefix(lower, "not like "):
		v, err := parseValue(rest[len("not like "):])
		if err != nil {
			return nil, err
		}
		return col.NotLike(v), nil
	case strings.HasPrefix(lower, "like "):
		v, err := parseValue(rest[len("like "):])
		if err != nil {
			return nil, err
		}
		return col.Like(v), nil
	}

	for _, c := range compareOps {
		if !strings.HasPrefix(rest, c.token) {
			continue
		}
		operand := strings.TrimSpace(rest[len(c.token):])
		// A column reference on the right side makes a column comparison.
		if other, err := s.resolveColumn(operand); err == nil && !looksLikeLiteral(operand) {
			if c.op == models.OpEq {
				return col.EqCol(other), nil
			}
			return &models.ColumnComparison{Left: col, Op: c.op, Right: other}, nil
		}
		v, err := parseValue(operand)
		if err != nil {
			return nil, err
		}
		return &models.Comparison{Left: col, Op: c.op, Value: v}, nil
	}
	return nil, fmt.Errorf("cannot parse condition %q", args)
}

// looksLikeLiteral reports whether token parses as a literal rather than a
// column reference.
func looksLikeLiteral(token string) bool {
	if token == "" {
		return false
	}
	if token[0] == '\'' || token[0] == '"' || (token[0] >= '0' && token[0] <= '9') {
		return true
	}
	switch strings.ToLower(token) {
	case "null", "true", "false":
		return true
	}
	return false
}

// parseSelectItem parses one select list entry: a column reference, an
// aliased reference ("col as alias"), count(*), or count([distinct] col).
func (s *Session) parseSelectItem(ref string) (models.SelectItem, error) {
	lower := strings.ToLower(ref)
	switch {
	case lower == "count(*)":
		return models.CountAll{}, nil
	case strings.HasPrefix(lower, "count(distinct ") && strings.HasSuffix(ref, ")"):
		col, err := s.resolveColumn(strings.TrimSpace(ref[len("count(distinct ") : len(ref)-1]))
		if err != nil {
			return nil, err
		}
		return models.Count{Column: col, Distinct: true}, nil
	case strings.HasPrefix(lower, "count(") && strings.HasSuffix(ref, ")"):
		col, err := s.resolveColumn(strings.TrimSpace(ref[len("count(") : len(ref)-1]))
		if err != nil {
			return nil, err
		}
		return models.Count{Column: col}, nil
	}
	name, alias, aliased := cutFold(ref, " as ")
	col, err := s.resolveColumn(strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	if aliased {
		return col.As(strings.TrimSpace(alias)), nil
	}
	return col, nil
}

// parseSortSpec parses "col", "col asc", or "col desc".
func (s *Session) parseSortSpec(ref string) (models.SortSpec, error) {
	fields := strings.Fields(ref)
	if len(fields) == 0 || len(fields) > 2 {
		return models.SortSpec{}, fmt.Errorf("cannot parse order spec %q", ref)
	}
	col, err := s.resolveColumn(fields[0])
	if err != nil {
		return models.SortSpec{}, err
	}
	if len(fields) == 2 {
		switch strings.ToLower(fields[1]) {
		case "asc":
			return col.Asc(), nil
		case "desc":
			return col.Desc(), nil
		default:
			return models.SortSpec{}, fmt.Errorf("order direction must be asc or desc, got %q", fields[1])
		}
	}
	return col.Asc(), nil
}

// parseAssignment parses "col = value" for map/set commands.
func (s *Session) parseAssignment(args string) (string, any, error) {
	colName, raw, ok := strings.Cut(args, "=")
	if !ok {
		return "", nil, fmt.Errorf("usage: <column> = <value>")
	}
	colName = strings.TrimSpace(colName)
	if colName == "" {
		return "", nil, fmt.Errorf("usage: <column> = <value>")
	}
	value, err := parseValue(raw)
	if err != nil {
		return "", nil, err
	}
	return colName, value, nil
}

// propertyName converts a snake_case column name to the lowerCamel property
// name used for record binding paths.
func propertyName(column string) string {
	parts := strings.Split(column, "_")
	var sb strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			sb.WriteString(p)
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(p[1:])
	}
	return sb.String()
}
