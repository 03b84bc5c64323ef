package main

import (
	"sort"
	"strings"
)

// completionContext describes what kind of completion is appropriate.
type completionContext int

const (
	contextCommand   completionContext = iota // start of line or partial command
	contextTableName                          // after from/join/insert into/...
	contextColumnRef                          // after select/where/group/order/...
	contextStrategy                           // after strategy
	contextNone                               // no completion
)

var strategyNames = []string{"atnamed", "mybatis3", "named", "positional"}

func completeTableArgs(args string) (completionContext, string) {
	return contextTableName, lastToken(args)
}

func completeColumnArgs(args string) (completionContext, string) {
	return contextColumnRef, lastToken(args)
}

func completeStrategyArgs(args string) (completionContext, string) {
	return contextStrategy, strings.TrimSpace(args)
}

// replCompleter implements readline's AutoCompleter interface.
type replCompleter struct {
	sess *Session
}

// Do returns completion candidates for the current line/cursor position.
// length is the number of chars from end of line[:pos] that form the prefix
// being completed; newLine contains the suffixes to append per candidate.
func (c *replCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	lineStr := string(line[:pos])
	ctx, prefix := c.parseContext(lineStr)

	var candidates []string
	switch ctx {
	case contextCommand:
		candidates = filterPrefix(c.sess.commandNames(), prefix)
	case contextTableName:
		candidates = filterPrefix(c.sess.tableOrder, prefix)
	case contextColumnRef:
		candidates = c.completeColumnRef(prefix)
	case contextStrategy:
		candidates = filterPrefix(strategyNames, prefix)
	}

	for _, cand := range candidates {
		newLine = append(newLine, []rune(cand[len(prefix):]))
	}
	return newLine, len(prefix)
}

// parseContext matches the line against the command registry to decide
// which completion applies.
func (c *replCompleter) parseContext(line string) (completionContext, string) {
	lower := strings.ToLower(line)
	for _, cmd := range c.sess.commands {
		if !strings.HasPrefix(lower, cmd.prefix) {
			continue
		}
		if cmd.completer == nil {
			return contextNone, ""
		}
		return cmd.completer(line[len(cmd.prefix):])
	}
	return contextCommand, lower
}

// completeColumnRef completes bare column names from the current scope and
// table-qualified references for registered tables.
func (c *replCompleter) completeColumnRef(prefix string) []string {
	if table, colPrefix, qualified := strings.Cut(prefix, "."); qualified {
		rt, ok := c.sess.tables[table]
		if !ok {
			return nil
		}
		out := make([]string, 0, len(rt.columns))
		for _, col := range rt.columns {
			if strings.HasPrefix(col, colPrefix) {
				out = append(out, table+"."+col)
			}
		}
		return out
	}

	var out []string
	for _, rt := range c.sess.scopeTables() {
		for _, col := range rt.columns {
			if strings.HasPrefix(col, prefix) {
				out = append(out, col)
			}
		}
	}
	sort.Strings(out)
	return out
}

// lastToken returns the token being typed at the end of args.
func lastToken(args string) string {
	if idx := strings.LastIndexAny(args, " ,("); idx >= 0 {
		return args[idx+1:]
	}
	return args
}

func filterPrefix(candidates []string, prefix string) []string {
	out := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		if strings.HasPrefix(cand, prefix) {
			out = append(out, cand)
		}
	}
	sort.Strings(out)
	return out
}
