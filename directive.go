package xvg

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jbarnoud/xvg/logger"
)

// splitDirective splits a directive line into whitespace-separated tokens,
// keeping runs enclosed in matching single or double quotes together. The
// quote characters are kept around the quoted run; unquoteToken removes
// them afterwards. An unmatched quote character is dropped.
func splitDirective(s string) []string {
	var tokens []string
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}

	rs := []rune(s)
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsSpace(r):
			flush()
			i++
		case r == '"' || r == '\'':
			end := -1
			for j := i + 1; j < len(rs); j++ {
				if rs[j] == r {
					end = j
					break
				}
			}
			if end < 0 {
				i++
				continue
			}
			b.WriteString(string(rs[i : end+1]))
			i = end + 1
		default:
			b.WriteRune(r)
			i++
		}
	}
	flush()

	return tokens
}

// unquoteToken strips one pair of enclosing quotes when the first and last
// characters are the same quote character. Anything else passes through
// unchanged.
func unquoteToken(tok string) string {
	if len(tok) < 2 {
		return tok
	}

	first, last := tok[0], tok[len(tok)-1]
	if first == last && (first == '"' || first == '\'') {
		return tok[1 : len(tok)-1]
	}

	return tok
}

// tokenizeDirective splits a directive line and unquotes every token. It is
// a pure function and safe for concurrent use from multiple tables.
func tokenizeDirective(s string) []string {
	tokens := splitDirective(s)
	for i, tok := range tokens {
		tokens[i] = unquoteToken(tok)
	}

	return tokens
}

// legendIndex reports whether command has the form 's' followed by one or
// more decimal digits, and returns the digits as an integer.
func legendIndex(command string) (int, bool) {
	if len(command) < 2 || command[0] != 's' {
		return 0, false
	}

	for i := 1; i < len(command); i++ {
		if command[i] < '0' || command[i] > '9' {
			return 0, false
		}
	}

	idx, err := strconv.Atoi(command[1:])
	if err != nil {
		return 0, false
	}

	return idx, true
}

// applyDirective interprets the content of one '@' header line, with the
// leading '@' already removed and the remainder trimmed, and updates the
// table metadata accordingly.
//
// A directive with a command the built-in dispatch does not recognize is
// passed to a registered custom handler if one exists, and skipped
// otherwise. A recognized command missing a required argument fails the
// parse.
func (t *Table) applyDirective(content string) error {
	tokens := tokenizeDirective(content)
	if len(tokens) == 0 {
		return fmt.Errorf("%w: directive has no command", ErrMissingArgument)
	}

	command, args := tokens[0], tokens[1:]

	switch command {
	case "title":
		if len(args) == 0 {
			return fmt.Errorf("%w: title directive has no value", ErrMissingArgument)
		}
		t.title = args[0]
	case "xaxis":
		if len(args) == 0 {
			return fmt.Errorf("%w: xaxis directive has no value", ErrMissingArgument)
		}
		t.xlabel = args[0]
	case "yaxis":
		if len(args) == 0 {
			return fmt.Errorf("%w: yaxis directive has no value", ErrMissingArgument)
		}
		t.ylabel = args[0]
	default:
		idx, ok := legendIndex(command)
		if !ok {
			return t.dispatchCustom(command, args)
		}
		if len(args) == 0 {
			return fmt.Errorf("%w: %s directive has no arguments", ErrMissingArgument, command)
		}
		if args[0] != "legend" {
			return t.dispatchCustom(command, args)
		}
		if len(args) < 2 {
			return fmt.Errorf("%w: %s legend directive has no column name", ErrMissingArgument, command)
		}
		// Legend index N names data column N+1; column 0 is the
		// independent variable and stays unnamed.
		t.columns[args[len(args)-1]] = idx + 1
	}

	return nil
}

func (t *Table) dispatchCustom(command string, args []string) error {
	if fn, ok := directives.Load(command); ok {
		return fn(t, args)
	}

	logger.Debug("ignoring unrecognized xvg directive", "command", command)

	return nil
}
