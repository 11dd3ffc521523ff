// Package shell provides best-effort tokenization of shell command lines.
//
// The tokenizer is intentionally permissive: command fragments are pulled out
// of Dockerfiles, Markdown, scripts and CI workflows, and real-world lines
// contain plenty of exotic syntax. Malformed quoting never produces an error;
// it simply degrades to a split that may not match anything downstream.
package shell

import "strings"

// Tokenizer splits raw command lines into token sequences, one per
// shell-level command. It only yields sequences that start with one of the
// recognized command names; everything else on a line is skipped.
type Tokenizer struct {
	recognized map[string]bool
}

// NewTokenizer creates a Tokenizer that recognizes the given command names.
func NewTokenizer(names ...string) *Tokenizer {
	recognized := make(map[string]bool, len(names))
	for _, n := range names {
		recognized[n] = true
	}
	return &Tokenizer{recognized: recognized}
}

// Split breaks a raw line into independent commands at top-level `&&`, `;`
// and `|` separators, tokenizes each command respecting shell quoting, and
// returns the sequences that invoke a recognized command. Leading
// environment assignments, wrapper commands and unrelated prefixes are
// skipped until a recognized name is found; commands without one yield
// nothing.
func (t *Tokenizer) Split(line string) [][]string {
	var out [][]string
	for _, cmd := range splitCommands(line) {
		tokens := tokenize(cmd)
		tokens = t.normalize(tokens)
		if len(tokens) > 0 {
			out = append(out, tokens)
		}
	}
	return out
}

// normalize drops leading tokens until a recognized command name is reached.
// This skips environment assignments (`CI=true npm ci`), wrapper commands
// (`sudo npm ci`), and any other unrelated prefix. Returns nil if no
// recognized name appears in the sequence.
func (t *Tokenizer) normalize(tokens []string) []string {
	for i, tok := range tokens {
		if t.recognized[tok] {
			return tokens[i:]
		}
	}
	return nil
}

// splitCommands splits a line on top-level command separators. Separators
// inside quoted spans are inert. `||` splits into two commands, the second
// of which is empty and discarded by tokenize.
func splitCommands(line string) []string {
	var (
		parts []string
		start int
		quote byte // 0 when outside quotes
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\\' && i+1 < len(line):
			i++ // escaped character never opens, closes, or separates
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == ';' || c == '|':
			parts = append(parts, line[start:i])
			start = i + 1
		case c == '&' && i+1 < len(line) && line[i+1] == '&':
			parts = append(parts, line[start:i])
			i++
			start = i + 1
		}
	}
	parts = append(parts, line[start:])
	return parts
}

// tokenize splits one command into tokens. Whitespace outside quotes
// separates tokens; quoted spans become part of a single token with the
// quotes stripped; a backslash escapes the following character both inside
// and outside quotes. An unterminated quote consumes the rest of the line.
func tokenize(cmd string) []string {
	var (
		tokens  []string
		current strings.Builder
		quote   byte
		started bool
	)
	flush := func() {
		if started {
			tokens = append(tokens, current.String())
			current.Reset()
			started = false
		}
	}
	for i := 0; i < len(cmd); i++ {
		c := cmd[i]
		switch {
		case c == '\\' && i+1 < len(cmd):
			i++
			current.WriteByte(cmd[i])
			started = true
		case quote != 0:
			if c == quote {
				quote = 0
			} else {
				current.WriteByte(c)
			}
		case c == '\'' || c == '"':
			quote = c
			started = true // empty quotes still form a token
		case c == ' ' || c == '\t':
			flush()
		default:
			current.WriteByte(c)
			started = true
		}
	}
	flush()
	return tokens
}
