// Package dotenv loads environment variables from .env files.
//
// Load and Overload find the nearest .env by walking up from the working
// directory; LoadFrom and OverloadFrom take an explicit path. The line
// grammar is KEY=VALUE with an optional "export " prefix, # comments,
// single quotes (taken literally) and double quotes with a small set of
// backslash escapes.
package dotenv

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no .env file exists between the working
// directory and the filesystem root.
var ErrNotFound = errors.New("dotenv: no .env file found")

// ParseError reports a malformed line with its 1-based line number.
type ParseError struct {
	Path    string
	Line    int
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("dotenv: parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("dotenv: parse error at line %d: %s", e.Line, e.Message)
}

// Load applies the nearest .env without overwriting variables that are
// already set. It returns the number of variables applied.
func Load() (int, error) {
	path, err := find()
	if err != nil {
		return 0, err
	}
	return loadFrom(path, false)
}

// Overload applies the nearest .env, overwriting existing variables.
func Overload() (int, error) {
	path, err := find()
	if err != nil {
		return 0, err
	}
	return loadFrom(path, true)
}

// LoadFrom applies the given file without overwriting existing variables.
func LoadFrom(path string) (int, error) {
	return loadFrom(path, false)
}

// OverloadFrom applies the given file, overwriting existing variables.
func OverloadFrom(path string) (int, error) {
	return loadFrom(path, true)
}

func find() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("dotenv: cannot determine working directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ".env")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched upward from %s)", ErrNotFound, dir)
		}
		dir = parent
	}
}

func loadFrom(path string, overwrite bool) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("dotenv: %w", err)
	}
	defer file.Close()

	pairs, err := parse(file, path)
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, p := range pairs {
		if !overwrite {
			if _, exists := os.LookupEnv(p.key); exists {
				continue
			}
		}
		if err := os.Setenv(p.key, p.value); err != nil {
			return applied, fmt.Errorf("dotenv: cannot set %s: %w", p.key, err)
		}
		applied++
	}
	return applied, nil
}

type pair struct {
	key   string
	value string
}

// parse reads the whole file, last assignment per key wins, file order kept
// for the first occurrence.
func parse(file *os.File, path string) ([]pair, error) {
	var (
		pairs []pair
		index = make(map[string]int)
	)
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNo, Message: err.Error()}
		}
		if !ok {
			continue
		}
		if i, seen := index[key]; seen {
			pairs[i].value = value
			continue
		}
		index[key] = len(pairs)
		pairs = append(pairs, pair{key: key, value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dotenv: reading %s: %w", path, err)
	}
	return pairs, nil
}

// parseLine returns the key/value of one line; ok is false for blank lines
// and comments.
func parseLine(raw string) (key, value string, ok bool, err error) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.HasPrefix(s, "#") {
		return "", "", false, nil
	}
	if rest, found := strings.CutPrefix(s, "export "); found {
		s = strings.TrimSpace(rest)
	} else if rest, found := strings.CutPrefix(s, "export\t"); found {
		s = strings.TrimSpace(rest)
	}

	eq := strings.IndexByte(s, '=')
	if eq < 0 {
		return "", "", false, errors.New("missing '='")
	}
	key = strings.TrimSpace(s[:eq])
	if !validKey(key) {
		return "", "", false, fmt.Errorf("invalid key %q", key)
	}

	rawValue := strings.TrimSpace(s[eq+1:])
	if !strings.HasPrefix(rawValue, `"`) && !strings.HasPrefix(rawValue, "'") {
		rawValue = strings.TrimSpace(stripInlineComment(rawValue))
	}
	value, err = unquote(rawValue)
	if err != nil {
		return "", "", false, err
	}
	return key, value, true, nil
}

func validKey(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// stripInlineComment cuts an unquoted trailing comment; the '#' only starts
// a comment at the beginning of the value or after whitespace.
func stripInlineComment(v string) string {
	prevIsSpace := true
	for i, c := range v {
		if c == '#' && prevIsSpace {
			return v[:i]
		}
		prevIsSpace = c == ' ' || c == '\t'
	}
	return v
}

func unquote(raw string) (string, error) {
	if len(raw) >= 2 && raw[0] == '\'' && raw[len(raw)-1] == '\'' {
		return raw[1 : len(raw)-1], nil
	}
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return unescape(raw[1 : len(raw)-1]), nil
	}
	if len(raw) >= 1 && (raw[0] == '"' || raw[0] == '\'') {
		return "", fmt.Errorf("unterminated quoted value %s", raw)
	}
	return raw, nil
}

// unescape interprets the double-quote escape set. Unknown escapes are kept
// verbatim, backslash included.
func unescape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			sb.WriteByte('\\')
			break
		}
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '0':
			sb.WriteByte(0)
		case '"':
			sb.WriteByte('"')
		case '\'':
			sb.WriteByte('\'')
		case '\\':
			sb.WriteByte('\\')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
