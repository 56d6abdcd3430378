package description

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/dlclark/regexp2"
)

var (
	// ErrInvalidPattern is returned when Expression does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrNoMatch is returned when the pattern does not match the description,
	// or the requested group took no part in the match.
	ErrNoMatch = errors.New("pattern does not match")

	// ErrGroupOutOfRange is returned when Group exceeds the number of capture
	// groups in the pattern. It wraps ErrNoMatch.
	ErrGroupOutOfRange = fmt.Errorf("%w: capture group out of range", ErrNoMatch)
)

// matcher extracts a capture group from the first match in s.
type matcher interface {
	submatch(s string, group int) (string, error)
	groups() int
}

// compile builds the matcher for o.Engine and checks o.Group against it.
func compile(o Options) (matcher, error) {
	var (
		m   matcher
		err error
	)
	switch o.Engine {
	case "", EngineRE2:
		m, err = compileRE2(o.Expression)
	case EngineBacktrack:
		m, err = compileBacktrack(o.Expression, o.MatchTimeout)
	default:
		return nil, fmt.Errorf("invalid engine %q", o.Engine)
	}
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, o.Expression, err)
	}
	if o.Group > m.groups() {
		return nil, fmt.Errorf("%w: group %d requested, %q has %d", ErrGroupOutOfRange, o.Group, o.Expression, m.groups())
	}
	// regexp2 numbers named groups after all unnamed ones, so a group index
	// would select a different group than it does with re2.
	if bt, ok := m.(*backtrackMatcher); ok && o.Group > 0 && bt.mixesGroupKinds() {
		return nil, fmt.Errorf("%w %q: named and numbered groups cannot be mixed when selecting a group with the %s engine", ErrInvalidPattern, o.Expression, EngineBacktrack)
	}
	return m, nil
}

type re2Matcher struct {
	re *regexp.Regexp
}

func compileRE2(expr string) (*re2Matcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &re2Matcher{re: re}, nil
}

func (m *re2Matcher) groups() int {
	return m.re.NumSubexp()
}

func (m *re2Matcher) submatch(s string, group int) (string, error) {
	if group > m.re.NumSubexp() {
		return "", ErrGroupOutOfRange
	}
	loc := m.re.FindStringSubmatchIndex(s)
	if loc == nil || loc[2*group] < 0 {
		return "", ErrNoMatch
	}
	return s[loc[2*group]:loc[2*group+1]], nil
}

type backtrackMatcher struct {
	re *regexp2.Regexp
}

func compileBacktrack(expr string, timeout time.Duration) (*backtrackMatcher, error) {
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultMatchTimeout
	}
	re.MatchTimeout = timeout
	return &backtrackMatcher{re: re}, nil
}

func (m *backtrackMatcher) groups() int {
	return slices.Max(m.re.GetGroupNumbers())
}

// mixesGroupKinds reports whether the pattern has both named and unnamed
// capture groups.
func (m *backtrackMatcher) mixesGroupKinds() bool {
	var named, unnamed bool
	for _, n := range m.re.GetGroupNumbers() {
		if n == 0 {
			continue
		}
		if m.re.GroupNameFromNumber(n) == strconv.Itoa(n) {
			unnamed = true
		} else {
			named = true
		}
	}
	return named && unnamed
}

func (m *backtrackMatcher) submatch(s string, group int) (string, error) {
	match, err := m.re.FindStringMatch(s)
	if err != nil {
		// regexp2 only fails a match on timeout
		return "", fmt.Errorf("match %q: %w", m.re.String(), err)
	}
	if match == nil {
		return "", ErrNoMatch
	}
	g := match.GroupByNumber(group)
	if g == nil {
		return "", ErrGroupOutOfRange
	}
	if len(g.Captures) == 0 {
		return "", ErrNoMatch
	}
	return g.String(), nil
}
