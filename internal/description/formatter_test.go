package description

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustNew(t *testing.T, opts Options) *Formatter {
	t.Helper()
	f, err := New(opts)
	if err != nil {
		t.Fatalf("New(%+v) unexpected error: %v", opts, err)
	}
	return f
}

func trimOptions(n int) Options {
	opts := DefaultOptions()
	opts.Trim = true
	opts.DisplayLength = n
	return opts
}

func regexOptions(expr string, group int) Options {
	opts := DefaultOptions()
	opts.Regex = true
	opts.Expression = expr
	opts.Group = group
	return opts
}

func TestFormatAbsent(t *testing.T) {
	t.Parallel()

	for _, opts := range []Options{
		DefaultOptions(),
		trimOptions(0),
		trimOptions(3),
		regexOptions(`(\d+)`, 1),
	} {
		f := mustNew(t, opts)
		for _, trim := range []bool{false, true} {
			got, err := f.Format(None(), trim)
			if err != nil {
				t.Errorf("Format(None, %v) with %+v: unexpected error: %v", trim, opts, err)
			}
			if got.Valid {
				t.Errorf("Format(None, %v) with %+v = %q, want absent", trim, opts, got.String)
			}
		}
	}
}

func TestFormatEmpty(t *testing.T) {
	t.Parallel()

	for _, opts := range []Options{
		DefaultOptions(),
		trimOptions(0),
		regexOptions(`never`, 0),
	} {
		f := mustNew(t, opts)
		for _, trim := range []bool{false, true} {
			got, err := f.Format(Some(""), trim)
			if err != nil {
				t.Errorf("Format(\"\", %v) with %+v: unexpected error: %v", trim, opts, err)
			}
			if got != Some("") {
				t.Errorf("Format(\"\", %v) with %+v = %+v, want empty string", trim, opts, got)
			}
		}
	}
}

func TestFormatPlain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		desc   string
		trim   bool
		length int
		want   string
	}{
		{
			name:   "no trim returns input unchanged",
			desc:   "A<BR>B<br />C",
			trim:   false,
			length: 1,
			want:   "A<BR>B<br />C",
		},
		{
			name:   "keeps leading segments",
			desc:   "A<br/>B<br/>C",
			trim:   true,
			length: 2,
			want:   "A<br/>B",
		},
		{
			name:   "zero length yields empty",
			desc:   "A<br/>B",
			trim:   true,
			length: 0,
			want:   "",
		},
		{
			name:   "length beyond segment count rejoins canonically",
			desc:   "A<BR >B",
			trim:   true,
			length: 5,
			want:   "A<br/>B",
		},
		{
			name:   "mixed marker spellings",
			desc:   "one<br>two<BR/>three<Br  />four",
			trim:   true,
			length: 3,
			want:   "one<br/>two<br/>three",
		},
		{
			name:   "single segment",
			desc:   "just text",
			trim:   true,
			length: 1,
			want:   "just text",
		},
		{
			name:   "trailing marker dropped",
			desc:   "A<br/>B<br/>",
			trim:   true,
			length: 5,
			want:   "A<br/>B",
		},
		{
			name:   "leading marker keeps empty first segment",
			desc:   "<br>A",
			trim:   true,
			length: 1,
			want:   "",
		},
		{
			name:   "other tags untouched",
			desc:   "<b>bold</b><br>second",
			trim:   true,
			length: 1,
			want:   "<b>bold</b>",
		},
		{
			name:   "not a marker",
			desc:   "a<brand>b",
			trim:   true,
			length: 1,
			want:   "a<brand>b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := mustNew(t, trimOptions(tt.length))
			got, err := f.Format(Some(tt.desc), tt.trim)
			if err != nil {
				t.Fatalf("Format(%q) unexpected error: %v", tt.desc, err)
			}
			if got != Some(tt.want) {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.desc, tt.trim, got.String, tt.want)
			}
		})
	}
}

func TestCellAndTooltip(t *testing.T) {
	t.Parallel()

	f := mustNew(t, trimOptions(2))
	desc := Some("A<br/>B<br/>C")

	cell, err := f.Cell(desc)
	if err != nil {
		t.Fatalf("Cell() unexpected error: %v", err)
	}
	if cell.String != "A<br/>B" {
		t.Errorf("Cell() = %q, want %q", cell.String, "A<br/>B")
	}

	tip, err := f.Tooltip(desc)
	if err != nil {
		t.Fatalf("Tooltip() unexpected error: %v", err)
	}
	if tip.String != "A<br/>B<br/>C" {
		t.Errorf("Tooltip() = %q, want %q", tip.String, "A<br/>B<br/>C")
	}
}

func TestTooltipIgnoresTrimSettings(t *testing.T) {
	t.Parallel()

	desc := Some("x<BR>y<br />z")
	for _, n := range []int{0, 1, 2, 10} {
		opts := trimOptions(n)
		opts.DisplayName = n%2 == 0
		f := mustNew(t, opts)
		got, err := f.Tooltip(desc)
		if err != nil {
			t.Fatalf("Tooltip() unexpected error: %v", err)
		}
		if got != desc {
			t.Errorf("Tooltip() with display_length=%d = %q, want %q", n, got.String, desc.String)
		}
	}
}

func TestCellWithoutTrim(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.DisplayLength = 1
	f := mustNew(t, opts)
	got, err := f.Cell(Some("A<br>B"))
	if err != nil {
		t.Fatalf("Cell() unexpected error: %v", err)
	}
	if got.String != "A<br>B" {
		t.Errorf("Cell() = %q, want unmodified description", got.String)
	}
}

func TestFormatRegex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		engine string
		expr   string
		group  int
		desc   string
		want   string
	}{
		{
			name:  "extracts build number",
			expr:  `Build <b>(\d+)</b>`,
			group: 1,
			desc:  "Build <b>123</b> failed",
			want:  "123",
		},
		{
			name:  "group zero is whole match",
			expr:  `<b>\d+</b>`,
			group: 0,
			desc:  "Build <b>123</b> failed",
			want:  "<b>123</b>",
		},
		{
			name:  "first match wins",
			expr:  `#(\d+)`,
			group: 1,
			desc:  "fixes #12 and #34",
			want:  "12",
		},
		{
			name:  "ignores trimming",
			expr:  `^(.*?)<br/>`,
			group: 1,
			desc:  "first<br/>second<br/>third",
			want:  "first",
		},
		{
			name:   "backtrack lookahead",
			engine: EngineBacktrack,
			expr:   `v(?=\d)(\d+\.\d+)`,
			group:  1,
			desc:   "release v1.42 ready",
			want:   "1.42",
		},
		{
			name:   "backtrack backreference",
			engine: EngineBacktrack,
			expr:   `<(\w+)>(.*?)</\1>`,
			group:  2,
			desc:   "status <em>green</em>",
			want:   "green",
		},
		{
			name:  "named and numbered groups count left to right",
			expr:  `(?<id>a)(b)`,
			group: 2,
			desc:  "ab",
			want:  "b",
		},
		{
			name:   "backtrack named groups only",
			engine: EngineBacktrack,
			expr:   `(?<id>a)(?<rest>b)`,
			group:  2,
			desc:   "ab",
			want:   "b",
		},
		{
			name:   "backtrack mixed groups whole match",
			engine: EngineBacktrack,
			expr:   `(?<id>a)(b)`,
			group:  0,
			desc:   "ab",
			want:   "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := regexOptions(tt.expr, tt.group)
			if tt.engine != "" {
				opts.Engine = tt.engine
			}
			f := mustNew(t, opts)
			for _, trim := range []bool{false, true} {
				got, err := f.Format(Some(tt.desc), trim)
				if err != nil {
					t.Fatalf("Format(%q) unexpected error: %v", tt.desc, err)
				}
				if got != Some(tt.want) {
					t.Errorf("Format(%q, %v) = %q, want %q", tt.desc, trim, got.String, tt.want)
				}
			}
		})
	}
}

func TestFormatRegexNoMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		engine string
		expr   string
		group  int
		desc   string
	}{
		{name: "no match", expr: `Build (\d+)`, group: 1, desc: "nothing here"},
		{name: "group did not participate", expr: `(a)|(b)`, group: 1, desc: "b"},
		{name: "backtrack no match", engine: EngineBacktrack, expr: `Build (\d+)`, group: 1, desc: "nothing"},
		{name: "backtrack group did not participate", engine: EngineBacktrack, expr: `(a)|(b)`, group: 1, desc: "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := regexOptions(tt.expr, tt.group)
			if tt.engine != "" {
				opts.Engine = tt.engine
			}
			f := mustNew(t, opts)
			got, err := f.Cell(Some(tt.desc))
			if !errors.Is(err, ErrNoMatch) {
				t.Fatalf("Cell(%q) error = %v, want ErrNoMatch", tt.desc, err)
			}
			if got.Valid {
				t.Errorf("Cell(%q) = %q, want absent on error", tt.desc, got.String)
			}
		})
	}
}

func TestNewRejectsBadPatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    Options
		wantErr error
	}{
		{
			name:    "unbalanced paren",
			opts:    regexOptions(`(\d+`, 0),
			wantErr: ErrInvalidPattern,
		},
		{
			name:    "lookahead unsupported by re2",
			opts:    regexOptions(`a(?=b)`, 0),
			wantErr: ErrInvalidPattern,
		},
		{
			name:    "group out of range",
			opts:    regexOptions(`(\d+)`, 2),
			wantErr: ErrGroupOutOfRange,
		},
		{
			name: "backtrack group out of range",
			opts: func() Options {
				o := regexOptions(`(\d+)`, 3)
				o.Engine = EngineBacktrack
				return o
			}(),
			wantErr: ErrGroupOutOfRange,
		},
		{
			name: "backtrack mixed named and numbered groups",
			opts: func() Options {
				o := regexOptions(`(?<id>a)(b)`, 2)
				o.Engine = EngineBacktrack
				return o
			}(),
			wantErr: ErrInvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
			if err := tt.opts.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGroupOutOfRangeIsNoMatch(t *testing.T) {
	t.Parallel()

	if !errors.Is(ErrGroupOutOfRange, ErrNoMatch) {
		t.Error("ErrGroupOutOfRange should satisfy errors.Is(err, ErrNoMatch)")
	}
}

func TestPatternIgnoredInPlainMode(t *testing.T) {
	t.Parallel()

	opts := trimOptions(1)
	opts.Expression = `(unbalanced`
	opts.Group = 9
	if _, err := New(opts); err != nil {
		t.Errorf("New() with regex disabled should not compile expression, got %v", err)
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"A<br/>B<br/>C", []string{"A", "B", "C"}},
		{"A<BR>B<Br />C", []string{"A", "B", "C"}},
		{"A<br\t/>B", []string{"A", "B"}},
		{"A", []string{"A"}},
		{"A<br><br>B", []string{"A", "", "B"}},
		{"<br/>", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := Split(tt.in)
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestCanonicalizationIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"A<BR>B<br />C",
		"A<br/>B<br/>C",
		"A<br>B<BR/>C",
	}
	for _, in := range inputs {
		once := Truncate(in, 10)
		twice := Truncate(once, 10)
		if once != "A<br/>B<br/>C" {
			t.Errorf("Truncate(%q) = %q, want %q", in, once, "A<br/>B<br/>C")
		}
		if once != twice {
			t.Errorf("Truncate not idempotent: %q then %q", once, twice)
		}
	}
}

func TestFormatterConcurrentUse(t *testing.T) {
	t.Parallel()

	f := mustNew(t, regexOptions(`job-(\d+)`, 1))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := f.Cell(Some("run job-77 now"))
			if err != nil || got.String != "77" {
				t.Errorf("Cell() = %q, %v; want %q", got.String, err, "77")
			}
		}()
	}
	wg.Wait()
}
