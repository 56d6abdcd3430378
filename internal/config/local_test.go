package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeLocal(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, LocalConfigFileName), []byte(content), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
}

func TestLoadLocal_NoFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	local, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local != nil {
		t.Fatalf("expected nil, got %+v", local)
	}
}

func TestLoadLocal_EmptyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLocal(t, dir, "")

	local, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local == nil {
		t.Fatal("expected non-nil local config for empty file")
	}
	if local.Description.Trim != nil {
		t.Error("unset fields should stay nil")
	}
}

func TestLoadLocal_AllFields(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLocal(t, dir, `
columns = ["description"]

[description]
display_name = true
trim = true
display_length = 0
column_width = 20
force_width = true
regex = true
expression = "x(y)"
group = 1
engine = "backtrack"
match_timeout = "1s"
`)

	local, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff([]string{"description"}, local.Columns); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	d := local.Description
	if d.DisplayLength == nil || *d.DisplayLength != 0 {
		t.Errorf("display_length = %v, want explicit 0", d.DisplayLength)
	}
	if d.Trim == nil || !*d.Trim {
		t.Error("trim should be true")
	}
	if d.Expression == nil || *d.Expression != "x(y)" {
		t.Errorf("expression = %v, want x(y)", d.Expression)
	}
	if d.MatchTimeout == nil || *d.MatchTimeout != "1s" {
		t.Errorf("match_timeout = %v, want 1s", d.MatchTimeout)
	}
}

func TestLoadLocal_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"invalid toml", "[description", "failed to parse local config"},
		{"unknown key", "[description]\nwidth = 3\n", `unknown key "description.width"`},
		{"wrong type", "[description]\ntrim = \"yes\"\n", "failed to parse local config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			writeLocal(t, dir, tt.content)
			_, err := LoadLocal(dir)
			if err == nil || !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("LoadLocal() error = %v, want containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestDefaultLocalConfigParses(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeLocal(t, dir, DefaultLocalConfig())
	local, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("template should parse: %v", err)
	}
	if merged := MergeLocal(new(Config), local); len(merged.Columns) != 0 {
		t.Error("commented template should not override anything")
	}
}
