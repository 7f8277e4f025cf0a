package hcl

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/treehouse/internal/ctxlog"
	"github.com/specialistvlad/treehouse/internal/visitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return ctxlog.WithLogger(context.Background(), logger)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

const seedHCL = `
visitor "Bert" {
  greeting = "Hello Bert, enjoy your treehouse."
  action   = "accept"
  age      = 45
}

visitor "steve" {
  greeting = "Hi Steve. Your milk is in the fridge."
  action   = "accept_with_note"
  note     = "Lactose-free milk is in the fridge"
  age      = 15
}

visitor "fred" {
  greeting = "Wow, who invited Fred?"
  action   = "refuse"
  age      = 30
}
`

func TestLoad_SingleFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "visitors.hcl", seedHCL)

	model, err := NewLoader().Load(testContext(t), path)
	require.NoError(t, err)
	require.Len(t, model.Visitors, 3)

	steve := model.Visitors[1]
	assert.Equal(t, "steve", steve.Name)
	assert.Equal(t, "accept_with_note", steve.Action)
	require.NotNil(t, steve.Note)
	assert.Equal(t, "Lactose-free milk is in the fridge", *steve.Note)
	assert.Equal(t, int8(15), steve.Age)
	assert.Contains(t, steve.Source, "visitors.hcl:8")

	visitors, err := model.BuildVisitors()
	require.NoError(t, err)
	assert.Equal(t, visitor.Seed(), visitors)
}

func TestLoad_DirectoryInLexicalOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "b.hcl", `visitor "second" {
  greeting = "2"
  action   = "refuse"
}`)
	writeFile(t, dir, "a.hcl", `visitor "first" {
  greeting = "1"
  action   = "accept"
}`)
	writeFile(t, dir, "README.md", "not hcl")

	model, err := NewLoader().Load(testContext(t), dir)
	require.NoError(t, err)
	require.Len(t, model.Visitors, 2)
	assert.Equal(t, "first", model.Visitors[0].Name)
	assert.Equal(t, "second", model.Visitors[1].Name)
	assert.Equal(t, int8(0), model.Visitors[1].Age, "age defaults to zero")
}

func TestLoad_AgeConversion(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		age     string
		want    int8
		wantErr string
	}{
		{name: "number", age: "20", want: 20},
		{name: "numeric string", age: `"21"`, want: 21},
		{name: "expression", age: "10 + 5", want: 15},
		{name: "negative", age: "-1", want: -1},
		{name: "null", age: "null", want: 0},
		{name: "too old", age: "200", wantErr: "invalid age"},
		{name: "fraction", age: "1.5", wantErr: "invalid age"},
		{name: "not a number", age: `"old"`, wantErr: "invalid age"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, t.TempDir(), "v.hcl", `visitor "ann" {
  greeting = "hi"
  action   = "accept"
  age      = `+tc.age+`
}`)

			model, err := NewLoader().Load(testContext(t), path)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, model.Visitors, 1)
			assert.Equal(t, tc.want, model.Visitors[0].Age)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "syntax error",
			content: `visitor "x" {`,
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "missing greeting",
			content: `visitor "x" { action = "accept" }`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "unknown block",
			content: `guest "x" {}`,
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "unknown attribute",
			content: "visitor \"x\" {\n greeting = \"a\"\n action = \"accept\"\n mood = \"happy\"\n}",
			wantErr: "failed to decode HCL file",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeFile(t, t.TempDir(), "v.hcl", tc.content)
			_, err := NewLoader().Load(testContext(t), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(testContext(t), filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
