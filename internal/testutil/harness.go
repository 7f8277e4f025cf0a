package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/treehouse/internal/app"
	"github.com/specialistvlad/treehouse/internal/hcl"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Session describes one scripted console run.
type Session struct {
	// Lines are fed to stdin, each followed by a newline.
	Lines []string
	// Files are written into a temporary directory which then becomes the
	// visitors path. Leave empty to use the built-in list.
	Files map[string]string
}

// HarnessResult holds the outcomes of a scripted run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunSession builds an App with the real HCL loader and runs it against
// the scripted input.
func RunSession(t *testing.T, s Session) *HarnessResult {
	t.Helper()

	cfg := &app.Config{LogLevel: "debug", LogFormat: "text"}
	if len(s.Files) > 0 {
		dir := t.TempDir()
		for name, content := range s.Files {
			p := filepath.Join(dir, name)
			require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
			require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		}
		cfg.VisitorsPath = dir
	}

	var in strings.Builder
	for _, line := range s.Lines {
		in.WriteString(line)
		in.WriteString("\n")
	}

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	ctx := context.Background()

	testApp, err := app.NewApp(ctx, strings.NewReader(in.String()), out, logs, cfg, hcl.NewLoader())
	if err == nil {
		err = testApp.Run(ctx)
	}

	if os.Getenv("TREEHOUSE_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       err,
		App:       testApp,
	}
}
