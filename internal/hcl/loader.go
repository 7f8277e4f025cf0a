package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/treehouse/internal/config"
	"github.com/specialistvlad/treehouse/internal/ctxlog"
	"github.com/specialistvlad/treehouse/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL seed loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileSchema is the top-level schema of a seed file. Anything other than
// `visitor` blocks is rejected.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "visitor", LabelNames: []string{"name"}},
	},
}

// visitorBody mirrors the body of a `visitor "<name>" { ... }` block.
type visitorBody struct {
	Greeting string    `hcl:"greeting"`
	Action   string    `hcl:"action"`
	Note     *string   `hcl:"note,optional"`
	Age      cty.Value `hcl:"age,optional"`
}

// Load parses every .hcl file under the given paths and merges their
// visitor blocks into one model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		content, diags := hclFile.Body.Content(fileSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range content.Blocks {
			var body visitorBody
			if diags := gohcl.DecodeBody(block.Body, nil, &body); diags.HasErrors() {
				return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
			}

			def, err := translateVisitor(block, &body)
			if err != nil {
				return nil, err
			}
			model.Visitors = append(model.Visitors, def)
		}
		logger.Debug("HCL file loaded.", "file", file, "visitors", len(content.Blocks))
	}

	logger.Debug("HCL loading complete.", "visitors", len(model.Visitors))
	return model, nil
}
