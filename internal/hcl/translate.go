package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/treehouse/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateVisitor converts a decoded block into the format-agnostic model.
func translateVisitor(block *hcl.Block, body *visitorBody) (*config.VisitorDefinition, error) {
	source := block.DefRange.String()
	name := block.Labels[0]

	age, err := decodeAge(body.Age)
	if err != nil {
		return nil, fmt.Errorf("%s: visitor %q: invalid age: %w", source, name, err)
	}

	return &config.VisitorDefinition{
		Name:     name,
		Greeting: body.Greeting,
		Action:   body.Action,
		Note:     body.Note,
		Age:      age,
		Source:   source,
	}, nil
}

// decodeAge accepts numbers and numeric strings. A missing or null age is 0.
func decodeAge(val cty.Value) (int8, error) {
	if val.IsNull() {
		return 0, nil
	}
	if !val.IsWhollyKnown() {
		return 0, fmt.Errorf("value must be known")
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, err
	}

	var age int8
	if err := gocty.FromCtyValue(num, &age); err != nil {
		return 0, err
	}
	return age, nil
}
