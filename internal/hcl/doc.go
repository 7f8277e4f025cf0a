// Package hcl provides the concrete HCL implementation of config.Loader.
// It parses seed visitor files, translates `visitor` blocks into the
// format-agnostic config.Model, and binds numeric values through cty so that
// ages are range-checked against the int8 used by the runtime model.
package hcl
