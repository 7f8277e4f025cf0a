// Package config defines the format-agnostic model for seed visitor lists,
// along with the Loader interface that concrete formats implement.
//
// The App only ever sees a config.Model; the HCL implementation lives in
// the `hcl` package.
package config
