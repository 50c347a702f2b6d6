// Package domain contains the core domain model for chromix.
//
// The domain is storage- and presentation-agnostic: it does not depend on YAML
// parsing, terminal rendering, or the filesystem. Color math lives in the
// colorspace package; infra/adapters map into/from these types.
package domain
