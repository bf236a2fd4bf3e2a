// Package bind hands the resolved effective defaults to the final CLI parse.
//
// A Binder builds a pflag.FlagSet from a schema: one flag per leaf field,
// nested records flattened with dots (model.num-layers), underscores and
// dashes interchangeable. Registered flag defaults come from the
// effective-defaults instance, so generated help text reflects every merged
// file layer rather than the bare schema defaults.
//
// Parse re-reads the full original argument list, overlays the flags the
// user actually set onto the defaults, and re-projects through the schema so
// CLI values get the same coercion and validation as file values.
package bind
