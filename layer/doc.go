// Package layer loads configuration layers from YAML files into raw mappings.
//
// A layer is one source of configuration values at a fixed precedence rank.
// The loader distinguishes two absence policies:
//   - Load: the path was supplied explicitly (a user --config file), so a
//     missing, unreadable, or undecodable file is a LoadError
//   - LoadOptional: the path is a convention-based default file, so absence
//     yields an empty mapping without error
//
// LoadUser folds an ordered list of user config files through the merger,
// first path lowest precedence, and reports the last path loaded.
//
// The Source interface is the seam underneath Load: FileSource reads from
// the filesystem, and FromSource decodes whatever a Source returns, which
// lets tests and non-file callers supply document bytes directly.
package layer
