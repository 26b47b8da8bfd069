// Package tfile reads and writes transform files.
//
// A file is a YAML document holding a list of transform records, each with a
// class name, input/output space dimensions, fixed parameters and
// parameters; composite records nest child records.
//
// Reading follows a lenient policy: only the leading record is used, and
// extra records are ignored with a warning surfaced through the Observer
// callback rather than by failing the call. A non-composite leading record
// is wrapped as the sole child of a fresh composite, so every loaded handle
// is a composite.
package tfile
