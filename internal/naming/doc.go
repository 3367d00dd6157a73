// Package naming derives canonical, filesystem-safe titles from file names.
//
// The extractor removes a recognized date substring from the name when the
// date sits at the start or end; a date embedded in the middle of a title is
// rejected rather than split around. When the remainder is not usable as a
// filesystem name the whole base name serves as the title, so title
// extraction alone never fails a placement.
package naming
