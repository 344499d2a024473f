// Package annotation sits at the boundary with the annotator that turns raw
// instruction text into domain.Instruction records.
//
// Heuristic is a dependency-free annotator that recognizes "if"/"when"
// conditionals and "otherwise" alternatives and extracts a leading verb and its
// object. Records produced elsewhere (JSON or YAML lists of loose maps) are
// converted with Decode and Parse.
package annotation
