// Package input locates and reads puzzle input files.
//
// Inputs live in one directory, one file per (event, quest, part):
//
//	<root>/everybody_codes_e<event>_q<quest:02>_p<part>.txt
//
// Load returns the file's text with surrounding whitespace trimmed, or an
// error wrapping ErrInputNotFound when the file is missing. MustLoad
// panics instead, for solvers that cannot continue without their input.
//
// The root defaults to ./inputs and can be overridden with the
// QUESTGRID_INPUTS environment variable (see Root).
package input
