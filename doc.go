// Package xvg reads datasets from XVG files, the line-oriented plot-data
// format produced by Grace and by tools such as GROMACS.
//
// An XVG file mixes three kinds of lines: metadata directives prefixed with
// '@', comments prefixed with '#', and whitespace-delimited numeric data
// rows. A '//' line separates datasets; this package reads only the first
// dataset and stops at the first separator.
//
// A parsed dataset is a Table: the numeric rows as a gonum mat.Dense plus
// the metadata the directives declared (title, axis labels, and column
// names registered by 'sN legend' directives, where legend index N names
// data column N+1).
//
// Usage Example:
//
//	table, err := xvg.FromFile("energy.xvg")
//	if err != nil {
//	    // Handle error
//	}
//	potential, err := table.Column("Potential")
//	if err != nil {
//	    // Handle error
//	}
//	_ = potential.AtVec(0)
//
// Directives the reader does not understand are skipped; callers that need
// them can attach a handler with RegisterDirective.
package xvg
