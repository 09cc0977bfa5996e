package xvg

import "github.com/puzpuzpuz/xsync/v3"

// DirectiveFunc handles a header directive that the built-in dispatch would
// otherwise skip. It receives the table being parsed and the unquoted
// tokens following the command; a non-nil error aborts the parse.
type DirectiveFunc func(t *Table, args []string) error

var directives = xsync.NewMapOf[string, DirectiveFunc]()

// RegisterDirective attaches fn to command for every subsequent parse in
// the process. Handlers are consulted only for directives the built-in
// dispatch skips; the title, xaxis, yaxis and 'sN legend' directives cannot
// be overridden.
//
// Registration is safe while other goroutines are parsing.
func RegisterDirective(command string, fn DirectiveFunc) {
	directives.Store(command, fn)
}

// UnregisterDirective removes the handler for command, if any.
func UnregisterDirective(command string) {
	directives.Delete(command)
}
