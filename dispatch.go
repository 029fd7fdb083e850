package cline

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Options configures a Dispatcher.
type Options struct {
	// StrictRegistration makes registering an already-registered path fail
	// with ErrDuplicateCommand instead of overwriting the earlier callback.
	StrictRegistration bool
}

// Dispatcher is the facade a host read-loop talks to. It owns the command
// tree and nothing else; every call is stateless with respect to prior calls.
type Dispatcher struct {
	tree *CommandTree
}

// New returns an empty Dispatcher with default options: duplicate
// registrations overwrite.
func New() *Dispatcher {
	return NewWith(Options{})
}

// NewWith returns an empty Dispatcher with the given options.
func NewWith(opts Options) *Dispatcher {
	return &Dispatcher{tree: newCommandTree(opts.StrictRegistration)}
}

// Register binds fn to the command path. The host does any string splitting
// before calling; path tokens must be non-empty.
func (d *Dispatcher) Register(path []string, fn CommandFunc) error {
	return d.tree.Register(path, fn)
}

// RegisterDynamic additionally binds a dynamic completion callback for
// tokens past the registered path.
func (d *Dispatcher) RegisterDynamic(path []string, fn CommandFunc, complete CompleteFunc) error {
	return d.tree.RegisterDynamic(path, fn, complete)
}

// Complete tokenizes line and returns the candidate next tokens, sorted.
// A line ending in whitespace (or an empty line) completes the next position:
// "task " suggests every subcommand of task, "" suggests the top-level
// commands, "task a" suggests task subcommands starting with "a".
func (d *Dispatcher) Complete(line string) []string {
	return d.tree.Complete(completionTokens(line))
}

// Exec tokenizes line, resolves it against the tree, and invokes the matched
// callback synchronously with the residual arguments. Resolution failure is
// reported as an *Error with ErrNoMatch; a callback error comes back verbatim.
func (d *Dispatcher) Exec(line string) error {
	res, err := d.tree.Resolve(strings.Fields(line))
	if err != nil {
		return err
	}
	return res.Execute(res.Args)
}

// Paths returns every registered command path in lexicographic order.
func (d *Dispatcher) Paths() [][]string {
	return d.tree.Paths()
}

// completionTokens splits line on runs of whitespace, keeping an empty final
// token when the line ends mid-whitespace so the tree sees "complete the
// next position" rather than "complete the last word".
func completionTokens(line string) []string {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	last, _ := utf8.DecodeLastRuneInString(line)
	if unicode.IsSpace(last) {
		tokens = append(tokens, "")
	}
	return tokens
}
