package cline

import "sort"

// CommandTree owns the registered command namespace. The zero value is not
// usable; construct through a Dispatcher or newCommandTree.
type CommandTree struct {
	root   *CommandNode
	strict bool
}

func newCommandTree(strict bool) *CommandTree {
	return &CommandTree{
		root:   newNode("", nil),
		strict: strict,
	}
}

// Register binds fn to the command identified by path, creating any missing
// intermediate nodes. Re-registering a path overwrites the previous callback
// unless the tree is strict, in which case ErrDuplicateCommand is returned
// and the earlier callback survives.
func (t *CommandTree) Register(path []string, fn CommandFunc) error {
	return t.register(path, fn, nil)
}

// RegisterDynamic is Register plus a dynamic completion callback, consulted
// when completion runs past the end of the registered path.
func (t *CommandTree) RegisterDynamic(path []string, fn CommandFunc, complete CompleteFunc) error {
	return t.register(path, fn, complete)
}

func (t *CommandTree) register(path []string, fn CommandFunc, complete CompleteFunc) error {
	if len(path) == 0 {
		return InvalidRegistration("empty command path")
	}
	for _, tok := range path {
		if tok == "" {
			return InvalidRegistration("empty token in command path")
		}
	}

	// Validation is done; from here the walk only adds nodes.
	current := t.root
	for _, tok := range path {
		current = current.child(tok)
	}

	if t.strict && current.Action != nil {
		return DuplicateCommand(path)
	}

	current.Action = fn
	current.Complete = complete
	return nil
}

// Resolve walks tokens from the root following exact-match children,
// descending as long as the next token matches a child (longest match wins
// over stopping at a shallower terminal node). The node where the walk stops
// must be terminal; the unconsumed tokens become residual arguments.
func (t *CommandTree) Resolve(tokens []string) (Resolution, error) {
	current := t.root
	consumed := 0

	for _, tok := range tokens {
		child, ok := current.Children[tok]
		if !ok {
			break
		}
		current = child
		consumed++
	}

	if current.Action == nil {
		return Resolution{}, NoMatch(tokens)
	}

	return Resolution{
		Node:    current,
		Args:    tokens[consumed:],
		Execute: current.Action,
	}, nil
}

// Paths returns every registered terminal path in lexicographic order.
func (t *CommandTree) Paths() [][]string {
	var paths [][]string
	collectPaths(t.root, &paths)
	sort.Slice(paths, func(i, j int) bool {
		return lessPath(paths[i], paths[j])
	})
	return paths
}

func collectPaths(node *CommandNode, out *[][]string) {
	if node.Action != nil {
		*out = append(*out, append([]string{}, node.Path...))
	}
	for _, child := range node.Children {
		collectPaths(child, out)
	}
}

func lessPath(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
