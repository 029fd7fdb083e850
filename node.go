package cline

// CommandFunc is the action bound to a registered command. It receives the
// residual arguments: the tokens left over after the longest registered path
// has been consumed. Whatever error it returns is handed back to the Exec
// caller untouched; the core neither wraps nor inspects it.
type CommandFunc func(args []string) error

// CompleteFunc produces dynamic suggestions for tokens past a registered
// path, for completion over values only known at runtime (session names,
// open files, and so on). It receives the unconsumed tokens, the last of
// which is the partial word being completed (possibly empty).
type CompleteFunc func(args []string) []string

// Resolution is the outcome of resolving a token sequence against the tree.
type Resolution struct {
	Node    *CommandNode
	Args    []string
	Execute CommandFunc
}

// CommandNode is one token position in the command namespace. A node with a
// non-nil Action is a terminal, executable command; it may still have
// children ("foo" and "foo bar" can both be registered).
type CommandNode struct {
	Token    string
	Path     []string
	Children map[string]*CommandNode
	Action   CommandFunc
	Complete CompleteFunc
}

func newNode(token string, parent *CommandNode) *CommandNode {
	node := &CommandNode{
		Token:    token,
		Children: make(map[string]*CommandNode),
	}
	if parent != nil {
		node.Path = append(append([]string{}, parent.Path...), token)
		parent.Children[token] = node
	}
	return node
}

// child returns the existing child for token, creating it if absent.
func (n *CommandNode) child(token string) *CommandNode {
	if c, ok := n.Children[token]; ok {
		return c
	}
	return newNode(token, n)
}
