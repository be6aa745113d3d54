package lint

import (
	"github.com/codetidy/codetidy/pkg/syntax"
)

// SymbolTable maps declared names to their declaration nodes across a
// stack of lexical scope frames. The analyzer pushes a frame on entering
// a scope-introducing node and pops it on exit; rules only read.
type SymbolTable struct {
	frames []map[string]*syntax.Node
}

// NewSymbolTable creates a symbol table with no frames.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{}
}

// Push adds a new scope frame.
func (s *SymbolTable) Push() {
	s.frames = append(s.frames, make(map[string]*syntax.Node))
}

// Pop removes the innermost scope frame.
func (s *SymbolTable) Pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// Declare records a declaration in the innermost frame.
func (s *SymbolTable) Declare(name string, decl *syntax.Node) {
	if name == "" || len(s.frames) == 0 {
		return
	}
	s.frames[len(s.frames)-1][name] = decl
}

// Lookup resolves a name from the innermost frame outward.
func (s *SymbolTable) Lookup(name string) (*syntax.Node, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if decl, ok := s.frames[i][name]; ok {
			return decl, true
		}
	}
	return nil, false
}

// Depth returns the number of live frames. After a full analysis pass it
// must be zero: every push is matched by exactly one pop.
func (s *SymbolTable) Depth() int {
	return len(s.frames)
}

// Context is the read-only view handed to each rule invocation. Rules
// must not mutate it or anything reachable from it.
type Context struct {
	File    *syntax.SourceFile
	Symbols *SymbolTable

	// fileSymbols indexes every declared name in the file, built in a
	// prepass so rules can check references regardless of scope position.
	fileSymbols map[string]*syntax.Node

	// ancestors is the walk stack from the root down to the current
	// node's parent. Owned by the analyzer; rules see it via Ancestors.
	ancestors []*syntax.Node
}

// NewContext creates a context for one file analysis pass.
func NewContext(file *syntax.SourceFile) *Context {
	ctx := &Context{
		File:        file,
		Symbols:     NewSymbolTable(),
		fileSymbols: make(map[string]*syntax.Node),
	}
	if file != nil && file.Root != nil {
		syntax.Walk(file.Root, func(n *syntax.Node) bool {
			if n.IsDeclaration() {
				ctx.fileSymbols[n.Name] = n
			}
			return true
		})
	}
	return ctx
}

// Ancestors returns the ancestor chain of the current node, outermost
// first. The returned slice is a copy; mutating it has no effect on the
// walk.
func (c *Context) Ancestors() []*syntax.Node {
	out := make([]*syntax.Node, len(c.ancestors))
	copy(out, c.ancestors)
	return out
}

// Parent returns the immediate parent of the current node, or nil at the
// root.
func (c *Context) Parent() *syntax.Node {
	if len(c.ancestors) == 0 {
		return nil
	}
	return c.ancestors[len(c.ancestors)-1]
}

// EnclosingFunc returns the nearest enclosing function declaration, or
// nil when the current node is not inside one.
func (c *Context) EnclosingFunc() *syntax.Node {
	return c.nearest(syntax.KindFuncDecl)
}

// EnclosingClass returns the nearest enclosing class declaration, or nil.
func (c *Context) EnclosingClass() *syntax.Node {
	return c.nearest(syntax.KindClassDecl)
}

// EnclosingLoop returns the nearest enclosing loop, or nil.
func (c *Context) EnclosingLoop() *syntax.Node {
	return c.nearest(syntax.KindLoop)
}

func (c *Context) nearest(kind syntax.NodeKind) *syntax.Node {
	for i := len(c.ancestors) - 1; i >= 0; i-- {
		if c.ancestors[i].Kind == kind {
			return c.ancestors[i]
		}
	}
	return nil
}

// DeclaredInFile returns true if name is declared anywhere in the file.
func (c *Context) DeclaredInFile(name string) bool {
	_, ok := c.fileSymbols[name]
	return ok
}

// FileDeclaration returns the declaration node for a name anywhere in
// the file tree.
func (c *Context) FileDeclaration(name string) (*syntax.Node, bool) {
	decl, ok := c.fileSymbols[name]
	return decl, ok
}

// push/pop maintain the ancestor chain during the walk.
func (c *Context) pushAncestor(n *syntax.Node) {
	c.ancestors = append(c.ancestors, n)
}

func (c *Context) popAncestor() {
	if len(c.ancestors) > 0 {
		c.ancestors = c.ancestors[:len(c.ancestors)-1]
	}
}
