package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetidy/codetidy/pkg/syntax"
)

func parseFile(t *testing.T, input string) *syntax.SourceFile {
	t.Helper()
	file, err := Parse("test.src", input)
	require.NoError(t, err)
	require.NotNil(t, file.Root)
	return file
}

func TestParseVarDecl(t *testing.T) {
	file := parseFile(t, "int count = 0;")

	require.Len(t, file.Root.Children, 1)
	decl := file.Root.Children[0]
	assert.Equal(t, syntax.KindVarDecl, decl.Kind)
	assert.Equal(t, "count", decl.Name)
	assert.Equal(t, "int", decl.TypeName)
	require.Len(t, decl.Children, 1)
	assert.Equal(t, syntax.KindLiteral, decl.Children[0].Kind)
}

func TestParseFuncDecl(t *testing.T) {
	file := parseFile(t, `int add(int a, int b) {
	return a + b;
}`)

	fn := file.Root.Children[0]
	require.Equal(t, syntax.KindFuncDecl, fn.Kind)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, "int", fn.TypeName)
	assert.Len(t, fn.Parameters(), 2)

	body := fn.Body()
	require.NotNil(t, body)
	require.Len(t, body.Children, 1)
	ret := body.Children[0]
	assert.Equal(t, syntax.KindReturn, ret.Kind)
	require.Len(t, ret.Children, 1)
	assert.Equal(t, syntax.KindBinary, ret.Children[0].Kind)
	assert.Equal(t, "+", ret.Children[0].Operator)
}

func TestParseUntypedParams(t *testing.T) {
	file := parseFile(t, "void f(a, b, c, d) {}")

	fn := file.Root.Children[0]
	params := fn.Parameters()
	require.Len(t, params, 4)
	assert.Equal(t, "a", params[0].Name)
	assert.Empty(t, params[0].TypeName)
}

func TestParseClassDecl(t *testing.T) {
	file := parseFile(t, `public class Order {
	private int total;
	bool paid;

	public int getTotal() {
		return total;
	}
}`)

	cls := file.Root.Children[0]
	require.Equal(t, syntax.KindClassDecl, cls.Kind)
	assert.Equal(t, "Order", cls.Name)
	assert.Equal(t, "public", cls.Visibility)
	require.Len(t, cls.Children, 3)

	assert.Equal(t, syntax.KindFieldDecl, cls.Children[0].Kind)
	assert.Equal(t, "private", cls.Children[0].Visibility)
	assert.Equal(t, syntax.KindFieldDecl, cls.Children[1].Kind)
	assert.Empty(t, cls.Children[1].Visibility)
	assert.True(t, cls.Children[1].IsBoolean())
	assert.Equal(t, syntax.KindFuncDecl, cls.Children[2].Kind)
}

func TestParseInterfaceDecl(t *testing.T) {
	file := parseFile(t, `interface IShape {
	int area();
	void scale(int factor);
}`)

	iface := file.Root.Children[0]
	require.Equal(t, syntax.KindInterfaceDecl, iface.Kind)
	assert.Equal(t, "IShape", iface.Name)
	require.Len(t, iface.Children, 2)
	assert.Equal(t, syntax.KindFuncDecl, iface.Children[0].Kind)
	assert.Nil(t, iface.Children[0].Body())
}

func TestParseConditionalNormalizesBranches(t *testing.T) {
	file := parseFile(t, `void f(int x) {
	if (!isReady())
		x = 1;
	else {
		x = 2;
	}
}`)

	body := file.Root.Children[0].Body()
	cond := body.Children[0]
	require.Equal(t, syntax.KindConditional, cond.Kind)
	require.Len(t, cond.Children, 3)

	guard := cond.Condition()
	require.NotNil(t, guard)
	assert.Equal(t, syntax.KindUnary, guard.Kind)
	assert.Equal(t, "!", guard.Operator)
	require.Len(t, guard.Children, 1)
	assert.Equal(t, syntax.KindCall, guard.Children[0].Kind)
	assert.Equal(t, "isReady", guard.Children[0].Name)

	// Both branches are blocks even when the source used a bare statement.
	assert.Equal(t, syntax.KindBlock, cond.Children[1].Kind)
	assert.Equal(t, syntax.KindBlock, cond.Children[2].Kind)
}

func TestParseWhileLoop(t *testing.T) {
	file := parseFile(t, `void f(bool done) {
	while (!done) {
		done = check();
	}
}`)

	body := file.Root.Children[0].Body()
	loop := body.Children[0]
	require.Equal(t, syntax.KindLoop, loop.Kind)
	assert.Equal(t, "while", loop.Operator)
	assert.Equal(t, syntax.KindUnary, loop.Condition().Kind)

	inner := loop.Body().Children[0]
	assert.Equal(t, syntax.KindAssign, inner.Kind)
}

func TestParseForLoopFoldsClauses(t *testing.T) {
	file := parseFile(t, `void f() {
	for (int i = 0; i < 10; i = i + 1) {
		work(i);
	}
}`)

	loop := file.Root.Children[0].Body().Children[0]
	require.Equal(t, syntax.KindLoop, loop.Kind)
	assert.Equal(t, "for", loop.Operator)

	guard := loop.Condition()
	require.NotNil(t, guard)
	assert.Equal(t, syntax.KindBinary, guard.Kind)
	assert.Equal(t, "<", guard.Operator)

	// init, body statement, and post all live in the block
	block := loop.Body()
	require.NotNil(t, block)
	assert.Equal(t, syntax.KindVarDecl, block.Children[0].Kind)
	assert.Equal(t, syntax.KindAssign, block.Children[len(block.Children)-1].Kind)
}

func TestParseDottedCall(t *testing.T) {
	file := parseFile(t, `void f(Order order) {
	order.items.clear();
}`)

	call := file.Root.Children[0].Body().Children[0]
	require.Equal(t, syntax.KindCall, call.Kind)
	assert.Equal(t, "order.items.clear", call.Name)
}

func TestParseCommentsBecomeNodes(t *testing.T) {
	file := parseFile(t, `// leading note
int x;
/* trailing */`)

	kinds := make([]syntax.NodeKind, 0, len(file.Root.Children))
	for _, c := range file.Root.Children {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []syntax.NodeKind{
		syntax.KindComment, syntax.KindVarDecl, syntax.KindComment,
	}, kinds)
	assert.Equal(t, "leading note", file.Root.Children[0].Text)
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("bad.src", "int ;")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 1, parseErr.Pos.Line)
	assert.Contains(t, parseErr.Error(), "unexpected token")
}

func TestParseErrorNoPartialTree(t *testing.T) {
	file, err := Parse("bad.src", "class {")
	assert.Error(t, err)
	assert.Nil(t, file)
}

func TestOperatorPrecedence(t *testing.T) {
	file := parseFile(t, "bool r = a || b && c == d + e * f;")

	expr := file.Root.Children[0].Children[0]
	require.Equal(t, syntax.KindBinary, expr.Kind)
	assert.Equal(t, "||", expr.Operator)

	and := expr.Children[1]
	assert.Equal(t, "&&", and.Operator)
	eq := and.Children[1]
	assert.Equal(t, "==", eq.Operator)
	add := eq.Children[1]
	assert.Equal(t, "+", add.Operator)
	mul := add.Children[1]
	assert.Equal(t, "*", mul.Operator)
}

func TestSpansWithinBounds(t *testing.T) {
	input := `public class Inventory {
	private bool empty = true;

	public int countItems(int shelf) {
		int total = 0;
		while (total < shelf) {
			total = total + 1;
		}
		return total;
	}
}`
	file := parseFile(t, input)

	syntax.Walk(file.Root, func(n *syntax.Node) bool {
		assert.GreaterOrEqual(t, n.Span.Start.Offset, 0, "%s start", n.Kind)
		assert.LessOrEqual(t, n.Span.Start.Offset, n.Span.End.Offset, "%s ordering", n.Kind)
		assert.LessOrEqual(t, n.Span.End.Offset, len(input), "%s end", n.Kind)
		return true
	})
}
