package parser

import (
	"strings"

	"chaic/internal/ast"
	"chaic/internal/report"
	"chaic/internal/token"
	"chaic/internal/types"
)

// exprNode is an intermediate binary tree built during precedence-climbing
// parsing. A leaf node wraps one already-built ast.Node (a Literal,
// VariableExpression, FunctionCall, Dereference, or IndexExpression); an
// internal node holds a pending BinaryExpressionType plus its two operand
// subtrees. The tree exists only to get operator precedence right before
// flattening into the RPN sequence Expression actually stores.
type exprNode struct {
	leaf        ast.Node
	op          ast.BinaryExpressionType
	left, right *exprNode
	vt          types.VariableType
}

// parseExpressionUntilLineEnd parses one full expression and flattens it
// into the RPN child sequence spec §4.4/§4.5's Expression container holds,
// then consumes the trailing EndLine.
func (p *Parser) parseExpressionUntilLineEnd() *ast.Expression {
	root := p.parseExpr(0)
	expr := flatten(root)
	p.expect(token.EndLine)
	return expr
}

// binOpOf maps an operator token kind to its BinaryExpressionType and
// binding precedence (higher binds tighter). NeqOp has no entry: the AST's
// BinaryExpressionType enum has no Neq member, so "!=" is lexed but not
// parseable by this front end.
func binOpOf(kind token.Kind) (ast.BinaryExpressionType, int, bool) {
	switch kind {
	case token.Assign:
		return ast.Assignment, 0, true
	case token.LessOp:
		return ast.Less, 1, true
	case token.LessEqOp:
		return ast.LessEq, 1, true
	case token.GreaterOp:
		return ast.Greater, 1, true
	case token.GreaterEqOp:
		return ast.GreaterEq, 1, true
	case token.EqOp:
		return ast.Eq, 1, true
	case token.AddOp:
		return ast.Add, 2, true
	case token.SubOp:
		return ast.Sub, 2, true
	case token.MulOp:
		return ast.Mul, 3, true
	case token.DivOp:
		return ast.Div, 3, true
	case token.ModOp:
		return ast.Mod, 3, true
	default:
		return 0, 0, false
	}
}

// parseExpr implements precedence climbing: it keeps folding in operators
// at or above minPrec, recursing at prec+1 for everything left-associative
// and at prec for the single right-associative case, assignment.
func (p *Parser) parseExpr(minPrec int) *exprNode {
	left := p.parseUnary()

	for {
		op, prec, ok := binOpOf(p.cur().Kind)
		if !ok || prec < minPrec {
			break
		}
		p.next()

		nextMinPrec := prec + 1
		if op == ast.Assignment {
			nextMinPrec = prec
		}
		right := p.parseExpr(nextMinPrec)

		vt := left.vt
		if op != ast.Assignment {
			vt = combineTypes(left.vt, right.vt)
		}
		left = &exprNode{op: op, left: left, right: right, vt: vt}
	}

	return left
}

// parseUnary handles the two prefix operators this front end lexes:
// DereferenceOp (SPEC_FULL.md §C's Dereference node) and a leading '-',
// rewritten as "0 - operand" since there is no dedicated negation node.
func (p *Parser) parseUnary() *exprNode {
	switch p.cur().Kind {
	case token.DereferenceOp:
		p.next()
		operand := p.parseUnary()
		return &exprNode{leaf: ast.NewDereference(materialize(operand)), vt: operand.vt}
	case token.SubOp:
		p.next()
		operand := p.parseUnary()
		zero := &exprNode{
			leaf: ast.NewLiteral("0", types.NewPrimitive(operand.vt, types.RValue)),
			vt:   operand.vt,
		}
		return &exprNode{op: ast.Sub, left: zero, right: operand, vt: operand.vt}
	default:
		return p.parsePostfix(p.parsePrimary())
	}
}

// parsePostfix chains IndexOperator suffixes onto an already-parsed
// primary (spec §4.2 names the token, SPEC_FULL.md §C supplies its
// IndexExpression lowering contract). Default already spliced the body's
// tokens between IndexOperator's OpenBracket/CloseBracket bookends.
func (p *Parser) parsePostfix(base *exprNode) *exprNode {
	for p.cur().Kind == token.IndexOperator {
		p.next()
		p.expect(token.OpenBracket)
		index := p.parseExpr(0)
		p.expect(token.CloseBracket)

		node := ast.NewIndexExpression(materialize(base), materialize(index))
		base = &exprNode{leaf: node, vt: base.vt}
	}
	return base
}

// parsePrimary parses a single atom: a literal, a variable reference, a
// call, or a parenthesized sub-expression.
func (p *Parser) parsePrimary() *exprNode {
	tok := p.cur()

	switch tok.Kind {
	case token.RValueNumber, token.RValueString, token.RValueChar:
		p.next()
		typ := literalType(tok)
		return &exprNode{leaf: ast.NewLiteral(tok.Lexeme, typ), vt: typ.Get()}

	case token.VariableReference:
		p.next()
		return &exprNode{leaf: ast.NewVariableExpression(tok.Lexeme), vt: p.scope.lookup(tok.Lexeme)}

	case token.FunctionCall:
		return p.parseCallExpr()

	case token.OpenBracket:
		p.next()
		inner := p.parseExpr(0)
		p.expect(token.CloseBracket)
		return inner

	default:
		report.Fatal("parser", "expected an expression, found token kind %d", tok.Kind)
		return nil
	}
}

// parseCallExpr parses a FunctionCall token through its spliced argument
// run to the trailing CloseBracket (internal/lexer's scanFunctionCallArguments
// emits no StartFunctionParameters/OpenBracket of its own -- only the
// sub-tokenized arguments, Comma-separated, then one CloseBracket).
func (p *Parser) parseCallExpr() *exprNode {
	name := p.expect(token.FunctionCall).Lexeme

	var args []types.Argument
	for p.cur().Kind != token.CloseBracket {
		args = append(args, p.parseArgument())
		if p.cur().Kind == token.Comma {
			p.next()
		}
	}
	p.expect(token.CloseBracket)

	vt := p.funcs[name].returnType
	return &exprNode{leaf: ast.NewFunctionCall(name, args), vt: vt}
}

// parseArgument parses one call argument. types.Argument can only
// represent a literal or a bare variable reference (confirmed against
// internal/lowering's call-lowering code, which never recurses into a
// nested expression for an argument), so anything more complex is
// rejected here rather than silently mishandled downstream.
func (p *Parser) parseArgument() types.Argument {
	tok := p.cur()

	switch tok.Kind {
	case token.RValueNumber, token.RValueString, token.RValueChar:
		p.next()
		return types.Argument{Field: literalType(tok), Data: tok.Lexeme}

	case token.VariableReference:
		p.next()
		vt := p.scope.lookup(tok.Lexeme)
		return types.Argument{Field: types.NewPrimitive(vt, types.LValue), Data: tok.Lexeme}

	default:
		report.Fatal("parser", "call arguments must be a literal or a bare variable reference, found token kind %d", tok.Kind)
		return types.Argument{}
	}
}

// literalType infers an RValue AbstractType from a literal token: numbers
// with a '.' are Float64, otherwise Int32; strings and chars map directly.
func literalType(tok token.Token) types.AbstractType {
	switch tok.Kind {
	case token.RValueString:
		return types.NewPrimitive(types.String, types.RValue)
	case token.RValueChar:
		return types.NewPrimitive(types.Int8, types.RValue)
	default:
		if strings.Contains(tok.Lexeme, ".") {
			return types.NewPrimitive(types.Float64, types.RValue)
		}
		return types.NewPrimitive(types.Int32, types.RValue)
	}
}

// combineTypes picks the operand type two sides of a math/comparison
// operator should be cast to before the operation: float wins over
// integer, otherwise the left operand's type governs.
func combineTypes(lhs, rhs types.VariableType) types.VariableType {
	if lhs.IsFloat() || rhs.IsFloat() {
		return types.Float64
	}
	return lhs
}

// materialize turns an exprNode into the single ast.Node its consumer
// needs: the leaf itself, or a freshly flattened Expression wrapping an
// internal binary subtree.
func materialize(n *exprNode) ast.Node {
	if n.leaf != nil {
		return n.leaf
	}
	return flatten(n)
}

// flatten walks an exprNode tree postorder, producing the flat RPN
// sequence Expression holds: operand, operand, operator (spec §4.4/§4.5).
// This matches internal/lowering's stack-based reassembly, which pops
// RHS then LHS off the top of the stack it is building.
func flatten(n *exprNode) *ast.Expression {
	var seq []ast.Node
	var walk func(*exprNode)
	walk = func(n *exprNode) {
		if n.leaf != nil {
			seq = append(seq, n.leaf)
			return
		}
		walk(n.left)
		walk(n.right)
		seq = append(seq, ast.NewBinaryExpression(n.op, types.NewPrimitive(n.vt, types.RValue)))
	}
	walk(n)
	return ast.NewExpression(seq...)
}
