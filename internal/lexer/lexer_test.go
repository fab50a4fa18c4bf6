package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"chaic/internal/lexer"
	"chaic/internal/token"
)

func tok(kind token.Kind, lexeme string) token.Token {
	return token.New(kind, lexeme)
}

func assertTokens(t *testing.T, source string, want []token.Token) {
	t.Helper()
	got := lexer.Tokenize(source)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token stream mismatch (-want +got):\n%s", diff)
	}
}

func TestVariableDeclarationAndAssignment(t *testing.T) {
	assertTokens(t, "int32 x\nx = 3 + 4\n", []token.Token{
		tok(token.Int32Type, "int32"),
		tok(token.VariableName, "x"),
		tok(token.EndLine, ""),
		tok(token.VariableReference, "x"),
		tok(token.Assign, "="),
		tok(token.RValueNumber, "3"),
		tok(token.AddOp, "+"),
		tok(token.RValueNumber, "4"),
		tok(token.EndLine, ""),
	})
}

func TestPointerDeclaration(t *testing.T) {
	assertTokens(t, "int32* p\n", []token.Token{
		tok(token.Int32Type, "int32"),
		tok(token.PointerDef, "*"),
		tok(token.VariableName, "p"),
		tok(token.EndLine, ""),
	})
}

func TestMultiplicationAfterVariable(t *testing.T) {
	assertTokens(t, "x * y\n", []token.Token{
		tok(token.VariableReference, "x"),
		tok(token.MulOp, "*"),
		tok(token.VariableReference, "y"),
		tok(token.EndLine, ""),
	})
}

func TestDereferenceAtStatementStart(t *testing.T) {
	assertTokens(t, "*p\n", []token.Token{
		tok(token.DereferenceOp, ""),
		tok(token.VariableReference, "p"),
		tok(token.EndLine, ""),
	})
}

func TestHexAndBinaryNormalization(t *testing.T) {
	assertTokens(t, "y = 0xFF\ny = 0b1010\n", []token.Token{
		tok(token.VariableReference, "y"),
		tok(token.Assign, "="),
		tok(token.RValueNumber, "255"),
		tok(token.EndLine, ""),
		tok(token.VariableReference, "y"),
		tok(token.Assign, "="),
		tok(token.RValueNumber, "10"),
		tok(token.EndLine, ""),
	})
}

func TestIndentationRiseAndFall(t *testing.T) {
	got := lexer.Tokenize("if x:\n    if y:\n        return x\nreturn 0\n")

	var starts, ends int
	for _, tk := range got {
		switch tk.Kind {
		case token.StartIndentation:
			starts++
		case token.EndIndentation:
			ends++
		}
	}

	if starts != ends {
		t.Errorf("unbalanced indentation tokens: %d starts, %d ends", starts, ends)
	}
	if starts < 1 {
		t.Errorf("expected at least one StartIndentation, got %d", starts)
	}

	// The file ends back at column zero, so every opened level must close.
	lastStart, lastEnd := -1, -1
	for i, tk := range got {
		if tk.Kind == token.StartIndentation {
			lastStart = i
		}
		if tk.Kind == token.EndIndentation {
			lastEnd = i
		}
	}
	if lastEnd < lastStart {
		t.Errorf("the last EndIndentation must come after the last StartIndentation")
	}
}

func TestFunctionDeclarationAndCall(t *testing.T) {
	assertTokens(t, "function f(int32 a) -> int32:\n    return a + 1\nf(2)\n", []token.Token{
		tok(token.FunctionName, "f"),
		tok(token.StartFunctionParameters, ""),
		tok(token.Int32Type, "int32"),
		tok(token.VariableName, "a"),
		tok(token.EndFunctionParameters, ""),
		tok(token.Arrow, "->"),
		tok(token.FunctionType, "int32"),
		tok(token.Int32Type, "int32"),
		tok(token.EndLine, ""),
		tok(token.StartIndentation, ""),
		tok(token.ReturnKeyword, "return"),
		tok(token.VariableReference, "a"),
		tok(token.AddOp, "+"),
		tok(token.RValueNumber, "1"),
		tok(token.EndLine, ""),
		tok(token.EndIndentation, ""),
		tok(token.FunctionCall, "f"),
		tok(token.RValueNumber, "2"),
		tok(token.CloseBracket, ")"),
		tok(token.EndLine, ""),
	})
}

func TestEmptyFileYieldsNoTokens(t *testing.T) {
	got := lexer.Tokenize("")
	if len(got) != 0 {
		t.Errorf("expected no tokens from an empty file, got %v", got)
	}
}

func TestGroupingParenIsNotAFunctionCall(t *testing.T) {
	assertTokens(t, "(x)\n", []token.Token{
		tok(token.OpenBracket, "("),
		tok(token.VariableReference, "x"),
		tok(token.CloseBracket, ")"),
		tok(token.EndLine, ""),
	})
}

func TestBracketsBalance(t *testing.T) {
	got := lexer.Tokenize("f(g(1), 2)\n")

	// A call's FunctionCall token opens the bracket that its trailing
	// CloseBracket closes; the lexer emits no OpenBracket for a call.
	opens, closes := 0, 0
	balance := 0
	for _, tk := range got {
		switch tk.Kind {
		case token.OpenBracket, token.FunctionCall:
			opens++
			balance++
		case token.CloseBracket:
			closes++
			balance--
		}
		if balance < 0 {
			t.Fatalf("bracket balance went negative at token %v", tk)
		}
	}
	if opens != closes {
		t.Errorf("unbalanced brackets: %d opens, %d closes", opens, closes)
	}
}

func TestNoEndLineInsideOpenBrackets(t *testing.T) {
	got := lexer.Tokenize("(1 +\n2)\n")

	depth := 0
	for _, tk := range got {
		switch tk.Kind {
		case token.OpenBracket:
			depth++
		case token.CloseBracket:
			depth--
		case token.EndLine:
			if depth != 0 {
				t.Fatalf("EndLine emitted while %d brackets were still open", depth)
			}
		}
	}
}

func TestFunctionNameIsFollowedByStartFunctionParametersBeforeEndLine(t *testing.T) {
	got := lexer.Tokenize("function f():\n    return 0\n")

	sawName := false
	for _, tk := range got {
		switch tk.Kind {
		case token.FunctionName:
			sawName = true
		case token.StartFunctionParameters:
			if sawName {
				return
			}
		case token.EndLine:
			if sawName {
				t.Fatal("EndLine appeared before StartFunctionParameters following FunctionName")
			}
		}
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	assertTokens(t, `s = "a\nb"`+"\n", []token.Token{
		tok(token.VariableReference, "s"),
		tok(token.Assign, "="),
		tok(token.RValueString, "a\nb"),
		tok(token.EndLine, ""),
	})
}

func TestCharLiteral(t *testing.T) {
	assertTokens(t, "c = 'x'\n", []token.Token{
		tok(token.VariableReference, "c"),
		tok(token.Assign, "="),
		tok(token.RValueChar, "x"),
		tok(token.EndLine, ""),
	})
}

func TestStructDeclaration(t *testing.T) {
	assertTokens(t, "struct Point:\n    int32 x, y\n", []token.Token{
		tok(token.StructName, "Point"),
		tok(token.EndLine, ""),
		tok(token.StartIndentation, ""),
		tok(token.Int32Type, "int32"),
		tok(token.VariableName, "x"),
		tok(token.Comma, ""),
		tok(token.VariableName, "y"),
		tok(token.EndLine, ""),
		tok(token.EndIndentation, ""),
	})
}

func TestSubTokenizingFunctionTypeMatchesStandaloneTokenization(t *testing.T) {
	standalone := lexer.Tokenize("int32\n")

	full := lexer.Tokenize("function f() -> int32:\n    return 0\n")
	var sawType bool
	for i, tk := range full {
		if tk.Kind == token.FunctionType {
			sawType = true
			// The splice immediately follows the FunctionType token itself.
			if i+1 >= len(full) || full[i+1].Kind != standalone[0].Kind {
				t.Errorf("spliced function-type tokens diverge from standalone tokenization")
			}
		}
	}
	if !sawType {
		t.Fatal("expected a FunctionType token")
	}
}
