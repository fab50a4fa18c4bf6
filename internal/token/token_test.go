package token_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"chaic/internal/token"
)

func TestNew(t *testing.T) {
	got := token.New(token.AddOp, "+")
	want := token.Token{Kind: token.AddOp, Lexeme: "+"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token.New mismatch (-want +got):\n%s", diff)
	}
}

func TestIsPrimitiveType(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want bool
	}{
		{token.Int32Type, true},
		{token.Uint64Type, true},
		{token.Float64Type, true},
		{token.BoolType, true},
		{token.StringType, true},
		{token.AddOp, false},
		{token.VariableName, false},
	}

	for _, tt := range tests {
		if got := tt.kind.IsPrimitiveType(); got != tt.want {
			t.Errorf("%v.IsPrimitiveType() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := token.AddOp.String(); got != "AddOp" {
		t.Errorf("AddOp.String() = %q, want %q", got, "AddOp")
	}

	if got := token.Kind(9999).String(); got != "Unknown" {
		t.Errorf("unknown kind String() = %q, want %q", got, "Unknown")
	}
}

func TestTokenSliceDiff(t *testing.T) {
	got := []token.Token{
		token.New(token.Int32Type, "int32"),
		token.New(token.VariableName, "x"),
		token.New(token.EndLine, ""),
	}
	want := []token.Token{
		token.New(token.Int32Type, "int32"),
		token.New(token.VariableName, "x"),
		token.New(token.EndLine, ""),
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token slice mismatch (-want +got):\n%s", diff)
	}
}
