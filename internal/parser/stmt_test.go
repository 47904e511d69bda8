package parser

import (
	"testing"

	"github.com/lememta/sage-lang/internal/ast"
)

// parseBodyOf parses a function whose body is the given lines and
// returns the statement IDs.
func parseBodyOf(t *testing.T, body string) (*ast.Builder, []ast.StmtID) {
	t.Helper()
	builder, doc, _ := parseSource(t, "@fn subject\n"+body)
	node := singleNode(t, builder, doc, ast.NodeFn)
	fn := builder.Nodes.Fns.Get(uint32(node.Payload))
	return builder, fn.Body
}

func singleStmt(t *testing.T, builder *ast.Builder, body []ast.StmtID, kind ast.StmtKind) *ast.Stmt {
	t.Helper()
	if len(body) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(body))
	}
	stmt := builder.Stmts.Get(body[0])
	if stmt.Kind != kind {
		t.Fatalf("statement kind: got %s, want %s", stmt.Kind, kind)
	}
	return stmt
}

func TestParseLetStmt(t *testing.T) {
	builder, body := parseBodyOf(t, "let total = count + 1")
	stmt := singleStmt(t, builder, body, ast.StmtLet)
	let := builder.Stmts.Lets.Get(uint32(stmt.Payload))

	if builder.Name(let.Name) != "total" {
		t.Errorf("name: got %q", builder.Name(let.Name))
	}
	if let.Value != "count + 1" {
		t.Errorf("value: got %q", let.Value)
	}
	if let.Decision {
		t.Error("unmarked let parsed as decision")
	}
}

func TestLetDecisionFlag(t *testing.T) {
	builder, body := parseBodyOf(t, "!! let backend = ring buffer")
	stmt := singleStmt(t, builder, body, ast.StmtLet)
	let := builder.Stmts.Lets.Get(uint32(stmt.Payload))

	if !let.Decision {
		t.Error("'!!' before let did not set the decision flag")
	}
	if builder.Name(let.Name) != "backend" {
		t.Errorf("name: got %q", builder.Name(let.Name))
	}
}

func TestLetBraceBalancedValue(t *testing.T) {
	// The value opens a brace, so capture continues across lines
	// until braces balance, newlines preserved.
	builder, body := parseBodyOf(t, "let conf = {\nretries: 3,\n}")
	stmt := singleStmt(t, builder, body, ast.StmtLet)
	let := builder.Stmts.Lets.Get(uint32(stmt.Payload))

	want := "{\nretries : 3 ,\n}"
	if let.Value != want {
		t.Errorf("value: got %q, want %q", let.Value, want)
	}
}

func TestLetWithoutAssignFallsBackToRaw(t *testing.T) {
	builder, body := parseBodyOf(t, "let the good times roll")
	stmt := singleStmt(t, builder, body, ast.StmtRaw)
	raw := builder.Stmts.Raws.Get(uint32(stmt.Payload))

	if raw.Text != "let the good times roll" {
		t.Errorf("raw text: got %q", raw.Text)
	}
}

func TestParseIfStmt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCond string
		wantThen string
		wantElse string
		hasElse  bool
	}{
		{
			name:     "then only",
			input:    "if size == 0 => ret nothing",
			wantCond: "size == 0",
			wantThen: "ret nothing",
		},
		{
			name:     "then and else",
			input:    `if found => "reuse the slot" else "grow the table"`,
			wantCond: "found",
			wantThen: `"reuse the slot"`,
			wantElse: `"grow the table"`,
			hasElse:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder, body := parseBodyOf(t, tt.input)
			stmt := singleStmt(t, builder, body, ast.StmtIf)
			cond := builder.Stmts.Ifs.Get(uint32(stmt.Payload))

			if cond.Cond != tt.wantCond {
				t.Errorf("cond: got %q, want %q", cond.Cond, tt.wantCond)
			}
			if cond.Then != tt.wantThen {
				t.Errorf("then: got %q, want %q", cond.Then, tt.wantThen)
			}
			if cond.HasElse != tt.hasElse || cond.Else != tt.wantElse {
				t.Errorf("else: got %v %q, want %v %q", cond.HasElse, cond.Else, tt.hasElse, tt.wantElse)
			}
		})
	}
}

func TestIfDecisionFlag(t *testing.T) {
	builder, body := parseBodyOf(t, "!! if crowded => evict the oldest")
	stmt := singleStmt(t, builder, body, ast.StmtIf)
	cond := builder.Stmts.Ifs.Get(uint32(stmt.Payload))

	if !cond.Decision {
		t.Error("'!!' before if did not set the decision flag")
	}
}

func TestIfWithoutArrowFallsBackToRaw(t *testing.T) {
	builder, body := parseBodyOf(t, "if only this were structured")
	stmt := singleStmt(t, builder, body, ast.StmtRaw)
	raw := builder.Stmts.Raws.Get(uint32(stmt.Payload))

	if raw.Text != "if only this were structured" {
		t.Errorf("raw text: got %q", raw.Text)
	}
}

func TestParseRetStmt(t *testing.T) {
	builder, body := parseBodyOf(t, "ret entries[key]")
	stmt := singleStmt(t, builder, body, ast.StmtRet)
	ret := builder.Stmts.Rets.Get(uint32(stmt.Payload))

	if ret.Value != "entries [ key ]" {
		t.Errorf("value: got %q", ret.Value)
	}
}

func TestBodyTextAndDecision(t *testing.T) {
	builder, body := parseBodyOf(t, "\"walk the list from the head\"\n\"skip tombstones\" !!\n!! no locks here")
	if len(body) != 3 {
		t.Fatalf("got %d statements, want 3", len(body))
	}

	text := builder.Stmts.Get(body[0])
	if text.Kind != ast.StmtText {
		t.Fatalf("stmt 0: got %s", text.Kind)
	}
	if got := builder.Stmts.Texts.Get(uint32(text.Payload)).Text; got != "walk the list from the head" {
		t.Errorf("text: got %q", got)
	}

	marked := builder.Stmts.Get(body[1])
	if marked.Kind != ast.StmtDecision {
		t.Fatalf("stmt 1: got %s", marked.Kind)
	}
	if got := builder.Stmts.Decisions.Get(uint32(marked.Payload)).Text; got != "skip tombstones" {
		t.Errorf("suffixed decision: got %q", got)
	}

	bare := builder.Stmts.Get(body[2])
	if bare.Kind != ast.StmtDecision {
		t.Fatalf("stmt 2: got %s", bare.Kind)
	}
	if got := builder.Stmts.Decisions.Get(uint32(bare.Payload)).Text; got != "no locks here" {
		t.Errorf("standalone decision: got %q", got)
	}
}

func TestBodySkipsCommentsAndBlankLines(t *testing.T) {
	builder, body := parseBodyOf(t, "# setup\n\nret done\n")
	singleStmt(t, builder, body, ast.StmtRet)
}
