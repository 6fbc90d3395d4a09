package dsl_test

import (
	"context"
	"strings"
	"testing"
	"time"

	recshape "github.com/recshape/recshape"
	g "github.com/recshape/recshape/dsl"
)

func TestOneOf_FirstAcceptingAlternativeWins(t *testing.T) {
	ctx := context.Background()
	u := g.OneOf(g.String(), g.Timestamp())

	// a timestamp-looking string resolves as string because string is declared first
	v, err := u.Coerce(ctx, "/h", "2024-12-25T00:00:00Z")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := v.(string); !ok {
		t.Fatalf("expected string resolution, got %T", v)
	}

	// a time.Time resolves via the timestamp alternative
	tm := time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)
	v, err = u.Coerce(ctx, "/h", tm)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := v.(time.Time); !ok {
		t.Fatalf("expected time.Time resolution, got %T", v)
	}
}

func TestOneOf_MismatchNamesAlternatives(t *testing.T) {
	ctx := context.Background()
	seq := g.Seq(g.OneOf(g.String(), g.Timestamp()))

	_, err := seq.Coerce(ctx, "/holidays", []any{"Christmas", 12345})
	iss, ok := recshape.AsIssues(err)
	if !ok || iss[0].Code != recshape.CodeUnionMismatch {
		t.Fatalf("expected union_mismatch, got %v", err)
	}
	it := iss[0]
	if it.Path != "/holidays/1" {
		t.Fatalf("expected offending index in path, got %+v", it)
	}
	if it.Expected != "string|timestamp" || it.Got != "number(12345)" {
		t.Fatalf("expected alternatives and received value named: %+v", it)
	}
	if !strings.Contains(it.Hint, "string|timestamp") {
		t.Fatalf("expected hint naming attempted alternatives: %+v", it)
	}
}

func TestOneOf_SingleAlternativeCollapses(t *testing.T) {
	u := g.OneOf(g.String())
	if u.Describe() != "string" {
		t.Fatalf("single-alternative union should collapse, got %q", u.Describe())
	}
}

func TestNullable_AcceptsNullAndDelegates(t *testing.T) {
	ctx := context.Background()
	n := g.Nullable(g.String())

	v, err := n.Coerce(ctx, "/m", nil)
	if err != nil || v != nil {
		t.Fatalf("null coerce: v=%v err=%v", v, err)
	}
	if _, err := n.Coerce(ctx, "/m", "x"); err != nil {
		t.Fatalf("string through nullable: %v", err)
	}
	_, err = n.Coerce(ctx, "/m", 7)
	iss, ok := recshape.AsIssues(err)
	if !ok || iss[0].Expected != "string|null" {
		t.Fatalf("expected widened description, got %v", err)
	}

	if ev, err := n.Encode(nil); err != nil || ev != nil {
		t.Fatalf("null encode: %v %v", ev, err)
	}
}
