package dsl_test

import (
	"context"
	"testing"

	recshape "github.com/recshape/recshape"
	g "github.com/recshape/recshape/dsl"
)

func TestDefault_FixedValueApplied(t *testing.T) {
	ctx := context.Background()
	s := g.Shape("Defaults").
		Field("first_name", g.String()).Default("Cynthia").
		Field("last_name", g.String()).Default("Frong").
		MustBuild()

	inst, err := s.Parse(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if inst.Field("first_name") != "Cynthia" || inst.Field("last_name") != "Frong" {
		t.Fatalf("defaults not applied: %v", inst)
	}

	// supplied input wins over the default
	inst2, err := s.Parse(ctx, map[string]any{"first_name": "Ada"})
	if err != nil || inst2.Field("first_name") != "Ada" {
		t.Fatalf("input must override default: %v %v", inst2, err)
	}
}

// A mutable fixed default is one value shared by every instance constructed
// without the field. This is the documented pitfall, reproducible on demand.
func TestDefault_MutableFixedValueIsShared(t *testing.T) {
	ctx := context.Background()
	s := g.Shape("Shared").
		Field("nicknames", g.Map(g.String())).Default(map[string]any{}).
		MustBuild()

	a, err := s.Parse(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("parse a: %v", err)
	}
	b, err := s.Parse(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("parse b: %v", err)
	}

	a.Field("nicknames").(map[string]any)["k"] = "v"
	got := b.Field("nicknames").(map[string]any)
	if got["k"] != "v" {
		t.Fatalf("fixed mutable default must be shared; b saw %#v", got)
	}
}

// A default factory yields an independent value per construction: instances
// never observe each other's mutations.
func TestDefaultFactory_ValuesAreIndependent(t *testing.T) {
	ctx := context.Background()
	s := g.Shape("Independent").
		Field("nicknames", g.Map(g.String())).DefaultFactory(func() any { return map[string]any{} }).
		MustBuild()

	a, err := s.Parse(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("parse a: %v", err)
	}
	b, err := s.Parse(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("parse b: %v", err)
	}

	a.Field("nicknames").(map[string]any)["k"] = "v"
	if got := b.Field("nicknames").(map[string]any); len(got) != 0 {
		t.Fatalf("factory default must be independent; b saw %#v", got)
	}
}

func TestDefaultFactory_ResultIsValidated(t *testing.T) {
	ctx := context.Background()
	s := g.Shape("BadFactory").
		Field("n", g.Map(g.String())).DefaultFactory(func() any { return "not a map" }).
		MustBuild()

	_, err := s.Parse(ctx, map[string]any{})
	iss, ok := recshape.AsIssues(err)
	if !ok || iss[0].Code != recshape.CodeTypeMismatch || iss[0].Path != "/n" {
		t.Fatalf("expected type_mismatch at /n for bad factory result, got %v", err)
	}
}

func TestBuild_FixedDefaultValidatedOnce(t *testing.T) {
	_, err := g.Shape("BadDefault").
		Field("n", g.Map(g.String())).Default("not a map").
		Build()
	iss, ok := recshape.AsIssues(err)
	if !ok || iss[0].Path != "/n" {
		t.Fatalf("expected build-time default validation failure, got %v", err)
	}
}

func TestBuild_NullDefaultNeedsNullable(t *testing.T) {
	// without Nullable a null default is a type error at Build
	if _, err := g.Shape("S").Field("m", g.String()).Default(nil).Build(); err == nil {
		t.Fatalf("expected build failure for null default on plain string")
	}

	ctx := context.Background()
	s := g.Shape("S").Field("m", g.Nullable(g.String())).Default(nil).MustBuild()
	inst, err := s.Parse(ctx, map[string]any{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	v, bound := inst.Get("m")
	if !bound || v != nil {
		t.Fatalf("expected bound null default, got %v bound=%v", v, bound)
	}
}
