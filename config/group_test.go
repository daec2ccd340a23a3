package config_test

import (
	"testing"

	"github.com/tendrilgames/chronoframe/config"
)

func TestGroupSetGet(t *testing.T) {
	g := config.NewGroup()
	strategy := &config.String{}
	g.Register("scheduler.strategy", strategy)

	if err := g.Set("scheduler.strategy", "background"); err != nil {
		t.Fatal(err)
	}
	v, ok := g.Get("scheduler.strategy")
	if !ok || v != "background" {
		t.Fatalf("got %v, %v", v, ok)
	}
}

func TestGroupUnknownKey(t *testing.T) {
	g := config.NewGroup()
	if err := g.Set("nope", 1); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if _, ok := g.Get("nope"); ok {
		t.Fatal("expected not-ok for unknown key")
	}
}

func TestGroupRegisterDuplicatePanics(t *testing.T) {
	g := config.NewGroup()
	g.Register("k", &config.Int{})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	g.Register("k", &config.Int{})
}

func TestGroupString(t *testing.T) {
	g := config.NewGroup()
	k := &config.Int{}
	_ = k.Set(4)
	g.Register("jitter.k", k)

	fps := &config.Float{}
	_ = fps.Set(60.0)
	g.Register("window.fps", fps)

	want := "jitter.k::4; window.fps::60.000"
	if got := g.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
