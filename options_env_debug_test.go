package zep

import "testing"

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("ZEP_DEBUG", "true")
	c := New()
	if !c.debug {
		t.Fatalf("expected debug logging to be enabled when ZEP_DEBUG=true")
	}
}

func TestNew_ExplicitOptionWinsOverEnv(t *testing.T) {
	t.Setenv("ZEP_DEBUG", "true")
	c := New(WithDebugLogging(false))
	if c.debug {
		t.Fatalf("expected explicit option to override ZEP_DEBUG")
	}
}

func TestNew_MalformedEnvTreatedAsUnset(t *testing.T) {
	t.Setenv("ZEP_DEBUG", "not-a-bool")
	c := New()
	if c.debug {
		t.Fatalf("expected malformed ZEP_DEBUG to leave debug disabled")
	}
}
