package config

import (
	"testing"
	"time"

	kit "vitalsum/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	rep := root.Prefix("REPORT_")
	if got := rep.key("BASE_URL"); got != "REPORT_BASE_URL" {
		t.Fatalf("key() = %q, want %q", got, "REPORT_BASE_URL")
	}
	// nested prefix
	repHTTP := rep.Prefix("HTTP_")
	if got := repHTTP.key("TIMEOUT"); got != "REPORT_HTTP_TIMEOUT" {
		t.Fatalf("nested key() = %q, want %q", got, "REPORT_HTTP_TIMEOUT")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  vitalsum ")
	got := c.MustString("NAME")
	if got != "vitalsum" {
		t.Fatalf("MustString = %q, want %q", got, "vitalsum")
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustPort(t *testing.T) {
	c := New().Prefix("P_")
	t.Setenv("P_PORT", "8000")
	if got := c.MustPort("PORT"); got != ":8000" {
		t.Fatalf("MustPort = %q, want %q", got, ":8000")
	}
	t.Setenv("P_BAD", "abc")
	kit.MustPanic(t, func() { _ = c.MustPort("BAD") })
	t.Setenv("P_OOB", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("OOB") })
}

// May* fallbacks

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q, want %q", got, "def")
	}
	t.Setenv("S_NAME", " vitalsum ")
	if got := c.MayString("NAME", "x"); got != "vitalsum" {
		t.Fatalf("MayString value = %q, want %q", got, "vitalsum")
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("I_")
	if got := c.MayInt("MISSING", 9); got != 9 {
		t.Fatalf("MayInt default = %d, want %d", got, 9)
	}
	t.Setenv("I_N", " 4 ")
	if got := c.MayInt("N", 9); got != 4 {
		t.Fatalf("MayInt value = %d, want %d", got, 4)
	}
	t.Setenv("I_BAD", "x")
	if got := c.MayInt("BAD", 9); got != 9 {
		t.Fatalf("MayInt invalid = %d, want default %d", got, 9)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if got := c.MayBool("MISSING", true); got != true {
		t.Fatalf("MayBool default = %v, want true", got)
	}
	t.Setenv("B_ON", " false ")
	if got := c.MayBool("ON", true); got != false {
		t.Fatalf("MayBool value = %v, want false", got)
	}
	t.Setenv("B_BAD", "notabool")
	if got := c.MayBool("BAD", true); got != true {
		t.Fatalf("MayBool invalid = %v, want default true", got)
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("D_")
	if got := c.MayDuration("MISSING", time.Second); got != time.Second {
		t.Fatalf("MayDuration default = %v, want %v", got, time.Second)
	}
	t.Setenv("D_TIMEOUT", " 250ms ")
	if got := c.MayDuration("TIMEOUT", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration value = %v, want %v", got, 250*time.Millisecond)
	}
	t.Setenv("D_BAD", "nope")
	if got := c.MayDuration("BAD", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v, want default %v", got, time.Second)
	}
}

func TestMayURL(t *testing.T) {
	c := New().Prefix("U_")
	if got := c.MayURL("MISSING", "http://localhost:8000/api"); got != "http://localhost:8000/api" {
		t.Fatalf("MayURL default = %q", got)
	}
	t.Setenv("U_BASE", "http://example.com/api/")
	if got := c.MayURL("BASE", "http://localhost:8000/api"); got != "http://example.com/api" {
		t.Fatalf("MayURL value = %q, want trailing slash stripped", got)
	}
	t.Setenv("U_BAD", "/relative")
	kit.MustPanic(t, func() { _ = c.MayURL("BAD", "http://localhost:8000/api") })
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("MISSING", "demo", "demo", "small", "large"); got != "demo" {
		t.Fatalf("MayEnum default = %q, want demo", got)
	}
	t.Setenv("E_ID", "SMALL")
	if got := c.MayEnum("ID", "demo", "demo", "small", "large"); got != "SMALL" {
		t.Fatalf("MayEnum value = %q, want case-insensitive match preserved", got)
	}
	t.Setenv("E_BAD", "huge")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "demo", "demo", "small", "large") })
}
