package envutil

import (
	"reflect"
	"testing"
)

func TestIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("ORDER_TEST_INT", "abc")
	if got := Int("ORDER_TEST_INT", 7, nil); got != 7 {
		t.Fatalf("got %d want 7", got)
	}
	t.Setenv("ORDER_TEST_INT", " 42 ")
	if got := Int("ORDER_TEST_INT", 7, nil); got != 42 {
		t.Fatalf("got %d want 42", got)
	}
}

func TestStringTreatsBlankAsUnset(t *testing.T) {
	t.Setenv("ORDER_TEST_STR", "   ")
	if got := String("ORDER_TEST_STR", "def", nil); got != "def" {
		t.Fatalf("got %q", got)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("ORDER_TEST_BOOL", "off")
	if Bool("ORDER_TEST_BOOL", true, nil) {
		t.Fatalf("expected false")
	}
	t.Setenv("ORDER_TEST_BOOL", "maybe")
	if !Bool("ORDER_TEST_BOOL", true, nil) {
		t.Fatalf("expected default true")
	}
}

func TestCSV(t *testing.T) {
	t.Setenv("ORDER_TEST_CSV", "http://a, ,http://b,")
	got := CSV("ORDER_TEST_CSV", nil)
	want := []string{"http://a", "http://b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestFloat(t *testing.T) {
	if _, ok := Float("ORDER_TEST_FLOAT_UNSET", nil); ok {
		t.Fatalf("unset variable reported as set")
	}
	t.Setenv("ORDER_TEST_FLOAT", "0.2")
	if f, ok := Float("ORDER_TEST_FLOAT", nil); !ok || f != 0.2 {
		t.Fatalf("got %v %v", f, ok)
	}
	t.Setenv("ORDER_TEST_FLOAT", "warm")
	if _, ok := Float("ORDER_TEST_FLOAT", nil); ok {
		t.Fatalf("garbage reported as set")
	}
}
