// Package assert holds the small set of test assertions used across the repo.
package assert

import (
	"reflect"
	"testing"
)

// Equal fails the test if got and want differ.
func Equal[T any](t *testing.T, got, want T) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got: %#v; want: %#v", got, want)
	}
}

// Nil fails the test if v is not nil.
func Nil(t *testing.T, v any) {
	t.Helper()
	if !isNil(v) {
		t.Errorf("got: %v; want: nil", v)
	}
}

// NotNil fails the test if v is nil.
func NotNil(t *testing.T, v any) {
	t.Helper()
	if isNil(v) {
		t.Errorf("got: nil; want: non-nil")
	}
}

// True fails the test if v is false.
func True(t *testing.T, v bool) {
	t.Helper()
	if !v {
		t.Errorf("got: false; want: true")
	}
}

// False fails the test if v is true.
func False(t *testing.T, v bool) {
	t.Helper()
	if v {
		t.Errorf("got: true; want: false")
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
