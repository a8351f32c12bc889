package taskerr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(NotFound, "task %d not found", 42)
	if err.Kind != NotFound {
		t.Errorf("kind = %q, want %q", err.Kind, NotFound)
	}
	if err.Error() != "task 42 not found" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(Storage, cause, "insert task")

	if !errors.Is(err, cause) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
	if !strings.Contains(err.Error(), "insert task") {
		t.Errorf("message = %q, missing context", err.Error())
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("message = %q, missing cause", err.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := New(InvalidDate, "bad date %q", "nope")

	if !IsKind(err, InvalidDate) {
		t.Error("IsKind should match the error's kind")
	}
	if IsKind(err, NotFound) {
		t.Error("IsKind should not match a different kind")
	}
	if IsKind(nil, NotFound) {
		t.Error("IsKind(nil) should be false")
	}
	if IsKind(errors.New("plain"), Storage) {
		t.Error("IsKind should not match a plain error")
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	inner := New(NotFound, "task 7 not found")
	outer := fmt.Errorf("complete: %w", inner)

	if !IsKind(outer, NotFound) {
		t.Error("IsKind should see through fmt.Errorf wrapping")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(New(Corrupt, "bad row")); got != Corrupt {
		t.Errorf("KindOf = %q, want %q", got, Corrupt)
	}
	if got := KindOf(errors.New("plain")); got != Storage {
		t.Errorf("KindOf(plain) = %q, want %q", got, Storage)
	}
}
