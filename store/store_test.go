package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestStoreError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := wrap("daily load", cause)

	if !IsStoreError(err) {
		t.Errorf("wrapped error not detected as store error")
	}
	if !errors.Is(err, cause) {
		t.Errorf("cause lost through wrapping")
	}
	if got := err.Error(); got != "store: daily load: dial tcp: connection refused" {
		t.Errorf("unexpected message %q", got)
	}

	t.Run("wrap passes nil through", func(t *testing.T) {
		if wrap("daily load", nil) != nil {
			t.Errorf("wrap(nil) should be nil")
		}
	})

	t.Run("foreign errors are not store errors", func(t *testing.T) {
		if IsStoreError(errors.New("boom")) {
			t.Errorf("plain error misdetected")
		}
		if IsStoreError(fmt.Errorf("outer: %w", errors.New("inner"))) {
			t.Errorf("wrapped plain error misdetected")
		}
	})
}
