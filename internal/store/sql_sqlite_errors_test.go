package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain", err: errors.New("x"), want: NonRetryable},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Retryable},
		{name: "locked wrapped", err: fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrLocked}), want: Retryable},
		{name: "constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDB_WithRetryRetriesBusy(t *testing.T) {
	db := &DB{errorClassificator: NewSQLiteErrorClassifier()}

	attempts := 0
	err := db.withRetry(context.Background(), func(context.Context) error {
		attempts++
		if attempts < 3 {
			return sqlite3.Error{Code: sqlite3.ErrBusy}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDB_WithRetryStopsOnPermanentError(t *testing.T) {
	db := &DB{errorClassificator: NewSQLiteErrorClassifier()}

	attempts := 0
	err := db.withRetry(context.Background(), func(context.Context) error {
		attempts++
		return errors.New("syntax error")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}
