package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrillError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DrillError
		expected string
	}{
		{
			name:     "code and message",
			err:      NewInvalidArgument(ErrCodeBlankOwner, "owner must not be blank"),
			expected: "[ERR_BLANK_OWNER] invalid_argument: owner must not be blank",
		},
		{
			name:     "with cause",
			err:      NewIO(ErrCodeFileNotFound, "open scores", stderrors.New("no such file")),
			expected: "[ERR_FILE_NOT_FOUND] io: open scores: no such file",
		},
		{
			name:     "no code",
			err:      &DrillError{Kind: KindInternal, Message: "boom"},
			expected: "internal: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestDrillError_Is(t *testing.T) {
	err := NewInvalidState(ErrCodeOverdraft, "withdraw 500 exceeds balance 100")
	wrapped := fmt.Errorf("handling request: %w", err)

	assert.True(t, stderrors.Is(wrapped, NewInvalidState(ErrCodeOverdraft, "any message")))
	assert.False(t, stderrors.Is(wrapped, NewInvalidArgument(ErrCodeOverdraft, "any message")))
	assert.False(t, stderrors.Is(wrapped, NewInvalidState(ErrCodeNonPositive, "any message")))
}

func TestDrillError_Unwrap(t *testing.T) {
	cause := stderrors.New("disk gone")
	err := NewIO(ErrCodeFileNotFound, "read lines", cause)

	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindInvalidArgument, KindOf(NewInvalidArgument("C", "m")))
	assert.Equal(t, KindInvalidState, KindOf(NewInvalidState("C", "m")))
	assert.Equal(t, KindConcurrentModification, KindOf(NewConcurrentModification("C", "m")))
	assert.Equal(t, KindInternal, KindOf(stderrors.New("foreign")))

	wrapped := fmt.Errorf("outer: %w", NewInvalidState("C", "m"))
	assert.Equal(t, KindInvalidState, KindOf(wrapped))
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, IsInvalidArgument(NewInvalidArgument("C", "m")))
	assert.True(t, IsInvalidState(NewInvalidState("C", "m")))
	assert.True(t, IsConcurrentModification(NewConcurrentModification("C", "m")))
	assert.False(t, IsInvalidArgument(NewInvalidState("C", "m")))
	assert.False(t, IsConcurrentModification(stderrors.New("foreign")))
}

func TestRecoverability(t *testing.T) {
	assert.True(t, IsRecoverable(NewInvalidArgument("C", "m")))
	assert.True(t, IsRecoverable(NewInvalidState("C", "m")))
	assert.False(t, IsRecoverable(NewConcurrentModification("C", "m")))
	assert.False(t, IsRecoverable(NewInternal("C", "m", nil)))
	assert.False(t, IsRecoverable(stderrors.New("foreign")))
}

func TestWithContext(t *testing.T) {
	err := NewInvalidState(ErrCodeOverdraft, "overdraft").
		WithContext("requested", int64(500)).
		WithContext("balance", int64(100))

	assert.Equal(t, int64(500), err.Context["requested"])
	assert.Equal(t, int64(100), err.Context["balance"])
}

func TestHelperConstructors(t *testing.T) {
	assert.Equal(t, "[ERR_DRILL_NOT_FOUND] invalid_argument: drill not found: nope",
		ErrDrillNotFound("nope").Error())
	assert.Equal(t, "[ERR_NOTE_NOT_FOUND] invalid_argument: note not found: nope",
		ErrNoteNotFound("nope").Error())
}
