package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coralstream/catalog/internal/domain/validation"
)

func TestNotification_AccumulatesErrors(t *testing.T) {
	notification := validation.NewNotification()

	assert.False(t, notification.HasErrors())
	assert.Empty(t, notification.Errors())

	notification.AddError(validation.NewError("title", "should not be empty"))
	notification.AddError(validation.NewError("rating", "should not be empty"))

	assert.True(t, notification.HasErrors())
	assert.Len(t, notification.Errors(), 2)
}

func TestNotification_IgnoresNil(t *testing.T) {
	notification := validation.NewNotification()
	notification.AddError(nil)

	assert.False(t, notification.HasErrors())
}

func TestNotification_Append(t *testing.T) {
	first := validation.NewNotification()
	first.AddError(validation.NewError("name", "should not be empty"))

	second := validation.NewNotification()
	second.AddError(validation.NewError("type", "must be ACTOR or DIRECTOR"))
	second.Append(first)

	assert.Len(t, second.Errors(), 2)
}

func TestNotification_Check(t *testing.T) {
	notification := validation.NewNotification()

	notification.Check(func() error { return nil })
	notification.Check(func() error { return errors.New("boom") })

	assert.True(t, notification.HasErrors())
	assert.Len(t, notification.Errors(), 1)
}

func TestNotificationError_JoinsAllMessages(t *testing.T) {
	err := validation.NewNotificationError([]error{
		validation.NewError("title", "should not be empty"),
		validation.NewError("rating", "should not be empty"),
	})

	assert.Equal(t, "validation failed: title: should not be empty; rating: should not be empty", err.Error())
	assert.Len(t, err.Errs, 2)
}
