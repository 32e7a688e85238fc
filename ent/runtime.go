// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/roeland/learntrack/ent/completionevent"
	"github.com/roeland/learntrack/ent/progresssnapshot"
	"github.com/roeland/learntrack/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	completioneventMixin := schema.CompletionEvent{}.Mixin()
	completioneventMixinFields0 := completioneventMixin[0].Fields()
	_ = completioneventMixinFields0
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventMixinFields0[1].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescEventType is the schema descriptor for event_type field.
	completioneventDescEventType := completioneventFields[0].Descriptor()
	// completionevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	completionevent.EventTypeValidator = completioneventDescEventType.Validators[0].(func(string) error)
	// completioneventDescPointsAwarded is the schema descriptor for points_awarded field.
	completioneventDescPointsAwarded := completioneventFields[3].Descriptor()
	// completionevent.DefaultPointsAwarded holds the default value on creation for the points_awarded field.
	completionevent.DefaultPointsAwarded = completioneventDescPointsAwarded.Default.(int)
	// completioneventDescAttemptID is the schema descriptor for attempt_id field.
	completioneventDescAttemptID := completioneventFields[4].Descriptor()
	// completionevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	completionevent.AttemptIDValidator = completioneventDescAttemptID.Validators[0].(func(string) error)
	progresssnapshotFields := schema.ProgressSnapshot{}.Fields()
	_ = progresssnapshotFields
	// progresssnapshotDescTimestamp is the schema descriptor for timestamp field.
	progresssnapshotDescTimestamp := progresssnapshotFields[1].Descriptor()
	// progresssnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	progresssnapshot.DefaultTimestamp = progresssnapshotDescTimestamp.Default.(func() time.Time)
}
