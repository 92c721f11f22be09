package nav

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func tracer() oteltrace.Tracer {
	return otel.Tracer("navkit/nav")
}

// Present is the run helper: attach child to parent's slot, await the
// outcome, detach on every exit path. The attach notification is observable
// by the rendering layer before the await begins, and the detach notification
// before Present returns, so show/hide are never missed around the
// suspension.
//
// await is whatever yields the child's result: a sheet's first value or an
// armed bridge. Present does not care which. If the awaiting ctx is cancelled
// externally, the deferred detach still runs and dismisses the child, so a
// pending bridge cell is resolved rather than leaked.
func Present[T any](ctx context.Context, parent *Host, slot Slot, child Presentable, await func(context.Context) (T, error)) (T, error) {
	var zero T
	ctx, span := tracer().Start(ctx, "nav.present",
		oteltrace.WithAttributes(
			attribute.String("nav.slot", slot.String()),
			attribute.String("nav.child_id", child.ID().String()),
		))
	defer span.End()

	if err := parent.Attach(slot, child); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "attach rejected")
		return zero, err
	}
	defer parent.Detach(slot, child)

	v, err := await(ctx)
	if err != nil {
		if IsCancelled(err) {
			span.SetAttributes(attribute.Bool("nav.cancelled", true))
		} else {
			span.RecordError(err)
			span.SetStatus(codes.Error, "presentation failed")
		}
		return zero, err
	}
	return v, nil
}

// PresentSheet presents a sheet-style child and returns its first published
// value. Dismissal without a publish fails with future.ErrDismissed.
func PresentSheet[T any](ctx context.Context, parent *Host, child SheetChild[T]) (T, error) {
	return Present(ctx, parent, SlotSheet, child, child.FirstValue)
}

// PresentAlert presents a fixed-button alert and returns the completed button
// value. The bridge is armed after the attach notification, so the alert is
// requested-to-show before any resolution can occur.
func PresentAlert[T any](ctx context.Context, parent *Host, child AlertChild[T]) (T, error) {
	return Present(ctx, parent, SlotAlert, child, func(ctx context.Context) (T, error) {
		return child.Bridge().Arm().Await(ctx)
	})
}
