package commands

import (
	"context"
	"errors"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/core/domain/model/sample"
	"labflow/internal/core/domain/services"
	"labflow/internal/pkg/errs"
)

// TakeSampleCommandHandler handles sample collection against pending orders.
// One sample is created per line item whose analysis name maps to a known
// result category; the whole batch is persisted in a single transaction so a
// failed inference never leaves a partially-collected order behind.
type TakeSampleCommandHandler struct {
	uowFactory CollectionUoWFactory
	policy     services.AccessPolicy
}

// NewTakeSampleCommandHandler creates a handler for sample collection.
// Requires a CollectionUoWFactory for transactional persistence.
func NewTakeSampleCommandHandler(uowFactory CollectionUoWFactory, policy services.AccessPolicy) TakeSampleCommandHandler {
	return TakeSampleCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the collection command. The order must still be pending;
// collection against a paid or cancelled order fails with ErrOrderNotPending.
// When no line item matches a known category the batch fails with
// ErrNoCollectibleItems, and when only some items fail inference the batch
// still fails whole rather than persist an inconsistent subset.
func (h *TakeSampleCommandHandler) Handle(ctx context.Context, cmd TakeSampleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.CanManageSamples(cmd.Caller()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if aggregate.Status() != order.Pending {
		return ErrOrderNotPending
	}

	subject, err := uow.PatientRepository().Get(ctx, aggregate.PatientID())
	if err != nil {
		return errs.NewInvalidReferenceErrorWithCause("patientId", aggregate.PatientID().String(), err)
	}

	items := aggregate.Items()
	samples := make([]*sample.Sample, 0, len(items))
	matched := 0
	for _, item := range items {
		category, inferErr := sample.InferCategory(item.Name())
		if errors.Is(inferErr, sample.ErrUnknownCategory) {
			continue
		}
		if inferErr != nil {
			return inferErr
		}
		matched++

		s, newErr := sample.NewSample(
			kernel.NewUUID(),
			cmd.OrderID(),
			aggregate.PatientID(),
			subject.DisplayName(),
			category,
			cmd.Observations(),
		)
		if newErr != nil {
			return newErr
		}
		samples = append(samples, s)
	}

	if matched == 0 {
		return ErrNoCollectibleItems
	}
	if matched < len(items) {
		// All-or-nothing per collection event: an order mixing collectible
		// and unrecognizable items must not end up partially collected.
		return errs.NewValueIsInvalidErrorWithCause("lineItems", sample.ErrUnknownCategory)
	}

	if err = uow.SampleRepository().AddBatch(ctx, samples); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
