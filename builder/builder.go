// Package builder provides a generic staged constructor that accumulates
// optional features over a base value and finalizes them with Build
package builder

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/c360/forgekit/errors"
	"github.com/c360/forgekit/metric"
)

// Step customizes one aspect of the product under construction. Applying a
// later step for the same aspect overwrites the earlier one; accumulation is
// last-write-wins, never additive.
type Step[T any] func(*T)

// Builder accumulates steps over a base value and produces the finished
// product with Build. A builder starts Open, accepting steps, and becomes
// Finalized after the first successful Build. Finalized builders reject
// every further mutation with errors.ErrBuilderFinalized.
//
// A builder instance belongs to a single goroutine. Distinct instances are
// independent and safe to use from different goroutines.
type Builder[T any] struct {
	id        string
	value     T
	steps     int
	finalized bool

	// err latches the first fluent-chain misuse, surfaced via Err
	err error

	createdAt   time.Time
	finalizedAt time.Time

	// Configuration
	validator func(T) error
	observer  func(Event)
	metrics   *metric.Metrics
}

// New creates an open builder over base. The base value carries every
// mandatory field of the product; steps customize the rest. Each builder
// receives a unique build identity.
func New[T any](base T, opts ...Option[T]) *Builder[T] {
	b := &Builder[T]{
		id:        uuid.New().String(),
		value:     base,
		createdAt: time.Now(),
	}

	// Apply options
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// ID returns the unique build identity assigned at creation.
func (b *Builder[T]) ID() string {
	return b.id
}

// Apply runs the given steps against the accumulated value, in order, and
// returns the builder for chaining. Nil steps are skipped. After
// finalization no step runs; the first such misuse latches
// errors.ErrBuilderFinalized, observable via Err.
func (b *Builder[T]) Apply(steps ...Step[T]) *Builder[T] {
	if b.finalized {
		if b.err == nil {
			b.err = errors.WrapState(
				fmt.Errorf("build %s: %w", b.id, errors.ErrBuilderFinalized),
				"Builder", "Apply", "apply step")
		}
		b.notify(Event{Op: OpApply, BuildID: b.id, Err: b.err, At: time.Now()})
		return b
	}

	for _, step := range steps {
		if step == nil {
			continue
		}
		step(&b.value)
		b.steps++
		if b.metrics != nil {
			b.metrics.RecordStepApplied()
		}
	}
	b.notify(Event{Op: OpApply, BuildID: b.id, At: time.Now()})

	return b
}

// Err returns the first misuse latched by the fluent chain, such as a step
// applied after finalization. Nil while the chain is clean. Build failures
// are returned by Build itself and are not latched here.
func (b *Builder[T]) Err() error {
	return b.err
}

// Build validates and finalizes the accumulated value, returning a snapshot
// of the product. A successful Build transitions the builder to Finalized;
// any later Apply or Build fails with errors.ErrBuilderFinalized.
//
// If a validator is configured and rejects the value, Build fails with
// errors.ErrInvalidProduct wrapping the validator's error and the builder
// stays Open, so corrective steps may be applied and Build retried.
func (b *Builder[T]) Build() (T, error) {
	var zero T

	if b.finalized {
		err := errors.WrapState(
			fmt.Errorf("build %s: %w", b.id, errors.ErrBuilderFinalized),
			"Builder", "Build", "finalize product")
		b.recordBuild("rejected")
		b.notify(Event{Op: OpBuild, BuildID: b.id, Err: err, At: time.Now()})
		return zero, err
	}

	if b.validator != nil {
		if verr := b.validator(b.value); verr != nil {
			err := errors.WrapInvalid(
				fmt.Errorf("%w: %w", errors.ErrInvalidProduct, verr),
				"Builder", "Build", "validate product")
			b.recordBuild("invalid")
			b.notify(Event{Op: OpBuild, BuildID: b.id, Err: err, At: time.Now()})
			return zero, err
		}
	}

	b.finalized = true
	b.finalizedAt = time.Now()
	b.recordBuild("success")
	b.notify(Event{Op: OpBuild, BuildID: b.id, At: b.finalizedAt})

	return b.value, nil
}

// Finalized reports whether a successful Build has happened.
func (b *Builder[T]) Finalized() bool {
	return b.finalized
}

// Receipt is the audit record of a finalized build.
type Receipt struct {
	// BuildID is the builder's unique identity.
	BuildID string `json:"build_id"`

	// Steps is the number of steps applied before finalization.
	Steps int `json:"steps"`

	// CreatedAt is when the builder was created.
	CreatedAt time.Time `json:"created_at"`

	// FinalizedAt is when Build succeeded.
	FinalizedAt time.Time `json:"finalized_at"`
}

// Receipt returns the audit record for this builder. The second return is
// false until a Build has succeeded.
func (b *Builder[T]) Receipt() (Receipt, bool) {
	if !b.finalized {
		return Receipt{}, false
	}
	return Receipt{
		BuildID:     b.id,
		Steps:       b.steps,
		CreatedAt:   b.createdAt,
		FinalizedAt: b.finalizedAt,
	}, true
}

func (b *Builder[T]) recordBuild(outcome string) {
	if b.metrics != nil {
		b.metrics.RecordBuild(outcome)
	}
}

func (b *Builder[T]) notify(e Event) {
	if b.observer != nil {
		b.observer(e)
	}
}
