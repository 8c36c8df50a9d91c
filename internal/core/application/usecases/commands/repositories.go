// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, access control,
// transaction management, and persistence.
package commands

import (
	"context"

	"labflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AnalysisRepoFactory provides access to the catalog repository within a transaction.
	AnalysisRepoFactory interface {
		AnalysisRepository() ports.AnalysisRepository
	}

	// PatientRepoFactory provides access to the patient repository within a transaction.
	PatientRepoFactory interface {
		PatientRepository() ports.PatientRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SampleRepoFactory provides access to the sample repository within a transaction.
	SampleRepoFactory interface {
		SampleRepository() ports.SampleRepository
	}

	// CatalogUoW manages transactions for catalog-only operations.
	CatalogUoW interface {
		TxManager
		AnalysisRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// PatientUoW manages transactions for patient-account-only operations.
	PatientUoW interface {
		TxManager
		PatientRepoFactory
	}

	// PatientUoWFactory creates new patient unit of work instances.
	PatientUoWFactory interface {
		Create() PatientUoW
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SampleUoW manages transactions for sample-only operations.
	SampleUoW interface {
		TxManager
		SampleRepoFactory
	}

	// SampleUoWFactory creates new sample unit of work instances.
	SampleUoWFactory interface {
		Create() SampleUoW
	}

	// IntakeUoW manages transactions for order creation, which resolves the
	// patient and the catalog before persisting the priced order.
	IntakeUoW interface {
		TxManager
		AnalysisRepoFactory
		PatientRepoFactory
		OrderRepoFactory
	}

	// IntakeUoWFactory creates new intake unit of work instances.
	IntakeUoWFactory interface {
		Create() IntakeUoW
	}

	// CollectionUoW manages transactions for sample collection, which reads
	// the order and patient and persists the derived sample batch.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   sampleRepo := uow.SampleRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	CollectionUoW interface {
		TxManager
		OrderRepoFactory
		PatientRepoFactory
		SampleRepoFactory
	}

	// CollectionUoWFactory creates new collection unit of work instances.
	CollectionUoWFactory interface {
		Create() CollectionUoW
	}
)
