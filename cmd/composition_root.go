package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"labflow/internal/adapters/out/postgres"
	"labflow/internal/adapters/out/postgres/orderrepo"
	"labflow/internal/core/application/usecases/commands"
	"labflow/internal/core/application/usecases/queries"
	"labflow/internal/core/domain/services"
	"labflow/internal/jobs"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	policy     services.AccessPolicy
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		policy:     services.NewAccessPolicy(),
	}
}

func (c *CompositionRoot) CreateCreateAnalysisCommandHandler() commands.CreateAnalysisCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAnalysisCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUpdateAnalysisCommandHandler() commands.UpdateAnalysisCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAnalysisCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateDeactivateAnalysisCommandHandler() commands.DeactivateAnalysisCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivateAnalysisCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCreatePatientCommandHandler() commands.CreatePatientCommandHandler {
	var f commands.PatientUoWFactory = FuncPatientUoWFactory(func() commands.PatientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePatientCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateDeactivatePatientCommandHandler() commands.DeactivatePatientCommandHandler {
	var f commands.PatientUoWFactory = FuncPatientUoWFactory(func() commands.PatientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivatePatientCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateChangePasswordCommandHandler() commands.ChangePasswordCommandHandler {
	var f commands.PatientUoWFactory = FuncPatientUoWFactory(func() commands.PatientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangePasswordCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.IntakeUoWFactory = FuncIntakeUoWFactory(func() commands.IntakeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateDeactivateOrderCommandHandler() commands.DeactivateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivateOrderCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateTakeSampleCommandHandler() commands.TakeSampleCommandHandler {
	var f commands.CollectionUoWFactory = FuncCollectionUoWFactory(func() commands.CollectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTakeSampleCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateRegisterResultsCommandHandler() commands.RegisterResultsCommandHandler {
	var f commands.SampleUoWFactory = FuncSampleUoWFactory(func() commands.SampleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterResultsCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateEditResultsCommandHandler() commands.EditResultsCommandHandler {
	var f commands.SampleUoWFactory = FuncSampleUoWFactory(func() commands.SampleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditResultsCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateUpdateSampleInfoCommandHandler() commands.UpdateSampleInfoCommandHandler {
	var f commands.SampleUoWFactory = FuncSampleUoWFactory(func() commands.SampleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateSampleInfoCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateDeactivateSampleCommandHandler() commands.DeactivateSampleCommandHandler {
	var f commands.SampleUoWFactory = FuncSampleUoWFactory(func() commands.SampleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivateSampleCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateGetOrderSnapshotQueryHandler() queries.GetOrderSnapshotQueryHandler {
	return queries.NewGetOrderSnapshotQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetSampleSnapshotQueryHandler() queries.GetSampleSnapshotQueryHandler {
	return queries.NewGetSampleSnapshotQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetSamplesQueryHandler() queries.GetSamplesQueryHandler {
	return queries.NewGetSamplesQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateListActiveAnalysesQueryHandler() queries.ListActiveAnalysesQueryHandler {
	return queries.NewListActiveAnalysesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAnalysisQueryHandler() queries.GetAnalysisQueryHandler {
	return queries.NewGetAnalysisQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPatientsQueryHandler() queries.ListPatientsQueryHandler {
	return queries.NewListPatientsQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateJobManager(reviewAfterDays int, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(orderrepo.NewGormOrderRepository(c.gormDB), reviewAfterDays, logger)
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncPatientUoWFactory func() commands.PatientUoW

func (f FuncPatientUoWFactory) Create() commands.PatientUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSampleUoWFactory func() commands.SampleUoW

func (f FuncSampleUoWFactory) Create() commands.SampleUoW {
	return f()
}

type FuncIntakeUoWFactory func() commands.IntakeUoW

func (f FuncIntakeUoWFactory) Create() commands.IntakeUoW {
	return f()
}

type FuncCollectionUoWFactory func() commands.CollectionUoW

func (f FuncCollectionUoWFactory) Create() commands.CollectionUoW {
	return f()
}
