package commands_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"labflow/internal/core/domain/model/analysis"
	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/core/domain/model/patient"
	"labflow/internal/core/domain/model/sample"
	"labflow/internal/core/domain/services"
)

func callerWithRole(t *testing.T, role patient.Role) services.Caller {
	t.Helper()
	caller, err := services.NewCaller(role, kernel.NewUUID())
	require.NoError(t, err)
	return caller
}

func analysisFixture(t *testing.T, name string) *analysis.Analysis {
	t.Helper()
	a, err := analysis.NewAnalysis(kernel.NewUUID(), name, decimal.NewFromFloat(150.50), 2, "panel of six elements")
	require.NoError(t, err)
	return a
}

func patientFixture(t *testing.T, id kernel.UUID) *patient.Patient {
	t.Helper()
	p, err := patient.NewPatient(
		id,
		"Ana", "María", "López",
		time.Date(1990, time.April, 12, 0, 0, 0, 0, time.UTC),
		"ana@example.com",
		patient.RolePatient,
		"$2a$10$fixturehashfixturehashfixturehashfixtureha",
	)
	require.NoError(t, err)
	return p
}

func pendingOrderFixture(t *testing.T, itemNames ...string) *order.Order {
	t.Helper()
	items := make([]order.LineItem, 0, len(itemNames))
	for _, name := range itemNames {
		item, err := order.NewLineItem(kernel.NewUUID(), name, decimal.NewFromFloat(95.00), "panel description")
		require.NoError(t, err)
		items = append(items, item)
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, decimal.Zero, decimal.Zero, "")
	require.NoError(t, err)
	return o
}

func paidOrderFixture(t *testing.T) *order.Order {
	t.Helper()
	o := pendingOrderFixture(t, "Blood Chemistry Panel")
	require.NoError(t, o.MarkPaid())
	return o
}

func collectedSampleFixture(t *testing.T, category sample.Category) *sample.Sample {
	t.Helper()
	s, err := sample.NewSample(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "Ana María López", category, "")
	require.NoError(t, err)
	return s
}

func chemistryFields() map[string]float64 {
	return map[string]float64{
		"glucose":             92.0,
		"glucosePostprandial": 120.0,
		"uricAcid":            5.1,
		"urea":                28.0,
		"creatinine":          0.9,
		"cholesterol":         180.0,
		"ldh":                 140.0,
		"gammaGt":             25.0,
	}
}
