// Package http is the inbound HTTP adapter. It translates echo requests
// into commands and queries, and domain errors into HTTP statuses. All
// routes sit behind the identity middleware; the caller's role and account
// id come exclusively from the decoded token.
package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"labflow/internal/core/application/usecases/commands"
	"labflow/internal/core/application/usecases/queries"
	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/order"
	"labflow/internal/core/domain/model/patient"
	"labflow/internal/core/domain/services"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createAnalysisHandler     commands.CreateAnalysisCommandHandler
	updateAnalysisHandler     commands.UpdateAnalysisCommandHandler
	deactivateAnalysisHandler commands.DeactivateAnalysisCommandHandler
	createPatientHandler      commands.CreatePatientCommandHandler
	deactivatePatientHandler  commands.DeactivatePatientCommandHandler
	changePasswordHandler     commands.ChangePasswordCommandHandler
	createOrderHandler        commands.CreateOrderCommandHandler
	updateOrderHandler        commands.UpdateOrderCommandHandler
	deactivateOrderHandler    commands.DeactivateOrderCommandHandler
	takeSampleHandler         commands.TakeSampleCommandHandler
	registerResultsHandler    commands.RegisterResultsCommandHandler
	editResultsHandler        commands.EditResultsCommandHandler
	updateSampleInfoHandler   commands.UpdateSampleInfoCommandHandler
	deactivateSampleHandler   commands.DeactivateSampleCommandHandler

	getOrderSnapshotHandler   queries.GetOrderSnapshotQueryHandler
	getSampleSnapshotHandler  queries.GetSampleSnapshotQueryHandler
	getPendingOrdersHandler   queries.GetPendingOrdersQueryHandler
	getSamplesHandler         queries.GetSamplesQueryHandler
	listActiveAnalysesHandler queries.ListActiveAnalysesQueryHandler
	getAnalysisHandler        queries.GetAnalysisQueryHandler
	listPatientsHandler       queries.ListPatientsQueryHandler
}

// NewServer creates an HTTP server wired to the given use case handlers.
func NewServer(
	createAnalysisHandler commands.CreateAnalysisCommandHandler,
	updateAnalysisHandler commands.UpdateAnalysisCommandHandler,
	deactivateAnalysisHandler commands.DeactivateAnalysisCommandHandler,
	createPatientHandler commands.CreatePatientCommandHandler,
	deactivatePatientHandler commands.DeactivatePatientCommandHandler,
	changePasswordHandler commands.ChangePasswordCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deactivateOrderHandler commands.DeactivateOrderCommandHandler,
	takeSampleHandler commands.TakeSampleCommandHandler,
	registerResultsHandler commands.RegisterResultsCommandHandler,
	editResultsHandler commands.EditResultsCommandHandler,
	updateSampleInfoHandler commands.UpdateSampleInfoCommandHandler,
	deactivateSampleHandler commands.DeactivateSampleCommandHandler,
	getOrderSnapshotHandler queries.GetOrderSnapshotQueryHandler,
	getSampleSnapshotHandler queries.GetSampleSnapshotQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getSamplesHandler queries.GetSamplesQueryHandler,
	listActiveAnalysesHandler queries.ListActiveAnalysesQueryHandler,
	getAnalysisHandler queries.GetAnalysisQueryHandler,
	listPatientsHandler queries.ListPatientsQueryHandler,
) *Server {
	return &Server{
		createAnalysisHandler:     createAnalysisHandler,
		updateAnalysisHandler:     updateAnalysisHandler,
		deactivateAnalysisHandler: deactivateAnalysisHandler,
		createPatientHandler:      createPatientHandler,
		deactivatePatientHandler:  deactivatePatientHandler,
		changePasswordHandler:     changePasswordHandler,
		createOrderHandler:        createOrderHandler,
		updateOrderHandler:        updateOrderHandler,
		deactivateOrderHandler:    deactivateOrderHandler,
		takeSampleHandler:         takeSampleHandler,
		registerResultsHandler:    registerResultsHandler,
		editResultsHandler:        editResultsHandler,
		updateSampleInfoHandler:   updateSampleInfoHandler,
		deactivateSampleHandler:   deactivateSampleHandler,
		getOrderSnapshotHandler:   getOrderSnapshotHandler,
		getSampleSnapshotHandler:  getSampleSnapshotHandler,
		getPendingOrdersHandler:   getPendingOrdersHandler,
		getSamplesHandler:         getSamplesHandler,
		listActiveAnalysesHandler: listActiveAnalysesHandler,
		getAnalysisHandler:        getAnalysisHandler,
		listPatientsHandler:       listPatientsHandler,
	}
}

// RegisterRoutes mounts every API route behind the identity middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, identity echo.MiddlewareFunc) {
	api := e.Group("/api/v1", identity)

	api.GET("/analyses", s.ListActiveAnalyses)
	api.POST("/analyses", s.CreateAnalysis)
	api.GET("/analyses/:analysisId", s.GetAnalysis)
	api.PUT("/analyses/:analysisId", s.UpdateAnalysis)
	api.DELETE("/analyses/:analysisId", s.DeactivateAnalysis)

	api.GET("/patients", s.ListPatients)
	api.POST("/patients", s.CreatePatient)
	api.DELETE("/patients/:patientId", s.DeactivatePatient)
	api.PUT("/patients/:patientId/password", s.ChangePassword)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.GET("/orders/:orderId", s.GetOrderSnapshot)
	api.PATCH("/orders/:orderId", s.UpdateOrder)
	api.DELETE("/orders/:orderId", s.DeactivateOrder)
	api.POST("/orders/:orderId/samples", s.TakeSample)

	api.GET("/samples", s.GetSamples)
	api.GET("/samples/:sampleId", s.GetSampleSnapshot)
	api.PATCH("/samples/:sampleId", s.UpdateSampleInfo)
	api.DELETE("/samples/:sampleId", s.DeactivateSample)
	api.POST("/samples/:sampleId/results", s.RegisterResults)
	api.PUT("/samples/:sampleId/results", s.EditResults)
}

func (s *Server) caller(ctx echo.Context) (services.Caller, error) {
	caller, ok := callerFrom(ctx)
	if !ok {
		return services.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
	}
	return caller, nil
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// --- catalog ---

type analysisRequest struct {
	Name           string          `json:"name"`
	UnitCost       decimal.Decimal `json:"unitCost"`
	TurnaroundDays int             `json:"turnaroundDays"`
	Description    string          `json:"description"`
}

type analysisResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	UnitCost       decimal.Decimal `json:"unitCost"`
	TurnaroundDays int             `json:"turnaroundDays"`
	Description    string          `json:"description"`
	Active         bool            `json:"active"`
}

func analysisResponseFrom(entry queries.AnalysisResponse) analysisResponse {
	return analysisResponse{
		ID:             entry.ID.String(),
		Name:           entry.Name,
		UnitCost:       entry.UnitCost,
		TurnaroundDays: entry.TurnaroundDays,
		Description:    entry.Description,
		Active:         entry.Active,
	}
}

// ListActiveAnalyses handles GET /api/v1/analyses.
func (s *Server) ListActiveAnalyses(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListActiveAnalysesQuery(caller)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.listActiveAnalysesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]analysisResponse, 0, len(result.Analyses))
	for _, entry := range result.Analyses {
		response = append(response, analysisResponseFrom(entry))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetAnalysis handles GET /api/v1/analyses/:analysisId.
func (s *Server) GetAnalysis(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	analysisID, err := pathUUID(ctx, "analysisId")
	if err != nil {
		return badRequest(ctx, "invalid analysis id")
	}

	query, err := queries.NewGetAnalysisQuery(caller, analysisID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getAnalysisHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, analysisResponseFrom(result))
}

// CreateAnalysis handles POST /api/v1/analyses.
func (s *Server) CreateAnalysis(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	var request analysisRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	analysisID := kernel.NewUUID()
	cmd, err := commands.NewCreateAnalysisCommand(
		caller, analysisID, request.Name, request.UnitCost, request.TurnaroundDays, request.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createAnalysisHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": analysisID.String()})
}

// UpdateAnalysis handles PUT /api/v1/analyses/:analysisId.
func (s *Server) UpdateAnalysis(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	analysisID, err := pathUUID(ctx, "analysisId")
	if err != nil {
		return badRequest(ctx, "invalid analysis id")
	}

	var request analysisRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateAnalysisCommand(
		caller, analysisID, request.Name, request.UnitCost, request.TurnaroundDays, request.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateAnalysisHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeactivateAnalysis handles DELETE /api/v1/analyses/:analysisId.
func (s *Server) DeactivateAnalysis(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	analysisID, err := pathUUID(ctx, "analysisId")
	if err != nil {
		return badRequest(ctx, "invalid analysis id")
	}

	cmd, err := commands.NewDeactivateAnalysisCommand(caller, analysisID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deactivateAnalysisHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// --- patients ---

type createPatientRequest struct {
	FirstName       string    `json:"firstName"`
	PaternalSurname string    `json:"paternalSurname"`
	MaternalSurname string    `json:"maternalSurname"`
	DateOfBirth     time.Time `json:"dateOfBirth"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Password        string    `json:"password"`
}

type patientResponse struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"firstName"`
	PaternalSurname string    `json:"paternalSurname"`
	MaternalSurname string    `json:"maternalSurname"`
	DateOfBirth     time.Time `json:"dateOfBirth"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Active          bool      `json:"active"`
}

// ListPatients handles GET /api/v1/patients.
func (s *Server) ListPatients(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListPatientsQuery(caller)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.listPatientsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]patientResponse, 0, len(result.Patients))
	for _, entry := range result.Patients {
		response = append(response, patientResponse{
			ID:              entry.ID.String(),
			FirstName:       entry.FirstName,
			PaternalSurname: entry.PaternalSurname,
			MaternalSurname: entry.MaternalSurname,
			DateOfBirth:     entry.DateOfBirth,
			Email:           entry.Email,
			Role:            entry.Role,
			Active:          entry.Active,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreatePatient handles POST /api/v1/patients.
func (s *Server) CreatePatient(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	var request createPatientRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	role, err := patient.ParseRole(request.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	patientID := kernel.NewUUID()
	cmd, err := commands.NewCreatePatientCommand(
		caller,
		patientID,
		request.FirstName,
		request.PaternalSurname,
		request.MaternalSurname,
		request.DateOfBirth,
		request.Email,
		role,
		request.Password,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createPatientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": patientID.String()})
}

// DeactivatePatient handles DELETE /api/v1/patients/:patientId.
func (s *Server) DeactivatePatient(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	patientID, err := pathUUID(ctx, "patientId")
	if err != nil {
		return badRequest(ctx, "invalid patient id")
	}

	cmd, err := commands.NewDeactivatePatientCommand(caller, patientID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deactivatePatientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangePassword handles PUT /api/v1/patients/:patientId/password.
func (s *Server) ChangePassword(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	patientID, err := pathUUID(ctx, "patientId")
	if err != nil {
		return badRequest(ctx, "invalid patient id")
	}

	var request struct {
		NewPassword string `json:"newPassword"`
	}
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewChangePasswordCommand(caller, patientID, request.NewPassword)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changePasswordHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// --- orders ---

type createOrderRequest struct {
	PatientID       string          `json:"patientId"`
	AnalysisIDs     []string        `json:"analysisIds"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	AdvancePaid     decimal.Decimal `json:"advancePaid"`
	Notes           string          `json:"notes"`
}

type updateOrderRequest struct {
	Status          *string          `json:"status"`
	DiscountPercent *decimal.Decimal `json:"discountPercent"`
	AdvancePaid     *decimal.Decimal `json:"advancePaid"`
	Notes           *string          `json:"notes"`
}

type lineItemResponse struct {
	AnalysisID  string          `json:"analysisId"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Description string          `json:"description"`
}

type orderResponse struct {
	ID              string             `json:"id"`
	PatientID       string             `json:"patientId"`
	Items           []lineItemResponse `json:"items"`
	DiscountPercent decimal.Decimal    `json:"discountPercent"`
	AdvancePaid     decimal.Decimal    `json:"advancePaid"`
	Notes           string             `json:"notes"`
	Status          string             `json:"status"`
	Active          bool               `json:"active"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	Total           decimal.Decimal    `json:"total"`
	BalanceDue      decimal.Decimal    `json:"balanceDue"`
	Overpayment     decimal.Decimal    `json:"overpayment"`
	CreatedAt       time.Time          `json:"createdAt"`
	Version         int                `json:"version"`
}

func orderResponseFrom(snapshot queries.GetOrderSnapshotQueryResponse) orderResponse {
	items := make([]lineItemResponse, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, lineItemResponse{
			AnalysisID:  item.AnalysisID.String(),
			Name:        item.Name,
			UnitPrice:   item.UnitPrice,
			Description: item.Description,
		})
	}

	return orderResponse{
		ID:              snapshot.ID.String(),
		PatientID:       snapshot.PatientID.String(),
		Items:           items,
		DiscountPercent: snapshot.DiscountPercent,
		AdvancePaid:     snapshot.AdvancePaid,
		Notes:           snapshot.Notes,
		Status:          snapshot.Status,
		Active:          snapshot.Active,
		Subtotal:        snapshot.Subtotal,
		Total:           snapshot.Total,
		BalanceDue:      snapshot.BalanceDue,
		Overpayment:     snapshot.Overpayment,
		CreatedAt:       snapshot.CreatedAt,
		Version:         snapshot.Version,
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	var request createOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	patientID, err := kernel.UUIDFromString(request.PatientID)
	if err != nil {
		return badRequest(ctx, "invalid patient id")
	}

	analysisIDs := make([]kernel.UUID, 0, len(request.AnalysisIDs))
	for _, raw := range request.AnalysisIDs {
		analysisID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "invalid analysis id: "+raw)
		}
		analysisIDs = append(analysisIDs, analysisID)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		caller, orderID, patientID, analysisIDs, request.DiscountPercent, request.AdvancePaid, request.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// GetOrderSnapshot handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrderSnapshot(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderSnapshotQuery(caller, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	snapshot, err := s.getOrderSnapshotHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFrom(snapshot))
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetPendingOrdersQuery(caller)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderResponse, 0, len(result.Orders))
	for _, snapshot := range result.Orders {
		response = append(response, orderResponseFrom(snapshot))
	}
	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PATCH /api/v1/orders/:orderId.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request updateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var status *order.Status
	if request.Status != nil {
		parsed, statusErr := order.StatusFromString(*request.Status)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(
		caller, orderID, status, request.DiscountPercent, request.AdvancePaid, request.Notes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeactivateOrder handles DELETE /api/v1/orders/:orderId.
func (s *Server) DeactivateOrder(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeactivateOrderCommand(caller, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deactivateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// --- samples ---

type sampleResultResponse struct {
	Category string             `json:"category"`
	Fields   map[string]float64 `json:"fields"`
}

type sampleResponse struct {
	ID                 string                `json:"id"`
	OrderID            string                `json:"orderId"`
	PatientID          string                `json:"patientId"`
	PatientDisplayName string                `json:"patientDisplayName"`
	Category           string                `json:"category"`
	Observations       string                `json:"observations"`
	Active             bool                  `json:"active"`
	ClientVisible      bool                  `json:"clientVisible"`
	Result             *sampleResultResponse `json:"result,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	Version            int                   `json:"version"`
}

type sampleSummaryResponse struct {
	ID                 string    `json:"id"`
	OrderID            string    `json:"orderId"`
	PatientID          string    `json:"patientId"`
	PatientDisplayName string    `json:"patientDisplayName"`
	Category           string    `json:"category"`
	Observations       string    `json:"observations"`
	Active             bool      `json:"active"`
	ClientVisible      bool      `json:"clientVisible"`
	HasResult          bool      `json:"hasResult"`
	CreatedAt          time.Time `json:"createdAt"`
	Version            int       `json:"version"`
}

type resultFieldsRequest struct {
	Fields map[string]float64 `json:"fields"`
}

// TakeSample handles POST /api/v1/orders/:orderId/samples.
func (s *Server) TakeSample(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var request struct {
		Observations string `json:"observations"`
	}
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewTakeSampleCommand(caller, orderID, request.Observations)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.takeSampleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetSamples handles GET /api/v1/samples, optionally filtered with
// ?orderId=.
func (s *Server) GetSamples(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	var query queries.GetSamplesQuery
	if raw := ctx.QueryParam("orderId"); raw != "" {
		orderID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return badRequest(ctx, "invalid order id")
		}
		query, err = queries.NewGetSamplesQueryForOrder(caller, orderID)
	} else {
		query, err = queries.NewGetSamplesQuery(caller)
	}
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getSamplesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]sampleSummaryResponse, 0, len(result.Samples))
	for _, summary := range result.Samples {
		response = append(response, sampleSummaryResponse{
			ID:                 summary.ID.String(),
			OrderID:            summary.OrderID.String(),
			PatientID:          summary.PatientID.String(),
			PatientDisplayName: summary.PatientDisplayName,
			Category:           summary.Category,
			Observations:       summary.Observations,
			Active:             summary.Active,
			ClientVisible:      summary.ClientVisible,
			HasResult:          summary.HasResult,
			CreatedAt:          summary.CreatedAt,
			Version:            summary.Version,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetSampleSnapshot handles GET /api/v1/samples/:sampleId.
func (s *Server) GetSampleSnapshot(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	sampleID, err := pathUUID(ctx, "sampleId")
	if err != nil {
		return badRequest(ctx, "invalid sample id")
	}

	query, err := queries.NewGetSampleSnapshotQuery(caller, sampleID)
	if err != nil {
		return writeError(ctx, err)
	}

	snapshot, err := s.getSampleSnapshotHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := sampleResponse{
		ID:                 snapshot.ID.String(),
		OrderID:            snapshot.OrderID.String(),
		PatientID:          snapshot.PatientID.String(),
		PatientDisplayName: snapshot.PatientDisplayName,
		Category:           snapshot.Category,
		Observations:       snapshot.Observations,
		Active:             snapshot.Active,
		ClientVisible:      snapshot.ClientVisible,
		CreatedAt:          snapshot.CreatedAt,
		Version:            snapshot.Version,
	}
	if snapshot.Result != nil {
		response.Result = &sampleResultResponse{
			Category: snapshot.Result.Category,
			Fields:   snapshot.Result.Fields,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterResults handles POST /api/v1/samples/:sampleId/results.
func (s *Server) RegisterResults(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	sampleID, err := pathUUID(ctx, "sampleId")
	if err != nil {
		return badRequest(ctx, "invalid sample id")
	}

	var request resultFieldsRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRegisterResultsCommand(caller, sampleID, request.Fields)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.registerResultsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EditResults handles PUT /api/v1/samples/:sampleId/results.
func (s *Server) EditResults(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	sampleID, err := pathUUID(ctx, "sampleId")
	if err != nil {
		return badRequest(ctx, "invalid sample id")
	}

	var request resultFieldsRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewEditResultsCommand(caller, sampleID, request.Fields)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.editResultsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateSampleInfo handles PATCH /api/v1/samples/:sampleId.
func (s *Server) UpdateSampleInfo(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	sampleID, err := pathUUID(ctx, "sampleId")
	if err != nil {
		return badRequest(ctx, "invalid sample id")
	}

	var request struct {
		Observations string `json:"observations"`
	}
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateSampleInfoCommand(caller, sampleID, request.Observations)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateSampleInfoHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeactivateSample handles DELETE /api/v1/samples/:sampleId.
func (s *Server) DeactivateSample(ctx echo.Context) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	sampleID, err := pathUUID(ctx, "sampleId")
	if err != nil {
		return badRequest(ctx, "invalid sample id")
	}

	cmd, err := commands.NewDeactivateSampleCommand(caller, sampleID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deactivateSampleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
