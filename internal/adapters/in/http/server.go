// Package http exposes the engine over role-scoped REST routes. Every
// surface mounts under a role path segment ("/contractor/jobs",
// "/owner/jobs", ...) but fans into the same role-agnostic handlers;
// ownership and role rules are enforced by the core, not by routing.
// Authentication happens at the gateway, which forwards the caller identity
// in headers.
package http

import (
	"net/http"
	"time"

	"hauling/internal/core/application/usecases/commands"
	"hauling/internal/core/application/usecases/queries"
	"hauling/internal/core/domain/model/account"
	"hauling/internal/core/domain/model/kernel"
	"hauling/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handlers bundles every use case the HTTP surface exposes.
type Handlers struct {
	CreateJob            commands.CreateJobCommandHandler
	UpdateJob            commands.UpdateJobCommandHandler
	DuplicateJob         commands.DuplicateJobCommandHandler
	HoldJob              commands.HoldJobCommandHandler
	SwitchMaterial       commands.SwitchMaterialCommandHandler
	ExtendFinishTime     commands.ExtendFinishTimeCommandHandler
	ScheduleJob          commands.ScheduleJobCommandHandler
	EditAssignation      commands.EditAssignationCommandHandler
	RemoveAssignations   commands.RemoveAssignationsCommandHandler
	CancelPendingJob     commands.CancelPendingJobCommandHandler
	CancelScheduledJob   commands.CancelScheduledJobCommandHandler
	CancelTruck          commands.CancelTruckCommandHandler
	ClockIn              commands.ClockInCommandHandler
	FinishAssignation    commands.FinishAssignationCommandHandler
	ClockoutAssignations commands.ClockoutAssignationsCommandHandler
	FinishActiveJob      commands.FinishActiveJobCommandHandler
	RequestSwitch        commands.RequestSwitchCommandHandler
	DecideSwitch         commands.DecideSwitchCommandHandler
	DisputeScheduledJob  commands.DisputeScheduledJobCommandHandler
	ReviewDispute        commands.ReviewDisputeCommandHandler
	CreateRequestTruck   commands.CreateRequestTruckCommandHandler
	CloseRequestTruck    commands.CloseRequestTruckCommandHandler

	GetContractorJobs       queries.GetContractorJobsQueryHandler
	GetPendingRequestTrucks queries.GetPendingRequestTrucksQueryHandler
	FindMissedJobs          queries.FindMissedJobsQueryHandler
	CheckSwitch             queries.CheckSwitchQueryHandler
}

// Server wires the role-scoped routes onto an echo instance.
type Server struct {
	handlers  Handlers
	validator *validator.Validate
}

// NewServer creates the HTTP server adapter.
func NewServer(handlers Handlers) *Server {
	return &Server{
		handlers:  handlers,
		validator: validator.New(),
	}
}

// RegisterRoutes mounts all routes. The admin dispute and missed-jobs routes
// are registered on the static "/admin" prefix, which echo matches before
// the ":role" parameter.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	jobs := e.Group("/:role/jobs")
	jobs.POST("", s.createJob)
	jobs.GET("", s.getContractorJobs)
	jobs.PUT("/:jobId", s.updateJob)
	jobs.POST("/:jobId/duplicate", s.duplicateJob)
	jobs.PATCH("/:jobId/hold", s.holdJob)
	jobs.PATCH("/:jobId/material", s.switchMaterial)
	jobs.PATCH("/:jobId/extend", s.extendFinishTime)
	jobs.POST("/:jobId/schedule", s.scheduleJob)
	jobs.DELETE("/pending/:jobId", s.cancelPendingJob)
	jobs.DELETE("/scheduled/:scheduledJobId", s.cancelScheduledJob)
	jobs.DELETE("/scheduled/:scheduledJobId/remove-truck/:truckId", s.cancelTruck)
	jobs.PUT("/scheduled/:scheduledJobId/assignations/:assignationId", s.editAssignation)
	jobs.DELETE("/scheduled/:scheduledJobId/assignations", s.removeAssignations)
	jobs.POST("/scheduled/:scheduledJobId/clockout", s.clockoutAssignations)
	jobs.PATCH("/finish/:scheduledJobId", s.finishActiveJob)
	jobs.POST("/clock-in", s.clockIn)
	jobs.POST("/clock-out", s.finishAssignation)
	jobs.POST("/switch-job-request", s.requestSwitch)
	jobs.GET("/switch-job-request/:assignationId", s.checkSwitch)
	jobs.PATCH("/accept-deny-switch", s.decideSwitch)
	jobs.POST("/dispute/:scheduledJobId", s.disputeScheduledJob)

	e.POST("/admin/jobs/dispute/:scheduledJobId", s.reviewDispute)
	e.GET("/admin/jobs/missed", s.findMissedJobs)

	e.POST("/foreman/request-truck", s.createRequestTruck)
	e.GET("/:role/request-truck", s.getPendingRequestTrucks)
	e.DELETE("/:role/request-truck/:requestId", s.closeRequestTruck)
}

func (s *Server) createJob(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateJobRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return respondBadRequest(ctx, err)
	}

	details, err := req.Details.toDomain()
	if err != nil {
		return respondError(ctx, err)
	}
	categories, err := toCategoryInputs(req.Categories)
	if err != nil {
		return respondError(ctx, err)
	}
	generalJobID, err := parseOptionalUUID(req.GeneralJobID)
	if err != nil {
		return respondError(ctx, err)
	}
	requestTruckID, err := parseOptionalUUID(req.RequestTruckID)
	if err != nil {
		return respondError(ctx, err)
	}

	jobID := kernel.NewUUID()
	command, err := commands.NewCreateJobCommand(actor, jobID, details, categories,
		req.OnSite, generalJobID, requestTruckID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.CreateJob.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: jobID.String()})
}

func (s *Server) updateJob(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateJobRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return respondBadRequest(ctx, err)
	}

	details, err := req.Details.toDomain()
	if err != nil {
		return respondError(ctx, err)
	}
	categories, err := toCategoryInputs(req.Categories)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewUpdateJobCommand(actor, jobID, details, categories, req.Force)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.UpdateJob.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) duplicateJob(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	sourceJobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req DuplicateJobRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return respondBadRequest(ctx, err)
	}

	newJobID := kernel.NewUUID()
	command, err := commands.NewDuplicateJobCommand(actor, sourceJobID, newJobID,
		req.StartDate, req.EndDate)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.DuplicateJob.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: newJobID.String()})
}

func (s *Server) holdJob(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req HoldJobRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	command, err := commands.NewHoldJobCommand(actor, jobID, req.Hold)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.HoldJob.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) switchMaterial(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req SwitchMaterialRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return respondBadRequest(ctx, err)
	}

	command, err := commands.NewSwitchMaterialCommand(actor, jobID, req.Material)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.SwitchMaterial.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) extendFinishTime(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ExtendFinishTimeRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return respondBadRequest(ctx, err)
	}

	command, err := commands.NewExtendFinishTimeCommand(actor, jobID, req.NewEnd)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.ExtendFinishTime.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) scheduleJob(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ScheduleJobRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return respondBadRequest(ctx, err)
	}

	pairs, err := req.toInputs()
	if err != nil {
		return respondError(ctx, err)
	}

	scheduledJobID := kernel.NewUUID()
	command, err := commands.NewScheduleJobCommand(actor, jobID, scheduledJobID, pairs)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.ScheduleJob.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: scheduledJobID.String()})
}

func (s *Server) cancelPendingJob(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	jobID, err := kernel.UUIDFromString(ctx.Param("jobId"))
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewCancelPendingJobCommand(actor, jobID, time.Now().UTC())
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.CancelPendingJob.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) cancelScheduledJob(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	scheduledJobID, err := kernel.UUIDFromString(ctx.Param("scheduledJobId"))
	if err != nil {
		return respondError(ctx, err)
	}

	byOwner := actor.Role() == account.RoleOwner
	command, err := commands.NewCancelScheduledJobCommand(actor, scheduledJobID,
		byOwner, time.Now().UTC())
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.CancelScheduledJob.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) cancelTruck(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	scheduledJobID, err := kernel.UUIDFromString(ctx.Param("scheduledJobId"))
	if err != nil {
		return respondError(ctx, err)
	}
	truckID, err := kernel.UUIDFromString(ctx.Param("truckId"))
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewCancelTruckCommand(actor, scheduledJobID, truckID,
		time.Now().UTC())
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.CancelTruck.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) editAssignation(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	scheduledJobID, err := kernel.UUIDFromString(ctx.Param("scheduledJobId"))
	if err != nil {
		return respondError(ctx, err)
	}
	assignationID, err := kernel.UUIDFromString(ctx.Param("assignationId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req EditAssignationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return respondBadRequest(ctx, err)
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return respondError(ctx, err)
	}
	truckID, err := kernel.UUIDFromString(req.TruckID)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewEditAssignationCommand(actor, scheduledJobID,
		assignationID, driverID, truckID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.EditAssignation.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) removeAssignations(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	scheduledJobID, err := kernel.UUIDFromString(ctx.Param("scheduledJobId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req RemoveAssignationsRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return respondBadRequest(ctx, err)
	}

	assignationIDs, err := parseUUIDs(req.AssignationIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewRemoveAssignationsCommand(actor, scheduledJobID, assignationIDs)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.RemoveAssignations.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) clockoutAssignations(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	scheduledJobID, err := kernel.UUIDFromString(ctx.Param("scheduledJobId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ClockoutAssignationsRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return respondBadRequest(ctx, err)
	}

	assignationIDs, err := parseUUIDs(req.AssignationIDs)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewClockoutAssignationsCommand(actor, scheduledJobID,
		assignationIDs, time.Now().UTC())
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.ClockoutAssignations.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) finishActiveJob(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	scheduledJobID, err := kernel.UUIDFromString(ctx.Param("scheduledJobId"))
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewFinishActiveJobCommand(actor, scheduledJobID, time.Now().UTC())
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.FinishActiveJob.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) clockIn(ctx echo.Context) error {
	var req ClockInRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return respondBadRequest(ctx, err)
	}

	assignationID, err := kernel.UUIDFromString(req.AssignationID)
	if err != nil {
		return respondError(ctx, err)
	}

	var position *kernel.GeoPoint
	if req.Position != nil {
		point, err := kernel.NewGeoPoint(req.Position.Latitude, req.Position.Longitude)
		if err != nil {
			return respondError(ctx, err)
		}
		position = &point
	}

	command, err := commands.NewClockInCommand(assignationID, time.Now().UTC(), position)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.ClockIn.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) finishAssignation(ctx echo.Context) error {
	var req FinishAssignationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return respondBadRequest(ctx, err)
	}

	assignationID, err := kernel.UUIDFromString(req.AssignationID)
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewFinishAssignationCommand(assignationID, time.Now().UTC())
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.FinishAssignation.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) requestSwitch(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req RequestSwitchRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return respondBadRequest(ctx, err)
	}

	assignationIDs, err := parseUUIDs(req.AssignationIDs)
	if err != nil {
		return respondError(ctx, err)
	}
	finalJobID, err := kernel.UUIDFromString(req.FinalJobID)
	if err != nil {
		return respondError(ctx, err)
	}

	switches := make([]commands.SwitchInput, 0, len(assignationIDs))
	switchIDs := make([]string, 0, len(assignationIDs))
	for _, assignationID := range assignationIDs {
		switchID := kernel.NewUUID()
		switches = append(switches, commands.SwitchInput{
			SwitchID:      switchID,
			AssignationID: assignationID,
		})
		switchIDs = append(switchIDs, switchID.String())
	}

	command, err := commands.NewRequestSwitchCommand(actor, switches, finalJobID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.RequestSwitch.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDsResponse{IDs: switchIDs})
}

func (s *Server) checkSwitch(ctx echo.Context) error {
	assignationID, err := kernel.UUIDFromString(ctx.Param("assignationId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewCheckSwitchQuery(assignationID)
	if err != nil {
		return respondError(ctx, err)
	}
	response, err := s.handlers.CheckSwitch.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCheckSwitch(response))
}

func (s *Server) decideSwitch(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req DecideSwitchRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return respondBadRequest(ctx, err)
	}

	switchID, err := kernel.UUIDFromString(req.SwitchID)
	if err != nil {
		return respondError(ctx, err)
	}

	var position *kernel.GeoPoint
	if req.Position != nil {
		point, err := kernel.NewGeoPoint(req.Position.Latitude, req.Position.Longitude)
		if err != nil {
			return respondError(ctx, err)
		}
		position = &point
	}

	// The destination instance only materializes on accept; the id is minted
	// here either way so the response can reference it.
	scheduledJobID := kernel.NewUUID()
	command, err := commands.NewDecideSwitchCommand(actor, switchID, req.Accept, scheduledJobID, position)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.DecideSwitch.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	if !req.Accept {
		return ctx.NoContent(http.StatusOK)
	}
	return ctx.JSON(http.StatusOK, IDResponse{ID: scheduledJobID.String()})
}

func (s *Server) disputeScheduledJob(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	scheduledJobID, err := kernel.UUIDFromString(ctx.Param("scheduledJobId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req DisputeRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return respondBadRequest(ctx, err)
	}

	command, err := commands.NewDisputeScheduledJobCommand(actor, scheduledJobID, req.Message)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.DisputeScheduledJob.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) reviewDispute(ctx echo.Context) error {
	actor, err := actorWithRole(ctx, account.RoleAdmin)
	if err != nil {
		return respondError(ctx, err)
	}
	scheduledJobID, err := kernel.UUIDFromString(ctx.Param("scheduledJobId"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ReviewDisputeRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	command, err := commands.NewReviewDisputeCommand(actor, scheduledJobID, req.Upheld)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.ReviewDispute.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) getContractorJobs(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	contractorID := actor.EffectiveContractor()
	if contractorID == nil {
		return respondError(ctx, errs.NewForbiddenError("job board is contractor-scoped"))
	}

	query, err := queries.NewGetContractorJobsQuery(*contractorID)
	if err != nil {
		return respondError(ctx, err)
	}
	rows, err := s.handlers.GetContractorJobs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobSummaries(rows))
}

func (s *Server) findMissedJobs(ctx echo.Context) error {
	if _, err := actorWithRole(ctx, account.RoleAdmin); err != nil {
		return respondError(ctx, err)
	}

	cutoff := time.Now().UTC()
	if raw := ctx.QueryParam("cutoff"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return respondBadRequest(ctx, err)
		}
		cutoff = parsed
	}

	query, err := queries.NewFindMissedJobsQuery(cutoff)
	if err != nil {
		return respondError(ctx, err)
	}
	rows, err := s.handlers.FindMissedJobs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMissedJobs(rows))
}

func (s *Server) createRequestTruck(ctx echo.Context) error {
	actor, err := actorWithRole(ctx, account.RoleForeman)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CreateRequestTruckRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}
	if err := s.validator.Struct(req); err != nil {
		return respondBadRequest(ctx, err)
	}

	details, err := req.Details.toDomain()
	if err != nil {
		return respondError(ctx, err)
	}
	generalJobID, err := parseOptionalUUID(req.GeneralJobID)
	if err != nil {
		return respondError(ctx, err)
	}

	requestID := kernel.NewUUID()
	command, err := commands.NewCreateRequestTruckCommand(actor, requestID, generalJobID,
		details, req.toLines(), time.Now().UTC())
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.CreateRequestTruck.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: requestID.String()})
}

func (s *Server) getPendingRequestTrucks(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	contractorID := actor.EffectiveContractor()
	if contractorID == nil {
		return respondError(ctx, errs.NewForbiddenError("truck requests are contractor-scoped"))
	}

	query, err := queries.NewGetPendingRequestTrucksQuery(*contractorID)
	if err != nil {
		return respondError(ctx, err)
	}
	rows, err := s.handlers.GetPendingRequestTrucks.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPendingRequestTrucks(rows))
}

func (s *Server) closeRequestTruck(ctx echo.Context) error {
	actor, err := actorFromContext(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	requestID, err := kernel.UUIDFromString(ctx.Param("requestId"))
	if err != nil {
		return respondError(ctx, err)
	}

	command, err := commands.NewCloseRequestTruckCommand(actor, requestID)
	if err != nil {
		return respondError(ctx, err)
	}
	if err := s.handlers.CloseRequestTruck.Handle(ctx.Request().Context(), command); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}
