package api

import (
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/conductorhq/conductor/pkg/models"
)

// ExecuteWorkflowRequest is the body for POST /workflow/execute.
type ExecuteWorkflowRequest struct {
	TemplateName string         `json:"template_name"`
	Context      map[string]any `json:"context"`
	TaskID       string         `json:"task_id,omitempty"`
}

// ResumeWorkflowRequest is the body for POST /workflow/resume/:id.
type ResumeWorkflowRequest struct {
	ApprovalDecision string `json:"approval_decision"`
	DecidedBy        string `json:"decided_by,omitempty"`
}

// TemplateListResponse is the body for GET /workflow/templates.
type TemplateListResponse struct {
	Templates []string `json:"templates"`
}

// WorkflowResponse is a workflow snapshot, enriched with the pending approval
// reference when the run paused on a HITL gate. The caller needs the
// approval_id to decide via POST /approvals/:id without subscribing to the
// stream.
type WorkflowResponse struct {
	*models.Workflow
	ApprovalID string           `json:"approval_id,omitempty"`
	Risk       models.RiskLevel `json:"risk,omitempty"`
}

// workflowJSON writes the snapshot, looking up the pending approval for the
// current step when the workflow is paused.
func (s *Server) workflowJSON(c *echo.Context, wf *models.Workflow) error {
	resp := &WorkflowResponse{Workflow: wf}
	if wf.Status == models.WorkflowPaused && s.approvals != nil {
		approval, err := s.approvals.GetApprovalForStep(c.Request().Context(), wf.ID, wf.CurrentStep)
		if err != nil {
			slog.Warn("Paused workflow has no resolvable approval",
				"workflow_id", wf.ID, "step_id", wf.CurrentStep, "error", err)
		} else {
			resp.ApprovalID = approval.ID
			resp.Risk = approval.Risk
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// executeWorkflowHandler handles POST /workflow/execute: create the workflow
// and run it until it pauses or terminates, returning the final snapshot.
func (s *Server) executeWorkflowHandler(c *echo.Context) error {
	var req ExecuteWorkflowRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err.Error())
	}
	if req.TemplateName == "" {
		return badRequest(c, "template_name is required")
	}

	wf, err := s.engine.Execute(c.Request().Context(), req.TemplateName, req.Context, req.TaskID)
	if err != nil {
		return respondError(c, err)
	}
	return s.workflowJSON(c, wf)
}

// workflowStatusHandler handles GET /workflow/status/:id.
func (s *Server) workflowStatusHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return badRequest(c, "workflow id is required")
	}

	wf, err := s.workflows.GetWorkflow(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, wf)
}

// resumeWorkflowHandler handles POST /workflow/resume/:id. The body carries
// the approval decision; repeating an already-applied decision returns the
// current snapshot unchanged.
func (s *Server) resumeWorkflowHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return badRequest(c, "workflow id is required")
	}

	var req ResumeWorkflowRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err.Error())
	}
	decision := models.ApprovalDecision(req.ApprovalDecision)
	if decision != models.ApprovalApproved && decision != models.ApprovalRejected {
		return badRequest(c, "approval_decision must be approved or rejected")
	}

	// A later gate may pause the run again; the snapshot then carries the
	// next approval_id.
	wf, err := s.engine.Resume(c.Request().Context(), id, decision, req.DecidedBy)
	if err != nil {
		return respondError(c, err)
	}
	return s.workflowJSON(c, wf)
}

// cancelWorkflowHandler handles POST /workflow/cancel/:id. Cancelling a
// terminal workflow is a no-op returning the snapshot.
func (s *Server) cancelWorkflowHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return badRequest(c, "workflow id is required")
	}

	wf, err := s.engine.Cancel(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, wf)
}

// listTemplatesHandler handles GET /workflow/templates.
func (s *Server) listTemplatesHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, &TemplateListResponse{
		Templates: s.templates.Names(),
	})
}
