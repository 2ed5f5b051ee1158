package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/conductorhq/conductor/pkg/models"
)

// DecideApprovalRequest is the body for POST /approvals/:id.
type DecideApprovalRequest struct {
	Decision  string `json:"decision"`
	DecidedBy string `json:"decided_by,omitempty"`
}

// DecideApprovalResponse pairs the decided approval with the workflow
// snapshot after the resume.
type DecideApprovalResponse struct {
	Approval *models.ApprovalRequest `json:"approval"`
	Workflow *models.Workflow        `json:"workflow"`
}

// getApprovalHandler handles GET /approvals/:id.
func (s *Server) getApprovalHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return badRequest(c, "approval id is required")
	}

	approval, err := s.approvals.GetApproval(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, approval)
}

// decideApprovalHandler handles POST /approvals/:id: the external HITL
// confirmation path. The decision is applied through the engine so the
// paused workflow resumes in the same call.
func (s *Server) decideApprovalHandler(c *echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return badRequest(c, "approval id is required")
	}

	var req DecideApprovalRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err.Error())
	}
	decision := models.ApprovalDecision(req.Decision)
	if decision != models.ApprovalApproved && decision != models.ApprovalRejected {
		return badRequest(c, "decision must be approved or rejected")
	}

	ctx := c.Request().Context()
	approval, err := s.approvals.GetApproval(ctx, id)
	if err != nil {
		return respondError(c, err)
	}

	wf, err := s.engine.Resume(ctx, approval.WorkflowID, decision, req.DecidedBy)
	if err != nil {
		return respondError(c, err)
	}

	decided, err := s.approvals.GetApproval(ctx, id)
	if err != nil {
		decided = approval
	}
	return c.JSON(http.StatusOK, &DecideApprovalResponse{
		Approval: decided,
		Workflow: wf,
	})
}
