package http

import (
	"net/http"

	"loan-management-backend/internal/domain/loan"
	"loan-management-backend/internal/usecase/review"

	"github.com/labstack/echo/v4"
)

type OfficerHandler struct{ uc *review.Usecase }

func NewOfficerHandler(uc *review.Usecase) *OfficerHandler {
	return &OfficerHandler{uc: uc}
}

// Applications serves the review queue. GET /officer/applications?status=applied
func (h *OfficerHandler) Applications(c echo.Context) error {
	if _, ok := callerID(c, HeaderReviewerID); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid " + HeaderReviewerID})
	}

	status := loan.Status(c.QueryParam("status"))
	switch status {
	case "", loan.StatusApplied, loan.StatusUnderReview, loan.StatusApproved, loan.StatusRejected, loan.StatusClosed:
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown status filter"})
	}

	out, err := h.uc.Applications(c.Request().Context(), status)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type underReviewReq struct {
	Remarks string `json:"remarks"`
}

// MarkUnderReview moves an applied loan into the review queue.
// PUT /officer/loans/:loan_id/under-review
func (h *OfficerHandler) MarkUnderReview(c echo.Context) error {
	reviewerID, ok := callerID(c, HeaderReviewerID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid " + HeaderReviewerID})
	}

	var req underReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.MarkUnderReview(c.Request().Context(), c.Param("loan_id"), reviewerID, req.Remarks)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type reviewReq struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
	Remarks  string `json:"remarks"`
}

// Review applies the officer's verdict. PUT /officer/loans/:loan_id/review
func (h *OfficerHandler) Review(c echo.Context) error {
	reviewerID, ok := callerID(c, HeaderReviewerID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid " + HeaderReviewerID})
	}

	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	out, err := h.uc.Review(c.Request().Context(), review.ReviewInput{
		LoanID:     c.Param("loan_id"),
		ReviewerID: reviewerID,
		Decision:   review.Decision(req.Decision),
		Remarks:    req.Remarks,
	})
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
