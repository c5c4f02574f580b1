package http

import (
	"net/http"
	"strconv"

	"loan-management-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *report.Usecase }

func NewReportHandler(uc *report.Usecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// GET /officer/reports/outstanding
func (h *ReportHandler) Outstanding(c echo.Context) error {
	if _, ok := callerID(c, HeaderReviewerID); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid " + HeaderReviewerID})
	}
	out, err := h.uc.Outstanding(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /officer/reports/status
func (h *ReportHandler) StatusCounts(c echo.Context) error {
	if _, ok := callerID(c, HeaderReviewerID); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid " + HeaderReviewerID})
	}
	out, err := h.uc.StatusCounts(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /officer/reports/overdue
func (h *ReportHandler) Overdue(c echo.Context) error {
	if _, ok := callerID(c, HeaderReviewerID); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid " + HeaderReviewerID})
	}
	out, err := h.uc.Overdue(c.Request().Context())
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /officer/reports/monthly?month=6&year=2026
func (h *ReportHandler) Monthly(c echo.Context) error {
	if _, ok := callerID(c, HeaderReviewerID); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid " + HeaderReviewerID})
	}

	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "month must be an integer"})
	}
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "year must be an integer"})
	}

	out, err := h.uc.Monthly(c.Request().Context(), month, year)
	if err != nil {
		return writeDomainErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
