package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"lab-portal/internal/services"
	"lab-portal/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// ExportProjects streams the project register. With ?format=xlsx it
// renders a spreadsheet, otherwise it returns the rows as JSON.
func (c *ReportController) ExportProjects(ctx echo.Context) error {
	rows, err := c.reportService.ProjectRows(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if strings.ToLower(ctx.QueryParam("format")) == "xlsx" {
		return c.respondWithXLSX(ctx, rows)
	}
	return utils.SuccessResponse(ctx, rows, "project report", http.StatusOK)
}

var reportHeaders = []string{
	"ID", "Project", "Lab", "Leader", "Status", "Start date", "End date", "Equipment", "Team size",
}

func rowToSlice(row services.ProjectReportRow) []interface{} {
	return []interface{}{
		row.ID, row.Name, row.LabID, row.LeaderName, row.Status,
		row.StartDate, row.EndDate, row.Equipment, row.TeamSize,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, rows []services.ProjectReportRow) error {
	f := excelize.NewFile()
	sheet := "Projects"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "I1", style)

	for i, item := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := rowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "D", 20)
	f.SetColWidth(sheet, "H", "H", 45)

	fileName := fmt.Sprintf("projects_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
