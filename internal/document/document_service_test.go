package document_test

import (
	"context"
	"strings"
	"testing"

	"leaveflow/internal/document"

	"github.com/stretchr/testify/assert"
)

func TestDocumentService_GenerateLeavePdf(t *testing.T) {
	ctx := context.Background()
	svc := document.NewService()

	t.Run("success renders a pdf with the supplied fields", func(t *testing.T) {
		pdf, err := svc.GenerateLeavePdf(ctx, document.GenerateLeavePdfRequest{
			EmployeeName: "Linh Tran",
			LeaveType:    "Annual Leave",
			StartDate:    "2025-07-01",
			EndDate:      "2025-07-03",
			TotalDays:    "2.5",
			Reason:       "Family trip",
		})

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))

		body := string(pdf)
		assert.Contains(t, body, "LEAVE APPLICATION FORM")
		assert.Contains(t, body, "Employee Name: Linh Tran")
		assert.Contains(t, body, "Leave Type: Annual Leave")
		assert.Contains(t, body, "Total Days: 2.5")
		assert.Contains(t, body, "Reason: Family trip")
		assert.NotContains(t, body, "N/A")
	})

	t.Run("success blanks render as N/A", func(t *testing.T) {
		pdf, err := svc.GenerateLeavePdf(ctx, document.GenerateLeavePdfRequest{
			EmployeeName: "  ",
		})

		assert.NoError(t, err)
		body := string(pdf)
		assert.Contains(t, body, "Employee Name: N/A")
		assert.Contains(t, body, "Leave Type: N/A")
		assert.Contains(t, body, "Start Date: N/A")
		assert.Contains(t, body, "End Date: N/A")
		assert.Contains(t, body, "Total Days: N/A")
		assert.Contains(t, body, "Reason: N/A")
	})

	t.Run("success escapes pdf string delimiters", func(t *testing.T) {
		pdf, err := svc.GenerateLeavePdf(ctx, document.GenerateLeavePdfRequest{
			Reason: "surgery (elective)",
		})

		assert.NoError(t, err)
		assert.Contains(t, string(pdf), `surgery \(elective\)`)
	})
}
