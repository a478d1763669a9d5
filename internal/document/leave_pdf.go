package document

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"
)

func buildLeaveApplicationPDF(req GenerateLeavePdfRequest, generatedAt time.Time) ([]byte, error) {
	lines := []string{
		"LEAVE APPLICATION FORM",
		"LeaveFlow - Human Resource Management System",
		fmt.Sprintf("Generated on: %s", generatedAt.Format("January 02, 2006 at 03:04 PM")),
		"",
		"Employee Information",
		fmt.Sprintf("Employee Name: %s", orNA(req.EmployeeName)),
		"",
		"Leave Details",
		fmt.Sprintf("Leave Type: %s", orNA(req.LeaveType)),
		fmt.Sprintf("Start Date: %s", orNA(req.StartDate)),
		fmt.Sprintf("End Date: %s", orNA(req.EndDate)),
		fmt.Sprintf("Total Days: %s", orNA(req.TotalDays)),
		fmt.Sprintf("Reason: %s", orNA(req.Reason)),
		"",
		"Approval Section",
		"Employee Signature: _______________________   Date: _______________",
		"Manager/Approver Signature: _______________________   Date: _______________",
		"",
		"This is a system-generated document. No signature is required for electronic submission.",
	}

	return renderLinesPDF(lines)
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}

// renderLinesPDF emits a single-page PDF with one text line per input
// line. Enough for printable forms without pulling in a layout engine.
func renderLinesPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		return nil, errors.New("no content to render")
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
