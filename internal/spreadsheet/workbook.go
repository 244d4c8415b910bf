package spreadsheet

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/noah-isme/remark-assist-api/internal/models"
)

// PickSheet chooses the worksheet that holds the roster for a subject: the
// first sheet whose name contains the subject name, or equals or contains
// its abbreviation, all case-insensitive. When nothing matches the first
// sheet of the workbook is used.
func PickSheet(f *excelize.File, subject string) string {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ""
	}
	subjectLower := strings.ToLower(subject)
	abbrLower := strings.ToLower(models.SubjectAbbreviation(subject))
	for _, name := range sheets {
		nl := strings.ToLower(name)
		if strings.Contains(nl, subjectLower) || nl == abbrLower || strings.Contains(nl, abbrLower) {
			return name
		}
	}
	return sheets[0]
}
