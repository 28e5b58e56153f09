// Package sheet moves a month of the schedule in and out of xlsx
// workbooks. The layout mirrors the paper roster: one employee per row,
// name and role in the two leading columns, then one "M/D" column per
// day of the month.
package sheet

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"rosterboard/internal/roster"
)

var (
	headerDatePattern = regexp.MustCompile(`(\d{1,2})/(\d{1,2})`)
	travelDestPattern = regexp.MustCompile(`\((.*?)\)`)
)

// cellText renders one entry the way the workbook stores it: short
// names joined by commas, with travel as 出張(行き先) and production as
// MA followed by the time.
func cellText(entry roster.ShiftEntry, types []roster.ShiftType) string {
	if len(entry.ShiftIDs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(entry.ShiftIDs))
	for _, id := range entry.ShiftIDs {
		switch {
		case id == roster.ShiftIDTravel && entry.Travel != nil:
			parts = append(parts, fmt.Sprintf("出張(%s)", entry.Travel.Destination))
		case id == roster.ShiftIDProduction && entry.Production != nil:
			parts = append(parts, "MA"+entry.Production.Time)
		default:
			if st, ok := roster.ShiftTypeByID(types, id); ok {
				parts = append(parts, st.ShortName)
			}
		}
	}
	return strings.Join(parts, ",")
}

// Export writes one month of the schedule to an xlsx workbook at path.
func Export(path string, year int, month time.Month, employees []roster.Employee, schedule roster.ScheduleData, types []roster.ShiftType) error {
	file := excelize.NewFile()
	defer file.Close()

	sheetName := fmt.Sprintf("%d年%d月", year, int(month))
	if err := file.SetSheetName(file.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("sheet: name sheet: %w", err)
	}

	dates := roster.MonthDates(year, month)
	header := []interface{}{"氏名", "役職"}
	for _, date := range dates {
		t, _ := roster.ParseDate(date)
		header = append(header, fmt.Sprintf("%d/%d", int(t.Month()), t.Day()))
	}
	if err := file.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("sheet: write header: %w", err)
	}

	for i, emp := range employees {
		row := []interface{}{emp.Name, emp.Role}
		for _, date := range dates {
			row = append(row, cellText(schedule.Entry(date, emp.ID), types))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("sheet: row coordinates: %w", err)
		}
		if err := file.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("sheet: write row %d: %w", i+2, err)
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("sheet: save %s: %w", path, err)
	}
	return nil
}

// parseCell turns one workbook cell back into an entry. Values split on
// "," or "、"; unknown codes are dropped.
func parseCell(value string, types []roster.ShiftType) roster.ShiftEntry {
	var entry roster.ShiftEntry
	for _, part := range strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == '、' }) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch {
		case strings.HasPrefix(part, "出張"):
			entry.ShiftIDs = append(entry.ShiftIDs, roster.ShiftIDTravel)
			// Accept both ASCII and fullwidth parentheses around the
			// destination.
			normalized := strings.NewReplacer("（", "(", "）", ")").Replace(part)
			dest := ""
			if m := travelDestPattern.FindStringSubmatch(normalized); m != nil {
				dest = m[1]
			}
			entry.Travel = &roster.TravelDetail{Destination: dest}
		case strings.HasPrefix(part, "MA"):
			entry.ShiftIDs = append(entry.ShiftIDs, roster.ShiftIDProduction)
			entry.Production = &roster.ProductionDetail{Time: strings.TrimSpace(strings.TrimPrefix(part, "MA"))}
		default:
			for _, st := range types {
				if st.ShortName == part || st.Name == part {
					entry.ShiftIDs = append(entry.ShiftIDs, st.ID)
					break
				}
			}
		}
	}
	return entry
}

// Import reads a workbook back into a schedule for the given month.
// Header cells matching "M/D" for the target month select the date
// columns; rows whose first two cells match no known employee name are
// skipped. An import with no recognizable date column is an error.
func Import(path string, year int, month time.Month, employees []roster.Employee, types []roster.ShiftType) (roster.ScheduleData, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("sheet: open %s: %w", path, err)
	}
	defer file.Close()

	rows, err := file.GetRows(file.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("sheet: read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet: workbook has no data rows")
	}

	dateByCol := make(map[int]string)
	for col, headerVal := range rows[0] {
		m := headerDatePattern.FindStringSubmatch(headerVal)
		if m == nil {
			continue
		}
		var mm, dd int
		fmt.Sscanf(m[1], "%d", &mm)
		fmt.Sscanf(m[2], "%d", &dd)
		if mm != int(month) {
			continue
		}
		dateByCol[col] = fmt.Sprintf("%04d-%02d-%02d", year, mm, dd)
	}
	if len(dateByCol) == 0 {
		return nil, fmt.Errorf("sheet: no %d月 date columns in header", int(month))
	}

	byName := make(map[string]string, len(employees))
	for _, emp := range employees {
		byName[emp.Name] = emp.ID
	}

	schedule := roster.ScheduleData{}
	for _, row := range rows[1:] {
		empID := ""
		for c := 0; c < 2 && c < len(row); c++ {
			if id, ok := byName[strings.TrimSpace(row[c])]; ok {
				empID = id
				break
			}
		}
		if empID == "" {
			continue
		}
		for col, date := range dateByCol {
			if col >= len(row) || strings.TrimSpace(row[col]) == "" {
				continue
			}
			entry := parseCell(row[col], types)
			if len(entry.ShiftIDs) == 0 {
				continue
			}
			if schedule[date] == nil {
				schedule[date] = make(map[string]roster.ShiftEntry)
			}
			schedule[date][empID] = entry
		}
	}
	return schedule, nil
}
