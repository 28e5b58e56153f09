// Package digest renders plain-text schedule summaries: the daily duty
// mail sent the evening before, and per-program weekly extracts. Output
// is meant to be pasted into mail as-is, so formatting is exact.
package digest

import (
	"fmt"
	"strings"
	"time"

	"rosterboard/internal/roster"
)

var weekdayKanji = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// Program selects which shift codes a weekly report extracts.
type Program string

const (
	ProgramAsadre Program = "asadre"
	ProgramCatch  Program = "catch"
)

// namesFor joins the names of every employee holding the shift on the
// date, in roster order, with a fullwidth comma.
func namesFor(schedule roster.ScheduleData, employees []roster.Employee, date, shiftID string) string {
	var names []string
	for _, emp := range employees {
		if schedule.Entry(date, emp.ID).HasShift(shiftID) {
			names = append(names, emp.Name)
		}
	}
	return strings.Join(names, "、")
}

type dutyLine struct {
	label   string
	shiftID string
}

func renderLines(schedule roster.ScheduleData, employees []roster.Employee, date string, defs []dutyLine) []string {
	var lines []string
	for _, def := range defs {
		if names := namesFor(schedule, employees, date, def.shiftID); names != "" {
			lines = append(lines, def.label+"→"+names)
		}
	}
	return lines
}

// shortDate renders "MM/DD(曜)" for headers.
func shortDate(t time.Time) string {
	return fmt.Sprintf("%02d/%02d(%s)", int(t.Month()), t.Day(), weekdayKanji[int(t.Weekday())])
}

// Daily renders the duty mail for the day after base. Program blocks
// with no assignments are omitted entirely.
func Daily(schedule roster.ScheduleData, employees []roster.Employee, base time.Time) string {
	target := base.AddDate(0, 0, 1)
	date := roster.FormatDate(target)

	var b strings.Builder
	fmt.Fprintf(&b, "%sの予定です。\n\n", shortDate(target))

	asa := renderLines(schedule, employees, date, []dutyLine{
		{"あさドM", "asad_m"},
		{"あさドS", "asad_s"},
		{"あさ中①", "asa_mid_1"},
		{"あさ中②", "asa_mid_2"},
	})
	if len(asa) > 0 {
		fmt.Fprintf(&b, "【あさドレメンバー】\n%s\n\n", strings.Join(asa, "\n"))
	}

	if day := renderLines(schedule, employees, date, []dutyLine{{"昼N", "day_n"}}); len(day) > 0 {
		fmt.Fprintf(&b, "%s\n\n", strings.Join(day, "\n"))
	}

	catch := renderLines(schedule, employees, date, []dutyLine{
		{"キャッチM", "catch_m"},
		{"キャッチC", "catch_c"},
		{"キャッチS", "catch_s"},
		{"キャッチE", "catch_e"},
	})
	if len(catch) > 0 {
		fmt.Fprintf(&b, "【キャッチ！】\n%s\n\n", strings.Join(catch, "\n"))
	}

	if drill := renderLines(schedule, employees, date, []dutyLine{{"地震訓練", "quake_drill"}}); len(drill) > 0 {
		fmt.Fprintf(&b, "【地震訓練】\n%s\n\n", strings.Join(drill, "\n"))
	}

	if night := namesFor(schedule, employees, date, "night_n"); night != "" {
		fmt.Fprintf(&b, "【夜間スタンバイ】\n夜間スタンバイ→%s\n", night)
	}

	return b.String()
}

// WeekRange returns the Monday..Sunday ISO dates of the week containing
// base.
func WeekRange(base time.Time) (start, end string) {
	day := int(base.Weekday())
	diff := -day + 1
	if day == 0 {
		diff = -6
	}
	monday := base.AddDate(0, 0, diff)
	return roster.FormatDate(monday), roster.FormatDate(monday.AddDate(0, 0, 6))
}

func programLines(program Program) []dutyLine {
	if program == ProgramAsadre {
		return []dutyLine{
			{"あさドM", "asad_m"},
			{"あさドS", "asad_s"},
			{"あさ中①", "asa_mid_1"},
			{"あさ中②", "asa_mid_2"},
		}
	}
	return []dutyLine{
		{"キャッチM", "catch_m"},
		{"キャッチC", "catch_c"},
		{"キャッチS", "catch_s"},
		{"キャッチE", "catch_e"},
		{"Cナレ", "c_narr"},
		{"Cナレ①", "c_narr_1"},
		{"Cナレ③", "c_narr_3"},
	}
}

func programTitle(program Program) string {
	if program == ProgramAsadre {
		return "あさドレ♪"
	}
	return "キャッチ！"
}

// Weekly renders a program extract over the inclusive date range. Days
// with no assignments for the program are skipped.
func Weekly(schedule roster.ScheduleData, employees []roster.Employee, program Program, startDate, endDate string) string {
	dates := roster.DatesBetween(startDate, endDate)
	if len(dates) == 0 {
		return ""
	}
	first, _ := roster.ParseDate(dates[0])
	last, _ := roster.ParseDate(dates[len(dates)-1])

	var b strings.Builder
	fmt.Fprintf(&b, "【%s週間予定】\n期間: %d/%d 〜 %d/%d\n\n",
		programTitle(program),
		int(first.Month()), first.Day(),
		int(last.Month()), last.Day(),
	)

	defs := programLines(program)
	for _, date := range dates {
		lines := renderLines(schedule, employees, date, defs)
		if len(lines) == 0 {
			continue
		}
		t, _ := roster.ParseDate(date)
		fmt.Fprintf(&b, "■ %02d/%02d (%s)\n%s\n\n",
			int(t.Month()), t.Day(), weekdayKanji[int(t.Weekday())],
			strings.Join(lines, "\n"),
		)
	}
	return b.String()
}
