// internal/roster/defaults.go
//
// Built-in dataset used when a persisted record is missing or
// unreadable. Each Default* function returns a fresh value so callers
// can mutate the result freely.

package roster

// DefaultRequiredHolidayCount is the monthly rest-day target applied to
// holiday-managed employees.
const DefaultRequiredHolidayCount = 9

// GrayOutShiftIDs are leave codes rendered dimmed in the grid.
func GrayOutShiftIDs() []string {
	return []string{"rest", "special_leave", "paid_leave", "comp_leave"}
}

// RestShiftIDs are the codes that count toward the monthly rest target.
func RestShiftIDs() []string {
	return []string{"rest", "comp_leave"}
}

// DefaultEmployees returns the built-in roster. Display order matters;
// the divider flag splits holiday-managed staff from the fixed block at
// the bottom.
func DefaultEmployees() []Employee {
	return []Employee{
		{ID: "emp1", Name: "阿部 芳美", Role: "アナウンサー", HolidayManaged: true},
		{ID: "emp2", Name: "赤木 由布子", Role: "アナウンサー", HolidayManaged: true},
		{ID: "emp3", Name: "中川 萌香", Role: "制作", HolidayManaged: true},
		{ID: "emp4", Name: "秋元 玲奈", Role: "デスク", HolidayManaged: true},
		{ID: "emp5", Name: "佐藤 健太", Role: "カメラ", HolidayManaged: true},
		{ID: "emp6", Name: "鈴木 一郎", Role: "音声", HolidayManaged: true},
		{ID: "emp7", Name: "田中 実", Role: "編集", HolidayManaged: true},
		{ID: "emp8", Name: "高橋 優子", Role: "制作", HolidayManaged: true},
		{ID: "emp9", Name: "伊藤 翔太", Role: "カメラ", HolidayManaged: true},
		{ID: "emp10", Name: "渡辺 さくら", Role: "アナウンサー", HolidayManaged: true},
		{ID: "emp11", Name: "山本 大輔", Role: "音声", HolidayManaged: true},
		{ID: "emp12", Name: "中村 裕子", Role: "デスク", HolidayManaged: true},
		{ID: "emp13", Name: "小林 健一", Role: "技術", HolidayManaged: true},
		{ID: "emp14", Name: "加藤 美咲", Role: "制作", HolidayManaged: true},
		{ID: "emp15", Name: "吉田 拓也", Role: "編集", HolidayManaged: true},
		{ID: "emp16", Name: "山田 花子", Role: "AD", HolidayManaged: true},
		{ID: "emp17", Name: "佐々木 希", Role: "アナウンサー", HolidayManaged: true},
		{ID: "emp18", Name: "山口 達也", Role: "カメラ", HolidayManaged: true},
		{ID: "emp19", Name: "松本 潤", Role: "照明", HolidayManaged: true},
		{ID: "emp20", Name: "井上 真央", Role: "制作", HolidayManaged: true, ShowDivider: true},
		{ID: "emp21", Name: "木村 拓哉", Role: "プロデューサー", BackgroundColor: "#f3f4f6"},
		{ID: "emp22", Name: "香取 慎吾", Role: "美術", BackgroundColor: "#f3f4f6"},
		{ID: "emp23", Name: "草彅 剛", Role: "ドライバー", BackgroundColor: "#f3f4f6"},
		{ID: "emp24", Name: "稲垣 吾郎", Role: "編集", BackgroundColor: "#f3f4f6"},
		{ID: "emp25", Name: "中居 正広", Role: "MC", BackgroundColor: "#f3f4f6"},
	}
}

// DefaultShiftTypes returns the built-in shift catalogue.
func DefaultShiftTypes() []ShiftType {
	return []ShiftType{
		{ID: "morning_n", Name: "朝N", ShortName: "朝N", Color: "#fce7f3", TextColor: "#831843"},
		{ID: "asad_m", Name: "あさドM", ShortName: "あさM", Color: "#fbcfe8", TextColor: "#831843"},
		{ID: "asad_s", Name: "あさドS", ShortName: "あさS", Color: "#fbcfe8", TextColor: "#831843"},
		{ID: "asa_mid_1", Name: "あさ中①", ShortName: "あ中①", Color: "#fecdd3", TextColor: "#881337"},
		{ID: "asa_mid_2", Name: "あさ中②", ShortName: "あ中②", Color: "#fecdd3", TextColor: "#881337"},

		{ID: "day_shift", Name: "日勤", ShortName: "日勤", Color: "#dbeafe", TextColor: "#1e3a8a"},
		{ID: "day_mid", Name: "昼中", ShortName: "昼中", Color: "#dbeafe", TextColor: "#1e3a8a"},
		{ID: "day_n", Name: "昼N", ShortName: "昼N", Color: "#bae6fd", TextColor: "#0c4a6e"},

		{ID: "catch_m", Name: "キャッチM", ShortName: "キM", Color: "#fef9c3", TextColor: "#713f12"},
		{ID: "catch_c", Name: "キャッチC", ShortName: "キC", Color: "#fef08a", TextColor: "#713f12"},
		{ID: "catch_s", Name: "キャッチS", ShortName: "キS", Color: "#fef3c7", TextColor: "#78350f"},
		{ID: "catch_e", Name: "キャッチE", ShortName: "キE", Color: "#fde68a", TextColor: "#78350f"},

		{ID: "c_narr", Name: "Cナレ", ShortName: "Cナレ", Color: "#ffedd5", TextColor: "#7c2d12"},
		{ID: "c_narr_1", Name: "Cナレ①", ShortName: "Cナ①", Color: "#ffedd5", TextColor: "#7c2d12"},
		{ID: "c_narr_3", Name: "Cナレ③", ShortName: "Cナ③", Color: "#ffedd5", TextColor: "#7c2d12"},
		{ID: "coming", Name: "カミング", ShortName: "カミ", Color: "#fed7aa", TextColor: "#7c2d12"},
		{ID: "coming_narr", Name: "カミングナレ", ShortName: "カミナ", Color: "#fed7aa", TextColor: "#7c2d12"},

		{ID: "night_n", Name: "夜N", ShortName: "夜N", Color: "#c7d2fe", TextColor: "#312e81"},
		{ID: "night_s", Name: "夜S", ShortName: "夜S", Color: "#a5b4fc", TextColor: "#312e81"},
		{ID: "quake_drill", Name: "地震訓練", ShortName: "訓練", Color: "#bbf7d0", TextColor: "#14532d"},

		{ID: "comp_leave", Name: "必休", ShortName: "必休", Color: "#9ca3af", TextColor: "#ffffff"},
		{ID: "rest", Name: "休", ShortName: "休", Color: "#9ca3af", TextColor: "#ffffff"},
		{ID: "paid_leave", Name: "有休", ShortName: "有休", Color: "#9ca3af", TextColor: "#ffffff"},
		{ID: "special_leave", Name: "特休", ShortName: "特休", Color: "#9ca3af", TextColor: "#ffffff"},

		{ID: ShiftIDTravel, Name: "出張", ShortName: "出張", Color: "#fde047", TextColor: "#713f12"},
		{ID: ShiftIDProduction, Name: "MA", ShortName: "MA", Color: "#f3e8ff", TextColor: "#581c87"},
		{ID: "refresh", Name: "リフレ", ShortName: "リフレ", Color: "#99f6e4", TextColor: "#134e4a"},
	}
}

// DefaultRequiredShifts returns the built-in per-weekday coverage rules.
// Monday through Friday share one mandatory list; weekends start empty.
func DefaultRequiredShifts() RequiredShiftsByDay {
	weekday := []string{
		"asad_m", "asad_s", "asa_mid_1", "asa_mid_2",
		"day_n",
		"catch_m", "catch_c", "catch_s", "catch_e",
		"quake_drill",
		"night_n",
	}
	rules := make(RequiredShiftsByDay, 5)
	for wd := 1; wd <= 5; wd++ {
		ids := make([]string, len(weekday))
		copy(ids, weekday)
		rules[wd] = ids
	}
	return rules
}

// DefaultSchedule returns a small sample month used on first launch.
func DefaultSchedule() ScheduleData {
	return ScheduleData{
		"2025-12-01": {
			"emp1": {ShiftIDs: []string{"asad_m"}},
			"emp2": {ShiftIDs: []string{"asad_s"}},
			"emp3": {ShiftIDs: []string{"asa_mid_1"}},
			"emp4": {ShiftIDs: []string{"catch_m"}},
			"emp5": {ShiftIDs: []string{"catch_s"}},
			"emp6": {ShiftIDs: []string{"night_n"}},
		},
		"2025-12-02": {
			"emp1":  {ShiftIDs: []string{"catch_m"}},
			"emp2":  {ShiftIDs: []string{"catch_c"}},
			"emp3":  {ShiftIDs: []string{"asa_mid_2"}},
			"emp10": {ShiftIDs: []string{"asad_m"}},
			"emp11": {ShiftIDs: []string{"night_n"}},
			"emp12": {ShiftIDs: []string{"c_narr"}},
		},
		"2025-12-03": {
			"emp1": {ShiftIDs: []string{"catch_e"}},
			"emp4": {ShiftIDs: []string{"asad_m"}},
			"emp5": {ShiftIDs: []string{"asad_s"}},
			"emp7": {ShiftIDs: []string{"c_narr_1"}},
			"emp8": {ShiftIDs: []string{"night_n"}},
		},
		"2025-12-04": {
			"emp1":  {ShiftIDs: []string{ShiftIDProduction}, Production: &ProductionDetail{Time: "1300", Content: "番組収録"}},
			"emp2":  {ShiftIDs: []string{ShiftIDTravel}, Travel: &TravelDetail{Destination: "大阪"}},
			"emp10": {ShiftIDs: []string{"catch_m"}},
			"emp13": {ShiftIDs: []string{"c_narr_3"}},
		},
		"2025-12-05": {
			"emp1": {ShiftIDs: []string{"catch_m"}},
			"emp2": {ShiftIDs: []string{"catch_s"}},
			"emp3": {ShiftIDs: []string{"asad_m"}},
			"emp4": {ShiftIDs: []string{"asad_s"}},
			"emp5": {ShiftIDs: []string{"asa_mid_1"}},
			"emp6": {ShiftIDs: []string{"asa_mid_2"}},
			"emp7": {ShiftIDs: []string{"catch_e"}},
		},
	}
}
