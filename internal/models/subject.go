package models

// Subject pairs a display name with its fixed abbreviation code.
type Subject struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// FallbackAbbreviation is returned for subjects outside the registry.
const FallbackAbbreviation = "MH"

var subjects = []Subject{
	{Name: "Tiếng Việt", Abbreviation: "TV"},
	{Name: "Toán", Abbreviation: "T"},
	{Name: "Tiếng Anh", Abbreviation: "TA"},
	{Name: "Đạo đức", Abbreviation: "DD"},
	{Name: "Tự nhiên và Xã hội", Abbreviation: "TNXH"},
	{Name: "Lịch sử và Địa lý", Abbreviation: "LSDL"},
	{Name: "Khoa học", Abbreviation: "KH"},
	{Name: "Tin học", Abbreviation: "TH"},
	{Name: "Công nghệ", Abbreviation: "CN"},
	{Name: "Giáo dục thể chất", Abbreviation: "GDTC"},
	{Name: "Nghệ thuật (Âm nhạc)", Abbreviation: "AN"},
	{Name: "Nghệ thuật (Mỹ thuật)", Abbreviation: "MT"},
	{Name: "Hoạt động trải nghiệm", Abbreviation: "HDTN"},
}

var grades = []string{"Khối 1", "Khối 2", "Khối 3", "Khối 4", "Khối 5"}

var semesters = []string{"Học kỳ 1", "Học kỳ 2"}

// Subjects returns the fixed elementary subject registry.
func Subjects() []Subject {
	out := make([]Subject, len(subjects))
	copy(out, subjects)
	return out
}

// Grades returns the grade cohorts offered by the selectors.
func Grades() []string {
	out := make([]string, len(grades))
	copy(out, grades)
	return out
}

// Semesters returns the semester vocabulary.
func Semesters() []string {
	out := make([]string, len(semesters))
	copy(out, semesters)
	return out
}

// SubjectAbbreviation resolves the code for a subject name. Unknown subjects
// fall back to the generic code rather than erroring.
func SubjectAbbreviation(name string) string {
	for _, subject := range subjects {
		if subject.Name == name {
			return subject.Abbreviation
		}
	}
	return FallbackAbbreviation
}
