package slot

// Specializations is the fixed set of interview categories. Slot creation and
// the listing filter validate against the same list so values always match.
var Specializations = []string{
	"Frontend разработка",
	"Backend разработка",
	"Fullstack разработка",
	"Mobile разработка",
	"DevOps",
	"QA инженер",
	"Data Science",
	"System Design",
	"Алгоритмы и структуры данных",
	"Поведенческое интервью",
}

var specializationSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Specializations))
	for _, s := range Specializations {
		set[s] = struct{}{}
	}
	return set
}()

// IsValidSpecialization reports whether s belongs to the enumerated set.
func IsValidSpecialization(s string) bool {
	_, ok := specializationSet[s]
	return ok
}
