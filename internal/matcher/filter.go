package matcher

import (
	"strings"

	"golang.org/x/text/cases"

	"volunteer-match/internal/models"
)

type Predicate func(models.Volunteer) bool

// Filter keeps the volunteers for which keep returns true, preserving order.
func Filter(volunteers []models.Volunteer, keep Predicate) []models.Volunteer {
	var out []models.Volunteer
	for _, v := range volunteers {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// FilterRanked is Filter over ranked entries; distance order is preserved.
func FilterRanked(ranked []models.RankedVolunteer, keep Predicate) []models.RankedVolunteer {
	var out []models.RankedVolunteer
	for _, r := range ranked {
		if keep(r.Volunteer) {
			out = append(out, r)
		}
	}
	return out
}

func All(preds ...Predicate) Predicate {
	return func(v models.Volunteer) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// DateEquals compares dates as literal text. "2024-01-01" and "01/01/2024"
// do not match.
func DateEquals(date string) Predicate {
	return func(v models.Volunteer) bool {
		return v.Date == date
	}
}

func LanguageContains(language string) Predicate {
	return fieldContainsFold(func(v models.Volunteer) string { return v.LanguagesKnown }, language)
}

func SessionContains(session string) Predicate {
	return fieldContainsFold(func(v models.Volunteer) string { return v.Session }, session)
}

func QualificationContains(qualification string) Predicate {
	return fieldContainsFold(func(v models.Volunteer) string { return v.Qualification }, qualification)
}

// FirstPass selects on date and language, before any distance is computed.
func FirstPass(q models.Query) Predicate {
	return All(DateEquals(q.Date), LanguageContains(q.Language))
}

// SecondPass selects on session and qualification over ranked survivors.
func SecondPass(q models.Query) Predicate {
	return All(SessionContains(q.Session), QualificationContains(q.Qualification))
}

// fieldContainsFold matches needle as a substring under Unicode case folding.
// An empty needle matches every record, blank fields included.
func fieldContainsFold(field func(models.Volunteer) string, needle string) Predicate {
	needle = fold(needle)
	return func(v models.Volunteer) bool {
		return strings.Contains(fold(field(v)), needle)
	}
}

// A cases.Caser carries state, so one is made per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
