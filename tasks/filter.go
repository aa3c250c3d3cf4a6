/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package tasks

import (
	"strconv"
	"strings"
	"time"

	"github.com/josephgoksu/TaskDeck/models"
	"golang.org/x/text/language"
)

// FilterTasks returns the tasks whose title or description contains the term,
// case-insensitively. An empty term returns the input unchanged, same order.
func FilterTasks(tasks []models.Task, term string) []models.Task {
	if term == "" {
		return tasks
	}
	lower := strings.ToLower(term)
	filtered := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), lower) ||
			strings.Contains(strings.ToLower(t.Description), lower) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// supportedLocales and monthTables are parallel: matcher index selects the
// table. English is the matcher fallback for unknown tags.
var supportedLocales = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var localeMatcher = language.NewMatcher(supportedLocales)

var monthTables = [][12]string{
	{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	{"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
}

// MonthName returns the localized name of the month for the given tag.
func MonthName(m time.Month, tag language.Tag) string {
	_, index, _ := localeMatcher.Match(tag)
	return monthTables[index][m-1]
}

// GroupTasksByDate buckets completed tasks by year and localized month name,
// preserving input order within each bucket. Tasks without a completion
// timestamp are silently excluded. Bucket display order is a presentation
// concern left to the caller.
func GroupTasksByDate(tasks []models.Task, tag language.Tag) models.GroupedTasks {
	groups := models.GroupedTasks{}
	for _, t := range tasks {
		if t.CompletedAt == nil {
			continue
		}
		year := strconv.Itoa(t.CompletedAt.Year())
		month := MonthName(t.CompletedAt.Month(), tag)

		if groups[year] == nil {
			groups[year] = map[string][]models.Task{}
		}
		groups[year][month] = append(groups[year][month], t)
	}
	return groups
}
