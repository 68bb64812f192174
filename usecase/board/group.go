package board

import (
	"github.com/fastygo/assignment-board/domain"
)

// DefaultLabelLayout renders group headings like "Fri, May 10".
const DefaultLabelLayout = "Mon, Jan 2"

// DefaultDateLayout renders card dates like "5/10/2024".
const DefaultDateLayout = "1/2/2006"

// GroupByDueDate partitions records by their due-date label. Groups appear in
// the order their first record appears in the input and records keep their
// input order inside a group; nothing is sorted chronologically.
func GroupByDueDate(records []domain.Assignment, layout string) []domain.Group {
	if len(records) == 0 {
		return nil
	}

	index := make(map[string]int)
	groups := make([]domain.Group, 0)
	for _, record := range records {
		label := DueLabel(record, layout)
		pos, ok := index[label]
		if !ok {
			pos = len(groups)
			index[label] = pos
			groups = append(groups, domain.Group{Label: label})
		}
		groups[pos].Assignments = append(groups[pos].Assignments, record)
	}
	return groups
}

// DueLabel is the heading a record is grouped under.
func DueLabel(record domain.Assignment, layout string) string {
	if layout == "" {
		layout = DefaultLabelLayout
	}
	due, ok := record.Due()
	if !ok {
		return domain.UnknownLabel
	}
	return due.Format(layout)
}

// DueText is the date shown in a card's meta row. Unparsable dates are shown verbatim.
func DueText(record domain.Assignment, layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	due, ok := record.Due()
	if !ok {
		return record.DueDate
	}
	return due.Format(layout)
}
