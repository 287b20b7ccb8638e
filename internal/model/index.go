package model

import "strings"

// BaseCode strips the section suffix from a course code: everything
// before the first literal " - " in codes like "CIS 2103 - Group 1".
// A code without the separator is its own base code.
func BaseCode(code string) string {
	base, _, _ := strings.Cut(code, " - ")
	return base
}

// SectionIndex groups sections by base course code. Group membership is
// computed once from the input list and is read-only afterwards; sections
// within a group keep their input order.
type SectionIndex struct {
	codes  []string
	groups map[string][]Course
}

func BuildSectionIndex(courses []Course) SectionIndex {
	index := SectionIndex{groups: make(map[string][]Course)}
	for _, course := range courses {
		base := BaseCode(course.Code)
		if _, ok := index.groups[base]; !ok {
			index.codes = append(index.codes, base)
		}
		index.groups[base] = append(index.groups[base], course)
	}
	return index
}

// Sections returns the group for a base code in input order.
func (index SectionIndex) Sections(base string) ([]Course, bool) {
	sections, ok := index.groups[base]
	return sections, ok
}

// Codes returns the base codes in first-seen order.
func (index SectionIndex) Codes() []string {
	return index.codes
}
