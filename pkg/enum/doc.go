// Package enum attaches names, display labels and descriptions to Go
// enumeration constants through an explicit lookup table.
//
// # Usage
//
//	type Status int
//
//	const (
//		Draft Status = iota
//		InReview
//		Published
//	)
//
//	var statuses = enum.MustNew(
//		enum.Entry[Status]{Value: Draft, Name: "Draft"},
//		enum.Entry[Status]{Value: InReview, Name: "InReview", Display: "In review"},
//		enum.Entry[Status]{Value: Published, Name: "Published", Description: "Visible to everyone"},
//	)
//
//	statuses.DisplayName(InReview)        // "In review"
//	statuses.ParseOr("published", Draft)  // Published
//	statuses.DisplayNames()               // ["Draft", "In review", "Published"]
//
// Display labels and descriptions fall back to the entry name when empty.
// Lookups that match nothing return ErrUnknownValue.
package enum
