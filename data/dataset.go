package data

import "strings"

// A Dataset is the cleaned contents of the csv, ready to be loaded into the
// database. Artists and Genres are unique and sorted; every name referenced
// by a Song appears in them.
type Dataset struct {
	Artists []string
	Genres  []string
	Songs   []Song
}

// SearchName normalizes an artist name for lookups: lowercased, with all
// whitespace removed, so "Calvin Harris" and "calvinharris" match.
func SearchName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "")
}
