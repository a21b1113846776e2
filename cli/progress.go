package main

import (
	"fmt"

	"github.com/amonks/songs/db"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var humanPrinter = message.NewPrinter(language.English)

func printLoadResult(filename string, res *db.LoadResult) {
	fmt.Printf("loaded %s\n", filename)
	printCount("songs", res.Songs)
	printCount("artists", res.Artists)
	printCount("genres", res.Genres)
	printCount("song genres", res.SongGenres)
}

func printCount(name string, n int) {
	humanPrinter.Printf("  %-12s %12d\n", name, n)
}
