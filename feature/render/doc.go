// Package render serializes weapon records into tables.
//
// # Formats
//
//   - wiki: MediaWiki pipe table ("{| class=wikitable sortable" ... "|}").
//   - html: sortable <table>; names carry their raw key as title, ships link to the wiki.
//   - json: array of objects, ships nested as {name, battle_rating, type}.
//   - csv: configurable delimiter, line terminator and list separator.
//   - xlsx: a single-sheet workbook, list cells joined by newlines.
//
// With RawNames set, every format prints keys, codes and unit ids instead of
// translated names, and no links or title decorations are added.
package render
