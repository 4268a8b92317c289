/*
Package timestamp rewrites exiftool date strings.

A timestamp as printed by `exiftool -s -s -s` looks like

	2021:05:17 14:03:22
	2021:05:17 14:03:22+02:00

Transform swaps the date for the one held in a DateEdit and leaves the time of
day and the offset exactly as they were. It does no I/O and is safe to call from
any number of goroutines.
*/
package timestamp
