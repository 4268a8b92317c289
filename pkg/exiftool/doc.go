/*
Package exiftool talks to the external exiftool binary.

	+-----------+      +---------+      +----------+
	|  Gateway  | ---> | Runner  | ---> | exiftool |
	| read/write|      | (exec)  |      | process  |
	+-----------+      +---------+      +----------+

Gateway knows which arguments to pass; Runner knows how to start a process.
Tests replace the Runner so that no binary is needed.

Every call starts a new process and blocks until it exits. Calls share no
state, so a Gateway can be used from many goroutines at once.
*/
package exiftool
