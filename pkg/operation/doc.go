/*
Package operation runs a date edit over a batch of files.

	+-------------+
	|   Runner    |  one goroutine per file, join all
	+------+------+
	       |
	+------+------+
	|   Limiter   |  at most N workers past Acquire
	+------+------+
	       |
	+------+------+
	|   Worker    |  read -> transform -> write
	+------+------+
	       |
	+------+------+
	|   Gateway   |  exiftool
	+-------------+

🎯 Purpose:
- Dispatch every file at once and let the Limiter decide how many run
- Turn every failure, including a panic, into an Outcome for that file
- Report each Outcome to Observers as soon as it is known

🔄 Worker states:

	Acquire -> Read -> {SkippedUnreadable | Transform}
	        -> {SkippedMalformed | Write} -> {Success | WriteFailed} -> Release

A failing file never stops or delays its siblings, and RunBatch always returns
one Outcome per input file.

🔍 Example:

	runner, err := operation.NewRunner(operation.Options{
		Gateway:     exiftool.NewGateway(exiftool.NewExecRunner("")),
		Concurrency: runtime.NumCPU(),
	})
	outcomes := runner.RunBatch(ctx, files, edit)
*/
package operation
