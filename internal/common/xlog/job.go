package xlog

import "context"

// LogJob writes the terminal status line of a worker job run.
func LogJob(ctx context.Context, jobName, version string, err error) {
	fields := []Field{
		String("job-name", jobName),
		String("version", version),
	}
	if err != nil {
		fields = append(fields, String("status", "fail"), Err(err))
		Warn(ctx, "[JOB]", fields...)
	} else {
		fields = append(fields, String("status", "success"))
		Info(ctx, "[JOB]", fields...)
	}
}
