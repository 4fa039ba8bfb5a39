package main

import (
	"fmt"
	"io"

	"github.com/younwookim/sceneloop/internal/application/trace"
)

// summaryKinds fixes the order kinds are printed in
var summaryKinds = []trace.Kind{
	trace.KindActivate,
	trace.KindSetup,
	trace.KindStep,
	trace.KindStop,
	trace.KindResume,
	trace.KindMissing,
}

// inspectTrace loads a trace written with -trace and prints per-kind counts
// followed by every failed event
func inspectTrace(filename string, w io.Writer) error {
	data, err := trace.Load(filename)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "trace %s (version %s, started %s)\n", filename, data.Version, data.StartTime)
	fmt.Fprintf(w, "events: %d\n", len(data.Events))

	counts := trace.Count(data.Events)
	for _, kind := range summaryKinds {
		fmt.Fprintf(w, "  %-8s %d\n", kind, counts[kind])
	}

	failed := trace.Failures(data.Events)
	if len(failed) == 0 {
		return nil
	}
	fmt.Fprintf(w, "failures: %d\n", len(failed))
	for _, ev := range failed {
		fmt.Fprintf(w, "  frame %d %s %q: %s\n", ev.F, ev.Kind, ev.Scene, ev.Err)
	}
	return nil
}
