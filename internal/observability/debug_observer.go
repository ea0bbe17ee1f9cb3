// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DebugObserver provides step-by-step tracing of pipeline stages.
type DebugObserver struct {
	*StandardObserver
	indent int
}

// NewDebugObserver creates a debug observer with step-by-step logging
func NewDebugObserver(writer io.Writer) *DebugObserver {
	return &DebugObserver{
		StandardObserver: NewStandardObserver(ObservabilityDebug, writer),
		indent:           0,
	}
}

// StartStep begins a pipeline stage. The returned function closes the
// stage, reporting outcome and elapsed time at the opening indent level.
func (d *DebugObserver) StartStep(component, step string) func(success bool, details string) {
	start := time.Now()
	fmt.Fprintf(d.writer, "%s🔄 %s: %s\n", d.prefix(), component, step)
	d.indent++

	return func(success bool, details string) {
		d.indent--
		elapsed := time.Since(start).Milliseconds()
		mark := "✅"
		verb := "completed"
		if !success {
			mark = "❌"
			verb = "failed"
		}
		fmt.Fprintf(d.writer, "%s%s %s: %s %s (%dms) %s\n",
			d.prefix(), mark, component, step, verb, elapsed, details)
	}
}

// LogDetail logs a detail within the current step
func (d *DebugObserver) LogDetail(component, detail string) {
	fmt.Fprintf(d.writer, "%s   → %s: %s\n", d.prefix(), component, detail)
}

// LogMetric logs a metric value
func (d *DebugObserver) LogMetric(component, metric string, value interface{}) {
	fmt.Fprintf(d.writer, "%s   📊 %s: %s = %v\n", d.prefix(), component, metric, value)
}

func (d *DebugObserver) prefix() string {
	return strings.Repeat("  ", d.indent)
}
