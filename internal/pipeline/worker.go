package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/tocgest/internal/parser"
	"github.com/dgallion1/tocgest/internal/toc"
)

// Worker processes a single extraction job. Each extraction pass is
// synchronous; concurrency exists only across independent jobs.
type Worker struct {
	log   *slog.Logger
	stats *toc.ExtractStats
}

func NewWorker(log *slog.Logger, stats *toc.ExtractStats) *Worker {
	return &Worker{log: log, stats: stats}
}

// Process runs the extraction pipeline for one job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	if ctx.Err() != nil {
		job.AddError("shutdown before processing")
		job.SetStatus(StatusFailed, "canceled")
		return
	}

	// Phase 1: Parse and extract.
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	start := time.Now()
	tree, err := p.ParseToC(bytes.NewReader(job.FileData()), job.Filename)
	w.stats.RecordDuration(time.Since(start))
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Phase 2: Check range invariants. Violations are reported on the
	// job but do not fail it.
	job.SetStatus(StatusValidating, "validating")
	for _, v := range toc.ValidateTree(tree) {
		log.Warn("toc invariant violation", "violation", v)
		job.AddError(v)
	}

	summary := toc.Summarize(tree)
	job.SetResult(tree, summary)
	job.SetStatus(StatusCompleted, "done")
	log.Info("toc extracted",
		"sections", summary.Sections,
		"top_level", summary.TopLevel,
		"max_depth", summary.MaxDepth,
	)
}
