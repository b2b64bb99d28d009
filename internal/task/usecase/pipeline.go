package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"meeting-task-pipeline/internal/model"
	"meeting-task-pipeline/internal/task"
	"meeting-task-pipeline/internal/task/repository"
)

// draftResult is what one goroutine reports for its draft.
type draftResult struct {
	task     *model.Task
	eventID  string
	failures []task.TaskFailure
}

// RunExtractionPipeline implements task.UseCase.
func (uc *implUseCase) RunExtractionPipeline(ctx context.Context, transcriptID string) (task.PipelineOutput, error) {
	start := time.Now()
	transcriptID = strings.TrimSpace(transcriptID)
	if transcriptID == "" {
		return task.PipelineOutput{}, task.ErrEmptyTranscriptID
	}

	uc.l.Infof(ctx, "uc.RunExtractionPipeline: transcript=%s stage=%s", transcriptID, model.StageFetching)
	tr, err := uc.transcripts.GetTranscript(ctx, transcriptID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.RunExtractionPipeline: transcript=%s stage=%s: %v", transcriptID, model.StageFailed, err)
		uc.finish(model.StageFailed, start)
		return task.PipelineOutput{}, err
	}

	if tr.Extracted {
		if out, ok := uc.replay(ctx, transcriptID); ok {
			uc.finish(model.StageDone, start)
			return out, nil
		}
	}

	uc.l.Infof(ctx, "uc.RunExtractionPipeline: transcript=%s stage=%s", transcriptID, model.StageExtracting)
	drafts, err := uc.extractor.Extract(ctx, tr.Text)
	if err != nil {
		uc.l.Warnf(ctx, "uc.RunExtractionPipeline: transcript=%s stage=%s: %v", transcriptID, model.StageFailed, err)
		uc.finish(model.StageFailed, start)
		return task.PipelineOutput{}, err
	}

	if err := uc.transcripts.MarkExtracted(ctx, transcriptID); err != nil {
		uc.l.Warnf(ctx, "uc.RunExtractionPipeline: mark extracted: %v", err)
	}

	results := make([]draftResult, len(drafts))
	g := new(errgroup.Group)
	g.SetLimit(uc.opts.Concurrency)
	for i, d := range drafts {
		g.Go(func() error {
			results[i] = uc.processDraft(ctx, transcriptID, i, d)
			return nil
		})
	}
	_ = g.Wait()

	out := task.PipelineOutput{
		TranscriptID: transcriptID,
		Tasks:        make([]model.Task, 0, len(drafts)),
	}
	for _, r := range results {
		if r.task != nil {
			out.Tasks = append(out.Tasks, *r.task)
		}
		if r.eventID != "" {
			out.EventCount++
		}
		out.Failures = append(out.Failures, r.failures...)
	}

	uc.l.Infof(ctx, "uc.RunExtractionPipeline: transcript=%s stage=%s tasks=%d events=%d failures=%d",
		transcriptID, model.StageDone, len(out.Tasks), out.EventCount, len(out.Failures))
	uc.finish(model.StageDone, start)
	return out, nil
}

// processDraft persists one draft, then schedules it. Errors stay local to the draft.
func (uc *implUseCase) processDraft(ctx context.Context, transcriptID string, position int, d model.TaskDraft) draftResult {
	var res draftResult

	t, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{TranscriptID: transcriptID, Position: position, Draft: d})
	if err != nil {
		uc.l.Errorf(ctx, "uc.processDraft: stage=%s title=%q: %v", model.StagePersistingTasks, d.Title, err)
		res.failures = append(res.failures, uc.failure(d.Title, "", model.StagePersistingTasks, err))
		return res
	}
	uc.metrics.TasksPersisted.Inc()
	res.task = &t

	linked, event, _, err := uc.schedule(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "uc.processDraft: stage=%s task=%s: %v", model.StagePersistingEvents, t.ID, err)
		res.failures = append(res.failures, uc.failure(t.Title, t.ID, model.StagePersistingEvents, err))
		return res
	}
	if event != nil {
		res.task = &linked
		res.eventID = event.ID
	}
	return res
}

// replay returns the tasks of an earlier run instead of extracting again.
func (uc *implUseCase) replay(ctx context.Context, transcriptID string) (task.PipelineOutput, bool) {
	existing, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{TranscriptID: transcriptID})
	if err != nil {
		uc.l.Warnf(ctx, "uc.replay: list tasks: %v", err)
		return task.PipelineOutput{}, false
	}
	if len(existing) == 0 {
		return task.PipelineOutput{}, false
	}

	out := task.PipelineOutput{TranscriptID: transcriptID, Tasks: existing, Replayed: true}
	for _, t := range existing {
		if t.HasEvent() {
			out.EventCount++
		}
	}
	uc.l.Infof(ctx, "uc.replay: transcript=%s already extracted, returning %d stored task(s)", transcriptID, len(existing))
	return out, true
}

func (uc *implUseCase) failure(title, taskID string, stage model.PipelineStage, err error) task.TaskFailure {
	uc.metrics.TaskFailures.WithLabelValues(string(stage)).Inc()
	return task.TaskFailure{Title: title, TaskID: taskID, Stage: stage, Err: err}
}

func (uc *implUseCase) finish(stage model.PipelineStage, start time.Time) {
	uc.metrics.RunsTotal.WithLabelValues(string(stage)).Inc()
	uc.metrics.RunDuration.Observe(time.Since(start).Seconds())
}
