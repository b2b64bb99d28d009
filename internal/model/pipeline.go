package model

// PipelineStage is a state of a single extraction pipeline run.
type PipelineStage string

const (
	StageFetching         PipelineStage = "fetching"
	StageExtracting       PipelineStage = "extracting"
	StagePersistingTasks  PipelineStage = "persisting_tasks"
	StageScheduling       PipelineStage = "scheduling"
	StagePersistingEvents PipelineStage = "persisting_events"
	StageDone             PipelineStage = "done"
	StageFailed           PipelineStage = "failed"
)
