package site

import "context"

// StageName is a strongly-typed identifier for a build stage.
type StageName string

// Canonical stage names, in execution order.
const (
	StagePrepare     StageName = "prepare"
	StageReadContent StageName = "read_content"
	StageBuildItems  StageName = "build_items"
	StageSort        StageName = "sort"
	StageRender      StageName = "render"
	StageWrite       StageName = "write"
)

// Stage is a discrete unit of work in the site build.
type Stage func(ctx context.Context, bs *BuildState) error

// StageDef pairs a stage name with its executing function.
type StageDef struct {
	Name StageName
	Fn   Stage
}

// DefaultStages returns the full build pipeline.
func DefaultStages() []StageDef {
	return []StageDef{
		{StagePrepare, stagePrepare},
		{StageReadContent, stageReadContent},
		{StageBuildItems, stageBuildItems},
		{StageSort, stageSort},
		{StageRender, stageRender},
		{StageWrite, stageWrite},
	}
}
