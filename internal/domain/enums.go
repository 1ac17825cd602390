package domain

// TimeScale selects the granularity of the horizontal axis.
type TimeScale string

const (
	ScaleDay  TimeScale = "day"
	ScaleWeek TimeScale = "week"
)

// ValidTimeScales is the canonical set of accepted time scale strings.
var ValidTimeScales = map[string]bool{
	"day": true, "week": true,
}

// ProjectLayout controls whether a project's stages render on a shared row
// or one row per stage.
type ProjectLayout string

const (
	LayoutInline    ProjectLayout = "inline"
	LayoutMultiline ProjectLayout = "multiline"
)

// ValidProjectLayouts is the canonical set of accepted layout strings.
var ValidProjectLayouts = map[string]bool{
	"inline": true, "multiline": true,
}
