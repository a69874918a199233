package testcases

// All contains all reference scenes, grouped by category.
// The category name is used as a prefix in generated file names.
var All = map[string][]Scene{
	"clip":      clipCases,
	"transform": transformCases,
	"window":    windowCases,
	"curve":     curveCases,
	"wireframe": wireframeCases,
}
