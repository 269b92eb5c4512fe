package common

const (
	BaseWidth  = 720
	BaseHeight = 405

	// ReferenceFPS is the tick rate the easing constants were tuned at.
	ReferenceFPS = 60.0
)
