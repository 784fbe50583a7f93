// internal/component/bar.go
package component

// Bar — полоса прогресса; Width в процентах ширины дорожки.
type Bar struct {
	Width float64
}
