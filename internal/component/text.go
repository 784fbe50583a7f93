// internal/component/text.go
package component

// Text — текстовое содержимое элемента.
type Text struct {
	Value string
}
