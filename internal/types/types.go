// internal/types/types.go
package types

// EntityID — идентификатор элемента в арене слотов.
type EntityID uint64
