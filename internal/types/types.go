// internal/types/types.go
package types

// EntityID — непрозрачный идентификатор сущности в реестре
type EntityID uint64
