package engine

import (
	"github.com/lixenwraith/city-striker/core"
)

// AnyStore is the type-erased view World uses to destroy entities across every component store
type AnyStore interface {
	RemoveBatch(entities []core.Entity)
	ClearAllComponent()
}
