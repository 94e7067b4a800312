package core

// Entity is an index handle into the world's component stores
// Zero is never issued and marks an absent entity
type Entity uint64
