package ptree

// Entry is one child of a Container.
type Entry struct {
	Key   any
	Value any
}

// Container is implemented by types that present their own children, such as
// ordered maps. Entries are sorted by key unless WithUnsorted is given or the
// keys are not mutually comparable, in which case their order is kept.
type Container interface {
	TreeEntries() []Entry
}
