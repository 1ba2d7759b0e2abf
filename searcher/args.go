package searcher

// Defaults for a Searcher

// Plies searched below the root, counting the root move itself
const DefaultDepth = 2

const DefaultGoroutines = 1
