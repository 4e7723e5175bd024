// Package source loads the set of GraphQL operation/fragment documents for a
// run and derives each document's generated output path.
//
// Document order is deterministic: glob patterns are expanded in the order
// given, each pattern's matches sorted by path, duplicates dropped. Everything
// downstream (registry construction, duplicate reporting) inherits this order.
package source
