// Package catalog fetches and parses the home collection feed.
//
// The home feed is a JSON document whose data.StandardCollection.containers
// array holds one set per row. A set either carries its items inline or
// names a reference (refId) whose items are fetched separately from the set
// endpoint. Client fetches both, resolving references concurrently, and can
// fall back to a SQLite cache of earlier responses when the network fails.
package catalog
