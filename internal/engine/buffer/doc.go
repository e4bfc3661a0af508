// Package buffer provides the text buffer the editing engine operates on.
//
// A Buffer stores document text with normalized line endings and exposes
// byte-offset and line/column addressing, edit operations, and immutable
// snapshots. Snapshots are handed to the motion resolver so that a resolve
// call always sees a consistent view of the text.
//
// All Buffer methods are safe for concurrent use; a Snapshot never changes
// after creation.
package buffer
