// Package renderer draws the editor onto a tcell screen.
//
// The renderer is stateless with respect to the document: each Draw call
// receives a View describing the visible slice of the buffer, the cursor,
// the selection and the status line content, and paints it cell by cell.
// Wide runes and tabs are measured with go-runewidth so the cursor always
// lands on the right screen column.
package renderer
