// Package motion resolves motions and text objects against buffer text.
//
// Every function is a pure computation over (text, cursor offset, motion or
// text object, count): nothing here mutates the buffer or keeps state
// between calls. The command machine emits motion and text object
// descriptors; the dispatcher resolves them here into target offsets and
// byte ranges before touching the buffer.
//
// Counts are applied by re-running the single-step computation, since step
// size depends on content (word runs, paragraphs).
package motion
