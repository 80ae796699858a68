// Package digits provides a copy-on-write, small-buffer-optimized sequence of
// 32-bit digits.
//
// A Store keeps up to InlineCap digits directly in the struct. Past that the
// digits move to a heap buffer which is shared between clones and carries a
// reference count. Writes to a shared buffer first copy it so no other owner
// observes the change.
//
//	| Form   | Digits         | Storage                       |
//	|--------|----------------|-------------------------------|
//	| Inline | 0 .. InlineCap | [InlineCap]Digit in the Store |
//	| Shared | > InlineCap    | *buffer{refs, data}           |
//	|--------|----------------|-------------------------------|
//
// # Copying
//
// A Store must not be copied by assignment. Use Clone (copy construction) or
// Assign (copy assignment) so the reference count stays accurate. A clone that
// is dropped without Clear is reclaimed by the garbage collector, but the
// count it held is not returned, so the remaining owner copies the buffer on
// its next write.
//
// The Store does not interpret its digits. Sign handling and trimming belong
// to the caller.
package digits
