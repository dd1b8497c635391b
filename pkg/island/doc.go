/*
Package island manages code islands: non-editable code regions embedded in an
otherwise freely editable document tree.

Three pieces cooperate. Store holds the content and language of every island
and is the only place that content lives; renderers are views over it that
may come and go. Machine converts blocks into islands and back, either on an
explicit toggle or when the user types an opening code fence. Manager keeps
exactly one renderer mounted per island element present in the tree, driven
by batches of tree mutations, and hands input focus to an island once its
renderer exists.

The tree itself is an interface (Node, Tree). Document is an implementation
over an HTML document parsed with goquery.

Machine and Manager are meant to run on a single event loop and are not safe
for concurrent use. Store may be read from any goroutine.
*/
package island

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mdblock.island'.
func tracer() tracing.Trace {
	return tracing.Select("mdblock.island")
}
