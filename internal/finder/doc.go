// Package finder runs a find over a document and collects the matching lines
// grouped by their enclosing function.
//
// The Engine behaves like an editor's "find next": literal or regular
// expression patterns, optional case sensitivity and whole-word matching,
// one hit per line and wrap-around at the end of the document. A
// DocumentSource wraps the engine and asks a FunctionResolver (normally a
// types.Outline) for the function around each hit.
//
// Matches is the single search loop. It consumes any Source until the source
// is exhausted or a hit does not advance past the last accepted line, so a
// wrapping search terminates after one pass. Collect feeds those matches into
// a collector.Collector:
//
//	doc := finder.NewDocument(path, content)
//	c, err := finder.FindGrouped(ctx, doc, outline, finder.DefaultOptions("cache"))
//	if err != nil {
//	    return err
//	}
//	_ = c.Render(pane)
package finder
