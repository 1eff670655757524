/*
Package views is a set of read-only, live views over mutable collections.

A view is handed to code that should observe a collection without being able to change it.
The view keeps a reference to the collection and delegates every read,
thus whatever the owner changes later is immediately visible through the view.

	settings := map[string]int{"retries": 3}
	ro := view.MapOf(settings)
	settings["timeout"] = 30
	ro.Len() // 2

Layout

	pkg/view        Mapping, Sequence and Set views, their errors and codecs
	pkg/datastruct  capability interfaces, plain and immutable collections, value hashing
	pkg/compare     natural ordering and deep equality of arbitrary values
	pkg/errorkit    constant errors
	pkg/logging     structured JSON logging
	pkg/adapter/*   third-party collections that can sit under a view

Anything that implements datastruct.MapReader, datastruct.SequenceReader or datastruct.SetReader
can be wrapped, including another view.
Mutating methods exist on every view with the name the collection kind would use,
but they only ever return an error that matches view.ErrOperationNotSupported.

Immutable collections such as datastruct.Tuple are hashable,
and a view over them hashes the same as the collection itself.
A view over a mutable collection refuses to hash with view.ErrTypeKind.
*/
package views
