// Package renderers serializes finalized plot pages into output
// documents.
//
// A [Renderer] consumes a [plotgd.Page] together with a scale factor
// and produces the bytes of one output format. Renderers never modify
// the page; rendering the same page twice yields identical bytes for
// every format without random content.
//
// # Registry
//
// Formats are looked up through a [Registry]. NewRegistry returns a
// registry preloaded with every built-in format; hosts register
// additional formats with [Registry.Register] and select one by id with
// [Registry.Find]. Each [Info] carries the output metadata a host needs
// for content negotiation (MIME type, file extension, binary flag) and
// a factory producing fresh renderer instances.
//
// # Built-in formats
//
// Vector text formats: "svg" (inline style dialect), "svgp" (portable
// dialect with document-unique clip ids), "svgz" and "svgzp" (the same
// documents gzip-compressed), "ps", "eps" and "json". Native surface
// formats, drawn through the shared canvas walk: "png", "png-base64",
// "tiff" and "pdf".
//
// # Shared walk order
//
// All renderers emit draw calls in recorded order, grouped into runs of
// equal clip id. The first group always uses the page-covering first
// clip; a new group starts exactly where the recorded clip id changes.
// Pages guarantee that equal ids are contiguous, so no renderer sorts
// or validates.
package renderers
