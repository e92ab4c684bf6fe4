// Package elementpager paginates a fixed collection of elements that already
// live in a document.
//
// Overview
//
// A Pager partitions its elements into pages of ItemsPerPage elements, builds
// a navigation toolbar (first/prev/next/last meta-links plus one numbered link
// per page) and shows a page by toggling a hide class on the elements.
//
// Key concepts
//   - Tree: the UI tree capability the pager dispatches to. It creates
//     elements, toggles classes, attaches click handlers and inserts nodes.
//     See the memtree and htmltree packages for implementations.
//   - Options: construction settings; RawOptions is the serializable form
//     used for configuration files.
//   - Location: where the toolbar goes ("before", "after" or inside a node).
//
// The pager never fails: page numbers are clamped into range and a collection
// that fits on a single page leaves the pager inactive.
package elementpager
