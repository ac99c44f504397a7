// Package content provides the leaf nodes documents are built from:
// filled rectangles, spacers, wrapped text and images.
//
// Leaves never paginate. Their measurements are stable for a given width,
// which the layout package relies on when it caches a measurement.
package content
